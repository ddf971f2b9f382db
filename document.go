package htmlselect

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Document is a parsed HTML document. The tree is built once by the HTML5
// parser from golang.org/x/net/html and is read-only afterwards, so a
// Document can be queried from multiple goroutines.
type Document struct {
	raw  string
	root *html.Node
}

// ParseDocument parses raw HTML text into a queryable Document.
func ParseDocument(htmltext string) (*Document, error) {
	root, err := html.Parse(strings.NewReader(htmltext))
	if err != nil {
		return nil, err
	}
	return &Document{raw: htmltext, root: root}, nil
}

// ParseReader reads all HTML from r and parses it into a Document.
func ParseReader(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseDocument(string(data))
}

// Select returns every element matching the CSS selector, as snapshots in
// document order. A selector that compiles but matches nothing yields an
// empty slice and no error; a selector that does not compile returns a
// *SyntaxError before any traversal happens.
func (d *Document) Select(css string) ([]*Element, error) {
	sel, err := Compile(css)
	if err != nil {
		return nil, err
	}
	nodes := sel.MatchAll(d.root)
	elements := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		elements = append(elements, NewElement(n))
	}
	return elements, nil
}

// Css is an alias for Select.
func (d *Document) Css(css string) ([]*Element, error) {
	return d.Select(css)
}

// Find returns the first matching element in document order, or nil when
// nothing matches. No match is not an error.
func (d *Document) Find(css string) (*Element, error) {
	sel, err := Compile(css)
	if err != nil {
		return nil, err
	}
	n := sel.MatchFirst(d.root)
	if n == nil {
		return nil, nil
	}
	return NewElement(n), nil
}

// Text returns the normalized text content of the whole document, using the
// same whitespace rule as Element.Text.
func (d *Document) Text() string {
	return normalizedText(d.root)
}

// HTML returns the original HTML text the document was parsed from.
func (d *Document) HTML() string {
	return d.raw
}

// Root exposes the underlying parse tree for callers that want to run
// compiled selectors directly.
func (d *Document) Root() *html.Node {
	return d.root
}

func (d *Document) String() string {
	return fmt.Sprintf("<Document len_html=%d>", len(d.raw))
}

// Select is a one-shot helper: parse the HTML and select in one call.
func Select(htmltext, css string) ([]*Element, error) {
	doc, err := ParseDocument(htmltext)
	if err != nil {
		return nil, err
	}
	return doc.Select(css)
}

// First is a one-shot helper returning the first match, or nil.
func First(htmltext, css string) (*Element, error) {
	doc, err := ParseDocument(htmltext)
	if err != nil {
		return nil, err
	}
	return doc.Find(css)
}
