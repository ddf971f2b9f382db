package htmlselect

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Element is an owned snapshot of a matched element. All fields are copied
// out of the tree, so an Element stays valid after the Document and its tree
// are gone. An Element never changes once built.
type Element struct {
	// Tag is the lower-cased tag name, e.g. "div" or "a".
	Tag string
	// Text is the normalized text content: descendant text nodes joined by
	// single spaces, whitespace runs collapsed, leading/trailing whitespace
	// trimmed.
	Text string
	// InnerHTML is the re-serialized markup of the children only; the
	// element's own tag is not included.
	InnerHTML string
	// Attrs maps attribute names to values. Names are lower case and
	// unique; if the source tree carries duplicates, the last one wins.
	Attrs map[string]string
}

// NewElement builds a snapshot from an element node.
func NewElement(n *html.Node) *Element {
	attrs := make(map[string]string, len(n.Attr))
	for _, a := range n.Attr {
		attrs[strings.ToLower(a.Key)] = a.Val
	}
	return &Element{
		Tag:       strings.ToLower(n.Data),
		Text:      normalizedText(n),
		InnerHTML: innerHTML(n),
		Attrs:     attrs,
	}
}

// Attr returns the value of a single attribute and whether it exists.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.Attrs[strings.ToLower(name)]
	return v, ok
}

// Get returns the attribute value, or def when the attribute is absent.
func (e *Element) Get(name, def string) string {
	if v, ok := e.Attr(name); ok {
		return v
	}
	return def
}

// ToMap converts the element to a plain map, for handing across a
// serialization boundary:
//
//	{"tag": string, "text": string, "html": string, "attrs": map[string]string}
func (e *Element) ToMap() map[string]any {
	attrs := make(map[string]string, len(e.Attrs))
	for k, v := range e.Attrs {
		attrs[k] = v
	}
	return map[string]any{
		"tag":   e.Tag,
		"text":  e.Text,
		"html":  e.InnerHTML,
		"attrs": attrs,
	}
}

func (e *Element) String() string {
	return fmt.Sprintf("<Element tag='%s' text=%s>", e.Tag, truncate(e.Text, 40))
}

// truncate shortens s to max runes for debug output.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// normalizedText joins all descendant text nodes with single spaces and
// collapses every whitespace run into one ASCII space. Joining before
// collapsing keeps internal whitespace as word separators without doubling
// spaces at node boundaries.
func normalizedText(n *html.Node) string {
	parts := collectText(n, nil)
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}
