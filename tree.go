package htmlselect

import (
	"strings"

	"golang.org/x/net/html"
)

// The functions in this file are the read-only view over the tree produced
// by the external HTML5 parser. All matching and snapshotting goes through
// them; nothing in this package mutates an *html.Node.

// walk visits n and all of its descendants in pre-order (document order).
func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

// prevElementSibling returns the closest preceding sibling that is an
// element, skipping text and comment nodes.
func prevElementSibling(n *html.Node) *html.Node {
	for s := n.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

func nextElementSibling(n *html.Node) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

// childElementIndex returns the 1-based position of n among its element
// siblings, as counted by :nth-child.
func childElementIndex(n *html.Node) int {
	i := 1
	for s := n.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode {
			i++
		}
	}
	return i
}

// findAttr returns the first attribute with the given lower-case name. The
// parser lower-cases keys in parsed trees; the fold covers hand-built ones.
func findAttr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val, true
		}
	}
	return "", false
}

// collectText appends the contents of all descendant text nodes of n to
// parts, in document order.
func collectText(n *html.Node, parts []string) []string {
	if n.Type == html.TextNode {
		return append(parts, n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		parts = collectText(c, parts)
	}
	return parts
}
