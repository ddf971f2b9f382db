package htmlselect

import (
	"strings"

	"golang.org/x/net/html"
)

// Match reports whether the element node n matches any alternative of the
// selector list.
func (sel *Selector) Match(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	for _, alt := range sel.alts {
		if matchChain(alt, len(alt.seq)-1, n) {
			return true
		}
	}
	return false
}

// MatchAll returns every element under root (root included) that matches the
// selector, in document order. A node matching through several alternatives
// appears once. MatchAll never fails; no match is an empty result.
func (sel *Selector) MatchAll(root *html.Node) []*html.Node {
	if root == nil {
		return nil
	}
	var out []*html.Node
	walk(root, func(n *html.Node) {
		if sel.Match(n) {
			out = append(out, n)
		}
	})
	return out
}

// MatchFirst returns the first matching element in document order, or nil.
func (sel *Selector) MatchFirst(root *html.Node) *html.Node {
	if root == nil {
		return nil
	}
	if sel.Match(root) {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if n := sel.MatchFirst(c); n != nil {
			return n
		}
	}
	return nil
}

// matchChain tests seq[idx] against n, then the rest of the chain against
// n's context. The chain is anchored at the rightmost compound and walks
// left: the combinator decides which parent or preceding sibling must carry
// the remainder. Recursion depth is bounded by tree depth plus chain length.
func matchChain(cs complexSelector, idx int, n *html.Node) bool {
	if !matchCompound(cs.seq[idx], n) {
		return false
	}
	if idx == 0 {
		return true
	}
	switch cs.combs[idx-1] {
	case combChild:
		p := n.Parent
		return p != nil && p.Type == html.ElementNode && matchChain(cs, idx-1, p)
	case combDescendant:
		for p := n.Parent; p != nil; p = p.Parent {
			if p.Type == html.ElementNode && matchChain(cs, idx-1, p) {
				return true
			}
		}
	case combAdjacent:
		if prev := prevElementSibling(n); prev != nil {
			return matchChain(cs, idx-1, prev)
		}
	case combGeneral:
		for prev := prevElementSibling(n); prev != nil; prev = prevElementSibling(prev) {
			if matchChain(cs, idx-1, prev) {
				return true
			}
		}
	}
	return false
}

func matchCompound(c compound, n *html.Node) bool {
	for _, s := range c {
		if !matchSimple(s, n) {
			return false
		}
	}
	return true
}

func matchSimple(s simple, n *html.Node) bool {
	switch s.kind {
	case simpleUniversal:
		return true
	case simpleType:
		// parsed trees carry lower-case tag names already
		return n.Data == s.name || strings.ToLower(n.Data) == s.name
	case simpleID:
		id, ok := findAttr(n, "id")
		return ok && id == s.value
	case simpleClass:
		classes, ok := findAttr(n, "class")
		if !ok {
			return false
		}
		for _, c := range strings.Fields(classes) {
			if c == s.value {
				return true
			}
		}
		return false
	case simpleAttr:
		return matchAttr(s, n)
	case simplePseudo:
		return matchPseudo(s, n)
	}
	return false
}

func matchAttr(s simple, n *html.Node) bool {
	v, ok := findAttr(n, s.name)
	if !ok {
		return false
	}
	switch s.op {
	case opPresent:
		return true
	case opEquals:
		return v == s.value
	case opIncludes:
		if s.value == "" {
			return false
		}
		for _, f := range strings.Fields(v) {
			if f == s.value {
				return true
			}
		}
		return false
	case opDashMatch:
		return v == s.value || strings.HasPrefix(v, s.value+"-")
	case opPrefix:
		return s.value != "" && strings.HasPrefix(v, s.value)
	case opSuffix:
		return s.value != "" && strings.HasSuffix(v, s.value)
	case opSubstring:
		return s.value != "" && strings.Contains(v, s.value)
	}
	return false
}

func matchPseudo(s simple, n *html.Node) bool {
	switch s.pseudo {
	case pseudoFirstChild:
		return prevElementSibling(n) == nil
	case pseudoLastChild:
		return nextElementSibling(n) == nil
	case pseudoOnlyChild:
		return prevElementSibling(n) == nil && nextElementSibling(n) == nil
	case pseudoNthChild:
		return childElementIndex(n) == s.nth
	case pseudoEmpty:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode || c.Type == html.TextNode {
				return false
			}
		}
		return true
	}
	return false
}
