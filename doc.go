// Package htmlselect queries parsed HTML documents with CSS selectors and
// returns the matched elements as owned snapshots.
//
// A Document wraps the tree produced by the HTML5 parser from
// golang.org/x/net/html. Select compiles a CSS selector, walks the tree in
// document order and copies every matching element into an Element value
// (tag, normalized text, inner HTML, attributes) that stays valid after the
// document is discarded.
//
// The selector grammar covers type, universal, id, class and attribute
// selectors, the four combinators (descendant, ">", "+", "~") and
// comma-separated selector lists. The supported pseudo-classes are
// :first-child, :last-child, :only-child, :nth-child(n) with an integer
// argument, and :empty. Any other pseudo-class is a compile error.
package htmlselect
