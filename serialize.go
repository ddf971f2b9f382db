package htmlselect

import (
	"strings"

	"golang.org/x/net/html"
)

// Void elements per the HTML standard; they serialize without an end tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

var attrEscaper = strings.NewReplacer("&", "&amp;", `"`, "&quot;")

// innerHTML re-serializes the children of n. Text nodes are emitted verbatim
// (html.Render would entity-escape them, which is why this does not use it);
// attribute values are quoted with `"` and `&` escaped; void elements
// self-close; comments are preserved.
func innerHTML(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderNode(&b, c)
	}
	return b.String()
}

func renderNode(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
	case html.CommentNode:
		b.WriteString("<!--")
		b.WriteString(n.Data)
		b.WriteString("-->")
	case html.ElementNode:
		tag := strings.ToLower(n.Data)
		b.WriteByte('<')
		b.WriteString(tag)
		for _, a := range n.Attr {
			b.WriteByte(' ')
			b.WriteString(strings.ToLower(a.Key))
			b.WriteString(`="`)
			b.WriteString(attrEscaper.Replace(a.Val))
			b.WriteByte('"')
		}
		if voidElements[tag] && n.FirstChild == nil {
			b.WriteString("/>")
			return
		}
		b.WriteByte('>')
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			renderNode(b, c)
		}
		b.WriteString("</")
		b.WriteString(tag)
		b.WriteByte('>')
	}
}
