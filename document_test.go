package htmlselect

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleHTML = `
    <html>
      <body>
        <div class="item" data-id="1"><a href="/a">First</a></div>
        <div class="item" data-id="2"><a href="/b">Second</a></div>
      </body>
    </html>
    `

func TestDocumentProperties(t *testing.T) {
	doc, err := ParseDocument(sampleHTML)
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.HTML(); got != sampleHTML {
		t.Errorf("HTML() does not round-trip the input")
	}
	if got, want := doc.Text(), "First Second"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
	if got, want := doc.String(), fmt.Sprintf("<Document len_html=%d>", len(sampleHTML)); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSelectAndElementHelpers(t *testing.T) {
	doc, err := ParseDocument(sampleHTML)
	if err != nil {
		t.Fatal(err)
	}
	items, err := doc.Select(".item")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(items), 2; got != want {
		t.Fatalf("len(items) = %d, want %d", got, want)
	}

	first := items[0]
	if got, want := first.Tag, "div"; got != want {
		t.Errorf("Tag = %q, want %q", got, want)
	}
	if got, want := first.Text, "First"; got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
	if got, want := first.InnerHTML, `<a href="/a">First</a>`; got != want {
		t.Errorf("InnerHTML = %q, want %q", got, want)
	}
	if got, ok := first.Attr("data-id"); !ok || got != "1" {
		t.Errorf(`Attr("data-id") = %q, %v, want "1", true`, got, ok)
	}
	if got, want := first.Get("data-id", ""), "1"; got != want {
		t.Errorf("Get = %q, want %q", got, want)
	}
	if got, want := first.Get("missing", "fallback"), "fallback"; got != want {
		t.Errorf("Get fallback = %q, want %q", got, want)
	}
	if got, want := first.String(), "<Element tag='div' text=First>"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	want := map[string]any{
		"tag":  "div",
		"text": "First",
		"html": `<a href="/a">First</a>`,
		"attrs": map[string]string{
			"class":   "item",
			"data-id": "1",
		},
	}
	if diff := cmp.Diff(want, first.ToMap()); diff != "" {
		t.Errorf("ToMap() mismatch (-want +got):\n%s", diff)
	}
}

func TestFindAndFirstHelpers(t *testing.T) {
	doc, err := ParseDocument(sampleHTML)
	if err != nil {
		t.Fatal(err)
	}

	link, err := doc.Find("a[href]")
	if err != nil {
		t.Fatal(err)
	}
	if link == nil {
		t.Fatal(`Find("a[href]") = nil`)
	}
	if got, want := link.Tag, "a"; got != want {
		t.Errorf("Tag = %q, want %q", got, want)
	}
	if got, want := link.Text, "First"; got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
	if got, want := link.Get("href", ""), "/a"; got != want {
		t.Errorf("href = %q, want %q", got, want)
	}

	// no match is nil, not an error
	missing, err := doc.Find("p")
	if err != nil {
		t.Fatal(err)
	}
	if missing != nil {
		t.Errorf(`Find("p") = %v, want nil`, missing)
	}

	el, err := First(sampleHTML, "a[href]")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := el.Get("href", ""), "/a"; got != want {
		t.Errorf("First href = %q, want %q", got, want)
	}
	el, err = First(sampleHTML, "p")
	if err != nil || el != nil {
		t.Errorf("First(p) = %v, %v, want nil, nil", el, err)
	}
}

func TestTopLevelSelect(t *testing.T) {
	links, err := Select(sampleHTML, "a[href]")
	if err != nil {
		t.Fatal(err)
	}
	var texts, hrefs []string
	for _, link := range links {
		texts = append(texts, link.Text)
		hrefs = append(hrefs, link.Get("href", ""))
	}
	if diff := cmp.Diff([]string{"First", "Second"}, texts); diff != "" {
		t.Errorf("texts mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"/a", "/b"}, hrefs); diff != "" {
		t.Errorf("hrefs mismatch (-want +got):\n%s", diff)
	}
}

func TestCssAlias(t *testing.T) {
	doc, err := ParseDocument(sampleHTML)
	if err != nil {
		t.Fatal(err)
	}
	viaSelect, err := doc.Select("a[href]")
	if err != nil {
		t.Fatal(err)
	}
	viaCss, err := doc.Css("a[href]")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(viaSelect, viaCss); diff != "" {
		t.Errorf("Css differs from Select (-want +got):\n%s", diff)
	}
}

func TestCompileErrorSurfacesBeforeMatching(t *testing.T) {
	doc, err := ParseDocument(sampleHTML)
	if err != nil {
		t.Fatal(err)
	}
	var serr *SyntaxError

	if _, err := doc.Select("div >"); !errors.As(err, &serr) {
		t.Errorf(`Select("div >") error = %v, want *SyntaxError`, err)
	}
	if _, err := doc.Find("div >"); !errors.As(err, &serr) {
		t.Errorf(`Find("div >") error = %v, want *SyntaxError`, err)
	}
	if _, err := doc.Select(""); !errors.As(err, &serr) {
		t.Errorf(`Select("") error = %v, want *SyntaxError`, err)
	}
}

func TestSelectSingleAnchor(t *testing.T) {
	doc, err := ParseDocument(`<html><body><a href="/x" class="c">link</a></body></html>`)
	if err != nil {
		t.Fatal(err)
	}
	got, err := doc.Select("a[href]")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	want := &Element{
		Tag:       "a",
		Text:      "link",
		InnerHTML: "link",
		Attrs:     map[string]string{"href": "/x", "class": "c"},
	}
	if diff := cmp.Diff(want, got[0]); diff != "" {
		t.Errorf("element mismatch (-want +got):\n%s", diff)
	}

	// same document, no matching class: empty select, nil find
	none, err := doc.Select("a.missing")
	if err != nil {
		t.Fatal(err)
	}
	if len(none) != 0 {
		t.Errorf(`Select("a.missing") returned %d elements, want 0`, len(none))
	}
	el, err := doc.Find("a.missing")
	if err != nil || el != nil {
		t.Errorf(`Find("a.missing") = %v, %v, want nil, nil`, el, err)
	}
}

func TestSelectorListDocumentOrder(t *testing.T) {
	doc, err := ParseDocument("<a>1</a><b>2</b>")
	if err != nil {
		t.Fatal(err)
	}
	got, err := doc.Select("a, b")
	if err != nil {
		t.Fatal(err)
	}
	var tags []string
	for _, el := range got {
		tags = append(tags, el.Tag)
	}
	if diff := cmp.Diff([]string{"a", "b"}, tags); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}
}

func TestFindIsFirstOfSelect(t *testing.T) {
	doc, err := ParseDocument(matchFixture)
	if err != nil {
		t.Fatal(err)
	}
	for _, selector := range []string{"li", ".item", "ul > li", "em", "a[href]", "p:empty"} {
		all, err := doc.Select(selector)
		if err != nil {
			t.Fatal(err)
		}
		first, err := doc.Find(selector)
		if err != nil {
			t.Fatal(err)
		}
		if len(all) == 0 {
			if first != nil {
				t.Errorf("Find(%q) = %v, want nil for empty select", selector, first)
			}
			continue
		}
		if diff := cmp.Diff(all[0], first); diff != "" {
			t.Errorf("Find(%q) != Select(%q)[0] (-want +got):\n%s", selector, selector, diff)
		}
	}
}

func TestParseReader(t *testing.T) {
	doc, err := ParseReader(strings.NewReader(sampleHTML))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := doc.Text(), "First Second"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}
