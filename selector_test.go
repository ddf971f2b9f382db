package htmlselect

import (
	"errors"
	"testing"
)

func TestCompileCanonical(t *testing.T) {
	// compile, then render the AST back; the canonical form pins down how
	// the input was understood
	testdata := []struct {
		input string
		want  string
	}{
		{"div", "div"},
		{"DIV", "div"},
		{"*", "*"},
		{"a.item#x", "a.item#x"},
		{"#Main .Item", "#Main .Item"},
		{"div  >  p.item", "div > p.item"},
		{"ul li", "ul li"},
		{"li+li", "li + li"},
		{"li ~ li", "li ~ li"},
		{"h1,h2 , h3", "h1, h2, h3"},
		{"a[href]", "a[href]"},
		{"A[HREF]", "a[href]"},
		{`[href="/x"]`, `[href="/x"]`},
		{`[href=" > "]`, `[href=" > "]`},
		{"[data-id=1]", `[data-id="1"]`},
		{"[data-kind~=note]", `[data-kind~="note"]`},
		{"[lang|=en]", `[lang|="en"]`},
		{`a[href^='https://']`, `a[href^="https://"]`},
		{"a[href$=start]", `a[href$="start"]`},
		{"a[href*='example']", `a[href*="example"]`},
		{"p:first-child", "p:first-child"},
		{"li:last-child", "li:last-child"},
		{"span:only-child", "span:only-child"},
		{"li:nth-child( 2 )", "li:nth-child(2)"},
		{"p:empty", "p:empty"},
	}
	for _, td := range testdata {
		sel, err := Compile(td.input)
		if err != nil {
			t.Errorf("Compile(%q) error: %v", td.input, err)
			continue
		}
		if got := sel.String(); got != td.want {
			t.Errorf("Compile(%q).String() = %q, want %q", td.input, got, td.want)
		}
	}
}

func TestCompileErrors(t *testing.T) {
	testdata := []string{
		"",
		"   ",
		"div >",
		"> div",
		"a,,b",
		"a,",
		",a",
		"[href",
		"[href=]",
		"[href='x'",
		"[=x]",
		"p:hover",
		"p::before",
		":nth-child(x)",
		":nth-child(2",
		"div{",
		".",
	}
	for _, input := range testdata {
		sel, err := Compile(input)
		if err == nil {
			t.Errorf("Compile(%q) = %q, want error", input, sel.String())
			continue
		}
		var serr *SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("Compile(%q) error is %T, want *SyntaxError", input, err)
			continue
		}
		if serr.Input != input {
			t.Errorf("SyntaxError.Input = %q, want %q", serr.Input, input)
		}
	}
}

func TestMustCompile(t *testing.T) {
	if sel := MustCompile("div.item"); sel == nil {
		t.Error("MustCompile returned nil for a valid selector")
	}
	defer func() {
		if recover() == nil {
			t.Error("MustCompile did not panic on an invalid selector")
		}
	}()
	MustCompile("div >")
}
