package htmlselect

import (
	"strconv"
	"strings"

	"github.com/speedata/css/scanner"
)

// tokenstream is a list of CSS tokens
type tokenstream []*scanner.Token

// tokenizeSelector reads the selector text into a token stream. Comments and
// CDO/CDC markers are dropped, whitespace tokens are kept because descendant
// combinators depend on them.
func tokenizeSelector(text string) (tokenstream, error) {
	var tokens tokenstream
	s := scanner.New(text)
	for {
		token := s.Next()
		if token.Type == scanner.EOF {
			break
		}
		if token.Type == scanner.Error {
			return nil, syntaxErr(text, "cannot read token at %q", token.Value)
		}
		switch token.Type {
		case scanner.Comment, scanner.CDO, scanner.CDC:
			// ignore
		default:
			tokens = append(tokens, token)
		}
	}
	return tokens, nil
}

type simpleKind uint8

const (
	simpleType simpleKind = iota
	simpleUniversal
	simpleID
	simpleClass
	simpleAttr
	simplePseudo
)

type attrOp uint8

const (
	opPresent   attrOp = iota
	opEquals           // =
	opIncludes         // ~=
	opDashMatch        // |=
	opPrefix           // ^=
	opSuffix           // $=
	opSubstring        // *=
)

type pseudoClass uint8

const (
	pseudoFirstChild pseudoClass = iota
	pseudoLastChild
	pseudoOnlyChild
	pseudoNthChild
	pseudoEmpty
)

// simple is a single predicate of a compound selector.
type simple struct {
	kind   simpleKind
	name   string // tag name (simpleType) or attribute name (simpleAttr), lower case
	op     attrOp
	value  string // id, class or attribute value, case preserved
	pseudo pseudoClass
	nth    int
}

// compound is a conjunction of simple selectors applying to one node.
type compound []simple

type combinator uint8

const (
	combDescendant combinator = iota
	combChild
	combAdjacent
	combGeneral
)

// complexSelector is a chain of compound selectors. combs[i] relates seq[i]
// to seq[i+1]; matching anchors at the last compound and walks left.
type complexSelector struct {
	seq   []compound
	combs []combinator
}

// Selector is a compiled CSS selector list. A Selector is immutable after
// Compile and safe for concurrent use.
type Selector struct {
	src  string
	alts []complexSelector
}

// Compile parses a CSS selector string. The string may contain a
// comma-separated list of selectors; a node matches if any alternative
// matches. Compile returns a *SyntaxError when the text does not conform to
// the supported grammar.
func Compile(text string) (*Selector, error) {
	toks, err := tokenizeSelector(text)
	if err != nil {
		return nil, err
	}
	p := &selParser{input: text, toks: toks}
	alts, err := p.parseGroup()
	if err != nil {
		return nil, err
	}
	return &Selector{src: text, alts: alts}, nil
}

// MustCompile is like Compile but panics on error. Use for selectors known
// to be valid at program start.
func MustCompile(text string) *Selector {
	sel, err := Compile(text)
	if err != nil {
		panic(err)
	}
	return sel
}

type selParser struct {
	input string
	toks  tokenstream
	pos   int
}

func (p *selParser) eof() bool {
	return p.pos >= len(p.toks)
}

func (p *selParser) peek() *scanner.Token {
	if p.eof() {
		return nil
	}
	return p.toks[p.pos]
}

// skipSpace advances over whitespace tokens and reports whether any were
// consumed.
func (p *selParser) skipSpace() bool {
	skipped := false
	for !p.eof() && p.toks[p.pos].Type == scanner.S {
		p.pos++
		skipped = true
	}
	return skipped
}

func (p *selParser) isDelim(value string) bool {
	t := p.peek()
	return t != nil && t.Type == scanner.Delim && t.Value == value
}

func (p *selParser) parseGroup() ([]complexSelector, error) {
	var alts []complexSelector
	for {
		p.skipSpace()
		if p.eof() {
			if len(alts) == 0 {
				return nil, syntaxErr(p.input, "empty selector")
			}
			return nil, syntaxErr(p.input, "selector list ends with a comma")
		}
		cs, err := p.parseComplex()
		if err != nil {
			return nil, err
		}
		alts = append(alts, cs)
		p.skipSpace()
		if p.eof() {
			return alts, nil
		}
		if !p.isDelim(",") {
			return nil, syntaxErr(p.input, "unexpected %q", p.peek().Value)
		}
		p.pos++
	}
}

func (p *selParser) parseComplex() (complexSelector, error) {
	var cs complexSelector
	c, err := p.parseCompound()
	if err != nil {
		return cs, err
	}
	if len(c) == 0 {
		return cs, syntaxErr(p.input, "expected a selector, got %q", p.peek().Value)
	}
	cs.seq = append(cs.seq, c)
	for {
		sawSpace := p.skipSpace()
		if p.eof() || p.isDelim(",") {
			return cs, nil
		}
		comb := combDescendant
		switch {
		case p.isDelim(">"):
			comb = combChild
			p.pos++
		case p.isDelim("+"):
			comb = combAdjacent
			p.pos++
		case p.isDelim("~"):
			comb = combGeneral
			p.pos++
		default:
			if !sawSpace {
				return cs, syntaxErr(p.input, "unexpected %q", p.peek().Value)
			}
		}
		p.skipSpace()
		if p.eof() {
			return cs, syntaxErr(p.input, "dangling combinator")
		}
		next, err := p.parseCompound()
		if err != nil {
			return cs, err
		}
		if len(next) == 0 {
			return cs, syntaxErr(p.input, "dangling combinator before %q", p.peek().Value)
		}
		cs.seq = append(cs.seq, next)
		cs.combs = append(cs.combs, comb)
	}
}

// parseCompound consumes as many simple selectors as directly follow each
// other. It returns an empty compound when the next token cannot start one;
// the caller decides whether that is an error.
func (p *selParser) parseCompound() (compound, error) {
	var c compound
	for !p.eof() {
		t := p.peek()
		switch {
		case t.Type == scanner.Ident:
			c = append(c, simple{kind: simpleType, name: strings.ToLower(t.Value)})
			p.pos++
		case t.Type == scanner.Hash:
			c = append(c, simple{kind: simpleID, value: t.Value})
			p.pos++
		case t.Type == scanner.Delim && t.Value == "*":
			c = append(c, simple{kind: simpleUniversal})
			p.pos++
		case t.Type == scanner.Delim && t.Value == ".":
			p.pos++
			nt := p.peek()
			if nt == nil || nt.Type != scanner.Ident {
				return nil, syntaxErr(p.input, "expected a class name after %q", ".")
			}
			c = append(c, simple{kind: simpleClass, value: nt.Value})
			p.pos++
		case t.Type == scanner.Delim && t.Value == "[":
			s, err := p.parseAttr()
			if err != nil {
				return nil, err
			}
			c = append(c, s)
		case t.Type == scanner.Delim && t.Value == ":":
			s, err := p.parsePseudo()
			if err != nil {
				return nil, err
			}
			c = append(c, s)
		default:
			return c, nil
		}
	}
	return c, nil
}

// parseAttr consumes an attribute predicate starting at "[". Values may be
// bare identifiers, numbers or quoted strings; quoted values keep combinator
// characters intact because the tokenizer treats the string as one token.
func (p *selParser) parseAttr() (simple, error) {
	s := simple{kind: simpleAttr}
	p.pos++ // consume "["
	p.skipSpace()
	t := p.peek()
	if t == nil || t.Type != scanner.Ident {
		return s, syntaxErr(p.input, "expected an attribute name")
	}
	s.name = strings.ToLower(t.Value)
	p.pos++
	p.skipSpace()
	t = p.peek()
	if t == nil {
		return s, syntaxErr(p.input, "unterminated attribute selector")
	}
	if t.Type == scanner.Delim && t.Value == "]" {
		p.pos++
		s.op = opPresent
		return s, nil
	}
	op, err := p.parseAttrOp()
	if err != nil {
		return s, err
	}
	s.op = op
	p.skipSpace()
	t = p.peek()
	if t == nil {
		return s, syntaxErr(p.input, "expected an attribute value")
	}
	switch t.Type {
	case scanner.Ident, scanner.Number:
		s.value = t.Value
	case scanner.String:
		s.value = trimQuotes(t.Value)
	default:
		return s, syntaxErr(p.input, "expected an attribute value, got %q", t.Value)
	}
	p.pos++
	p.skipSpace()
	if !p.isDelim("]") {
		return s, syntaxErr(p.input, "unterminated attribute selector")
	}
	p.pos++
	return s, nil
}

// parseAttrOp reads one attribute operator. The scanner may deliver "~=" and
// friends as single tokens or as two delimiters.
func (p *selParser) parseAttrOp() (attrOp, error) {
	t := p.peek()
	switch t.Type {
	case scanner.Includes:
		p.pos++
		return opIncludes, nil
	case scanner.DashMatch:
		p.pos++
		return opDashMatch, nil
	case scanner.PrefixMatch:
		p.pos++
		return opPrefix, nil
	case scanner.SuffixMatch:
		p.pos++
		return opSuffix, nil
	case scanner.SubstringMatch:
		p.pos++
		return opSubstring, nil
	case scanner.Delim:
		var op attrOp
		switch t.Value {
		case "=":
			p.pos++
			return opEquals, nil
		case "~":
			op = opIncludes
		case "|":
			op = opDashMatch
		case "^":
			op = opPrefix
		case "$":
			op = opSuffix
		case "*":
			op = opSubstring
		default:
			return opPresent, syntaxErr(p.input, "expected an attribute operator, got %q", t.Value)
		}
		p.pos++
		if !p.isDelim("=") {
			return opPresent, syntaxErr(p.input, "expected %q after %q", "=", t.Value)
		}
		p.pos++
		return op, nil
	}
	return opPresent, syntaxErr(p.input, "expected an attribute operator, got %q", t.Value)
}

// parsePseudo consumes a pseudo-class starting at ":". Unsupported
// pseudo-classes are a compile error rather than a silent no-match.
func (p *selParser) parsePseudo() (simple, error) {
	s := simple{kind: simplePseudo}
	p.pos++ // consume ":"
	t := p.peek()
	if t == nil {
		return s, syntaxErr(p.input, "expected a pseudo-class name")
	}
	switch t.Type {
	case scanner.Ident:
		switch strings.ToLower(t.Value) {
		case "first-child":
			s.pseudo = pseudoFirstChild
		case "last-child":
			s.pseudo = pseudoLastChild
		case "only-child":
			s.pseudo = pseudoOnlyChild
		case "empty":
			s.pseudo = pseudoEmpty
		default:
			return s, syntaxErr(p.input, "unsupported pseudo-class :%s", t.Value)
		}
		p.pos++
		return s, nil
	case scanner.Function:
		name := strings.ToLower(strings.TrimSuffix(t.Value, "("))
		if name != "nth-child" {
			return s, syntaxErr(p.input, "unsupported pseudo-class :%s()", name)
		}
		p.pos++
		p.skipSpace()
		nt := p.peek()
		if nt == nil || nt.Type != scanner.Number {
			return s, syntaxErr(p.input, "nth-child wants an integer argument")
		}
		n, err := strconv.Atoi(nt.Value)
		if err != nil {
			return s, syntaxErr(p.input, "nth-child wants an integer argument, got %q", nt.Value)
		}
		p.pos++
		p.skipSpace()
		if !p.isDelim(")") {
			return s, syntaxErr(p.input, "unterminated nth-child argument")
		}
		p.pos++
		s.pseudo = pseudoNthChild
		s.nth = n
		return s, nil
	case scanner.Delim:
		if t.Value == ":" {
			return s, syntaxErr(p.input, "pseudo-elements are not supported")
		}
	}
	return s, syntaxErr(p.input, "expected a pseudo-class name, got %q", t.Value)
}

func trimQuotes(v string) string {
	if len(v) >= 2 {
		if q := v[0]; (q == '"' || q == '\'') && v[len(v)-1] == q {
			return v[1 : len(v)-1]
		}
	}
	return v
}
