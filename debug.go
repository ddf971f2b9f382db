package htmlselect

import (
	"fmt"
	"strings"
)

// String renders the compiled selector list back into canonical form: one
// space around combinators, attribute values quoted, names lower-cased.
func (sel *Selector) String() string {
	ret := []string{}
	for _, alt := range sel.alts {
		ret = append(ret, alt.String())
	}
	return strings.Join(ret, ", ")
}

func (cs complexSelector) String() string {
	var b strings.Builder
	for i, c := range cs.seq {
		if i > 0 {
			switch cs.combs[i-1] {
			case combDescendant:
				b.WriteString(" ")
			case combChild:
				b.WriteString(" > ")
			case combAdjacent:
				b.WriteString(" + ")
			case combGeneral:
				b.WriteString(" ~ ")
			}
		}
		b.WriteString(c.String())
	}
	return b.String()
}

func (c compound) String() string {
	var b strings.Builder
	for _, s := range c {
		b.WriteString(s.String())
	}
	return b.String()
}

func (s simple) String() string {
	switch s.kind {
	case simpleType:
		return s.name
	case simpleUniversal:
		return "*"
	case simpleID:
		return "#" + s.value
	case simpleClass:
		return "." + s.value
	case simpleAttr:
		if s.op == opPresent {
			return "[" + s.name + "]"
		}
		op := map[attrOp]string{
			opEquals: "=", opIncludes: "~=", opDashMatch: "|=",
			opPrefix: "^=", opSuffix: "$=", opSubstring: "*=",
		}[s.op]
		return fmt.Sprintf("[%s%s%q]", s.name, op, s.value)
	case simplePseudo:
		switch s.pseudo {
		case pseudoFirstChild:
			return ":first-child"
		case pseudoLastChild:
			return ":last-child"
		case pseudoOnlyChild:
			return ":only-child"
		case pseudoNthChild:
			return fmt.Sprintf(":nth-child(%d)", s.nth)
		case pseudoEmpty:
			return ":empty"
		}
	}
	return ""
}
