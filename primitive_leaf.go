package autumn

import "fmt"

// Literal matches the exact rune sequence s at the cursor, advancing
// by its length on success. It has no children and, on failure,
// contributes a leaf error at the entry position (spec.md §4.2).
type Literal struct {
	parserCore
	noChildren
	runes []rune
}

// NewLiteral builds a Literal named after its own quoted text.
func NewLiteral(s string) *Literal {
	return NewNamedLiteral(fmt.Sprintf("%q", s), s)
}

// NewNamedLiteral builds a Literal with an explicit diagnostic name.
func NewNamedLiteral(name, s string) *Literal {
	return &Literal{parserCore: newParserCore(name), runes: []rune(s)}
}

func (l *Literal) Parse(pr *Parse) bool { return invoke(l, pr, true, l.doParse) }

func (l *Literal) doParse(pr *Parse) bool {
	n, ok := pr.Input().MatchLiteral(pr.Pos(), l.runes)
	if !ok {
		return false
	}
	pr.Advance(n)
	return true
}

func (l *Literal) Accept(v ParserVisitor) error { return v.VisitLiteral(l) }

// CharPredicate matches a single input position satisfying pred. It
// covers character classes, ranges, and charsets alike (spec.md §4.2:
// "Literal(s) / CharPredicate"); convenience constructors below build
// the predicate for the common cases.
type CharPredicate struct {
	parserCore
	noChildren
	pred func(rune) bool
}

// NewCharPredicate builds a CharPredicate from an arbitrary predicate,
// named for diagnostics.
func NewCharPredicate(name string, pred func(rune) bool) *CharPredicate {
	return &CharPredicate{parserCore: newParserCore(name), pred: pred}
}

// NewCharRange builds a CharPredicate matching runes in [lo, hi].
func NewCharRange(lo, hi rune) *CharPredicate {
	name := fmt.Sprintf("%c-%c", lo, hi)
	return NewCharPredicate(name, func(r rune) bool { return r >= lo && r <= hi })
}

// NewCharSet builds a CharPredicate matching any rune in runes.
func NewCharSet(runes string) *CharPredicate {
	set := make(map[rune]bool, len(runes))
	for _, r := range runes {
		set[r] = true
	}
	name := fmt.Sprintf("[%s]", runes)
	return NewCharPredicate(name, func(r rune) bool { return set[r] })
}

func (c *CharPredicate) Parse(pr *Parse) bool { return invoke(c, pr, true, c.doParse) }

func (c *CharPredicate) doParse(pr *Parse) bool {
	n, ok := pr.Input().MatchPredicate(pr.Pos(), c.pred)
	if !ok {
		return false
	}
	pr.Advance(n)
	return true
}

func (c *CharPredicate) Accept(v ParserVisitor) error { return v.VisitCharPredicate(c) }

// EndOfInput succeeds only at the end of input, consuming nothing.
type EndOfInput struct {
	parserCore
	noChildren
}

func NewEndOfInput() *EndOfInput {
	return &EndOfInput{parserCore: newParserCore("<end of input>")}
}

func (e *EndOfInput) Parse(pr *Parse) bool { return invoke(e, pr, true, e.doParse) }

func (e *EndOfInput) doParse(pr *Parse) bool { return pr.AtEnd() }

func (e *EndOfInput) Accept(v ParserVisitor) error { return v.VisitEndOfInput(e) }
