package autumn

// ParserVisitor is the double-dispatch interface used to implement
// analyses, pretty-printers, and transformations without polluting
// parser definitions (spec.md §4.4). Every concrete Parser kind has a
// Visit method; Parser.Accept calls back into exactly one of them.
type ParserVisitor interface {
	VisitLiteral(*Literal) error
	VisitCharPredicate(*CharPredicate) error
	VisitEndOfInput(*EndOfInput) error
	VisitSequence(*Sequence) error
	VisitChoice(*Choice) error
	VisitOptional(*Optional) error
	VisitRepeat(*Repeat) error
	VisitLookAhead(*LookAhead) error
	VisitNot(*Not) error
	VisitAround(*Around) error
	VisitLeftRecursive(*LeftRecursive) error
	VisitSemanticAction(*SemanticAction) error
	VisitNode(*NodeAction) error
	VisitMemoize(*Memoize) error
	VisitRef(*Ref) error
}

// DefaultVisitor implements every ParserVisitor method as a no-op
// returning nil. Embed it in a visitor that only cares about a few
// kinds; the rest fall through to this default, matching spec.md
// §4.4's "double dispatch... with a default fallback" and §9's note
// that new parser kinds must provide both a traversal and a visitor
// hook — existing visitors embedding DefaultVisitor don't need
// updating when that happens.
type DefaultVisitor struct{}

func (DefaultVisitor) VisitLiteral(*Literal) error             { return nil }
func (DefaultVisitor) VisitCharPredicate(*CharPredicate) error  { return nil }
func (DefaultVisitor) VisitEndOfInput(*EndOfInput) error        { return nil }
func (DefaultVisitor) VisitSequence(*Sequence) error            { return nil }
func (DefaultVisitor) VisitChoice(*Choice) error                { return nil }
func (DefaultVisitor) VisitOptional(*Optional) error            { return nil }
func (DefaultVisitor) VisitRepeat(*Repeat) error                { return nil }
func (DefaultVisitor) VisitLookAhead(*LookAhead) error          { return nil }
func (DefaultVisitor) VisitNot(*Not) error                      { return nil }
func (DefaultVisitor) VisitAround(*Around) error                { return nil }
func (DefaultVisitor) VisitLeftRecursive(*LeftRecursive) error  { return nil }
func (DefaultVisitor) VisitSemanticAction(*SemanticAction) error { return nil }
func (DefaultVisitor) VisitNode(*NodeAction) error              { return nil }
func (DefaultVisitor) VisitMemoize(*Memoize) error              { return nil }
func (DefaultVisitor) VisitRef(*Ref) error                      { return nil }
