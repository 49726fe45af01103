package autumn

// LookAhead succeeds iff body succeeds, but always restores pos and
// the log to their entry state: it has no net effect either way
// (spec.md §4.2, §8 "LookAhead/Not idempotence"). Unlike Not, an inner
// failure is a real diagnostic and still updates the furthest-error
// tracker.
type LookAhead struct {
	parserCore
	body Parser
}

func NewLookAhead(body Parser) *LookAhead {
	return &LookAhead{parserCore: newParserCore("LookAhead"), body: body}
}

func (la *LookAhead) Children() []Parser { return []Parser{la.body} }

func (la *LookAhead) Parse(pr *Parse) bool { return invoke(la, pr, false, la.doParse) }

func (la *LookAhead) doParse(pr *Parse) bool {
	cp := pr.checkpoint()
	ok := la.body.Parse(pr)
	pr.restore(cp)
	return ok
}

func (la *LookAhead) Accept(v ParserVisitor) error { return v.VisitLookAhead(la) }

// Not succeeds iff body fails, with the same no-net-effect guarantee
// as LookAhead. An inner failure is expected, not diagnostic, so it
// never updates the furthest-error tracker (spec.md §4.2).
type Not struct {
	parserCore
	body Parser
}

func NewNot(body Parser) *Not {
	return &Not{parserCore: newParserCore("Not"), body: body}
}

func (n *Not) Children() []Parser { return []Parser{n.body} }

func (n *Not) Parse(pr *Parse) bool { return invoke(n, pr, false, n.doParse) }

func (n *Not) doParse(pr *Parse) bool {
	cp := pr.checkpoint()
	ok := pr.withSuppressedErrors(func() bool { return n.body.Parse(pr) })
	pr.restore(cp)
	return !ok
}

func (n *Not) Accept(v ParserVisitor) error { return v.VisitNot(n) }
