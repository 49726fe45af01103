package autumn

// Optional tries body and always succeeds: with body's effects if it
// matched, with none otherwise (spec.md §4.2). It is syntactic sugar
// for Choice(body, Empty), implemented directly so it never needs an
// explicit empty alternative.
type Optional struct {
	parserCore
	body Parser
}

func NewOptional(body Parser) *Optional {
	return &Optional{parserCore: newParserCore("Optional"), body: body}
}

func (o *Optional) Children() []Parser { return []Parser{o.body} }

func (o *Optional) Parse(pr *Parse) bool { return invoke(o, pr, false, o.doParse) }

func (o *Optional) doParse(pr *Parse) bool {
	o.body.Parse(pr)
	return true
}

func (o *Optional) Accept(v ParserVisitor) error { return v.VisitOptional(o) }
