package autumn

// Sequence succeeds iff every child succeeds in order at the
// successive positions. On any failure it rolls back to its entry
// state and fails as a whole (spec.md §4.2). Being composite, it
// never contributes to the furthest-error tracker itself; only its
// leaf children do.
type Sequence struct {
	parserCore
	children []Parser
}

func NewSequence(children ...Parser) *Sequence {
	return &Sequence{parserCore: newParserCore("Sequence"), children: children}
}

func (s *Sequence) Children() []Parser { return s.children }

func (s *Sequence) Parse(pr *Parse) bool { return invoke(s, pr, false, s.doParse) }

func (s *Sequence) doParse(pr *Parse) bool {
	for _, c := range s.children {
		if !c.Parse(pr) {
			return false
		}
	}
	return true
}

func (s *Sequence) Accept(v ParserVisitor) error { return v.VisitSequence(s) }

// Choice tries each child in order (PEG-style, not longest-match) and
// takes the first success. If every child fails, Choice fails; each
// rejected alternative's own rollback (performed by its own Parse
// call) guarantees no observable effect leaks from a rejected
// alternative (spec.md §4.2).
type Choice struct {
	parserCore
	children []Parser
}

func NewChoice(children ...Parser) *Choice {
	return &Choice{parserCore: newParserCore("Choice"), children: children}
}

func (c *Choice) Children() []Parser { return c.children }

func (c *Choice) Parse(pr *Parse) bool { return invoke(c, pr, false, c.doParse) }

func (c *Choice) doParse(pr *Parse) bool {
	for _, child := range c.children {
		if child.Parse(pr) {
			return true
		}
	}
	return false
}

func (c *Choice) Accept(v ParserVisitor) error { return v.VisitChoice(c) }
