package autumn

// LeftRecursive wraps a rule body that (directly or indirectly) calls
// back into itself at the same position it started at, the one shape
// plain PEG backtracking cannot handle on its own (spec.md §4.2,
// §9). It implements seed growing: seed the result as a failure at
// the entry position, then repeatedly re-invoke the body, keeping the
// longest match, until an iteration fails to extend it. Re-entry of
// the same LeftRecursive node at the same position short-circuits to
// the seed currently being grown, rather than recursing again.
type LeftRecursive struct {
	parserCore
	body Parser
}

func NewLeftRecursive(body Parser) *LeftRecursive {
	return &LeftRecursive{parserCore: newParserCore("LeftRecursive"), body: body}
}

func (lr *LeftRecursive) Children() []Parser { return []Parser{lr.body} }

func (lr *LeftRecursive) Parse(pr *Parse) bool { return invoke(lr, pr, false, lr.doParse) }

func (lr *LeftRecursive) doParse(pr *Parse) bool {
	start := pr.pos
	key := lrKey{id: lr.id.String(), pos: start}

	if seed, ok := pr.growing[key]; ok && seed.growing {
		pr.pos = seed.pos
		for _, val := range seed.values {
			pr.PushValue(val)
		}
		return seed.ok
	}

	seed := &lrSeed{pos: start, ok: false, growing: true}
	pr.growing[key] = seed
	defer delete(pr.growing, key)

	cp := pr.checkpoint()
	for {
		if pr.Cancelled() {
			break
		}
		pr.restore(cp)
		ok := lr.body.Parse(pr)
		if !ok {
			break
		}
		if seed.ok && pr.pos <= seed.pos {
			// no further progress: the last iteration only
			// re-derived the existing seed via self-reference.
			break
		}
		seed.pos = pr.pos
		seed.ok = true
		seed.values = pr.ValueStackSince(cp.depth)
	}

	pr.restore(cp)
	if seed.ok {
		pr.pos = seed.pos
		for _, val := range seed.values {
			pr.PushValue(val)
		}
	}
	return seed.ok
}

func (lr *LeftRecursive) Accept(v ParserVisitor) error { return v.VisitLeftRecursive(lr) }
