package autumn

// Memoize wraps body with a per-position result cache, scoped to one
// Parse. It is entirely optional (spec.md §1: "memoization is
// optional and not required by the core"); grammars with heavy
// backtracking over shared prefixes (e.g. a LeftRecursive rule nested
// under several Choice alternatives) opt into it explicitly rather
// than paying the bookkeeping cost everywhere.
type Memoize struct {
	parserCore
	body Parser
}

func NewMemoize(body Parser) *Memoize {
	return &Memoize{parserCore: newParserCore("Memoize"), body: body}
}

func (m *Memoize) Children() []Parser { return []Parser{m.body} }

func (m *Memoize) Parse(pr *Parse) bool { return invoke(m, pr, false, m.doParse) }

func (m *Memoize) doParse(pr *Parse) bool {
	key := memoKey{id: m.id.String(), pos: pr.pos}
	if pr.memo != nil {
		if entry, ok := pr.memo[key]; ok {
			if !entry.ok {
				return false
			}
			pr.pos = entry.endPos
			for _, v := range entry.values {
				pr.PushValue(v)
			}
			return true
		}
	}

	depth0 := pr.ValueStackDepth()
	ok := m.body.Parse(pr)
	entry := &memoEntry{ok: ok}
	if ok {
		entry.endPos = pr.pos
		entry.values = pr.ValueStackSince(depth0)
	}
	if pr.memo == nil {
		pr.memo = make(map[memoKey]*memoEntry)
	}
	pr.memo[key] = entry
	return ok
}

func (m *Memoize) Accept(v ParserVisitor) error { return v.VisitMemoize(m) }
