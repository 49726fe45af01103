package autumn

// FirstSetVisitor computes the set of leaf parsers (Literal,
// CharPredicate, EndOfInput) that could be the first one consulted
// when matching a node, given the nullability and first sets already
// established for its children. Grammar tooling uses this to explain
// "what can appear here" without running a parse, and
// detectUnwrappedLeftRecursion's leftmost-corner walk is the same
// traversal specialized to cycle detection instead of collection.
type FirstSetVisitor struct {
	DefaultVisitor
	nullable map[string]bool
	known    map[string]map[string]Parser
	Result   map[string]Parser
}

func newFirstSetVisitor(nullable map[string]bool, known map[string]map[string]Parser) *FirstSetVisitor {
	return &FirstSetVisitor{nullable: nullable, known: known, Result: map[string]Parser{}}
}

func (f *FirstSetVisitor) union(children ...Parser) {
	for _, c := range children {
		for id, p := range f.known[c.ID().String()] {
			f.Result[id] = p
		}
	}
}

func (f *FirstSetVisitor) isNullable(p Parser) bool { return f.nullable[p.ID().String()] }

func (f *FirstSetVisitor) VisitLiteral(l *Literal) error {
	f.Result[l.ID().String()] = l
	return nil
}

func (f *FirstSetVisitor) VisitCharPredicate(c *CharPredicate) error {
	f.Result[c.ID().String()] = c
	return nil
}

func (f *FirstSetVisitor) VisitEndOfInput(e *EndOfInput) error {
	f.Result[e.ID().String()] = e
	return nil
}

func (f *FirstSetVisitor) VisitSequence(s *Sequence) error {
	for _, c := range s.children {
		f.union(c)
		if !f.isNullable(c) {
			break
		}
	}
	return nil
}

func (f *FirstSetVisitor) VisitChoice(c *Choice) error {
	f.union(c.children...)
	return nil
}

func (f *FirstSetVisitor) VisitOptional(o *Optional) error {
	f.union(o.body)
	return nil
}

func (f *FirstSetVisitor) VisitRepeat(r *Repeat) error {
	f.union(r.body)
	return nil
}

func (f *FirstSetVisitor) VisitLookAhead(l *LookAhead) error {
	f.union(l.body)
	return nil
}

func (f *FirstSetVisitor) VisitNot(n *Not) error {
	f.union(n.body)
	return nil
}

func (f *FirstSetVisitor) VisitAround(a *Around) error {
	f.union(a.a)
	return nil
}

func (f *FirstSetVisitor) VisitLeftRecursive(lr *LeftRecursive) error {
	f.union(lr.body)
	return nil
}

func (f *FirstSetVisitor) VisitSemanticAction(sa *SemanticAction) error {
	f.union(sa.body)
	return nil
}

func (f *FirstSetVisitor) VisitNode(na *NodeAction) error {
	f.union(na.body)
	return nil
}

func (f *FirstSetVisitor) VisitMemoize(m *Memoize) error {
	f.union(m.body)
	return nil
}

func (f *FirstSetVisitor) VisitRef(r *Ref) error {
	if r.target != nil {
		f.union(r.target)
	}
	return nil
}

// ComputeFirstSets returns, for every node reachable from root keyed
// by Parser.ID, the leaf parsers that could be consulted first. It
// builds on ComputeNullable and then iterates FirstSetVisitor to a
// fixed point for the same reason nullability needs one: first sets
// can depend on a node's own, through a cycle.
func ComputeFirstSets(root Parser) map[string]map[string]Parser {
	nullable := ComputeNullable(root)

	nodes := map[string]Parser{}
	NewParserWalker(func(p Parser, ev WalkEvent) {
		if ev == Before {
			nodes[p.ID().String()] = p
		}
	}).Walk(root)

	known := make(map[string]map[string]Parser, len(nodes))
	for id := range nodes {
		known[id] = map[string]Parser{}
	}

	for {
		changed := false
		for id, p := range nodes {
			v := newFirstSetVisitor(nullable, known)
			_ = p.Accept(v)
			before := len(known[id])
			for leafID, leaf := range v.Result {
				known[id][leafID] = leaf
			}
			if len(known[id]) != before {
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return known
}
