package autumn

// NullabilityVisitor computes whether one Parser node can succeed
// while consuming zero positions, given the nullability already
// established for its children (spec.md §9, "computing nullable-first
// reachability"). It is the double-dispatch half of ComputeNullable's
// fixed-point loop, kept separate so a grammar author can reuse the
// per-node rule without repeating ComputeNullable's iteration.
type NullabilityVisitor struct {
	DefaultVisitor
	known  map[string]bool
	Result bool
}

func newNullabilityVisitor(known map[string]bool) *NullabilityVisitor {
	return &NullabilityVisitor{known: known}
}

func (n *NullabilityVisitor) isNullable(p Parser) bool { return n.known[p.ID().String()] }

func (n *NullabilityVisitor) VisitLiteral(l *Literal) error {
	n.Result = len(l.runes) == 0
	return nil
}

func (n *NullabilityVisitor) VisitCharPredicate(*CharPredicate) error {
	n.Result = false
	return nil
}

func (n *NullabilityVisitor) VisitEndOfInput(*EndOfInput) error {
	n.Result = true
	return nil
}

func (n *NullabilityVisitor) VisitSequence(s *Sequence) error {
	for _, c := range s.children {
		if !n.isNullable(c) {
			n.Result = false
			return nil
		}
	}
	n.Result = true
	return nil
}

func (n *NullabilityVisitor) VisitChoice(c *Choice) error {
	for _, child := range c.children {
		if n.isNullable(child) {
			n.Result = true
			return nil
		}
	}
	n.Result = false
	return nil
}

func (n *NullabilityVisitor) VisitOptional(*Optional) error {
	n.Result = true
	return nil
}

func (n *NullabilityVisitor) VisitRepeat(r *Repeat) error {
	n.Result = r.min == 0 || n.isNullable(r.body)
	return nil
}

func (n *NullabilityVisitor) VisitLookAhead(*LookAhead) error {
	n.Result = true
	return nil
}

func (n *NullabilityVisitor) VisitNot(*Not) error {
	n.Result = true
	return nil
}

func (n *NullabilityVisitor) VisitAround(a *Around) error {
	n.Result = a.min == 0 || n.isNullable(a.a)
	return nil
}

func (n *NullabilityVisitor) VisitLeftRecursive(lr *LeftRecursive) error {
	n.Result = n.isNullable(lr.body)
	return nil
}

func (n *NullabilityVisitor) VisitSemanticAction(sa *SemanticAction) error {
	n.Result = n.isNullable(sa.body)
	return nil
}

func (n *NullabilityVisitor) VisitNode(na *NodeAction) error {
	n.Result = n.isNullable(na.body)
	return nil
}

func (n *NullabilityVisitor) VisitMemoize(m *Memoize) error {
	n.Result = n.isNullable(m.body)
	return nil
}

func (n *NullabilityVisitor) VisitRef(r *Ref) error {
	if r.target == nil {
		n.Result = false
		return nil
	}
	n.Result = n.isNullable(r.target)
	return nil
}

// ComputeNullable returns, for every node reachable from root keyed by
// Parser.ID, whether that node can succeed while consuming zero
// positions. It iterates NullabilityVisitor to a fixed point, the only
// sound way to handle a cyclic grammar graph: a rule's nullability can
// depend on its own, via a LeftRecursive or Ref back-edge.
func ComputeNullable(root Parser) map[string]bool {
	nodes := map[string]Parser{}
	NewParserWalker(func(p Parser, ev WalkEvent) {
		if ev == Before {
			nodes[p.ID().String()] = p
		}
	}).Walk(root)

	nullable := make(map[string]bool, len(nodes))
	for {
		changed := false
		for id, p := range nodes {
			v := newNullabilityVisitor(nullable)
			_ = p.Accept(v)
			if v.Result != nullable[id] {
				nullable[id] = v.Result
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return nullable
}
