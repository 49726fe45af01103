package autumn

import (
	"fmt"
	"strconv"
	"strings"
)

// GrammarPrinter renders a Parser graph as PEG-like text, the same
// "walk and render" shape value.go's Value.String methods use for AST
// fragments, applied here to the grammar itself instead of its
// matches. It is built on ParserWalker rather than Accept alone so that
// a rule referenced from more than one place, or participating in a
// cycle through Ref/LeftRecursive, prints once with a name and is
// referenced by that name everywhere else (spec.md §4.3, §4.4).
type GrammarPrinter struct {
	names map[string]string
	order []string
	defs  map[string]string
}

// NewGrammarPrinter builds an empty printer.
func NewGrammarPrinter() *GrammarPrinter {
	return &GrammarPrinter{names: map[string]string{}, defs: map[string]string{}}
}

// Print renders root and returns the grammar text: one rule per line,
// "name <- body", in the order the walker first enters each node:
// pre-order, root first.
func (gp *GrammarPrinter) Print(root Parser) string {
	NewParserWalker(func(p Parser, ev WalkEvent) {
		if ev != Before {
			return
		}
		gp.nameFor(p)
	}).Walk(root)

	rv := &renderVisitor{gp: gp}

	// Render every named node's body once, in first-seen order.
	NewParserWalker(func(p Parser, ev WalkEvent) {
		if ev != Before {
			return
		}
		id := p.ID().String()
		if _, done := gp.defs[id]; done {
			return
		}
		rv.current = p
		_ = p.Accept(rv)
		gp.defs[id] = rv.text
	}).Walk(root)

	var b strings.Builder
	for _, id := range gp.order {
		fmt.Fprintf(&b, "%s <- %s\n", gp.names[id], gp.defs[id])
	}
	return b.String()
}

func (gp *GrammarPrinter) nameFor(p Parser) string {
	id := p.ID().String()
	if name, ok := gp.names[id]; ok {
		return name
	}
	name := p.Name()
	if name == "" {
		name = "rule" + strconv.Itoa(len(gp.order))
	}
	gp.names[id] = name
	gp.order = append(gp.order, id)
	return name
}

func (gp *GrammarPrinter) ref(p Parser) string {
	return gp.nameFor(p)
}

// renderVisitor renders exactly one node's own production, referring
// to children by their grammar-printer name rather than recursing:
// recursion is GrammarPrinter.Print's job, over the full node set the
// walker already discovered, so cycles can't cause infinite text.
type renderVisitor struct {
	DefaultVisitor
	gp      *GrammarPrinter
	current Parser
	text    string
}

func (r *renderVisitor) VisitLiteral(l *Literal) error {
	r.text = strconv.Quote(string(l.runes))
	return nil
}

func (r *renderVisitor) VisitCharPredicate(c *CharPredicate) error {
	r.text = c.Name()
	return nil
}

func (r *renderVisitor) VisitEndOfInput(*EndOfInput) error {
	r.text = "$"
	return nil
}

func (r *renderVisitor) VisitSequence(s *Sequence) error {
	parts := make([]string, len(s.children))
	for i, c := range s.children {
		parts[i] = r.gp.ref(c)
	}
	r.text = strings.Join(parts, " ")
	return nil
}

func (r *renderVisitor) VisitChoice(c *Choice) error {
	parts := make([]string, len(c.children))
	for i, ch := range c.children {
		parts[i] = r.gp.ref(ch)
	}
	r.text = strings.Join(parts, " / ")
	return nil
}

func (r *renderVisitor) VisitOptional(o *Optional) error {
	r.text = r.gp.ref(o.body) + "?"
	return nil
}

func (r *renderVisitor) VisitRepeat(rep *Repeat) error {
	inner := r.gp.ref(rep.body)
	switch {
	case rep.min == 0 && rep.max == NoLimit:
		r.text = inner + "*"
	case rep.min == 1 && rep.max == NoLimit:
		r.text = inner + "+"
	default:
		max := "inf"
		if rep.max != NoLimit {
			max = strconv.Itoa(rep.max)
		}
		r.text = fmt.Sprintf("%s{%d,%s}", inner, rep.min, max)
	}
	return nil
}

func (r *renderVisitor) VisitLookAhead(la *LookAhead) error {
	r.text = "&" + r.gp.ref(la.body)
	return nil
}

func (r *renderVisitor) VisitNot(n *Not) error {
	r.text = "!" + r.gp.ref(n.body)
	return nil
}

func (r *renderVisitor) VisitAround(a *Around) error {
	r.text = fmt.Sprintf("around(%s, %s, min=%d, exact=%v, trailing=%v)",
		r.gp.ref(a.a), r.gp.ref(a.i), a.min, a.exact, a.trailing)
	return nil
}

func (r *renderVisitor) VisitLeftRecursive(lr *LeftRecursive) error {
	r.text = "leftrec(" + r.gp.ref(lr.body) + ")"
	return nil
}

func (r *renderVisitor) VisitSemanticAction(sa *SemanticAction) error {
	r.text = r.gp.ref(sa.body) + " { action }"
	return nil
}

func (r *renderVisitor) VisitNode(na *NodeAction) error {
	r.text = fmt.Sprintf("%s { node %q }", r.gp.ref(na.body), na.Label)
	return nil
}

func (r *renderVisitor) VisitMemoize(m *Memoize) error {
	r.text = "memo(" + r.gp.ref(m.body) + ")"
	return nil
}

func (r *renderVisitor) VisitRef(ref *Ref) error {
	if ref.target == nil {
		r.text = "<unresolved>"
		return nil
	}
	r.text = r.gp.ref(ref.target)
	return nil
}
