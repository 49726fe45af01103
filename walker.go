package autumn

import "github.com/emirpasic/gods/sets/hashset"

// WalkEvent is the kind of encounter ParserWalker reports for a node.
type WalkEvent int

const (
	// Before is emitted the first time a node is entered, before its
	// children are visited.
	Before WalkEvent = iota
	// After is emitted once a node's children have all been visited.
	After
	// Recurse is emitted when a node is encountered again while it is
	// still on the current traversal path: a cycle edge.
	Recurse
	// Visited is emitted when a node is encountered again after
	// already being fully visited (not on the current path).
	Visited
)

func (e WalkEvent) String() string {
	switch e {
	case Before:
		return "BEFORE"
	case After:
		return "AFTER"
	case Recurse:
		return "RECURSE"
	case Visited:
		return "VISITED"
	default:
		return "UNKNOWN"
	}
}

// ParserWalker traverses a (possibly cyclic) Parser graph in
// pre/post-order depth-first order, guaranteeing each node receives
// exactly one Before/After pair and every additional encounter yields
// exactly one Recurse or Visited event (spec.md §4.3).
type ParserWalker struct {
	visited *hashset.Set
	stack   []string
	onStack map[string]bool
	work    func(Parser, WalkEvent)
}

// NewParserWalker builds a walker that calls work for every event.
func NewParserWalker(work func(Parser, WalkEvent)) *ParserWalker {
	return &ParserWalker{
		visited: hashset.New(),
		onStack: make(map[string]bool),
		work:    work,
	}
}

// Walk traverses root and its descendants.
func (w *ParserWalker) Walk(root Parser) {
	w.walk(root)
}

func (w *ParserWalker) walk(p Parser) {
	key := p.ID().String()

	if w.onStack[key] {
		w.work(p, Recurse)
		return
	}
	if w.visited.Contains(key) {
		w.work(p, Visited)
		return
	}

	w.onStack[key] = true
	w.stack = append(w.stack, key)
	w.visited.Add(key)

	w.work(p, Before)
	for _, child := range p.Children() {
		w.walk(child)
	}
	w.work(p, After)

	w.stack = w.stack[:len(w.stack)-1]
	delete(w.onStack, key)
}
