package autumn

import "github.com/google/uuid"

// Parser is an immutable node in the (possibly cyclic) combinator
// graph (spec.md §3). Nodes are built once at grammar-construction
// time, shared across any number of Parses, and never mutated during
// parsing. The interface is intentionally closed to this package's
// primitives: a grammar author composes the primitives in primitive_*.go
// rather than implementing Parser directly, the same way the teacher
// closes its AstNode set over a fixed list of node kinds.
type Parser interface {
	// ID uniquely and stably identifies this node, used for
	// furthest-error de-duplication and walker cycle detection.
	ID() uuid.UUID

	// Name is a human-readable label, used in diagnostics and the
	// grammar printer. May be empty.
	Name() string

	// Children lists this node's direct children in grammar order.
	// May contain back-edges that make the graph cyclic.
	Children() []Parser

	// Accept double-dispatches into a ParserVisitor.
	Accept(ParserVisitor) error

	// Parse drives this node against pr, implementing the
	// transactional invocation protocol of spec.md §4.1. Returns
	// whether the match succeeded; pr.Pos() reflects the new cursor
	// on success, and is restored to its entry value on failure.
	Parse(pr *Parse) bool
}

// parserCore is embedded by every concrete primitive to provide the
// identity and naming half of the Parser interface, following the
// teacher's BaseParser idiom of one small struct supplying the
// infrastructure every node shares.
type parserCore struct {
	id   uuid.UUID
	name string
}

func newParserCore(name string) parserCore {
	return parserCore{id: uuid.New(), name: name}
}

func (c *parserCore) ID() uuid.UUID { return c.id }
func (c *parserCore) Name() string  { return c.name }

// noChildren is embedded by leaf primitives (Literal, CharPredicate,
// EndOfInput) that have no children.
type noChildren struct{}

func (noChildren) Children() []Parser { return nil }

// invoke implements the transactional invocation protocol from
// spec.md §4.1, steps 1-6. Every concrete Parser.Parse method is a
// one-line call to invoke, passing its own doParse as body. leaf
// marks whether self may directly contribute to the furthest-error
// tracker (only primitive recognizers do; composite parsers never
// record errors themselves, spec.md §4.1 "Leaf vs composite error
// contribution").
func invoke(self Parser, pr *Parse, leaf bool, body func(pr *Parse) bool) bool {
	pos0 := pr.pos
	log0 := pr.log.Size()

	if pr.options.recordCallStack {
		pr.pushCall(self, pos0)
	}
	if pr.options.trace {
		pr.traceEnter(self, pos0)
	}

	ok := body(pr)

	if pr.options.recordCallStack {
		pr.popCall()
	}

	if !ok {
		pr.log.Rollback(log0)
		pr.pos = pos0
		if leaf {
			pr.recordFailure(self, pos0)
		}
		if pr.options.trace {
			pr.traceFail(self, pos0)
		}
		return false
	}

	if pr.options.trace {
		pr.traceSucceed(self, pos0, pr.pos)
	}
	return true
}
