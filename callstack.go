package autumn

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/google/uuid"
)

// CallStackEntry is one active parser invocation, as recorded by
// Parse.callStack when ParseOptions.RecordCallStack is set (spec.md
// §3, §4.1).
type CallStackEntry struct {
	ParserID   uuid.UUID
	ParserName string
	Pos        int
}

// callStack is a stack of CallStackEntry, backed by gods' arraystack
// (the same data-structure library npillmayer-gorgo uses for its LR
// parse stacks) rather than a hand-rolled slice wrapper.
type callStack struct {
	stack *arraystack.Stack
}

func newCallStack() *callStack {
	return &callStack{stack: arraystack.New()}
}

func (c *callStack) push(e CallStackEntry) {
	c.stack.Push(e)
}

func (c *callStack) pop() {
	c.stack.Pop()
}

// snapshot returns the stack from bottom to top, the order a
// human-facing trace is usually printed in.
func (c *callStack) snapshot() []CallStackEntry {
	values := c.stack.Values()
	out := make([]CallStackEntry, len(values))
	// arraystack.Values() returns top-first; reverse it so callers
	// read the trace outermost-call-first.
	for i, v := range values {
		out[len(values)-1-i] = v.(CallStackEntry)
	}
	return out
}

func (c *callStack) size() int { return c.stack.Size() }
