package autumn

// lrKey identifies one (LeftRecursive node, start position) pair, the
// granularity at which seed-growing re-entrancy is detected (spec.md
// §4.2).
type lrKey struct {
	id  string
	pos int
}

// lrSeed is the seed-growing state for one lrKey: the longest match
// found so far, and whether growth is still in progress (growing ==
// true while the outer LeftRecursive.doParse loop for this key is on
// the Go call stack).
type lrSeed struct {
	pos     int
	ok      bool
	values  []Value
	growing bool
}

// Parse is the central mutable context a grammar is driven against
// (spec.md §3, §4.1). It owns its cursor, value stack, side-effect
// log, furthest-error tracker, and (optionally) a call-stack
// recording, for the duration of exactly one run. A Parser graph is
// read-only once a Parse begins; a Parse is never shared across
// goroutines (spec.md §5).
type Parse struct {
	input   Input
	pos     int
	lineMap LineMap

	valueStack *ValueStack
	log        *SideEffectLog

	options ParseOptions

	errorPos      int
	errorExpected *ExpectedSet
	errorCallSnap []CallStackEntry

	callStack *callStack

	growing map[lrKey]*lrSeed
	memo    map[memoKey]*memoEntry
}

// memoKey identifies one (Parser, position) pair for Memoize's cache
// (spec.md §1, "memoization is optional and not required by the
// core").
type memoKey struct {
	id  string
	pos int
}

type memoEntry struct {
	ok     bool
	endPos int
	values []Value
}

// newParse constructs a Parse ready to drive root against input.
// lineMap may be nil; diagnostics then report raw cursor offsets.
func newParse(input Input, lineMap LineMap, options ParseOptions) *Parse {
	return &Parse{
		input:         input,
		valueStack:    newValueStack(),
		log:           newSideEffectLog(),
		options:       options,
		errorPos:      -1,
		errorExpected: newExpectedSet(),
		callStack:     newCallStack(),
		lineMap:       lineMap,
		growing:       make(map[lrKey]*lrSeed),
	}
}

// Pos returns the current cursor.
func (pr *Parse) Pos() int { return pr.pos }

// Input returns the sequence being parsed.
func (pr *Parse) Input() Input { return pr.input }

// Advance moves the cursor forward by n positions. Used by leaf
// recognizers after a successful match; never logged, since cursor
// rollback is via the saved pos0 integer (spec.md §3).
func (pr *Parse) Advance(n int) { pr.pos += n }

// AtEnd reports whether the cursor has reached the end of input.
func (pr *Parse) AtEnd() bool { return pr.pos >= pr.input.Len() }

// Cancelled reports whether the caller's CancelToken, if any, asked
// the parse to abort (spec.md §5).
func (pr *Parse) Cancelled() bool {
	return pr.options.cancelToken != nil && pr.options.cancelToken.Cancelled()
}

// PushValue journals and appends v to the value stack. The journal
// entry's inverse pops it back off, so a containing combinator's
// failure cleanly restores the stack (spec.md §9).
func (pr *Parse) PushValue(v Value) {
	pr.valueStack.push(v)
	pr.log.Apply(func() { pr.valueStack.pop() })
}

// PopValue journals and removes the top value, returning it. The
// journal entry's inverse re-pushes it, so rollback restores exactly
// what PushValue would have left behind.
func (pr *Parse) PopValue() Value {
	v := pr.valueStack.pop()
	pr.log.Apply(func() { pr.valueStack.push(v) })
	return v
}

// ValueStackDepth returns the current number of values on the stack.
func (pr *Parse) ValueStackDepth() int { return pr.valueStack.Depth() }

// ValueStackSince returns a copy of the values pushed since depth.
func (pr *Parse) ValueStackSince(depth int) []Value { return pr.valueStack.since(depth) }

// ApplyEffect journals a user-defined reversible mutation that has
// already been performed. This is the primitive SemanticAction (and
// any custom grammar code) uses to make external state backtrack-safe
// (spec.md §9).
func (pr *Parse) ApplyEffect(inverse func()) { pr.log.Apply(inverse) }

// recordFailure implements the furthest-error tracker rule (spec.md
// §4.1): the first leaf failure at a new furthest position resets the
// expected set; ties accumulate into it; anything short of the
// furthest position is ignored.
func (pr *Parse) recordFailure(self Parser, pos int) {
	switch {
	case pos > pr.errorPos:
		pr.errorPos = pos
		pr.errorExpected.reset()
		pr.errorExpected.add(self)
		if pr.options.recordCallStack {
			pr.errorCallSnap = pr.callStack.snapshot()
		}
	case pos == pr.errorPos:
		pr.errorExpected.add(self)
	default:
		// pos < errorPos: a stale, already-superseded failure; ignore.
	}
}

// checkpoint is a cheap snapshot of everything a combinator needs to
// fully undo an attempt: cursor, log size, and value-stack depth.
type checkpoint struct {
	pos   int
	log   int
	depth int
}

func (pr *Parse) checkpoint() checkpoint {
	return checkpoint{pos: pr.pos, log: pr.log.Size(), depth: pr.valueStack.Depth()}
}

// restore undoes everything performed since cp was taken.
func (pr *Parse) restore(cp checkpoint) {
	pr.pos = cp.pos
	pr.log.Rollback(cp.log)
	pr.valueStack.truncateTo(cp.depth)
}

// withSuppressedErrors runs f, then restores the furthest-error
// tracker to its pre-call state regardless of f's outcome. Used by
// Not and by Around's trailing-separator attempt, both of which must
// not let an expected inner failure pollute error_expected (spec.md
// §4.2, §9 "Open questions").
func (pr *Parse) withSuppressedErrors(f func() bool) bool {
	savedPos := pr.errorPos
	savedExpected := pr.errorExpected.Parsers()
	savedSnap := pr.errorCallSnap

	ok := f()

	pr.errorPos = savedPos
	pr.errorExpected.reset()
	for _, p := range savedExpected {
		pr.errorExpected.add(p)
	}
	pr.errorCallSnap = savedSnap
	return ok
}

func (pr *Parse) pushCall(p Parser, pos int) {
	pr.callStack.push(CallStackEntry{ParserID: p.ID(), ParserName: p.Name(), Pos: pos})
}

func (pr *Parse) popCall() { pr.callStack.pop() }

// locate converts a raw cursor offset to a Location via the
// configured LineMap, falling back to a bare offset-as-column when no
// LineMap was supplied.
func (pr *Parse) locate(offset int) Location {
	if pr.lineMap == nil {
		return Location{Line: 1, Column: offset + 1, Cursor: offset}
	}
	return pr.lineMap.Locate(offset)
}
