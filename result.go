package autumn

import (
	"fmt"
	"strings"
)

// ParseResult is the immutable outcome of one Run (spec.md §3). It
// owns its own snapshots (value stack, call-stack snapshot) and
// shares the Parser graph and LineMap by reference.
type ParseResult struct {
	Success   bool
	FullMatch bool
	MatchSize int

	ErrorPosition Location
	ErrorExpected []string

	Thrown interface{}

	CallStackSnapshot []CallStackEntry
	ValueStack        []Value

	LineMap LineMap
}

func buildParseResult(pr *Parse, root Parser, success bool) *ParseResult {
	res := &ParseResult{
		Success:    success,
		ValueStack: pr.valueStack.Snapshot(),
		LineMap:    pr.lineMap,
	}
	if success {
		res.MatchSize = pr.Pos()
		res.FullMatch = pr.AtEnd()
	}
	if pr.errorPos >= 0 {
		res.ErrorPosition = pr.locate(pr.errorPos)
		res.ErrorExpected = pr.errorExpected.Names()
	}
	if pr.options.recordCallStack {
		res.CallStackSnapshot = pr.errorCallSnap
	}
	return res
}

// AppendTo renders a multi-section human-readable report into b:
// outcome line; match size or furthest-error location; the
// de-duplicated expected-parser list; the call-stack snapshot, if
// recorded; and the final value-stack listing (spec.md §4.5, §6).
// lineMap overrides the one the Parse was run with, if non-nil —
// callers that didn't pass one to Run can supply one after the fact
// purely for reporting.
func (r *ParseResult) AppendTo(b *strings.Builder, lineMap LineMap) {
	if lineMap == nil {
		lineMap = r.LineMap
	}

	switch {
	case r.Thrown != nil:
		fmt.Fprintf(b, "parse aborted: %v\n", r.Thrown)
	case r.Success && r.FullMatch:
		fmt.Fprintf(b, "parse succeeded (full match, %d positions consumed)\n", r.MatchSize)
	case r.Success:
		fmt.Fprintf(b, "parse succeeded (partial match, %d positions consumed)\n", r.MatchSize)
	default:
		b.WriteString("parse failed\n")
	}

	if !r.Success || !r.FullMatch {
		loc := r.ErrorPosition
		if lineMap != nil {
			loc = lineMap.Locate(r.ErrorPosition.Cursor)
		}
		fmt.Fprintf(b, "furthest error at %s\n", loc)
		if len(r.ErrorExpected) > 0 {
			b.WriteString("expected one of:\n")
			for _, name := range r.ErrorExpected {
				fmt.Fprintf(b, "  - %s\n", name)
			}
		}
	}

	if len(r.CallStackSnapshot) > 0 {
		b.WriteString("call stack at furthest error:\n")
		for _, entry := range r.CallStackSnapshot {
			fmt.Fprintf(b, "  %s @ %d\n", entry.ParserName, entry.Pos)
		}
	}

	if len(r.ValueStack) > 0 {
		b.WriteString("value stack:\n")
		for _, v := range r.ValueStack {
			fmt.Fprintf(b, "  %s\n", v.String())
		}
	}
}

// String renders the report with the Parse's own LineMap.
func (r *ParseResult) String() string {
	var b strings.Builder
	r.AppendTo(&b, nil)
	return b.String()
}
