package autumn

import (
	"fmt"

	"github.com/stretchr/testify/require"
)

// TestFixture drives a grammar against an input exactly twice and
// diffs the two ParseResults, the determinism check spec.md §4.6
// describes: any combinator that mutates external state without
// journaling it through Parse.ApplyEffect, or any primitive that
// reads something outside of Input/Parse, shows up as a divergence
// between run one and run two that plain success/failure assertions
// would never catch.
type TestFixture struct {
	// ColumnStart and TabWidth configure the CharLineMap built for
	// character inputs, matching the conventions a grammar's own
	// diagnostics should use (spec.md §6). Defaults: 1 and 4.
	ColumnStart int
	TabWidth    int

	// RecordCallStack mirrors WithRecordCallStack on every run this
	// fixture drives. Defaults to true, since the call-stack snapshot
	// is usually what a failing assertion's message needs to be
	// useful.
	RecordCallStack bool

	// TraceSeparator is a trace-output delimiter kept with the
	// fixture's configuration. Defaults to "\n------". Run and
	// RequireDeterministic do not capture trace output and do not read
	// this field.
	TraceSeparator string

	// ExtraOptions are appended to every Run this fixture performs, in
	// addition to the ones it derives from the fields above.
	ExtraOptions []Option
}

// NewTestFixture builds a TestFixture with spec.md §6's defaults.
func NewTestFixture() *TestFixture {
	return &TestFixture{
		ColumnStart:     1,
		TabWidth:        4,
		RecordCallStack: true,
		TraceSeparator:  "\n------",
	}
}

func (f *TestFixture) options() []Option {
	opts := []Option{}
	if f.RecordCallStack {
		opts = append(opts, WithRecordCallStack())
	}
	opts = append(opts, f.ExtraOptions...)
	return opts
}

func (f *TestFixture) lineMap(input Input) LineMap {
	if ri, ok := input.(*RuneInput); ok {
		return NewCharLineMap(ri.Runes(), CharLineMapOptions{ColumnStart: f.ColumnStart, TabWidth: f.TabWidth})
	}
	return NewTokenLineMap()
}

// Divergence describes one respect in which two runs of the same
// parser over the same input disagreed.
type Divergence struct {
	Field string
	First string
	Second string
}

func (d Divergence) String() string {
	return fmt.Sprintf("%s differs between runs: first=%q second=%q", d.Field, d.First, d.Second)
}

// Run drives parser against input twice with identical options and
// returns both ParseResults along with any divergences found between
// them. It never calls testify itself; RequireDeterministic does that,
// so a caller that wants the raw comparison without failing a test can
// call Run directly.
func (f *TestFixture) Run(parser Parser, input Input) (first, second *ParseResult, divergences []Divergence) {
	opts := append(append([]Option{}, f.options()...), WithLineMap(f.lineMap(input)))

	first, err1 := Run(parser, input, opts...)
	second, err2 := Run(parser, input, opts...)

	if err1 != nil || err2 != nil {
		divergences = append(divergences, Divergence{
			Field:  "configuration error",
			First:  errString(err1),
			Second: errString(err2),
		})
		return first, second, divergences
	}

	divergences = append(divergences, compareResults(first, second)...)
	return first, second, divergences
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func compareResults(a, b *ParseResult) []Divergence {
	var out []Divergence

	if a.Success != b.Success {
		out = append(out, Divergence{"success", fmt.Sprint(a.Success), fmt.Sprint(b.Success)})
	}
	if a.FullMatch != b.FullMatch {
		out = append(out, Divergence{"full_match", fmt.Sprint(a.FullMatch), fmt.Sprint(b.FullMatch)})
	}
	if a.MatchSize != b.MatchSize {
		out = append(out, Divergence{"match_size", fmt.Sprint(a.MatchSize), fmt.Sprint(b.MatchSize)})
	}
	if a.ErrorPosition != b.ErrorPosition {
		out = append(out, Divergence{"error_position", a.ErrorPosition.String(), b.ErrorPosition.String()})
	}
	if fmt.Sprint(a.ErrorExpected) != fmt.Sprint(b.ErrorExpected) {
		out = append(out, Divergence{"error_expected", fmt.Sprint(a.ErrorExpected), fmt.Sprint(b.ErrorExpected)})
	}
	if (a.Thrown == nil) != (b.Thrown == nil) || fmt.Sprint(a.Thrown) != fmt.Sprint(b.Thrown) {
		out = append(out, Divergence{"thrown", fmt.Sprint(a.Thrown), fmt.Sprint(b.Thrown)})
	}
	if len(a.ValueStack) != len(b.ValueStack) {
		out = append(out, Divergence{"value_stack length", fmt.Sprint(len(a.ValueStack)), fmt.Sprint(len(b.ValueStack))})
	} else {
		for i := range a.ValueStack {
			if a.ValueStack[i].String() != b.ValueStack[i].String() {
				out = append(out, Divergence{
					Field:  fmt.Sprintf("value_stack[%d]", i),
					First:  a.ValueStack[i].String(),
					Second: b.ValueStack[i].String(),
				})
			}
		}
	}

	return out
}

// tHelper is the subset of testing.TB RequireDeterministic needs, kept
// narrow so callers can pass a *testing.T or *testing.B without this
// package importing "testing" itself.
type tHelper interface {
	require.TestingT
	Helper()
}

// RequireDeterministic runs Run and fails t with a full report of every
// divergence if the two runs disagreed in any respect (spec.md §4.6,
// §8 scenario 8). It is the entry point grammar test suites are
// expected to call for every fixture input.
func (f *TestFixture) RequireDeterministic(t tHelper, parser Parser, input Input) *ParseResult {
	t.Helper()

	first, _, divergences := f.Run(parser, input)
	if len(divergences) == 0 {
		return first
	}

	msgs := make([]string, len(divergences))
	for i, d := range divergences {
		msgs[i] = d.String()
	}
	require.Failf(t, "non-deterministic parse", "%v", msgs)
	return first
}
