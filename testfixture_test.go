package autumn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTestFixture_DeterministicGrammarHasNoDivergences(t *testing.T) {
	f := NewTestFixture()
	parser := NewSequence(NewLiteral("a"), NewLiteral("b"))

	first, second, divergences := f.Run(parser, NewRuneInput("ab"))
	assert.Empty(t, divergences)
	assert.Equal(t, first.Success, second.Success)
	assert.Equal(t, first.MatchSize, second.MatchSize)
}

func TestTestFixture_RequireDeterministic_PassesOnDeterministicGrammar(t *testing.T) {
	f := NewTestFixture()
	parser := NewLiteral("abc")

	res := f.RequireDeterministic(t, parser, NewRuneInput("abc"))
	assert.True(t, res.Success)
}

// externalCounter simulates a grammar author mutating state outside
// the value stack without going through Parse.ApplyEffect: incrementing
// it is never undone, so two independent Run calls that share the same
// counter observe a different count each time.
type externalCounter struct{ n int }

func TestTestFixture_DetectsIllicitExternalMutation(t *testing.T) {
	counter := &externalCounter{}
	unjournaled := NewSemanticAction(NewLiteral("a"), func(pr *Parse, span Span) {
		counter.n++
		pr.PushValue(NewValueString(itoa(counter.n), span))
	})

	f := NewTestFixture()
	_, _, divergences := f.Run(unjournaled, NewRuneInput("a"))

	assert.NotEmpty(t, divergences, "an unjournaled external mutation must surface as a divergence between runs")
}

func itoa(n int) string {
	digits := "0123456789"
	if n < 10 {
		return string(digits[n])
	}
	return itoa(n/10) + string(digits[n%10])
}
