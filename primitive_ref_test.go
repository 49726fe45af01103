package autumn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRef_DelegatesToResolvedTarget(t *testing.T) {
	ref := NewRef("Greeting")
	ref.Set(NewLiteral("hi"))

	pr := newParse(NewRuneInput("hi"), nil, NewParseOptions())
	require.True(t, ref.Parse(pr))
	assert.Equal(t, 2, pr.Pos())
}

func TestRef_UnresolvedUsePanics(t *testing.T) {
	ref := NewRef("Greeting")
	pr := newParse(NewRuneInput("hi"), nil, NewParseOptions())
	assert.Panics(t, func() { ref.Parse(pr) })
}

func TestRef_ClosesACycle(t *testing.T) {
	// Parenthesized <- '(' Parenthesized ')' / 'x', a cycle closed
	// through a Ref rather than left recursion.
	ref := NewRef("Parenthesized")
	body := NewChoice(
		NewSequence(NewLiteral("("), ref, NewLiteral(")")),
		NewLiteral("x"),
	)
	ref.Set(body)

	pr := newParse(NewRuneInput("((x))"), nil, NewParseOptions())
	require.True(t, ref.Parse(pr))
	assert.Equal(t, 5, pr.Pos())
}
