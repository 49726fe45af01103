package autumn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckWellFormedness_DirectLeftRecursionUnwrapped(t *testing.T) {
	ref := NewRef("Expr")
	ref.Set(NewChoice(NewSequence(ref, NewLiteral("+"), NewLiteral("1")), NewLiteral("1")))

	err := checkWellFormedness(ref)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "left recursion")
}

func TestCheckWellFormedness_WrappedLeftRecursionIsFine(t *testing.T) {
	ref := NewRef("Expr")
	lr := NewLeftRecursive(NewChoice(NewSequence(ref, NewLiteral("+"), NewLiteral("1")), NewLiteral("1")))
	ref.Set(lr)

	assert.NoError(t, checkWellFormedness(lr))
}

func TestCheckWellFormedness_IndirectLeftRecursionUnwrapped(t *testing.T) {
	// A <- B 'x'   (A nullable-prefix reaches B)
	// B <- A 'y' / 'z'
	a := NewRef("A")
	b := NewRef("B")
	a.Set(NewSequence(b, NewLiteral("x")))
	b.Set(NewChoice(NewSequence(a, NewLiteral("y")), NewLiteral("z")))

	err := checkWellFormedness(a)
	require.Error(t, err)
}

func TestCheckWellFormedness_OrdinaryNonLeftRecursiveCycleIsFine(t *testing.T) {
	// Parenthesized <- '(' Parenthesized ')' / 'x' — cycles only after
	// consuming a '(', so it is never part of a leftmost-corner path.
	ref := NewRef("Parenthesized")
	ref.Set(NewChoice(NewSequence(NewLiteral("("), ref, NewLiteral(")")), NewLiteral("x")))

	assert.NoError(t, checkWellFormedness(ref))
}

func TestCheckWellFormedness_LeafParserIsAlwaysFine(t *testing.T) {
	assert.NoError(t, checkWellFormedness(NewLiteral("x")))
}
