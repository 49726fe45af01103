package autumn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildLeftAssocSum builds: Expr <- Expr '+' Digit / Digit, the
// textbook left-recursive grammar, wrapped in LeftRecursive so seed
// growing resolves it instead of infinitely recursing (spec.md §4.2,
// §9).
func buildLeftAssocSum() (*LeftRecursive, *Ref) {
	ref := NewRef("Expr")
	digit := NewCharRange('0', '9')
	plusDigit := NewSequence(ref, NewLiteral("+"), digit)
	body := NewChoice(plusDigit, digit)
	lr := NewLeftRecursive(body)
	ref.Set(lr)
	return lr, ref
}

func TestLeftRecursive_LeftAssociativeChain(t *testing.T) {
	lr, _ := buildLeftAssocSum()
	pr := newParse(NewRuneInput("1+1+1"), nil, NewParseOptions())
	require.True(t, lr.Parse(pr))
	assert.Equal(t, 5, pr.Pos())
	assert.True(t, pr.AtEnd())
}

func TestLeftRecursive_SingleDigitBaseCase(t *testing.T) {
	lr, _ := buildLeftAssocSum()
	pr := newParse(NewRuneInput("7"), nil, NewParseOptions())
	require.True(t, lr.Parse(pr))
	assert.Equal(t, 1, pr.Pos())
}

func TestLeftRecursive_NoMatchFails(t *testing.T) {
	lr, _ := buildLeftAssocSum()
	pr := newParse(NewRuneInput("+1"), nil, NewParseOptions())
	assert.False(t, lr.Parse(pr))
	assert.Equal(t, 0, pr.Pos())
}

func TestLeftRecursive_ReentrantCallShortCircuitsToSeed(t *testing.T) {
	lr, _ := buildLeftAssocSum()
	pr := newParse(NewRuneInput("1+2+3"), nil, NewParseOptions())
	require.True(t, lr.Parse(pr))
	// Exactly one seed-growing key should be left registered mid-parse
	// and none once the outer Parse call has returned.
	assert.Empty(t, pr.growing)
}
