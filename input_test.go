package autumn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuneInput_MatchLiteral(t *testing.T) {
	in := NewRuneInput("héllo")

	n, ok := in.MatchLiteral(0, []rune("hé"))
	assert.True(t, ok)
	assert.Equal(t, 2, n)

	_, ok = in.MatchLiteral(0, []rune("ha"))
	assert.False(t, ok)

	_, ok = in.MatchLiteral(3, []rune("llox"))
	assert.False(t, ok, "literal longer than remaining input must fail, not panic")
}

func TestRuneInput_MatchPredicate(t *testing.T) {
	in := NewRuneInput("a1")

	n, ok := in.MatchPredicate(1, func(r rune) bool { return r >= '0' && r <= '9' })
	assert.True(t, ok)
	assert.Equal(t, 1, n)

	_, ok = in.MatchPredicate(2, func(r rune) bool { return true })
	assert.False(t, ok, "past end of input")
}

func TestRuneInput_Text(t *testing.T) {
	in := NewRuneInput("hello world")
	assert.Equal(t, "hello", in.Text(0, 5))
	assert.Equal(t, "world", in.Text(6, 11))
	assert.Equal(t, "", in.Text(5, 5))
	assert.Equal(t, "hello world", in.Text(-3, 100), "out-of-range bounds clamp, not panic")
}

func TestTokenInput_At(t *testing.T) {
	in := NewTokenInput([]interface{}{"IF", "LPAREN", "RPAREN"})
	assert.Equal(t, 3, in.Len())

	v, ok := in.At(1)
	assert.True(t, ok)
	assert.Equal(t, "LPAREN", v)

	_, ok = in.At(3)
	assert.False(t, ok)
}

func TestTokenInput_MatchTokenPredicate(t *testing.T) {
	in := NewTokenInput([]interface{}{"IF", 42})

	n, ok := in.MatchTokenPredicate(1, func(v interface{}) bool {
		iv, isInt := v.(int)
		return isInt && iv == 42
	})
	assert.True(t, ok)
	assert.Equal(t, 1, n)
}
