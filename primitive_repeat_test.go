package autumn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepeat_ZeroOrMore(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantOK  bool
		wantPos int
	}{
		{"no matches still succeeds", "", true, 0},
		{"one match", "a", true, 1},
		{"greedy, consumes all", "aaa", true, 3},
		{"stops at mismatch", "aab", true, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewZeroOrMore(NewLiteral("a"))
			pr := newParse(NewRuneInput(tt.input), nil, NewParseOptions())
			ok := r.Parse(pr)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantPos, pr.Pos())
		})
	}
}

func TestRepeat_OneOrMoreRequiresAtLeastOne(t *testing.T) {
	r := NewOneOrMore(NewLiteral("a"))

	pr := newParse(NewRuneInput(""), nil, NewParseOptions())
	assert.False(t, r.Parse(pr))
	assert.Equal(t, 0, pr.Pos())

	pr2 := newParse(NewRuneInput("aaa"), nil, NewParseOptions())
	assert.True(t, r.Parse(pr2))
	assert.Equal(t, 3, pr2.Pos())
}

func TestRepeat_Bounded(t *testing.T) {
	r := NewRepeat(NewLiteral("a"), 2, 3)

	pr := newParse(NewRuneInput("a"), nil, NewParseOptions())
	assert.False(t, r.Parse(pr))

	pr2 := newParse(NewRuneInput("aaaaa"), nil, NewParseOptions())
	assert.True(t, r.Parse(pr2))
	assert.Equal(t, 3, pr2.Pos())
}

func TestRepeat_EmptyMatchGuardStopsInfiniteLoop(t *testing.T) {
	r := NewZeroOrMore(NewOptional(NewLiteral("a")))

	pr := newParse(NewRuneInput("b"), nil, NewParseOptions())
	ok := r.Parse(pr)
	assert.True(t, ok)
	assert.Equal(t, 0, pr.Pos())
}
