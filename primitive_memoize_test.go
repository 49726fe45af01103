package autumn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoize_CachesSuccess(t *testing.T) {
	calls := 0
	counting := NewSemanticAction(NewLiteral("abc"), func(pr *Parse, span Span) { calls++ })
	m := NewMemoize(counting)
	choice := NewChoice(NewSequence(m, NewLiteral("never")), m)

	pr := newParse(NewRuneInput("abc"), nil, NewParseOptions())
	require.True(t, choice.Parse(pr))
	assert.Equal(t, 1, calls, "second attempt at the same position should hit the cache, not re-run the action")
}

func TestMemoize_CachesFailure(t *testing.T) {
	m := NewMemoize(NewLiteral("abc"))
	seq := NewSequence(NewNot(m), NewNot(m))

	pr := newParse(NewRuneInput("xyz"), nil, NewParseOptions())
	ok := seq.Parse(pr)
	assert.True(t, ok)
	assert.Len(t, pr.memo, 1)
}

func TestMemoize_ReplaysValuesOnCacheHit(t *testing.T) {
	m := NewMemoize(NewCapture(NewLiteral("abc")))
	choice := NewChoice(NewSequence(m, NewLiteral("never")), m)

	pr := newParse(NewRuneInput("abc"), nil, NewParseOptions())
	require.True(t, choice.Parse(pr))
	require.Equal(t, 1, pr.ValueStackDepth())
	assert.Equal(t, "abc", pr.PopValue().(*ValueString).Text)
}
