package autumn

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildParseResult_Success(t *testing.T) {
	lineMap := NewCharLineMap([]rune("abc"), DefaultCharLineMapOptions())
	pr := newParse(NewRuneInput("abc"), lineMap, NewParseOptions())
	lit := NewLiteral("abc")
	require.True(t, lit.Parse(pr))

	res := buildParseResult(pr, lit, true)
	assert.True(t, res.Success)
	assert.True(t, res.FullMatch)
	assert.Equal(t, 3, res.MatchSize)
}

func TestBuildParseResult_Failure(t *testing.T) {
	lineMap := NewCharLineMap([]rune("ac"), DefaultCharLineMapOptions())
	pr := newParse(NewRuneInput("ac"), lineMap, NewParseOptions())
	seq := NewSequence(NewLiteral("a"), NewLiteral("b"))
	require.False(t, seq.Parse(pr))

	res := buildParseResult(pr, seq, false)
	assert.False(t, res.Success)
	assert.Equal(t, []string{`"b"`}, res.ErrorExpected)
	assert.Equal(t, 1, res.ErrorPosition.Column-1)
}

func TestParseResult_AppendTo(t *testing.T) {
	res := &ParseResult{
		Success:   false,
		ErrorExpected: []string{`"b"`},
		ErrorPosition: Location{Line: 1, Column: 2, Cursor: 1},
	}

	var b strings.Builder
	res.AppendTo(&b, nil)
	out := b.String()

	assert.Contains(t, out, "parse failed")
	assert.Contains(t, out, "furthest error at 1:2")
	assert.Contains(t, out, `- "b"`)
}

func TestParseResult_String_FullMatch(t *testing.T) {
	res := &ParseResult{Success: true, FullMatch: true, MatchSize: 4}
	assert.Contains(t, res.String(), "full match, 4 positions consumed")
}

func TestParseResult_AppendTo_Thrown(t *testing.T) {
	res := &ParseResult{Thrown: "boom"}
	var b strings.Builder
	res.AppendTo(&b, nil)
	assert.Contains(t, b.String(), "parse aborted: boom")
}
