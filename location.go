package autumn

import (
	"fmt"
	"sort"
)

// Location is a human-facing position: a 1-indexed line, a column
// (also 1-indexed by convention, see LineMap), and the raw cursor
// offset it was derived from.
type Location struct {
	Line   int
	Column int
	Cursor int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Span is a pair of Locations bracketing a match or an error.
type Span struct {
	Start Location
	End   Location
}

func (s Span) String() string {
	if s.Start.Line == s.End.Line && s.Start.Column == s.End.Column {
		return s.Start.String()
	}
	if s.Start.Line == s.End.Line {
		return fmt.Sprintf("%d:%d..%d", s.Start.Line, s.Start.Column, s.End.Column)
	}
	return fmt.Sprintf("%s..%s", s.Start, s.End)
}

// LineMap maps an offset into the engine's diagnostics ([0, N] where N
// is Input.Len()) to a human-facing (line, column). It is supplied by
// the caller, not implemented by the core: a character grammar can
// back it with CharLineMap; a tokenized grammar can back it with
// whatever the lexer's own span table provides (or omit it, in which
// case ParseResult falls back to raw offsets).
type LineMap interface {
	// Locate returns the Location for a cursor offset.
	Locate(offset int) Location
}

// CharLineMapOptions configures the column-counting convention of a
// CharLineMap, mirroring TestFixture's column_start/tab_width
// tunables (spec.md §6) so a grammar's diagnostics and its test
// harness agree on column numbering. NewCharLineMap replaces an
// all-zero value with DefaultCharLineMapOptions.
type CharLineMapOptions struct {
	// ColumnStart is the column number of the first rune on a line.
	ColumnStart int
	// TabWidth is the display width of a tab stop. A value of zero or
	// less counts as 1 unless ColumnStart is also zero.
	TabWidth int
}

// DefaultCharLineMapOptions returns the spec-mandated defaults:
// column_start=1, tab_width=4.
func DefaultCharLineMapOptions() CharLineMapOptions {
	return CharLineMapOptions{ColumnStart: 1, TabWidth: 4}
}

// CharLineMap is a LineMap over a rune sequence, built once and reused
// across any number of Locate calls. Construction is O(n) over the
// input; lookup is O(log lines) via binary search over line starts.
type CharLineMap struct {
	opts      CharLineMapOptions
	runes     []rune
	lineStart []int
}

// NewCharLineMap indexes the line starts of runes up front so that
// Locate is fast even for large inputs parsed many times (e.g. inside
// TestFixture's double run).
func NewCharLineMap(runes []rune, opts CharLineMapOptions) *CharLineMap {
	if opts.ColumnStart == 0 && opts.TabWidth == 0 {
		opts = DefaultCharLineMapOptions()
	}
	lineStart := make([]int, 1, 64)
	lineStart[0] = 0
	for i, r := range runes {
		if r == '\n' {
			lineStart = append(lineStart, i+1)
		}
	}
	return &CharLineMap{opts: opts, runes: runes, lineStart: lineStart}
}

func (m *CharLineMap) Locate(offset int) Location {
	if offset < 0 {
		offset = 0
	}
	if offset > len(m.runes) {
		offset = len(m.runes)
	}

	lineIdx := sort.Search(len(m.lineStart), func(i int) bool {
		return m.lineStart[i] > offset
	}) - 1
	if lineIdx < 0 {
		lineIdx = 0
	}

	lineBegin := m.lineStart[lineIdx]
	column := m.opts.ColumnStart
	tabWidth := m.opts.TabWidth
	if tabWidth <= 0 {
		tabWidth = 1
	}
	for _, r := range m.runes[lineBegin:offset] {
		if r == '\t' {
			advance := tabWidth - ((column - m.opts.ColumnStart) % tabWidth)
			column += advance
		} else {
			column++
		}
	}

	return Location{Line: lineIdx + 1, Column: column, Cursor: offset}
}

// TokenLineMap is a LineMap over a token sequence: there is no
// line/column notion, so it reports line 1, the token index as the
// cursor, and the token index plus one as the column. Diagnostics over tokenized input
// report the index directly rather than pretending to have source
// text.
type TokenLineMap struct{}

func NewTokenLineMap() *TokenLineMap { return &TokenLineMap{} }

func (TokenLineMap) Locate(offset int) Location {
	return Location{Line: 1, Column: offset + 1, Cursor: offset}
}
