package autumn

import "unicode/utf8"

// Input is an immutable, indexable view over the sequence a Parse
// consumes. Positions run from 0 (inclusive) to Len() (inclusive): a
// Parse's cursor may legally sit at Len(), meaning "end of input".
//
// An Input is either a character sequence (diagnostics use code-point
// offsets) or an ordered sequence of opaque tokens (diagnostics use
// token indices). Both share this interface and the engine's cursor,
// value stack and diagnostics. The built-in Literal and CharPredicate
// recognizers match only character input: over a TokenInput,
// MatchLiteral and MatchPredicate always report no match, so those
// recognizers always fail; EndOfInput works over both.
type Input interface {
	// Len returns the number of positions in the sequence.
	Len() int

	// MatchLiteral reports whether the literal rune sequence s
	// occurs starting at pos, and if so its length in positions.
	MatchLiteral(pos int, s []rune) (int, bool)

	// MatchPredicate reports whether the single position at pos
	// satisfies pred, and if so its length in positions (always 1
	// when it matches).
	MatchPredicate(pos int, pred func(rune) bool) (int, bool)

	// At returns the opaque value at pos for tokenized input,
	// or the rune for character input boxed as rune. ok is false at
	// end of input.
	At(pos int) (value interface{}, ok bool)
}

// RuneInput is a character sequence. Diagnostics report code-point
// offsets into the original text.
type RuneInput struct {
	runes []rune
}

// NewRuneInput builds an Input over the code points of s.
func NewRuneInput(s string) *RuneInput {
	return &RuneInput{runes: []rune(s)}
}

func (in *RuneInput) Len() int { return len(in.runes) }

func (in *RuneInput) At(pos int) (interface{}, bool) {
	if pos < 0 || pos >= len(in.runes) {
		return nil, false
	}
	return in.runes[pos], true
}

func (in *RuneInput) MatchLiteral(pos int, s []rune) (int, bool) {
	if pos < 0 || pos+len(s) > len(in.runes) {
		return 0, false
	}
	for i, r := range s {
		if in.runes[pos+i] != r {
			return 0, false
		}
	}
	return len(s), true
}

func (in *RuneInput) MatchPredicate(pos int, pred func(rune) bool) (int, bool) {
	if pos < 0 || pos >= len(in.runes) {
		return 0, false
	}
	if !pred(in.runes[pos]) {
		return 0, false
	}
	return 1, true
}

// Text returns the matched substring between start and end, used by
// SemanticAction's built-in capture helpers. TokenInput has no
// equivalent: grammars over tokens capture structured values instead
// of raw text.
func (in *RuneInput) Text(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(in.runes) {
		end = len(in.runes)
	}
	if start >= end {
		return ""
	}
	return string(in.runes[start:end])
}

// Runes exposes the underlying rune slice, used by CharLineMap
// construction.
func (in *RuneInput) Runes() []rune { return in.runes }

// RuneWidth returns the UTF-8 byte width of the rune at pos, used by
// byte-offset LineMaps that were built over the original []byte.
func (in *RuneInput) RuneWidth(pos int) int {
	if pos < 0 || pos >= len(in.runes) {
		return 0
	}
	return utf8.RuneLen(in.runes[pos])
}

// TokenInput is an ordered sequence of opaque, pre-lexed tokens.
// Diagnostics report token indices, not character offsets. No built-in
// primitive inspects the token payload: only MatchTokenPredicate does,
// and no built-in primitive calls it.
type TokenInput struct {
	tokens []interface{}
}

// NewTokenInput builds an Input over a pre-tokenized sequence.
func NewTokenInput(tokens []interface{}) *TokenInput {
	return &TokenInput{tokens: tokens}
}

func (in *TokenInput) Len() int { return len(in.tokens) }

func (in *TokenInput) At(pos int) (interface{}, bool) {
	if pos < 0 || pos >= len(in.tokens) {
		return nil, false
	}
	return in.tokens[pos], true
}

// MatchLiteral and MatchPredicate always report no match for opaque
// tokens; MatchTokenPredicate is the token-level matcher.
func (in *TokenInput) MatchLiteral(pos int, s []rune) (int, bool) {
	return 0, false
}

func (in *TokenInput) MatchPredicate(pos int, pred func(rune) bool) (int, bool) {
	return 0, false
}

// MatchTokenPredicate is the token-sequence analogue of
// Input.MatchPredicate: pred inspects the opaque token value directly.
func (in *TokenInput) MatchTokenPredicate(pos int, pred func(interface{}) bool) (int, bool) {
	if pos < 0 || pos >= len(in.tokens) {
		return 0, false
	}
	if !pred(in.tokens[pos]) {
		return 0, false
	}
	return 1, true
}
