package autumn

import "fmt"

// ConfigurationError is surfaced eagerly from Run: a nil parser or
// input, or a grammar the WELL_FORMEDNESS_CHECK rejected (spec.md §7).
// A Ref parsed before Set panics with a ConfigurationError, which Run
// then captures in ParseResult.Thrown like any other panic.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string { return e.Message }

func newConfigurationError(format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Message: fmt.Sprintf(format, args...)}
}

// ExpectedSet is the de-duplicated collection of leaf parsers that
// failed at the furthest-reached error position (spec.md §3, "the
// tracker rule"). Parsers are keyed by identity (Parser.ID), not by
// value equality, so two structurally identical literals at different
// grammar positions are both kept in the set.
type ExpectedSet struct {
	order []Parser
	seen  map[string]bool
}

func newExpectedSet() *ExpectedSet {
	return &ExpectedSet{seen: make(map[string]bool)}
}

// reset clears the set for a new furthest-error position.
func (s *ExpectedSet) reset() {
	s.order = s.order[:0]
	for k := range s.seen {
		delete(s.seen, k)
	}
}

// add records p as a contributor, ignoring duplicates.
func (s *ExpectedSet) add(p Parser) {
	key := p.ID().String()
	if s.seen[key] {
		return
	}
	s.seen[key] = true
	s.order = append(s.order, p)
}

// Parsers returns the contributing parsers in first-added order.
func (s *ExpectedSet) Parsers() []Parser {
	out := make([]Parser, len(s.order))
	copy(out, s.order)
	return out
}

// Names returns the de-duplicated, ordered parser names, the form
// ParseResult.AppendTo lists them in.
func (s *ExpectedSet) Names() []string {
	out := make([]string, 0, len(s.order))
	seen := make(map[string]bool, len(s.order))
	for _, p := range s.order {
		if seen[p.Name()] {
			continue
		}
		seen[p.Name()] = true
		out = append(out, p.Name())
	}
	return out
}
