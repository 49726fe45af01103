package autumn

// Ref is a lazily-resolved reference to another Parser, the mechanism
// grammars use to close cycles in the combinator graph: construct a
// Ref, weave it into a Sequence/Choice/etc., and call Set once the
// real target exists (spec.md §9, "Cyclic parser graph... break
// cycles with an explicit reference or lazy node whose target is
// resolved after construction").
type Ref struct {
	parserCore
	target Parser
}

// NewRef builds an unresolved reference named name (typically the
// grammar rule name it stands in for). Set must be called with the
// real target before the Ref is ever parsed.
func NewRef(name string) *Ref {
	return &Ref{parserCore: newParserCore(name)}
}

// Set resolves the reference. Safe to call exactly once per Ref,
// before any Parse begins; Ref targets are not meant to change once a
// grammar is in use (spec.md §3: "never mutated during parsing").
func (r *Ref) Set(target Parser) { r.target = target }

func (r *Ref) Children() []Parser {
	if r.target == nil {
		return nil
	}
	return []Parser{r.target}
}

func (r *Ref) Parse(pr *Parse) bool { return invoke(r, pr, false, r.doParse) }

func (r *Ref) doParse(pr *Parse) bool {
	if r.target == nil {
		panic(&ConfigurationError{Message: "autumn: Ref " + r.name + " used before Set"})
	}
	return r.target.Parse(pr)
}

func (r *Ref) Accept(v ParserVisitor) error { return v.VisitRef(r) }
