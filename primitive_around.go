package autumn

// Around matches repetitions of A separated by I: the classic
// separated-list combinator (spec.md §4.2). String form:
// around(A, I, min[, exact][, trailing]).
type Around struct {
	parserCore
	min      int
	exact    bool
	trailing bool
	a, i     Parser
}

// NewAround builds an Around(min, exact, trailing, a, i).
func NewAround(min int, exact, trailing bool, a, i Parser) *Around {
	return &Around{
		parserCore: newParserCore("Around"),
		min:        min,
		exact:      exact,
		trailing:   trailing,
		a:          a,
		i:          i,
	}
}

func (ar *Around) Children() []Parser { return []Parser{ar.a, ar.i} }

func (ar *Around) Parse(pr *Parse) bool { return invoke(ar, pr, false, ar.doParse) }

func (ar *Around) doParse(pr *Parse) bool {
	if !ar.a.Parse(pr) {
		if ar.min != 0 {
			return false
		}
		if ar.trailing {
			ar.attemptSilentSeparator(pr)
		}
		return true
	}

	matches := 1
	for matches < ar.min {
		if !ar.i.Parse(pr) {
			return false
		}
		if !ar.a.Parse(pr) {
			return false
		}
		matches++
	}

	if !ar.exact {
		for {
			if pr.Cancelled() {
				break
			}
			cp := pr.checkpoint()
			if !ar.i.Parse(pr) {
				pr.restore(cp)
				break
			}
			if !ar.a.Parse(pr) {
				pr.restore(cp)
				break
			}
			matches++
		}
	}

	if ar.trailing {
		ar.attemptSilentSeparator(pr)
	}
	return true
}

// attemptSilentSeparator tries one final I, keeping its match if it
// succeeds but never failing the overall Around and never polluting
// error_expected if it doesn't (spec.md §9, default answer to the
// trailing-separator Open Question).
func (ar *Around) attemptSilentSeparator(pr *Parse) {
	cp := pr.checkpoint()
	ok := pr.withSuppressedErrors(func() bool { return ar.i.Parse(pr) })
	if !ok {
		pr.restore(cp)
	}
}

func (ar *Around) Accept(v ParserVisitor) error { return v.VisitAround(ar) }
