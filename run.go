package autumn

// Run is the single entry point that drives parser against input
// (spec.md §3, §6). It resolves the three possible outcomes in order:
// a ConfigurationError returned eagerly, before any Parse exists, if
// parser or input is nil or WELL_FORMEDNESS_CHECK rejects the
// grammar; an exceptional failure captured into ParseResult.Thrown if
// parser panics; otherwise the ordinary success/failure ParseResult.
func Run(parser Parser, input Input, opts ...Option) (*ParseResult, error) {
	if parser == nil {
		return nil, newConfigurationError("autumn: Run called with a nil parser")
	}
	if input == nil {
		return nil, newConfigurationError("autumn: Run called with a nil input")
	}

	options := NewParseOptions(opts...)

	if options.wellFormednessCheck {
		if err := checkWellFormedness(parser); err != nil {
			return nil, err
		}
	}

	lineMap := options.lineMap
	if lineMap == nil {
		lineMap = defaultLineMap(input)
	}

	pr := newParse(input, lineMap, options)

	success, thrown := runProtected(parser, pr)
	result := buildParseResult(pr, parser, success)
	result.Thrown = thrown
	return result, nil
}

// defaultLineMap infers a LineMap from the concrete Input type when the
// caller didn't supply one via WithLineMap: code-point offsets for a
// RuneInput, token indices for anything else (spec.md §4.5).
func defaultLineMap(input Input) LineMap {
	if ri, ok := input.(*RuneInput); ok {
		return NewCharLineMap(ri.Runes(), DefaultCharLineMapOptions())
	}
	return NewTokenLineMap()
}

// runProtected invokes the root parser, recovering a panic into a
// Thrown value rather than letting it escape Run. The value stack is
// deliberately left exactly as the panicking call left it: exceptional
// failure is not rolled back like an ordinary combinator failure
// (spec.md §7).
func runProtected(parser Parser, pr *Parse) (success bool, thrown interface{}) {
	defer func() {
		if r := recover(); r != nil {
			success = false
			thrown = r
		}
	}()
	success = parser.Parse(pr)
	return success, nil
}
