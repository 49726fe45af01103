package autumn

// traceEnter, traceFail and traceSucceed back the TRACE option
// (spec.md §6): one structured log event per primitive invocation,
// through the zerolog logger configured by WithTrace. They are only
// ever called when options.trace is set, so the common case (tracing
// off) never touches zerolog at all.

func (pr *Parse) traceEnter(p Parser, pos int) {
	pr.options.logger.Debug().
		Str("parser", p.Name()).
		Str("id", p.ID().String()).
		Int("pos", pos).
		Str("event", "enter").
		Msg("autumn: parser invoked")
}

func (pr *Parse) traceFail(p Parser, pos int) {
	pr.options.logger.Debug().
		Str("parser", p.Name()).
		Str("id", p.ID().String()).
		Int("pos", pos).
		Str("event", "fail").
		Msg("autumn: parser failed")
}

func (pr *Parse) traceSucceed(p Parser, pos0, pos1 int) {
	pr.options.logger.Debug().
		Str("parser", p.Name()).
		Str("id", p.ID().String()).
		Int("pos", pos0).
		Int("matchSize", pos1-pos0).
		Str("event", "succeed").
		Msg("autumn: parser matched")
}
