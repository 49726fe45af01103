package autumn

import (
	"io"

	"github.com/rs/zerolog"
)

// CancelToken lets a caller bound a long parse from the outside
// (spec.md §5: "the core does not implement timeouts; long parses
// must be bounded by the caller"). Any primitive may check it between
// steps; the built-in primitives check it once per Repeat iteration,
// once per greedy (non-exact) Around iteration, and once per
// LeftRecursive growth iteration, the spots
// most likely to loop.
type CancelToken interface {
	// Cancelled reports whether the parse should abort. Checking it
	// is the caller's opt-in: the engine never calls it on its own
	// unless a CancelToken was supplied via WithCancelToken.
	Cancelled() bool
}

// cancelFunc adapts a plain func() bool to CancelToken.
type cancelFunc func() bool

func (f cancelFunc) Cancelled() bool { return f() }

// CancelTokenFunc wraps a plain predicate as a CancelToken.
func CancelTokenFunc(f func() bool) CancelToken { return cancelFunc(f) }

// ParseOptions is the immutable configuration a Parse is built with
// (spec.md §3, §6). Built through functional options, so the only
// settings are the ones the With* constructors expose; Run does not
// validate option combinations.
type ParseOptions struct {
	recordCallStack       bool
	trace                 bool
	wellFormednessCheck   bool
	cancelToken           CancelToken
	logger                zerolog.Logger
	lineMap               LineMap
}

// Option configures a ParseOptions value.
type Option func(*ParseOptions)

// WithRecordCallStack enables the RECORD_CALL_STACK option (spec.md
// §6): a snapshot of the call stack is stored alongside every
// furthest-error update.
func WithRecordCallStack() Option {
	return func(o *ParseOptions) { o.recordCallStack = true }
}

// WithTrace enables the TRACE option (spec.md §6), writing one
// structured log line per primitive invocation to w. Passing a nil w
// leaves tracing on but discards output (zerolog.Nop()).
func WithTrace(w io.Writer) Option {
	return func(o *ParseOptions) {
		o.trace = true
		if w == nil {
			o.logger = zerolog.Nop()
			return
		}
		o.logger = zerolog.New(w).With().Timestamp().Logger()
	}
}

// WithWellFormednessCheck enables the WELL_FORMEDNESS_CHECK option
// (spec.md §6): Run walks the grammar before parsing and fails fast
// on unwrapped left recursion and similar structural issues.
func WithWellFormednessCheck() Option {
	return func(o *ParseOptions) { o.wellFormednessCheck = true }
}

// WithCancelToken attaches a CancelToken primitives may consult
// between steps (spec.md §5).
func WithCancelToken(t CancelToken) Option {
	return func(o *ParseOptions) { o.cancelToken = t }
}

// WithLineMap overrides the LineMap Run would otherwise infer from the
// Input's concrete type. Useful when a caller's lexer already built its
// own offset-to-position table and wants ParseResult to report through
// it instead of a fresh CharLineMap.
func WithLineMap(m LineMap) Option {
	return func(o *ParseOptions) { o.lineMap = m }
}

// NewParseOptions builds a ParseOptions from the given functional
// options. Unspecified options default to off, matching spec.md §6's
// "Unspecified options reserved".
func NewParseOptions(opts ...Option) ParseOptions {
	o := ParseOptions{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
