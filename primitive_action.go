package autumn

// TextExtractor is implemented by Input shapes that can render a span
// back to a string (RuneInput does; TokenInput deliberately doesn't —
// grammars over tokens capture structured values instead of raw
// text).
type TextExtractor interface {
	Text(start, end int) string
}

// ActionFunc runs after body has matched, with access to the Parse
// (to push values, and to read the matched span) and the span body
// just matched. A panic inside an ActionFunc is an exceptional
// failure, propagated to ParseResult.Thrown by Run, not a normal
// parse failure (spec.md §7).
type ActionFunc func(pr *Parse, span Span)

// SemanticAction runs body; on success it invokes action, which
// typically pushes one or more Values built from the matched span.
// Every push action performs goes through Parse.PushValue, so it is
// journaled and rolled back automatically if a containing combinator
// later fails (spec.md §4.2, §9).
type SemanticAction struct {
	parserCore
	body   Parser
	action ActionFunc
}

func NewSemanticAction(body Parser, action ActionFunc) *SemanticAction {
	return &SemanticAction{parserCore: newParserCore("SemanticAction"), body: body, action: action}
}

func (sa *SemanticAction) Children() []Parser { return []Parser{sa.body} }

func (sa *SemanticAction) Parse(pr *Parse) bool { return invoke(sa, pr, false, sa.doParse) }

func (sa *SemanticAction) doParse(pr *Parse) bool {
	start := pr.Pos()
	if !sa.body.Parse(pr) {
		return false
	}
	if sa.action != nil {
		span := Span{Start: pr.locate(start), End: pr.locate(pr.Pos())}
		sa.action(pr, span)
	}
	return true
}

func (sa *SemanticAction) Accept(v ParserVisitor) error { return v.VisitSemanticAction(sa) }

// NewCapture wraps body in a SemanticAction that pushes a ValueString
// of the raw matched text, for grammars driven over a TextExtractor
// Input (e.g. RuneInput). It pushes an empty string over an Input
// that doesn't support text extraction.
func NewCapture(body Parser) *SemanticAction {
	return NewSemanticAction(body, func(pr *Parse, span Span) {
		text := ""
		if te, ok := pr.Input().(TextExtractor); ok {
			text = te.Text(span.Start.Cursor, span.End.Cursor)
		}
		pr.PushValue(NewValueString(text, span))
	})
}

// NodeAction wraps body so that every Value it pushes is collected
// and replaced with a single ValueNode named Label, covering the
// common "capture sub-results under a rule name" pattern (spec.md
// §3, "AST fragments"). It is its own primitive, rather than built on
// SemanticAction, because it needs the value-stack depth from before
// body ran, not just after.
type NodeAction struct {
	parserCore
	body  Parser
	Label string
}

// NewNode builds a NodeAction labelled name.
func NewNode(name string, body Parser) *NodeAction {
	return &NodeAction{parserCore: newParserCore("Node(" + name + ")"), body: body, Label: name}
}

func (n *NodeAction) Children() []Parser { return []Parser{n.body} }

func (n *NodeAction) Parse(pr *Parse) bool { return invoke(n, pr, false, n.doParse) }

func (n *NodeAction) doParse(pr *Parse) bool {
	start := pr.Pos()
	depth0 := pr.ValueStackDepth()
	if !n.body.Parse(pr) {
		return false
	}
	items := pr.ValueStackSince(depth0)
	for range items {
		pr.PopValue()
	}
	span := Span{Start: pr.locate(start), End: pr.locate(pr.Pos())}
	pr.PushValue(NewValueNode(n.Label, items, span))
	return true
}

func (n *NodeAction) Accept(v ParserVisitor) error { return v.VisitNode(n) }
