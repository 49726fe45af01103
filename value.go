package autumn

import (
	"fmt"
	"strings"
)

// Value is an AST fragment pushed onto a Parse's value stack by a
// semantic action. The core does not interpret Value payloads; it
// only stores, journals, and hands them back to the caller in
// ParseResult. Concrete grammars supply their own Value
// implementations, but the three shapes below cover the common cases
// (a matched span, a grouping, a named node). NewCapture pushes
// ValueString and NewNode pushes ValueNode; no built-in primitive
// pushes ValueSequence.
type Value interface {
	Span() Span
	String() string
	Accept(ValueVisitor) error
}

// ValueVisitor double-dispatches over the built-in Value shapes,
// mirroring ParserVisitor's dispatch over Parser nodes (spec.md §4.4).
type ValueVisitor interface {
	VisitString(*ValueString) error
	VisitSequence(*ValueSequence) error
	VisitNode(*ValueNode) error
}

// ValueString wraps a literally matched span of input text.
type ValueString struct {
	span Span
	Text string
}

func NewValueString(text string, span Span) *ValueString {
	return &ValueString{span: span, Text: text}
}

func (v ValueString) Span() Span         { return v.span }
func (v ValueString) String() string     { return fmt.Sprintf("%q @ %s", v.Text, v.span) }
func (v *ValueString) Accept(vv ValueVisitor) error { return vv.VisitString(v) }

// ValueSequence groups a list of values under one span. Sequence and
// Repeat do not build it themselves; a semantic action can.
type ValueSequence struct {
	span  Span
	Items []Value
}

func NewValueSequence(items []Value, span Span) *ValueSequence {
	return &ValueSequence{span: span, Items: items}
}

func (v ValueSequence) Span() Span { return v.span }

func (v ValueSequence) String() string {
	var s strings.Builder
	s.WriteString("[")
	for i, item := range v.Items {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(item.String())
	}
	fmt.Fprintf(&s, "] @ %s", v.span)
	return s.String()
}

func (v *ValueSequence) Accept(vv ValueVisitor) error { return vv.VisitSequence(v) }

// ValueNode is a named AST node, the shape NodeAction (NewNode)
// produces to give a matched sub-parse a grammar-specific identity.
type ValueNode struct {
	span  Span
	Name  string
	Items []Value
}

func NewValueNode(name string, items []Value, span Span) *ValueNode {
	return &ValueNode{span: span, Name: name, Items: items}
}

func (v ValueNode) Span() Span { return v.span }

func (v ValueNode) String() string {
	var s strings.Builder
	fmt.Fprintf(&s, "%s(", v.Name)
	for i, item := range v.Items {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(item.String())
	}
	fmt.Fprintf(&s, ") @ %s", v.span)
	return s.String()
}

func (v *ValueNode) Accept(vv ValueVisitor) error { return vv.VisitNode(v) }
