package autumn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueStack_PushPopTruncate(t *testing.T) {
	s := newValueStack()
	a := NewValueString("a", Span{})
	b := NewValueString("b", Span{})

	s.push(a)
	s.push(b)
	assert.Equal(t, 2, s.Depth())

	got := s.pop()
	assert.Equal(t, b, got)
	assert.Equal(t, 1, s.Depth())

	s.push(b)
	s.truncateTo(1)
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, []Value{a}, s.Snapshot())
}

func TestValueStack_Since(t *testing.T) {
	s := newValueStack()
	s.push(NewValueString("a", Span{}))
	depth := s.Depth()
	s.push(NewValueString("b", Span{}))
	s.push(NewValueString("c", Span{}))

	since := s.since(depth)
	assert.Len(t, since, 2)
	assert.Equal(t, "b", since[0].(*ValueString).Text)
	assert.Equal(t, "c", since[1].(*ValueString).Text)

	assert.Nil(t, s.since(s.Depth()))
}
