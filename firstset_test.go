package autumn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeFirstSets_Sequence(t *testing.T) {
	a := NewLiteral("a")
	b := NewLiteral("b")
	seq := NewSequence(a, b)

	sets := ComputeFirstSets(seq)
	first := sets[seq.ID().String()]

	assert.Len(t, first, 1)
	_, ok := first[a.ID().String()]
	assert.True(t, ok, "only the first, non-nullable child contributes")
}

func TestComputeFirstSets_SequenceWithNullablePrefix(t *testing.T) {
	optional := NewOptional(NewLiteral("a"))
	b := NewLiteral("b")
	seq := NewSequence(optional, b)

	sets := ComputeFirstSets(seq)
	first := sets[seq.ID().String()]

	// Optional's own body "a" contributes (it might be consulted), and
	// so does "b" since Optional is nullable and parsing could skip
	// straight past it.
	assert.Len(t, first, 2)
}

func TestComputeFirstSets_Choice(t *testing.T) {
	a := NewLiteral("a")
	b := NewLiteral("b")
	choice := NewChoice(a, b)

	sets := ComputeFirstSets(choice)
	first := sets[choice.ID().String()]
	assert.Len(t, first, 2)
}
