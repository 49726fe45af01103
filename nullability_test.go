package autumn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeNullable_Leaves(t *testing.T) {
	lit := NewLiteral("a")
	empty := NewLiteral("")
	pred := NewCharRange('a', 'z')
	end := NewEndOfInput()

	seq := NewSequence(lit, empty, pred, end)
	nullable := ComputeNullable(seq)

	assert.False(t, nullable[lit.ID().String()])
	assert.True(t, nullable[empty.ID().String()])
	assert.False(t, nullable[pred.ID().String()])
	assert.True(t, nullable[end.ID().String()])
}

func TestComputeNullable_Composites(t *testing.T) {
	a := NewLiteral("a")
	optional := NewOptional(a)
	repeatZero := NewZeroOrMore(a)
	repeatOne := NewOneOrMore(a)
	choice := NewChoice(a, optional)
	seqAllNullable := NewSequence(optional, repeatZero)
	seqOneNonNullable := NewSequence(a, optional)

	root := NewSequence(choice, seqAllNullable, seqOneNonNullable, repeatOne)
	nullable := ComputeNullable(root)

	assert.True(t, nullable[optional.ID().String()])
	assert.True(t, nullable[repeatZero.ID().String()])
	assert.False(t, nullable[repeatOne.ID().String()])
	assert.True(t, nullable[choice.ID().String()], "Choice is nullable if any alternative is")
	assert.True(t, nullable[seqAllNullable.ID().String()])
	assert.False(t, nullable[seqOneNonNullable.ID().String()])
}

func TestComputeNullable_LeftRecursiveRule(t *testing.T) {
	ref := NewRef("Expr")
	digit := NewCharRange('0', '9')
	lr := NewLeftRecursive(NewChoice(NewSequence(ref, NewLiteral("+"), digit), digit))
	ref.Set(lr)

	nullable := ComputeNullable(lr)
	assert.False(t, nullable[lr.ID().String()], "requires at least one digit, never nullable")
}
