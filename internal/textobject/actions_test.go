package textobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollapseToFront_MovesToSelectionStart(t *testing.T) {
	c := NewState(3)
	c.SetMark(9)

	CollapseToFront(c)

	assert.Equal(t, 3, c.Point())
	assert.Equal(t, 3, c.Mark())
	assert.False(t, c.SelectionActive())
}

func TestCollapseToBack_MovesToSelectionEnd(t *testing.T) {
	c := NewState(3)
	c.SetMark(9)

	CollapseToBack(c)

	assert.Equal(t, 9, c.Point())
	assert.Equal(t, 9, c.Mark())
	assert.False(t, c.SelectionActive())
}

func TestCollapse_ReversedSelectionStillOrders(t *testing.T) {
	c := NewState(9)
	c.SetMark(3)

	CollapseToFront(c)

	assert.Equal(t, 3, c.Point())
	assert.False(t, c.SelectionActive())
}

func TestCollapse_NoSelectionIsNoOp(t *testing.T) {
	c := NewState(5)

	CollapseToFront(c)
	CollapseToBack(c)

	assert.Equal(t, 5, c.Point())
	assert.False(t, c.SelectionActive())
}
