package iter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type chainNode struct {
	prev, next *chainNode
	val        string
}

type chain struct {
	head, tail *chainNode
}

func (c *chain) Forward(n *chainNode) *chainNode  { return n.next }
func (c *chain) Backward(n *chainNode) *chainNode { return n.prev }
func (c *chain) Dereference(n *chainNode) *string { return &n.val }

func newChain(vals ...string) *chain {
	c := &chain{}
	for _, v := range vals {
		n := &chainNode{val: v, prev: c.tail}
		if c.tail != nil {
			c.tail.next = n
		} else {
			c.head = n
		}
		c.tail = n
	}
	return c
}

func TestCursorForward(t *testing.T) {
	c := newChain("a", "b", "c")
	cur := NewCursor[chainNode, string](c, c.head, false)

	collected := make([]string, 0, 3)
	for cur.Valid() {
		collected = append(collected, *cur.Object())
		cur.Advance()
	}
	require.Equal(t, []string{"a", "b", "c"}, collected)
	require.Nil(t, cur.Object())

	// Exhausted cursors stay exhausted.
	cur.Advance()
	require.False(t, cur.Valid())
}

func TestCursorReverse(t *testing.T) {
	c := newChain("a", "b", "c")
	cur := NewCursor[chainNode, string](c, c.tail, true)

	collected := make([]string, 0, 3)
	for cur.Valid() {
		collected = append(collected, *cur.Object())
		cur.Advance()
	}
	require.Equal(t, []string{"c", "b", "a"}, collected)
}

func TestCursorRetreat(t *testing.T) {
	c := newChain("a", "b")
	cur := NewCursor[chainNode, string](c, c.tail, false)
	cur.Retreat()
	require.Equal(t, "a", *cur.Object())
}

func TestCursorEqual(t *testing.T) {
	c1 := newChain("a")
	c2 := newChain("a")

	require.True(t, NewCursor[chainNode, string](c1, c1.head, false).
		Equal(NewCursor[chainNode, string](c1, c1.head, false)))

	// Same position node pointer can never belong to two containers, but
	// even exhausted cursors keep their origin apart.
	end1 := NewCursor[chainNode, string](c1, nil, false)
	end2 := NewCursor[chainNode, string](c2, nil, false)
	require.False(t, end1.Equal(end2))
	require.True(t, end1.Equal(end1))
}
