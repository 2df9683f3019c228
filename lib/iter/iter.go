// Package iter provides the cursor scaffolding shared by the intrusive
// containers. A container only has to explain how to step between its
// nodes and how to recover the enclosing object; the traversal state
// lives here.
package iter

// Iterable is the traversal contract a container implements. Forward and
// Backward return nil when the walk leaves the container.
type Iterable[N any, O any] interface {
	Forward(n *N) *N
	Backward(n *N) *N
	Dereference(n *N) *O
}

// Cursor is a position inside one container. The zero value is an
// unattached cursor that compares unequal to every attached one.
type Cursor[N any, O any] struct {
	src     Iterable[N, O]
	cur     *N
	reverse bool
}

// NewCursor starts a cursor at node cur of src. A reverse cursor swaps
// the meaning of Advance and Retreat.
func NewCursor[N any, O any](src Iterable[N, O], cur *N, reverse bool) Cursor[N, O] {
	return Cursor[N, O]{src: src, cur: cur, reverse: reverse}
}

// Reversed reports whether Advance walks against the container order.
func (c Cursor[N, O]) Reversed() bool {
	return c.reverse
}

// Valid reports whether the cursor still points at a node.
func (c Cursor[N, O]) Valid() bool {
	return c.src != nil && c.cur != nil
}

// Node returns the node under the cursor, or nil past the end.
func (c Cursor[N, O]) Node() *N {
	return c.cur
}

// Object returns the object under the cursor, or nil past the end.
func (c Cursor[N, O]) Object() *O {
	if !c.Valid() {
		return nil
	}
	return c.src.Dereference(c.cur)
}

// Advance steps one position in the cursor's direction. Stepping an
// exhausted cursor is a no-op.
func (c *Cursor[N, O]) Advance() {
	if !c.Valid() {
		return
	}
	if c.reverse {
		c.cur = c.src.Backward(c.cur)
	} else {
		c.cur = c.src.Forward(c.cur)
	}
}

// Retreat steps one position against the cursor's direction.
func (c *Cursor[N, O]) Retreat() {
	if !c.Valid() {
		return
	}
	if c.reverse {
		c.cur = c.src.Forward(c.cur)
	} else {
		c.cur = c.src.Backward(c.cur)
	}
}

// Equal reports whether both cursors sit on the same position of the
// same container. Cursors over different containers are never equal,
// exhausted or not.
func (c Cursor[N, O]) Equal(other Cursor[N, O]) bool {
	return c.src == other.src && c.cur == other.cur && c.reverse == other.reverse
}
