// Package list implements an intrusive doubly linked list. The list
// never allocates: callers embed a Node inside their own objects and the
// list only rewires the link slots of nodes handed to it.
package list

import (
	"github.com/exotic-adt/exotic/lib/ident"
	"github.com/exotic-adt/exotic/lib/infra"
	"github.com/exotic-adt/exotic/lib/iter"
	"github.com/exotic-adt/exotic/lib/scope"
)

type ListOption[O any] func(*List[O])

// WithListScope selects the teardown policy applied by Release.
func WithListScope[O any](p scope.Policy) ListOption[O] {
	return func(l *List[O]) {
		l.policy = p
	}
}

// List chains objects of type O through the Node field described by its
// identity mapping. The ring closes through an internal guard node, so a
// member node always has non nil neighbors.
type List[O any] struct {
	guard  Node
	id     ident.ID[O, Node]
	policy scope.Policy
	len    int64
}

func NewList[O any](id ident.ID[O, Node], opts ...ListOption[O]) *List[O] {
	l := &List[O]{
		id:     id,
		policy: scope.Decoupled,
	}
	l.guard.prev, l.guard.next = &l.guard, &l.guard
	for _, o := range opts {
		o(l)
	}
	return l
}

func (l *List[O]) Len() int64 {
	return l.len
}

func (l *List[O]) Empty() bool {
	return l.guard.next == &l.guard
}

// Linked reports whether obj currently sits in some list. The node does
// not remember which list owns it, so this is membership in general, not
// membership in l specifically.
func (l *List[O]) Linked(obj *O) bool {
	return l.id.NodeOf(obj).Linked()
}

// PushFront chains obj at the head. It refuses objects whose node is
// already linked somewhere and reports whether the push happened.
func (l *List[O]) PushFront(obj *O) bool {
	n := l.id.NodeOf(obj)
	if n.Linked() {
		return false
	}
	n.insertAfter(&l.guard)
	l.len++
	return true
}

// PushBack chains obj at the tail.
func (l *List[O]) PushBack(obj *O) bool {
	n := l.id.NodeOf(obj)
	if n.Linked() {
		return false
	}
	n.insertBefore(&l.guard)
	l.len++
	return true
}

// PopFront detaches and returns the head object, or nil when empty. The
// detached node is restored to the orphan state.
func (l *List[O]) PopFront() *O {
	if l.Empty() {
		return nil
	}
	n := l.guard.next
	n.unlink()
	l.len--
	return l.id.ObjectOf(n)
}

func (l *List[O]) PopBack() *O {
	if l.Empty() {
		return nil
	}
	n := l.guard.prev
	n.unlink()
	l.len--
	return l.id.ObjectOf(n)
}

func (l *List[O]) Front() *O {
	if l.Empty() {
		return nil
	}
	return l.id.ObjectOf(l.guard.next)
}

func (l *List[O]) Back() *O {
	if l.Empty() {
		return nil
	}
	return l.id.ObjectOf(l.guard.prev)
}

// InsertBefore places obj just before the cursor position in the
// cursor's walk direction. An exhausted cursor stands for the boundary
// past its walk, so insertion lands at the tail of a forward walk or
// the head of a reverse one. Reports whether the object was orphan and
// got linked.
func (l *List[O]) InsertBefore(c iter.Cursor[Node, O], obj *O) bool {
	n := l.id.NodeOf(obj)
	if n.Linked() {
		return false
	}
	at := c.Node()
	switch {
	case at == nil && !c.Reversed():
		n.insertBefore(&l.guard)
	case at == nil:
		n.insertAfter(&l.guard)
	case !c.Reversed():
		n.insertBefore(at)
	default:
		n.insertAfter(at)
	}
	l.len++
	return true
}

// InsertAfter places obj just after the cursor position in the cursor's
// walk direction, the mirror of InsertBefore. On an exhausted cursor
// both land at the same walk boundary.
func (l *List[O]) InsertAfter(c iter.Cursor[Node, O], obj *O) bool {
	n := l.id.NodeOf(obj)
	if n.Linked() {
		return false
	}
	at := c.Node()
	switch {
	case at == nil && !c.Reversed():
		n.insertBefore(&l.guard)
	case at == nil:
		n.insertAfter(&l.guard)
	case !c.Reversed():
		n.insertAfter(at)
	default:
		n.insertBefore(at)
	}
	l.len++
	return true
}

// Erase detaches the object under the cursor and returns a cursor at the
// following position of the same walk.
func (l *List[O]) Erase(c iter.Cursor[Node, O]) iter.Cursor[Node, O] {
	if !c.Valid() {
		return c
	}
	next := c
	next.Advance()
	c.Node().unlink()
	l.len--
	return next
}

// Remove detaches obj from the list and reports whether it was linked.
func (l *List[O]) Remove(obj *O) bool {
	n := l.id.NodeOf(obj)
	if !n.Linked() {
		return false
	}
	n.unlink()
	l.len--
	return true
}

// Forward implements iter.Iterable.
func (l *List[O]) Forward(n *Node) *Node {
	if n.next == &l.guard {
		return nil
	}
	return n.next
}

// Backward implements iter.Iterable.
func (l *List[O]) Backward(n *Node) *Node {
	if n.prev == &l.guard {
		return nil
	}
	return n.prev
}

// Dereference implements iter.Iterable.
func (l *List[O]) Dereference(n *Node) *O {
	return l.id.ObjectOf(n)
}

// Begin returns a forward cursor at the head. On an empty list it is
// already exhausted.
func (l *List[O]) Begin() iter.Cursor[Node, O] {
	head := l.guard.next
	if head == &l.guard {
		head = nil
	}
	return iter.NewCursor[Node, O](l, head, false)
}

// RBegin returns a reverse cursor at the tail.
func (l *List[O]) RBegin() iter.Cursor[Node, O] {
	tail := l.guard.prev
	if tail == &l.guard {
		tail = nil
	}
	return iter.NewCursor[Node, O](l, tail, true)
}

// End returns the exhausted forward cursor of this list.
func (l *List[O]) End() iter.Cursor[Node, O] {
	return iter.NewCursor[Node, O](l, nil, false)
}

// REnd returns the exhausted reverse cursor of this list.
func (l *List[O]) REnd() iter.Cursor[Node, O] {
	return iter.NewCursor[Node, O](l, nil, true)
}

// From returns a forward cursor standing on obj. An unlinked object
// yields an exhausted cursor.
func (l *List[O]) From(obj *O) iter.Cursor[Node, O] {
	n := l.id.NodeOf(obj)
	if !n.Linked() {
		return l.End()
	}
	return iter.NewCursor[Node, O](l, n, false)
}

// RFrom returns a reverse cursor standing on obj.
func (l *List[O]) RFrom(obj *O) iter.Cursor[Node, O] {
	n := l.id.NodeOf(obj)
	if !n.Linked() {
		return l.REnd()
	}
	return iter.NewCursor[Node, O](l, n, true)
}

// Foreach visits the objects head to tail.
func (l *List[O]) Foreach(fn func(idx int64, obj *O)) error {
	if l.Empty() {
		return infra.NewErrorStack("[list] empty")
	}
	idx := int64(0)
	for n := l.guard.next; n != &l.guard; n = n.next {
		fn(idx, l.id.ObjectOf(n))
		idx++
	}
	return nil
}

// ReverseForeach visits the objects tail to head.
func (l *List[O]) ReverseForeach(fn func(idx int64, obj *O)) error {
	if l.Empty() {
		return infra.NewErrorStack("[list] empty")
	}
	idx := int64(0)
	for n := l.guard.prev; n != &l.guard; n = n.prev {
		fn(idx, l.id.ObjectOf(n))
		idx++
	}
	return nil
}

// Rekey is a no-op: list order does not depend on any key. Present so a
// list can join a key broadcast plan alongside ordered containers.
func (l *List[O]) Rekey(obj *O) {}

// SwapNodes exchanges the list positions of a and b while every other
// member keeps its neighbors. Orphans are allowed; an orphan swapped
// with a member takes the member's place.
func (l *List[O]) SwapNodes(a, b *O) {
	swapNodes(l.id.NodeOf(a), l.id.NodeOf(b))
}

// Release tears the list down following its scope policy. Unless the
// policy says the container dies with its members, teardown cascades:
// every member comes out orphan and reusable.
func (l *List[O]) Release() {
	if !l.policy.DestroyContainer() {
		return
	}
	for n := l.guard.next; n != &l.guard; {
		next := n.next
		n.prev, n.next = nil, nil
		n = next
	}
	l.guard.prev, l.guard.next = &l.guard, &l.guard
	l.len = 0
}

// Dispose is the node side counterpart of Release for a single dying
// object: under a policy whose node side cleans up, obj leaves the list
// as if removed; under the others its links are left alone. Reports
// whether a detach happened.
func (l *List[O]) Dispose(obj *O, p scope.Policy) bool {
	if !p.DestroyNode() {
		return false
	}
	return l.Remove(obj)
}
