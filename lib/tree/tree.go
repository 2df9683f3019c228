// Package tree implements an intrusive red black tree that keeps every
// object carrying an equal ordering key, not just one per key. Callers
// embed a Node in their objects; the tree allocates nothing and only
// rewires the link slots of nodes handed to it. Equal keyed objects
// queue behind a shared position in constant time and leave it again
// without touching the balance.
package tree

import (
	"go.uber.org/zap"

	"github.com/exotic-adt/exotic/lib/ident"
	"github.com/exotic-adt/exotic/lib/infra"
	"github.com/exotic-adt/exotic/lib/iter"
	"github.com/exotic-adt/exotic/lib/scope"
)

type TreeOption[O any] func(*Tree[O])

// WithTreeScope selects the teardown policy applied by Release.
func WithTreeScope[O any](p scope.Policy) TreeOption[O] {
	return func(t *Tree[O]) {
		t.policy = p
	}
}

// WithTreeBorrowPredecessor makes removal of a two child position borrow
// the predecessor instead of the successor.
func WithTreeBorrowPredecessor[O any]() TreeOption[O] {
	return func(t *Tree[O]) {
		t.borrowPred = true
	}
}

func WithTreeLogger[O any](lg *zap.Logger) TreeOption[O] {
	return func(t *Tree[O]) {
		t.lg = lg
	}
}

// Tree orders objects of type O through the Node field described by its
// identity mapping. Ties share one position: the newest member of a tie
// fronts its group and the eldest holds the position.
type Tree[O any] struct {
	anchor     Node
	id         ident.ID[O, Node]
	cmp        func(a, b *O) int64
	lg         *zap.Logger
	policy     scope.Policy
	borrowPred bool
	count      int64
}

func NewTree[O any](id ident.ID[O, Node], cmp func(a, b *O) int64, opts ...TreeOption[O]) *Tree[O] {
	t := &Tree[O]{
		id:     id,
		cmp:    cmp,
		policy: scope.Decoupled,
		lg:     zap.NewNop(),
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// OrderedBy builds a comparator from a key extractor over any ordered
// key type.
func OrderedBy[K infra.OrderedKey, O any](key func(*O) K) func(a, b *O) int64 {
	return func(a, b *O) int64 {
		return infra.OrderedKeyComparator(key(a), key(b))
	}
}

func (t *Tree[O]) root() *Node {
	return t.anchor.links[1]
}

func (t *Tree[O]) Len() int64 {
	return t.count
}

func (t *Tree[O]) Empty() bool {
	return t.root() == nil
}

// Linked reports whether obj currently sits in some tree.
func (t *Tree[O]) Linked(obj *O) bool {
	return t.id.NodeOf(obj).Linked()
}

// Insert links obj into the tree. An object whose node is already linked
// somewhere is refused. Ties queue in front of their group, so the most
// recent insert of a key is the first one found again.
func (t *Tree[O]) Insert(obj *O) bool {
	n := t.id.NodeOf(obj)
	if n.Linked() {
		return false
	}
	if t.Empty() {
		insertAt(&t.anchor, -1, n)
		t.count++
		return true
	}
	cur := t.root()
	for {
		d := t.cmp(obj, t.id.ObjectOf(cur))
		if d == 0 {
			insertAt(cur, 0, n)
			break
		}
		var next *Node
		if d < 0 {
			next = *leftRef(cur)
		} else {
			next = *rightRef(cur)
		}
		if next == nil {
			insertAt(cur, d, n)
			break
		}
		cur = next
	}
	t.count++
	return true
}

// Remove unlinks obj and restores its node to the orphan state. Reports
// whether the object was linked at all.
func (t *Tree[O]) Remove(obj *O) bool {
	n := t.id.NodeOf(obj)
	if !n.Linked() {
		return false
	}
	eraseNode(n, t.borrowPred)
	t.count--
	return true
}

// Search descends by the given ordering probe: the probe sees a resident
// object and answers negative to go left, positive to go right and zero
// on a hit. A hit on a tied group yields its newest member.
func (t *Tree[O]) Search(probe func(*O) int64) *O {
	cur := t.root()
	for cur != nil {
		d := probe(t.id.ObjectOf(cur))
		if d == 0 {
			return t.id.ObjectOf(firstOf(cur))
		}
		if d < 0 {
			cur = *leftRef(cur)
		} else {
			cur = *rightRef(cur)
		}
	}
	return nil
}

// Elder returns the object holding the position of obj's ordering
// group, the eldest of a tie. For an object without ties that is the
// object itself; for an unlinked one it is nil.
func (t *Tree[O]) Elder(obj *O) *O {
	n := t.id.NodeOf(obj)
	if !n.Linked() {
		return nil
	}
	return t.id.ObjectOf(external(n))
}

func (t *Tree[O]) Min() *O {
	if t.Empty() {
		return nil
	}
	return t.id.ObjectOf(firstOf(minOf(t.root())))
}

func (t *Tree[O]) Max() *O {
	if t.Empty() {
		return nil
	}
	return t.id.ObjectOf(firstOf(maxOf(t.root())))
}

// Forward implements iter.Iterable.
func (t *Tree[O]) Forward(n *Node) *Node {
	return forward(n)
}

// Backward implements iter.Iterable.
func (t *Tree[O]) Backward(n *Node) *Node {
	return backward(n)
}

// Dereference implements iter.Iterable.
func (t *Tree[O]) Dereference(n *Node) *O {
	return t.id.ObjectOf(n)
}

// Begin returns a forward cursor over ascending order, group members
// newest first and the group elder last within a tie.
func (t *Tree[O]) Begin() iter.Cursor[Node, O] {
	if t.Empty() {
		return iter.NewCursor[Node, O](t, nil, false)
	}
	return iter.NewCursor[Node, O](t, firstOf(minOf(t.root())), false)
}

// RBegin returns a reverse cursor starting at the last element of the
// forward walk.
func (t *Tree[O]) RBegin() iter.Cursor[Node, O] {
	if t.Empty() {
		return iter.NewCursor[Node, O](t, nil, true)
	}
	return iter.NewCursor[Node, O](t, maxOf(t.root()), true)
}

// End returns the exhausted forward cursor of this tree.
func (t *Tree[O]) End() iter.Cursor[Node, O] {
	return iter.NewCursor[Node, O](t, nil, false)
}

// REnd returns the exhausted reverse cursor of this tree.
func (t *Tree[O]) REnd() iter.Cursor[Node, O] {
	return iter.NewCursor[Node, O](t, nil, true)
}

// From returns a forward cursor standing on obj, queued member or not.
// An unlinked object yields an exhausted cursor.
func (t *Tree[O]) From(obj *O) iter.Cursor[Node, O] {
	n := t.id.NodeOf(obj)
	if !n.Linked() {
		return t.End()
	}
	return iter.NewCursor[Node, O](t, n, false)
}

// Foreach visits every object in ascending order.
func (t *Tree[O]) Foreach(fn func(idx int64, obj *O)) error {
	if t.Empty() {
		return infra.NewErrorStack("[tree] empty")
	}
	idx := int64(0)
	for n := firstOf(minOf(t.root())); n != nil; n = forward(n) {
		fn(idx, t.id.ObjectOf(n))
		idx++
	}
	return nil
}

// Rekey relocates obj after its ordering key changed. The object leaves
// its old position and reenters under the new key, fronting its group if
// the new key ties.
func (t *Tree[O]) Rekey(obj *O) {
	n := t.id.NodeOf(obj)
	if !n.Linked() {
		return
	}
	eraseNode(n, t.borrowPred)
	t.count--
	t.Insert(obj)
}

// SwapNodes exchanges the container roles of a and b while every other
// object keeps its place. Swapping a member with an orphan moves the
// member's role onto the orphan, which is how an object is replaced in
// place.
func (t *Tree[O]) SwapNodes(a, b *O) {
	swapNodes(t.id.NodeOf(a), t.id.NodeOf(b))
}

// Release tears the tree down following its scope policy. Unless the
// policy says the container dies with its members, teardown cascades:
// every member, queued ones included, comes out orphan and reusable.
func (t *Tree[O]) Release() {
	t.lg.Debug("tree release",
		zap.String("scope", t.policy.String()),
		zap.Int64("count", t.count))
	if t.policy.DestroyContainer() {
		prune(&t.anchor)
		t.count = 0
	}
}

// Dispose is the node side counterpart of Release for a single dying
// object: under a policy whose node side cleans up, obj leaves the tree
// as if removed; under the others its links are left alone. Reports
// whether a detach happened.
func (t *Tree[O]) Dispose(obj *O, p scope.Policy) bool {
	if !p.DestroyNode() {
		return false
	}
	return t.Remove(obj)
}
