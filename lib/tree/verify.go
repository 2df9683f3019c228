package tree

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/exotic-adt/exotic/lib/infra"
)

// Validate checks every structural rule the tree maintains: the red
// black coloring, the ordering of positions and the wiring of tie
// queues. Meant for tests and debugging, it walks the whole tree.
func (t *Tree[O]) Validate() error {
	return multierr.Combine(
		t.validateColors(),
		t.validateOrder(),
		t.validateShapes(),
	)
}

func (t *Tree[O]) validateColors() (err error) {
	root := t.root()
	if root == nil {
		return nil
	}
	if isRed(root) {
		err = multierr.Append(err, infra.NewErrorStack("[tree] red root"))
	}
	want := -1
	var walk func(n *Node, blacks int)
	walk = func(n *Node, blacks int) {
		if n == nil {
			if want < 0 {
				want = blacks
			} else if blacks != want {
				err = multierr.Append(err, infra.NewErrorStack(
					fmt.Sprintf("[tree] uneven black depth: %d vs %d", blacks, want)))
			}
			return
		}
		if isRed(n) && isRed(n.links[0]) {
			err = multierr.Append(err, infra.NewErrorStack("[tree] red node under red parent"))
		}
		if isBlack(n) {
			blacks++
		}
		walk(*leftRef(n), blacks)
		walk(*rightRef(n), blacks)
	}
	walk(root, 0)
	return err
}

func (t *Tree[O]) validateOrder() (err error) {
	var prev *O
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		walk(*leftRef(n))
		obj := t.id.ObjectOf(n)
		if prev != nil && t.cmp(prev, obj) >= 0 {
			err = multierr.Append(err, infra.NewErrorStack("[tree] positions out of order"))
		}
		prev = obj
		walk(*rightRef(n))
	}
	walk(t.root())
	return err
}

func (t *Tree[O]) validateShapes() (err error) {
	fail := func(msg string) {
		err = multierr.Append(err, infra.NewErrorStack(msg))
	}
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		switch n.shape() {
		case nodeSingle:
			if n.flags&(nodeQueueFront|nodeQueueBack) != 0 {
				fail("[tree] plain position carries queue flags")
			}
		case nodeMulext:
			f, b := n.links[1], n.links[2]
			if f == nil || b == nil {
				fail("[tree] group head without members")
				break
			}
			if f.flags&nodeQueueFront == 0 || f.links[0] != n {
				fail("[tree] queue front not wired to its head")
			}
			if b.flags&nodeQueueBack == 0 || b.links[0] != n {
				fail("[tree] queue back not wired to its head")
			}
			head := t.id.ObjectOf(n)
			for m := f; ; m = m.links[2] {
				if m.shape() != nodeMulint {
					fail("[tree] queue member with wrong shape")
					break
				}
				if t.cmp(head, t.id.ObjectOf(m)) != 0 {
					fail("[tree] queue member ordered apart from its head")
				}
				if m.flags&nodeQueueBack != 0 {
					if m != b {
						fail("[tree] queue walk ends off the back member")
					}
					break
				}
			}
		default:
			fail("[tree] position with orphan or queued shape")
		}
		if l := *leftRef(n); l != nil {
			if l.links[0] != n {
				fail("[tree] left child disowns its parent")
			}
			walk(l)
		}
		if r := *rightRef(n); r != nil {
			if r.links[0] != n {
				fail("[tree] right child disowns its parent")
			}
			walk(r)
		}
	}
	if root := t.root(); root != nil {
		if root.links[0] != &t.anchor {
			fail("[tree] root not anchored")
		}
		walk(root)
	}
	return err
}
