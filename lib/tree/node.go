package tree

// Node is the link block a caller embeds in its objects to make them
// tree members. The zero value is an orphan. A node changes shape over
// its lifetime and the meaning of its three link slots changes with it:
//
//	orphan   unlinked, all slots nil. A tree anchor is also this shape,
//	         with slot 1 holding the root.
//	single   slot 0 parent, slot 1 left child, slot 2 right child.
//	mulext   the head of an equal ordering group that owns at least one
//	         queued member. Slot 0 parent, slot 1 front member, slot 2
//	         back member. The head's left child is parked in the front
//	         member's slot 1 and its right child in the back member's
//	         slot 2, so a group costs no extra space.
//	mulint   a queued member, invisible to rebalancing. Slot 1 points
//	         toward the front of the queue and slot 2 toward the back,
//	         except at the ends where those slots hold the borrowed
//	         children. Slot 0 holds the owning head at the ends.
type Node struct {
	flags nodeFlags
	links [3]*Node
}

type nodeFlags uint8

const (
	nodeOrphan nodeFlags = iota
	nodeSingle
	nodeMulext
	nodeMulint

	nodeShapeMask  nodeFlags = 0x03
	nodeQueueFront nodeFlags = 1 << 2
	nodeQueueBack  nodeFlags = 1 << 3
	nodeBlack      nodeFlags = 1 << 4
)

func (f nodeFlags) shape() nodeFlags {
	return f & nodeShapeMask
}

// Linked reports whether the node currently sits in a tree, either as a
// position holder or as a queued member.
func (n *Node) Linked() bool {
	return n.flags.shape() != nodeOrphan
}

func (n *Node) shape() nodeFlags {
	return n.flags.shape()
}

func isRed(n *Node) bool {
	return n != nil && n.flags&nodeBlack == 0
}

func isBlack(n *Node) bool {
	return n == nil || n.flags&nodeBlack != 0
}

func setRed(n *Node) {
	n.flags &^= nodeBlack
}

func setBlack(n *Node) {
	n.flags |= nodeBlack
}

func swapColor(a, b *Node) {
	ca, cb := a.flags&nodeBlack, b.flags&nodeBlack
	a.flags = a.flags&^nodeBlack | cb
	b.flags = b.flags&^nodeBlack | ca
}

func orphan(n *Node) {
	n.flags = nodeOrphan
	n.links[0], n.links[1], n.links[2] = nil, nil, nil
}

// leftRef returns the address of the slot holding n's left child. For a
// group head that slot lives inside the front member. For an anchor both
// child refs alias the root slot, which keeps inserting relative to the
// anchor of an empty tree uniform with any other insert.
func leftRef(n *Node) **Node {
	switch n.shape() {
	case nodeMulext:
		return &n.links[1].links[1]
	case nodeOrphan:
		return &n.links[1]
	default:
		return &n.links[1]
	}
}

func rightRef(n *Node) **Node {
	switch n.shape() {
	case nodeMulext:
		return &n.links[2].links[2]
	case nodeOrphan:
		return &n.links[1]
	default:
		return &n.links[2]
	}
}

// referredRef returns the address of the slot in n's parent that points
// at n. For the root that is the anchor's root slot.
func referredRef(n *Node) **Node {
	p := n.links[0]
	if p.shape() == nodeOrphan {
		return &p.links[1]
	}
	if *leftRef(p) == n {
		return leftRef(p)
	}
	return rightRef(p)
}

func isRoot(n *Node) bool {
	return n.links[0].shape() == nodeOrphan
}

// external resolves a queued member to the head holding its position.
// Only the ends of a queue track their owner, so a middle member walks
// toward the back first.
func external(n *Node) *Node {
	if n.shape() != nodeMulint {
		return n
	}
	for n.flags&(nodeQueueFront|nodeQueueBack) == 0 {
		n = n.links[2]
	}
	return n.links[0]
}

// firstOf returns the element that leads a position's group in walk
// order. Queued members come newest first and the head closes the
// group.
func firstOf(n *Node) *Node {
	if n.shape() == nodeMulext {
		return n.links[1]
	}
	return n
}

func minOf(n *Node) *Node {
	for {
		l := *leftRef(n)
		if l == nil {
			return n
		}
		n = l
	}
}

func maxOf(n *Node) *Node {
	for {
		r := *rightRef(n)
		if r == nil {
			return n
		}
		n = r
	}
}

// succPosition steps to the next position in tree order, skipping queue
// internals. n must hold a position.
func succPosition(n *Node) *Node {
	if r := *rightRef(n); r != nil {
		return minOf(r)
	}
	for {
		p := n.links[0]
		if p.shape() == nodeOrphan {
			return nil
		}
		if *leftRef(p) == n {
			return p
		}
		n = p
	}
}

func predPosition(n *Node) *Node {
	if l := *leftRef(n); l != nil {
		return maxOf(l)
	}
	for {
		p := n.links[0]
		if p.shape() == nodeOrphan {
			return nil
		}
		if *rightRef(p) == n {
			return p
		}
		n = p
	}
}

// forward steps one element in walk order: through the queue of a group
// front to back, then the head, then on to the next position.
func forward(n *Node) *Node {
	if n.shape() == nodeMulint {
		if n.flags&nodeQueueBack != 0 {
			return n.links[0]
		}
		return n.links[2]
	}
	s := succPosition(n)
	if s == nil {
		return nil
	}
	return firstOf(s)
}

// backward is the exact inverse of forward.
func backward(n *Node) *Node {
	if n.shape() == nodeMulint {
		if n.flags&nodeQueueFront != 0 {
			p := predPosition(n.links[0])
			if p == nil {
				return nil
			}
			return p
		}
		return n.links[1]
	}
	if n.shape() == nodeMulext {
		return n.links[2]
	}
	p := predPosition(n)
	if p == nil {
		return nil
	}
	return p
}
