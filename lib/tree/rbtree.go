package tree

// The balancing engine below only ever touches positions, never queue
// internals. Every structural edit goes through link slot addresses so
// that the same code serves plain nodes and group heads whose child
// slots live inside their queue members.

// rotateUp lifts y above its parent. The subtree between them changes
// sides and every outside reference is repatched, including the anchor's
// root slot when the parent was the root.
func rotateUp(y *Node) {
	x := y.links[0]
	ref := referredRef(x)
	anchor := x.links[0]

	if *leftRef(x) == y {
		c := *rightRef(y)
		*leftRef(x) = c
		if c != nil {
			c.links[0] = x
		}
		*rightRef(y) = x
	} else {
		c := *leftRef(y)
		*rightRef(x) = c
		if c != nil {
			c.links[0] = x
		}
		*leftRef(y) = x
	}
	x.links[0] = y
	y.links[0] = anchor
	*ref = y
}

// doubleRedResolve restores the no-red-edge rule after n was linked in
// red. It recolors while the uncle is red, then fixes the remaining
// zig or zigzag with one or two rotations.
func doubleRedResolve(n *Node) {
	for {
		if isRoot(n) {
			setBlack(n)
			return
		}
		p := n.links[0]
		if isBlack(p) {
			return
		}
		if isRoot(p) {
			setBlack(p)
			return
		}
		g := p.links[0]
		var u *Node
		if *leftRef(g) == p {
			u = *rightRef(g)
		} else {
			u = *leftRef(g)
		}
		if isRed(u) {
			setBlack(p)
			setBlack(u)
			setRed(g)
			n = g
			continue
		}
		if (*leftRef(g) == p) != (*leftRef(p) == n) {
			rotateUp(n)
			n, p = p, n
		}
		rotateUp(p)
		setBlack(p)
		setRed(g)
		return
	}
}

// doubleBlackResolve rebalances before a black leaf position n leaves
// the tree. n stays linked throughout; the caller unlinks it afterwards.
// The sibling is re-read after the red sibling rotation because that
// rotation hands n a new one.
func doubleBlackResolve(n *Node) {
	for !isRoot(n) {
		p := n.links[0]
		nIsLeft := *leftRef(p) == n
		var sib *Node
		if nIsLeft {
			sib = *rightRef(p)
		} else {
			sib = *leftRef(p)
		}
		if isRed(sib) {
			setBlack(sib)
			setRed(p)
			rotateUp(sib)
			if nIsLeft {
				sib = *rightRef(p)
			} else {
				sib = *leftRef(p)
			}
		}
		var near, far *Node
		if nIsLeft {
			near, far = *leftRef(sib), *rightRef(sib)
		} else {
			near, far = *rightRef(sib), *leftRef(sib)
		}
		if isBlack(near) && isBlack(far) {
			setRed(sib)
			if isRed(p) {
				setBlack(p)
				return
			}
			n = p
			continue
		}
		if isBlack(far) {
			setBlack(near)
			setRed(sib)
			rotateUp(near)
			sib = near
			if nIsLeft {
				far = *rightRef(sib)
			} else {
				far = *leftRef(sib)
			}
		}
		if isRed(p) {
			setRed(sib)
		} else {
			setBlack(sib)
		}
		setBlack(p)
		setBlack(far)
		rotateUp(sib)
		return
	}
}

// insertAt links the orphan n relative to target. A negative relation
// hangs it off the empty left slot, a positive one off the right slot,
// both followed by rebalancing. A zero relation queues n into target's
// ordering group in constant time without disturbing the balance.
func insertAt(target *Node, rel int64, n *Node) {
	if rel == 0 {
		if target.shape() == nodeMulext {
			f := target.links[1]
			n.flags = nodeMulint | nodeQueueFront
			n.links[0] = target
			n.links[1] = f.links[1]
			n.links[2] = f
			f.flags &^= nodeQueueFront
			f.links[1] = n
			target.links[1] = n
			return
		}
		n.flags = nodeMulint | nodeQueueFront | nodeQueueBack
		n.links[0] = target
		n.links[1] = target.links[1]
		n.links[2] = target.links[2]
		target.flags = nodeMulext | target.flags&nodeBlack
		target.links[1] = n
		target.links[2] = n
		return
	}
	n.flags = nodeSingle
	n.links[0] = target
	var slot **Node
	if rel < 0 {
		slot = leftRef(target)
	} else {
		slot = rightRef(target)
	}
	*slot = n
	doubleRedResolve(n)
}

func eraseMulint(n *Node) {
	isF := n.flags&nodeQueueFront != 0
	isB := n.flags&nodeQueueBack != 0
	switch {
	case isF && isB:
		m := n.links[0]
		m.flags = nodeSingle | m.flags&nodeBlack
		m.links[1] = n.links[1]
		m.links[2] = n.links[2]
	case isF:
		m := n.links[0]
		next := n.links[2]
		next.flags |= nodeQueueFront
		next.links[0] = m
		next.links[1] = n.links[1]
		m.links[1] = next
	case isB:
		m := n.links[0]
		prev := n.links[1]
		prev.flags |= nodeQueueBack
		prev.links[0] = m
		prev.links[2] = n.links[2]
		m.links[2] = prev
	default:
		prev, next := n.links[1], n.links[2]
		prev.links[2] = next
		next.links[1] = prev
	}
	orphan(n)
}

// eraseMulext retires a group head by promoting the back member, the
// oldest of the group, into the vacated position. The position keeps its
// color so no rebalancing happens.
func eraseMulext(m *Node) {
	f, b := m.links[1], m.links[2]
	ref := referredRef(m)
	p := m.links[0]
	color := m.flags & nodeBlack
	if f == b {
		b.flags = nodeSingle | color
		b.links[0] = p
	} else {
		nb := b.links[1]
		tr := b.links[2]
		b.flags = nodeMulext | color
		b.links[0] = p
		b.links[1] = f
		b.links[2] = nb
		f.links[0] = b
		nb.flags |= nodeQueueBack
		nb.links[0] = b
		nb.links[2] = tr
	}
	*ref = b
	if l := *leftRef(b); l != nil {
		l.links[0] = b
	}
	if r := *rightRef(b); r != nil {
		r.links[0] = b
	}
	orphan(m)
}

// eraseNode unlinks n whatever its shape and restores it to an orphan.
// Only erasing a black position without children pays for rebalancing;
// queue edits and head promotion are constant time.
func eraseNode(n *Node, borrowPred bool) {
	switch n.shape() {
	case nodeOrphan:
		return
	case nodeMulint:
		eraseMulint(n)
		return
	case nodeMulext:
		eraseMulext(n)
		return
	}
	l, r := n.links[1], n.links[2]
	if l != nil && r != nil {
		var s *Node
		if borrowPred {
			s = maxOf(l)
		} else {
			s = minOf(r)
		}
		swapPositions(n, s)
		l, r = n.links[1], n.links[2]
	}
	c := l
	if c == nil {
		c = r
	}
	if c != nil {
		*referredRef(n) = c
		c.links[0] = n.links[0]
		setBlack(c)
	} else {
		if isBlack(n) && !isRoot(n) {
			doubleBlackResolve(n)
		}
		*referredRef(n) = nil
	}
	orphan(n)
}

// takePosition moves x into the tree position held by y. x keeps its own
// shape and queue; only parent and child wiring transfers. x must be
// unreferenced and y linked.
func takePosition(x, y *Node) {
	ref := referredRef(y)
	p := y.links[0]
	l := *leftRef(y)
	r := *rightRef(y)
	*ref = x
	x.links[0] = p
	*leftRef(x) = l
	*rightRef(x) = r
	if l != nil {
		l.links[0] = x
	}
	if r != nil {
		r.links[0] = x
	}
}

// swapPositions exchanges the tree positions and colors of two position
// holders. Each keeps its queue. Adjacency between a and b resolves
// itself because the exchange runs through a placeholder.
func swapPositions(a, b *Node) {
	if a == b {
		return
	}
	tmp := Node{flags: nodeSingle}
	takePosition(&tmp, a)
	takePosition(a, b)
	takePosition(b, &tmp)
	swapColor(a, b)
}

// takeIdentity hands y's complete container identity to x: flags, links
// and every outside reference, so x continues exactly as y did. y is
// left dangling for the caller to repurpose or orphan.
func takeIdentity(x, y *Node) {
	switch y.shape() {
	case nodeSingle, nodeMulext:
		*referredRef(y) = x
		if l := *leftRef(y); l != nil {
			l.links[0] = x
		}
		if r := *rightRef(y); r != nil {
			r.links[0] = x
		}
		if y.shape() == nodeMulext {
			y.links[1].links[0] = x
			y.links[2].links[0] = x
		}
	case nodeMulint:
		if y.flags&nodeQueueFront != 0 {
			y.links[0].links[1] = x
		} else {
			y.links[1].links[2] = x
		}
		if y.flags&nodeQueueBack != 0 {
			y.links[0].links[2] = x
		} else {
			y.links[2].links[1] = x
		}
	}
	x.flags = y.flags
	x.links = y.links
}

// swapNodes exchanges the complete container roles of a and b, whatever
// combination of shapes they hold. Swapping with an orphan moves the
// linked one's role over and orphans it, which is how objects migrate.
func swapNodes(a, b *Node) {
	if a == b {
		return
	}
	var tmp Node
	takeIdentity(&tmp, a)
	takeIdentity(a, b)
	takeIdentity(b, &tmp)
}

// prune tears the whole tree down from its anchor in one post order
// sweep using no extra space, backtracking through parent slots. Every
// node, queued members included, comes out orphan.
func prune(anchor *Node) {
	n := anchor.links[1]
	for n != nil {
		if l := *leftRef(n); l != nil {
			n = l
			continue
		}
		if r := *rightRef(n); r != nil {
			n = r
			continue
		}
		p := n.links[0]
		*referredRef(n) = nil
		retire(n)
		if p.shape() == nodeOrphan {
			break
		}
		n = p
	}
	anchor.links[1] = nil
}

func retire(n *Node) {
	if n.shape() == nodeMulext {
		m := n.links[1]
		for {
			last := m.flags&nodeQueueBack != 0
			next := m.links[2]
			orphan(m)
			if last {
				break
			}
			m = next
		}
	}
	orphan(n)
}
