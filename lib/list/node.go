package list

// Node is the pair of link slots a caller embeds in its own object to
// make it chainable. The zero value is an orphan node. A linked node
// always has both slots set because the list is a closed ring through
// its guard.
type Node struct {
	prev, next *Node
}

// Linked reports whether the node currently sits in a list.
func (n *Node) Linked() bool {
	return n.prev != nil
}

func (n *Node) unlink() {
	if !n.Linked() {
		return
	}
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev, n.next = nil, nil
}

// insertAfter splices an orphan node in right after pos.
func (n *Node) insertAfter(pos *Node) {
	n.prev, n.next = pos, pos.next
	pos.next.prev = n
	pos.next = n
}

func (n *Node) insertBefore(pos *Node) {
	n.insertAfter(pos.prev)
}

// takePlace moves n into the ring position held by victim and orphans
// the victim. n must be an orphan.
func (n *Node) takePlace(victim *Node) {
	n.prev, n.next = victim.prev, victim.next
	n.prev.next = n
	n.next.prev = n
	victim.prev, victim.next = nil, nil
}

// swapNodes exchanges the ring positions of a and b. The nodes may live
// in different lists, be neighbors, or be orphans; in the latter case
// the linked one moves out and the orphan moves in.
func swapNodes(a, b *Node) {
	if a == b {
		return
	}
	switch {
	case !a.Linked() && !b.Linked():
		return
	case !a.Linked():
		a.takePlace(b)
	case !b.Linked():
		b.takePlace(a)
	case b.next == a:
		swapNodes(b, a)
	case a.next == b:
		ap, bn := a.prev, b.next
		ap.next, b.prev = b, ap
		b.next, a.prev = a, b
		a.next, bn.prev = bn, a
	default:
		ap, an := a.prev, a.next
		bp, bn := b.prev, b.next
		ap.next, an.prev = b, b
		bp.next, bn.prev = a, a
		a.prev, a.next = bp, bn
		b.prev, b.next = ap, an
	}
}
