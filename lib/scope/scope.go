// Package scope defines the teardown policies that decide who releases
// link nodes and containers when their lifetimes end. Containers never
// allocate the nodes they chain, so release responsibility has to be
// stated explicitly by the caller that did allocate them.
package scope

// Policy selects a teardown behavior for a container and the nodes
// threaded through it.
type Policy uint8

const (
	// Decoupled means both sides clean up after themselves: a dying
	// node detaches from its container and a dying container orphans
	// every member. Nodes and container stay usable afterwards.
	Decoupled Policy = iota
	// Cached means nodes outlive containers. A dying container still
	// orphans every member so they can be reused, but a dying node
	// leaves its links alone because its container is already gone.
	Cached
	// Symbiosis assumes nodes and container share one lifetime which is
	// ending now. Neither side is reset.
	Symbiosis
)

// DestroyNode reports whether the node side cleans up: a node disposed
// of individually must detach itself from its container.
func (p Policy) DestroyNode() bool {
	return p == Decoupled
}

// DestroyContainer reports whether container teardown cascades: every
// member comes out orphan and the container resets to empty.
func (p Policy) DestroyContainer() bool {
	return p == Decoupled || p == Cached
}

func (p Policy) String() string {
	switch p {
	case Decoupled:
		return "decoupled"
	case Cached:
		return "cached"
	case Symbiosis:
		return "symbiosis"
	default:
		return "unknown"
	}
}
