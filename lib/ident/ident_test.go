package ident

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

type fakeNode struct {
	links [3]*fakeNode
}

type record struct {
	id     int
	byID   fakeNode
	name   string
	byName fakeNode
}

func TestRoundTrip(t *testing.T) {
	byID := AtOffset[record, fakeNode](unsafe.Offsetof(record{}.byID))
	byName := AtOffset[record, fakeNode](unsafe.Offsetof(record{}.byName))

	r := &record{id: 42, name: "answer"}
	require.Same(t, &r.byID, byID.NodeOf(r))
	require.Same(t, &r.byName, byName.NodeOf(r))
	require.Same(t, r, byID.ObjectOf(&r.byID))
	require.Same(t, r, byName.ObjectOf(&r.byName))
}

func TestZeroValueFirstField(t *testing.T) {
	type headFirst struct {
		node fakeNode
		val  int
	}
	var id ID[headFirst, fakeNode]
	h := &headFirst{val: 7}
	require.Same(t, &h.node, id.NodeOf(h))
	require.Same(t, h, id.ObjectOf(&h.node))
}
