// Package ident maps between caller objects and the link nodes embedded
// inside them. A mapping is one field offset, so both directions run in
// constant time without any lookup table.
package ident

import "unsafe"

// ID converts between *O and the *N link field embedded in O at a fixed
// offset. The zero value maps an object whose node is its first field.
type ID[O any, N any] struct {
	offset uintptr
}

// AtOffset builds the mapping for the node field located at offset bytes
// from the start of O. Callers obtain the offset with unsafe.Offsetof on
// the embedded field.
func AtOffset[O any, N any](offset uintptr) ID[O, N] {
	return ID[O, N]{offset: offset}
}

// NodeOf returns the link field embedded in obj.
func (id ID[O, N]) NodeOf(obj *O) *N {
	return (*N)(unsafe.Add(unsafe.Pointer(obj), id.offset))
}

// ObjectOf returns the object enclosing node. The node must actually be
// the field this mapping was built for.
func (id ID[O, N]) ObjectOf(node *N) *O {
	return (*O)(unsafe.Add(unsafe.Pointer(node), -int(id.offset)))
}
