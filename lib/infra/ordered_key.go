package infra

// References:
// https://github.com/golang/go/blob/master/src/cmp/cmp.go

type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

type Integer interface {
	Signed | Unsigned
}

type Float interface {
	~float32 | ~float64
}

// OrderedKey is the constraint for key types that support the operators
// < <= >= >.
type OrderedKey interface {
	Integer | Float | ~string
}

// OrderedKeyComparator returns a negative number if i is ordered before
// j, a positive number if i is ordered after j and zero otherwise.
func OrderedKeyComparator[K OrderedKey](i, j K) int64 {
	if i == j {
		return 0
	}
	if i < j {
		return -1
	}
	return 1
}
