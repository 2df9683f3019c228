// Package key coordinates ordering key changes across every container
// an object sits in. A key never mutates in place silently: it changes
// through a plan, which relocates the object in each ordered container
// after the new value lands.
package key

// Updater is the relocation half of a container: the object's key
// already changed and the container moves it where it now belongs.
type Updater[O any] interface {
	Rekey(obj *O)
}

// Swapper exchanges the container roles of two objects.
type Swapper[O any] interface {
	SwapNodes(a, b *O)
}

// Container is what a plan fans out to.
type Container[O any] interface {
	Updater[O]
	Swapper[O]
}

// Plan is the fixed broadcast list for one object type. The membership
// is set at construction and never changes, mirroring the fact that an
// object's containers are decided by its layout.
type Plan[O any] struct {
	targets []Container[O]
}

func NewPlan[O any](targets ...Container[O]) *Plan[O] {
	return &Plan[O]{targets: targets}
}

// Field wraps an ordering key so it can only change through a plan.
type Field[K comparable] struct {
	val K
}

// NewField seeds a key before its object joins any container.
func NewField[K comparable](val K) Field[K] {
	return Field[K]{val: val}
}

func (f *Field[K]) Get() K {
	return f.val
}

// Update assigns the new key value and then relocates obj in every
// container of the plan. The value lands first because each container
// reads the key back through its own comparator while relocating.
func Update[K comparable, O any](p *Plan[O], obj *O, field *Field[K], val K) {
	field.val = val
	for _, t := range p.targets {
		t.Rekey(obj)
	}
}

// Swap exchanges the key values of a and b and then exchanges their
// roles in every container of the plan, so both objects end up exactly
// where the other one was.
func Swap[K comparable, O any](p *Plan[O], a, b *O, fa, fb *Field[K]) {
	if a == b {
		return
	}
	fa.val, fb.val = fb.val, fa.val
	for _, t := range p.targets {
		t.SwapNodes(a, b)
	}
}
