package property

// Property is a reactive cell. Reading it inside a binding or tracker records
// a dependency; writing it marks every dependent dirty, and dependents
// recompute lazily on their next read.
type Property[T comparable] struct {
	handle propertyHandle
	value  T
}

func New[T comparable](sys *System, value T) *Property[T] {
	return NewNamed(sys, value, "")
}

// NewNamed gives the property a name that shows up in panics and debug logs.
func NewNamed[T comparable](sys *System, value T, name string) *Property[T] {
	return &Property[T]{
		handle: propertyHandle{sys: sys, name: name},
		value:  value,
	}
}

func (p *Property[T]) Name() string {
	return p.handle.name
}

func (p *Property[T]) System() *System {
	return p.handle.sys
}

// Get returns the current value, evaluating a dirty binding first, and
// registers the property as a dependency of whatever is evaluating.
func (p *Property[T]) Get() T {
	p.handle.update(&p.value)
	p.handle.registerAsDependencyToCurrentBinding()
	return p.getInternal()
}

// GetUntracked is Get without dependency registration.
func (p *Property[T]) GetUntracked() T {
	p.handle.update(&p.value)
	return p.getInternal()
}

func (p *Property[T]) getInternal() T {
	var v T
	p.handle.access(func(*holder) {
		v = p.value
	})
	return v
}

// Set replaces the value and removes the binding unless the binding takes
// over the write (two way links do). Dependents are only marked dirty if the
// value actually changed.
func (p *Property[T]) Set(value T) {
	intercepted := false
	p.handle.access(func(b *holder) {
		if b != nil {
			intercepted = b.callable.interceptSet(&value)
		}
	})
	if !intercepted {
		p.handle.removeBinding()
	}

	changed := false
	p.handle.access(func(*holder) {
		if p.value != value {
			p.value = value
			changed = true
		}
	})
	if changed {
		p.handle.markDirty()
	}
}

// SetBinding replaces the value with fn. Nothing runs until the next Get.
func (p *Property[T]) SetBinding(fn func() T) {
	p.SetBindingWithOld(func(T) T { return fn() })
}

// SetBindingWithOld is SetBinding for bindings that want the previous value.
func (p *Property[T]) SetBindingWithOld(fn func(old T) T) {
	k := p.handle.sys.allocHolder(&funcBinding[T]{fn: fn}, false)
	p.handle.setBinding(k)
	p.handle.markDirty()
}

func (p *Property[T]) HasBinding() bool {
	return p.handle.hasBinding()
}

// IsDirty reports whether the binding needs to be evaluated again.
func (p *Property[T]) IsDirty() bool {
	return p.handle.isDirty()
}

// MarkDirty notifies dependents as if the value changed.
func (p *Property[T]) MarkDirty() {
	p.handle.markDirty()
}

// SetConstant promises the value never changes again. Dependencies are no
// longer recorded, and any later write panics with ErrConstantChanged.
func (p *Property[T]) SetConstant() {
	p.handle.setConstant()
}

// Drop releases the property's binding and dependency bookkeeping. Bindings
// that read the property are not notified of later changes, since there are
// none. Using a dropped property panics.
func (p *Property[T]) Drop() {
	p.handle.drop()
}
