package property

import "github.com/delaneyj/propcore/internal/slab"

// Handle is a property without its value, for callers such as interpreters
// that keep value storage on their side. Every value argument is a pointer to
// that storage, of the same type for the lifetime of the handle.
type Handle struct {
	h propertyHandle
}

// NewHandle initializes a handle without constructing a value.
func NewHandle(sys *System, name string) *Handle {
	return &Handle{h: propertyHandle{sys: sys, name: name}}
}

// RawBinding is a binding described by callbacks. Only Evaluate is required.
type RawBinding struct {
	// Evaluate writes the new value through value.
	Evaluate func(value any)
	// InterceptSet may swallow a write of value, which is a pointer to the
	// incoming value.
	InterceptSet func(value any) bool
	// InterceptSetBinding may take over a binding about to replace this one,
	// for example by handing it to SetBindingRef of another handle.
	InterceptSetBinding func(b BindingRef) bool
	// Drop runs once the binding is discarded.
	Drop func()
}

// BindingRef is an installed-but-unowned binding, as passed to
// InterceptSetBinding.
type BindingRef struct {
	key slab.Key
}

type rawCallable struct {
	b RawBinding
}

func (c *rawCallable) evaluate(value any) bindingResult {
	c.b.Evaluate(value)
	return keepBinding
}

func (c *rawCallable) markDirty(bool) {}

func (c *rawCallable) interceptSet(value any) bool {
	return c.b.InterceptSet != nil && c.b.InterceptSet(value)
}

func (c *rawCallable) interceptSetBinding(k slab.Key) bool {
	return c.b.InterceptSetBinding != nil && c.b.InterceptSetBinding(BindingRef{key: k})
}

func (c *rawCallable) drop() {
	if c.b.Drop != nil {
		c.b.Drop()
	}
}

// Update evaluates a dirty binding into value and registers the handle with
// the evaluating binding.
func (h *Handle) Update(value any) {
	h.h.update(value)
	h.h.registerAsDependencyToCurrentBinding()
}

// SetChanged is called after the caller wrote a new value into its storage.
// The binding gets to intercept the write, else it is removed, and then the
// dependents are marked dirty.
func (h *Handle) SetChanged(value any) {
	intercepted := false
	h.h.access(func(b *holder) {
		if b != nil {
			intercepted = b.callable.interceptSet(value)
		}
	})
	if !intercepted {
		h.h.removeBinding()
	}
	h.h.markDirty()
}

func (h *Handle) SetBinding(b RawBinding) {
	h.SetBindingRef(BindingRef{key: h.h.sys.allocHolder(&rawCallable{b: b}, false)})
}

// SetBindingRef installs a binding obtained from InterceptSetBinding.
func (h *Handle) SetBindingRef(b BindingRef) {
	h.h.setBinding(b.key)
	h.h.markDirty()
}

func (h *Handle) IsDirty() bool {
	return h.h.isDirty()
}

func (h *Handle) MarkDirty() {
	h.h.markDirty()
}

func (h *Handle) SetConstant() {
	h.h.setConstant()
}

func (h *Handle) HasBinding() bool {
	return h.h.hasBinding()
}

func (h *Handle) Drop() {
	h.h.drop()
}

// SetAnimatedValueRaw animates the storage behind h from from to to.
func SetAnimatedValueRaw[T comparable](h *Handle, from, to T, anim Animation, lerp Interpolator[T]) {
	sys := h.h.sys
	a := newValueAnimation(from, to, anim, sys.currentTickUntracked(), lerp)
	h.h.setBinding(sys.allocHolder(&valueAnimationBinding[T]{sys: sys, anim: a}, false))
	h.h.markDirty()
}

// SetAnimatedBindingRaw binds h to fn, animating each change. A non nil
// transition replaces anim per change, as with SetAnimatedBindingForTransition.
func SetAnimatedBindingRaw[T comparable](h *Handle, fn func(value *T), anim Animation, transition TransitionDetail, lerp Interpolator[T]) {
	sys := h.h.sys
	b := &animatedBinding[T]{
		sys:      sys,
		original: propertyHandle{sys: sys, name: h.h.name},
		details:  transition,
	}
	var zero T
	b.anim = newValueAnimation(zero, zero, anim, sys.currentTickUntracked(), lerp)
	b.original.setBinding(sys.allocHolder(&rawCallable{b: RawBinding{
		Evaluate: func(value any) { fn(value.(*T)) },
	}}, false))

	h.h.setBinding(sys.allocHolder(b, false))
	h.h.markDirty()
}

// SetStateBindingRaw is SetStateBinding for storage of type StateInfo.
func SetStateBindingRaw(h *Handle, fn func() int32) {
	sys := h.h.sys
	h.h.setBinding(sys.allocHolder(&stateBinding{sys: sys, fn: fn}, false))
}
