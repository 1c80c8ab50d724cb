package property

import "github.com/delaneyj/propcore/internal/slab"

type handleKind uint8

const (
	handlePlain handleKind = iota
	handleBound
	handleConstant
	handleDropped
)

// propertyHandle is the value-less half of a property: either a list of
// dependents, a binding holder (which then owns the dependents), or the
// constant marker.
type propertyHandle struct {
	sys     *System
	kind    handleKind
	list    slab.Key
	binding slab.Key
	locked  bool
	name    string
}

func (h *propertyHandle) lock() {
	if h.locked {
		fail(ErrRecursion, h.name)
	}
	if h.kind == handleDropped {
		fail(ErrDropped, h.name)
	}
	h.locked = true
}

func (h *propertyHandle) holder() *holder {
	if h.kind != handleBound {
		return nil
	}
	b, _ := h.sys.holders.Get(h.binding)
	return b
}

// access runs f with the handle locked. Touching the same handle from inside
// f panics with ErrRecursion.
func (h *propertyHandle) access(f func(b *holder)) {
	h.lock()
	defer func() { h.locked = false }()
	f(h.holder())
}

func (h *propertyHandle) removeBinding() {
	if h.locked {
		fail(ErrRecursion, h.name)
	}
	if h.kind != handleBound {
		return
	}

	k := h.binding
	b := h.holder()
	if b == nil {
		h.kind = handlePlain
		h.binding = slab.Key{}
		return
	}
	if b.constant {
		h.kind = handleConstant
	} else {
		h.kind = handlePlain
		h.list = b.deps
		b.deps = slab.Key{}
	}
	h.binding = slab.Key{}
	h.sys.dropHolder(k)
}

// setBinding installs the holder k, which the handle owns from then on unless
// the current binding intercepts it.
func (h *propertyHandle) setBinding(k slab.Key) {
	intercepted := false
	h.access(func(b *holder) {
		if b != nil {
			intercepted = b.callable.interceptSetBinding(k)
		}
	})
	if intercepted {
		return
	}

	h.removeBinding()
	nb, ok := h.sys.holders.Get(k)
	if !ok {
		return
	}
	if nb.name == "" {
		nb.name = h.name
	}
	switch h.kind {
	case handleConstant:
		nb.constant = true
	case handlePlain:
		nb.deps = h.list
		h.list = slab.Key{}
	}
	h.kind = handleBound
	h.binding = k

	if !nb.constant {
		h.markDirty()
	}
}

// dependencies returns the slot holding this property's dependents, or
// constant when there is none and never will be.
func (h *propertyHandle) dependencies() (slot *slab.Key, constant bool) {
	if h.locked {
		fail(ErrRecursion, h.name)
	}
	switch h.kind {
	case handleBound:
		b := h.holder()
		return &b.deps, b.constant
	case handleConstant:
		return nil, true
	case handleDropped:
		fail(ErrDropped, h.name)
	}
	return &h.list, false
}

func (h *propertyHandle) registerAsDependencyToCurrentBinding() {
	cur := h.sys.current
	if !cur.Valid() {
		return
	}
	slot, constant := h.dependencies()
	if constant {
		return
	}
	h.sys.registerDependency(cur, slot)
}

func (h *propertyHandle) markDirty() {
	slot, constant := h.dependencies()
	if constant {
		fail(ErrConstantChanged, h.name)
	}
	h.sys.markDependenciesDirty(*slot)
}

func (h *propertyHandle) setConstant() {
	slot, constant := h.dependencies()
	if constant {
		return
	}
	h.sys.listDrop(*slot)
	*slot = slab.Key{}
	if b := h.holder(); b != nil {
		b.constant = true
	} else {
		h.kind = handleConstant
	}
	h.sys.debug("property made constant", h.name)
}

// update evaluates a dirty binding into value, a pointer to the storage.
func (h *propertyHandle) update(value any) {
	remove := false
	h.access(func(b *holder) {
		if b != nil && b.dirty {
			remove = h.sys.evaluateHolder(h.binding, value) == removeBinding
		}
	})
	if remove {
		h.removeBinding()
		h.sys.debug("binding finished", h.name)
	}
}

func (h *propertyHandle) isDirty() bool {
	dirty := false
	h.access(func(b *holder) {
		dirty = b != nil && b.dirty
	})
	return dirty
}

func (h *propertyHandle) hasBinding() bool {
	return h.kind == handleBound
}

func (h *propertyHandle) drop() {
	if h.kind == handleDropped {
		return
	}
	h.removeBinding()
	if h.kind == handlePlain {
		h.sys.listDrop(h.list)
		h.list = slab.Key{}
	}
	h.kind = handleDropped
}
