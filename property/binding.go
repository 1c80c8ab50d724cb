package property

import "github.com/delaneyj/propcore/internal/slab"

type bindingResult uint8

const (
	keepBinding bindingResult = iota
	// the value is final; the holder is dropped and the property keeps it
	removeBinding
)

// callable is what a binding holder evaluates. value is always a pointer to
// the property's storage (*T), passed type erased.
type callable interface {
	evaluate(value any) bindingResult
	// markDirty runs during propagation, wasDirty reports the flag before this
	// round set it.
	markDirty(wasDirty bool)
	// interceptSet may swallow a plain Set; returning false removes the binding.
	interceptSet(value any) bool
	// interceptSetBinding may take ownership of a new holder instead of
	// letting it replace this one.
	interceptSetBinding(k slab.Key) bool
	drop()
}

type noopCallable struct{}

func (noopCallable) markDirty(bool)                    {}
func (noopCallable) interceptSet(any) bool             { return false }
func (noopCallable) interceptSetBinding(slab.Key) bool { return false }
func (noopCallable) drop()                             {}

type holder struct {
	callable callable
	// dependents of this binding
	deps slab.Key
	// set once the owning property is constant, deps is unused from then on
	constant bool
	// nodes this binding registered against its sources
	nodes  []slab.Key
	dirty  bool
	twoWay bool
	name   string
}

func (s *System) allocHolder(c callable, twoWay bool) slab.Key {
	return s.holders.Insert(holder{
		callable: c,
		dirty:    true,
		twoWay:   twoWay,
	})
}

// registerDependency records that owner read the source whose dependents live
// in slot.
func (s *System) registerDependency(owner slab.Key, slot *slab.Key) {
	h, ok := s.holders.Get(owner)
	if !ok {
		return
	}
	node := s.nodes.Insert(depNode{owner: owner})
	h.nodes = append(h.nodes, node)
	s.listPushFront(slot, node)
}

func (s *System) clearNodes(h *holder) {
	for _, n := range h.nodes {
		s.nodeUnlink(n)
		s.nodes.Remove(n)
	}
	h.nodes = h.nodes[:0]
}

func (s *System) dropHolder(k slab.Key) {
	h, ok := s.holders.Get(k)
	if !ok {
		return
	}
	s.clearNodes(h)
	s.listDrop(h.deps)
	c := h.callable
	s.holders.Remove(k)
	c.drop()
}

// evaluateHolder re-runs the binding against a fresh read set.
func (s *System) evaluateHolder(k slab.Key, value any) bindingResult {
	h, ok := s.holders.Get(k)
	if !ok {
		return keepBinding
	}
	s.clearNodes(h)

	res := keepBinding
	c := h.callable
	s.withCurrent(k, func() {
		res = c.evaluate(value)
	})

	if h, ok := s.holders.Get(k); ok {
		h.dirty = false
	}
	return res
}

// markDependenciesDirty flags everything downstream of list. Holders that were
// already dirty are not walked again.
func (s *System) markDependenciesDirty(list slab.Key) {
	s.listForEach(list, func(owner slab.Key) {
		h, ok := s.holders.Get(owner)
		if !ok {
			return
		}
		wasDirty := h.dirty
		h.dirty = true
		h.callable.markDirty(wasDirty)

		h, ok = s.holders.Get(owner)
		if !ok {
			return
		}
		if h.constant {
			fail(ErrConstantChanged, h.name)
		}
		if !wasDirty {
			s.markDependenciesDirty(h.deps)
		}
	})
}

// funcBinding is the holder payload behind SetBinding.
type funcBinding[T comparable] struct {
	noopCallable
	fn func(old T) T
}

func (b *funcBinding[T]) evaluate(value any) bindingResult {
	v := value.(*T)
	*v = b.fn(*v)
	return keepBinding
}
