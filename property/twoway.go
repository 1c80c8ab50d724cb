package property

import "github.com/delaneyj/propcore/internal/slab"

// sharedProperty is the cell behind a two way link, released when the last
// linked binding goes away.
type sharedProperty[T comparable] struct {
	prop *Property[T]
	refs int
}

func (c *sharedProperty[T]) retain() *sharedProperty[T] {
	c.refs++
	return c
}

func (c *sharedProperty[T]) release() {
	c.refs--
	if c.refs == 0 {
		c.prop.Drop()
	}
}

type twoWayBinding[T comparable] struct {
	noopCallable
	common *sharedProperty[T]
}

func (b *twoWayBinding[T]) evaluate(value any) bindingResult {
	*value.(*T) = b.common.prop.Get()
	return keepBinding
}

func (b *twoWayBinding[T]) interceptSet(value any) bool {
	b.common.prop.Set(*value.(*T))
	return true
}

func (b *twoWayBinding[T]) interceptSetBinding(k slab.Key) bool {
	b.common.prop.handle.setBinding(k)
	return true
}

func (b *twoWayBinding[T]) drop() {
	b.common.release()
}

func commonOf[T comparable](h *propertyHandle) *sharedProperty[T] {
	b := h.holder()
	if b == nil || !b.twoWay {
		return nil
	}
	if tw, ok := b.callable.(*twoWayBinding[T]); ok {
		return tw.common
	}
	return nil
}

// stealBinding detaches the binding of h without dropping it. The dependents
// stay with the holder unless keepDependents moves them back onto h.
func stealBinding(h *propertyHandle, keepDependents bool) slab.Key {
	if h.locked {
		fail(ErrRecursion, h.name)
	}
	if h.kind != handleBound {
		return slab.Key{}
	}
	k := h.binding
	h.binding = slab.Key{}
	h.kind = handlePlain
	h.list = slab.Key{}
	if b, ok := h.sys.holders.Get(k); ok && keepDependents {
		if b.constant {
			h.kind = handleConstant
		} else {
			h.list = b.deps
			b.deps = slab.Key{}
		}
	}
	return k
}

func (c *sharedProperty[T]) link(p *Property[T]) {
	sys := p.handle.sys
	p.handle.setBinding(sys.allocHolder(&twoWayBinding[T]{common: c.retain()}, true))
}

// LinkTwoWay makes p1 and p2 share one value. The shared value starts as p2's,
// and a binding p2 had keeps driving it.
func LinkTwoWay[T comparable](p1, p2 *Property[T]) {
	sys := p1.handle.sys
	value := p2.getInternal()

	if c := commonOf[T](&p1.handle); c != nil {
		c.link(p2)
		p2.Set(value)
		return
	}
	if c := commonOf[T](&p2.handle); c != nil {
		c.link(p1)
		return
	}

	name := ""
	if p1.handle.name != "" || p2.handle.name != "" {
		name = "<" + p1.handle.name + "<=>" + p2.handle.name + ">"
	}
	common := &sharedProperty[T]{prop: NewNamed(sys, value, name)}
	if k := stealBinding(&p2.handle, false); k.Valid() {
		common.prop.handle.kind = handleBound
		common.prop.handle.binding = k
	}
	common.link(p1)
	common.link(p2)
	sys.debug("two way link", name)
}

// LinkTwoWayWithMap links p2 to a part of p1. Unlike LinkTwoWay the value of
// p1 is kept. mapTo extracts p2's value, mapFrom writes it back into p1's.
func LinkTwoWayWithMap[T, T2 comparable](p1 *Property[T], p2 *Property[T2], mapTo func(T) T2, mapFrom func(*T, T2)) {
	sys := p1.handle.sys
	common := commonOf[T](&p1.handle)
	if common == nil {
		name := ""
		if p1.handle.name != "" {
			name = p1.handle.name + "*"
		}
		common = &sharedProperty[T]{prop: NewNamed(sys, p1.getInternal(), name)}
		if k := stealBinding(&p1.handle, false); k.Valid() {
			common.prop.handle.kind = handleBound
			common.prop.handle.binding = k
		}
		common.link(p1)
	}

	old := stealBinding(&p2.handle, true)
	p2.handle.setBinding(sys.allocHolder(&mappedTwoWayBinding[T, T2]{
		common:  common.retain(),
		mapTo:   mapTo,
		mapFrom: mapFrom,
	}, false))
	if old.Valid() {
		p2.handle.setBinding(old)
	}
}

// mappedTwoWayBinding sits on the T2 side of LinkTwoWayWithMap.
type mappedTwoWayBinding[T, T2 comparable] struct {
	noopCallable
	common  *sharedProperty[T]
	mapTo   func(T) T2
	mapFrom func(*T, T2)
}

func (b *mappedTwoWayBinding[T, T2]) evaluate(value any) bindingResult {
	*value.(*T2) = b.mapTo(b.common.prop.Get())
	return keepBinding
}

func (b *mappedTwoWayBinding[T, T2]) interceptSet(value any) bool {
	v := b.common.prop.Get()
	b.mapFrom(&v, *value.(*T2))
	b.common.prop.Set(v)
	return true
}

func (b *mappedTwoWayBinding[T, T2]) interceptSetBinding(k slab.Key) bool {
	sys := b.common.prop.handle.sys
	mapper := &bindingMapper[T, T2]{sys: sys, inner: k, mapTo: b.mapTo, mapFrom: b.mapFrom}
	b.common.prop.handle.setBinding(sys.allocHolder(mapper, false))
	return true
}

func (b *mappedTwoWayBinding[T, T2]) drop() {
	b.common.release()
}

// bindingMapper runs a binding written for T2 against the shared T.
type bindingMapper[T, T2 comparable] struct {
	noopCallable
	sys     *System
	inner   slab.Key
	mapTo   func(T) T2
	mapFrom func(*T, T2)
}

func (b *bindingMapper[T, T2]) evaluate(value any) bindingResult {
	inner, ok := b.sys.holders.Get(b.inner)
	if !ok {
		return keepBinding
	}
	v := value.(*T)
	sub := b.mapTo(*v)
	inner.callable.evaluate(&sub)
	b.mapFrom(v, sub)
	return keepBinding
}

func (b *bindingMapper[T, T2]) interceptSet(value any) bool {
	inner, ok := b.sys.holders.Get(b.inner)
	if !ok {
		return false
	}
	sub := b.mapTo(*value.(*T))
	return inner.callable.interceptSet(&sub)
}

func (b *bindingMapper[T, T2]) drop() {
	b.sys.dropHolder(b.inner)
}
