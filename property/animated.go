package property

// valueAnimationBinding plays one animation and then removes itself.
type valueAnimationBinding[T comparable] struct {
	noopCallable
	sys  *System
	anim *valueAnimation[T]
}

func (b *valueAnimationBinding[T]) evaluate(value any) bindingResult {
	v, finished := b.anim.compute(b.sys.CurrentTick())
	*value.(*T) = v
	if finished {
		return removeBinding
	}
	b.sys.SetHasActiveAnimations()
	return keepBinding
}

// SetAnimatedValue animates p from its current value to target.
func SetAnimatedValue[T Number](p *Property[T], target T, anim Animation) {
	SetAnimatedValueFunc(p, target, anim, Lerp[T])
}

func SetAnimatedValueFunc[T comparable](p *Property[T], target T, anim Animation, lerp Interpolator[T]) {
	sys := p.handle.sys
	a := newValueAnimation(p.getInternal(), target, anim, sys.currentTickUntracked(), lerp)
	k := sys.allocHolder(&valueAnimationBinding[T]{sys: sys, anim: a}, false)
	p.handle.setBinding(k)
	p.handle.markDirty()
}

type animatedState uint8

const (
	notAnimating animatedState = iota
	shouldStart
	animating
)

// TransitionDetail picks the animation and its start time each time the
// underlying binding changes. ok false keeps the previous animation.
type TransitionDetail func() (anim Animation, start Instant, ok bool)

// animatedBinding wraps a plain binding and animates towards each new value
// it produces, starting from whatever is displayed at that moment.
type animatedBinding[T comparable] struct {
	noopCallable
	sys      *System
	original propertyHandle
	state    animatedState
	anim     *valueAnimation[T]
	details  TransitionDetail
}

func (b *animatedBinding[T]) evaluate(value any) bindingResult {
	v := value.(*T)
	b.original.registerAsDependencyToCurrentBinding()

	switch b.state {
	case animating:
		b.step(v)
	case notAnimating:
		b.original.update(v)
	case shouldStart:
		b.state = animating
		b.anim.from = *v
		b.original.update(&b.anim.to)
		if b.details != nil {
			if anim, start, ok := b.details(); ok {
				b.anim.details = anim
				b.anim.start = start
			}
		}
		b.step(v)
	}
	return keepBinding
}

func (b *animatedBinding[T]) step(v *T) {
	next, finished := b.anim.compute(b.sys.CurrentTick())
	*v = next
	if finished {
		b.state = notAnimating
		b.sys.debug("animation finished", b.original.name)
		return
	}
	b.sys.SetHasActiveAnimations()
}

func (b *animatedBinding[T]) markDirty(bool) {
	if b.state == shouldStart {
		return
	}
	if b.original.isDirty() {
		b.state = shouldStart
		b.anim.reset(b.sys.currentTickUntracked())
	}
}

func (b *animatedBinding[T]) drop() {
	b.original.drop()
}

func setAnimatedBinding[T comparable](p *Property[T], fn func() T, anim Animation, details TransitionDetail, lerp Interpolator[T]) {
	sys := p.handle.sys
	b := &animatedBinding[T]{
		sys:      sys,
		original: propertyHandle{sys: sys, name: p.handle.name},
		details:  details,
	}
	var zero T
	b.anim = newValueAnimation(zero, zero, anim, sys.currentTickUntracked(), lerp)
	b.original.setBinding(sys.allocHolder(&funcBinding[T]{fn: func(T) T { return fn() }}, false))

	p.handle.setBinding(sys.allocHolder(b, false))
	p.handle.markDirty()
}

// SetAnimatedBinding binds p to fn and animates every change of fn's value.
func SetAnimatedBinding[T Number](p *Property[T], fn func() T, anim Animation) {
	setAnimatedBinding(p, fn, anim, nil, Lerp[T])
}

func SetAnimatedBindingFunc[T comparable](p *Property[T], fn func() T, anim Animation, lerp Interpolator[T]) {
	setAnimatedBinding(p, fn, anim, nil, lerp)
}

// SetAnimatedBindingForTransition is SetAnimatedBinding where every change may
// use a different animation, as chosen by details.
func SetAnimatedBindingForTransition[T Number](p *Property[T], fn func() T, details TransitionDetail) {
	setAnimatedBinding(p, fn, Animation{}, details, Lerp[T])
}

func SetAnimatedBindingForTransitionFunc[T comparable](p *Property[T], fn func() T, details TransitionDetail, lerp Interpolator[T]) {
	setAnimatedBinding(p, fn, Animation{}, details, lerp)
}
