package property

// StateInfo is the value of a state machine property: the active state, the
// one before it, and when the switch happened.
type StateInfo struct {
	CurrentState  int32
	PreviousState int32
	ChangeTime    Instant
}

type stateBinding struct {
	noopCallable
	sys       *System
	fn        func() int32
	dirtyTime Instant
	hasDirty  bool
}

func (b *stateBinding) evaluate(value any) bindingResult {
	v := value.(*StateInfo)
	next := b.fn()
	ts, had := b.dirtyTime, b.hasDirty
	b.hasDirty = false

	if next != v.CurrentState {
		v.PreviousState = v.CurrentState
		if had {
			v.ChangeTime = ts
		} else {
			v.ChangeTime = b.sys.CurrentTick()
		}
		v.CurrentState = next
	}
	return keepBinding
}

// markDirty remembers when the state was first invalidated, so the change
// time is not delayed until the next read.
func (b *stateBinding) markDirty(bool) {
	if !b.hasDirty {
		b.dirtyTime = b.sys.currentTickUntracked()
		b.hasDirty = true
	}
}

// SetStateBinding drives p from fn, the index of the active state.
func SetStateBinding(p *Property[StateInfo], fn func() int32) {
	sys := p.handle.sys
	p.handle.setBinding(sys.allocHolder(&stateBinding{sys: sys, fn: fn}, false))
}
