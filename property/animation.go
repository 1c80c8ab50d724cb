package property

import (
	"fmt"
	"time"

	"github.com/delaneyj/propcore/easing"
)

// Instant is a point on the animation clock, in milliseconds since the
// System started.
type Instant uint64

func InstantOf(d time.Duration) Instant {
	if d < 0 {
		return 0
	}
	return Instant(d / time.Millisecond)
}

func (i Instant) Add(d time.Duration) Instant {
	return i + InstantOf(d)
}

// Since returns the time from earlier to i, or zero if earlier is later.
func (i Instant) Since(earlier Instant) time.Duration {
	if i < earlier {
		return 0
	}
	return time.Duration(i-earlier) * time.Millisecond
}

func (i Instant) String() string {
	return fmt.Sprintf("%dms", uint64(i))
}

type Direction uint8

const (
	DirectionNormal Direction = iota
	DirectionReverse
	DirectionAlternate
	DirectionAlternateReverse
)

func (d Direction) String() string {
	switch d {
	case DirectionReverse:
		return "reverse"
	case DirectionAlternate:
		return "alternate"
	case DirectionAlternateReverse:
		return "alternate-reverse"
	default:
		return "normal"
	}
}

// ParseDirection accepts the CSS animation-direction keywords.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "", "normal":
		return DirectionNormal, nil
	case "reverse":
		return DirectionReverse, nil
	case "alternate":
		return DirectionAlternate, nil
	case "alternate-reverse":
		return DirectionAlternateReverse, nil
	}
	return DirectionNormal, fmt.Errorf("unknown animation direction %q", s)
}

func (d Direction) reversed(iteration int64) bool {
	switch d {
	case DirectionReverse:
		return true
	case DirectionAlternate:
		return iteration%2 == 1
	case DirectionAlternateReverse:
		return iteration%2 == 0
	default:
		return false
	}
}

// Animation describes a transition. Durations are truncated to milliseconds.
// LoopCount is the number of extra passes after the first; negative loops
// forever.
type Animation struct {
	Duration  time.Duration
	Delay     time.Duration
	LoopCount int32
	Easing    easing.Curve
	Direction Direction
}

type animationDriver struct {
	tick   *Property[Instant]
	active bool
}

func (d *animationDriver) init(s *System) {
	d.tick = NewNamed[Instant](s, 0, "")
}

// UpdateAnimations moves the animation clock to tick. Every animated binding
// read since the last update becomes dirty.
func (s *System) UpdateAnimations(tick Instant) {
	if s.driver.tick.GetUntracked() == tick {
		return
	}
	s.driver.active = false
	s.driver.tick.Set(tick)
}

// UpdateAnimationsNow moves the animation clock to the system clock.
func (s *System) UpdateAnimationsNow() {
	s.UpdateAnimations(InstantOf(s.clock() / time.Duration(s.slow)))
}

// CurrentTick returns the animation clock and makes the evaluating binding
// depend on it.
func (s *System) CurrentTick() Instant {
	return s.driver.tick.Get()
}

func (s *System) currentTickUntracked() Instant {
	return s.driver.tick.GetUntracked()
}

// HasActiveAnimations reports whether an animated binding asked for another
// frame since the last UpdateAnimations.
func (s *System) HasActiveAnimations() bool {
	return s.driver.active
}

func (s *System) SetHasActiveAnimations() {
	s.driver.active = true
}

type animPhase uint8

const (
	phaseDelaying animPhase = iota
	phaseAnimating
	phaseDone
)

// valueAnimation interpolates from one value to another against the
// animation clock.
type valueAnimation[T any] struct {
	from, to  T
	details   Animation
	start     Instant
	phase     animPhase
	iteration int64
	lerp      Interpolator[T]
}

func newValueAnimation[T any](from, to T, details Animation, start Instant, lerp Interpolator[T]) *valueAnimation[T] {
	return &valueAnimation[T]{
		from:    from,
		to:      to,
		details: details,
		start:   start,
		lerp:    lerp,
	}
}

func (a *valueAnimation[T]) reset(now Instant) {
	a.phase = phaseDelaying
	a.iteration = 0
	a.start = now
}

// compute returns the value at now and whether the animation has finished.
func (a *valueAnimation[T]) compute(now Instant) (T, bool) {
	for {
		elapsed := now.Since(a.start)
		switch a.phase {
		case phaseDelaying:
			delay := a.details.Delay.Truncate(time.Millisecond)
			if delay > 0 && elapsed < delay {
				if a.details.Direction.reversed(0) {
					return a.to, false
				}
				return a.from, false
			}
			if delay > 0 {
				a.start = a.start.Add(delay)
			}
			a.phase = phaseAnimating

		case phaseAnimating:
			duration := a.details.Duration.Truncate(time.Millisecond)
			if duration <= 0 {
				a.phase = phaseDone
				continue
			}
			if elapsed >= duration {
				// skip whole passes at once so a late frame does not replay them
				a.iteration += int64(elapsed / duration)
				elapsed %= duration
				a.start = Instant(uint64(now) - uint64(elapsed/time.Millisecond))
				if a.details.LoopCount >= 0 && a.iteration > int64(a.details.LoopCount) {
					a.phase = phaseDone
					continue
				}
			}

			progress := float32(elapsed) / float32(duration)
			if a.details.Direction.reversed(a.iteration) {
				progress = 1 - progress
			}
			t := a.details.Easing.Eval(progress)
			return a.lerp(a.from, a.to, t), false

		default:
			last := int64(0)
			if a.details.LoopCount > 0 {
				last = int64(a.details.LoopCount)
			}
			if a.details.Direction.reversed(last) {
				return a.from, true
			}
			return a.to, true
		}
	}
}
