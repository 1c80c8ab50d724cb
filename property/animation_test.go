package property_test

import (
	"testing"
	"time"

	"github.com/delaneyj/propcore/easing"
	"github.com/delaneyj/propcore/property"
	"github.com/stretchr/testify/assert"
)

const duration = 10 * time.Second

func ms(d time.Duration) property.Instant {
	return property.InstantOf(d)
}

func TestAnimatedValue(t *testing.T) {
	sys := property.NewSystem()
	sys.UpdateAnimations(1000)
	start := property.Instant(1000)

	wtf := property.NewNamed(sys, 100.0, "width")
	widthTimesTwo := property.New(sys, 0.0)
	widthTimesTwo.SetBinding(func() float64 { return wtf.Get() * 2 })
	assert.Equal(t, 200.0, widthTimesTwo.Get())

	property.SetAnimatedValue(wtf, 200.0, property.Animation{Duration: duration})
	assert.Equal(t, 100.0, wtf.Get())
	assert.Equal(t, 200.0, widthTimesTwo.Get())
	assert.True(t, sys.HasActiveAnimations())

	sys.UpdateAnimations(start + ms(duration/2))
	assert.Equal(t, 150.0, wtf.Get())
	assert.Equal(t, 300.0, widthTimesTwo.Get())

	sys.UpdateAnimations(start + ms(duration))
	assert.Equal(t, 200.0, wtf.Get())
	assert.Equal(t, 400.0, widthTimesTwo.Get())
	// the animation removed itself
	assert.False(t, wtf.HasBinding())
	assert.False(t, sys.HasActiveAnimations())

	sys.UpdateAnimations(start + ms(2*duration))
	assert.Equal(t, 200.0, wtf.Get())
}

func TestAnimatedValueLoop(t *testing.T) {
	sys := property.NewSystem()
	sys.UpdateAnimations(1000)
	start := property.Instant(1000)

	p := property.New(sys, 100.0)
	property.SetAnimatedValue(p, 200.0, property.Animation{Duration: duration, LoopCount: 2})
	assert.Equal(t, 100.0, p.Get())

	for i := range 3 {
		iterStart := start + ms(time.Duration(i)*duration)
		sys.UpdateAnimations(iterStart)
		assert.Equal(t, 100.0, p.Get(), "iteration %d start", i)
		sys.UpdateAnimations(iterStart + ms(duration/2))
		assert.Equal(t, 150.0, p.Get(), "iteration %d middle", i)
	}

	sys.UpdateAnimations(start + ms(3*duration))
	assert.Equal(t, 200.0, p.Get())
	assert.False(t, p.HasBinding())
}

func TestAnimatedValueOvershoot(t *testing.T) {
	sys := property.NewSystem()
	sys.UpdateAnimations(1000)
	start := property.Instant(1000)

	p := property.New(sys, 100.0)
	property.SetAnimatedValue(p, 200.0, property.Animation{Duration: duration, LoopCount: 2})
	assert.Equal(t, 100.0, p.Get())

	// jumping straight into the third pass skips the first two
	sys.UpdateAnimations(start + ms(duration*5/2))
	assert.Equal(t, 150.0, p.Get())
	assert.True(t, p.HasBinding())

	sys.UpdateAnimations(start + ms(duration*3))
	assert.Equal(t, 200.0, p.Get())
	assert.False(t, p.HasBinding())
}

func TestAnimatedValueDelay(t *testing.T) {
	sys := property.NewSystem()
	sys.UpdateAnimations(1000)
	start := property.Instant(1000)
	delay := 800 * time.Millisecond

	p := property.New(sys, 100.0)
	property.SetAnimatedValue(p, 200.0, property.Animation{Duration: duration, Delay: delay})
	assert.Equal(t, 100.0, p.Get())

	sys.UpdateAnimations(start + ms(delay/2))
	assert.Equal(t, 100.0, p.Get())

	sys.UpdateAnimations(start + ms(delay))
	assert.Equal(t, 100.0, p.Get())

	sys.UpdateAnimations(start + ms(delay+duration/2))
	assert.Equal(t, 150.0, p.Get())

	sys.UpdateAnimations(start + ms(delay+duration))
	assert.Equal(t, 200.0, p.Get())
	assert.False(t, p.HasBinding())
}

func TestAnimatedValueZeroDuration(t *testing.T) {
	sys := property.NewSystem()
	p := property.New(sys, 1)
	property.SetAnimatedValue(p, 5, property.Animation{})
	assert.Equal(t, 5, p.Get())
	assert.False(t, p.HasBinding())
	assert.False(t, sys.HasActiveAnimations())
}

func TestAnimatedValueDirection(t *testing.T) {
	sys := property.NewSystem()
	sys.UpdateAnimations(1000)
	start := property.Instant(1000)

	p := property.New(sys, 0.0)
	property.SetAnimatedValue(p, 100.0, property.Animation{
		Duration:  duration,
		LoopCount: 1,
		Direction: property.DirectionAlternate,
	})
	assert.Equal(t, 0.0, p.Get())

	sys.UpdateAnimations(start + ms(duration/4))
	assert.Equal(t, 25.0, p.Get())

	// second pass runs backwards
	sys.UpdateAnimations(start + ms(duration+duration/4))
	assert.Equal(t, 75.0, p.Get())

	sys.UpdateAnimations(start + ms(2*duration))
	assert.Equal(t, 0.0, p.Get())
	assert.False(t, p.HasBinding())

	r := property.New(sys, 0.0)
	property.SetAnimatedValue(r, 100.0, property.Animation{
		Duration:  duration,
		Direction: property.DirectionReverse,
	})
	assert.Equal(t, 100.0, r.Get())
}

func TestAnimatedValueEasing(t *testing.T) {
	sys := property.NewSystem()
	sys.UpdateAnimations(1000)
	start := property.Instant(1000)

	p := property.New(sys, float32(0))
	property.SetAnimatedValue(p, 100, property.Animation{Duration: duration, Easing: easing.EaseIn})
	sys.UpdateAnimations(start + ms(duration/2))
	// ease-in lags behind linear progress
	assert.Less(t, p.Get(), float32(50))
	assert.Greater(t, p.Get(), float32(0))
}

func TestAnimatedBinding(t *testing.T) {
	sys := property.NewSystem()
	sys.UpdateAnimations(1000)
	start := property.Instant(1000)

	src := property.New(sys, 100.0)
	p := property.New(sys, 0.0)
	property.SetAnimatedBinding(p, src.Get, property.Animation{Duration: duration})
	// the first value is not animated
	assert.Equal(t, 100.0, p.Get())

	src.Set(200)
	assert.Equal(t, 100.0, p.Get())

	sys.UpdateAnimations(start + ms(duration/2))
	assert.Equal(t, 150.0, p.Get())
	assert.True(t, sys.HasActiveAnimations())

	sys.UpdateAnimations(start + ms(duration))
	assert.Equal(t, 200.0, p.Get())
	// the binding stays to animate the next change
	assert.True(t, p.HasBinding())
	assert.False(t, sys.HasActiveAnimations())

	src.Set(300)
	assert.Equal(t, 200.0, p.Get())
	sys.UpdateAnimations(start + ms(duration+duration/2))
	assert.Equal(t, 250.0, p.Get())
}

func TestAnimatedBindingLoopRestart(t *testing.T) {
	sys := property.NewSystem()
	sys.UpdateAnimations(1000)
	start := property.Instant(1000)

	src := property.New(sys, 100.0)
	p := property.New(sys, 0.0)
	property.SetAnimatedBinding(p, src.Get, property.Animation{Duration: duration, LoopCount: 1})
	assert.Equal(t, 100.0, p.Get())

	src.Set(200)
	assert.Equal(t, 100.0, p.Get())

	sys.UpdateAnimations(start + ms(duration/2))
	assert.Equal(t, 150.0, p.Get())
	sys.UpdateAnimations(start + ms(duration))
	assert.Equal(t, 100.0, p.Get())
	sys.UpdateAnimations(start + ms(duration+duration/2))
	assert.Equal(t, 150.0, p.Get())
	sys.UpdateAnimations(start + ms(2*duration))
	assert.Equal(t, 200.0, p.Get())
	sys.UpdateAnimations(start + ms(2*duration+duration/2))
	assert.Equal(t, 200.0, p.Get())

	// a new change animates from what is displayed
	restart := start + ms(2*duration+duration/2)
	src.Set(300)
	assert.Equal(t, 200.0, p.Get())
	sys.UpdateAnimations(restart + ms(duration/2))
	assert.Equal(t, 250.0, p.Get())
}

func TestAnimatedBindingDependent(t *testing.T) {
	sys := property.NewSystem()
	sys.UpdateAnimations(1000)
	start := property.Instant(1000)

	src := property.New(sys, 100.0)
	p := property.New(sys, 0.0)
	property.SetAnimatedBinding(p, func() float64 { return src.Get() * 2 }, property.Animation{Duration: duration})
	dependent := property.New(sys, 0.0)
	dependent.SetBinding(func() float64 { return p.Get() + 1 })
	assert.Equal(t, 201.0, dependent.Get())

	src.Set(150)
	assert.True(t, dependent.IsDirty())
	assert.Equal(t, 201.0, dependent.Get())

	sys.UpdateAnimations(start + ms(duration/2))
	assert.Equal(t, 251.0, dependent.Get())
	sys.UpdateAnimations(start + ms(duration))
	assert.Equal(t, 301.0, dependent.Get())
}

func TestAnimatedBindingForTransition(t *testing.T) {
	sys := property.NewSystem()
	sys.UpdateAnimations(1000)
	start := property.Instant(1000)

	calls := 0
	src := property.New(sys, 100.0)
	p := property.New(sys, 0.0)
	property.SetAnimatedBindingForTransition(p, src.Get, func() (property.Animation, property.Instant, bool) {
		calls++
		return property.Animation{Duration: duration}, start, true
	})
	assert.Equal(t, 100.0, p.Get())
	assert.Equal(t, 0, calls)

	sys.UpdateAnimations(start + ms(duration/2))
	src.Set(200)
	// the animation counts from the start handed out by the transition
	assert.Equal(t, 150.0, p.Get())
	assert.Equal(t, 1, calls)

	sys.UpdateAnimations(start + ms(duration))
	assert.Equal(t, 200.0, p.Get())
	assert.Equal(t, 1, calls)
}

func TestAnimatedBindingForTransitionWithoutDetails(t *testing.T) {
	sys := property.NewSystem()
	sys.UpdateAnimations(1000)

	src := property.New(sys, 100.0)
	p := property.New(sys, 0.0)
	property.SetAnimatedBindingForTransition(p, src.Get, func() (property.Animation, property.Instant, bool) {
		return property.Animation{}, 0, false
	})
	assert.Equal(t, 100.0, p.Get())

	src.Set(200)
	assert.Equal(t, 200.0, p.Get())
	assert.False(t, sys.HasActiveAnimations())
}

func TestAnimatedBindingColor(t *testing.T) {
	sys := property.NewSystem()
	sys.UpdateAnimations(1000)
	start := property.Instant(1000)

	src := property.New(sys, property.RGBA(0, 0, 0, 255))
	c := property.New(sys, property.Color{})
	property.SetAnimatedBindingFunc(c, src.Get, property.Animation{Duration: duration}, property.Color.Interpolate)
	assert.Equal(t, property.RGBA(0, 0, 0, 255), c.Get())

	src.Set(property.RGBA(200, 100, 50, 255))
	sys.UpdateAnimations(start + ms(duration/2))
	assert.Equal(t, property.RGBA(100, 50, 25, 255), c.Get())
}

func TestUpdateAnimationsSameTick(t *testing.T) {
	sys := property.NewSystem()
	sys.UpdateAnimations(1000)

	p := property.New(sys, 0.0)
	property.SetAnimatedValue(p, 10.0, property.Animation{Duration: duration})
	p.Get()
	assert.True(t, sys.HasActiveAnimations())
	// an unchanged tick leaves the frame request alone
	sys.UpdateAnimations(1000)
	assert.True(t, sys.HasActiveAnimations())
	assert.False(t, p.IsDirty())
}

func TestUpdateAnimationsNow(t *testing.T) {
	now := 4 * time.Second
	sys := property.NewSystem(
		property.WithClock(func() time.Duration { return now }),
		property.WithSlowAnimations(2),
	)
	sys.UpdateAnimationsNow()
	assert.Equal(t, property.Instant(2000), sys.CurrentTick())
}

func TestParseDirection(t *testing.T) {
	for _, d := range []property.Direction{
		property.DirectionNormal,
		property.DirectionReverse,
		property.DirectionAlternate,
		property.DirectionAlternateReverse,
	} {
		parsed, err := property.ParseDirection(d.String())
		assert.NoError(t, err)
		assert.Equal(t, d, parsed)
	}
	_, err := property.ParseDirection("sideways")
	assert.Error(t, err)
}
