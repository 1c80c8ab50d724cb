package property_test

import (
	"testing"
	"time"

	"github.com/delaneyj/propcore/property"
	"github.com/stretchr/testify/assert"
)

func TestHandleBinding(t *testing.T) {
	sys := property.NewSystem()
	src := property.New(sys, 3)

	var storage int
	h := property.NewHandle(sys, "raw")
	h.SetBinding(property.RawBinding{
		Evaluate: func(value any) {
			*value.(*int) = src.Get() * 2
		},
	})
	assert.True(t, h.IsDirty())

	dependent := property.New(sys, 0)
	dependent.SetBinding(func() int {
		h.Update(&storage)
		return storage + 1
	})
	assert.Equal(t, 7, dependent.Get())
	assert.False(t, h.IsDirty())

	src.Set(4)
	assert.True(t, h.IsDirty())
	assert.Equal(t, 9, dependent.Get())

	// a plain write removes the binding
	storage = 100
	h.SetChanged(&storage)
	assert.False(t, h.HasBinding())
	assert.Equal(t, 101, dependent.Get())

	src.Set(5)
	assert.Equal(t, 101, dependent.Get())
	h.Drop()
}

func TestHandleInterceptSet(t *testing.T) {
	sys := property.NewSystem()
	var storage, written int
	h := property.NewHandle(sys, "")
	h.SetBinding(property.RawBinding{
		Evaluate: func(value any) { *value.(*int) = 1 },
		InterceptSet: func(value any) bool {
			written = *value.(*int)
			return true
		},
	})
	h.Update(&storage)
	assert.Equal(t, 1, storage)

	storage = 42
	h.SetChanged(&storage)
	assert.True(t, h.HasBinding())
	assert.Equal(t, 42, written)
}

func TestHandleInterceptSetBinding(t *testing.T) {
	sys := property.NewSystem()
	var front, back int
	backHandle := property.NewHandle(sys, "back")
	frontHandle := property.NewHandle(sys, "front")

	dropped := false
	frontHandle.SetBinding(property.RawBinding{
		Evaluate: func(value any) {
			backHandle.Update(&back)
			*value.(*int) = back
		},
		InterceptSetBinding: func(b property.BindingRef) bool {
			backHandle.SetBindingRef(b)
			return true
		},
		Drop: func() { dropped = true },
	})

	src := property.New(sys, 10)
	frontHandle.SetBinding(property.RawBinding{
		Evaluate: func(value any) { *value.(*int) = src.Get() },
	})
	// the new binding ended up behind the forwarding one
	assert.True(t, frontHandle.HasBinding())
	assert.True(t, backHandle.HasBinding())
	assert.False(t, dropped)

	frontHandle.Update(&front)
	assert.Equal(t, 10, front)

	src.Set(20)
	assert.True(t, frontHandle.IsDirty())
	frontHandle.Update(&front)
	assert.Equal(t, 20, front)

	frontHandle.Drop()
	assert.True(t, dropped)
	backHandle.Drop()
}

func TestHandleConstant(t *testing.T) {
	sys := property.NewSystem()
	var storage int
	h := property.NewHandle(sys, "")
	h.SetConstant()
	assert.PanicsWithError(t, "Constant property being changed", func() {
		storage = 2
		h.SetChanged(&storage)
	})
}

func TestHandleAnimatedValue(t *testing.T) {
	sys := property.NewSystem()
	sys.UpdateAnimations(1000)

	var storage float64
	h := property.NewHandle(sys, "")
	property.SetAnimatedValueRaw(h, 0.0, 10.0, property.Animation{Duration: time.Second}, property.Lerp[float64])
	h.Update(&storage)
	assert.Equal(t, 0.0, storage)

	sys.UpdateAnimations(1500)
	h.Update(&storage)
	assert.Equal(t, 5.0, storage)

	sys.UpdateAnimations(2000)
	h.Update(&storage)
	assert.Equal(t, 10.0, storage)
	assert.False(t, h.HasBinding())
}

func TestHandleAnimatedBinding(t *testing.T) {
	sys := property.NewSystem()
	sys.UpdateAnimations(1000)

	src := property.New(sys, 10.0)
	var storage float64
	h := property.NewHandle(sys, "")
	property.SetAnimatedBindingRaw(h, func(value *float64) {
		*value = src.Get()
	}, property.Animation{Duration: time.Second}, nil, property.Lerp[float64])
	h.Update(&storage)
	assert.Equal(t, 10.0, storage)

	src.Set(20)
	h.Update(&storage)
	assert.Equal(t, 10.0, storage)

	sys.UpdateAnimations(1500)
	h.Update(&storage)
	assert.Equal(t, 15.0, storage)
}

func TestHandleStateBinding(t *testing.T) {
	sys := property.NewSystem()
	sys.UpdateAnimations(300)

	cond := property.New(sys, int32(0))
	var storage property.StateInfo
	h := property.NewHandle(sys, "")
	property.SetStateBindingRaw(h, cond.Get)
	h.Update(&storage)
	assert.Equal(t, property.StateInfo{}, storage)

	cond.Set(3)
	sys.UpdateAnimations(800)
	h.Update(&storage)
	assert.Equal(t, property.StateInfo{CurrentState: 3, ChangeTime: 300}, storage)
}
