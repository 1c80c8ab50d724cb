package dynprop_test

import (
	"testing"
	"time"

	"github.com/delaneyj/propcore/dynprop"
	"github.com/delaneyj/propcore/easing"
	"github.com/delaneyj/propcore/property"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const button = `
properties:
  width: 100
  height: 40.5
  label: Click me
  enabled: true
  tint: "#336699"
  spare: ~
animations:
  width:
    duration: 250ms
    easing: ease-in-out
constants: [label]
`

func TestDecode(t *testing.T) {
	sys := property.NewSystem()
	_, err := dynprop.Decode(sys, []byte(button+"links:\n  - [width, min_width]\n"))
	// min_width is not declared
	assert.ErrorIs(t, err, dynprop.ErrUnknownProperty)

	in, err := dynprop.Decode(sys, []byte(button))
	require.NoError(t, err)

	assert.Equal(t, []string{"enabled", "height", "label", "spare", "tint", "width"}, in.Names())
	assert.Equal(t, dynprop.Number(100), in.MustGet("width"))
	assert.Equal(t, dynprop.Number(40.5), in.MustGet("height"))
	assert.Equal(t, dynprop.String("Click me"), in.MustGet("label"))
	assert.Equal(t, dynprop.Bool(true), in.MustGet("enabled"))
	assert.Equal(t, dynprop.ColorValue(property.RGBA(0x33, 0x66, 0x99, 0xff)), in.MustGet("tint"))
	assert.Equal(t, dynprop.Value{}, in.MustGet("spare"))

	assert.ErrorIs(t, in.Set("label", dynprop.String("other")), dynprop.ErrConstant)
	assert.ErrorIs(t, in.Bind("label", func() dynprop.Value { return dynprop.String("x") }, dynprop.BindingAnimation{}), dynprop.ErrConstant)

	// the default animation applies to plain writes
	sys.UpdateAnimations(1000)
	require.NoError(t, in.Set("width", dynprop.Number(200)))
	bound, err := in.HasBinding("width")
	require.NoError(t, err)
	assert.True(t, bound)
	sys.UpdateAnimations(1250)
	assert.Equal(t, dynprop.Number(200), in.MustGet("width"))
}

func TestDecodeLinks(t *testing.T) {
	in, err := dynprop.Decode(property.NewSystem(), []byte(`
properties:
  a: 1
  b: 2
links:
  - [a, b]
`))
	require.NoError(t, err)
	assert.Equal(t, dynprop.Number(2), in.MustGet("a"))
	require.NoError(t, in.Set("b", dynprop.Number(5)))
	assert.Equal(t, dynprop.Number(5), in.MustGet("a"))
}

func TestDecodeErrors(t *testing.T) {
	sys := property.NewSystem()
	base := sys.Stats()
	for name, src := range map[string]string{
		"not yaml":      "properties: [",
		"not a mapping": "properties: [1, 2]",
		"nested":        "properties:\n  a: {b: 1}",
		"bad duration":  "properties:\n  a: 1\nanimations:\n  a: {duration: soon}",
		"bad link":      "properties:\n  a: 1\nlinks:\n  - [a]",
		"kind mismatch": "properties:\n  a: 1\n  b: x\nlinks:\n  - [a, b]",
	} {
		_, err := dynprop.Decode(sys, []byte(src))
		assert.Error(t, err, name)
	}
	assert.Equal(t, base, sys.Stats())
}

func TestDecodeConstantLinked(t *testing.T) {
	sys := property.NewSystem()
	base := sys.Stats()
	_, err := dynprop.Decode(sys, []byte(`
properties: {a: 1, b: 2}
links:
  - [a, b]
constants: [a]
`))
	assert.ErrorIs(t, err, dynprop.ErrBound)
	assert.Equal(t, base, sys.Stats())
}

func TestAnimationSpec(t *testing.T) {
	anim, err := dynprop.AnimationSpec{
		Duration:  "2s",
		Delay:     "100ms",
		LoopCount: -1,
		Easing:    "ease-out-bounce",
		Direction: "alternate",
	}.Animation()
	require.NoError(t, err)
	assert.Equal(t, property.Animation{
		Duration:  2 * time.Second,
		Delay:     100 * time.Millisecond,
		LoopCount: -1,
		Easing:    easing.EaseOutBounce,
		Direction: property.DirectionAlternate,
	}, anim)

	_, err = dynprop.AnimationSpec{Easing: "wobbly"}.Animation()
	assert.Error(t, err)
}
