// Package dynprop exposes properties by name with dynamically typed values,
// the way an interpreter or a live preview drives a component it has no
// generated code for.
package dynprop

import (
	"fmt"
	"strconv"

	"github.com/delaneyj/propcore/property"
)

type Kind uint8

const (
	KindVoid Kind = iota
	KindNumber
	KindString
	KindBool
	KindColor
)

func (k Kind) String() string {
	switch k {
	case KindVoid:
		return "void"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindColor:
		return "color"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a tagged union small enough to be compared with ==, so it can be
// the value of a property.Property.
type Value struct {
	kind  Kind
	num   float64
	str   string
	b     bool
	color property.Color
}

func Number(f float64) Value           { return Value{kind: KindNumber, num: f} }
func String(s string) Value            { return Value{kind: KindString, str: s} }
func Bool(b bool) Value                { return Value{kind: KindBool, b: b} }
func ColorValue(c property.Color) Value { return Value{kind: KindColor, color: c} }

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) Number() (float64, bool) {
	return v.num, v.kind == KindNumber
}

func (v Value) Text() (string, bool) {
	return v.str, v.kind == KindString
}

func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == KindBool
}

func (v Value) Color() (property.Color, bool) {
	return v.color, v.kind == KindColor
}

func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.str)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindColor:
		c := v.color
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	default:
		return "void"
	}
}

// Interpolate blends numbers and colors. Other kinds, and values of different
// kinds, switch to the target once the animation starts.
func (v Value) Interpolate(to Value, t float32) Value {
	if v.kind != to.kind {
		return to
	}
	switch v.kind {
	case KindNumber:
		return Number(property.Lerp(v.num, to.num, t))
	case KindColor:
		return ColorValue(v.color.Interpolate(to.color, t))
	default:
		return to
	}
}

// ParseColor accepts #rgb, #rrggbb and #rrggbbaa.
func ParseColor(s string) (property.Color, error) {
	if len(s) == 0 || s[0] != '#' {
		return property.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return property.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return property.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return property.RGBA(uint8(n>>24), uint8(n>>16), uint8(n>>8), uint8(n)), nil
}
