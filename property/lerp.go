package property

import "reflect"

//go:generate go run ../cmd/codegen lerp --out lerp_gen.go

// Interpolator returns the value at t between from and to. t is eased
// progress, usually in [0, 1] but elastic curves overshoot.
type Interpolator[T any] func(from, to T, t float32) T

type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// lerpNumber serves named number types the generated switch does not know,
// by their underlying kind.
func lerpNumber[T Number](from, to T, t float32) T {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int:
		return T(lerpInt(int(from), int(to), t))
	case reflect.Int8:
		return T(lerpInt8(int8(from), int8(to), t))
	case reflect.Int16:
		return T(lerpInt16(int16(from), int16(to), t))
	case reflect.Int32:
		return T(lerpInt32(int32(from), int32(to), t))
	case reflect.Int64:
		return T(lerpInt64(int64(from), int64(to), t))
	case reflect.Uint:
		return T(lerpUint(uint(from), uint(to), t))
	case reflect.Uint8:
		return T(lerpUint8(uint8(from), uint8(to), t))
	case reflect.Uint16:
		return T(lerpUint16(uint16(from), uint16(to), t))
	case reflect.Uint32:
		return T(lerpUint32(uint32(from), uint32(to), t))
	case reflect.Uint64:
		return T(lerpUint64(uint64(from), uint64(to), t))
	case reflect.Float32:
		return T(lerpFloat32(float32(from), float32(to), t))
	default:
		return T(lerpFloat64(float64(from), float64(to), t))
	}
}

// Color is 8 bit RGBA, interpolated per channel.
type Color struct {
	R, G, B, A uint8
}

func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

func (c Color) Interpolate(to Color, t float32) Color {
	return Color{
		R: lerpUint8(c.R, to.R, t),
		G: lerpUint8(c.G, to.G, t),
		B: lerpUint8(c.B, to.B, t),
		A: lerpUint8(c.A, to.A, t),
	}
}
