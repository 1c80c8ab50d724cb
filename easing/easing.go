// Package easing maps linear animation progress onto the curves used by
// property animations.
package easing

import (
	"fmt"

	"github.com/chewxy/math32"
)

type Kind uint8

const (
	KindLinear Kind = iota
	KindCubicBezier
	KindEaseInElastic
	KindEaseOutElastic
	KindEaseInOutElastic
	KindEaseInBounce
	KindEaseOutBounce
	KindEaseInOutBounce
)

// Curve is comparable so an animation description can live in a property.
// Params is only meaningful for KindCubicBezier and holds x1, y1, x2, y2.
type Curve struct {
	Kind   Kind
	Params [4]float32
}

var (
	Linear           = Curve{Kind: KindLinear}
	EaseInElastic    = Curve{Kind: KindEaseInElastic}
	EaseOutElastic   = Curve{Kind: KindEaseOutElastic}
	EaseInOutElastic = Curve{Kind: KindEaseInOutElastic}
	EaseInBounce     = Curve{Kind: KindEaseInBounce}
	EaseOutBounce    = Curve{Kind: KindEaseOutBounce}
	EaseInOutBounce  = Curve{Kind: KindEaseInOutBounce}

	// CSS presets
	Ease      = CubicBezier(0.25, 0.1, 0.25, 1)
	EaseIn    = CubicBezier(0.42, 0, 1, 1)
	EaseOut   = CubicBezier(0, 0, 0.58, 1)
	EaseInOut = CubicBezier(0.42, 0, 0.58, 1)
)

func CubicBezier(x1, y1, x2, y2 float32) Curve {
	return Curve{Kind: KindCubicBezier, Params: [4]float32{x1, y1, x2, y2}}
}

func (c Curve) String() string {
	switch c.Kind {
	case KindLinear:
		return "linear"
	case KindCubicBezier:
		p := c.Params
		return fmt.Sprintf("cubic-bezier(%g, %g, %g, %g)", p[0], p[1], p[2], p[3])
	case KindEaseInElastic:
		return "ease-in-elastic"
	case KindEaseOutElastic:
		return "ease-out-elastic"
	case KindEaseInOutElastic:
		return "ease-in-out-elastic"
	case KindEaseInBounce:
		return "ease-in-bounce"
	case KindEaseOutBounce:
		return "ease-out-bounce"
	case KindEaseInOutBounce:
		return "ease-in-out-bounce"
	default:
		return fmt.Sprintf("easing(%d)", c.Kind)
	}
}

// Parse accepts the names produced by String, plus the CSS keywords ease,
// ease-in, ease-out and ease-in-out.
func Parse(s string) (Curve, error) {
	switch s {
	case "", "linear":
		return Linear, nil
	case "ease":
		return Ease, nil
	case "ease-in":
		return EaseIn, nil
	case "ease-out":
		return EaseOut, nil
	case "ease-in-out":
		return EaseInOut, nil
	case "ease-in-elastic":
		return EaseInElastic, nil
	case "ease-out-elastic":
		return EaseOutElastic, nil
	case "ease-in-out-elastic":
		return EaseInOutElastic, nil
	case "ease-in-bounce":
		return EaseInBounce, nil
	case "ease-out-bounce":
		return EaseOutBounce, nil
	case "ease-in-out-bounce":
		return EaseInOutBounce, nil
	}

	var p [4]float32
	if _, err := fmt.Sscanf(s, "cubic-bezier(%g, %g, %g, %g)", &p[0], &p[1], &p[2], &p[3]); err != nil {
		return Linear, fmt.Errorf("unknown easing curve %q: %w", s, err)
	}
	return CubicBezier(p[0], p[1], p[2], p[3]), nil
}

// Eval maps progress in [0, 1] to eased progress. Elastic curves overshoot
// the range on purpose.
func (c Curve) Eval(v float32) float32 {
	switch c.Kind {
	case KindCubicBezier:
		a, b, cc, d := c.Params[0], c.Params[1], c.Params[2], c.Params[3]
		if !inUnit(a) && !inUnit(cc) {
			return v
		}
		seg := bezier{x1: a, y1: b, x2: cc, y2: d}
		return seg.y(seg.solveTForX(v, 0.01))

	case KindEaseInElastic:
		const c4 = 2 * math32.Pi / 3
		if v == 0 || v == 1 {
			return v
		}
		return -math32.Pow(2, 10*v-10) * math32.Sin((v*10-10.75)*c4)

	case KindEaseOutElastic:
		const c4 = 2 * math32.Pi / 3
		if v == 0 || v == 1 {
			return v
		}
		return math32.Pow(2, -10*v)*math32.Sin((v*10-0.75)*c4) + 1

	case KindEaseInOutElastic:
		const c5 = 2 * math32.Pi / 4.5
		switch {
		case v == 0 || v == 1:
			return v
		case v < 0.5:
			return -(math32.Pow(2, 20*v-10) * math32.Sin((20*v-11.125)*c5)) / 2
		default:
			return (math32.Pow(2, -20*v+10)*math32.Sin((20*v-11.125)*c5))/2 + 1
		}

	case KindEaseInBounce:
		return 1 - outBounce(1-v)
	case KindEaseOutBounce:
		return outBounce(v)
	case KindEaseInOutBounce:
		if v < 0.5 {
			return (1 - outBounce(1-2*v)) / 2
		}
		return (1 + outBounce(2*v-1)) / 2

	default:
		return v
	}
}

func inUnit(v float32) bool {
	return v >= 0 && v <= 1
}

func outBounce(v float32) float32 {
	const (
		n1 = 7.5625
		d1 = 2.75
	)
	switch {
	case v < 1/d1:
		return n1 * v * v
	case v < 2/d1:
		v -= 1.5 / d1
		return n1*v*v + 0.75
	case v < 2.5/d1:
		v -= 2.25 / d1
		return n1*v*v + 0.9375
	default:
		v -= 2.625 / d1
		return n1*v*v + 0.984375
	}
}
