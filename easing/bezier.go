package easing

import "github.com/chewxy/math32"

const epsilon = 1.1920929e-07

// bezier is a cubic segment from (0,0) to (1,1), monotonic in x when both
// control x values are inside [0, 1].
type bezier struct {
	x1, y1, x2, y2 float32
}

func cubic(p1, p2, t float32) float32 {
	t2 := t * t
	oneT := 1 - t
	return p1*3*oneT*oneT*t + p2*3*oneT*t2 + t2*t
}

func (b bezier) x(t float32) float32 { return cubic(b.x1, b.x2, t) }
func (b bezier) y(t float32) float32 { return cubic(b.y1, b.y2, t) }

func (b bezier) dx(t float32) float32 {
	t2 := t * t
	c1 := 9*t2 - 12*t + 3
	c2 := -9*t2 + 6*t
	c3 := 3 * t2
	return b.x1*c1 + b.x2*c2 + c3
}

// solveTForX finds t with x(t) ~= x. Newton's method first, falling back to
// bisection when the derivative flattens out.
func (b bezier) solveTForX(x, tolerance float32) float32 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}

	t := x
	for i := 0; i < 8; i++ {
		x2 := b.x(t)
		if math32.Abs(x2-x) <= tolerance {
			return t
		}
		d := b.dx(t)
		if d <= epsilon {
			break
		}
		t -= (x2 - x) / d
	}

	lo, hi := float32(0), float32(1)
	t = 0.5
	for lo < hi {
		x2 := b.x(t)
		if math32.Abs(x2-x) < tolerance {
			return t
		}
		if x > x2 {
			lo = t
		} else {
			hi = t
		}
		t = (hi-lo)*0.5 + lo
	}
	return t
}
