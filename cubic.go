package centerline

import (
	"slices"
)

type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Points returns the control points as an array.
func (c CubicBez) Points() [4]Point {
	return [4]Point{c.P0, c.P1, c.P2, c.P3}
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Deriv returns the derivative of the cubic, which is a quadratic.
func (c CubicBez) Deriv() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

// Tangent returns the direction of travel at t. Where the derivative
// vanishes (at endpoints with unset handles, or at cusps) it falls back to
// [CubicBez.Tangents] at the ends, and to the chord elsewhere.
func (c CubicBez) Tangent(t float64) Vec2 {
	const epsilon = 1e-12
	d := Vec2(c.Deriv().Eval(t))
	if d.Hypot2() > epsilon {
		return d
	}
	t0, t1 := c.Tangents()
	switch t {
	case 0:
		return t0
	case 1:
		return t1
	default:
		return c.P3.Sub(c.P0)
	}
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

// ChopAt splits the cubic at t using de Casteljau's algorithm. The two
// halves together retrace the original curve.
func (c CubicBez) ChopAt(t float64) (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	pm := p012.Lerp(p123, t)
	return CubicBez{c.P0, p01, p012, pm}, CubicBez{pm, p123, p23, c.P3}
}

// MinChord returns the distance between the endpoints, which is a lower
// bound for the arc length.
func (c CubicBez) MinChord() float64 {
	return c.P0.Distance(c.P3)
}

// MaxChord returns the length of the control polygon, which is an upper
// bound for the arc length.
func (c CubicBez) MaxChord() float64 {
	return c.P0.Distance(c.P1) + c.P1.Distance(c.P2) + c.P2.Distance(c.P3)
}

// Reverse returns the same curve traversed in the opposite direction.
func (c CubicBez) Reverse() CubicBez {
	return CubicBez{c.P3, c.P2, c.P1, c.P0}
}

func (c CubicBez) Translate(v Vec2) CubicBez {
	return CubicBez{
		P0: c.P0.Translate(v),
		P1: c.P1.Translate(v),
		P2: c.P2.Translate(v),
		P3: c.P3.Translate(v),
	}
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

// ControlBox returns the bounding box of the control polygon, which
// contains the curve.
func (c CubicBez) ControlBox() Rect {
	r := Rect{c.P0.X, c.P0.Y, c.P0.X, c.P0.Y}
	return r.UnionPoint(c.P1).UnionPoint(c.P2).UnionPoint(c.P3)
}

// Extrema returns the parameters in (0, 1) at which the curve's x or y
// coordinate has a local extremum, sorted.
func (c CubicBez) Extrema() ([4]float64, int) {
	var out [4]float64
	n := 0
	axis := func(d0, d1, d2 float64) {
		roots, m := solveQuadratic(d0, 2*(d1-d0), d0-2*d1+d2)
		for _, t := range roots[:m] {
			if t > 0 && t < 1 {
				out[n] = t
				n++
			}
		}
	}
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	axis(d0.X, d1.X, d2.X)
	axis(d0.Y, d1.Y, d2.Y)
	slices.Sort(out[:n])
	return out, n
}

// BoundingBox returns the smallest rectangle containing the curve.
func (c CubicBez) BoundingBox() Rect {
	r := Rect{c.P0.X, c.P0.Y, c.P0.X, c.P0.Y}.UnionPoint(c.P3)
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		r = r.UnionPoint(c.Eval(t))
	}
	return r
}

// Tangents returns the tangent directions at the start and end of the
// curve, skipping over control points that coincide with their anchor.
func (c CubicBez) Tangents() (Vec2, Vec2) {
	const epsilon = 1e-12
	d01 := c.P1.Sub(c.P0)
	var d0, d1 Vec2
	if d01.Hypot2() > epsilon {
		d0 = d01
	} else {
		d02 := c.P2.Sub(c.P0)
		if d02.Hypot2() > epsilon {
			d0 = d02
		} else {
			d0 = c.P3.Sub(c.P0)
		}
	}
	d23 := c.P3.Sub(c.P2)
	if d23.Hypot2() > epsilon {
		d1 = d23
	} else {
		d13 := c.P3.Sub(c.P1)
		if d13.Hypot2() > epsilon {
			d1 = d13
		} else {
			d1 = c.P3.Sub(c.P0)
		}
	}
	return d0, d1
}
