package centerline

import (
	"math"
)

// taperOffset represents one side of the outline of a cubic centerline
// segment whose width varies linearly from 2·r0 to 2·r1.
//
// The outline of such a stroke is the envelope of circles of radius r(t)
// swept along the centerline. A circle touches the envelope where the radius
// vector makes the angle θ with the direction of travel, cos θ = −dr/ds. We
// approximate dr/ds by the difference in radius over the segment's chord, so
// θ is constant per segment. At equal widths θ is 90° and the envelope is the
// ordinary parallel curve.
type taperOffset struct {
	c    CubicBez
	r0   float64
	r1   float64
	sin  float64
	cos  float64
	side float64
}

// taperCos returns cos θ for a segment with the given chord length, or false
// if it falls outside [−1, 1] because one end circle contains the other.
func taperCos(r0, r1, chord float64) (float64, bool) {
	if chord <= Epsilon {
		if r0 == r1 {
			return 0, true
		}
		return math.Copysign(1, r0-r1), false
	}
	cos := (r0 - r1) / chord
	return cos, cos >= -1 && cos <= 1
}

// newTaperOffset returns the left (side = 1) or right (side = −1) outline
// of c, given cos θ.
func newTaperOffset(c CubicBez, r0, r1, cos, side float64) taperOffset {
	cos = min(max(cos, -1), 1)
	return taperOffset{
		c:    c,
		r0:   r0,
		r1:   r1,
		sin:  math.Sqrt(1 - cos*cos),
		cos:  cos,
		side: side,
	}
}

// normal returns the unit vector from the centerline to the outline at t.
func (o *taperOffset) normal(t float64) Vec2 {
	tan, ok := o.c.Tangent(t).Unit(1e-12)
	if !ok {
		tan = Vec(1, 0)
	}
	s := o.side * o.sin
	return Vec2{
		X: tan.X*o.cos - tan.Y*s,
		Y: tan.X*s + tan.Y*o.cos,
	}
}

func (o *taperOffset) radius(t float64) float64 {
	return o.r0 + (o.r1-o.r0)*t
}

func (o *taperOffset) Eval(t float64) Point {
	return o.c.Eval(t).Translate(o.normal(t).Mul(o.radius(t)))
}

// direction returns the unit direction of travel along the outline at t,
// which is perpendicular to the normal.
func (o *taperOffset) direction(t float64) Vec2 {
	n := o.normal(t)
	if o.side > 0 {
		return n.RotNeg90()
	}
	return n.Rot90()
}

// direct builds the outline cubic without fitting: offset anchors, handles
// perpendicular to the normals, and handle lengths of the centerline scaled
// by the ratio of the two chords.
func (o *taperOffset) direct() (CubicBez, Vec2, Vec2, float64, float64) {
	p0 := o.Eval(0)
	p3 := o.Eval(1)
	d0 := o.direction(0)
	d3 := o.direction(1).Negate()
	ratio := 1.0
	if chord := o.c.MinChord(); chord > Epsilon {
		ratio = p0.Distance(p3) / chord
	}
	l0 := o.c.P0.Distance(o.c.P1) * ratio
	l1 := o.c.P3.Distance(o.c.P2) * ratio
	return CubicBez{
		P0: p0,
		P1: p0.Translate(d0.Mul(l0)),
		P2: p3.Translate(d3.Mul(l1)),
		P3: p3,
	}, d0, d3, l0, l1
}

// chord returns the straight cubic between the outline's end points.
func (o *taperOffset) chord() CubicBez {
	p0, p3 := o.Eval(0), o.Eval(1)
	return CubicBez{p0, p0.Lerp(p3, 1.0/3.0), p0.Lerp(p3, 2.0/3.0), p3}
}

const offsetSamples = 8

// prepareTangentOffsetPoints samples the outline at the interior parameters
// k/8. The parameters are returned alongside the points.
func (o *taperOffset) prepareTangentOffsetPoints() ([offsetSamples - 1]Point, [offsetSamples - 1]float64) {
	var pts [offsetSamples - 1]Point
	var ts [offsetSamples - 1]float64
	for k := 1; k < offsetSamples; k++ {
		t := float64(k) / offsetSamples
		pts[k-1] = o.Eval(t)
		ts[k-1] = t
	}
	return pts, ts
}

// removeHiddenOffsetPoints drops samples at which the outline moves against
// the centerline's direction of travel. That happens on the inside of bends
// tighter than the stroke's radius, where the offset curve forms a loop that
// ends up hidden inside the stroke.
func (o *taperOffset) removeHiddenOffsetPoints(pts []Point, ts []float64) (kept []Point, removed int) {
	prev := o.Eval(0)
	for i, pt := range pts {
		if pt.Sub(prev).Dot(o.c.Tangent(ts[i])) < 0 {
			removed++
		} else {
			kept = append(kept, pt)
		}
		prev = pt
	}
	return kept, removed
}
