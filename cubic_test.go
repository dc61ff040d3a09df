package centerline

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCubicBezDeriv(t *testing.T) {
	// y = x^2
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(1.0/3.0, 0.0),
		Pt(2.0/3.0, 1.0/3.0),
		Pt(1.0, 1.0),
	}
	deriv := c.Deriv()

	const n = 10
	const delta = 1e-6
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		p := c.Eval(ts)
		p1 := c.Eval(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		d := Vec2(deriv.Eval(ts))
		if l := d.Sub(dApprox).Hypot(); l >= delta*2 {
			t.Errorf("got difference of %g, want at most %g", l, delta*2)
		}
	}
}

func TestCubicBezChopAt(t *testing.T) {
	const epsilon = 1e-12
	c := CubicBez{Pt(0, 0), Pt(1, 3), Pt(4, -2), Pt(5, 1)}
	for _, split := range []float64{0.1, 0.25, 0.5, 0.9} {
		left, right := c.ChopAt(split)
		if left.P3 != right.P0 {
			t.Fatalf("halves don't meet: %s and %s", left.P3, right.P0)
		}
		const n = 10
		for i := range n + 1 {
			ts := float64(i) / n
			assertNear(t, left.Eval(ts), c.Eval(ts*split), epsilon)
			assertNear(t, right.Eval(ts), c.Eval(split+ts*(1-split)), epsilon)
		}
	}
}

func TestCubicBezSubdivide(t *testing.T) {
	const epsilon = 1e-12
	c := CubicBez{Pt(0, 0), Pt(1, 3), Pt(4, -2), Pt(5, 1)}
	a0, a1 := c.Subdivide()
	b0, b1 := c.ChopAt(0.5)
	for i, p := range a0.Points() {
		assertNear(t, p, b0.Points()[i], epsilon)
	}
	for i, p := range a1.Points() {
		assertNear(t, p, b1.Points()[i], epsilon)
	}
}

func TestCubicBezChords(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 3), Pt(4, 3), Pt(4, 0)}
	if got := c.MinChord(); got != 4 {
		t.Errorf("got min chord %g, want 4", got)
	}
	if got := c.MaxChord(); got != 10 {
		t.Errorf("got max chord %g, want 10", got)
	}

	// Chords bound the length of the flattened curve.
	var length float64
	prev := c.P0
	const n = 1000
	for i := 1; i <= n; i++ {
		p := c.Eval(float64(i) / n)
		length += prev.Distance(p)
		prev = p
	}
	if length < c.MinChord() || length > c.MaxChord() {
		t.Errorf("length %g not in [%g, %g]", length, c.MinChord(), c.MaxChord())
	}
}

func TestCubicBezTangents(t *testing.T) {
	// Unset handles fall back to the next control point.
	c := CubicBez{Pt(0, 0), Pt(0, 0), Pt(1, 1), Pt(2, 0)}
	t0, t1 := c.Tangents()
	diff(t, Vec(1, 1), t0)
	diff(t, Vec(1, -1), t1)

	if tan := c.Tangent(0); tan != t0 {
		t.Errorf("got tangent %s at start, want %s", tan, t0)
	}
}

func TestCubicBezReverse(t *testing.T) {
	const epsilon = 1e-12
	c := CubicBez{Pt(0, 0), Pt(1, 3), Pt(4, -2), Pt(5, 1)}
	r := c.Reverse()
	for i := range 11 {
		ts := float64(i) / 10
		assertNear(t, r.Eval(ts), c.Eval(1-ts), epsilon)
	}
}

func TestCubicBezBoundingBox(t *testing.T) {
	arch := CubicBez{Pt(0, 0), Pt(10, 30), Pt(40, 30), Pt(50, 0)}
	ex, n := arch.Extrema()
	diff(t, []float64{0.5}, ex[:n])
	diff(t, Rect{0, 0, 50, 22.5}, arch.BoundingBox())
	diff(t, Rect{0, 0, 50, 30}, arch.ControlBox())

	s := CubicBez{Pt(0, 0), Pt(10, 10), Pt(-10, 10), Pt(0, 0)}
	ex, n = s.Extrema()
	if n != 3 {
		t.Fatalf("got %d extrema, want 3", n)
	}
	box := s.BoundingBox()
	for _, want := range []float64{box.X0, box.X1} {
		if math.Abs(math.Abs(want)-10*math.Sqrt(3)/9*1.5) > 1e-9 {
			t.Errorf("got x extent %g", want)
		}
	}
}

func TestSolveQuadratic(t *testing.T) {
	tests := []struct {
		c0, c1, c2 float64
		want       []float64
	}{
		{-1, 0, 1, []float64{-1, 1}},
		{2, -3, 1, []float64{1, 2}},
		{1, 0, 1, []float64{}},
		{1, -2, 1, []float64{1}},
		{-4, 2, 0, []float64{2}},
		{0, 0, 0, []float64{0}},
		{1, 0, 0, []float64{}},
	}
	for _, tt := range tests {
		roots, n := solveQuadratic(tt.c0, tt.c1, tt.c2)
		diff(t, tt.want, roots[:n], cmpopts.EquateApprox(0, 1e-12), cmpopts.EquateEmpty())
	}
}
