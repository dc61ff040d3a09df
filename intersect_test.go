package centerline

import (
	"math"
	"testing"
)

func TestIntersectStraightLines(t *testing.T) {
	a := line(Pt(0, 0), Pt(10, 0))
	b := line(Pt(5, -5), Pt(5, 5))
	if !MayIntersect(a, b) {
		t.Fatal("broad phase rejected crossing lines")
	}
	is, ok := Intersect(a, b)
	if !ok {
		t.Fatal("no intersection found")
	}
	const epsilon = 1e-3
	if math.Abs(is.T1-0.5) > epsilon || math.Abs(is.T2-0.5) > epsilon {
		t.Errorf("got parameters (%g, %g), want (0.5, 0.5)", is.T1, is.T2)
	}
	assertNear(t, is.Point, Pt(5, 0), epsilon)
}

func TestIntersectCurves(t *testing.T) {
	a := CubicBez{Pt(0, 0), Pt(3, 10), Pt(7, 10), Pt(10, 0)}
	b := line(Pt(0, 5), Pt(10, 5))
	is, ok := Intersect(a, b)
	if !ok {
		t.Fatal("no intersection found")
	}
	const epsilon = 1e-3
	assertNear(t, a.Eval(is.T1), is.Point, epsilon)
	assertNear(t, b.Eval(is.T2), is.Point, epsilon)
	if math.Abs(is.Point.Y-5) > epsilon {
		t.Errorf("intersection %s not on y = 5", is.Point)
	}
}

func TestIntersectFarFromOrigin(t *testing.T) {
	off := Vec(1e6, -1e6)
	a := line(Pt(0, 0), Pt(10, 0)).Translate(off)
	b := line(Pt(5, -5), Pt(5, 5)).Translate(off)
	is, ok := Intersect(a, b)
	if !ok {
		t.Fatal("no intersection found")
	}
	assertNear(t, is.Point, Pt(5, 0).Translate(off), 1e-3)
}

func TestIntersectBroadPhaseRejection(t *testing.T) {
	a := CubicBez{Pt(0, 0), Pt(1, 2), Pt(2, 2), Pt(3, 0)}
	b := CubicBez{Pt(100, 100), Pt(101, 102), Pt(102, 102), Pt(103, 100)}
	if MayIntersect(a, b) {
		t.Error("broad phase accepted separated curves")
	}
	var is intersector
	if _, ok := is.intersect(a, b); ok {
		t.Error("found intersection of separated curves")
	}
	if is.narrow != 0 {
		t.Errorf("narrow phase ran %d times, want 0", is.narrow)
	}
}

func TestIntersectOverlappingBoxes(t *testing.T) {
	// The bounding boxes overlap but the hulls don't.
	a := line(Pt(0, 0), Pt(10, 10))
	b := line(Pt(6, 0), Pt(10, 4))
	if MayIntersect(a, b) {
		t.Error("broad phase accepted disjoint hulls")
	}
}

func TestIntersectContainedHull(t *testing.T) {
	// a's hull lies entirely within b's, so no edges cross.
	a := line(Pt(4, 4), Pt(5, 5))
	b := CubicBez{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)}
	if !MayIntersect(a, b) {
		t.Error("broad phase rejected nested hulls")
	}
}

func BenchmarkIntersect(b *testing.B) {
	c0 := CubicBez{Pt(0, 0), Pt(3, 10), Pt(7, 10), Pt(10, 0)}
	c1 := CubicBez{Pt(0, 8), Pt(3, -2), Pt(7, -2), Pt(10, 8)}
	for range b.N {
		Intersect(c0, c1)
	}
}
