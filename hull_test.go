package centerline

import (
	"testing"
)

func TestConvexHull(t *testing.T) {
	tests := []struct {
		name string
		pts  [4]Point
		want []Point
	}{
		{
			"square",
			[4]Point{Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(1, 0)},
			[]Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)},
		},
		{
			"interior point",
			[4]Point{Pt(0, 0), Pt(4, 0), Pt(1, 1), Pt(0, 4)},
			[]Point{Pt(0, 0), Pt(4, 0), Pt(0, 4)},
		},
		{
			"point on edge",
			[4]Point{Pt(0, 0), Pt(2, 0), Pt(4, 0), Pt(0, 4)},
			[]Point{Pt(0, 0), Pt(4, 0), Pt(0, 4)},
		},
		{
			"crossed polygon",
			[4]Point{Pt(0, 0), Pt(1, 1), Pt(1, 0), Pt(0, 1)},
			[]Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hull, n := convexHull(tt.pts)
			diff(t, tt.want, hull[:n])
		})
	}
}

func TestConvexHullCollinear(t *testing.T) {
	pts := [4]Point{Pt(0, 0), Pt(1, 1), Pt(2, 2), Pt(3, 3)}
	hull, n := convexHull(pts)
	// The hull degenerates, but its edges must still cover the segment.
	var covered bool
	for i := range n {
		e := Line{hull[i], hull[(i+1)%n]}
		if e.P0 == Pt(0, 0) && e.P1 == Pt(3, 3) || e.P0 == Pt(3, 3) && e.P1 == Pt(0, 0) {
			covered = true
		}
	}
	if !covered {
		t.Errorf("hull %v doesn't span the segment", hull[:n])
	}
	if hullContains(hull[:n], Pt(1, 1)) {
		t.Error("degenerate hull contains a point")
	}
}

func TestHullContains(t *testing.T) {
	hull, n := convexHull([4]Point{Pt(0, 0), Pt(4, 0), Pt(4, 4), Pt(0, 4)})
	if !hullContains(hull[:n], Pt(2, 2)) {
		t.Error("interior point not contained")
	}
	if !hullContains(hull[:n], Pt(4, 2)) {
		t.Error("point on boundary not contained")
	}
	if hullContains(hull[:n], Pt(5, 2)) {
		t.Error("exterior point contained")
	}
}
