package centerline

import (
	"testing"
)

func TestRectOverlaps(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	tests := []struct {
		o    Rect
		want bool
	}{
		{Rect{5, 5, 15, 15}, true},
		{Rect{2, 2, 3, 3}, true},
		// Touching edges overlap.
		{Rect{10, 0, 20, 10}, true},
		{Rect{10.5, 0, 20, 10}, false},
		{Rect{0, -5, 10, -0.1}, false},
	}
	for _, tt := range tests {
		if got := r.Overlaps(tt.o); got != tt.want {
			t.Errorf("%v.Overlaps(%v) = %t, want %t", r, tt.o, got, tt.want)
		}
		if got := tt.o.Overlaps(r); got != tt.want {
			t.Errorf("%v.Overlaps(%v) = %t, want %t", tt.o, r, got, tt.want)
		}
	}
}

func TestRectUnion(t *testing.T) {
	r := Rect{0, 0, 1, 1}.Union(Rect{-1, 2, 0, 3})
	diff(t, Rect{-1, 0, 1, 3}, r)
	diff(t, Rect{-1, 0, 5, 3}, r.UnionPoint(Pt(5, 1)))
}
