package centerline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

// line returns a degenerate cubic tracing the straight line from p0 to p3,
// with control points at the thirds.
func line(p0, p3 Point) CubicBez {
	return CubicBez{p0, p0.Lerp(p3, 1.0/3.0), p0.Lerp(p3, 2.0/3.0), p3}
}

// strokePath returns a stroke through pts with constant width and opacity
// and inferred tangents.
func strokePath(width float64, pts ...Point) *Path {
	p := &Path{Type: Stroke}
	for _, pt := range pts {
		p.Knots = append(p.Knots, K(pt, width, 1))
	}
	p.InferTangents()
	return p
}
