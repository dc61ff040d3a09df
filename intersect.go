package centerline

const (
	// Once the control polygons of both curves are shorter than this in
	// total, the curves are considered to meet at their midpoints.
	intersectMinLength = 1e-3
	// Recursion limit for the narrow phase. Reaching it requires input with
	// non-finite or enormous coordinates.
	maxIntersectDepth = 64
)

// Intersection describes where two cubic Béziers meet.
type Intersection struct {
	// Parameter on the first curve.
	T1 float64
	// Parameter on the second curve.
	T2 float64
	// Midpoint of the two curves' points at T1 and T2.
	Point Point
}

// MayIntersect reports whether the convex hulls of the control polygons of a
// and b overlap. If it returns false, the curves certainly don't intersect.
func MayIntersect(a, b CubicBez) bool {
	if !a.ControlBox().Overlaps(b.ControlBox()) {
		return false
	}
	ha, na := convexHull(a.Points())
	hb, nb := convexHull(b.Points())
	hullA, hullB := ha[:na], hb[:nb]
	for i := range hullA {
		ea := Line{hullA[i], hullA[(i+1)%na]}
		for j := range hullB {
			if ea.Touches(Line{hullB[j], hullB[(j+1)%nb]}) {
				return true
			}
		}
	}
	// No edges cross, so either one hull lies entirely inside the other or
	// they are disjoint.
	return hullContains(hullA, hullB[0]) || hullContains(hullB, hullA[0])
}

// Intersect finds a point where a and b intersect, using recursive
// subdivision pruned by [MayIntersect]. It doesn't try to find all
// intersections; the first one discovered is returned, with curves searched
// in order of their parameters.
func Intersect(a, b CubicBez) (Intersection, bool) {
	var is intersector
	return is.intersect(a, b)
}

type intersector struct {
	// Number of narrow phase invocations.
	narrow int
}

func (is *intersector) intersect(a, b CubicBez) (Intersection, bool) {
	if !MayIntersect(a, b) {
		return Intersection{}, false
	}
	t1, t2, ok := is.narrowPhase(a, b, 0)
	if !ok {
		return Intersection{}, false
	}
	return Intersection{
		T1:    t1,
		T2:    t2,
		Point: a.Eval(t1).Midpoint(b.Eval(t2)),
	}, true
}

// narrowPhase expects a and b to have overlapping hulls.
func (is *intersector) narrowPhase(a, b CubicBez, depth int) (float64, float64, bool) {
	is.narrow++
	if a.MaxChord()+b.MaxChord() < intersectMinLength || depth >= maxIntersectDepth {
		return 0.5, 0.5, true
	}

	// Move both curves close to the origin. Parameters are unaffected by
	// translation, but the hull tests lose far less precision.
	var sum Vec2
	for _, p := range a.Points() {
		sum = sum.Add(Vec2(p))
	}
	for _, p := range b.Points() {
		sum = sum.Add(Vec2(p))
	}
	off := sum.Mul(1.0 / 8.0).Negate()
	a = a.Translate(off)
	b = b.Translate(off)

	a0, a1 := a.Subdivide()
	b0, b1 := b.Subdivide()
	as := [2]CubicBez{a0, a1}
	bs := [2]CubicBez{b0, b1}
	for i, sa := range as {
		for j, sb := range bs {
			if !MayIntersect(sa, sb) {
				continue
			}
			if t1, t2, ok := is.narrowPhase(sa, sb, depth+1); ok {
				return 0.5 * (t1 + float64(i)), 0.5 * (t2 + float64(j)), true
			}
		}
	}
	return 0, 0, false
}
