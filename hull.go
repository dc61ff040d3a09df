package centerline

// convexHull returns the convex hull of the four control points of a cubic,
// in counter-clockwise order (y-up), together with the number of hull
// vertices. The result has 4 vertices for a convex control polygon and 3
// when one point lies inside the triangle formed by the others. Collinear
// input yields a degenerate triangle whose edges still cover the segment.
//
// Rather than running a general hull algorithm we exploit the fixed size:
// pick the lexicographically smallest point as the pivot and order the
// remaining three by polar angle around it. The middle one of those is
// either a hull vertex or it isn't; nothing else can happen.
func convexHull(pts [4]Point) ([4]Point, int) {
	pivot := 0
	for i := 1; i < 4; i++ {
		if pts[i].X < pts[pivot].X || (pts[i].X == pts[pivot].X && pts[i].Y < pts[pivot].Y) {
			pivot = i
		}
	}
	p0 := pts[pivot]
	var rest [3]Point
	n := 0
	for i := range pts {
		if i != pivot {
			rest[n] = pts[i]
			n++
		}
	}

	// All remaining points lie in the half plane x >= p0.x, so comparing
	// polar angles reduces to an orientation test. Ties are broken by
	// distance so that the farthest collinear point comes last.
	less := func(a, b Point) bool {
		switch orientation(p0, a, b) {
		case 1:
			return true
		case -1:
			return false
		default:
			return p0.DistanceSquared(a) < p0.DistanceSquared(b)
		}
	}
	if less(rest[1], rest[0]) {
		rest[0], rest[1] = rest[1], rest[0]
	}
	if less(rest[2], rest[1]) {
		rest[1], rest[2] = rest[2], rest[1]
	}
	if less(rest[1], rest[0]) {
		rest[0], rest[1] = rest[1], rest[0]
	}
	a, b, c := rest[0], rest[1], rest[2]

	switch {
	case orientation(p0, a, b) == 0:
		// a lies on the edge from p0 to b.
		return [4]Point{p0, b, c}, 3
	case orientation(p0, b, c) == 0:
		// b lies on the edge from p0 to c.
		return [4]Point{p0, a, c}, 3
	case orientation(a, b, c) > 0:
		return [4]Point{p0, a, b, c}, 4
	default:
		return [4]Point{p0, a, c}, 3
	}
}

// hullContains reports whether pt lies inside or on the boundary of the
// counter-clockwise hull. Degenerate hulls without area contain nothing.
func hullContains(hull []Point, pt Point) bool {
	if orientation(hull[0], hull[1], hull[2]) <= 0 {
		return false
	}
	for i := range hull {
		if orientation(hull[i], hull[(i+1)%len(hull)], pt) < 0 {
			return false
		}
	}
	return true
}
