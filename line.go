package centerline

// Line represents a straight line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Touches reports whether the two closed segments share at least one point.
// Endpoints lying on the other segment and collinear overlap both count.
func (l Line) Touches(o Line) bool {
	d1 := orientation(o.P0, o.P1, l.P0)
	d2 := orientation(o.P0, o.P1, l.P1)
	d3 := orientation(l.P0, l.P1, o.P0)
	d4 := orientation(l.P0, l.P1, o.P1)
	if d1*d2 < 0 && d3*d4 < 0 {
		return true
	}
	return (d1 == 0 && o.boxContains(l.P0)) ||
		(d2 == 0 && o.boxContains(l.P1)) ||
		(d3 == 0 && l.boxContains(o.P0)) ||
		(d4 == 0 && l.boxContains(o.P1))
}

func (l Line) boxContains(pt Point) bool {
	e := 1e-9 * (1 + l.Length())
	return pt.X >= min(l.P0.X, l.P1.X)-e && pt.X <= max(l.P0.X, l.P1.X)+e &&
		pt.Y >= min(l.P0.Y, l.P1.Y)-e && pt.Y <= max(l.P0.Y, l.P1.Y)+e
}

// orientation returns the sign of the turn a→b→c: +1 for a left turn
// (counter-clockwise in y-up space), -1 for a right turn and 0 for
// collinear points. Cross products that are tiny relative to the operands
// are treated as collinear.
func orientation(a, b, c Point) int {
	u := b.Sub(a)
	v := c.Sub(a)
	cross := u.Cross(v)
	tol := 1e-12 * u.Hypot() * v.Hypot()
	switch {
	case cross > tol:
		return 1
	case cross < -tol:
		return -1
	default:
		return 0
	}
}
