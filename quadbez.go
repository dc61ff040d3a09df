package centerline

// QuadBez is a quadratic Bézier segment. In this package it mostly appears
// as the derivative of a [CubicBez].
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	v := Vec2(q.P0).Mul(mt * mt).
		Add(Vec2(q.P1).Add(Vec2(q.P1)).Mul(mt * t)).
		Add(Vec2(q.P2).Mul(t * t))
	return Point(v)
}
