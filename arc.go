package centerline

import (
	"math"
)

// arcSegments approximates the circular arc around center that starts at
// from and sweeps by the signed angle sweep. The arc is split into pieces
// whose chords are roughly chord long, each approximated by a cubic with
// handles of length 4/3·tan(φ/4)·r for a piece spanning φ.
func arcSegments(center, from Point, sweep, chord float64) []CubicBez {
	radius := center.Distance(from)
	if radius == 0 || sweep == 0 {
		return nil
	}
	if !(chord > 0) {
		chord = 1
	}
	n := max(1, int(math.Ceil(math.Abs(sweep)*radius/chord)))
	step := sweep / float64(n)
	arm := (4.0 / 3.0) * math.Tan(step/4)

	// Build the unit arc in a frame whose x axis points at the start point.
	aff := Frame(center, from.Sub(center))
	out := make([]CubicBez, 0, n)
	th0 := 0.0
	p0 := VecFromAngle(th0)
	for range n {
		th1 := th0 + step
		p3 := VecFromAngle(th1)
		c := CubicBez{
			P0: Point(p0),
			P1: Point(p0.Add(p0.Rot90().Mul(arm))),
			P2: Point(p3.Sub(p3.Rot90().Mul(arm))),
			P3: Point(p3),
		}
		out = append(out, c.Transform(aff))
		th0, p0 = th1, p3
	}
	return out
}
