package centerline

import (
	"math"
)

// kappa is the handle length, relative to the radius, of a cubic
// approximating a quarter circle.
var kappa = 4.0 / 3.0 * (math.Sqrt2 - 1)

// circleKnots returns the four knots of a counter-clockwise circle around k
// with radius k.Width/2, starting at angle 0. The closing segment back to
// the first knot is implied.
func circleKnots(k Knot) []Knot {
	r := k.Width / 2
	out := make([]Knot, 4)
	for i := range out {
		dir := VecFromAngle(float64(i) * math.Pi / 2)
		main := k.Main.Translate(dir.Mul(r))
		tan := dir.Rot90().Mul(kappa * r)
		out[i] = Knot{
			Main:    main,
			Prev:    main.Translate(tan.Negate()),
			Next:    main.Translate(tan),
			Width:   k.Width,
			Opacity: k.Opacity,
			Color:   k.Color,
		}
	}
	return out
}
