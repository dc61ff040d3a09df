package centerline

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Frame creates the transform that maps the unit x vector onto axis and
// the origin onto origin, preserving angles. The y axis is mapped onto
// axis rotated by +90°.
func Frame(origin Point, axis Vec2) Affine {
	return Affine{axis.X, axis.Y, -axis.Y, axis.X, origin.X, origin.Y}
}

