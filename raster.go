package centerline

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Rasterize renders the fill paths of img into an alpha mask, scaling all
// coordinates by scale. Paths of one group are filled together so that
// inner paths cut holes into outer ones. Each group is drawn with the mean
// opacity of its first path. Stroke paths are skipped; outline them first.
func (img *Image) Rasterize(scale float64) *image.Alpha {
	w := int(math.Ceil(float64(img.Width) * scale))
	h := int(math.Ceil(float64(img.Height) * scale))
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return dst
	}
	r := vector.NewRasterizer(w, h)
	r.DrawOp = draw.Over
	aff := Scale(scale, scale)
	for group := range img.Groups() {
		if group[0].Type != Fill {
			continue
		}
		r.Reset(w, h)
		for _, p := range group {
			if p.Type != Fill {
				continue
			}
			addPath(r, p, aff)
		}
		alpha := uint8(math.Round(255 * min(max(group[0].MeanOpacity(), 0), 1)))
		r.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{alpha}), image.Point{})
	}
	return dst
}

func addPath(r *vector.Rasterizer, p *Path, aff Affine) {
	f := func(pt Point) (float32, float32) {
		return float32(pt.X), float32(pt.Y)
	}
	for el := range p.Elements() {
		el = el.Transform(aff)
		switch el.Kind {
		case MoveToKind:
			r.MoveTo(f(el.P0))
		case CubicToKind:
			x1, y1 := f(el.P0)
			x2, y2 := f(el.P1)
			x3, y3 := f(el.P2)
			r.CubeTo(x1, y1, x2, y2, x3, y3)
		case ClosePathKind:
			r.ClosePath()
		default:
			panic(fmt.Sprintf("unhandled path element %v", el.Kind))
		}
	}
}
