package centerline

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"
)

// ErrInvalidPath is returned, wrapped, for paths whose knots can't be
// processed, such as those with non-finite coordinates.
var ErrInvalidPath = errors.New("invalid path")

// Color is the opaque color of a knot.
type Color struct {
	R, G, B uint8
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Knot is one anchor of a piecewise cubic curve together with its two
// handles and the appearance of the stroke at that anchor.
//
// A handle within [Epsilon] of Main is unset. [Path.InferTangents] fills in
// unset handles from the neighboring anchors.
type Knot struct {
	Main Point
	// End of the incoming handle.
	Prev Point
	// End of the outgoing handle.
	Next Point

	Width   float64
	Opacity float64
	Color   Color
}

// K returns a knot at pt with unset handles.
func K(pt Point, width, opacity float64) Knot {
	return Knot{Main: pt, Prev: pt, Next: pt, Width: width, Opacity: opacity}
}

func (k Knot) HasPrev() bool { return !k.Prev.Near(k.Main, Epsilon) }
func (k Knot) HasNext() bool { return !k.Next.Near(k.Main, Epsilon) }

func (k Knot) IsFinite() bool {
	return k.Main.IsFinite() && k.Prev.IsFinite() && k.Next.IsFinite()
}

type PathType uint8

const (
	// An open centerline, rendered with the knots' widths.
	Stroke PathType = iota
	// A closed outline, rendered by filling its interior.
	Fill
)

func (typ PathType) String() string {
	switch typ {
	case Stroke:
		return "stroke"
	case Fill:
		return "fill"
	default:
		return fmt.Sprintf("PathType(%d)", typ)
	}
}

// Group describes how consecutive paths combine into one filled region.
// A run of paths starting with GroupFirst, continuing with GroupContinue and
// ending with GroupLast shares a single fill, allowing for holes.
type Group uint8

const (
	GroupNormal Group = iota
	GroupFirst
	GroupContinue
	GroupLast
)

func (g Group) String() string {
	switch g {
	case GroupNormal:
		return "normal"
	case GroupFirst:
		return "first"
	case GroupContinue:
		return "continue"
	case GroupLast:
		return "last"
	default:
		return fmt.Sprintf("Group(%d)", g)
	}
}

// Path is a chain of knots connected by cubic Béziers.
type Path struct {
	Type  PathType
	Group Group
	Knots []Knot
}

func (p *Path) Len() int { return len(p.Knots) }

// closed reports whether the path has a segment from its last knot back to
// its first.
func (p *Path) closed() bool {
	n := len(p.Knots)
	return p.Type == Fill && n > 1 && !p.Knots[0].Main.Near(p.Knots[n-1].Main, Epsilon)
}

// NumSegments returns the number of segments, including the implied closing
// segment of fill paths that don't end where they start.
func (p *Path) NumSegments() int {
	n := len(p.Knots)
	if n < 2 {
		return 0
	}
	if p.closed() {
		return n
	}
	return n - 1
}

// Segment returns the cubic from knot i to knot i+1, wrapping around for the
// closing segment.
func (p *Path) Segment(i int) CubicBez {
	a := p.Knots[i]
	b := p.Knots[(i+1)%len(p.Knots)]
	return CubicBez{a.Main, a.Next, b.Prev, b.Main}
}

func (p *Path) Segments() iter.Seq2[int, CubicBez] {
	return func(yield func(int, CubicBez) bool) {
		for i := range p.NumSegments() {
			if !yield(i, p.Segment(i)) {
				return
			}
		}
	}
}

// Splice replaces the knots in [i, j) with ks and returns the index just
// past the inserted knots. All structural changes to paths go through
// Splice.
func (p *Path) Splice(i, j int, ks ...Knot) int {
	p.Knots = slices.Replace(p.Knots, i, j, ks...)
	return i + len(ks)
}

func (p *Path) Clone() *Path {
	out := *p
	out.Knots = slices.Clone(p.Knots)
	return &out
}

// Validate checks that the path can be processed. Errors wrap
// [ErrInvalidPath].
func (p *Path) Validate() error {
	if len(p.Knots) == 0 {
		return fmt.Errorf("no knots: %w", ErrInvalidPath)
	}
	for i, k := range p.Knots {
		if !k.IsFinite() {
			return fmt.Errorf("knot %d: non-finite coordinates: %w", i, ErrInvalidPath)
		}
		if math.IsNaN(k.Width) || math.IsInf(k.Width, 0) || k.Width < 0 {
			return fmt.Errorf("knot %d: invalid width %g: %w", i, k.Width, ErrInvalidPath)
		}
		if !(k.Opacity >= 0 && k.Opacity <= 1) {
			return fmt.Errorf("knot %d: opacity %g out of range: %w", i, k.Opacity, ErrInvalidPath)
		}
	}
	return nil
}

func (p *Path) MeanWidth() float64 {
	if len(p.Knots) == 0 {
		return 0
	}
	var sum float64
	for _, k := range p.Knots {
		sum += k.Width
	}
	return sum / float64(len(p.Knots))
}

func (p *Path) MeanOpacity() float64 {
	if len(p.Knots) == 0 {
		return 0
	}
	var sum float64
	for _, k := range p.Knots {
		sum += k.Opacity
	}
	return sum / float64(len(p.Knots))
}

// neighbors returns the indices of the knots before and after i, or -1 where
// an open path ends.
func (p *Path) neighbors(i int) (int, int) {
	n := len(p.Knots)
	prev, next := i-1, i+1
	if p.Type == Fill && n > 2 {
		// Closed paths may repeat their first knot at the end.
		last := n - 1
		if p.Knots[0].Main.Near(p.Knots[last].Main, Epsilon) {
			last--
		}
		if i == 0 {
			prev = last
		}
		if i >= last {
			next = 0
		}
	}
	if prev < 0 {
		prev = -1
	}
	if next >= n {
		next = -1
	}
	return prev, next
}

// InferTangents sets unset handles. A handle points along the line through
// the knot's two neighbors and is a third as long as the chord to the
// neighbor on its side. Knots at the ends of open paths point at their only
// neighbor.
func (p *Path) InferTangents() {
	for i := range p.Knots {
		k := &p.Knots[i]
		if k.HasPrev() && k.HasNext() {
			continue
		}
		pi, ni := p.neighbors(i)
		var dir Vec2
		switch {
		case pi >= 0 && ni >= 0:
			dir = p.Knots[ni].Main.Sub(p.Knots[pi].Main)
		case ni >= 0:
			dir = p.Knots[ni].Main.Sub(k.Main)
		case pi >= 0:
			dir = k.Main.Sub(p.Knots[pi].Main)
		default:
			continue
		}
		u, ok := dir.Unit(Epsilon)
		if !ok {
			continue
		}
		if !k.HasPrev() && pi >= 0 {
			k.Prev = k.Main.Translate(u.Mul(-k.Main.Distance(p.Knots[pi].Main) / 3))
		}
		if !k.HasNext() && ni >= 0 {
			k.Next = k.Main.Translate(u.Mul(k.Main.Distance(p.Knots[ni].Main) / 3))
		}
	}
}

// inDir returns the direction of travel into knot i.
func (p *Path) inDir(i int) Vec2 {
	k := p.Knots[i]
	if k.HasPrev() {
		return k.Main.Sub(k.Prev)
	}
	if pi, _ := p.neighbors(i); pi >= 0 {
		return p.Segment(pi).Tangent(1)
	}
	return Vec2{}
}

// outDir returns the direction of travel out of knot i.
func (p *Path) outDir(i int) Vec2 {
	k := p.Knots[i]
	if k.HasNext() {
		return k.Next.Sub(k.Main)
	}
	if _, ni := p.neighbors(i); ni >= 0 {
		return p.Segment(i).Tangent(0)
	}
	return Vec2{}
}

// IsCorner reports whether the curve turns sharply at knot i, that is,
// whether the incoming and outgoing directions deviate by more than the
// threshold ratio of cross to dot product, or point in opposite directions.
// The ends of open paths are never corners.
func (p *Path) IsCorner(i int, threshold float64) bool {
	if p.Type == Stroke && (i == 0 || i == len(p.Knots)-1) {
		return false
	}
	in, out := p.inDir(i), p.outDir(i)
	if in == (Vec2{}) || out == (Vec2{}) {
		return false
	}
	dot := in.Dot(out)
	cross := in.Cross(out)
	return dot < 0 || math.Abs(cross) > math.Abs(dot)*threshold
}

// Elements returns the path as drawing commands. Fill paths are closed.
// A single-knot path yields only a MoveTo.
func (p *Path) Elements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if len(p.Knots) == 0 {
			return
		}
		if !yield(MoveTo(p.Knots[0].Main)) {
			return
		}
		for _, seg := range p.Segments() {
			if !yield(CubicTo(seg.P1, seg.P2, seg.P3)) {
				return
			}
		}
		if p.Type == Fill {
			yield(ClosePath())
		}
	}
}

// BoundingBox returns the smallest rectangle containing the path's curves.
func (p *Path) BoundingBox() Rect {
	if len(p.Knots) == 0 {
		return Rect{}
	}
	m := p.Knots[0].Main
	r := Rect{m.X, m.Y, m.X, m.Y}
	for _, seg := range p.Segments() {
		r = r.Union(seg.BoundingBox())
	}
	return r
}
