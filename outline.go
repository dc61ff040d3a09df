package centerline

import (
	"math"
	"slices"
)

// maxSplitDepth limits how often Outline bisects a centerline segment whose
// outline fails to fit. Each segment of the input ends up as at most
// 2^maxSplitDepth pieces.
const maxSplitDepth = 10

// minSplitLength is the control polygon length below which a segment is no
// longer bisected and its directly constructed outline is accepted.
const minSplitLength = 1.0

// maxHiddenSamples is the number of hidden outline samples above which a
// segment's outline is constructed directly instead of fitted.
const maxHiddenSamples = 5

// ringSegment is a piece of the outline together with the circle it ends
// on: the knot whose offset produced its end point.
type ringSegment struct {
	c      CubicBez
	center Point
	// Direction pointing away from the stroke at round caps, zero for
	// joins between segments.
	outward Vec2
}

// ring is a deque of outline segments. Segments of the left side of the
// stroke are pushed to the back, segments of the right side, reversed, to
// the front, so that once the whole centerline has been consumed the
// segments form a closed loop around it.
type ring struct {
	// front holds segments pushed to the front, in push order.
	front []ringSegment
	back  []ringSegment
}

func (r *ring) pushBack(s ringSegment)  { r.back = append(r.back, s) }
func (r *ring) pushFront(s ringSegment) { r.front = append(r.front, s) }

func (r *ring) segments() []ringSegment {
	out := make([]ringSegment, 0, len(r.front)+len(r.back))
	for i := len(r.front) - 1; i >= 0; i-- {
		out = append(out, r.front[i])
	}
	return append(out, r.back...)
}

// Outline replaces a stroke path with the closed fill path of its outline.
//
// Each centerline segment is outlined on both sides by fitting a cubic to
// the envelope of the circles of the stroke's varying radius. Where a fit
// fails, the segment is bisected and both halves are outlined instead.
// Adjacent outline pieces are joined where they meet or cross, and
// connected with circular arcs otherwise, which also produces round caps at
// both ends of the stroke.
//
// A path consisting of a single point becomes a circle. Where one end circle
// of a segment contains the other, the segment's outline runs around the
// larger circle.
//
// A nil cfg uses [DefaultConfig].
func Outline(p *Path, cfg *Config) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if p.Type == Fill {
		return nil
	}
	if err := p.Validate(); err != nil {
		return err
	}
	opacity := p.MeanOpacity()
	color := p.Knots[0].Color

	if isPoint(p) {
		k := p.Knots[0]
		k.Opacity = opacity
		p.Splice(0, len(p.Knots), circleKnots(k)...)
		p.Type = Fill
		return nil
	}

	work := p.Clone()
	work.InferTangents()
	work.ChopLine(cfg.MaxSegmentLength)

	var r ring
	// Number of bisections that produced each segment of work.
	depth := make([]int, work.NumSegments())
	splits := 0
	for i := 0; i < work.NumSegments(); {
		left, right, ok := segmentOutline(work, i, cfg)
		if !ok && work.Segment(i).MaxChord() >= minSplitLength && depth[i] < maxSplitDepth {
			Logger().Debug("bisecting segment", "index", i, "length", work.Segment(i).MaxChord(), "depth", depth[i])
			work.ChopSegment(i, 0.5)
			depth[i]++
			depth = slices.Insert(depth, i+1, depth[i])
			splits++
			continue
		}
		debugSegment(cfg.Debug, "left", left)
		debugSegment(cfg.Debug, "right", right)

		end := work.Knots[i+1]
		start := work.Knots[i]
		leftSeg := ringSegment{c: left, center: end.Main}
		rightSeg := ringSegment{c: right.Reverse(), center: start.Main}
		if i == work.NumSegments()-1 {
			leftSeg.outward = work.Segment(i).Tangent(1)
		}
		if i == 0 {
			rightSeg.outward = work.Segment(0).Tangent(0).Negate()
		}
		r.pushBack(leftSeg)
		r.pushFront(rightSeg)
		i++
	}

	segs := r.segments()
	arcs := make([][]CubicBez, len(segs))
	for i := range segs {
		j := (i + 1) % len(segs)
		arcs[i] = stitch(&segs[i], &segs[j], cfg)
	}

	var curves []CubicBez
	for i, s := range segs {
		curves = append(curves, s.c)
		curves = append(curves, arcs[i]...)
	}
	curves = slices.DeleteFunc(curves, func(c CubicBez) bool {
		return c.MaxChord() < Epsilon
	})
	if len(curves) == 0 {
		// Zero width everywhere.
		curves = []CubicBez{p.Segment(0), p.Segment(0).Reverse()}
	}

	knots := make([]Knot, 0, len(curves)+1)
	for i, c := range curves {
		prev := curves[(i+len(curves)-1)%len(curves)]
		knots = append(knots, Knot{
			Main:    c.P0,
			Prev:    prev.P2,
			Next:    c.P1,
			Opacity: opacity,
			Color:   color,
		})
	}
	closing := knots[0]
	closing.Prev = curves[len(curves)-1].P2
	knots = append(knots, closing)

	before := len(p.Knots)
	p.Splice(0, len(p.Knots), knots...)
	p.Type = Fill
	Logger().Debug("outlined path", "before", before, "after", len(p.Knots), "splits", splits)
	return nil
}

// isPoint reports whether all anchors of p coincide.
func isPoint(p *Path) bool {
	for _, k := range p.Knots[1:] {
		if !k.Main.Near(p.Knots[0].Main, Epsilon) {
			return false
		}
	}
	return true
}

// segmentCos returns cos θ of the taper of segment i, falling back to the
// neighboring segments if one end circle of segment i contains the other.
// If no neighbor helps either, it returns the clamped value and false.
func segmentCos(p *Path, i int) (float64, bool) {
	at := func(i int) (float64, bool) {
		a, b := p.Knots[i], p.Knots[(i+1)%len(p.Knots)]
		return taperCos(a.Width/2, b.Width/2, a.Main.Distance(b.Main))
	}
	cos, ok := at(i)
	if ok {
		return cos, true
	}
	for _, j := range [2]int{i - 1, i + 1} {
		if j < 0 || j >= p.NumSegments() {
			continue
		}
		if alt, ok := at(j); ok {
			return alt, true
		}
	}
	return min(max(cos, -1), 1), false
}

// segmentOutline returns the left and right outline of segment i. If
// fitting fails, it returns the direct construction and false.
func segmentOutline(p *Path, i int, cfg *Config) (left, right CubicBez, ok bool) {
	c := p.Segment(i)
	a, b := p.Knots[i], p.Knots[(i+1)%len(p.Knots)]
	cos, ok := segmentCos(p, i)
	lo := newTaperOffset(c, a.Width/2, b.Width/2, cos, 1)
	ro := newTaperOffset(c, a.Width/2, b.Width/2, cos, -1)
	if !ok {
		// One end circle contains the other. Both sides collapse onto the
		// tangent ray, inside the larger circle, and the joins or caps around
		// that circle's knot draw the outline.
		Logger().Debug("segment inside end circle", "index", i, "r0", a.Width/2, "r1", b.Width/2)
		return lo.chord(), ro.chord(), true
	}
	left, okLeft := fitOffset(lo, cfg)
	right, okRight := fitOffset(ro, cfg)
	return left, right, okLeft && okRight
}

func fitOffset(o taperOffset, cfg *Config) (CubicBez, bool) {
	direct, d0, d3, _, _ := o.direct()
	pts, ts := o.prepareTangentOffsetPoints()
	kept, removed := o.removeHiddenOffsetPoints(pts[:], ts[:])
	if removed > maxHiddenSamples {
		return direct, true
	}

	samples := make([]Point, 0, len(kept)+2)
	samples = append(samples, direct.P0)
	samples = append(samples, kept...)
	samples = append(samples, direct.P3)
	res := FitTangentLengths(FitRequest{
		P0:         direct.P0,
		P3:         direct.P3,
		D0:         d0,
		D3:         d3,
		Samples:    fitSamples(samples),
		Tolerance:  cfg.OffsetError,
		Iterations: cfg.OffsetIterations,
		Solver:     cfg.Solver,
	})
	if !res.OK {
		return direct, false
	}
	return res.Cubic, true
}

// stitch connects the end of a to the start of b, modifying both, and
// returns the arc pieces to insert between them, if any.
func stitch(a, b *ringSegment, cfg *Config) []CubicBez {
	from, to := a.c.P3, b.c.P0
	if a.outward == (Vec2{}) && from.Near(to, Epsilon) {
		m := from.Midpoint(to)
		a.c.P2 = a.c.P2.Translate(m.Sub(from))
		a.c.P3 = m
		b.c.P1 = b.c.P1.Translate(m.Sub(to))
		b.c.P0 = m
		return nil
	}

	if a.outward == (Vec2{}) {
		if is, ok := Intersect(a.c, b.c); ok && is.T1 > 0 && is.T2 < 1 {
			Logger().Debug("joining at intersection", "t1", is.T1, "t2", is.T2)
			debugPoint(cfg.Debug, "intersection", is.Point)
			a.c, _ = a.c.ChopAt(is.T1)
			_, b.c = b.c.ChopAt(is.T2)
			a.c.P3 = is.Point
			b.c.P0 = is.Point
			return nil
		}
	}

	u := from.Sub(a.center)
	v := to.Sub(a.center)
	sweep := u.AngleTo(v)
	if a.outward != (Vec2{}) {
		// Caps go around the end of the stroke.
		mid := u.Rotate(sweep / 2)
		if mid.Dot(a.outward) < 0 {
			if sweep > 0 {
				sweep -= 2 * math.Pi
			} else {
				sweep += 2 * math.Pi
			}
		}
	}
	arc := arcSegments(a.center, from, sweep, cfg.ArcChord)
	if len(arc) == 0 {
		// Zero radius or sweep; connect directly.
		b.c.P0 = from
		return nil
	}
	// Snap onto b to close rounding gaps.
	last := &arc[len(arc)-1]
	last.P2 = last.P2.Translate(to.Sub(last.P3))
	last.P3 = to
	Logger().Debug("joining with arc", "sweep", sweep, "pieces", len(arc))
	for _, c := range arc {
		debugSegment(cfg.Debug, "arc", c)
	}
	return arc
}
