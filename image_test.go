package centerline

import (
	"errors"
	"math"
	"testing"
)

// polygon returns a fill path through pts with straight segments.
func polygon(opacity float64, pts ...Point) *Path {
	p := polylinePath(pts, nil)
	n := len(pts)
	p.Knots[0].Prev = pts[0].Lerp(pts[n-1], 1.0/3.0)
	p.Knots[n-1].Next = pts[n-1].Lerp(pts[0], 1.0/3.0)
	for i := range p.Knots {
		p.Knots[i].Opacity = opacity
	}
	p.Type = Fill
	return p
}

func TestImageGroups(t *testing.T) {
	groups := []Group{GroupNormal, GroupFirst, GroupContinue, GroupLast, GroupNormal, GroupFirst, GroupNormal}
	img := &Image{}
	for _, g := range groups {
		img.Paths = append(img.Paths, &Path{Group: g, Knots: []Knot{K(Pt(0, 0), 1, 1)}})
	}
	var sizes []int
	for g := range img.Groups() {
		sizes = append(sizes, len(g))
	}
	diff(t, []int{1, 3, 1, 1, 1}, sizes)
}

func TestRasterizeCircle(t *testing.T) {
	p := &Path{Type: Fill, Knots: circleKnots(K(Pt(10, 10), 10, 1))}
	want := math.Pi * 5 * 5
	if got := coverage(p, 20, 20, 4); math.Abs(got-want) > 0.01*want {
		t.Errorf("got area %g, want %g", got, want)
	}
}

func TestRasterizeGroupHole(t *testing.T) {
	outer := polygon(1, Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10))
	outer.Group = GroupFirst
	inner := polygon(1, Pt(3, 3), Pt(3, 7), Pt(7, 7), Pt(7, 3))
	inner.Group = GroupLast
	img := &Image{Width: 10, Height: 10, Paths: []*Path{outer, inner}}
	a := img.Rasterize(2)
	var sum float64
	for _, v := range a.Pix {
		sum += float64(v) / 255
	}
	if got := sum / 4; math.Abs(got-84) > 0.5 {
		t.Errorf("got area %g, want 84", got)
	}
	if v := a.AlphaAt(10, 10).A; v != 0 {
		t.Errorf("hole has coverage %d", v)
	}
	if v := a.AlphaAt(2, 2).A; v != 255 {
		t.Errorf("ring has coverage %d", v)
	}
}

func TestRasterizeOpacityAndStrokes(t *testing.T) {
	square := polygon(0.5, Pt(0, 0), Pt(4, 0), Pt(4, 4), Pt(0, 4))
	stroke := strokePath(2, Pt(5, 5), Pt(9, 9))
	img := &Image{Width: 10, Height: 10, Paths: []*Path{square, stroke}}
	a := img.Rasterize(1)
	if v := a.AlphaAt(2, 2).A; v != 128 {
		t.Errorf("got coverage %d, want 128", v)
	}
	if v := a.AlphaAt(7, 7).A; v != 0 {
		t.Errorf("stroke was drawn with coverage %d", v)
	}
}

func TestImageProcess(t *testing.T) {
	arch := CubicBez{Pt(0, 0), Pt(10, 30), Pt(40, 30), Pt(50, 0)}
	img := &Image{Paths: []*Path{
		sampledPath(arch, 6, constWidth),
		polygon(1, Pt(0, 0), Pt(1, 0), Pt(1, 1)),
	}}
	fill := img.Paths[1].Clone()
	if err := img.Process(nil); err != nil {
		t.Fatal(err)
	}
	assertClosedFill(t, img.Paths[0])
	diff(t, fill, img.Paths[1])
}

func TestImageProcessApproximateOnly(t *testing.T) {
	arch := CubicBez{Pt(0, 0), Pt(10, 30), Pt(40, 30), Pt(50, 0)}
	img := &Image{Paths: []*Path{sampledPath(arch, 6, constWidth)}}
	cfg := DefaultConfig()
	cfg.Outline = false
	if err := img.Process(cfg); err != nil {
		t.Fatal(err)
	}
	if p := img.Paths[0]; p.Type != Stroke || p.Len() >= 7 {
		t.Errorf("got %s path with %d knots", p.Type, p.Len())
	}
}

func TestImageProcessErrors(t *testing.T) {
	bad := strokePath(2, Pt(0, 0), Pt(1, 1))
	bad.Knots[1].Opacity = 2
	img := &Image{Paths: []*Path{strokePath(2, Pt(0, 0), Pt(1, 1)), bad}}
	err := img.Process(nil)
	if !errors.Is(err, ErrInvalidPath) {
		t.Fatalf("got %v, want ErrInvalidPath", err)
	}
	if got, want := err.Error(), "path 1: knot 1: opacity 2 out of range: invalid path"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	// Validation happens before any path is modified.
	if img.Paths[0].Type != Stroke {
		t.Error("first path was processed")
	}

	cfg := DefaultConfig()
	cfg.OffsetIterations = 0
	if err := (&Image{}).Process(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("got %v, want ErrInvalidConfig", err)
	}
}

type fakeTracer struct {
	img *Image
	err error
}

func (tr fakeTracer) Trace() (*Image, error) { return tr.img, tr.err }

type fakeExporter struct {
	got *Image
	err error
}

func (e *fakeExporter) Export(img *Image) error {
	e.got = img
	return e.err
}

func TestRun(t *testing.T) {
	img := &Image{Width: 30, Height: 10, Paths: []*Path{strokePath(4, Pt(4, 4), Pt(24, 4))}}
	var e fakeExporter
	if err := Run(fakeTracer{img: img}, nil, &e); err != nil {
		t.Fatal(err)
	}
	if e.got != img {
		t.Fatal("exporter didn't receive the traced image")
	}
	assertClosedFill(t, img.Paths[0])

	errTrace := errors.New("no such bitmap")
	if err := Run(fakeTracer{err: errTrace}, nil, &e); !errors.Is(err, errTrace) {
		t.Errorf("got %v, want %v", err, errTrace)
	}
	errExport := errors.New("disk full")
	img = &Image{Paths: []*Path{strokePath(4, Pt(4, 4), Pt(24, 4))}}
	if err := Run(fakeTracer{img: img}, nil, &fakeExporter{err: errExport}); !errors.Is(err, errExport) {
		t.Errorf("got %v, want %v", err, errExport)
	}
}

func TestCollectorLabeled(t *testing.T) {
	var c Collector
	var sink DebugSink = &c
	sink.Segment("left", line(Pt(0, 0), Pt(1, 0)))
	sink.Segment("arc", line(Pt(1, 0), Pt(1, 1)))
	sink.Segment("left", line(Pt(1, 1), Pt(0, 1)))
	sink.Point("intersection", Pt(2, 2))
	diff(t, []CubicBez{line(Pt(0, 0), Pt(1, 0)), line(Pt(1, 1), Pt(0, 1))}, c.Labeled("left"))
	diff(t, []DebugPoint{{"intersection", Pt(2, 2)}}, c.Points)
	if got := c.Labeled("right"); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}
