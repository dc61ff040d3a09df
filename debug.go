package centerline

// DebugSink receives intermediate geometry for visualization. Labels name
// the stage that produced the geometry, such as "left", "right", "arc" or
// "intersection".
type DebugSink interface {
	Segment(label string, c CubicBez)
	Point(label string, p Point)
}

// DebugSegment is a labeled segment recorded by a [Collector].
type DebugSegment struct {
	Label string
	Cubic CubicBez
}

// DebugPoint is a labeled point recorded by a [Collector].
type DebugPoint struct {
	Label string
	Point Point
}

// Collector is a DebugSink that records everything it receives. A nil
// *Collector discards everything.
type Collector struct {
	Segments []DebugSegment
	Points   []DebugPoint
}

var _ DebugSink = (*Collector)(nil)

func (c *Collector) Segment(label string, cb CubicBez) {
	if c == nil {
		return
	}
	c.Segments = append(c.Segments, DebugSegment{label, cb})
}

func (c *Collector) Point(label string, p Point) {
	if c == nil {
		return
	}
	c.Points = append(c.Points, DebugPoint{label, p})
}

// Labeled returns the segments recorded with the given label.
func (c *Collector) Labeled(label string) []CubicBez {
	if c == nil {
		return nil
	}
	var out []CubicBez
	for _, s := range c.Segments {
		if s.Label == label {
			out = append(out, s.Cubic)
		}
	}
	return out
}

func debugSegment(sink DebugSink, label string, c CubicBez) {
	if sink != nil {
		sink.Segment(label, c)
	}
}

func debugPoint(sink DebugSink, label string, p Point) {
	if sink != nil {
		sink.Point(label, p)
	}
}
