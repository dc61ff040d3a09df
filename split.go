package centerline

import (
	"math"
)

// ChopSegment splits segment i at parameter t by inserting a new knot. The
// handles of the segment's two knots are shortened so that the two new
// segments retrace the old one exactly. Width and opacity of the new knot
// are interpolated, its color is taken from knot i.
//
// ChopSegment returns the index of the inserted knot.
func (p *Path) ChopSegment(i int, t float64) int {
	n := len(p.Knots)
	j := (i + 1) % n
	a, b := &p.Knots[i], &p.Knots[j]
	left, right := p.Segment(i).ChopAt(t)
	k := Knot{
		Main:    left.P3,
		Prev:    left.P2,
		Next:    right.P1,
		Width:   a.Width + (b.Width-a.Width)*t,
		Opacity: a.Opacity + (b.Opacity-a.Opacity)*t,
		Color:   a.Color,
	}
	a.Next = left.P1
	b.Prev = right.P2
	p.Splice(i+1, i+1, k)
	return i + 1
}

// ChopLine subdivides segments until no segment's control polygon is longer
// than maxLen. Non-positive lengths leave the path unchanged.
func (p *Path) ChopLine(maxLen float64) {
	if !(maxLen > 0) {
		return
	}
	for i := 0; i < p.NumSegments(); {
		l := p.Segment(i).MaxChord()
		if l <= maxLen {
			i++
			continue
		}
		pieces := math.Ceil(l / maxLen)
		p.ChopSegment(i, 1/pieces)
	}
}
