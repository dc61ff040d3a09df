package centerline

import (
	"math"
)

const (
	// Distance between the samples of a run, along each segment's control
	// polygon.
	sampleSpacing = 1.0
	// Minimum number of samples taken from each segment of a run.
	minSamplesPerSegment = 4
)

// Approximate reduces the number of knots of a stroke path by replacing runs
// of consecutive segments with single cubics, as long as the replacement
// stays close to the original curve.
//
// Runs are grown greedily from the first knot. A run ends when extending it
// would fail to fit or, with cfg.PreserveCorners, would swallow a corner.
// A fit is accepted if no sample of the run is further than
// √cfg.ApproximationError from the fitted curve. Runs are sampled at a
// fixed density along their length, so the decision doesn't depend on how
// finely the input is segmented. Approximating the result again therefore
// doesn't merge runs that failed the first time.
//
// Merged segments keep the anchors and tangent directions at both ends of
// the run; only the handle lengths change. The width and opacity of merged
// anchors are set to the mean over the whole path.
//
// Fill paths are left unchanged. A nil cfg uses [DefaultConfig].
func Approximate(p *Path, cfg *Config) error {
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
	if len(p.Knots) < 3 {
		return nil
	}
	p.InferTangents()

	before := len(p.Knots)
	width, opacity := p.MeanWidth(), p.MeanOpacity()
	for one := 0; one < len(p.Knots)-2; one++ {
		best := one + 1
		var bestFit FitResult
		for end := one + 2; end < len(p.Knots); end++ {
			if cfg.PreserveCorners && p.IsCorner(end-1, cfg.CornerThreshold) {
				break
			}
			fit, ok := fitRun(p, one, end, cfg)
			if !ok {
				break
			}
			best, bestFit = end, fit
		}
		if best == one+1 {
			continue
		}

		first, last := p.Knots[one], p.Knots[best]
		first.Next = bestFit.Cubic.P1
		first.Width, first.Opacity = width, opacity
		last.Prev = bestFit.Cubic.P2
		last.Width, last.Opacity = width, opacity
		p.Splice(one, best+1, first, last)
		debugSegment(cfg.Debug, "approximated", bestFit.Cubic)
	}

	Logger().Debug("approximated path", "before", before, "after", len(p.Knots))
	return nil
}

// fitRun fits a single cubic to the segments between knots one and end.
func fitRun(p *Path, one, end int, cfg *Config) (FitResult, bool) {
	d0, ok := p.outDir(one).Unit(Epsilon)
	if !ok {
		return FitResult{}, false
	}
	d3, ok := p.inDir(end).Negate().Unit(Epsilon)
	if !ok {
		return FitResult{}, false
	}

	var pts []Point
	for i := one; i < end; i++ {
		c := p.Segment(i)
		n := max(minSamplesPerSegment, int(math.Ceil(c.MaxChord()/sampleSpacing)))
		for k := range n {
			pts = append(pts, c.Eval(float64(k)/float64(n)))
		}
	}
	pts = append(pts, p.Knots[end].Main)

	res := FitTangentLengths(FitRequest{
		P0:         p.Knots[one].Main,
		P3:         p.Knots[end].Main,
		D0:         d0,
		D3:         d3,
		Samples:    fitSamples(pts),
		Tolerance:  cfg.ApproximationError,
		Norm:       NormMax,
		Iterations: cfg.ApproximationIterations,
		Solver:     cfg.Solver,
	})
	if !res.OK {
		Logger().Debug("fit failed", "first", one, "last", end, "error", res.MaxErr)
	}
	return res, res.OK
}
