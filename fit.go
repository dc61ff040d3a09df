package centerline

import (
	"math"
)

// Sample is a point that a fitted curve should pass through, together with
// the parameter at which it is expected.
type Sample struct {
	Point
	T float64
}

// FitRequest describes a single cubic to fit. The anchors and the directions
// of both handles are fixed; only the handle lengths are solved for.
type FitRequest struct {
	P0, P3 Point
	// Unit direction of the handle at P0, pointing into the curve.
	D0 Vec2
	// Unit direction of the handle at P3, pointing from P3 towards P2.
	D3 Vec2

	// Points the curve should approximate. Parameters must be monotonic and
	// are usually computed with [ChordParams].
	Samples []Sample

	// The fit succeeds once the error, as measured by Norm, drops below
	// Tolerance.
	Tolerance float64
	Norm      ErrorNorm
	// Maximum number of solve and reparametrize rounds.
	Iterations int
	Solver     SolverKind
}

// ErrorNorm selects how the residuals of a fit are combined into a single
// error.
type ErrorNorm uint8

const (
	// NormSum is the sum of squared residuals.
	NormSum ErrorNorm = iota
	// NormMax is the largest squared residual. Unlike NormSum it doesn't grow
	// with the number of samples, so it judges a curve the same however
	// densely it is sampled.
	NormMax
)

type FitResult struct {
	Cubic CubicBez
	// Handle lengths along D0 and D3.
	Len0, Len1 float64
	// Sum of squared residuals of Cubic against the samples.
	Err float64
	// Largest squared residual.
	MaxErr float64
	// OK reports whether the error selected by the request's norm is below
	// the requested tolerance.
	OK bool
}

func (res FitResult) measure(norm ErrorNorm) float64 {
	if norm == NormMax {
		return res.MaxErr
	}
	return res.Err
}

// FitTangentLengths fits a cubic to the samples by solving for the handle
// lengths with linear least squares, then moving each sample's parameter
// towards the closest point on the fitted curve and repeating.
//
// It always terminates after at most req.Iterations rounds. If no round meets
// the tolerance, the best curve seen is returned with OK set to false; the
// caller is expected to split the input and try again. Negative handle
// lengths are reported as failure, too.
func FitTangentLengths(req FitRequest) FitResult {
	iters := max(req.Iterations, 1)
	ts := make([]float64, len(req.Samples))
	for i, s := range req.Samples {
		ts[i] = s.T
	}

	chord := 0.0
	prev := req.P0
	for _, s := range req.Samples {
		chord += prev.Distance(s.Point)
		prev = s.Point
	}
	chord += prev.Distance(req.P3)

	best := FitResult{
		Cubic:  CubicBez{req.P0, req.P0, req.P3, req.P3},
		Err:    math.Inf(1),
		MaxErr: math.Inf(1),
	}
	ls := NewLeastSquares(req.Solver)
	for iter := 0; ; iter++ {
		ls.Reset()
		for i, s := range req.Samples {
			t := ts[i]
			mt := 1 - t
			b0 := mt * mt * mt
			b1 := 3 * mt * mt * t
			b2 := 3 * mt * t * t
			b3 := t * t * t
			// B(t) = (b0+b1)·P0 + (b2+b3)·P3 + len0·b1·D0 + len1·b2·D3
			fixed := Vec2(req.P0).Mul(b0 + b1).Add(Vec2(req.P3).Mul(b2 + b3))
			ls.Add(b1*req.D0.X, b2*req.D3.X, s.X-fixed.X)
			ls.Add(b1*req.D0.Y, b2*req.D3.Y, s.Y-fixed.Y)
		}
		x, ok := ls.Solve()
		if !ok {
			return best
		}
		res := FitResult{
			Cubic: CubicBez{
				P0: req.P0,
				P1: req.P0.Translate(req.D0.Mul(x[0])),
				P2: req.P3.Translate(req.D3.Mul(x[1])),
				P3: req.P3,
			},
			Len0: x[0],
			Len1: x[1],
			Err:  ls.Error(),
		}
		for i, s := range req.Samples {
			res.MaxErr = max(res.MaxErr, s.Point.DistanceSquared(res.Cubic.Eval(ts[i])))
		}
		if x[0] < 0 || x[1] < 0 {
			if math.IsInf(best.Err, 1) {
				return res
			}
			return best
		}
		if res.measure(req.Norm) < best.measure(req.Norm) {
			best = res
		}
		if res.measure(req.Norm) < req.Tolerance {
			res.OK = true
			return res
		}
		if iter+1 >= iters || chord == 0 {
			return best
		}

		for i, s := range req.Samples {
			t := ts[i]
			r := s.Point.Sub(res.Cubic.Eval(t))
			tan, ok := res.Cubic.Tangent(t).Unit(1e-12)
			if !ok {
				continue
			}
			ts[i] = min(max(t+r.Dot(tan)/chord, 0), 1)
		}
	}
}

// ChordParams returns, for each point, its cumulative distance along the
// polyline through pts, normalized to [0, 1]. If the polyline has zero
// length, parameters are spread uniformly.
func ChordParams(pts []Point) []float64 {
	out := make([]float64, len(pts))
	if len(pts) < 2 {
		return out
	}
	for i := 1; i < len(pts); i++ {
		out[i] = out[i-1] + pts[i-1].Distance(pts[i])
	}
	total := out[len(out)-1]
	for i := range out {
		if total > 0 {
			out[i] /= total
		} else {
			out[i] = float64(i) / float64(len(out)-1)
		}
	}
	return out
}

// fitSamples pairs points with their chord parameters.
func fitSamples(pts []Point) []Sample {
	ts := ChordParams(pts)
	out := make([]Sample, len(pts))
	for i, pt := range pts {
		out[i] = Sample{pt, ts[i]}
	}
	return out
}
