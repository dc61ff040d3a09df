package centerline

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// SolverKind selects the numerical backend of a [LeastSquares] solver.
type SolverKind int

const (
	// SolverGauss inverts the normal equations with Gauss-Jordan elimination.
	SolverGauss SolverKind = iota
	// SolverCholesky factorizes the normal equations with gonum's Cholesky
	// decomposition.
	SolverCholesky
)

func (k SolverKind) String() string {
	switch k {
	case SolverGauss:
		return "gauss"
	case SolverCholesky:
		return "cholesky"
	default:
		return fmt.Sprintf("SolverKind(%d)", int(k))
	}
}

func (k SolverKind) MarshalText() ([]byte, error) {
	switch k {
	case SolverGauss, SolverCholesky:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("unknown solver kind %d", int(k))
	}
}

func (k *SolverKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "gauss":
		*k = SolverGauss
	case "cholesky":
		*k = SolverCholesky
	default:
		return fmt.Errorf("unknown solver %q", b)
	}
	return nil
}

// LeastSquares solves overdetermined linear systems in two unknowns,
// minimizing the sum of squared residuals.
//
// Equations are added one at a time as a·x₀ + b·x₁ = y. After a successful
// call to Solve, Error returns Σ(a·x₀ + b·x₁ − y)² over all added equations.
type LeastSquares interface {
	Add(a, b, y float64)
	// Solve returns false if the normal equations are singular.
	Solve() ([2]float64, bool)
	Error() float64
	// Reset discards all equations so the solver can be reused.
	Reset()
}

// NewLeastSquares returns a solver using the backend selected by kind.
func NewLeastSquares(kind SolverKind) LeastSquares {
	switch kind {
	case SolverGauss:
		return &gaussSolver{}
	case SolverCholesky:
		return &choleskySolver{}
	default:
		panic(fmt.Sprintf("invalid solver kind %d", int(kind)))
	}
}

// equations accumulates rows of the system and the entries of the normal
// equations AᵗA and Aᵗy.
type equations struct {
	rows [][3]float64

	aa, ab, bb float64
	ay, by     float64

	err float64
}

func (eq *equations) Add(a, b, y float64) {
	eq.rows = append(eq.rows, [3]float64{a, b, y})
	eq.aa += a * a
	eq.ab += a * b
	eq.bb += b * b
	eq.ay += a * y
	eq.by += b * y
}

func (eq *equations) Reset() {
	*eq = equations{rows: eq.rows[:0]}
}

func (eq *equations) Error() float64 {
	return eq.err
}

func (eq *equations) finish(x [2]float64) [2]float64 {
	var sum float64
	for _, r := range eq.rows {
		d := r[0]*x[0] + r[1]*x[1] - r[2]
		sum += d * d
	}
	eq.err = sum
	return x
}

type gaussSolver struct {
	equations
}

func (s *gaussSolver) Solve() ([2]float64, bool) {
	// Augmented matrix [AᵗA | I], reduced to [I | (AᵗA)⁻¹].
	m := [2][4]float64{
		{s.aa, s.ab, 1, 0},
		{s.ab, s.bb, 0, 1},
	}
	scale := math.Max(math.Abs(s.aa), math.Abs(s.bb))
	if scale == 0 {
		return [2]float64{}, false
	}
	for col := range 2 {
		pivot := col
		for row := col + 1; row < 2; row++ {
			if math.Abs(m[row][col]) > math.Abs(m[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(m[pivot][col]) <= 1e-12*scale {
			return [2]float64{}, false
		}
		m[col], m[pivot] = m[pivot], m[col]
		inv := 1 / m[col][col]
		for k := range m[col] {
			m[col][k] *= inv
		}
		for row := range 2 {
			if row == col {
				continue
			}
			f := m[row][col]
			for k := range m[row] {
				m[row][k] -= f * m[col][k]
			}
		}
	}
	x := [2]float64{
		m[0][2]*s.ay + m[0][3]*s.by,
		m[1][2]*s.ay + m[1][3]*s.by,
	}
	if !Vec(x[0], x[1]).IsFinite() {
		return [2]float64{}, false
	}
	return s.finish(x), true
}

type choleskySolver struct {
	equations
}

func (s *choleskySolver) Solve() ([2]float64, bool) {
	ata := mat.NewSymDense(2, []float64{
		s.aa, s.ab,
		s.ab, s.bb,
	})
	var chol mat.Cholesky
	if ok := chol.Factorize(ata); !ok {
		return [2]float64{}, false
	}
	var x mat.VecDense
	if err := chol.SolveVecTo(&x, mat.NewVecDense(2, []float64{s.ay, s.by})); err != nil {
		// Only returned for near-singular systems.
		return [2]float64{}, false
	}
	res := [2]float64{x.AtVec(0), x.AtVec(1)}
	if !Vec(res[0], res[1]).IsFinite() {
		return [2]float64{}, false
	}
	return s.finish(res), true
}
