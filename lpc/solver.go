// SPDX-License-Identifier: EPL-2.0

package lpc

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Solver turns an autocorrelation sequence into order+1 synthesis filter
// coefficients. Index 0 is the feed-forward gain, indices 1..order are the
// feedback taps.
type Solver interface {
	Solve(coor []float64, order int) ([]float64, error)
}

// NewSolver returns the built-in solver named by kind.
func NewSolver(kind SolverKind) (Solver, error) {
	switch kind {
	case SolverRegression, "":
		return RegressionSolver{}, nil
	case SolverLevinson:
		return LevinsonSolver{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSolver, kind)
}

// Toeplitz builds the size x size symmetric matrix T[i][j] = coor[|i-j|].
func Toeplitz(coor []float64, size int) *mat.SymDense {
	t := mat.NewSymDense(size, nil)
	for i := range size {
		for j := i; j < size; j++ {
			t.SetSym(i, j, coor[j-i])
		}
	}
	return t
}

const defaultRCond = 1e-12

// RegressionSolver fits coor[1..order] by least squares against the rows of
// the autocorrelation Toeplitz matrix, with an intercept term.
//
// Observation k (0 <= k < order) has the features T[k][0..order-1] and the
// target coor[k+1]. With an intercept the system has one more unknown than
// equations; the minimum-norm solution is taken. The result is
// [intercept, slope_1, ..., slope_order].
//
// This is not the canonical LPC solution; use LevinsonSolver for that.
type RegressionSolver struct {
	// RCond is the relative singular value cutoff for the rank estimate.
	// Zero selects 1e-12.
	RCond float64
}

func (s RegressionSolver) Solve(coor []float64, order int) ([]float64, error) {
	if len(coor) < order+1 {
		return nil, ErrShortAutocorrelation
	}
	if coor[0] == 0 {
		return nil, ErrZeroEnergy
	}

	t := Toeplitz(coor, order)

	design := mat.NewDense(order, order+1, nil)
	for i := range order {
		design.Set(i, 0, 1)
		for j := range order {
			design.Set(i, j+1, t.At(i, j))
		}
	}

	target := mat.NewVecDense(order, nil)
	for i := range order {
		target.SetVec(i, coor[i+1])
	}

	var svd mat.SVD
	if !svd.Factorize(design, mat.SVDThin) {
		return nil, fmt.Errorf("%w: SVD did not converge", ErrSingular)
	}

	rcond := s.RCond
	if rcond <= 0 {
		rcond = defaultRCond
	}
	rank := svd.Rank(rcond)
	if rank == 0 {
		return nil, ErrSingular
	}

	beta := mat.NewVecDense(order+1, nil)
	svd.SolveVecTo(beta, target, rank)

	return finiteCoefficients(beta.RawVector().Data)
}

// LevinsonSolver is the classical Levinson-Durbin recursion on coor[0..order].
// It returns [1, a_1, ..., a_order] where x[n] is predicted as
// sum(a_k * x[n-k]).
type LevinsonSolver struct{}

func (LevinsonSolver) Solve(coor []float64, order int) ([]float64, error) {
	if len(coor) < order+1 {
		return nil, ErrShortAutocorrelation
	}
	if coor[0] <= 0 {
		return nil, ErrZeroEnergy
	}

	a := make([]float64, order+1)
	prev := make([]float64, order+1)
	energy := coor[0]

	for i := 1; i <= order; i++ {
		acc := coor[i]
		for j := 1; j < i; j++ {
			acc -= a[j] * coor[i-j]
		}
		k := acc / energy

		copy(prev, a)
		a[i] = k
		for j := 1; j < i; j++ {
			a[j] = prev[j] - k*prev[i-j]
		}

		energy *= 1 - k*k
		if energy <= 0 {
			// Perfectly predictable; higher taps stay zero.
			break
		}
	}
	a[0] = 1

	return finiteCoefficients(a)
}

func finiteCoefficients(c []float64) ([]float64, error) {
	out := make([]float64, len(c))
	for i, v := range c {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: coefficient %d is %v", ErrSingular, i, v)
		}
		out[i] = v
	}
	return out, nil
}

// passthrough returns coefficients for a filter that copies its input.
func passthrough(order int) []float64 {
	c := make([]float64, order+1)
	c[0] = 1
	return c
}
