// Package tsp - TPSMA pressure field.
//
// The network is a resistor graph: edge (i, j) has conductance
// c_ij = D_ij / L_ij, node 0 is held at pressure 1 and node n-1 at 0.
// Interior pressures satisfy Σ_j c_ij (P_i − P_j) = 0.
//
// Two solvers:
//   - relaxation: damped Jacobi sweeps P ← (1−α)·P + α·P̂ with
//     P̂_i = Σ c_ij P_j / Σ c_ij. Cheap, approximate, the default.
//   - direct: dense LU solve of the same Dirichlet system via gonum/mat.
//     Exact up to conditioning; falls back to relaxation when an interior
//     row has no usable conductance (singular system).
//
// Pairs whose distance is zero or non-finite contribute nothing.
package tsp

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

var errSingularPressure = errors.New("tsp: singular pressure system")

// usableLength reports whether L can serve as a resistance.
func usableLength(L float64) bool {
	return L > 0 && !math.IsInf(L, 0) && !math.IsNaN(L)
}

// pressureRelax runs sweeps damped Jacobi iterations. keep is the weight of
// the previous value (0.7 by default), so α = 1 − keep.
//
// Complexity: O(sweeps·n²).
func pressureRelax(D []float64, d DistanceFunc, n, sweeps int, keep float64) []float64 {
	P := make([]float64, n)
	P[0] = 1
	if n < 3 {
		return P
	}

	var (
		next     = make([]float64, n)
		s, i, j  int
		num, den float64
		L, c     float64
	)
	for s = 0; s < sweeps; s++ {
		copy(next, P)
		for i = 1; i < n-1; i++ {
			num, den = 0, 0
			for j = 0; j < n; j++ {
				if i == j {
					continue
				}
				if L = d(i, j); !usableLength(L) {
					continue
				}
				c = D[i*n+j] / L
				num += c * P[j]
				den += c
			}
			if den > 0 {
				next[i] = num / den
			}
		}
		for i = 1; i < n-1; i++ {
			P[i] = keep*P[i] + (1-keep)*next[i]
		}
	}

	return P
}

// pressureDirect solves the Dirichlet system exactly.
// An ill-conditioned but solvable system is accepted (mat.Condition is a
// warning); a zero interior row yields errSingularPressure.
//
// Complexity: O(n³).
func pressureDirect(D []float64, d DistanceFunc, n int) ([]float64, error) {
	var (
		A    = mat.NewDense(n, n, nil)
		b    = mat.NewVecDense(n, nil)
		i, j int
		sum  float64
		L, c float64
	)
	A.Set(0, 0, 1)
	b.SetVec(0, 1)
	A.Set(n-1, n-1, 1)

	for i = 1; i < n-1; i++ {
		sum = 0
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if L = d(i, j); !usableLength(L) {
				continue
			}
			c = D[i*n+j] / L
			A.Set(i, j, -c)
			sum += c
		}
		if sum == 0 {
			return nil, errSingularPressure
		}
		A.Set(i, i, sum)
	}

	var x mat.VecDense
	if err := x.SolveVec(A, b); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, err
		}
	}

	P := make([]float64, n)
	for i = 0; i < n; i++ {
		if P[i] = x.AtVec(i); math.IsNaN(P[i]) || math.IsInf(P[i], 0) {
			return nil, errSingularPressure
		}
	}

	return P, nil
}

// pressureField dispatches on the configured solver and reports which one
// actually produced the field.
func pressureField(D []float64, d DistanceFunc, n int, t TPSMAOptions) ([]float64, PressureSolver) {
	if t.Pressure == PressureDirect && n >= 2 {
		if P, err := pressureDirect(D, d, n); err == nil {
			return P, PressureDirect
		}
	}
	return pressureRelax(D, d, n, t.Sweeps, t.Damping), PressureRelaxation
}
