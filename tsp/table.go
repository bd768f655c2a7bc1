package tsp

import (
	"math"

	"github.com/katalvlaran/tourlab/matrix"
)

// table is a flat row-major copy of a distance matrix. Solvers read it
// through at, which skips bounds checks.
type table struct {
	n int
	w []float64
}

// newTable validates m and copies it.
//
// Checks: square, n ≥ 1, zero diagonal, no NaN, no negative entries.
// +Inf is allowed off the diagonal.
//
// Complexity: O(n²).
func newTable(m matrix.Matrix) (*table, error) {
	if m == nil {
		return nil, ErrNoNodes
	}
	n := m.Rows()
	if n != m.Cols() {
		return nil, ErrNonSquare
	}
	if n == 0 {
		return nil, ErrNoNodes
	}

	t := &table{n: n, w: make([]float64, n*n)}
	if d, ok := m.(*matrix.Dense); ok {
		// fast path: one copy, then a scan
		for i, row := range d.ToRows() {
			copy(t.w[i*n:], row)
		}
	} else {
		var (
			i, j int
			v    float64
			err  error
		)
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if v, err = m.At(i, j); err != nil {
					return nil, err
				}
				t.w[i*n+j] = v
			}
		}
	}

	for idx, v := range t.w {
		switch {
		case math.IsNaN(v), v < 0:
			return nil, ErrBadDistance
		case idx/n == idx%n && v != 0:
			return nil, ErrBadDistance
		}
	}

	return t, nil
}

func (t *table) at(i, j int) float64 { return t.w[i*t.n+j] }
