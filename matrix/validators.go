// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare returns ErrNilMatrix or ErrNonSquare when m cannot serve
// as a pairwise table.
func ValidateSquare(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}
	return nil
}

// ValidateSymmetric checks |m[i][j] - m[j][i]| ≤ tol for all i<j.
// Matching infinities are considered equal.
// Complexity: O(n²).
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	var (
		n     = m.Rows()
		i, j  int
		a, b  float64
		errAt error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if a, errAt = m.At(i, j); errAt != nil {
				return errAt
			}
			if b, errAt = m.At(j, i); errAt != nil {
				return errAt
			}
			if a == b {
				continue
			}
			if math.Abs(a-b) > tol || math.IsNaN(a-b) {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric(%d,%d)", i, j), ErrAsymmetry)
			}
		}
	}
	return nil
}

// ValidateDistance checks that m is a usable distance table: square,
// zero diagonal, no NaN, no negative entries. +Inf is allowed.
// Complexity: O(n²).
func ValidateDistance(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	var (
		n    = m.Rows()
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return err
			}
			switch {
			case math.IsNaN(v):
				return validatorErrorf(fmt.Sprintf("ValidateDistance(%d,%d)", i, j), ErrNaN)
			case v < 0:
				return validatorErrorf(fmt.Sprintf("ValidateDistance(%d,%d)", i, j), ErrNegative)
			case i == j && v != 0:
				return validatorErrorf(fmt.Sprintf("ValidateDistance(%d,%d)", i, j), ErrNonZeroDiagonal)
			}
		}
	}
	return nil
}
