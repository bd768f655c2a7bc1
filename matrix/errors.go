// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Every message carries the "matrix: " prefix. Callers match with errors.Is;
// context is added with fmt.Errorf("...: %w", ErrX) at the call site.
var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates a nil Matrix argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrRaggedRows signals rows of unequal length in FromRows.
	ErrRaggedRows = errors.New("matrix: rows have unequal length")

	// ErrAsymmetry signals |a[i][j] - a[j][i]| > tol for some pair.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNonZeroDiagonal signals a diagonal entry that is not zero.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrNaN signals a NaN entry.
	ErrNaN = errors.New("matrix: NaN encountered")

	// ErrNegative signals a negative distance.
	ErrNegative = errors.New("matrix: negative entry")
)
