// SPDX-License-Identifier: MIT

package matrix

// Matrix is a two-dimensional mutable array of float64 values with
// bounds-checked access. Dense is the only implementation in this module;
// the interface exists so consumers can accept read-only views in tests.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At returns the element at (i, j) or ErrOutOfRange.
	At(i, j int) (float64, error)

	// Set assigns v at (i, j) or returns ErrOutOfRange.
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}
