// Package tsp - 3-opt local search.
//
// Design:
//   - The tour is viewed closed, cur = t + t[0]. Cuts 1 ≤ i < j < k ≤ n-1
//     split it into P = cur[:i], S1 = cur[i:j], S2 = cur[j:k], S3 = cur[k:n].
//   - Seven reconnections P + X + Y + S3, X and Y drawn from
//     {S1, rev(S1), S2, rev(S2)}, are scored on their boundary edges only:
//     Δ = (a→first(X)) + (last(X)→first(Y)) + (last(Y)→f) − [(a,b)+(c,d)+(e,f)]
//     with a=cur[i-1], b=cur[i], c=cur[j-1], d=cur[j], e=cur[k-1], f=cur[k].
//     Interior edges cancel by symmetry.
//   - First improvement: the first move with Δ < -Eps is applied and the
//     scan restarts. Moves introducing a +Inf edge are never taken.
//   - Stops at a local optimum or after TwoOptMaxPasses accepted moves.
//
// Contracts:
//   - Never increases TourLength; t[0] stays first.
//   - Returns a new slice; the input tour is not modified.
//
// Complexity: O(moves·n³) time, O(n) extra space.
package tsp

import (
	"context"
	"fmt"
	"math"
)

// segKind enumerates the segment variants of a reconnection.
type segKind uint8

const (
	segS1  segKind = iota // S1 forward
	segS1R                // S1 reversed
	segS2                 // S2 forward
	segS2R                // S2 reversed
)

// The seven non-identity reconnections (X, Y).
var (
	threeOptX = [...]segKind{segS1R, segS1, segS2R, segS1R, segS2, segS2R, segS2}
	threeOptY = [...]segKind{segS2, segS2R, segS1R, segS2R, segS1R, segS1, segS1}
)

// ThreeOpt improves tour under d and returns the improved copy with its
// length. Tours with fewer than four nodes are returned unchanged.
//
// Errors: ErrCancelled (wrapping ctx.Err()) when ctx ends between moves.
func ThreeOpt(ctx context.Context, tour []int, d DistanceFunc, opts Options) ([]int, float64, error) {
	opts = opts.withDefaults()
	t, _, err := threeOpt(ctx, tour, d, opts.TwoOptMaxPasses, opts.Eps)
	if err != nil {
		return nil, 0, err
	}
	return t, TourLength(t, d), nil
}

// threeOpt is the worker behind ThreeOpt; it also reports accepted moves.
func threeOpt(ctx context.Context, tour []int, d DistanceFunc, maxMoves int, eps float64) ([]int, int, error) {
	n := len(tour)
	if n < 4 {
		return append([]int(nil), tour...), 0, nil
	}

	var (
		cur   = make([]int, n+1)
		buf   = make([]int, 0, n)
		moves int
	)
	copy(cur, tour)
	cur[n] = tour[0]

	for moves < maxMoves {
		if err := ctx.Err(); err != nil {
			return nil, moves, fmt.Errorf("three-opt move %d: %w: %w", moves, ErrCancelled, err)
		}
		if !threeOptMove(cur, buf, n, d, eps) {
			break
		}
		moves++
	}

	return append([]int(nil), cur[:n]...), moves, nil
}

// threeOptMove applies the first improving reconnection, reporting whether
// one was found.
func threeOptMove(cur, buf []int, n int, d DistanceFunc, eps float64) bool {
	var (
		i, j, k, m       int
		a, b, c, e, f, g int
		xf, xl, yf, yl   int
		w1, w2, w3       float64
		removed          float64
	)
	for i = 1; i <= n-3; i++ {
		for j = i + 1; j <= n-2; j++ {
			for k = j + 1; k <= n-1; k++ {
				a, b = cur[i-1], cur[i]
				c, e = cur[j-1], cur[j]
				f, g = cur[k-1], cur[k]
				removed = d(a, b) + d(c, e) + d(f, g)

				for m = 0; m < len(threeOptX); m++ {
					xf, xl = segEnds(threeOptX[m], b, c, e, f)
					yf, yl = segEnds(threeOptY[m], b, c, e, f)

					w1, w2, w3 = d(a, xf), d(xl, yf), d(yl, g)
					if math.IsInf(w1, 1) || math.IsInf(w2, 1) || math.IsInf(w3, 1) {
						continue
					}
					if (w1+w2+w3)-removed < -eps {
						reconnect(cur, buf, i, j, k, threeOptX[m], threeOptY[m])
						return true
					}
				}
			}
		}
	}
	return false
}

// segEnds maps a segment kind to its first and last vertex, given
// S1 = b..c and S2 = e..f.
func segEnds(kind segKind, b, c, e, f int) (first, last int) {
	switch kind {
	case segS1:
		return b, c
	case segS1R:
		return c, b
	case segS2:
		return e, f
	default:
		return f, e
	}
}

// reconnect rewrites cur[i:k] as X + Y; P and S3 stay in place.
func reconnect(cur, buf []int, i, j, k int, x, y segKind) {
	buf = appendSeg(buf[:0], cur, i, j, k, x)
	buf = appendSeg(buf, cur, i, j, k, y)
	copy(cur[i:k], buf)
}

func appendSeg(dst, cur []int, i, j, k int, kind segKind) []int {
	lo, hi := i, j
	if kind == segS2 || kind == segS2R {
		lo, hi = j, k
	}
	if kind == segS1 || kind == segS2 {
		return append(dst, cur[lo:hi]...)
	}
	for p := hi - 1; p >= lo; p-- {
		dst = append(dst, cur[p])
	}
	return dst
}
