// Package tsp - minimum-weight perfect matching on the odd-degree set.
//
// Two strategies:
//   - exactMatching: bitmask DP over subsets, always pairing the lowest
//     unmatched vertex. Optimal; O(k²·2^k) time, O(2^k) space, so it is
//     reserved for k ≤ ExactLimit.
//   - greedyMatching: take the first remaining vertex and pair it with its
//     nearest remaining partner. O(k²), no optimality guarantee, and with it
//     the 1.5 bound of Christofides no longer holds.
//
// Both return pairs of original vertex ids.
package tsp

import (
	"math"
	"math/bits"
)

type pair struct{ u, v int }

// greedyMatching pairs odd vertices nearest-first. len(odd) must be even.
//
// Complexity: O(k²).
func greedyMatching(odd []int, d DistanceFunc) []pair {
	var (
		remaining = append([]int(nil), odd...)
		out       = make([]pair, 0, len(odd)/2)
		u         int
		bestIdx   int
		bestD, w  float64
	)
	for len(remaining) > 1 {
		u, remaining = remaining[0], remaining[1:]

		bestIdx, bestD = 0, math.Inf(1)
		for i, v := range remaining {
			if w = d(u, v); w < bestD {
				bestIdx, bestD = i, w
			}
		}

		out = append(out, pair{u, remaining[bestIdx]})
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}
	return out
}

// exactMatching returns an optimal perfect matching of odd, or ok=false
// when every perfect matching uses a +Inf edge.
//
// Complexity: O(k²·2^k) time, O(2^k) space.
func exactMatching(odd []int, d DistanceFunc) (out []pair, ok bool) {
	k := len(odd)
	if k == 0 {
		return nil, true
	}

	var (
		full = 1<<k - 1
		cost = make([]float64, full+1)
		from = make([]int32, full+1)
		mask int
		i, j int
		nm   int
		c    float64
	)
	for mask = 1; mask <= full; mask++ {
		cost[mask] = math.Inf(1)
	}

	for mask = 0; mask < full; mask++ {
		if math.IsInf(cost[mask], 1) {
			continue
		}
		i = bits.TrailingZeros(uint(^mask)) // lowest unmatched vertex
		for j = i + 1; j < k; j++ {
			if mask&(1<<j) != 0 {
				continue
			}
			nm = mask | 1<<i | 1<<j
			if c = cost[mask] + d(odd[i], odd[j]); c < cost[nm] {
				cost[nm] = c
				from[nm] = int32(mask)
			}
		}
	}

	if math.IsInf(cost[full], 1) {
		return nil, false
	}

	out = make([]pair, 0, k/2)
	for mask = full; mask != 0; mask = int(from[mask]) {
		diff := mask ^ int(from[mask])
		i = bits.TrailingZeros(uint(diff))
		j = bits.TrailingZeros(uint(diff &^ (1 << i)))
		out = append(out, pair{odd[i], odd[j]})
	}

	return out, true
}
