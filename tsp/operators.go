// Package tsp - permutation operators for randomized search.
//
// Every operator draws its randomness from the supplied Random, in a fixed
// order, so a given generator state always produces the same result.
package tsp

// Shuffle permutes a in place (Fisher–Yates, j = floor(Next()·(i+1))).
// Complexity: O(len(a)).
func Shuffle(a []int, r Random) {
	for i := len(a) - 1; i > 0; i-- {
		j := int(r.Next() * float64(i+1))
		a[i], a[j] = a[j], a[i]
	}
}

// RandomTour returns a shuffled permutation of 0..n-1.
func RandomTour(n int, r Random) []int {
	t := Identity(n)
	Shuffle(t, r)
	return t
}

// OrderCrossover (OX) builds a child from two parent permutations.
//
// Two cut points a ≤ b are drawn with NextInt(n). child[a..b] is copied
// from parent1 verbatim; the remaining positions are filled, starting at
// b+1 and wrapping, with parent2's cities in parent2's order (also read
// from b+1, wrapping), skipping those already placed.
//
// Contract: len(parent1) == len(parent2) and both are permutations of the
// same set; the child is then a permutation of that set.
// Complexity: O(n).
func OrderCrossover(parent1, parent2 []int, r Random) []int {
	n := len(parent1)
	child := make([]int, n)
	if n == 0 {
		return child
	}

	a, b := r.NextInt(n), r.NextInt(n)
	if a > b {
		a, b = b, a
	}

	var (
		filled = make([]bool, n)
		used   = make(map[int]bool, b-a+1)
		i, pos int
	)
	for i = a; i <= b; i++ {
		child[i] = parent1[i]
		filled[i] = true
		used[parent1[i]] = true
	}

	pos = (b + 1) % n
	for i = 0; i < n; i++ {
		city := parent2[(b+1+i)%n]
		if used[city] {
			continue
		}
		for filled[pos] {
			pos = (pos + 1) % n
		}
		child[pos] = city
		filled[pos] = true
		used[city] = true
	}

	return child
}

// SwapMutation exchanges two positions drawn with NextInt(n), in place.
// The two draws may coincide, in which case the individual is unchanged.
func SwapMutation(individual []int, r Random) {
	n := len(individual)
	if n < 2 {
		return
	}
	i, j := r.NextInt(n), r.NextInt(n)
	individual[i], individual[j] = individual[j], individual[i]
}

// TournamentSelection samples k indices with NextInt(len(population)) and
// returns a copy of the sampled individual with the lowest length.
// Ties keep the earliest sample. k < 1 is treated as 1.
func TournamentSelection(population [][]int, lengths []float64, k int, r Random) []int {
	best := r.NextInt(len(population))
	for s := 1; s < k; s++ {
		cand := r.NextInt(len(population))
		if lengths[cand] < lengths[best] {
			best = cand
		}
	}
	return append([]int(nil), population[best]...)
}
