package tsp

// eulerianCircuit returns a closed walk over every edge of the undirected
// multigraph adj, starting and ending at start (Hierholzer).
//
// The walk extends a trail from the top of the stack along an unused edge
// until it gets stuck, then backtracks, emitting vertices; the emitted
// order is reversed at the end. adj is not modified.
//
// Contract: every vertex has even degree and the edges are connected.
// Complexity: O(E·Δ) with the linear reverse-edge removal, Δ = max degree.
func eulerianCircuit(adj [][]int, start int) []int {
	local := make([][]int, len(adj))
	var edges int
	for u := range adj {
		local[u] = append([]int(nil), adj[u]...)
		edges += len(adj[u])
	}

	var (
		circuit = make([]int, 0, edges/2+1)
		stack   = []int{start}
		u, v, i int
	)
	for len(stack) > 0 {
		u = stack[len(stack)-1]
		if len(local[u]) == 0 {
			circuit = append(circuit, u)
			stack = stack[:len(stack)-1]
			continue
		}

		v = local[u][len(local[u])-1]
		local[u] = local[u][:len(local[u])-1]
		for i = range local[v] {
			if local[v][i] == u {
				local[v] = append(local[v][:i], local[v][i+1:]...)
				break
			}
		}
		stack = append(stack, v)
	}

	for i, j := 0, len(circuit)-1; i < j; i, j = i+1, j-1 {
		circuit[i], circuit[j] = circuit[j], circuit[i]
	}

	return circuit
}

// shortcut keeps the first visit of every vertex in walk order, turning an
// Eulerian circuit into a Hamiltonian tour over 0..n-1.
func shortcut(circuit []int, n int) []int {
	var (
		seen = make([]bool, n)
		tour = make([]int, 0, n)
	)
	for _, v := range circuit {
		if !seen[v] {
			seen[v] = true
			tour = append(tour, v)
		}
	}
	return tour
}

// allEven reports whether every vertex of adj has even degree.
func allEven(adj [][]int) bool {
	for _, nbrs := range adj {
		if len(nbrs)%2 != 0 {
			return false
		}
	}
	return true
}
