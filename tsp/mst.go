package tsp

import "math"

// primMST computes a minimum spanning tree of the complete graph over d,
// rooted at vertex 0, with the O(n²) array scan (no heap: the graph is dense).
//
// It returns the tree as adjacency lists. A vertex whose every connection
// is +Inf cannot be attached and yields ErrIncompleteGraph.
//
// Complexity: O(n²) time, O(n) extra space.
func primMST(d DistanceFunc, n int) ([][]int, error) {
	var (
		inTree   = make([]bool, n)
		bestCost = make([]float64, n)
		parent   = make([]int, n)
		adj      = make([][]int, n)
		it, v, u int
		minW, w  float64
	)
	for v = 0; v < n; v++ {
		bestCost[v] = math.Inf(1)
		parent[v] = -1
	}
	bestCost[0] = 0

	for it = 0; it < n; it++ {
		u, minW = -1, math.Inf(1)
		for v = 0; v < n; v++ {
			if !inTree[v] && bestCost[v] < minW {
				u, minW = v, bestCost[v]
			}
		}
		if u < 0 {
			return nil, ErrIncompleteGraph
		}

		inTree[u] = true
		if p := parent[u]; p >= 0 {
			adj[u] = append(adj[u], p)
			adj[p] = append(adj[p], u)
		}

		for v = 0; v < n; v++ {
			if inTree[v] {
				continue
			}
			if w = d(u, v); w < bestCost[v] {
				bestCost[v] = w
				parent[v] = u
			}
		}
	}

	return adj, nil
}

// oddVertices lists, in ascending order, the vertices of odd degree.
func oddVertices(adj [][]int) []int {
	var odd []int
	for v, nbrs := range adj {
		if len(nbrs)%2 == 1 {
			odd = append(odd, v)
		}
	}
	return odd
}

// edgeCount returns the number of undirected edges in adj.
func edgeCount(adj [][]int) int {
	var deg int
	for _, nbrs := range adj {
		deg += len(nbrs)
	}
	return deg / 2
}
