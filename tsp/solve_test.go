package tsp_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourlab/matrix"
	"github.com/katalvlaran/tourlab/tsp"
)

func TestSolve_NoNodes(t *testing.T) {
	for _, algo := range allAlgorithms {
		_, err := tsp.SolveWithMatrix(context.Background(), algo, nil, tsp.DefaultOptions())
		assert.ErrorIs(t, err, tsp.ErrNoNodes, algo)
	}
}

func TestSolve_TrivialSizes(t *testing.T) {
	one := euclid(t, [][2]float64{{5, 5}})
	two := euclid(t, [][2]float64{{0, 0}, {3, 4}})
	for _, algo := range allAlgorithms {
		res, err := tsp.SolveWithMatrix(context.Background(), algo, one, tsp.DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, []int{0}, res.Path)
		assert.Equal(t, 0.0, res.TotalLength)

		res, err = tsp.SolveWithMatrix(context.Background(), algo, two, tsp.DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1}, res.Path)
		assert.Equal(t, 5.0, res.TotalLength, "no closing edge for n=2")
		assert.Equal(t, algo, res.Algorithm)
	}
}

func TestSolve_TwoNodesUnreachable(t *testing.T) {
	m, _ := matrix.FromRows([][]float64{{0, math.Inf(1)}, {math.Inf(1), 0}})
	res, err := tsp.SolveWithMatrix(context.Background(), tsp.Genetic, m, tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Path)
	assert.True(t, res.Details.Partial)
	assert.Equal(t, []int{1}, res.Details.Unreachable)
}

func TestSolve_SquarePerimeter(t *testing.T) {
	m := euclid(t, unitSquare)
	for _, algo := range allAlgorithms {
		res, err := tsp.SolveWithMatrix(context.Background(), algo, m, tsp.DefaultOptions())
		require.NoError(t, err, algo)
		assert.NoError(t, tsp.ValidatePermutation(res.Path, 4), algo)
		assert.GreaterOrEqual(t, res.TotalLength, 40.0, algo)
		assert.GreaterOrEqual(t, res.TimeMs, 0.0)
	}

	res, err := tsp.SolveWithMatrix(context.Background(), tsp.NearestNeighbor, m, tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 40.0, res.TotalLength)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Path)
	assert.Equal(t, "nearest-neighbor", res.Details.Algorithm)
}

func TestSolve_PermutationInvariant(t *testing.T) {
	ctx := context.Background()
	for _, n := range []int{3, 5, 8, 13} {
		m := euclid(t, randomPoints(n, int64(n)*7))
		d := distFunc(t, m)
		for _, algo := range allAlgorithms {
			res, err := tsp.SolveWithMatrix(ctx, algo, m, tsp.DefaultOptions())
			require.NoError(t, err)
			assert.NoError(t, tsp.ValidatePermutation(res.Path, n), "%s n=%d", algo, n)
			assert.False(t, res.Details.Fallback, "%s n=%d", algo, n)
			assert.InDelta(t, tsp.TourLength(res.Path, d), res.TotalLength, 1e-6)
			assert.GreaterOrEqual(t, res.TotalLength, 0.0)
		}
	}
}

func TestSolve_NearestNeighborIdempotent(t *testing.T) {
	m := euclid(t, randomPoints(25, 3))
	first, err := tsp.SolveWithMatrix(context.Background(), tsp.NearestNeighbor, m, tsp.DefaultOptions())
	require.NoError(t, err)
	Repeat(t, 5, func() {
		again, err := tsp.SolveWithMatrix(context.Background(), tsp.NearestNeighbor, m, tsp.DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, first.Path, again.Path)
		assert.Equal(t, first.TotalLength, again.TotalLength)
	})
}

func TestSolve_SeededReproducibility(t *testing.T) {
	m := euclid(t, sixNodes)
	opts := tsp.DefaultOptions()
	opts.Seed = 12345
	for _, algo := range []tsp.Algorithm{tsp.Genetic, tsp.TPSMA} {
		first, err := tsp.SolveWithMatrix(context.Background(), algo, m, opts)
		require.NoError(t, err)
		Repeat(t, 3, func() {
			again, err := tsp.SolveWithMatrix(context.Background(), algo, m, opts)
			require.NoError(t, err)
			assert.Equal(t, first.Path, again.Path, algo)
			assert.Equal(t, first.TotalLength, again.TotalLength, algo)
			assert.Equal(t, first.Iterations, again.Iterations, algo)
			assert.Equal(t, *first.InitialLength, *again.InitialLength, algo)
		})
	}
}

func TestSolve_GeneticDiagnostics(t *testing.T) {
	m := euclid(t, sixNodes)
	res, err := tsp.SolveWithMatrix(context.Background(), tsp.Genetic, m, tsp.DefaultOptions())
	require.NoError(t, err)

	det := res.Details
	assert.Equal(t, tsp.MinPopulationSize, det.PopulationSize)
	assert.Equal(t, 5, det.EliteSize)
	assert.LessOrEqual(t, det.Generations, 120)
	assert.Equal(t, det.Generations, res.Iterations)
	assert.InDelta(t, 1/(1+res.TotalLength), det.BestFitness, 1e-9)
	require.NotNil(t, res.InitialLength)
	assert.GreaterOrEqual(t, *res.InitialLength, res.TotalLength)
}

func TestSolve_TPSMADiagnostics(t *testing.T) {
	m := euclid(t, sixNodes)
	for _, p := range []tsp.PressureSolver{tsp.PressureRelaxation, tsp.PressureDirect} {
		opts := tsp.DefaultOptions()
		opts.TPSMA.Pressure = p
		res, err := tsp.SolveWithMatrix(context.Background(), tsp.TPSMA, m, opts)
		require.NoError(t, err)

		det := res.Details
		assert.Equal(t, string(p), det.PressureSolver)
		assert.Equal(t, 3, det.SeedsRun)
		assert.GreaterOrEqual(t, det.Seed, int64(12345))
		require.Len(t, det.ExtractionStarts, 2)
		s := int(det.Seed - tsp.DefaultSeed)
		assert.ElementsMatch(t, []int{s % 6, (s + 3) % 6}, det.ExtractionStarts)
		assert.Equal(t, det.ExtractionStarts[0], res.Path[0])
		assert.Greater(t, det.NetworkDensity, 0.0)
		assert.LessOrEqual(t, det.NetworkDensity, 1.0)
		assert.LessOrEqual(t, res.Iterations, tsp.DefaultTPSMAMaxIterations)
		require.NotNil(t, res.InitialLength)
	}
}

func TestSolve_ChristofidesSquare(t *testing.T) {
	res, err := tsp.SolveWithMatrix(context.Background(), tsp.Christofides, euclid(t, unitSquare), tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 40.0, res.TotalLength)
	assert.Equal(t, []int{0, 3, 2, 1}, res.Path)

	det := res.Details
	assert.Equal(t, 3, det.MSTEdges)
	assert.Equal(t, 2, det.OddVertices)
	assert.Equal(t, 1, det.MatchingEdges)
	assert.Equal(t, "exact", det.Matching)
	assert.True(t, det.EvenDegree)
	require.NotNil(t, det.ApproximationRatio)
	assert.Equal(t, 1.5, *det.ApproximationRatio)
	assert.Nil(t, res.InitialLength)
}

func TestSolve_ChristofidesGreedyHasNoRatio(t *testing.T) {
	opts := tsp.DefaultOptions()
	opts.Christofides.Matching = tsp.MatchingGreedy
	res, err := tsp.SolveWithMatrix(context.Background(), tsp.Christofides, euclid(t, randomPoints(5, 11)), opts)
	require.NoError(t, err)
	assert.Equal(t, "greedy", res.Details.Matching)
	assert.Nil(t, res.Details.ApproximationRatio)
	assert.True(t, res.Details.EvenDegree)
	assert.NoError(t, tsp.ValidatePermutation(res.Path, 5))
}

func TestSolve_UnreachableNode(t *testing.T) {
	m := withUnreachable(t, euclid(t, sixNodes), 4)

	nn, err := tsp.SolveWithMatrix(context.Background(), tsp.NearestNeighbor, m, tsp.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, nn.Details.Partial)
	assert.Equal(t, []int{4}, nn.Details.Unreachable)
	assert.Len(t, nn.Path, 5)
	assert.False(t, math.IsInf(nn.TotalLength, 0))

	for _, algo := range []tsp.Algorithm{tsp.TPSMA, tsp.Genetic, tsp.Christofides} {
		res, err := tsp.SolveWithMatrix(context.Background(), algo, m, tsp.DefaultOptions())
		require.NoError(t, err, algo)
		assert.True(t, res.Details.Fallback, algo)
		assert.Equal(t, string(algo)+" (fallback: nearest-neighbor)", res.Details.Algorithm)
		assert.NotEmpty(t, res.Details.Error)
		assert.Equal(t, algo, res.Algorithm)
		assert.Equal(t, nn.Path, res.Path)
		assert.False(t, math.IsInf(res.TotalLength, 0))
	}
}

func TestSolve_Polish(t *testing.T) {
	m := euclid(t, randomPoints(12, 8))
	plain, err := tsp.SolveWithMatrix(context.Background(), tsp.Christofides, m, tsp.DefaultOptions())
	require.NoError(t, err)

	opts := tsp.DefaultOptions()
	opts.PolishTwoOpt = true
	polished, err := tsp.SolveWithMatrix(context.Background(), tsp.Christofides, m, opts)
	require.NoError(t, err)
	assert.True(t, polished.Details.Polished)
	assert.LessOrEqual(t, polished.TotalLength, plain.TotalLength+1e-9)
}

func TestSolve_InvalidInput(t *testing.T) {
	m := euclid(t, unitSquare)
	_, err := tsp.SolveWithMatrix(context.Background(), tsp.Algorithm("dijkstra"), m, tsp.DefaultOptions())
	assert.ErrorIs(t, err, tsp.ErrUnsupportedAlgorithm)

	opts := tsp.DefaultOptions()
	opts.Genetic.MutationRate = 2
	_, err = tsp.SolveWithMatrix(context.Background(), tsp.Genetic, m, opts)
	assert.ErrorIs(t, err, tsp.ErrInvalidOptions)

	opts = tsp.DefaultOptions()
	opts.TPSMA.Pressure = "spectral"
	assert.ErrorIs(t, opts.Validate(), tsp.ErrInvalidOptions)
}

func TestSolve_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := euclid(t, sixNodes)
	for _, algo := range allAlgorithms {
		_, err := tsp.SolveWithMatrix(ctx, algo, m, tsp.DefaultOptions())
		assert.ErrorIs(t, err, tsp.ErrCancelled, algo)
		assert.ErrorIs(t, err, context.Canceled, algo)
	}
}

func TestParseAlgorithm(t *testing.T) {
	for in, want := range map[string]tsp.Algorithm{
		"bfs": tsp.NearestNeighbor, "GA": tsp.Genetic, " tpsma ": tsp.TPSMA, "christofides": tsp.Christofides,
	} {
		got, err := tsp.ParseAlgorithm(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := tsp.ParseAlgorithm("lin-kernighan")
	assert.ErrorIs(t, err, tsp.ErrUnsupportedAlgorithm)
	assert.Equal(t, []tsp.Algorithm{tsp.Christofides, tsp.Genetic, tsp.NearestNeighbor, tsp.TPSMA}, tsp.Algorithms())
}
