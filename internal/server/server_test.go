package server_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourlab/internal/server"
	"github.com/katalvlaran/tourlab/planner"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ts := httptest.NewServer(server.New(0, logger, 0, 2).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, ts *httptest.Server, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(ts.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

const squareNodes = `[{"x":0,"y":0},{"x":10,"y":0},{"x":10,"y":10},{"x":0,"y":10}]`

func TestSolve(t *testing.T) {
	ts := newTestServer(t)
	resp := post(t, ts, "/api/solve", `{"nodes":`+squareNodes+`,"algorithm":"bfs"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var out planner.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, []int{0, 1, 2, 3}, out.Path)
	assert.Equal(t, 40.0, out.TotalLength)
	assert.Equal(t, "nearest-neighbor", string(out.Algorithm))
	assert.Equal(t, []string{"0", "1", "2", "3"}, out.Labels)
}

func TestSolve_BadRequests(t *testing.T) {
	ts := newTestServer(t)
	for name, body := range map[string]string{
		"malformed":   `{"nodes":`,
		"no nodes":    `{"nodes":[]}`,
		"unknown":     `{"nodes":` + squareNodes + `,"algorithm":"annealing"}`,
		"bad option":  `{"nodes":` + squareNodes + `,"params":{"eps":-1}}`,
		"bad polygon": `{"nodes":` + squareNodes + `,"obstacles":[[{"x":1,"y":1}]]}`,
	} {
		resp := post(t, ts, "/api/solve", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, name)

		var e map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&e), name)
		assert.NotEmpty(t, e["error"], name)
	}
}

func TestCompare(t *testing.T) {
	ts := newTestServer(t)
	resp := post(t, ts, "/api/compare", `{"nodes":`+squareNodes+`,"algorithms":["christofides","nn"]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out planner.CompareResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Reports, 2)
	for _, r := range out.Reports {
		assert.InDelta(t, 40.0, r.TotalLength, 1e-9)
		assert.Equal(t, 100.0, r.PathOptimalityPercent)
	}
}

func TestAlgorithms(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/algorithms")
	require.NoError(t, err)
	defer resp.Body.Close()

	var out struct {
		Algorithms []string `json:"algorithms"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, []string{"christofides", "genetic", "nearest-neighbor", "tpsma"}, out.Algorithms)

	resp2, err := http.Post(ts.URL+"/api/algorithms", "application/json", nil)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp2.StatusCode)
}

func TestValidate(t *testing.T) {
	ts := newTestServer(t)

	resp := post(t, ts, "/api/validate", `{"nodes":`+squareNodes+`}`)
	var ok struct {
		Valid  bool     `json:"valid"`
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ok))
	assert.True(t, ok.Valid)
	assert.Empty(t, ok.Errors)

	resp = post(t, ts, "/api/validate",
		`{"nodes":[{"x":0,"y":0}],"obstacles":[[{"x":0,"y":0}]],"parameters":{"algorithm":"x","penalty":"y"}}`)
	var bad struct {
		Valid  bool     `json:"valid"`
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&bad))
	assert.False(t, bad.Valid)
	assert.Len(t, bad.Errors, 3)
}
