package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourlab/planner"
	"github.com/katalvlaran/tourlab/scenario"
	"github.com/katalvlaran/tourlab/tsp"
)

const squareYAML = `
nodes:
  - {x: 0, y: 0, label: depot}
  - {x: 10, y: 0}
  - {x: 10, y: 10}
  - {x: 0, y: 10}
parameters:
  algorithm: genetic
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestSolveCommand_FlagsOverrideScenario(t *testing.T) {
	path := writeFile(t, "square.yaml", squareYAML)

	var out bytes.Buffer
	cmd := solveCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path, "-a", "christofides", "-o", "json"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	var resp planner.Response
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, tsp.Christofides, resp.Algorithm)
	assert.InDelta(t, 40.0, resp.TotalLength, 1e-9)
	assert.Equal(t, []string{"depot", "1", "2", "3"}, resp.Labels)
}

func TestSolveCommand_Table(t *testing.T) {
	path := writeFile(t, "square.json",
		`{"nodes":[{"x":0,"y":0,"label":"depot"},{"x":10,"y":0},{"x":10,"y":10},{"x":0,"y":10}]}`)

	var out bytes.Buffer
	cmd := solveCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path, "-o", "table"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	text := out.String()
	assert.Contains(t, text, "Algorithm:   nearest-neighbor")
	assert.Contains(t, text, "Length:      40.00")
	assert.Contains(t, text, "depot → 1 → 2 → 3")
}

func TestCompareCommand_Export(t *testing.T) {
	path := writeFile(t, "square.yaml", squareYAML)
	export := filepath.Join(t.TempDir(), "out.json")

	var out bytes.Buffer
	cmd := compareCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path, "-a", "nn,christofides", "-e", export, "-o", "json", "-w", "2"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	var resp planner.CompareResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	require.Len(t, resp.Reports, 2)

	sc, err := scenario.Load(export)
	require.NoError(t, err)
	assert.Len(t, sc.Nodes, 4)
	raw, err := os.ReadFile(export)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"hasResults": true`)
}

func TestValidateCommand(t *testing.T) {
	good := writeFile(t, "good.yaml", squareYAML)
	var out bytes.Buffer
	require.NoError(t, runValidate(&out, good))
	assert.Equal(t, "Result: VALID (4 nodes, 0 obstacles)\n", out.String())

	bad := writeFile(t, "bad.json",
		`{"nodes":[{"x":0,"y":0}],"obstacles":[[{"x":0,"y":0},{"x":1,"y":0}]],"parameters":{"algorithm":"nope"}}`)
	out.Reset()
	assert.ErrorIs(t, runValidate(&out, bad), errInvalidScenario)
	assert.Contains(t, out.String(), "ERRORS (2):")
	assert.Contains(t, out.String(), "Result: INVALID (2 errors)")
}

func TestWriteTable_WideCells(t *testing.T) {
	var out bytes.Buffer
	writeTable(&out, [][]string{
		{"a", "東京", "1"},
		{"bb", "x", "22"},
	})
	assert.Equal(t, "a   東京   1\n--  ----  --\nbb  x     22\n", out.String())
}

func TestPathString_Truncates(t *testing.T) {
	s := pathString([]int{0, 1, 7}, []string{"a-very-long-label-name", "b"})
	parts := strings.Split(s, " → ")
	require.Len(t, parts, 3)
	assert.True(t, strings.HasSuffix(parts[0], "…"))
	assert.LessOrEqual(t, runewidth.StringWidth(parts[0]), maxLabelWidth)
	assert.Equal(t, "b", parts[1])
	assert.Equal(t, "7", parts[2])
}

func TestNumbersAndOutputMode(t *testing.T) {
	assert.Equal(t, "1,234", numbers.Sprintf("%d", 1234))
	assert.Equal(t, "40.00", num(40))

	var buf bytes.Buffer
	assert.False(t, useTable("auto", &buf))
	assert.True(t, useTable("table", &buf))
	assert.False(t, useTable("json", &buf))

	printAlgorithms(&buf)
	assert.Equal(t, "christofides\ngenetic\nnearest-neighbor\ntpsma\n", buf.String())
}
