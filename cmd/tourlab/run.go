package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/tourlab/metrics"
	"github.com/katalvlaran/tourlab/planner"
	"github.com/katalvlaran/tourlab/scenario"
	"github.com/katalvlaran/tourlab/tsp"
)

var errInvalidScenario = errors.New("scenario is invalid")

// solveFlags override scenario parameters. Only flags set on the command
// line take effect.
type solveFlags struct {
	algorithm string
	seed      int64
	penalty   string
	polish    bool
	threeOpt  bool
	matching  string
	pressure  string
	output    string
}

func (f *solveFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.Int64Var(&f.seed, "seed", tsp.DefaultSeed, "seed for the genetic and tpsma solvers")
	fl.StringVar(&f.penalty, "penalty", "", "obstacle penalty policy: scaled or fixed")
	fl.BoolVar(&f.polish, "polish", false, "finish non-baseline tours with 2-opt")
	fl.BoolVar(&f.threeOpt, "three-opt", false, "finish every complete tour with 3-opt")
	fl.StringVar(&f.matching, "matching", "", "christofides matching: exact or greedy")
	fl.StringVar(&f.pressure, "pressure", "", "tpsma pressure solver: relaxation or direct")
	fl.StringVarP(&f.output, "output", "o", "auto", "output: auto, table or json")
}

func (f *solveFlags) apply(cmd *cobra.Command, p *scenario.Parameters) {
	fl := cmd.Flags()
	if fl.Changed("algorithm") {
		p.Algorithm = tsp.Algorithm(f.algorithm)
	}
	if fl.Changed("seed") {
		p.Seed = f.seed
	}
	if fl.Changed("penalty") {
		p.Penalty = f.penalty
	}
	if fl.Changed("polish") {
		p.PolishTwoOpt = f.polish
	}
	if fl.Changed("three-opt") {
		p.PolishThreeOpt = f.threeOpt
	}
	if fl.Changed("matching") {
		p.Christofides.Matching = tsp.MatchingAlgo(f.matching)
	}
	if fl.Changed("pressure") {
		p.TPSMA.Pressure = tsp.PressureSolver(f.pressure)
	}
}

// load reads, overrides and validates a scenario.
func load(cmd *cobra.Command, path string, f solveFlags) (*scenario.Scenario, error) {
	sc, err := scenario.Load(path)
	if err != nil {
		return nil, err
	}
	f.apply(cmd, &sc.Parameters)
	if err = sc.Validate(); err != nil {
		return nil, err
	}
	slog.Debug("scenario loaded",
		"path", path,
		"nodes", len(sc.Nodes),
		"obstacles", len(sc.Obstacles),
	)
	return sc, nil
}

func runSolve(ctx context.Context, cmd *cobra.Command, path string, f solveFlags) error {
	sc, err := load(cmd, path, f)
	if err != nil {
		return err
	}
	s, err := planner.FromScenario(sc, planner.WithLogger(slog.Default()))
	if err != nil {
		return err
	}

	algo := sc.Parameters.Algorithm
	if algo == "" {
		algo = tsp.NearestNeighbor
	}
	res, err := s.Solve(ctx, algo, sc.Parameters.Options)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if useTable(f.output, out) {
		printResult(out, res, s.Labels())
		return nil
	}
	return writeJSON(out, planner.Response{Result: res, Labels: s.Labels()})
}

func runCompare(ctx context.Context, cmd *cobra.Command, path string, f solveFlags, algos []string, workers int, export string) error {
	sc, err := load(cmd, path, f)
	if err != nil {
		return err
	}
	s, err := planner.FromScenario(sc, planner.WithLogger(slog.Default()), planner.WithWorkers(workers))
	if err != nil {
		return err
	}

	selected := sc.Parameters.Algorithms
	if len(algos) > 0 {
		selected = make([]tsp.Algorithm, len(algos))
		for i, a := range algos {
			selected[i] = tsp.Algorithm(a)
		}
	}
	reports, err := s.Compare(ctx, sc.Parameters.Options, selected...)
	if err != nil {
		return err
	}

	if export != "" {
		if err = exportTo(export, sc, reports); err != nil {
			return err
		}
		slog.Info("results exported", "path", export)
	}

	out := cmd.OutOrStdout()
	if useTable(f.output, out) {
		printReports(out, reports)
		return nil
	}
	return writeJSON(out, planner.CompareResponse{Reports: reports})
}

func runValidate(w io.Writer, path string) error {
	sc, err := scenario.Load(path)
	if err == nil {
		err = sc.Validate()
	}
	if err != nil {
		printValidation(w, err)
		return errInvalidScenario
	}
	fmt.Fprintf(w, "Result: VALID (%d nodes, %d obstacles)\n", len(sc.Nodes), len(sc.Obstacles))
	return nil
}

func exportTo(path string, sc *scenario.Scenario, reports []metrics.Report) error {
	format, err := scenario.FormatOf(path)
	if err != nil {
		return err
	}
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	if err = scenario.Export(fh, sc, reports, format); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}

// useTable resolves the output mode; "auto" picks the table on a terminal.
func useTable(mode string, w io.Writer) bool {
	switch mode {
	case "table":
		return true
	case "json":
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
