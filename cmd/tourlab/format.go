package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/tourlab/metrics"
	"github.com/katalvlaran/tourlab/tsp"
)

// maxLabelWidth caps node labels in path listings, in terminal cells.
const maxLabelWidth = 16

var numbers = message.NewPrinter(language.English)

func num(v float64) string { return numbers.Sprintf("%.2f", v) }

func printAlgorithms(w io.Writer) {
	for _, a := range tsp.Algorithms() {
		fmt.Fprintln(w, a)
	}
}

func printResult(w io.Writer, res tsp.Result, labels []string) {
	fmt.Fprintf(w, "Algorithm:   %s\n", res.Details.Algorithm)
	fmt.Fprintf(w, "Length:      %s\n", num(res.TotalLength))
	fmt.Fprintf(w, "Time:        %s ms\n", num(res.TimeMs))
	if res.Iterations > 0 {
		fmt.Fprintf(w, "Iterations:  %s\n", numbers.Sprintf("%d", res.Iterations))
	}
	fmt.Fprintf(w, "Path:        %s\n", pathString(res.Path, labels))

	d := res.Details
	if d.Fallback {
		fmt.Fprintf(w, "  * fell back to nearest-neighbor: %s\n", d.Error)
	}
	if d.Partial {
		fmt.Fprintf(w, "  * partial tour, unreachable: %s\n", pathString(d.Unreachable, labels))
	}
	if d.ThreeOptMoves > 0 {
		fmt.Fprintf(w, "  * 3-opt moves: %d\n", d.ThreeOptMoves)
	}
	if d.Matching != "" {
		fmt.Fprintf(w, "  * matching: %s\n", d.Matching)
	}
	if d.ApproximationRatio != nil {
		fmt.Fprintf(w, "  * approximation bound: %.1f\n", *d.ApproximationRatio)
	}
}

// pathString joins node labels with arrows, truncating wide labels.
func pathString(path []int, labels []string) string {
	parts := make([]string, len(path))
	for i, v := range path {
		label := fmt.Sprint(v)
		if v >= 0 && v < len(labels) && labels[v] != "" {
			label = labels[v]
		}
		parts[i] = runewidth.Truncate(label, maxLabelWidth, "…")
	}
	return strings.Join(parts, " → ")
}

var reportHeader = []string{"#", "Algorithm", "Length", "Time ms", "Optimality %", "Speed", "Turns", "Improvement %"}

func printReports(w io.Writer, reports []metrics.Report) {
	rows := make([][]string, 0, len(reports)+1)
	rows = append(rows, reportHeader)
	for _, r := range reports {
		improvement := "n/a"
		if r.ImprovementRatePercent != nil {
			improvement = num(*r.ImprovementRatePercent)
		}
		rows = append(rows, []string{
			fmt.Sprint(r.Rank),
			r.Details.Algorithm,
			num(r.TotalLength),
			num(r.TimeMs),
			num(r.PathOptimalityPercent),
			num(r.ComputationSpeed),
			fmt.Sprint(r.PathSmoothnessTurns),
			improvement,
		})
	}
	writeTable(w, rows)
}

// writeTable left-aligns the first two columns and right-aligns the rest,
// measuring cells in terminal width.
func writeTable(w io.Writer, rows [][]string) {
	if len(rows) == 0 {
		return
	}
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	for r, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			if i < 2 {
				cells[i] = runewidth.FillRight(cell, widths[i])
			} else {
				cells[i] = runewidth.FillLeft(cell, widths[i])
			}
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " "))
		if r == 0 {
			rule := make([]string, len(widths))
			for i, wd := range widths {
				rule[i] = strings.Repeat("-", wd)
			}
			fmt.Fprintln(w, strings.Join(rule, "  "))
		}
	}
}

func printValidation(w io.Writer, err error) {
	var msgs []string
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range j.Unwrap() {
			msgs = append(msgs, e.Error())
		}
	} else {
		msgs = []string{err.Error()}
	}

	fmt.Fprintf(w, "ERRORS (%d):\n", len(msgs))
	for _, m := range msgs {
		fmt.Fprintf(w, "  %s\n", m)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Result: INVALID (%d errors)\n", len(msgs))
}
