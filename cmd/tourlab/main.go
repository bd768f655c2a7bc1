package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tourlab/internal/server"
)

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "tourlab",
		Short:         "Obstacle-aware tour planning with four TSP heuristics",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")

	rootCmd.AddCommand(solveCmd())
	rootCmd.AddCommand(compareCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(algorithmsCmd())
	rootCmd.AddCommand(serveCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("tourlab failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func solveCmd() *cobra.Command {
	var f solveFlags

	cmd := &cobra.Command{
		Use:   "solve [scenario-file]",
		Short: "Solve a scenario with one algorithm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd.Context(), cmd, args[0], f)
		},
	}

	f.register(cmd)
	cmd.Flags().StringVarP(&f.algorithm, "algorithm", "a", "", "nearest-neighbor, tpsma, genetic or christofides (default from scenario)")
	return cmd
}

func compareCmd() *cobra.Command {
	var (
		f       solveFlags
		algos   []string
		workers int
		export  string
	)

	cmd := &cobra.Command{
		Use:   "compare [scenario-file]",
		Short: "Run several algorithms on a scenario and rank them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd.Context(), cmd, args[0], f, algos, workers, export)
		},
	}

	f.register(cmd)
	cmd.Flags().StringSliceVarP(&algos, "algorithms", "a", nil, "algorithms to compare (default from scenario, else all)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent solvers (default: CPU count)")
	cmd.Flags().StringVarP(&export, "export", "e", "", "write scenario and results to this .json/.yaml file")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [scenario-file]",
		Short: "Validate a scenario without solving it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), args[0])
		},
	}
}

func algorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the available algorithms",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printAlgorithms(cmd.OutOrStdout())
		},
	}
}

func serveCmd() *cobra.Command {
	var (
		port    int
		timeout time.Duration
		workers int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv := server.New(port, slog.Default(), timeout, workers)
			return srv.Start(cmd.Context())
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "per-request solve timeout (0 disables)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent solvers per compare request (default: CPU count)")
	return cmd
}
