// Command solvomatic runs the Solv-o-matic engine against a text puzzle
// file (§6.2/§6.3): parse, build an Engine, solve, print every solution.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/solvomatic/solvomatic/internal/xlog"
	"github.com/solvomatic/solvomatic/pkg/display"
	"github.com/solvomatic/solvomatic/pkg/puzzle"
	"github.com/solvomatic/solvomatic/pkg/solve"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var (
		logSteps       bool
		logConstraints bool
		logElapsed     bool
		logStates      bool
		logLevel       string
		parallel       bool
	)

	root := &cobra.Command{
		Use:           "solvomatic [puzzle-file]",
		Short:         "Solve a finite-domain puzzle described in Solv-o-matic's text format",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Flags().BoolVar(&logSteps, "log-steps", false, "log each solver step's table size and possibility count")
	root.Flags().BoolVar(&logConstraints, "log-constraints", false, "log each speculative partition merge")
	root.Flags().BoolVar(&logElapsed, "log-elapsed", false, "log the wall-clock duration of each solver step")
	root.Flags().BoolVar(&logStates, "log-states", false, "log the full table state at each solver step")
	root.Flags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	root.Flags().BoolVar(&parallel, "parallel", false, "evaluate speculative partition merges concurrently")

	exitCode := 0
	root.RunE = func(cmd *cobra.Command, cmdArgs []string) error {
		var level slog.Level
		if err := level.UnmarshalText([]byte(logLevel)); err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
		}
		xlog.Configure(level, os.Stderr)

		f, err := os.Open(cmdArgs[0])
		if err != nil {
			exitCode = 2
			return err
		}
		defer f.Close()

		spec, err := puzzle.Parse(f)
		if err != nil {
			exitCode = 2
			return err
		}

		engine, err := puzzle.BuildEngine(spec)
		if err != nil {
			exitCode = 2
			return err
		}

		cfg := solve.Config{
			LogSteps:       logSteps,
			LogConstraints: logConstraints,
			LogElapsed:     logElapsed,
			LogStates:      logStates,
			Parallel:       parallel,
		}
		if err := engine.Solve(cfg); err != nil {
			var unsat *solve.UnsatisfiableError
			if errors.As(err, &unsat) {
				fmt.Fprintln(os.Stderr, unsat.Error())
				exitCode = 1
				return nil
			}
			exitCode = 2
			return err
		}

		solutions := engine.Solutions()
		fmt.Printf("%d solution(s)\n", len(solutions))
		var boxes []display.Box
		for _, sol := range solutions {
			boxes = append(boxes, display.NewBox(puzzle.Render(spec, sol)))
		}
		fmt.Print(display.Render(boxes))
		return nil
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "solvomatic:", err)
		if exitCode == 0 {
			exitCode = 2
		}
	}
	return exitCode
}
