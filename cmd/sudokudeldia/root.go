package main

import (
	"fmt"
	"time"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/AliceKyte/sudokuDelDia/internal/domain"
	"github.com/AliceKyte/sudokuDelDia/internal/generator"
	"github.com/AliceKyte/sudokuDelDia/internal/ports"
	"github.com/AliceKyte/sudokuDelDia/internal/random"
	"github.com/AliceKyte/sudokuDelDia/internal/solver"
)

// newEngine maps the --engine flag to a solver implementation. Generation
// always runs on the backtracking engine; the flag matters for the solve
// and serve commands.
func newEngine(kind string) (ports.Solver, error) {
	switch kind {
	case "", "backtrack", "backtracking":
		return solver.NewBacktracking(), nil
	case "dlx":
		return solver.NewDLX(), nil
	case "sat":
		return solver.NewSAT(), nil
	default:
		return nil, fmt.Errorf("unknown engine %q (want backtrack, dlx, or sat)", kind)
	}
}

func setLogLevel(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}

func NewRootCommand() *cobra.Command {
	var (
		logLevel   string
		difficulty string
		seed       int64
		pprof      bool
	)
	cmd := &cobra.Command{
		Use:           "sudokudeldia",
		Short:         "Generate and solve Sudoku puzzles",
		Long:          "sudokudeldia generates solvable 9×9 Sudoku puzzles, masks cells by difficulty, and prints the board as nine rows of digits with 0 for blanks.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setLogLevel(logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if pprof {
				defer profile.Start().Stop()
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			rng := random.New(seed)
			var d domain.Difficulty
			if difficulty == "" {
				d = random.Choose(rng, domain.Difficulties())
			} else {
				d = domain.ParseDifficulty(difficulty)
			}
			return runGenerate(cmd, seed, d)
		},
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "easy|medium|hard (random when unset)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (wall clock when 0)")
	cmd.Flags().BoolVar(&pprof, "pprof", false, "write a CPU profile for the generation run")

	cmd.AddCommand(NewDailyCommand())
	cmd.AddCommand(NewSolveCommand())
	cmd.AddCommand(NewServeCommand())
	return cmd
}

func runGenerate(cmd *cobra.Command, seed int64, d domain.Difficulty) error {
	gen := generator.New(solver.NewBacktracking())
	p, st, err := gen.Generate(cmd.Context(), seed, d)
	if err != nil {
		return fmt.Errorf("generate puzzle: %w", err)
	}
	log.Debug().
		Int64("seed", seed).
		Str("difficulty", d.String()).
		Int("filled", p.Grid.CountFilled()).
		Int("nodes", st.Nodes).
		Dur("dur", st.Duration).
		Msg("generated")
	fmt.Fprint(cmd.OutOrStdout(), p.Grid.String())
	return nil
}
