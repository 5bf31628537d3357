package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/AliceKyte/sudokuDelDia/internal/domain"
)

func NewSolveCommand() *cobra.Command {
	var (
		engine      string
		checkUnique bool
	)
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve a puzzle read from a file or stdin",
		Long:  "solve reads nine rows of nine cells ('0', '.', and '_' all mean blank, cells optionally space-separated) and prints the completed board. Exits non-zero when no solution exists.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				text []byte
				err  error
			)
			if len(args) == 0 || args[0] == "-" {
				text, err = io.ReadAll(cmd.InOrStdin())
			} else {
				text, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("read puzzle: %w", err)
			}
			grid, err := domain.ParseGrid(string(text))
			if err != nil {
				return err
			}

			s, err := newEngine(engine)
			if err != nil {
				return err
			}
			out, st, err := s.Solve(cmd.Context(), &grid)
			if err != nil {
				return fmt.Errorf("solve puzzle: %w", err)
			}
			log.Debug().Int("nodes", st.Nodes).Dur("dur", st.Duration).Msg("solved")
			if checkUnique {
				uniq, _, err := s.Unique(cmd.Context(), &grid)
				if err != nil {
					return fmt.Errorf("uniqueness check: %w", err)
				}
				if uniq {
					log.Info().Msg("puzzle has exactly one solution")
				} else {
					log.Warn().Msg("puzzle has more than one solution")
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), out.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&engine, "engine", "backtrack", "solver engine: backtrack|dlx|sat")
	cmd.Flags().BoolVar(&checkUnique, "check-unique", false, "also report whether the solution is unique")
	return cmd
}
