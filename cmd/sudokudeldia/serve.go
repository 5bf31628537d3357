package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	httpadapter "github.com/AliceKyte/sudokuDelDia/internal/adapters/http"
	"github.com/AliceKyte/sudokuDelDia/internal/generator"
	"github.com/AliceKyte/sudokuDelDia/internal/hint"
	"github.com/AliceKyte/sudokuDelDia/internal/solver"
	"github.com/AliceKyte/sudokuDelDia/internal/usecase"
	"github.com/AliceKyte/sudokuDelDia/internal/validator"
)

func defaultAddr() string {
	if addr := os.Getenv("SUDOKU_ADDR"); addr != "" {
		return addr
	}
	return ":8080"
}

func NewServeCommand() *cobra.Command {
	var (
		addr   string
		engine string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newEngine(engine)
			if err != nil {
				return err
			}
			// generation stays on the backtracking engine for its
			// canonical fill order; the flag picks the solve engine
			uc := usecase.NewService(s, generator.New(solver.NewBacktracking()), validator.New(), hint.NewSingles())

			gin.SetMode(gin.ReleaseMode)
			e := gin.New()
			e.Use(gin.Recovery())
			e.Use(httpadapter.RequestLogger(log.Logger))
			httpadapter.New(uc).Register(e)

			log.Info().Str("addr", addr).Str("engine", engine).Msg("listening")
			if err := e.Run(addr); err != nil {
				return fmt.Errorf("run server: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", defaultAddr(), "listen address (SUDOKU_ADDR overrides the default)")
	cmd.Flags().StringVar(&engine, "engine", "backtrack", "solver engine: backtrack|dlx|sat")
	return cmd
}
