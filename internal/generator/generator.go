package generator

import (
	"context"
	"time"

	"github.com/AliceKyte/sudokuDelDia/internal/domain"
	"github.com/AliceKyte/sudokuDelDia/internal/ports"
	"github.com/AliceKyte/sudokuDelDia/internal/random"
)

// Generator produces solvable puzzles: it completes an empty grid through
// the injected solver, then carves cells out while the grid stays solvable.
// The solver's fixed scan order makes the full solution canonical, so the
// whole result is deterministic for a given (seed, difficulty).
type Generator struct {
	Solver ports.Solver
}

func New(s ports.Solver) *Generator {
	return &Generator{Solver: s}
}

// Generate builds the canonical solved grid, masks it according to the
// difficulty quota, and returns both grids in the puzzle.
func (g *Generator) Generate(ctx context.Context, seed int64, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	var empty domain.Grid
	full, st, err := g.Solver.Solve(ctx, &empty)
	if err != nil {
		return nil, st, err
	}
	nodes := st.Nodes

	masked := full.Clone()
	rng := random.New(seed)
	_, rst := g.RemoveCells(ctx, &masked, d, rng)
	nodes += rst.Nodes

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: d,
		Grid:       masked,
		Solution:   *full,
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
