package ports

import (
	"context"
	"time"

	"github.com/AliceKyte/sudokuDelDia/internal/domain"
)

// Stats captures the search effort of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver completes a grid and can test solution uniqueness. Solve works on
// its own copy and never mutates the input; the returned grid is fully
// filled and valid.
type Solver interface {
	Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, Stats, error)
	Unique(ctx context.Context, g *domain.Grid) (bool, Stats, error)
}

// Generator creates new puzzles at a target difficulty. The result is
// deterministic for a fixed (seed, difficulty) pair.
type Generator interface {
	Generate(ctx context.Context, seed int64, d domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, g *domain.Grid) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter suggests a next logical placement, if one can be found.
type Hinter interface {
	Hint(ctx context.Context, g *domain.Grid) (domain.Hint, bool, error)
}

// Rand yields uniform integers in [0,n) for cell sampling and difficulty
// selection. Implementations need not be safe for concurrent use.
type Rand interface {
	IntN(n int) int
}
