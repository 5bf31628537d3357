package solver

import (
	"context"
	"errors"
	"time"

	"github.com/AliceKyte/sudokuDelDia/internal/domain"
	"github.com/AliceKyte/sudokuDelDia/internal/ports"
)

// ErrNoSolution reports that no valid completion exists from the given
// position. Callers that only care about solvability can treat any Solve
// error as "not solvable".
var ErrNoSolution = errors.New("sudoku: no solution from this position")

// Backtracking is an exhaustive depth-first solver with chronological
// backtracking: it fills the first empty cell in row-major order, trying
// candidates 1..9 in ascending order. The fixed scan order means solving an
// empty grid always produces the same canonical solution, which the
// generator relies on. No propagation, no cell-ordering heuristics; a 9×9
// grid terminates quickly regardless.
type Backtracking struct{}

func NewBacktracking() *Backtracking { return &Backtracking{} }

func (s *Backtracking) Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, ports.Stats, error) {
	start := time.Now()
	grid := g.Clone()
	nodes := 0
	if !fill(ctx, &grid, &nodes) {
		st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, ErrNoSolution
	}
	return &grid, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// fill completes g in place and reports success. On failure every tentative
// placement has been backtracked out, leaving g exactly as it was passed in.
func fill(ctx context.Context, g *domain.Grid, nodes *int) bool {
	if ctx.Err() != nil {
		return false
	}
	r, c, ok := firstEmpty(g)
	if !ok {
		return true
	}
	for v := uint8(1); v <= 9; v++ {
		*nodes++
		if !isAllowed(g, r, c, v) {
			continue
		}
		g[r][c] = v
		if fill(ctx, g, nodes) {
			return true
		}
		g[r][c] = domain.Empty
	}
	return false
}

// firstEmpty locates the next cell to fill in row-major order.
func firstEmpty(g *domain.Grid) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == domain.Empty {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// isAllowed reports whether v can be placed at (r,c) without duplicating it
// in the row, the column, or the 3×3 box. Only other cells are examined, so
// the target cell need not be empty.
func isAllowed(g *domain.Grid, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if (i != c && g[r][i] == v) || (i != r && g[i][c] == v) {
			return false
		}
	}
	br, bc := r-r%3, c-c%3
	for i := br; i < br+3; i++ {
		for j := bc; j < bc+3; j++ {
			if (i != r || j != c) && g[i][j] == v {
				return false
			}
		}
	}
	return true
}
