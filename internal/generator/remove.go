package generator

import (
	"context"
	"time"

	"github.com/AliceKyte/sudokuDelDia/internal/domain"
	"github.com/AliceKyte/sudokuDelDia/internal/ports"
)

// maxAttempts bounds the carve loop. Each random draw counts as one
// attempt, whether it lands on an empty cell, gets rejected by the
// solvability check, or succeeds. When the attempts run out the grid is
// accepted as-is, so the loop always terminates even if late removals make
// every remaining cell load-bearing.
const maxAttempts = 10000

// RemoveCells empties cells of a solved grid in place until the difficulty
// quota is met. A cell stays cleared only if the solver still finds a
// solution for a scratch copy of the masked grid; otherwise the digit is
// put back and another cell is drawn. Returns the number of cells actually
// removed and the aggregated solver effort.
func (g *Generator) RemoveCells(ctx context.Context, grid *domain.Grid, d domain.Difficulty, rng ports.Rand) (int, ports.Stats) {
	start := time.Now()
	quota := d.Quota()
	removed := 0
	nodes := 0

	for attempts := 0; removed < quota && attempts < maxAttempts; attempts++ {
		if ctx.Err() != nil {
			break
		}
		r, c := rng.IntN(9), rng.IntN(9)
		if grid[r][c] == domain.Empty {
			continue
		}
		backup := grid[r][c]
		grid[r][c] = domain.Empty

		scratch := grid.Clone()
		_, st, err := g.Solver.Solve(ctx, &scratch)
		nodes += st.Nodes
		if err != nil {
			grid[r][c] = backup
			continue
		}
		removed++
	}
	return removed, ports.Stats{Nodes: nodes, Duration: time.Since(start)}
}
