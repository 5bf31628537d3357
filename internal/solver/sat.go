package solver

import (
	"context"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/AliceKyte/sudokuDelDia/internal/domain"
	"github.com/AliceKyte/sudokuDelDia/internal/ports"
)

// SAT solves Sudoku by reduction to propositional satisfiability. One
// variable per (row, col, num) triple, 729 in total; the clauses say every
// cell holds a number and no number repeats within a row, column, or box.
// Givens become unit clauses.
type SAT struct{}

func NewSAT() *SAT { return &SAT{} }

// cellLit is the literal for "cell (row,col) holds num", num in 0..8.
func cellLit(row, col, num int) z.Lit {
	n := num
	n += col * 9
	n += row * 81
	return z.Var(n + 1).Pos()
}

func encode(g *gini.Gini, in *domain.Grid) {
	// every position on the board has a number
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			for n := 0; n < 9; n++ {
				g.Add(cellLit(row, col, n))
			}
			g.Add(0)
		}
	}

	// every row has unique numbers
	for n := 0; n < 9; n++ {
		for row := 0; row < 9; row++ {
			for colA := 0; colA < 9; colA++ {
				a := cellLit(row, colA, n)
				for colB := colA + 1; colB < 9; colB++ {
					b := cellLit(row, colB, n)
					g.Add(a.Not())
					g.Add(b.Not())
					g.Add(0)
				}
			}
		}
	}

	// every column has unique numbers
	for n := 0; n < 9; n++ {
		for col := 0; col < 9; col++ {
			for rowA := 0; rowA < 9; rowA++ {
				a := cellLit(rowA, col, n)
				for rowB := rowA + 1; rowB < 9; rowB++ {
					b := cellLit(rowB, col, n)
					g.Add(a.Not())
					g.Add(b.Not())
					g.Add(0)
				}
			}
		}
	}

	// every box has unique numbers
	offs := []struct{ x, y int }{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	for x := 0; x < 9; x += 3 {
		for y := 0; y < 9; y += 3 {
			for n := 0; n < 9; n++ {
				for i, offA := range offs {
					a := cellLit(x+offA.x, y+offA.y, n)
					for j := i + 1; j < len(offs); j++ {
						offB := offs[j]
						b := cellLit(x+offB.x, y+offB.y, n)
						g.Add(a.Not())
						g.Add(b.Not())
						g.Add(0)
					}
				}
			}
		}
	}

	// givens as unit clauses
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if v := in[row][col]; v != domain.Empty {
				g.Add(cellLit(row, col, int(v)-1))
				g.Add(0)
			}
		}
	}
}

func decodeModel(g *gini.Gini) domain.Grid {
	var out domain.Grid
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			for n := 0; n < 9; n++ {
				if g.Value(cellLit(row, col, n)) {
					out[row][col] = uint8(n + 1)
					break
				}
			}
		}
	}
	return out
}

func (s *SAT) Solve(ctx context.Context, in *domain.Grid) (*domain.Grid, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{}, err
	}
	g := gini.New()
	encode(g, in)
	st := func() ports.Stats { return ports.Stats{Duration: time.Since(start)} }
	if g.Solve() != 1 {
		return nil, st(), ErrNoSolution
	}
	out := decodeModel(g)
	return &out, st(), nil
}

// Unique solves once, blocks the found assignment of all 81 cell literals
// with one clause, and solves again; a second model means the puzzle has
// more than one completion.
func (s *SAT) Unique(ctx context.Context, in *domain.Grid) (bool, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return false, ports.Stats{}, err
	}
	g := gini.New()
	encode(g, in)
	st := func() ports.Stats { return ports.Stats{Duration: time.Since(start)} }
	if g.Solve() != 1 {
		return false, st(), nil
	}
	first := decodeModel(g)
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			g.Add(cellLit(row, col, int(first[row][col])-1).Not())
		}
	}
	g.Add(0)
	return g.Solve() != 1, st(), nil
}
