package generator

import (
	"context"
	"testing"
	"time"

	"github.com/AliceKyte/sudokuDelDia/internal/domain"
	"github.com/AliceKyte/sudokuDelDia/internal/ports"
	"github.com/AliceKyte/sudokuDelDia/internal/random"
	"github.com/AliceKyte/sudokuDelDia/internal/solver"
	"github.com/AliceKyte/sudokuDelDia/internal/validator"
)

func TestGenerateAllDifficultiesUnder5s(t *testing.T) {
	s := solver.NewBacktracking()
	g := New(s)

	cases := []struct {
		name   string
		diff   domain.Difficulty
		filled int
	}{
		{"easy", domain.Easy, 41},
		{"medium", domain.Medium, 31},
		{"hard", domain.Hard, 21},
		{"unrecognized", domain.Difficulty(42), 31}, // falls back to Medium quota
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			seed := int64(12345)
			p, st, err := g.Generate(ctx, seed, tc.diff)
			if err != nil {
				t.Fatalf("Generate(%s) failed: %v", tc.name, err)
			}
			t.Logf("generated in %v, nodes=%d", st.Duration, st.Nodes)

			if got := p.Grid.CountFilled(); got != tc.filled {
				t.Fatalf("filled cells = %d, want %d", got, tc.filled)
			}
			// the solution is a full valid Sudoku
			ok, err := validator.New().Complete(ctx, &p.Solution)
			if err != nil || !ok {
				t.Fatalf("solution not complete and valid: %v", err)
			}
			// the masked grid is still solvable
			out, _, err := s.Solve(ctx, &p.Grid)
			if err != nil {
				t.Fatalf("masked grid unsolvable: %v", err)
			}
			if ok, err := validator.New().Complete(ctx, out); err != nil || !ok {
				t.Fatalf("completion of masked grid invalid: %v", err)
			}
			// every masked grid digit agrees with the solution
			for r := 0; r < 9; r++ {
				for c := 0; c < 9; c++ {
					if v := p.Grid[r][c]; v != domain.Empty && v != p.Solution[r][c] {
						t.Fatalf("masked cell r=%d c=%d holds %d, solution has %d", r, c, v, p.Solution[r][c])
					}
				}
			}
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	g := New(solver.NewBacktracking())
	ctx := context.Background()

	a, _, err := g.Generate(ctx, 99, domain.Easy)
	if err != nil {
		t.Fatalf("first Generate failed: %v", err)
	}
	b, _, err := g.Generate(ctx, 99, domain.Easy)
	if err != nil {
		t.Fatalf("second Generate failed: %v", err)
	}
	if a.Grid != b.Grid || a.Solution != b.Solution {
		t.Fatal("same seed and difficulty produced different puzzles")
	}

	c, _, err := g.Generate(ctx, 100, domain.Easy)
	if err != nil {
		t.Fatalf("third Generate failed: %v", err)
	}
	if a.Grid == c.Grid {
		t.Fatal("different seeds produced identical masked grids")
	}
	// the canonical solution does not depend on the seed
	if a.Solution != c.Solution {
		t.Fatal("canonical solution changed with the seed")
	}
}

// scriptRand replays a fixed sequence of draws.
type scriptRand struct {
	seq []int
	i   int
}

func (s *scriptRand) IntN(n int) int {
	v := s.seq[s.i%len(s.seq)] % n
	s.i++
	return v
}

// failSolver rejects every grid it is shown.
type failSolver struct{ calls int }

func (f *failSolver) Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, ports.Stats, error) {
	f.calls++
	return nil, ports.Stats{}, solver.ErrNoSolution
}

func (f *failSolver) Unique(ctx context.Context, g *domain.Grid) (bool, ports.Stats, error) {
	return false, ports.Stats{}, nil
}

func TestRemoveCellsResamplesEmptyCells(t *testing.T) {
	g := New(solver.NewBacktracking())
	var empty domain.Grid
	full, _, err := g.Solver.Solve(context.Background(), &empty)
	if err != nil {
		t.Fatalf("full solve failed: %v", err)
	}

	grid := full.Clone()
	grid[0][0] = domain.Empty // pre-masked cell the rng will hit first
	// draws: (0,0) lands on the empty cell, (4,4) on a filled one
	rng := &scriptRand{seq: []int{0, 0, 4, 4, 8, 8, 2, 7, 6, 1, 3, 5}}
	removed, _ := g.RemoveCells(context.Background(), &grid, domain.Easy, rng)
	if removed == 0 {
		t.Fatal("no cells removed")
	}
	if grid[4][4] != domain.Empty {
		t.Fatal("first filled draw (4,4) was not cleared")
	}
}

func TestRemoveCellsRestoresOnRejection(t *testing.T) {
	fs := &failSolver{}
	g := New(fs)
	refGrid := mustSolved(t)
	grid := refGrid.Clone()

	rng := random.New(7)
	removed, _ := g.RemoveCells(context.Background(), &grid, domain.Hard, rng)
	if removed != 0 {
		t.Fatalf("removed %d cells despite every check failing", removed)
	}
	if grid != refGrid {
		t.Fatal("rejected removals were not restored")
	}
	if fs.calls == 0 {
		t.Fatal("solver never consulted")
	}
	t.Logf("attempt ceiling held after %d solver calls", fs.calls)
}

func mustSolved(t *testing.T) domain.Grid {
	t.Helper()
	var empty domain.Grid
	full, _, err := solver.NewBacktracking().Solve(context.Background(), &empty)
	if err != nil {
		t.Fatalf("full solve failed: %v", err)
	}
	return *full
}

func BenchmarkGenerate(b *testing.B) {
	g := New(solver.NewBacktracking())
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := g.Generate(ctx, int64(i), domain.Medium); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}
