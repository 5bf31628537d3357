package solver

import (
	"context"
	"testing"
	"time"

	"github.com/AliceKyte/sudokuDelDia/internal/domain"
	"github.com/AliceKyte/sudokuDelDia/internal/validator"
)

// A classic, uniquely solvable Sudoku (0 = empty).
var sample = domain.Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

// unsolvable is the sample with a locally consistent but wrong digit forced
// into a blank: the puzzle has a single solution holding 4 there.
func unsolvable() domain.Grid {
	g := sample
	g[0][2] = 2
	return g
}

func TestBacktrackingSolveUnder1s(t *testing.T) {
	in := sample
	s := NewBacktracking()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out, st, err := s.Solve(ctx, &in)
	if err != nil {
		t.Fatalf("Solve failed: %v (nodes=%d dur=%v)", err, st.Nodes, st.Duration)
	}
	// no zeros
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if out[r][c] == domain.Empty {
				t.Fatalf("unsolved cell at r=%d c=%d", r, c)
			}
		}
	}
	// valid by fast validator
	ok, conf, err := validator.New().Validate(ctx, out)
	if err != nil || !ok {
		t.Fatalf("invalid solution: err=%v conflicts=%v", err, conf)
	}
	// givens survive
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if sample[r][c] != domain.Empty && out[r][c] != sample[r][c] {
				t.Fatalf("given at r=%d c=%d changed: %d -> %d", r, c, sample[r][c], out[r][c])
			}
		}
	}
	if st.Duration > time.Second {
		t.Fatalf("took too long: %v (>1s)", st.Duration)
	}
	t.Logf("Solved in %v, nodes=%d", st.Duration, st.Nodes)
}

func TestSolveNeverMutatesInput(t *testing.T) {
	in := sample
	s := NewBacktracking()
	if _, _, err := s.Solve(context.Background(), &in); err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if in != sample {
		t.Fatal("Solve mutated its input grid")
	}
}

func TestSolveIdempotentOnSolvedGrid(t *testing.T) {
	s := NewBacktracking()
	solved, _, err := s.Solve(context.Background(), &sample)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	again, st, err := s.Solve(context.Background(), solved)
	if err != nil {
		t.Fatalf("re-Solve failed: %v", err)
	}
	if *again != *solved {
		t.Fatal("re-solving a solved grid changed it")
	}
	t.Logf("re-solve nodes=%d", st.Nodes)
}

func TestSolveNoSolution(t *testing.T) {
	g := unsolvable()
	s := NewBacktracking()
	out, _, err := s.Solve(context.Background(), &g)
	if err != ErrNoSolution {
		t.Fatalf("want ErrNoSolution, got out=%v err=%v", out, err)
	}
}

func TestFillRestoresGridOnFailure(t *testing.T) {
	g := unsolvable()
	before := g
	nodes := 0
	if fill(context.Background(), &g, &nodes) {
		t.Fatal("fill succeeded on an unsolvable grid")
	}
	if g != before {
		t.Fatal("failed fill left tentative placements behind")
	}
}

func TestIsAllowedOnCompletedGrid(t *testing.T) {
	s := NewBacktracking()
	solved, _, err := s.Solve(context.Background(), &sample)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	// the target cell is skipped, so every placed digit re-validates
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if !isAllowed(solved, r, c, solved[r][c]) {
				t.Fatalf("placed digit %d rejected at r=%d c=%d", solved[r][c], r, c)
			}
		}
	}
	// clearing any one cell leaves exactly one admissible candidate
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			g := solved.Clone()
			want := g[r][c]
			g[r][c] = domain.Empty
			for v := uint8(1); v <= 9; v++ {
				if got := isAllowed(&g, r, c, v); got != (v == want) {
					t.Fatalf("isAllowed(r=%d c=%d v=%d) = %v, want %v", r, c, v, got, v == want)
				}
			}
		}
	}
}

func TestBacktrackingUnique(t *testing.T) {
	s := NewBacktracking()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	uniq, st, err := s.Unique(ctx, &sample)
	if err != nil {
		t.Fatalf("Unique failed: %v", err)
	}
	if !uniq {
		t.Fatal("sample puzzle should have exactly one solution")
	}
	t.Logf("uniqueness check in %v, nodes=%d", st.Duration, st.Nodes)

	var empty domain.Grid
	uniq, _, err = s.Unique(ctx, &empty)
	if err != nil {
		t.Fatalf("Unique on empty grid failed: %v", err)
	}
	if uniq {
		t.Fatal("an empty grid has many solutions, not one")
	}
}
