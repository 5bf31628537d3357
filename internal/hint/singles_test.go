package hint

import (
	"context"
	"testing"

	"github.com/AliceKyte/sudokuDelDia/internal/domain"
)

func TestHintFindsNakedSingle(t *testing.T) {
	// row 4 holds 1..8, so (4,8) can only take 9
	var g domain.Grid
	for c := 0; c < 8; c++ {
		g[4][c] = uint8(c + 1)
	}
	h, found, err := NewSingles().Hint(context.Background(), &g)
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if !found {
		t.Fatal("naked single not found")
	}
	if len(h.Cells) != 1 || h.Cells[0] != (domain.CellCoord{Row: 4, Col: 8}) {
		t.Fatalf("hint points at wrong cell: %+v", h.Cells)
	}
	if h.Technique != "naked-single" {
		t.Fatalf("technique = %q", h.Technique)
	}
}

func TestHintNoneOnEmptyGrid(t *testing.T) {
	var g domain.Grid
	_, found, err := NewSingles().Hint(context.Background(), &g)
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if found {
		t.Fatal("empty grid has no forced placement")
	}
}
