package hint

import (
	"context"
	"fmt"

	"github.com/AliceKyte/sudokuDelDia/internal/domain"
)

// Singles implements a minimal Hinter that suggests naked singles.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first empty cell with a sole admissible candidate.
func (h *Singles) Hint(ctx context.Context, g *domain.Grid) (domain.Hint, bool, error) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != domain.Empty {
				continue
			}
			v, ok := soleCandidate(g, r, c)
			if ok {
				msg := fmt.Sprintf("Single: only %d fits here", v)
				return domain.Hint{
					Message:   msg,
					Cells:     []domain.CellCoord{{Row: r, Col: c}},
					Technique: "naked-single",
				}, true, nil
			}
		}
	}
	return domain.Hint{}, false, nil
}

func soleCandidate(g *domain.Grid, r, c int) (uint8, bool) {
	var last uint8
	count := 0
	for v := uint8(1); v <= 9; v++ {
		if allowed(g, r, c, v) {
			count++
			last = v
			if count > 1 {
				return 0, false
			}
		}
	}
	return last, count == 1
}

func allowed(g *domain.Grid, r, c int, v uint8) bool {
	// row & col
	for i := 0; i < 9; i++ {
		if g[r][i] == v || g[i][c] == v {
			return false
		}
	}
	// box
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}
