package domain

import (
	"fmt"
	"strings"
)

// Empty marks a cell with no digit placed.
const Empty uint8 = 0

// Grid is a 9×9 Sudoku board in row-major order. Cells hold Empty or a
// digit 1..9. The array value semantics make a plain assignment a deep copy.
type Grid [9][9]uint8

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint describes a suggested next placement.
type Hint struct {
	Message   string      `json:"message,omitempty"`
	Cells     []CellCoord `json:"cells,omitempty"`
	Technique string      `json:"technique,omitempty"`
}

// Puzzle is a generated Sudoku: the masked grid handed to the player plus
// the full solution it was carved from.
type Puzzle struct {
	Seed       int64      `json:"seed"`
	Difficulty Difficulty `json:"difficulty"`
	Grid       Grid       `json:"grid"`
	Solution   Grid       `json:"solution"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() Grid { return *g }

// CountFilled reports how many cells hold a digit.
func (g *Grid) CountFilled() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != Empty {
				n++
			}
		}
	}
	return n
}

// String renders the grid as nine lines of nine space-separated integers,
// 0 standing for an empty cell.
func (g *Grid) String() string {
	var b strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte('0' + g[r][c])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseGrid reads a grid from text: nine non-blank lines, each with nine
// cells either separated by spaces or packed as a 9-rune string. The
// characters '0', '.', and '_' all denote an empty cell.
func ParseGrid(text string) (Grid, error) {
	var g Grid
	rows := make([]string, 0, 9)
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) < 9 {
		return g, fmt.Errorf("parse grid: want 9 rows, got %d", len(rows))
	}
	for r, line := range rows[:9] {
		cells := strings.Fields(line)
		if len(cells) == 1 && len(cells[0]) >= 9 {
			cells = strings.Split(cells[0], "")
		}
		if len(cells) < 9 {
			return g, fmt.Errorf("parse grid: row %d has %d cells, want 9", r, len(cells))
		}
		for c, cell := range cells[:9] {
			switch cell[0] {
			case '0', '.', '_':
				g[r][c] = Empty
			case '1', '2', '3', '4', '5', '6', '7', '8', '9':
				g[r][c] = cell[0] - '0'
			default:
				return g, fmt.Errorf("parse grid: bad cell %q at row %d col %d", cell, r, c)
			}
		}
	}
	return g, nil
}
