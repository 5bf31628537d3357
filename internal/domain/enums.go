package domain

import "strings"

// Difficulty selects how many cells the generator masks.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Quota is the number of cells to remove for the difficulty. Values outside
// the known range fall back to the Medium quota.
func (d Difficulty) Quota() int {
	switch d {
	case Easy:
		return 40
	case Hard:
		return 60
	default:
		return 50
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "medium"
	}
}

// ParseDifficulty maps a label to a Difficulty; anything unrecognized is
// Medium.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy
	case "hard":
		return Hard
	default:
		return Medium
	}
}

// Difficulties lists every difficulty, for uniform random selection.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}
