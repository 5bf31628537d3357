package random

import (
	"math/rand"

	"github.com/AliceKyte/sudokuDelDia/internal/ports"
)

// Source is the production ports.Rand, a seeded math/rand stream. Tests
// substitute scripted implementations to steer the generator.
type Source struct {
	r *rand.Rand
}

// New returns a Source producing the same stream for the same seed.
func New(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// IntN returns a uniform integer in [0,n).
func (s *Source) IntN(n int) int { return s.r.Intn(n) }

// Choose picks one of options uniformly at random.
func Choose[T any](r ports.Rand, options []T) T {
	return options[r.IntN(len(options))]
}
