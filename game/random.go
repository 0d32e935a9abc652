package game

import (
	"time"

	"golang.org/x/exp/rand"
)

// Random is a source of uniformly distributed integers
type Random interface {
	// UniformInt returns a value in [low, high], both inclusive
	UniformInt(low, high int) int
}

type xRandom struct {
	r *rand.Rand
}

// NewRandom returns a seeded Random, seed 0 picks a time based seed
func NewRandom(seed uint64) Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &xRandom{r: rand.New(rand.NewSource(seed))}
}

func (x *xRandom) UniformInt(low, high int) int {
	if high <= low {
		return low
	}
	return low + x.r.Intn(high-low+1)
}
