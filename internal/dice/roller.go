package dice

import "math/rand"

// Roller produces a uniformly distributed integer in [1, sides].
//
// Rolling is the only source of randomness in the module. Production code
// seeds a roller from crypto/rand; tests substitute a scripted roller so
// evaluation is deterministic.
type Roller interface {
	Roll(sides int) int
}

type seededRoller struct {
	rng *rand.Rand
}

// NewRoller returns a Roller backed by math/rand with the provided seed.
// The same seed always yields the same roll sequence.
func NewRoller(seed int64) Roller {
	return &seededRoller{rng: rand.New(rand.NewSource(seed))}
}

func (r *seededRoller) Roll(sides int) int {
	return r.rng.Intn(sides) + 1
}
