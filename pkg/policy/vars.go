package policy

import (
	"math/rand"
	"time"
)

// Exploration probability drop applied after every finished game
const DefaultDecayStep float64 = 1.0 / 18000

// Number of finished games between two epsilon checkpoints
const DefaultCheckpointInterval int = 200

type SeedGeneratorFnType func() int64

var SeedGeneratorFn SeedGeneratorFnType = func() int64 {
	return time.Now().UnixNano()
}

// Set custom seed generator function for the random sources created when
// a policy is constructed without one, by default uses current time in nanoseconds
func SetSeedGeneratorFn(f SeedGeneratorFnType) {
	if f != nil {
		SeedGeneratorFn = f
	}
}

func newRand(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewSource(SeedGeneratorFn()))
}
