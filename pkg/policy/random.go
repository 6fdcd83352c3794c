package policy

import (
	"math/rand"

	"github.com/IlikeChooros/go-uttt/pkg/uttt"
)

// Random plays a uniformly random sub-board among the allowed ones, then a
// uniformly random empty cell inside it. It never learns.
type Random struct {
	seat
	rng *rand.Rand
}

// Create a random policy, a nil rng gets seeded with SeedGeneratorFn
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: newRand(rng)}
}

func (p *Random) Kind() Kind {
	return KindRandom
}

func (p *Random) SelectNextMove() (uttt.EncodedState, error) {
	prev := p.currentState()
	if !p.IsActive() {
		return prev, nil
	}

	candidates, err := candidateSubBoards(p.board)
	if err != nil {
		return prev, err
	}
	m, err := randomMove(p.board, p.rng, candidates)
	if err != nil {
		return prev, err
	}
	return prev, commit(&p.seat, p.Kind(), m)
}
