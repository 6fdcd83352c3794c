package policy

import (
	"math/rand"

	"github.com/IlikeChooros/go-uttt/pkg/uttt"
	"github.com/rs/zerolog"
)

// EpsilonGreedy is the learning policy. With probability 1-epsilon it plays
// the move whose resulting state the value model likes best, otherwise a
// random one (random sub-board first, then a random cell). Epsilon starts at 0,
// so the policy doesn't explore until SetEpsilon is called.
type EpsilonGreedy struct {
	seat
	model    ValueModel
	rng      *rand.Rand
	schedule *EpsilonSchedule
	logger   zerolog.Logger
}

// Create the learning policy, a nil rng gets seeded with SeedGeneratorFn
func NewEpsilonGreedy(model ValueModel, rng *rand.Rand) *EpsilonGreedy {
	return &EpsilonGreedy{
		model:    model,
		rng:      newRand(rng),
		schedule: NewEpsilonSchedule(),
		logger:   zerolog.Nop(),
	}
}

// Set the logger, shared with the epsilon schedule
func (p *EpsilonGreedy) SetLogger(logger zerolog.Logger) *EpsilonGreedy {
	p.logger = logger
	p.schedule.SetLogger(logger)
	return p
}

// Override the current exploration probability
func (p *EpsilonGreedy) SetEpsilon(epsilon float64) *EpsilonGreedy {
	p.schedule.SetEpsilon(epsilon)
	return p
}

func (p *EpsilonGreedy) Epsilon() float64 {
	return p.schedule.Epsilon()
}

func (p *EpsilonGreedy) Schedule() *EpsilonSchedule {
	return p.schedule
}

func (p *EpsilonGreedy) Model() ValueModel {
	return p.model
}

func (p *EpsilonGreedy) Kind() Kind {
	return KindEpsilonGreedy
}

func (p *EpsilonGreedy) StartNewGame() {
	p.model.ResetForNewGame()
}

// Decay epsilon, then let the model know the game is over
func (p *EpsilonGreedy) FinishGame() {
	p.schedule.Advance()
	p.model.GameOver()
}

func (p *EpsilonGreedy) SelectNextMove() (uttt.EncodedState, error) {
	prev := p.currentState()
	if !p.IsActive() {
		return prev, nil
	}

	candidates, err := candidateSubBoards(p.board)
	if err != nil {
		return prev, err
	}

	var (
		m     move
		score float64
	)
	explore := p.rng.Float64() <= p.schedule.Epsilon()
	if explore {
		m, err = randomMove(p.board, p.rng, candidates)
	} else {
		m, score, err = greedyMove(p.board, p.model, p.player, prev, candidates)
	}
	if err != nil {
		return prev, err
	}

	p.logger.Debug().
		Str("player", p.player.String()).
		Bool("explore", explore).
		Float64("score", score).
		Stringer("sub", m.sub).
		Stringer("cell", m.cell).
		Msg("move selected")
	return prev, commit(&p.seat, p.Kind(), m)
}

func (p *EpsilonGreedy) IncorporateLearningSignal(prev uttt.EncodedState) {
	if p.board == nil {
		return
	}
	p.model.LearnFromMove(p.player, p.board, prev)
}

func (p *EpsilonGreedy) SaveLearning(path string) error {
	return p.model.Save(path)
}

func (p *EpsilonGreedy) LoadLearning(path string) error {
	return p.model.Load(path)
}
