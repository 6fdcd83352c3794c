package policy

import (
	"github.com/rs/zerolog"
)

// EpsilonSchedule holds the exploration probability of a learning policy.
// Epsilon only goes down: every finished game takes one decay step off it,
// never below 0. Every 'interval' games the current value is logged.
type EpsilonSchedule struct {
	epsilon  float64
	step     float64
	games    int
	interval int
	logger   zerolog.Logger
}

// New schedule starting at epsilon 0 with the default decay step and checkpoint interval
func NewEpsilonSchedule() *EpsilonSchedule {
	return &EpsilonSchedule{
		step:     DefaultDecayStep,
		interval: DefaultCheckpointInterval,
		logger:   zerolog.Nop(),
	}
}

// Set the exploration probability, clamped to [0, 1]
func (s *EpsilonSchedule) SetEpsilon(epsilon float64) *EpsilonSchedule {
	s.epsilon = min(1.0, max(0.0, epsilon))
	return s
}

func (s *EpsilonSchedule) SetDecayStep(step float64) *EpsilonSchedule {
	s.step = max(0.0, step)
	return s
}

func (s *EpsilonSchedule) SetCheckpointInterval(games int) *EpsilonSchedule {
	s.interval = max(1, games)
	return s
}

func (s *EpsilonSchedule) SetLogger(logger zerolog.Logger) *EpsilonSchedule {
	s.logger = logger
	return s
}

func (s *EpsilonSchedule) Epsilon() float64 {
	return s.epsilon
}

func (s *EpsilonSchedule) DecayStep() float64 {
	return s.step
}

// Games finished since the last checkpoint
func (s *EpsilonSchedule) Games() int {
	return s.games
}

// Advance the schedule by one finished game, returns true on a checkpoint
func (s *EpsilonSchedule) Advance() bool {
	s.epsilon = max(0.0, s.epsilon-s.step)
	s.games++
	if s.games < s.interval {
		return false
	}

	s.logger.Info().Float64("epsilon", s.epsilon).Int("games", s.games).Msg("epsilon checkpoint")
	s.games = 0
	return true
}
