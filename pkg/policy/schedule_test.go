package policy

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestEpsilonScheduleDecay(t *testing.T) {
	s := NewEpsilonSchedule().SetDecayStep(0.3).SetEpsilon(1)

	prev := s.Epsilon()
	for i := 0; i < 10; i++ {
		s.Advance()
		assert.LessOrEqual(t, s.Epsilon(), prev)
		assert.GreaterOrEqual(t, s.Epsilon(), 0.0)
		prev = s.Epsilon()
	}
	assert.Equal(t, 0.0, s.Epsilon())
}

func TestEpsilonScheduleDefaults(t *testing.T) {
	s := NewEpsilonSchedule()
	assert.Equal(t, 0.0, s.Epsilon())
	assert.Equal(t, DefaultDecayStep, s.DecayStep())

	// starting at 0 the schedule never explores
	s.Advance()
	assert.Equal(t, 0.0, s.Epsilon())

	assert.Equal(t, 1.0, s.SetEpsilon(3).Epsilon())
	assert.Equal(t, 0.0, s.SetEpsilon(-1).Epsilon())
}

func TestEpsilonScheduleCheckpoint(t *testing.T) {
	buf := bytes.Buffer{}
	s := NewEpsilonSchedule().
		SetEpsilon(0.5).
		SetCheckpointInterval(3).
		SetLogger(zerolog.New(&buf))

	assert.False(t, s.Advance())
	assert.False(t, s.Advance())
	assert.Empty(t, buf.String())
	assert.True(t, s.Advance())
	assert.Contains(t, buf.String(), "epsilon checkpoint")
	assert.Equal(t, 0, s.Games())
}

func TestEpsilonGreedyFinishGameDecays(t *testing.T) {
	model := &fakeModel{}
	p := NewEpsilonGreedy(model, seeded(1)).SetEpsilon(2 * DefaultDecayStep)

	p.FinishGame()
	assert.InDelta(t, DefaultDecayStep, p.Epsilon(), 1e-12)
	p.FinishGame()
	p.FinishGame()
	assert.Equal(t, 0.0, p.Epsilon())
	assert.Equal(t, 3, model.overs)
	assert.Equal(t, 3, p.Schedule().Games())
}
