package bench

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/IlikeChooros/go-uttt/pkg/policy"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingListener struct {
	moves, games, sets int
}

func (l *countingListener) OnMoveMade(GameInfo)     { l.moves++ }
func (l *countingListener) OnFinishedGame(GameInfo) { l.games++ }
func (l *countingListener) OnFinishedSet(SetInfo)   { l.sets++ }

func TestSequenceFractions(t *testing.T) {
	counter := &countingListener{}
	seq := NewSequence(50, policy.NewRandom(seeded(1)), policy.NewRandom(seeded(2))).
		WithListener(counter)

	results, err := seq.RunSets(3)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for _, f := range results {
		assert.Equal(t, 50, f.Games)
		assert.InDelta(t, 1.0, f.XWins+f.OWins+f.Draws, 1e-9)
	}
	assert.Equal(t, 3, seq.Sets())
	assert.Equal(t, 150, counter.games)
	assert.Equal(t, 3, counter.sets)
	assert.Greater(t, counter.moves, 150*16)
}

func TestSequenceInvalid(t *testing.T) {
	_, err := NewSequence(0, policy.NewRandom(nil), policy.NewRandom(nil)).Run()
	assert.Error(t, err)

	_, err = NewSequence(10, nil, policy.NewRandom(nil)).Run()
	assert.Error(t, err)
}

func TestStatsFractions(t *testing.T) {
	s := Stats{}
	assert.Equal(t, Fractions{}, s.Fractions())

	s = Stats{XWins: 2, OWins: 1, Draws: 1}
	assert.Equal(t, Fractions{XWins: 0.5, OWins: 0.25, Draws: 0.25, Games: 4}, s.Fractions())
}

func TestLogListener(t *testing.T) {
	buf := bytes.Buffer{}
	logger := zerolog.New(&buf).Level(zerolog.InfoLevel)

	seq := NewSequence(5, policy.NewRandom(seeded(1)), policy.NewRandom(seeded(2))).
		WithListener(NewLogListener(logger))
	_, err := seq.Run()
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "set finished")
	assert.NotContains(t, buf.String(), "game finished")
}

func TestResultsWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs", "results.parquet")
	x := policy.NewEpsilonGreedy(&recordingModel{}, seeded(1)).SetEpsilon(0.5)
	writer := NewResultsWriter(path).SetEpsilonSource(x.Epsilon)

	seq := NewSequence(10, x, policy.NewRandom(seeded(2))).
		WithListener(NewMultiListener(writer, nil, &countingListener{}))
	_, err := seq.RunSets(2)
	require.NoError(t, err)
	require.NoError(t, writer.Flush())

	rows, err := ReadResults(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for i, row := range rows {
		assert.Equal(t, writer.RunID(), row.RunID)
		assert.Equal(t, int32(i), row.Set)
		assert.Equal(t, int32(10), row.Games)
		assert.Equal(t, row.Games, row.XWins+row.OWins+row.Draws)
		assert.Less(t, row.Epsilon, 0.5)
	}
	assert.Greater(t, rows[0].Epsilon, rows[1].Epsilon)

	_, err = ReadResults(filepath.Join(t.TempDir(), "missing.parquet"))
	assert.Error(t, err)
}

func TestWriteSummary(t *testing.T) {
	buf := bytes.Buffer{}
	err := WriteSummary(&buf, []Fractions{
		{XWins: 0.5, OWins: 0.25, Draws: 0.25, Games: 4},
		{XWins: 1, Games: 4},
	})
	require.NoError(t, err)

	text := buf.String()
	assert.Contains(t, text, "0.500")
	assert.Contains(t, text, "all")
	assert.Contains(t, text, "0.750")
}
