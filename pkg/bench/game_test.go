package bench

import (
	"context"
	"io"
	"math/rand"
	"testing"

	"github.com/IlikeChooros/go-uttt/pkg/policy"
	"github.com/IlikeChooros/go-uttt/pkg/uttt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingModel remembers the transitions it learned from
type recordingModel struct {
	learned []uttt.EncodedState
	players []uttt.PieceType
	resets  int
	overs   int
}

func (m *recordingModel) Value(uttt.PieceType, policy.BoardView, uttt.EncodedState) float64 {
	return 0
}

func (m *recordingModel) LearnFromMove(player uttt.PieceType, _ policy.BoardView, prev uttt.EncodedState) {
	m.learned = append(m.learned, prev)
	m.players = append(m.players, player)
}

func (m *recordingModel) ResetForNewGame() { m.resets++ }
func (m *recordingModel) GameOver()        { m.overs++ }
func (m *recordingModel) Save(string) error {
	return nil
}
func (m *recordingModel) Load(string) error {
	return nil
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestPlayGame(t *testing.T) {
	model := &recordingModel{}
	board := uttt.NewBoard()
	x := policy.NewEpsilonGreedy(model, seeded(1)).SetEpsilon(1)
	o := policy.NewRandom(seeded(2))

	status, err := PlayGame(board, x, o)
	require.NoError(t, err)
	assert.True(t, status.IsTerminal())
	assert.Equal(t, status, board.Status())

	moves := len(board.History())
	require.NotEmpty(t, model.learned)
	// X learns after its own moves and after each of O's replies
	assert.Equal(t, moves, len(model.learned))
	assert.Equal(t, uttt.EmptyState(), model.learned[0])
	for _, p := range model.players {
		assert.Equal(t, uttt.PieceCross, p)
	}

	assert.Equal(t, 1, model.resets)
	assert.Equal(t, 1, model.overs)
	assert.False(t, x.IsActive())
	assert.False(t, o.IsActive())
	assert.Nil(t, x.Board())
}

func TestPlayGameLearningSignalIsOwnPreviousState(t *testing.T) {
	model := &recordingModel{}
	board := uttt.NewBoard()
	x := policy.NewRandom(seeded(3))
	o := policy.NewEpsilonGreedy(model, seeded(4)).SetEpsilon(1)

	_, err := PlayGame(board, x, o)
	require.NoError(t, err)

	// O never learns before its first move, and then always from the state before its last move
	history := board.History()
	replay := uttt.NewBoard()
	var statesBeforeO []uttt.EncodedState
	for i, m := range history {
		if i%2 == 1 {
			statesBeforeO = append(statesBeforeO, replay.EncodedState())
		}
		require.NoError(t, replay.CommitMove(replay.Turn(), m.SubBoard(), m.Cell()))
	}

	require.Len(t, model.learned, len(history)-1)
	for i, prev := range model.learned {
		// learned after O's move (odd) and after X's next move (even)
		assert.Equal(t, statesBeforeO[i/2], prev)
	}
}

func TestPlayGameContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	board := uttt.NewBoard()
	x, o := policy.NewRandom(seeded(1)), policy.NewRandom(seeded(2))
	status, err := playGame(ctx, board, x, o, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, uttt.StatusActive, status)
	assert.False(t, x.IsActive())
}

func TestPlayGameInputExhausted(t *testing.T) {
	board := uttt.NewBoard()
	// the interactive player has nothing to read and fails, not stalls
	x := policy.NewInteractive(emptyReader{}, discard{})
	o := policy.NewRandom(seeded(2))

	_, err := PlayGame(board, x, o)
	assert.Error(t, err)
	assert.Empty(t, board.History())
}

type emptyReader struct{}

func (emptyReader) Read([]byte) (int, error) { return 0, io.EOF }

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
