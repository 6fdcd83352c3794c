package learning

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/IlikeChooros/go-uttt/pkg/uttt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetworkModelValueRange(t *testing.T) {
	model := NewNetworkModel([]int{16, 8}, 0.05, 0.5, 1)
	state := place(t, uttt.EmptyState(), uttt.PieceCross, [4]int{1, 1, 1, 1})

	v := model.Value(uttt.PieceCircle, nil, state)
	assert.Greater(t, v, 0.0)
	assert.Less(t, v, 1.0)

	assert.Equal(t, 1.0, model.Value(uttt.PieceCross, nil, crossWonState(t)))
}

func TestNetworkModelLearnsTowardsTarget(t *testing.T) {
	model := NewNetworkModel([]int{8}, 0.5, 0.0, 20)
	prev := place(t, uttt.EmptyState(), uttt.PieceCross, [4]int{0, 0, 1, 1})
	board := &stateBoard{state: crossWonState(t)}

	before := model.Value(uttt.PieceCross, nil, prev)
	model.LearnFromMove(uttt.PieceCross, board, prev)
	assert.Equal(t, 1, model.Pending())

	model.GameOver()
	assert.Equal(t, 0, model.Pending())
	assert.Greater(t, model.Value(uttt.PieceCross, nil, prev), before)
}

func TestNetworkModelResetDropsExamples(t *testing.T) {
	model := NewNetworkModel([]int{4}, 0.1, 0.0, 1)
	model.LearnFromMove(uttt.PieceCross, &stateBoard{state: uttt.EmptyState()}, uttt.EmptyState())
	model.ResetForNewGame()
	assert.Equal(t, 0, model.Pending())
}

func TestNetworkModelSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "network.json")
	state := place(t, uttt.EmptyState(), uttt.PieceCircle, [4]int{2, 0, 1, 2})

	model := NewNetworkModel([]int{6, 3}, 0.1, 0.0, 1)
	require.NoError(t, model.Save(path))

	loaded := NewNetworkModel([]int{4}, 0.1, 0.0, 1)
	require.NoError(t, loaded.Load(path))
	assert.InDelta(t, model.Value(uttt.PieceCross, nil, state), loaded.Value(uttt.PieceCross, nil, state), 1e-9)

	// wrong shape is rejected and the current network kept
	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"hidden":[2],"weights":[[[0.1]]]}`), 0o644))
	var perr *PersistenceError
	require.ErrorAs(t, loaded.Load(bad), &perr)
	assert.InDelta(t, model.Value(uttt.PieceCross, nil, state), loaded.Value(uttt.PieceCross, nil, state), 1e-9)
}
