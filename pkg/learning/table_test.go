package learning

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/IlikeChooros/go-uttt/pkg/uttt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableModelDefaults(t *testing.T) {
	model := NewTableModel(DefaultAlpha)
	assert.Equal(t, DefaultInitialValue, model.Value(uttt.PieceCross, nil, uttt.EmptyState()))

	state := crossWonState(t)
	assert.Equal(t, 1.0, model.Value(uttt.PieceCross, nil, state))
	assert.Equal(t, 0.0, model.Value(uttt.PieceCircle, nil, state))
}

func TestTableModelLearnFromMove(t *testing.T) {
	model := NewTableModel(0.5)
	prev := uttt.EmptyState()
	board := &stateBoard{state: crossWonState(t)}

	// 0.5 + 0.5 * (1 - 0.5)
	model.LearnFromMove(uttt.PieceCross, board, prev)
	assert.InDelta(t, 0.75, model.Value(uttt.PieceCross, board, prev), 1e-12)

	// 0.5 + 0.5 * (0 - 0.5)
	model.LearnFromMove(uttt.PieceCircle, board, prev)
	assert.InDelta(t, 0.25, model.Value(uttt.PieceCircle, board, prev), 1e-12)

	assert.Equal(t, 1, model.Len(uttt.PieceCross))
	assert.Equal(t, 1, model.Len(uttt.PieceCircle))

	// nothing is stored for a non-player
	model.LearnFromMove(uttt.PieceNone, board, prev)
	assert.Equal(t, 0, model.Len(uttt.PieceNone))
}

func TestTableModelSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models", "table.json")
	prev := place(t, uttt.EmptyState(), uttt.PieceCross, [4]int{1, 1, 1, 1})
	board := &stateBoard{state: crossWonState(t)}

	model := NewTableModel(0.3)
	model.LearnFromMove(uttt.PieceCross, board, prev)
	require.NoError(t, model.Save(path))

	loaded := NewTableModel(DefaultAlpha)
	require.NoError(t, loaded.Load(path))
	assert.Equal(t, 0.3, loaded.Alpha())
	assert.InDelta(t, model.Value(uttt.PieceCross, nil, prev), loaded.Value(uttt.PieceCross, nil, prev), 1e-12)
	assert.Equal(t, DefaultInitialValue, loaded.Value(uttt.PieceCircle, nil, prev))
}

func TestTableModelLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"garbage":    `{not json`,
		"bad state":  `{"alpha":0.4,"values":{"x":{"xo":0.9}}}`,
		"bad player": `{"alpha":0.4,"values":{"z":{}}}`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".json")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			model := NewTableModel(0.2)
			prev := uttt.EmptyState()
			model.LearnFromMove(uttt.PieceCross, &stateBoard{state: crossWonState(t)}, prev)

			var perr *PersistenceError
			require.ErrorAs(t, model.Load(path), &perr)
			assert.Equal(t, 0.2, model.Alpha())
			assert.Equal(t, 1, model.Len(uttt.PieceCross))
		})
	}
}
