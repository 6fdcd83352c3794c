package learning

import (
	"encoding/json"

	"github.com/IlikeChooros/go-uttt/pkg/policy"
	"github.com/IlikeChooros/go-uttt/pkg/uttt"
	"github.com/pkg/errors"
)

var _ policy.ValueModel = (*TableModel)(nil)

// TableModel keeps one value per seen state and player,
// updated with V(prev) += alpha * (V(current) - V(prev)).
type TableModel struct {
	alpha  float64
	values map[uttt.PieceType]map[uttt.EncodedState]float64
}

type tableSnapshot struct {
	Alpha  float64                       `json:"alpha"`
	Values map[string]map[string]float64 `json:"values"`
}

func NewTableModel(alpha float64) *TableModel {
	return &TableModel{
		alpha:  alpha,
		values: newValues(),
	}
}

func newValues() map[uttt.PieceType]map[uttt.EncodedState]float64 {
	return map[uttt.PieceType]map[uttt.EncodedState]float64{
		uttt.PieceCross:  {},
		uttt.PieceCircle: {},
	}
}

func (m *TableModel) Alpha() float64 {
	return m.alpha
}

// Number of learned states of the player
func (m *TableModel) Len(player uttt.PieceType) int {
	return len(m.values[player])
}

func (m *TableModel) Value(player uttt.PieceType, _ policy.BoardView, state uttt.EncodedState) float64 {
	if v, ok := terminalValue(player, state); ok {
		return v
	}
	if v, ok := m.values[player][state]; ok {
		return v
	}
	return DefaultInitialValue
}

func (m *TableModel) LearnFromMove(player uttt.PieceType, board policy.BoardView, prev uttt.EncodedState) {
	table, ok := m.values[player]
	if !ok || board == nil {
		return
	}

	target := m.Value(player, board, board.EncodedState())
	current := m.Value(player, board, prev)
	table[prev] = current + m.alpha*(target-current)
}

func (m *TableModel) ResetForNewGame() {}
func (m *TableModel) GameOver()        {}

func (m *TableModel) Save(path string) error {
	snap := tableSnapshot{Alpha: m.alpha, Values: make(map[string]map[string]float64, 2)}
	for player, table := range m.values {
		values := make(map[string]float64, len(table))
		for state, v := range table {
			values[string(state)] = v
		}
		snap.Values[string(player.Symbol())] = values
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}
	return writeFile(path, data)
}

// Load replaces the learned values, on error the model is left untouched
func (m *TableModel) Load(path string) error {
	data, err := readFile(path)
	if err != nil {
		return err
	}

	snap := tableSnapshot{}
	if err := json.Unmarshal(data, &snap); err != nil {
		return &PersistenceError{Op: "load", Path: path, Err: err}
	}

	values := newValues()
	for token, table := range snap.Values {
		player := uttt.PieceNone
		if len(token) == 1 {
			player = uttt.PieceFromRune(rune(token[0]))
		}
		if !player.IsPlayer() {
			return &PersistenceError{Op: "load", Path: path, Err: errors.Errorf("unknown player %q", token)}
		}
		for state, v := range table {
			if !uttt.EncodedState(state).Valid() {
				return &PersistenceError{Op: "load", Path: path, Err: errors.Errorf("malformed state %q", state)}
			}
			values[player][uttt.EncodedState(state)] = v
		}
	}

	if snap.Alpha > 0 {
		m.alpha = snap.Alpha
	}
	m.values = values
	return nil
}
