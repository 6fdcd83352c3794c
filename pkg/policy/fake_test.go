package policy

import (
	"slices"

	"github.com/IlikeChooros/go-uttt/pkg/uttt"
	"github.com/pkg/errors"
)

type commitCall struct {
	player uttt.PieceType
	sub    uttt.SubBoard
	cell   uttt.Cell
}

// fakeBoard is a hand-made board view, any layout can be described with it
type fakeBoard struct {
	state    uttt.EncodedState
	status   uttt.GameStatus
	forced   uttt.SubBoard
	playable []uttt.SubBoard
	empty    map[uttt.SubBoard][]uttt.Cell
	commits  []commitCall
	fail     error
}

// Board with no forced sub-board and every cell of the given sub-boards empty
func newFakeBoard(playable ...uttt.SubBoard) *fakeBoard {
	b := &fakeBoard{
		state:    uttt.EmptyState(),
		status:   uttt.StatusActive,
		forced:   uttt.Unconstrained,
		playable: playable,
		empty:    make(map[uttt.SubBoard][]uttt.Cell),
	}
	for _, sb := range playable {
		for i := 0; i < 9; i++ {
			b.empty[sb] = append(b.empty[sb], uttt.CellAt(i))
		}
	}
	return b
}

func (b *fakeBoard) EncodedState() uttt.EncodedState         { return b.state }
func (b *fakeBoard) Status() uttt.GameStatus                 { return b.status }
func (b *fakeBoard) ForcedSubBoard() uttt.SubBoard           { return b.forced }
func (b *fakeBoard) PlayableSubBoards() []uttt.SubBoard      { return b.playable }
func (b *fakeBoard) EmptyCells(sb uttt.SubBoard) []uttt.Cell { return b.empty[sb] }

func (b *fakeBoard) CommitMove(player uttt.PieceType, sb uttt.SubBoard, cell uttt.Cell) error {
	if b.fail != nil {
		return b.fail
	}
	if !slices.Contains(b.playable, sb) || !slices.Contains(b.empty[sb], cell) {
		return errors.Wrapf(uttt.ErrIllegalMove, "%v %v", sb, cell)
	}
	b.commits = append(b.commits, commitCall{player, sb, cell})
	return nil
}

func (b *fakeBoard) last() commitCall {
	return b.commits[len(b.commits)-1]
}

// fakeModel scores states with 'score' and counts the lifecycle calls
type fakeModel struct {
	score   func(state uttt.EncodedState) float64
	learned []uttt.EncodedState
	resets  int
	overs   int
	saved   []string
	loaded  []string
}

func (m *fakeModel) Value(_ uttt.PieceType, _ BoardView, state uttt.EncodedState) float64 {
	if m.score == nil {
		return 0
	}
	return m.score(state)
}

func (m *fakeModel) LearnFromMove(_ uttt.PieceType, _ BoardView, prev uttt.EncodedState) {
	m.learned = append(m.learned, prev)
}

func (m *fakeModel) ResetForNewGame() { m.resets++ }
func (m *fakeModel) GameOver()        { m.overs++ }

func (m *fakeModel) Save(path string) error {
	m.saved = append(m.saved, path)
	return nil
}

func (m *fakeModel) Load(path string) error {
	m.loaded = append(m.loaded, path)
	return nil
}

// Scores only the given flat index, the model prefers a move there
func preferIndex(idx int, player uttt.PieceType) func(uttt.EncodedState) float64 {
	return func(state uttt.EncodedState) float64 {
		if state[idx] == player.Symbol() {
			return 1
		}
		return 0
	}
}
