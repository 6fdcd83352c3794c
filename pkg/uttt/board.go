package uttt

import (
	"github.com/pkg/errors"
)

// Board is the live game the players act on. It owns the position and is
// the only place where moves get committed.
type Board struct {
	pos *Position
}

func NewBoard() *Board {
	return &Board{pos: NewPosition()}
}

// Create a board from the position notation, see Position.Notation
func NewBoardFromNotation(notation string) (*Board, error) {
	pos, err := FromNotation(notation)
	if err != nil {
		return nil, err
	}
	return &Board{pos: pos}, nil
}

// Clear the board for a new game
func (b *Board) Reset() {
	b.pos.Reset()
}

// Underlying position, shared with the board
func (b *Board) Position() *Position {
	return b.pos
}

func (b *Board) Notation() string {
	return b.pos.Notation()
}

// Side to move
func (b *Board) Turn() PieceType {
	return b.pos.Turn().Piece()
}

// Moves played so far, oldest first
func (b *Board) History() []PosType {
	return b.pos.History()
}

func (b *Board) EncodedState() EncodedState {
	return b.pos.Encode()
}

func (b *Board) Status() GameStatus {
	return b.pos.Status()
}

// Sub-board the next move is forced into, Unconstrained if any playable one may be used
func (b *Board) ForcedSubBoard() SubBoard {
	if bi := b.pos.BigIndex(); bi != PosIndexIllegal {
		return SubBoardAt(int(bi))
	}
	return Unconstrained
}

// Whether the sub-board is still open (not won, not full), ignoring the forced board rule
func (b *Board) IsPlayable(sb SubBoard) bool {
	return sb.Valid() && b.pos.bigPositionState[sb.Index()] == PositionUnResolved
}

// Every open sub-board in row-major order, empty once the game is over
func (b *Board) PlayableSubBoards() []SubBoard {
	if b.Status().IsTerminal() {
		return nil
	}

	boards := make([]SubBoard, 0, 9)
	for i, state := range b.pos.bigPositionState {
		if state == PositionUnResolved {
			boards = append(boards, SubBoardAt(i))
		}
	}
	return boards
}

// Empty squares of the sub-board in row-major order
func (b *Board) EmptyCells(sb SubBoard) []Cell {
	if !sb.Valid() {
		return nil
	}

	cells := make([]Cell, 0, 9)
	for i, piece := range b.pos.position[sb.Index()] {
		if piece == PieceNone {
			cells = append(cells, CellAt(i))
		}
	}
	return cells
}

// CommitMove plays the player's token on the board. Errors wrap ErrIllegalMove
// when the game is over, it's not the player's turn, the sub-board can't be
// played on or the cell is taken.
func (b *Board) CommitMove(player PieceType, sb SubBoard, cell Cell) error {
	if status := b.Status(); status.IsTerminal() {
		return errors.Wrapf(ErrIllegalMove, "game is over (%s)", status)
	}
	if turn := b.Turn(); player != turn {
		return errors.Wrapf(ErrIllegalMove, "%v to move, got %v", turn, player)
	}

	move := MoveFromCoords(sb, cell)
	if move == PosIllegal {
		return errors.Wrapf(ErrIllegalMove, "sub-board %v, cell %v out of range", sb, cell)
	}
	if err := b.pos.MakeLegalMove(move); err != nil {
		return err
	}

	// Resolve the termination now, so the status is up to date
	b.pos.IsTerminated()
	return nil
}
