package uttt

import (
	"github.com/pkg/errors"
)

const (
	StartingPosition string = "9/9/9/9/9/9/9/9/9 x -"
)

// ErrIllegalMove is returned (wrapped) whenever a move can't be played on the position
var ErrIllegalMove = errors.New("illegal move")

// Main position struct
type Position struct {
	position         BoardType // 2d array of the pieces [bigIndex][smallIndex]
	bitboards        [2][9]uint
	bigPositionState [9]PositionState // cross, circle, draw or no one on each small board
	stateList        *StateList       // history of the position (for MakeMove, UndoMove)
	nextBigIndex     PosType
	termination      Termination
}

// Create a heap-allocated, initialized Big Tic Tac Toe position
func NewPosition() *Position {
	pos := &Position{}
	pos.Init()
	return pos
}

// Make a deep copy of the position (has no shared memory with this object)
func (p *Position) Clone() Position {
	pos := Position{
		position:         p.position,
		bitboards:        p.bitboards,
		bigPositionState: p.bigPositionState,
		stateList:        &StateList{list: make([]BoardState, len(p.stateList.list), cap(p.stateList.list))},
		nextBigIndex:     p.nextBigIndex,
		termination:      p.termination,
	}
	copy(pos.stateList.list, p.stateList.list)
	return pos
}

// Initialize the position
func (p *Position) Init() {
	p.stateList = NewStateList()
	p.nextBigIndex = PosIndexIllegal
}

func (p *Position) Reset() {
	p.stateList.Clear()
	p.termination = TerminationNone
	p.nextBigIndex = PosIndexIllegal

	for i := range p.position {
		for j := range p.position[i] {
			p.position[i][j] = PieceNone
		}
	}

	for i := range p.bigPositionState {
		p.bigPositionState[i] = PositionUnResolved
		p.bitboards[0][i] = 0
		p.bitboards[1][i] = 0
	}
}

// Convert given 'small square' with given 'ourPiece' parameter, into (our bitboard, enemy bitboard)
func toBitboards(square [9]PieceType, ourPiece PieceType) (bitboard, enemy_bitboard uint) {
	for i, v := range square {
		if v == ourPiece {
			bitboard |= (1 << i)
		} else if v != PieceNone {
			enemy_bitboard |= (1 << i)
		}
	}

	return bitboard, enemy_bitboard
}

// Make sure bitboards represent the same position as the 2d arrays
func (p *Position) MatchBitboards() {
	for i, square := range p.position {
		p.bitboards[1][i], p.bitboards[0][i] = toBitboards(square, PieceCross)
	}
}

// Recompute small board states after the pieces were set directly (notation, encoded state)
func (pos *Position) SetupBoardState() {
	pos.MatchBitboards()
	for i := range pos.position {
		if pos.bigPositionState[i] == PositionUnResolved {
			pos.bigPositionState[i] = _checkSquareTermination(
				pos.bitboards[1][i], pos.bitboards[0][i],
			)
		}
	}
	// Don't allow playing on terminated ttt board
	if pos.nextBigIndex != PosIndexIllegal &&
		pos.bigPositionState[pos.nextBigIndex] != PositionUnResolved {
		pos.nextBigIndex = PosIndexIllegal
	}
}

// Getters
func (b *Position) Position() BoardType {
	return b.position
}

func (b *Position) Turn() TurnType {
	return !b.stateList.Last().turn
}

func (p *Position) BigIndex() PosType {
	return p.nextBigIndex
}

// Get the 'big position state'
func (p *Position) BigPositionState() [9]PositionState {
	return p.bigPositionState
}

// Moves played on this position, oldest first
func (p *Position) History() []PosType {
	return p.stateList.Moves()
}

// Verifies legality of given move, then if it's valid, make's it on the board
func (p *Position) MakeLegalMove(move PosType) error {
	if !p.IsLegal(move) {
		return errors.Wrapf(ErrIllegalMove, "move %s, possible moves=[%s]", move.String(), p.GenerateMoves().String())
	}
	p.MakeMove(move)
	return nil
}

// Make a move on the position, switches the sides, and puts current piece
// on the position [bigIndex][smallIndex], accepts any move
func (p *Position) MakeMove(move PosType) {
	// Can't make a move inside a terminated position
	bigIndex := move.BigIndex()
	if p.termination != TerminationNone {
		return
	}

	smallIndex := move.SmallIndex()
	if smallIndex > 8 || bigIndex > 8 {
		return
	}

	piece := p.Turn().Piece()
	posStateBefore := p.bigPositionState[bigIndex]
	index := _boolToInt(bool(p.Turn()))
	nextBigIndex := smallIndex

	p.position[bigIndex][smallIndex] = piece
	p.bitboards[index][bigIndex] ^= (1 << smallIndex)

	// The small board we played on may be resolved now
	p.bigPositionState[bigIndex] = _checkSquareTermination(
		p.bitboards[1][bigIndex], p.bitboards[0][bigIndex],
	)

	// If opponent's move would be on terminated tic tac toe board,
	// allow it to play on every board
	if p.bigPositionState[nextBigIndex] != PositionUnResolved {
		nextBigIndex = PosIndexIllegal
	}

	p.stateList.Append(move, !p.stateList.Last().turn, posStateBefore, p.nextBigIndex)
	p.nextBigIndex = nextBigIndex
}

// Undo last move, from the state list
func (p *Position) UndoMove() {
	if p.stateList.ValidSize() == 0 {
		return
	}

	lastState := p.stateList.Last()
	smallIndex := lastState.move.SmallIndex()
	bigIndex := lastState.move.BigIndex()
	index := _boolToInt(bool(lastState.turn))

	p.position[bigIndex][smallIndex] = PieceNone
	p.bitboards[index][bigIndex] ^= (1 << smallIndex)

	p.bigPositionState[bigIndex] = lastState.thisPositionState
	p.termination = TerminationNone
	p.nextBigIndex = lastState.prevBigIndex
	p.stateList.Remove()
}

// Check if given move is legal
func (p *Position) IsLegal(move PosType) bool {
	bi, si := move.BigIndex(), move.SmallIndex()
	if p.BigIndex() != PosIndexIllegal && bi != PosType(p.BigIndex()) {
		return false
	}

	// Index out of range, board terminated, non-empty square or tic tac toe board is terminated
	if bi >= 9 || si >= 9 ||
		p.termination != TerminationNone ||
		p.position[bi][si] != PieceNone ||
		p.bigPositionState[bi] != PositionUnResolved {
		return false
	}

	return true
}
