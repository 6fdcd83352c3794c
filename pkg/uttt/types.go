package uttt

import (
	"fmt"
	"unsafe"
)

// Type defines for the position
type PieceType int8
type TurnType bool
type PosType uint8 // Also used as move representation
type BoardType [9][9]PieceType
type PositionState uint8

// Fast bool to int conversion
func _boolToInt(v bool) int {
	return int(*(*byte)(unsafe.Pointer(&v)))
}

// Enum for position
const (
	PosIllegal      PosType = 255
	PosIndexIllegal PosType = 15 // same as big/small index mask
)

const (
	PositionUnResolved PositionState = iota
	PositionDraw
	PositionCircleWon
	PositionCrossWon
)

// Enum for the piece type, a player's token is either PieceCross (X) or PieceCircle (O)
const (
	PieceNone PieceType = iota
	PieceCircle
	PieceCross
)

// Enum for the turns
const (
	CircleTurn TurnType = false
	CrossTurn  TurnType = true
)

// Symbols used in the encoded state and the notation
const (
	SymbolEmpty  byte = '.'
	SymbolCross  byte = 'x'
	SymbolCircle byte = 'o'
)

// Create piece from a rune
func PieceFromRune(square rune) PieceType {
	switch square {
	case 'x', 'X':
		return PieceCross
	case 'o', 'O':
		return PieceCircle
	default:
		return PieceNone
	}
}

// Symbol of the piece inside the encoded state
func (p PieceType) Symbol() byte {
	switch p {
	case PieceCross:
		return SymbolCross
	case PieceCircle:
		return SymbolCircle
	default:
		return SymbolEmpty
	}
}

// Whether this piece is a player's token (X or O)
func (p PieceType) IsPlayer() bool {
	return p == PieceCross || p == PieceCircle
}

// Get the opponent's token, PieceNone stays PieceNone
func (p PieceType) Opponent() PieceType {
	switch p {
	case PieceCross:
		return PieceCircle
	case PieceCircle:
		return PieceCross
	default:
		return PieceNone
	}
}

func (p PieceType) String() string {
	switch p {
	case PieceCross:
		return "X"
	case PieceCircle:
		return "O"
	default:
		return "-"
	}
}

// Piece that moves on this turn
func (t TurnType) Piece() PieceType {
	if t == CrossTurn {
		return PieceCross
	}
	return PieceCircle
}

// GameStatus is the outcome of the whole game, as seen by the players
type GameStatus uint8

const (
	StatusActive GameStatus = iota
	StatusXWins
	StatusOWins
	StatusDraw
)

func (s GameStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusXWins:
		return "x-wins"
	case StatusOWins:
		return "o-wins"
	case StatusDraw:
		return "draw"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// Winner of the game, PieceNone if there is none (yet)
func (s GameStatus) Winner() PieceType {
	switch s {
	case StatusXWins:
		return PieceCross
	case StatusOWins:
		return PieceCircle
	default:
		return PieceNone
	}
}

func (s GameStatus) IsTerminal() bool {
	return s != StatusActive
}

// SubBoard is the (row, col) coordinate of one of the 9 small boards
type SubBoard struct {
	Row, Col int
}

// Cell is the (row, col) coordinate of a square inside a sub-board
type Cell struct {
	Row, Col int
}

// Unconstrained means the player may choose any playable sub-board
var Unconstrained = SubBoard{Row: -1, Col: -1}

func (sb SubBoard) IsUnconstrained() bool {
	return sb.Row < 0 && sb.Col < 0
}

func (sb SubBoard) Valid() bool {
	return inRange(sb.Row) && inRange(sb.Col)
}

// Index of the sub-board on the big board, 0..8 row-major
func (sb SubBoard) Index() int {
	return 3*sb.Row + sb.Col
}

func (sb SubBoard) String() string {
	if sb.IsUnconstrained() {
		return "(any)"
	}
	return fmt.Sprintf("(%d,%d)", sb.Row, sb.Col)
}

func (c Cell) Valid() bool {
	return inRange(c.Row) && inRange(c.Col)
}

// Index of the cell inside its sub-board, 0..8 row-major
func (c Cell) Index() int {
	return 3*c.Row + c.Col
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Sub-board with given 0..8 index
func SubBoardAt(index int) SubBoard {
	return SubBoard{Row: index / 3, Col: index % 3}
}

// Cell with given 0..8 index
func CellAt(index int) Cell {
	return Cell{Row: index / 3, Col: index % 3}
}

func inRange(v int) bool {
	return v >= 0 && v <= 2
}
