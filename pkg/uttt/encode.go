package uttt

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Number of symbols in the encoded state
const EncodedLen = 81

// EncodedState is the flat, canonical encoding of the full 9x9 board.
// Symbol at 27*r + 9*c + 3*x + y belongs to sub-board (r, c), cell (x, y).
// Two positions hold the same pieces iff their encodings are equal.
type EncodedState string

// RangeError reports a coordinate outside of 0..2
type RangeError struct {
	SubBoard SubBoard
	Cell     Cell
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("coordinates out of range: sub-board %v, cell %v", e.SubBoard, e.Cell)
}

// Encoding of the board with no pieces
func EmptyState() EncodedState {
	return EncodedState(strings.Repeat(string(SymbolEmpty), EncodedLen))
}

// LocationIndex maps a sub-board and a cell to the flat index of the encoded state
func LocationIndex(sb SubBoard, cell Cell) (int, error) {
	if !sb.Valid() || !cell.Valid() {
		return -1, &RangeError{SubBoard: sb, Cell: cell}
	}
	return 27*sb.Row + 9*sb.Col + 3*cell.Row + cell.Col, nil
}

// WithHypotheticalMove returns a copy of the state with the player's symbol put
// on the given square. The input is never modified, moves are only committed
// through the board.
func WithHypotheticalMove(state EncodedState, sb SubBoard, cell Cell, player PieceType) (EncodedState, error) {
	idx, err := LocationIndex(sb, cell)
	if err != nil {
		return state, err
	}
	if len(state) != EncodedLen {
		return state, errors.Errorf("encoded state has %d symbols, expected %d", len(state), EncodedLen)
	}
	if !player.IsPlayer() {
		return state, errors.Errorf("%v is not a player token", player)
	}

	buf := []byte(state)
	buf[idx] = player.Symbol()
	return EncodedState(buf), nil
}

// Valid reports whether the state has the right length and only known symbols
func (s EncodedState) Valid() bool {
	if len(s) != EncodedLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case SymbolEmpty, SymbolCross, SymbolCircle:
		default:
			return false
		}
	}
	return true
}

// Piece at given coordinates, PieceNone for invalid coordinates
func (s EncodedState) At(sb SubBoard, cell Cell) PieceType {
	idx, err := LocationIndex(sb, cell)
	if err != nil || idx >= len(s) {
		return PieceNone
	}
	return PieceFromRune(rune(s[idx]))
}

// Encode the position's pieces
func (p *Position) Encode() EncodedState {
	buf := make([]byte, EncodedLen)
	// [bigIndex][smallIndex] is 9*bigIndex + smallIndex == 27*r + 9*c + 3*x + y
	for bi := range p.position {
		for si, piece := range p.position[bi] {
			buf[9*bi+si] = piece.Symbol()
		}
	}
	return EncodedState(buf)
}

// Load the pieces of an encoded state into the position, the history is dropped,
// the side to move is inferred from piece counts (cross starts)
// and any playable board may be chosen next.
func (p *Position) FromEncoded(state EncodedState) error {
	if !state.Valid() {
		return errors.Errorf("malformed encoded state %q", string(state))
	}

	p.Reset()
	crosses, circles := 0, 0
	for i := 0; i < EncodedLen; i++ {
		piece := PieceFromRune(rune(state[i]))
		p.position[i/9][i%9] = piece
		switch piece {
		case PieceCross:
			crosses++
		case PieceCircle:
			circles++
		}
	}

	if crosses > circles {
		p.stateList.Last().turn = CrossTurn
	}
	p.SetupBoardState()
	p.CheckTerminationPattern()
	return nil
}

// DecodeStatus evaluates the game status of an arbitrary encoded state
func DecodeStatus(state EncodedState) (GameStatus, error) {
	pos := NewPosition()
	if err := pos.FromEncoded(state); err != nil {
		return StatusActive, err
	}
	return pos.Status(), nil
}

// Features turns the state into a model input from the player's perspective:
// +1 for the player's pieces, -1 for the opponent's, 0 for empty squares.
func Features(state EncodedState, player PieceType) []float64 {
	features := make([]float64, EncodedLen)
	if !player.IsPlayer() {
		return features
	}
	own, opp := player.Symbol(), player.Opponent().Symbol()
	for i := 0; i < len(state) && i < EncodedLen; i++ {
		switch state[i] {
		case own:
			features[i] = 1
		case opp:
			features[i] = -1
		}
	}
	return features
}
