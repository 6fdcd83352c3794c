package uttt

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// string notation for the big tic tac toe position
// Much like the FEN representation of a chessboard
// Will result in something like this:
//
//	X/X/X/X/X/X/X/X/X <turn> <big index>
//
// where `X` is one small square string, pieces are 'o' and 'x'
// and digits count consecutive empty squares. For example
//
//	o | x | x
//	x | o |
//	o |   |
//
// is written as 'oxxxo1o2'.
//
// <turn> - either 'o' or 'x'
//
// <big index> - where should current player make move on the
// big plane, 0..8, or - if player can move anywhere
//
// Examples:
//
// * 9/9/9/9/9/9/9/9/9 x -
//
// * 9/9/9/7x1/4xo3/8x/9/4o4/o8 x 0
func (p *Position) Notation() string {
	builder := strings.Builder{}

	for rowIndex, row := range p.position {
		counter := 0
		for _, piece := range row {
			if piece == PieceNone {
				counter++
				continue
			}
			if counter > 0 {
				builder.WriteString(strconv.Itoa(counter))
				counter = 0
			}
			builder.WriteByte(piece.Symbol())
		}

		if counter > 0 {
			builder.WriteString(strconv.Itoa(counter))
		}
		if rowIndex != 8 {
			builder.WriteByte('/')
		}
	}

	builder.WriteByte(' ')
	builder.WriteByte(p.Turn().Piece().Symbol())

	builder.WriteByte(' ')
	if p.BigIndex() == PosIndexIllegal {
		builder.WriteByte('-')
	} else {
		builder.WriteByte('0' + byte(p.BigIndex()))
	}

	return builder.String()
}

// Create the position from given notation string, will reset current state,
// load current position and setup termination flags
func (p *Position) FromNotation(notation string) error {
	p.Reset()

	if notation == "startpos" {
		notation = StartingPosition
	}

	return _FromNotation(p, notation)
}

// Create from notation position
func FromNotation(notation string) (*Position, error) {
	pos := NewPosition()
	return pos, pos.FromNotation(notation)
}

// Assign this position (from notation string) to given position object
func _FromNotation(pos *Position, notation string) error {
	fields := strings.Fields(notation)
	if len(fields) != 3 {
		return errors.Errorf("invalid notation %q, expected 3 space separated fields, got %d", notation, len(fields))
	}

	squares := strings.Split(fields[0], "/")
	if len(squares) != 9 {
		return errors.Errorf("invalid notation structure, expected 8 slashes, got %d", len(squares)-1)
	}

	for bigIndex, square := range squares {
		smallIndex := 0
		for i, v := range square {
			switch {
			case v == 'x' || v == 'o':
				if smallIndex >= 9 {
					return errors.Errorf("too many squares within bigIndex=%d", bigIndex)
				}
				pos.position[bigIndex][smallIndex] = PieceFromRune(v)
				smallIndex++
			case '1' <= v && v <= '9':
				smallIndex += int(v - '0')
				if smallIndex > 9 {
					return errors.Errorf("invalid number of skip squares %d, at index = %d", smallIndex, i)
				}
			default:
				return errors.Errorf("invalid notation token %q within bigIndex=%d", v, bigIndex)
			}
		}
		if smallIndex != 9 {
			return errors.Errorf("invalid number of squares within bigIndex=%d", bigIndex)
		}
	}

	// The sentinel entry stores the side that moved 'last'
	switch fields[1] {
	case "x":
		pos.stateList.Last().turn = CircleTurn
	case "o":
		pos.stateList.Last().turn = CrossTurn
	default:
		return errors.Errorf("invalid side %q", fields[1])
	}

	switch v := fields[2]; {
	case v == "-":
		pos.nextBigIndex = PosIndexIllegal
	case len(v) == 1 && v[0] >= '0' && v[0] <= '8':
		pos.nextBigIndex = PosType(v[0] - '0')
	default:
		return errors.Errorf("invalid big index %q, expected a digit 0-8 or -", v)
	}

	pos.SetupBoardState()
	pos.CheckTerminationPattern()
	return nil
}
