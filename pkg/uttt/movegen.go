package uttt

import (
	"math/bits"
)

// Generate all possible moves in given position
func (pos *Position) GenerateMoves() *MoveList {
	movelist := NewMoveList()
	if pos.termination != TerminationNone {
		return movelist
	}

	// No forced board, every unresolved small board is open
	if pos.BigIndex() == PosIndexIllegal {
		for bigIndex := 0; bigIndex < 9; bigIndex++ {
			if pos.bigPositionState[bigIndex] != PositionUnResolved {
				continue
			}
			pos.appendFree(movelist, bigIndex)
		}
	} else {
		bi := pos.BigIndex()
		if pos.bigPositionState[bi] != PositionUnResolved {
			return movelist
		}
		pos.appendFree(movelist, int(bi))
	}

	return movelist
}

// Append every empty square of the small board
func (pos *Position) appendFree(movelist *MoveList, bigIndex int) {
	// This is valid, because these 2 bitboards are mutally exclusive
	free := 0b111111111 ^ (pos.bitboards[0][bigIndex] | pos.bitboards[1][bigIndex])
	for free != 0 {
		movelist.Append(bigIndex, bits.TrailingZeros(free))
		free &= free - 1
	}
}
