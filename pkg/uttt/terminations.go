package uttt

type Termination int

const (
	TerminationNone            Termination = 0
	TerminationCircleWon       Termination = 1
	TerminationCrossWon        Termination = 2
	TerminationDraw            Termination = 4
	TerminationIllegalPosition Termination = 16
)

// horizontal, vertical and diagonal patterns as bitboards
var _winningBitboardPatterns [8]uint = [...]uint{
	0b111000000, 0b000111000, 0b000000111,
	0b100100100, 0b010010010, 0b001001001,
	0b100010001, 0b001010100,
}

var _patterns = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Get the termination reason (after, calling IsTerminated, or CheckTerminationPattern)
func (p *Position) Termination() Termination {
	return p.termination
}

// Check if the whole board is terminated
func (p *Position) IsTerminated() bool {
	if p.termination != TerminationNone {
		return true
	}

	p.CheckTerminationPattern()
	return p.termination != TerminationNone
}

// Game status of the position, evaluates the termination if needed.
// A position with no legal continuation (illegal setup) counts as a draw.
func (p *Position) Status() GameStatus {
	p.IsTerminated()
	switch p.termination {
	case TerminationNone:
		return StatusActive
	case TerminationCrossWon:
		return StatusXWins
	case TerminationCircleWon:
		return StatusOWins
	default:
		return StatusDraw
	}
}

// Check if given slice is filled with items other than 'none'
func _isFilled[T comparable](arr []T, none T) bool {
	is_filled := true
	for i := 0; is_filled && i < len(arr); i++ {
		is_filled = arr[i] != none
	}
	return is_filled
}

// Check if given 'small' square is terminated
func _checkSquareTermination(crossbb, circlebb uint) PositionState {
	for i := 0; i < 8; i++ {
		if crossbb&_winningBitboardPatterns[i] == _winningBitboardPatterns[i] {
			return PositionCrossWon
		}
		if circlebb&_winningBitboardPatterns[i] == _winningBitboardPatterns[i] {
			return PositionCircleWon
		}
	}

	// Fully filled without a line
	if (crossbb | circlebb) == 0b111111111 {
		return PositionDraw
	}
	return PositionUnResolved
}

// Resolve the termination of the big board, assumes 'bigPositionState' is up to date
func (pos *Position) CheckTerminationPattern() {
	// indexing _patterns directly, ranging over it copies every [3]int
	for i := 0; i < 8; i++ {
		if v := pos.bigPositionState[_patterns[i][0]]; v == pos.bigPositionState[_patterns[i][1]] &&
			pos.bigPositionState[_patterns[i][1]] == pos.bigPositionState[_patterns[i][2]] &&
			v != PositionUnResolved && v != PositionDraw {

			if v == PositionCircleWon {
				pos.termination = TerminationCircleWon
			} else {
				pos.termination = TerminationCrossWon
			}
			return
		}
	}

	// No winner, every small board resolved means a draw
	if _isFilled(pos.bigPositionState[:], PositionUnResolved) {
		pos.termination = TerminationDraw
	} else if bi := pos.BigIndex(); bi != PosIndexIllegal && pos.bigPositionState[bi] != PositionUnResolved {
		// Setup position pointing at a resolved board, no move is possible
		pos.termination = TerminationIllegalPosition
	} else {
		pos.termination = TerminationNone
	}
}
