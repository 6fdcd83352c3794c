package uttt

// One entry of the position's history, enough to undo the move
type BoardState struct {
	move              PosType
	turn              TurnType
	thisPositionState PositionState
	prevBigIndex      PosType // usually move.SmallIndex, PosIndexIllegal if that board was resolved
}

// Stores the history of the position as a slice of BoardState
type StateList struct {
	list []BoardState
}

// Get new StateList object
func NewStateList() *StateList {
	sl := new(StateList)
	sl.Init()
	return sl
}

// Initialize the state list with the sentinel entry (circle 'moved' last, cross to play)
func (sl *StateList) Init() {
	sl.list = make([]BoardState, 0, 82)
	sl.Append(PosIllegal, CircleTurn, PositionUnResolved, PosIndexIllegal)
}

// Append new state
func (sl *StateList) Append(move PosType, turn TurnType, state PositionState, prevBigIndex PosType) {
	sl.list = append(sl.list, BoardState{move, turn, state, prevBigIndex})
}

// Reset all states (remove them)
func (sl *StateList) Clear() {
	sl.list = nil
	sl.Init()
}

// Remove last state
func (sl *StateList) Remove() {
	sl.list = sl.list[:len(sl.list)-1]
}

// Number of moves played
func (sl *StateList) ValidSize() int {
	return len(sl.list) - 1
}

// Get the last element of the state list (current state of the board)
func (sl *StateList) Last() *BoardState {
	return &sl.list[len(sl.list)-1]
}

// Moves played so far, oldest first
func (sl *StateList) Moves() []PosType {
	moves := make([]PosType, 0, sl.ValidSize())
	for _, s := range sl.list[1:] {
		moves = append(moves, s.move)
	}
	return moves
}
