// Package policy implements the players of Ultimate Tic Tac Toe: how the next
// move is chosen on a board and how (if at all) the outcome is learned from.
//
// All variants share one contract, Policy. A policy doesn't own the board or the
// value model it uses, both are injected and stay with the caller:
//
//	p := policy.NewEpsilonGreedy(model, rng)
//	p.StartNewGame()
//	p.SetBoard(board, uttt.PieceCross)
//	prev, err := p.SelectNextMove()
//	...
//	p.IncorporateLearningSignal(prev)
//	p.FinishGame()
//
// Policies are not safe for concurrent use, a game is played turn by turn.
package policy

import (
	"io"

	"github.com/IlikeChooros/go-uttt/pkg/uttt"
)

// BoardView is everything a policy needs to know about the live game
type BoardView interface {
	EncodedState() uttt.EncodedState
	Status() uttt.GameStatus
	// Sub-board the next move is forced into, uttt.Unconstrained if there is none
	ForcedSubBoard() uttt.SubBoard
	// Open sub-boards, non-empty while the game is active
	PlayableSubBoards() []uttt.SubBoard
	// Empty squares of the sub-board, non-empty for every playable sub-board
	EmptyCells(sb uttt.SubBoard) []uttt.Cell
	// Play the move, fails with uttt.ErrIllegalMove if it's not legal
	CommitMove(player uttt.PieceType, sb uttt.SubBoard, cell uttt.Cell) error
}

// Renderer is implemented by boards that can print themselves
type Renderer interface {
	Render(w io.Writer) error
}

// ValueModel scores board states for a player and learns from played moves
type ValueModel interface {
	// Value of the (possibly hypothetical) state for the player, higher is better
	Value(player uttt.PieceType, board BoardView, state uttt.EncodedState) float64
	// Learn from the transition between 'prev' and the board's current state
	LearnFromMove(player uttt.PieceType, board BoardView, prev uttt.EncodedState)
	ResetForNewGame()
	GameOver()
	Save(path string) error
	Load(path string) error
}

// Kind tags the policy variant
type Kind int

const (
	KindRandom Kind = iota
	KindInteractive
	KindEpsilonGreedy
	KindFrozenGreedy
)

func (k Kind) String() string {
	switch k {
	case KindRandom:
		return "random"
	case KindInteractive:
		return "interactive"
	case KindEpsilonGreedy:
		return "epsilon-greedy"
	case KindFrozenGreedy:
		return "frozen-greedy"
	default:
		return "unknown"
	}
}

// Policy is a player. The set of implementations is closed, see Kind.
type Policy interface {
	// Attach the policy to the board for the next game, playing the given token
	SetBoard(board BoardView, player uttt.PieceType)
	// Whether the policy is attached to a game that is still going
	IsActive() bool
	// Choose and commit one move. Returns the encoded state from before the move,
	// if the game isn't active nothing is played and the current state is returned.
	SelectNextMove() (uttt.EncodedState, error)
	// Learn from the transition from 'prev' to the current board state
	IncorporateLearningSignal(prev uttt.EncodedState)
	StartNewGame()
	FinishGame()
	Kind() Kind

	attachment() *seat
}

// Learner is implemented by the policies backed by a value model
type Learner interface {
	Policy
	SaveLearning(path string) error
	LoadLearning(path string) error
}

// seat holds the board a policy is attached to and the token it plays,
// it also provides the no-op defaults of the contract
type seat struct {
	board  BoardView
	player uttt.PieceType
}

func (s *seat) SetBoard(board BoardView, player uttt.PieceType) {
	s.board = board
	s.player = player
}

func (s *seat) IsActive() bool {
	return s.board != nil && s.board.Status() == uttt.StatusActive
}

func (s *seat) Board() BoardView {
	return s.board
}

func (s *seat) Player() uttt.PieceType {
	return s.player
}

func (s *seat) IncorporateLearningSignal(uttt.EncodedState) {}
func (s *seat) StartNewGame()                               {}
func (s *seat) FinishGame()                                 {}

func (s *seat) attachment() *seat {
	return s
}

// Encoded state of the attached board, the empty board when detached
func (s *seat) currentState() uttt.EncodedState {
	if s.board == nil {
		return uttt.EmptyState()
	}
	return s.board.EncodedState()
}

// Detach the policy from its board, the policy stays inactive until the next SetBoard
func Detach(p Policy) {
	p.attachment().board = nil
}
