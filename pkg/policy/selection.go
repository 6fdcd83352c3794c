package policy

import (
	"slices"

	"github.com/IlikeChooros/go-uttt/pkg/uttt"
	"github.com/pkg/errors"
)

// ErrNoLegalMove means an active board offered nothing to play
var ErrNoLegalMove = errors.New("no legal move available")

type move struct {
	sub  uttt.SubBoard
	cell uttt.Cell
}

func bySubBoardIndex(a, b uttt.SubBoard) int { return a.Index() - b.Index() }
func byCellIndex(a, b uttt.Cell) int         { return a.Index() - b.Index() }

// Forced sub-board, if it's set and can still be played on
func forcedPlayable(board BoardView, playable []uttt.SubBoard) (uttt.SubBoard, bool) {
	forced := board.ForcedSubBoard()
	if forced.IsUnconstrained() || !slices.Contains(playable, forced) {
		return uttt.Unconstrained, false
	}
	return forced, true
}

// Sub-boards the next move may go to: the forced one when it's playable,
// otherwise every playable sub-board. Always in row-major order.
func candidateSubBoards(board BoardView) ([]uttt.SubBoard, error) {
	playable := board.PlayableSubBoards()
	if forced, ok := forcedPlayable(board, playable); ok {
		return []uttt.SubBoard{forced}, nil
	}
	if len(playable) == 0 {
		return nil, ErrNoLegalMove
	}

	candidates := slices.Clone(playable)
	slices.SortFunc(candidates, bySubBoardIndex)
	return candidates, nil
}

// Empty cells of the sub-board in row-major order
func sortedCells(board BoardView, sb uttt.SubBoard) []uttt.Cell {
	cells := slices.Clone(board.EmptyCells(sb))
	slices.SortFunc(cells, byCellIndex)
	return cells
}

// Uniform sub-board among the candidates, then uniform empty cell inside it.
// Sub-boards with fewer empty cells give each of their cells a higher chance.
func randomMove(board BoardView, rng randSource, candidates []uttt.SubBoard) (move, error) {
	if len(candidates) == 0 {
		return move{}, ErrNoLegalMove
	}
	sb := candidates[rng.Intn(len(candidates))]
	cells := sortedCells(board, sb)
	if len(cells) == 0 {
		return move{}, errors.Wrapf(ErrNoLegalMove, "sub-board %v is full", sb)
	}
	return move{sub: sb, cell: cells[rng.Intn(len(cells))]}, nil
}

// Score every candidate move with the model and keep the best one.
// Sub-boards and cells are visited in row-major order and only a strictly
// higher score replaces the current best, so ties go to the first move seen.
func greedyMove(board BoardView, model ValueModel, player uttt.PieceType, state uttt.EncodedState, candidates []uttt.SubBoard) (move, float64, error) {
	var (
		best      move
		bestScore float64
		found     bool
	)

	for _, sb := range candidates {
		for _, cell := range sortedCells(board, sb) {
			next, err := uttt.WithHypotheticalMove(state, sb, cell, player)
			if err != nil {
				return move{}, 0, err
			}

			score := model.Value(player, board, next)
			if !found || score > bestScore {
				best, bestScore, found = move{sub: sb, cell: cell}, score, true
			}
		}
	}

	if !found {
		return move{}, 0, ErrNoLegalMove
	}
	return best, bestScore, nil
}

// Commit the move, wrapping the board's error with the policy's context
func commit(s *seat, kind Kind, m move) error {
	if err := s.board.CommitMove(s.player, m.sub, m.cell); err != nil {
		return errors.Wrapf(err, "%s policy playing %v at sub-board %v cell %v", kind, s.player, m.sub, m.cell)
	}
	return nil
}

// Subset of *rand.Rand used by the policies
type randSource interface {
	Intn(n int) int
	Float64() float64
}
