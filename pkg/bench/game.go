/*
Game driver subpackage, plays games and series of games between two
policies on a shared board and collects the results.
*/
package bench

import (
	"context"

	"github.com/IlikeChooros/go-uttt/pkg/policy"
	"github.com/IlikeChooros/go-uttt/pkg/uttt"
	"github.com/pkg/errors"
)

// ErrStalled is returned when a player didn't change the board on its turn
var ErrStalled = errors.New("player made no move")

// PlayGame plays one game on the board, X moves first. The board should
// be in its starting position. After every move both players that already
// moved get their learning signal, each with the state from before its own
// last move. The policies are detached from the board once the game ends.
func PlayGame(board policy.BoardView, x, o policy.Policy) (uttt.GameStatus, error) {
	return playGame(context.Background(), board, x, o, nil)
}

func playGame(ctx context.Context, board policy.BoardView, x, o policy.Policy, onMove func(moveNum int)) (uttt.GameStatus, error) {
	players := [2]policy.Policy{x, o}
	tokens := [2]uttt.PieceType{uttt.PieceCross, uttt.PieceCircle}
	var (
		last  [2]uttt.EncodedState
		moved [2]bool
	)

	for i, p := range players {
		p.StartNewGame()
		p.SetBoard(board, tokens[i])
	}
	defer func() {
		for _, p := range players {
			policy.Detach(p)
		}
	}()

	for moveNum := 0; board.Status() == uttt.StatusActive; moveNum++ {
		select {
		case <-ctx.Done():
			return board.Status(), ctx.Err()
		default:
			// continue
		}

		turn := moveNum % 2
		prev, err := players[turn].SelectNextMove()
		if err != nil {
			return board.Status(), errors.Wrapf(err, "move %d", moveNum+1)
		}
		if prev == board.EncodedState() {
			return board.Status(), errors.Wrapf(ErrStalled, "%s policy playing %v", players[turn].Kind(), tokens[turn])
		}
		last[turn], moved[turn] = prev, true

		for i, p := range players {
			if moved[i] {
				p.IncorporateLearningSignal(last[i])
			}
		}
		if onMove != nil {
			onMove(moveNum + 1)
		}
	}

	for _, p := range players {
		p.FinishGame()
	}
	return board.Status(), nil
}
