package uttt

import (
	"fmt"
	"math/rand"
	"testing"
)

func TestRandomPlayout(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for i := 0; i < 2000; i++ {
		t.Run(fmt.Sprintf("Playout-%d", i), func(t *testing.T) {
			board := NewBoard()
			movesLeft := 81
			for board.Status() == StatusActive && movesLeft > 0 {
				moves := board.Position().GenerateMoves()
				if moves.Size() == 0 {
					t.Fatal("No legal moves available")
				}
				move := moves.Slice()[r.Intn(moves.Size())]
				if err := board.CommitMove(board.Turn(), move.SubBoard(), move.Cell()); err != nil {
					t.Fatalf("move %s rejected: %v", move, err)
				}
				movesLeft--
			}
			if board.Status() == StatusActive {
				t.Fatal("Game ended without a termination condition")
			}
		})
	}
}

func TestUndoRestoresPosition(t *testing.T) {
	pos := NewPosition()
	start := pos.Notation()

	moves := []PosType{MakeMove(4, 4), MakeMove(4, 0), MakeMove(0, 4)}
	for _, m := range moves {
		if err := pos.MakeLegalMove(m); err != nil {
			t.Fatal(err)
		}
	}
	for range moves {
		pos.UndoMove()
	}

	if pos.Notation() != start {
		t.Errorf("expected %s after undo, got %s", start, pos.Notation())
	}
}

func TestSquareTermination(t *testing.T) {
	if s := _checkSquareTermination(0b100010001, 0); s != PositionCrossWon {
		t.Errorf("diagonal should be won by cross, got %d", s)
	}
	if s := _checkSquareTermination(0, 0b000111000); s != PositionCircleWon {
		t.Errorf("middle row should be won by circle, got %d", s)
	}
	if s := _checkSquareTermination(0b101100010, 0b010011101); s != PositionDraw {
		t.Errorf("full board without a line should be a draw, got %d", s)
	}
}
