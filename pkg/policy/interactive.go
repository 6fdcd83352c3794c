package policy

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/IlikeChooros/go-uttt/pkg/uttt"
	"github.com/pkg/errors"
)

// Interactive asks a human for the moves, reading 'row col' pairs line by line.
// Invalid or occupied choices are rejected and asked for again.
type Interactive struct {
	seat
	in  *bufio.Scanner
	out io.Writer
}

func NewInteractive(in io.Reader, out io.Writer) *Interactive {
	return &Interactive{in: bufio.NewScanner(in), out: out}
}

func (p *Interactive) Kind() Kind {
	return KindInteractive
}

func (p *Interactive) SelectNextMove() (uttt.EncodedState, error) {
	prev := p.currentState()
	if !p.IsActive() {
		return prev, nil
	}

	fmt.Fprintf(p.out, "you are player %v\n", p.player)
	if r, ok := p.board.(Renderer); ok {
		if err := r.Render(p.out); err != nil {
			return prev, err
		}
	}

	playable := p.board.PlayableSubBoards()
	sb, ok := forcedPlayable(p.board, playable)
	if !ok {
		fmt.Fprintln(p.out, "next board is inactive, please choose a new board")
		var err error
		sb, err = p.askSubBoard(playable)
		if err != nil {
			return prev, err
		}
	}

	fmt.Fprintf(p.out, "make your move on board %v\n", sb)
	cell, err := p.askCell(sb)
	if err != nil {
		return prev, err
	}
	return prev, commit(&p.seat, p.Kind(), move{sub: sb, cell: cell})
}

func (p *Interactive) askSubBoard(playable []uttt.SubBoard) (uttt.SubBoard, error) {
	for {
		r, c, err := p.readPair("enter row and col for board: ")
		if err != nil {
			return uttt.Unconstrained, err
		}
		if sb := (uttt.SubBoard{Row: r, Col: c}); sb.Valid() && slices.Contains(playable, sb) {
			return sb, nil
		}
		fmt.Fprintln(p.out, "invalid board")
	}
}

func (p *Interactive) askCell(sb uttt.SubBoard) (uttt.Cell, error) {
	empty := p.board.EmptyCells(sb)
	for {
		x, y, err := p.readPair("enter row and col for space: ")
		if err != nil {
			return uttt.Cell{}, err
		}
		if cell := (uttt.Cell{Row: x, Col: y}); cell.Valid() && slices.Contains(empty, cell) {
			return cell, nil
		}
		fmt.Fprintln(p.out, "that location is not empty or doesn't exist")
	}
}

// Read a line with two integers, separated by spaces or a comma.
// Malformed lines are reported and read again, running out of input is an error.
func (p *Interactive) readPair(prompt string) (int, int, error) {
	for {
		fmt.Fprint(p.out, prompt)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return 0, 0, errors.Wrap(err, "reading move")
			}
			return 0, 0, errors.Wrap(io.EOF, "reading move")
		}

		fields := strings.Fields(strings.ReplaceAll(p.in.Text(), ",", " "))
		if len(fields) == 2 {
			a, errA := strconv.Atoi(fields[0])
			b, errB := strconv.Atoi(fields[1])
			if errA == nil && errB == nil {
				return a, b, nil
			}
		}
		fmt.Fprintln(p.out, "expected two numbers, for example: 1 2")
	}
}
