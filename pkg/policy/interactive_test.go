package policy

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/IlikeChooros/go-uttt/pkg/uttt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInteractiveForcedBoard(t *testing.T) {
	b := newFakeBoard(uttt.SubBoard{Row: 1, Col: 1}, uttt.SubBoard{Row: 0, Col: 0})
	b.forced = uttt.SubBoard{Row: 1, Col: 1}
	b.empty[b.forced] = b.empty[b.forced][1:]

	out := bytes.Buffer{}
	// malformed, taken, out of range, then a valid move
	p := NewInteractive(strings.NewReader("hello\n0 0\n3,3\n2, 1\n"), &out)
	p.SetBoard(b, uttt.PieceCircle)

	_, err := p.SelectNextMove()
	require.NoError(t, err)
	assert.Equal(t, commitCall{uttt.PieceCircle, uttt.SubBoard{Row: 1, Col: 1}, uttt.Cell{Row: 2, Col: 1}}, b.last())

	text := out.String()
	assert.Contains(t, text, "you are player O")
	assert.NotContains(t, text, "choose a new board")
	assert.Equal(t, 1, strings.Count(text, "expected two numbers"))
	assert.Equal(t, 2, strings.Count(text, "not empty or doesn't exist"))
}

func TestInteractiveChoosesBoard(t *testing.T) {
	b := newFakeBoard(uttt.SubBoard{Row: 0, Col: 2})
	b.forced = uttt.SubBoard{Row: 1, Col: 1}

	out := bytes.Buffer{}
	p := NewInteractive(strings.NewReader("1 1\n0 2\n1 0\n"), &out)
	p.SetBoard(b, uttt.PieceCross)

	_, err := p.SelectNextMove()
	require.NoError(t, err)
	assert.Equal(t, commitCall{uttt.PieceCross, uttt.SubBoard{Row: 0, Col: 2}, uttt.Cell{Row: 1, Col: 0}}, b.last())
	assert.Contains(t, out.String(), "choose a new board")
	assert.Contains(t, out.String(), "invalid board")
}

func TestInteractiveEOF(t *testing.T) {
	b := newFakeBoard(uttt.SubBoard{Row: 0, Col: 0})
	p := NewInteractive(strings.NewReader("0 0\n"), io.Discard)
	p.SetBoard(b, uttt.PieceCross)

	_, err := p.SelectNextMove()
	assert.ErrorIs(t, err, io.EOF)
	assert.Empty(t, b.commits)
}

func TestInteractiveRendersBoard(t *testing.T) {
	board := uttt.NewBoard()
	out := bytes.Buffer{}
	p := NewInteractive(strings.NewReader("1 1\n1 1\n"), &out)
	p.SetBoard(board, uttt.PieceCross)

	_, err := p.SelectNextMove()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "0 1 2")
	assert.Equal(t, uttt.PieceCross, board.EncodedState().At(uttt.SubBoard{Row: 1, Col: 1}, uttt.Cell{Row: 1, Col: 1}))
}
