package uttt

import (
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// Render writes the board as a 9x9 grid, sub-boards separated by lines,
// rows and columns labelled with 'sub-board cell' coordinates.
// Colors are used only when the writer is a terminal that supports them.
func (b *Board) Render(w io.Writer) error {
	out := termenv.NewOutput(w)
	cross := out.Color("1")
	circle := out.Color("4")
	forced := b.ForcedSubBoard()

	builder := strings.Builder{}
	builder.WriteString("      0 1 2   0 1 2   0 1 2\n")
	for r := 0; r < 3; r++ {
		if r > 0 {
			builder.WriteString("     -------+-------+-------\n")
		}
		for x := 0; x < 3; x++ {
			builder.WriteByte(' ')
			builder.WriteByte('0' + byte(r))
			builder.WriteByte(' ')
			builder.WriteByte('0' + byte(x))
			builder.WriteString(" ")
			for c := 0; c < 3; c++ {
				if c > 0 {
					builder.WriteString(" |")
				}
				sb := SubBoard{Row: r, Col: c}
				for y := 0; y < 3; y++ {
					builder.WriteByte(' ')
					piece := b.pos.position[sb.Index()][3*x+y]
					switch piece {
					case PieceCross:
						builder.WriteString(out.String("X").Foreground(cross).Bold().String())
					case PieceCircle:
						builder.WriteString(out.String("O").Foreground(circle).Bold().String())
					default:
						if sb == forced {
							builder.WriteByte('*')
						} else {
							builder.WriteByte('.')
						}
					}
				}
			}
			builder.WriteByte('\n')
		}
	}

	if status := b.Status(); status.IsTerminal() {
		builder.WriteString("game over: " + status.String() + "\n")
	} else {
		builder.WriteString(b.Turn().String() + " to move, sub-board " + forced.String() + "\n")
	}

	_, err := io.WriteString(w, builder.String())
	return err
}
