package bench

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// WriteSummary prints one line per set with the outcome fractions,
// colored when the writer is a terminal
func WriteSummary(w io.Writer, results []Fractions) error {
	out := termenv.NewOutput(w)
	cross, circle, draw := out.Color("1"), out.Color("4"), out.Color("8")

	builder := strings.Builder{}
	builder.WriteString(out.String(fmt.Sprintf("%5s %8s %8s %8s %6s", "set", "X", "O", "draw", "games")).Bold().String())
	builder.WriteByte('\n')

	total := Stats{}
	for i, f := range results {
		fmt.Fprintf(&builder, "%5d %s %s %s %6d\n", i,
			out.String(fmt.Sprintf("%8.3f", f.XWins)).Foreground(cross),
			out.String(fmt.Sprintf("%8.3f", f.OWins)).Foreground(circle),
			out.String(fmt.Sprintf("%8.3f", f.Draws)).Foreground(draw),
			f.Games,
		)
		total.XWins += int(f.XWins*float64(f.Games) + 0.5)
		total.OWins += int(f.OWins*float64(f.Games) + 0.5)
		total.Draws += int(f.Draws*float64(f.Games) + 0.5)
	}

	if len(results) > 1 {
		f := total.Fractions()
		fmt.Fprintf(&builder, "%5s %8.3f %8.3f %8.3f %6d\n", "all", f.XWins, f.OWins, f.Draws, f.Games)
	}

	_, err := io.WriteString(w, builder.String())
	return err
}
