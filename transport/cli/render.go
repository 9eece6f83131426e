package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aurianecodebien/tictactoe-cli/internal/entity"
)

// ANSI colors for the two marks.
const (
	colorX = "12"
	colorO = "9"
)

// renderer draws the board with termenv. It degrades to plain text when
// colors are turned off or the output is not a terminal.
type renderer struct {
	output *termenv.Output
}

func newRenderer(w io.Writer, noColor bool) *renderer {
	var opts []termenv.OutputOption
	if noColor {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}

	return &renderer{output: termenv.NewOutput(w, opts...)}
}

// board renders the grid the way the player sees it.
func (that *renderer) board(board entity.Board) string {
	var b strings.Builder

	b.WriteString("\n")

	for row := 0; row < 3; row++ {
		cells := make([]string, 0, 3)
		for col := 0; col < 3; col++ {
			cells = append(cells, " "+that.mark(board[row*3+col])+" ")
		}

		b.WriteString(strings.Join(cells, that.pipe()) + "\n")

		if row < 2 {
			b.WriteString(that.rule() + "\n")
		}
	}

	return b.String()
}

// positionGuide renders the grid with the 1-based position of every cell.
func (that *renderer) positionGuide() string {
	var b strings.Builder

	b.WriteString("\n")

	for row := 0; row < 3; row++ {
		cells := make([]string, 0, 3)
		for col := 0; col < 3; col++ {
			cells = append(cells, fmt.Sprintf(" %d ", row*3+col+1))
		}

		b.WriteString(strings.Join(cells, that.pipe()) + "\n")

		if row < 2 {
			b.WriteString(that.rule() + "\n")
		}
	}

	return b.String()
}

func (that *renderer) title(s string) string {
	return that.output.String(s).Bold().String()
}

func (that *renderer) mark(m entity.Mark) string {
	style := that.output.String(m.Symbol())

	switch m {
	case entity.MarkX:
		return style.Foreground(that.output.Color(colorX)).Bold().String()
	case entity.MarkO:
		return style.Foreground(that.output.Color(colorO)).Bold().String()
	default:
		return style.String()
	}
}

func (that *renderer) pipe() string {
	return that.output.String("|").Faint().String()
}

func (that *renderer) rule() string {
	return that.output.String(" -----------").Faint().String()
}
