package game

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Render prints the grid with column and row labels, one cell per column
func Render(w io.Writer, grid Grid) {
	io.WriteString(w, grid.String())
}

func (grid Grid) String() string {
	var b strings.Builder

	b.WriteString(". ")
	if len(grid) > 0 {
		for col := range grid[0] {
			fmt.Fprintf(&b, "%d ", col%10)
		}
	}
	b.WriteString("\n")

	for row, states := range grid {
		fmt.Fprintf(&b, "%d ", row%10)
		for _, state := range states {
			b.WriteString(state.String())
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// FormatElapsed formats a duration as mm:ss.mmm
func FormatElapsed(elapsed time.Duration) string {
	ms := elapsed.Milliseconds()
	return fmt.Sprintf("%02d:%02d.%03d", ms/60000, ms%60000/1000, ms%1000)
}
