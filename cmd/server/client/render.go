package client

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/KirkDiggler/hexpath/internal/entities"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	cyan   = color.New(color.FgCyan, color.Bold)
	faint  = color.New(color.Faint)

	frame = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#45475A")).
		Padding(0, 1)
)

// printPath prints the path target first, or the server's diagnostic
func printPath(w io.Writer, path []string) {
	if _, ok := parsePath(path); !ok {
		_, _ = yellow.Fprintf(w, "⚠️  %s\n", strings.Join(path, ", "))
		return
	}
	_, _ = green.Fprintf(w, "✓ path of %d cells (target first)\n", len(path))
	for i, cell := range path {
		_, _ = fmt.Fprintf(w, "  %2d. %s\n", i+1, cell)
	}
}

// parsePath converts rendered cells back to offsets. It reports false when
// the response is a diagnostic rather than a path.
func parsePath(path []string) ([]entities.Offset, bool) {
	if len(path) == 0 {
		return nil, false
	}
	offsets := make([]entities.Offset, 0, len(path))
	for _, cell := range path {
		var q, r, s int
		if _, err := fmt.Sscanf(cell, "Hex(%d,%d,%d)", &q, &r, &s); err != nil {
			return nil, false
		}
		offsets = append(offsets, entities.NewHex(q, r, s, entities.KindEmpty).ToOffset())
	}
	return offsets, true
}

// renderGrid draws the grid in odd-r layout, odd rows shifted right, with
// path cells highlighted
func renderGrid(rows []string, path []string) string {
	onPath := make(map[entities.Offset]bool)
	if offsets, ok := parsePath(path); ok {
		for _, o := range offsets {
			onPath[o] = true
		}
	}

	var b strings.Builder
	for row, line := range rows {
		if row > 0 {
			b.WriteByte('\n')
		}
		if row&1 == 1 {
			b.WriteByte(' ')
		}
		col := 0
		for _, cell := range line {
			if col > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(renderCell(cell, onPath[entities.Offset{Row: row, Col: col}]))
			col++
		}
	}
	return frame.Render(b.String())
}

func renderCell(cell rune, onPath bool) string {
	switch {
	case cell == 's':
		return cyan.Sprint("S")
	case cell == 'e':
		return cyan.Sprint("E")
	case onPath:
		return green.Sprint("*")
	case cell == 'o':
		return faint.Sprint("#")
	case cell == 'b':
		return "."
	default:
		return yellow.Sprint("?")
	}
}
