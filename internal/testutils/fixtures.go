package testutils

import (
	"github.com/KirkDiggler/hexpath/internal/entities"
)

// Grid fixtures as rows of b/o/s/e characters.
var (
	// OpenGrid3x3 has a start in the top-left and an end in the bottom-right
	OpenGrid3x3 = []string{"sbb", "bbb", "bbe"}

	// WalledGrid3x3 separates start from end with a row of obstacles
	WalledGrid3x3 = []string{"sbb", "ooo", "ooe"}

	// DetourGrid5x5 forces a path around a partial wall
	DetourGrid5x5 = []string{
		"sbbbb",
		"oooob",
		"bbbbb",
		"boooo",
		"bbbbe",
	}
)

// OpenGrid3x3Path is the path reported for OpenGrid3x3 from (0,0) to (2,2)
var OpenGrid3x3Path = []string{"Hex(1,2,-3)", "Hex(0,2,-2)", "Hex(0,1,-1)", "Hex(0,0,0)"}

var fixtureKinds = map[rune]entities.Kind{
	'b': entities.KindEmpty,
	'o': entities.KindObstacle,
	's': entities.KindStart,
	'e': entities.KindEnd,
}

// CellRows splits string rows into the [][]string form used on the wire
func CellRows(rows []string) [][]string {
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = make([]string, 0, len(row))
		for _, c := range row {
			cells[i] = append(cells[i], string(c))
		}
	}
	return cells
}

// GridFromRows builds a grid directly from fixture rows. Unknown characters
// are treated as empty cells; decoding rules are tested elsewhere.
func GridFromRows(rows []string) *entities.Grid {
	g := entities.NewGrid()
	for row, line := range rows {
		col := 0
		for _, c := range line {
			g.Insert(entities.FromOffset(row, col, fixtureKinds[c]))
			col++
		}
	}
	return g
}
