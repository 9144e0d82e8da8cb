package pathfinding

import (
	"github.com/KirkDiggler/hexpath/internal/entities"
	"github.com/KirkDiggler/hexpath/internal/errors"
)

// ErrInvalidCharacter is returned when a grid cell is outside the vocabulary
var ErrInvalidCharacter = errors.InvalidArgument("invalid character in grid description")

// ErrInvalidRequestType is logged when a request names an unsupported search
var ErrInvalidRequestType = errors.InvalidArgument("invalid request type")

var cellKinds = map[string]entities.Kind{
	"b": entities.KindEmpty,
	"o": entities.KindObstacle,
	"s": entities.KindStart,
	"e": entities.KindEnd,
}

// DecodeGrid builds a grid from rows of single characters. The row and
// column of each cell are its odd-r offset position. A single bad cell
// fails the whole grid and no partial grid is returned.
func DecodeGrid(rows [][]string) (*entities.Grid, error) {
	grid := entities.NewGrid()
	for row, cells := range rows {
		for col, cell := range cells {
			kind, ok := cellKinds[cell]
			if !ok {
				return nil, errors.Wrap(ErrInvalidCharacter, "failed to decode grid").
					WithMeta("row", row).
					WithMeta("col", col).
					WithMeta("value", cell)
			}
			grid.Insert(entities.FromOffset(row, col, kind))
		}
	}
	return grid, nil
}
