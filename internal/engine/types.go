package engine

import (
	"github.com/KirkDiggler/hexpath/internal/entities"
)

// FindPathInput contains the grid and the two endpoints of a search
type FindPathInput struct {
	Grid   *entities.Grid
	Source entities.Hex
	Target entities.Hex
}

// FindPathOutput contains the reconstructed path and search statistics
type FindPathOutput struct {
	// Path runs from target back to source, both inclusive
	Path []entities.Hex

	// Finalized is the number of cells the search expanded
	Finalized int
}
