package entities

import "fmt"

// Grid is a sparse hex map keyed by axial (q, r). Irregular shapes cost
// nothing extra. A Grid is built once per request and is not safe for
// concurrent writes.
type Grid struct {
	cells map[Axial]Hex
}

// NewGrid creates an empty grid.
func NewGrid() *Grid {
	return &Grid{
		cells: make(map[Axial]Hex),
	}
}

// Insert stores a hex, replacing any cell already at the same (q, r).
func (g *Grid) Insert(h Hex) {
	g.cells[h.Axial()] = h
}

// Lookup returns the hex at (q, r). ok is false outside the grid.
func (g *Grid) Lookup(q, r int) (Hex, bool) {
	h, ok := g.cells[Axial{Q: q, R: r}]
	return h, ok
}

// Size returns the number of distinct cells.
func (g *Grid) Size() int {
	return len(g.cells)
}

// Neighbors returns the passable cells adjacent to h, in Directions order.
// A stored cell counts only if its S matches the computed one, so cells
// inserted with inconsistent coordinates are unreachable.
func (g *Grid) Neighbors(h Hex) []Hex {
	result := make([]Hex, 0, len(Directions))
	for _, dir := range Directions {
		candidate := h.Add(dir)
		stored, ok := g.Lookup(candidate.Q, candidate.R)
		if !ok {
			continue
		}
		if stored.S != candidate.S {
			continue
		}
		if !stored.Kind.Passable() {
			continue
		}
		result = append(result, stored)
	}
	return result
}

// String returns a summary of the grid.
func (g *Grid) String() string {
	return fmt.Sprintf("Grid(cells=%d)", g.Size())
}
