// Package entities holds the hex grid domain types.
// Cells use cube coordinates (q, r, s) with q + r + s = 0. External grid
// descriptions use odd-r offset coordinates (row, col).
package entities

import (
	"fmt"

	"github.com/KirkDiggler/hexpath/internal/errors"
)

// Kind tags what occupies a hex cell.
type Kind uint8

const (
	KindEmpty    Kind = iota // passable
	KindObstacle             // never traversed
	KindStart
	KindEnd
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindObstacle:
		return "obstacle"
	case KindStart:
		return "start"
	case KindEnd:
		return "end"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Passable reports whether a search may step onto a cell of this kind.
func (k Kind) Passable() bool {
	return k != KindObstacle
}

// Cube is the identity of a hex: its three cube coordinates.
type Cube struct {
	Q int
	R int
	S int
}

// Axial is the storage key of a hex. S is implied as -Q - R.
type Axial struct {
	Q int
	R int
}

// Offset is a (row, col) position in the odd-r layout.
type Offset struct {
	Row int
	Col int
}

// Hex is a cell of the grid. It is a small value type and is copied freely.
type Hex struct {
	Q    int
	R    int
	S    int
	Kind Kind
}

// NewHex builds a hex from cube coordinates. The q+r+s=0 constraint is not
// checked; use NewHexStrict or Valid when the caller cannot be trusted.
func NewHex(q, r, s int, kind Kind) Hex {
	return Hex{Q: q, R: r, S: s, Kind: kind}
}

// NewHexStrict is NewHex that rejects triples violating q+r+s=0.
func NewHexStrict(q, r, s int, kind Kind) (Hex, error) {
	h := NewHex(q, r, s, kind)
	if !h.Valid() {
		return Hex{}, errors.InvalidArgumentf("cube coordinates (%d,%d,%d) do not sum to zero", q, r, s).
			WithMeta("q", q).
			WithMeta("r", r).
			WithMeta("s", s)
	}
	return h, nil
}

// FromOffset converts an odd-r offset position to a hex of the given kind.
func FromOffset(row, col int, kind Kind) Hex {
	q := col - (row-(row&1))/2
	r := row
	return NewHex(q, r, -q-r, kind)
}

// Valid reports whether the cube constraint holds.
func (h Hex) Valid() bool {
	return h.Q+h.R+h.S == 0
}

// ToOffset converts the hex to its odd-r offset position.
// row&1 keeps negative odd rows consistent with positive ones.
func (h Hex) ToOffset() Offset {
	return Offset{
		Row: h.R,
		Col: h.Q + (h.R-(h.R&1))/2,
	}
}

// Cube returns the identity of the hex. Kind is not part of it.
func (h Hex) Cube() Cube {
	return Cube{Q: h.Q, R: h.R, S: h.S}
}

// Axial returns the storage key of the hex.
func (h Hex) Axial() Axial {
	return Axial{Q: h.Q, R: h.R}
}

// Equal compares cube coordinates only.
func (h Hex) Equal(other Hex) bool {
	return h.Cube() == other.Cube()
}

// Add returns the hex displaced by a direction vector, keeping the kind.
func (h Hex) Add(d Cube) Hex {
	return NewHex(h.Q+d.Q, h.R+d.R, h.S+d.S, h.Kind)
}

// String renders the hex as Hex(q,r,s). Clients parse this form.
func (h Hex) String() string {
	return fmt.Sprintf("Hex(%d,%d,%d)", h.Q, h.R, h.S)
}

// Directions are the six neighbor vectors. Their order decides which of
// several equally short paths a search reports.
var Directions = [6]Cube{
	{Q: 1, R: 0, S: -1},
	{Q: 1, R: -1, S: 0},
	{Q: 0, R: -1, S: 1},
	{Q: -1, R: 0, S: 1},
	{Q: -1, R: 1, S: 0},
	{Q: 0, R: 1, S: -1},
}

// Distance returns the hex distance between two cells.
func Distance(a, b Hex) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.S - b.S)
	return max(dq, dr, ds)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
