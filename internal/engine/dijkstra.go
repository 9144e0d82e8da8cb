package engine

import (
	"github.com/KirkDiggler/hexpath/internal/entities"
	"github.com/KirkDiggler/hexpath/internal/errors"
)

// stepCost is the cost of moving between adjacent cells.
const stepCost = 1

// ErrNoPathFound is returned when the target is unreachable from the source.
var ErrNoPathFound = errors.NotFound("no path found")

// FindPath runs Dijkstra from source over grid and returns the path to
// target in target-to-source order. All state is local to the call.
func FindPath(grid *entities.Grid, source, target entities.Hex) ([]entities.Hex, error) {
	out, err := search(grid, source, target)
	if err != nil {
		return nil, err
	}
	return out.Path, nil
}

func search(grid *entities.Grid, source, target entities.Hex) (*FindPathOutput, error) {
	if grid == nil {
		return nil, errors.InvalidArgument("grid is required")
	}

	dist := map[entities.Cube]int{source.Cube(): 0}
	parent := make(map[entities.Cube]entities.Hex)
	finalized := make(map[entities.Cube]bool)

	f := &frontier{}
	f.push(source, 0)

	for f.Len() > 0 {
		current := f.pop()
		key := current.hex.Cube()
		if finalized[key] {
			continue
		}
		finalized[key] = true

		for _, neighbor := range grid.Neighbors(current.hex) {
			nk := neighbor.Cube()
			candidate := current.distance + stepCost
			if known, ok := dist[nk]; ok && candidate >= known {
				continue
			}
			dist[nk] = candidate
			parent[nk] = current.hex
			f.push(neighbor, candidate)
		}
	}

	if _, ok := dist[target.Cube()]; !ok {
		return nil, ErrNoPathFound
	}

	return &FindPathOutput{
		Path:      backtrack(parent, target),
		Finalized: len(finalized),
	}, nil
}

// backtrack follows predecessor links from target until it reaches the
// cell without one, which is the source.
func backtrack(parent map[entities.Cube]entities.Hex, target entities.Hex) []entities.Hex {
	path := []entities.Hex{target}
	current := target
	for {
		prev, ok := parent[current.Cube()]
		if !ok {
			return path
		}
		path = append(path, prev)
		current = prev
	}
}
