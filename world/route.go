// route.go
package world

import (
	"retrograde/path"
)

// edge cost through a cell holding a closed (or closing) door: still passable,
// but the traversal time makes routes around it competitive.
const closedDoorCost = 5.0

// gridGraph instantiates the pathfinder against the world: neighbors are the
// four axis-adjacent cells that are neither solid nor under a push-wall, the
// heuristic is Manhattan distance, and edges cost 1 except into closed doors.
type gridGraph struct {
	w *World
}

func (w *World) graph() gridGraph {
	return gridGraph{w: w}
}

func (g gridGraph) Neighbors(n path.Node) []path.Node {
	candidates := [4]path.Node{
		{X: n.X - 1, Y: n.Y},
		{X: n.X + 1, Y: n.Y},
		{X: n.X, Y: n.Y - 1},
		{X: n.X, Y: n.Y + 1},
	}
	nodes := make([]path.Node, 0, 4)
	for _, c := range candidates {
		if g.w.Map.Tile(c.X, c.Y).IsSolid() {
			continue
		}
		if g.w.pushwallAt(c.X, c.Y, -1) {
			continue
		}
		nodes = append(nodes, c)
	}
	return nodes
}

func (g gridGraph) Heuristic(a, b path.Node) float64 {
	return float64(abs(a.X-b.X) + abs(a.Y-b.Y))
}

func (g gridGraph) Cost(a, b path.Node) float64 {
	if door := g.w.doorAt(b.X, b.Y); door != nil && door.State != DoorOpen {
		return closedDoorCost
	}
	return 1
}

func (w *World) doorAt(x, y int) *Door {
	for i := range w.Doors {
		dx, dy := w.Doors[i].TileCoords()
		if dx == x && dy == y {
			return &w.Doors[i]
		}
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
