// astar.go
package path

import "container/heap"

// Node is a grid-cell coordinate. Nodes are cell-snapped on purpose: two
// actors at different sub-tile offsets inside the same cell map to the same
// node, so routes and visited sets can key on plain equality.
type Node struct {
	X, Y int
}

// Graph abstracts the search space. Heuristic must be admissible (never
// overestimate the true remaining cost); Cost is the actual edge cost and may
// exceed the geometric minimum, e.g. to make a closed door more expensive
// than open floor.
type Graph interface {
	Neighbors(n Node) []Node
	Heuristic(a, b Node) float64
	Cost(a, b Node) float64
}

type candidate struct {
	node    Node
	parent  *candidate
	cost    float64 // cost so far along this partial path
	ranking float64 // cost + heuristic to goal
}

type frontier []*candidate

func (f frontier) Len() int            { return len(f) }
func (f frontier) Less(i, j int) bool  { return f[i].ranking < f[j].ranking }
func (f frontier) Swap(i, j int)       { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*candidate)) }
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	c := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return c
}

// Find runs a best-first (A*) search from start to goal and returns the path
// ordered nearest-step-first, excluding start itself. An empty path means the
// goal is unreachable, which callers treat as "hold position", not an error.
//
// maxCost bounds the search: any partial path whose running cost exceeds it
// is discarded, so a goal beyond the ceiling is reported unreachable even
// though a route may technically exist. Pass a negative maxCost for no limit.
//
// A node is settled when it is popped, not when it is first enqueued. Edge
// costs are non-uniform (closed doors cost more than open floor), so a node
// can be enqueued several times with different running costs; only the
// cheapest enqueue survives the pop, the rest are skipped.
func Find(g Graph, start, goal Node, maxCost float64) []Node {
	front := &frontier{{node: start, ranking: g.Heuristic(start, goal)}}
	settled := map[Node]bool{}

	for front.Len() > 0 {
		best := heap.Pop(front).(*candidate)
		if settled[best.node] {
			continue
		}
		settled[best.node] = true
		if best.node == goal {
			return reconstruct(best)
		}
		for _, next := range g.Neighbors(best.node) {
			if settled[next] {
				continue
			}
			cost := best.cost + g.Cost(best.node, next)
			if maxCost >= 0 && cost > maxCost {
				continue
			}
			heap.Push(front, &candidate{
				node:    next,
				parent:  best,
				cost:    cost,
				ranking: cost + g.Heuristic(next, goal),
			})
		}
	}
	return nil
}

func reconstruct(c *candidate) []Node {
	length := 0
	for p := c; p.parent != nil; p = p.parent {
		length++
	}
	nodes := make([]Node, length)
	for p := c; p.parent != nil; p = p.parent {
		length--
		nodes[length] = p.node
	}
	return nodes
}
