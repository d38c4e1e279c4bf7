package pathfinding

import (
	"container/heap"
	"fmt"

	"elbow/core"
	"elbow/geometry"
)

// searchNode is an entry in the open set.
type searchNode struct {
	Cell  core.Cell
	GCost uint64 // cost from start
	HCost uint64 // heuristic cost to goal
	FCost uint64 // GCost + HCost
	seq   uint64 // insertion order, last tie-breaker
	Index int    // index in the heap
}

// NodeQueue is a priority queue for search nodes.
type NodeQueue []*searchNode

func (nq NodeQueue) Len() int { return len(nq) }
func (nq NodeQueue) Less(i, j int) bool {
	if nq[i].FCost != nq[j].FCost {
		return nq[i].FCost < nq[j].FCost
	}

	// Prefer nodes closer to the goal
	if nq[i].HCost != nq[j].HCost {
		return nq[i].HCost < nq[j].HCost
	}

	// First pushed, first popped. Keeps results identical across runs.
	return nq[i].seq < nq[j].seq
}
func (nq NodeQueue) Swap(i, j int) {
	nq[i], nq[j] = nq[j], nq[i]
	nq[i].Index = i
	nq[j].Index = j
}

func (nq *NodeQueue) Push(x interface{}) {
	n := len(*nq)
	node := x.(*searchNode)
	node.Index = n
	*nq = append(*nq, node)
}

func (nq *NodeQueue) Pop() interface{} {
	old := *nq
	n := len(old)
	node := old[n-1]
	old[n-1] = nil  // avoid memory leak
	node.Index = -1 // for safety
	*nq = old[0 : n-1]
	return node
}

// moveOrder is the order in which neighbours are generated.
var moveOrder = [...]core.Heading{core.HeadingUp, core.HeadingDown, core.HeadingLeft, core.HeadingRight}

// SearchResult is the outcome of a Search.
type SearchResult struct {
	Path          []core.Cell
	Cost          uint64
	ExpandedNodes int
}

// TurnCosts is the cost model for one search. The turn penalty is the
// Manhattan distance between start and goal so that bends stay expensive
// relative to straight runs at any trip length.
type TurnCosts struct {
	Penalty uint64
}

// Step returns the cost of moving with heading next out of a cell reached
// with heading current.
func (tc TurnCosts) Step(current, next core.Heading) uint64 {
	if current == core.HeadingNone || current == next {
		return 1
	}
	return 1 + tc.Penalty*tc.Penalty*tc.Penalty
}

// Estimate returns the heuristic cost from c to the goal: the remaining
// Manhattan distance, plus Penalty^2 while a turn is still unavoidable.
//
// This undercounts when more than one turn remains, so it is not admissible.
// The magnitudes were tuned by inspection; treat results as lowest cost in
// practice rather than guaranteed optimal.
func (tc TurnCosts) Estimate(c core.Cell, goal core.GridPoint) uint64 {
	h := uint64(geometry.ManhattanDistance(c.X, c.Y, goal.X, goal.Y))
	if c.X != goal.X && c.Y != goal.Y {
		h += tc.Penalty * tc.Penalty
	}
	return h
}

// Search runs A* over the unbounded 4-connected grid from start to any cell
// at goal. Reversing the current heading is never allowed.
//
// The grid has no obstacles, so a path always exists; an exhausted open set
// means neighbour generation is broken and Search panics.
func Search(start core.Cell, goal core.GridPoint) SearchResult {
	costs := TurnCosts{
		Penalty: uint64(geometry.ManhattanDistance(start.X, start.Y, goal.X, goal.Y)),
	}

	openSet := &NodeQueue{}
	heap.Init(openSet)

	bestG := map[core.Cell]uint64{start: 0}
	cameFrom := make(map[core.Cell]core.Cell)

	var seq uint64
	push := func(cell core.Cell, g uint64) {
		h := costs.Estimate(cell, goal)
		heap.Push(openSet, &searchNode{Cell: cell, GCost: g, HCost: h, FCost: g + h, seq: seq})
		seq++
	}
	push(start, 0)

	expanded := 0
	for openSet.Len() > 0 {
		current := heap.Pop(openSet).(*searchNode)

		// Superseded by a cheaper entry for the same state
		if current.GCost > bestG[current.Cell] {
			continue
		}

		if current.Cell.X == goal.X && current.Cell.Y == goal.Y {
			return SearchResult{
				Path:          reconstructPath(cameFrom, current.Cell, start),
				Cost:          current.GCost,
				ExpandedNodes: expanded,
			}
		}
		expanded++

		for _, heading := range moveOrder {
			if heading == current.Cell.Heading.Reverse() {
				continue
			}

			dx, dy := heading.Delta()
			next := core.Cell{X: current.Cell.X + dx, Y: current.Cell.Y + dy, Heading: heading}
			tentativeG := current.GCost + costs.Step(current.Cell.Heading, heading)

			if g, seen := bestG[next]; seen && tentativeG >= g {
				continue
			}
			bestG[next] = tentativeG
			cameFrom[next] = current.Cell
			push(next, tentativeG)
		}
	}

	panic(fmt.Sprintf("pathfinding: no path from %+v to %+v on an unbounded grid", start, goal))
}

// reconstructPath walks cameFrom back from the goal and returns the path in
// start-to-goal order.
func reconstructPath(cameFrom map[core.Cell]core.Cell, current, start core.Cell) []core.Cell {
	path := []core.Cell{current}
	for current != start {
		previous, ok := cameFrom[current]
		if !ok {
			break
		}
		path = append(path, previous)
		current = previous
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
