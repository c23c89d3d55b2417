// Package path provides shortest-path search over a dungeon grid.
// Search is 4-connected with a fixed neighbor visitation order
// (up/right/down/left), so results are deterministic for a fixed grid.
package path

import (
	"container/heap"

	"github.com/vovakirdan/tui-heist/internal/dungeon"
)

// Shortest returns the shortest path from start to goal as an ordered
// sequence of coordinates including both endpoints. A cell is traversable iff
// walkable returns true for it. Returns [start] when start == goal, and nil
// when either endpoint is out of bounds, either endpoint is not traversable,
// or no connecting path exists. Ties between equal-length paths are broken by
// the fixed neighbor visitation order; callers must not rely on anything
// beyond determinism.
func Shortest(g *dungeon.Grid, walkable func(dungeon.Coord) bool, start, goal dungeon.Coord) []dungeon.Coord {
	if !g.InBounds(start) || !g.InBounds(goal) {
		return nil
	}
	if !walkable(start) || !walkable(goal) {
		return nil
	}
	if start == goal {
		return []dungeon.Coord{start}
	}

	cameFrom := map[dungeon.Coord]dungeon.Coord{start: start}
	queue := []dungeon.Coord{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, d := range dungeon.Dirs {
			next := cur.Step(d)
			if !g.InBounds(next) || !walkable(next) {
				continue
			}
			if _, seen := cameFrom[next]; seen {
				continue
			}
			cameFrom[next] = cur
			if next == goal {
				return reconstruct(cameFrom, start, goal)
			}
			queue = append(queue, next)
		}
	}

	return nil
}

// ShortestWeighted is the cost-aware variant used for terrain with non-unit
// entry cost (slow terrain). cost returns the price of stepping onto a cell
// and must be >= 1. Behaves like Shortest when every cell costs 1.
func ShortestWeighted(g *dungeon.Grid, walkable func(dungeon.Coord) bool, cost func(dungeon.Coord) int, start, goal dungeon.Coord) []dungeon.Coord {
	if !g.InBounds(start) || !g.InBounds(goal) {
		return nil
	}
	if !walkable(start) || !walkable(goal) {
		return nil
	}
	if start == goal {
		return []dungeon.Coord{start}
	}

	dist := map[dungeon.Coord]int{start: 0}
	cameFrom := map[dungeon.Coord]dungeon.Coord{start: start}
	pq := &nodeQueue{{pos: start, dist: 0, order: 0}}
	nextOrder := 1

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(node)
		if cur.pos == goal {
			return reconstruct(cameFrom, start, goal)
		}
		if cur.dist > dist[cur.pos] {
			continue // stale entry
		}
		for _, d := range dungeon.Dirs {
			next := cur.pos.Step(d)
			if !g.InBounds(next) || !walkable(next) {
				continue
			}
			c := cost(next)
			if c < 1 {
				c = 1
			}
			nd := cur.dist + c
			if known, seen := dist[next]; !seen || nd < known {
				dist[next] = nd
				cameFrom[next] = cur.pos
				heap.Push(pq, node{pos: next, dist: nd, order: nextOrder})
				nextOrder++
			}
		}
	}

	return nil
}

// reconstruct walks the predecessor map back from goal to start.
func reconstruct(cameFrom map[dungeon.Coord]dungeon.Coord, start, goal dungeon.Coord) []dungeon.Coord {
	var out []dungeon.Coord
	for cur := goal; ; cur = cameFrom[cur] {
		out = append(out, cur)
		if cur == start {
			break
		}
	}
	// Reverse in place.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// node is a priority-queue entry. order preserves insertion order among equal
// distances so the weighted search stays deterministic.
type node struct {
	pos   dungeon.Coord
	dist  int
	order int
}

type nodeQueue []node

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(i, j int) bool {
	if q[i].dist != q[j].dist {
		return q[i].dist < q[j].dist
	}
	return q[i].order < q[j].order
}

func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *nodeQueue) Push(x any) { *q = append(*q, x.(node)) }

func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
