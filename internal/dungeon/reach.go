package dungeon

// reachable reports whether a 4-connected route exists between start and goal
// over cells accepted by walkable. Both endpoints must themselves be accepted.
// Neighbor expansion follows the fixed Dirs order.
func reachable(g *Grid, walkable func(Coord) bool, start, goal Coord) bool {
	if !g.InBounds(start) || !g.InBounds(goal) {
		return false
	}
	if !walkable(start) || !walkable(goal) {
		return false
	}
	if start == goal {
		return true
	}

	seen := map[Coord]bool{start: true}
	queue := []Coord{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, d := range Dirs {
			next := cur.Step(d)
			if !g.InBounds(next) || !walkable(next) || seen[next] {
				continue
			}
			if next == goal {
				return true
			}
			seen[next] = true
			queue = append(queue, next)
		}
	}

	return false
}
