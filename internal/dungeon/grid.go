package dungeon

// Grid represents one floor as a rectangular grid of tiles.
// Tiles are stored in row-major order: index = y*W + x.
type Grid struct {
	W     int    // Width of the grid
	H     int    // Height of the grid
	Tiles []Tile // Flat array of tiles, length W*H
}

// NewGrid creates a grid of the given dimensions with every tile set to floor.
func NewGrid(w, h int) *Grid {
	return &Grid{
		W:     w,
		H:     h,
		Tiles: make([]Tile, w*h),
	}
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// At returns the tile at the given coordinate.
// Out-of-bounds coordinates report a wall, so they are never walkable.
func (g *Grid) At(c Coord) Tile {
	if !g.InBounds(c) {
		return Wall()
	}
	return g.Tiles[g.index(c)]
}

// Set writes the tile at the given coordinate. Writing out of bounds is a
// no-op and returns false; callers that care surface it as a warning.
func (g *Grid) Set(c Coord, t Tile) bool {
	if !g.InBounds(c) {
		return false
	}
	g.Tiles[g.index(c)] = t
	return true
}

// Walkable reports whether an agent may occupy the given coordinate.
func (g *Grid) Walkable(c Coord) bool {
	return g.At(c).Walkable()
}

// Neighbors4 returns the in-bounds cardinal neighbors of c, in the fixed
// up/right/down/left visitation order.
func (g *Grid) Neighbors4(c Coord) []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range Dirs {
		n := c.Step(d)
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// LineOfSight reports whether b is visible from a. Sight only travels along a
// shared row or column: the two coordinates must match on exactly one axis,
// and every tile strictly between them must not block sight. A coordinate
// always sees itself. Diagonal or non-aligned pairs never have line of sight.
func (g *Grid) LineOfSight(a, b Coord) bool {
	if a == b {
		return true
	}
	if !g.InBounds(a) || !g.InBounds(b) {
		return false
	}
	switch {
	case a.Y == b.Y:
		lo, hi := a.X, b.X
		if lo > hi {
			lo, hi = hi, lo
		}
		for x := lo + 1; x < hi; x++ {
			if g.At(C(x, a.Y)).BlocksSight() {
				return false
			}
		}
		return true
	case a.X == b.X:
		lo, hi := a.Y, b.Y
		if lo > hi {
			lo, hi = hi, lo
		}
		for y := lo + 1; y < hi; y++ {
			if g.At(C(a.X, y)).BlocksSight() {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	tiles := make([]Tile, len(g.Tiles))
	copy(tiles, g.Tiles)
	return &Grid{
		W:     g.W,
		H:     g.H,
		Tiles: tiles,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, t := range g.Tiles {
		if t != other.Tiles[i] {
			return false
		}
	}
	return true
}

// FloorCells returns all coordinates whose tile is plain floor, ordered by
// row then column. The deterministic order matters: the generator shuffles
// this slice with the floor stream.
func (g *Grid) FloorCells() []Coord {
	cells := make([]Coord, 0, g.W*g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := C(x, y)
			if g.At(c).Kind == KindFloor {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// CountKind returns the number of tiles of the given kind.
func (g *Grid) CountKind(k TileKind) int {
	n := 0
	for _, t := range g.Tiles {
		if t.Kind == k {
			n++
		}
	}
	return n
}
