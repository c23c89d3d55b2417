package dungeon

import (
	"github.com/vovakirdan/tui-heist/internal/rng"
)

// Minimum floor dimensions: a border of walls plus a 3x3 interior.
const MinDimension = 5

// GenParams configures floor generation.
type GenParams struct {
	Width       int
	Height      int
	WallDensity float64 // Probability an interior cell is carved as wall

	GuardCount int
	Doors      int // Door tiles to place; >0 forces at least one key
	Keys       int // Keycard pickups to place
	Hazards    int // Armed hazard tiles to place

	SlowTerrain bool    // Whether to sprinkle slow terrain
	SlowDensity float64 // Probability a remaining floor cell becomes slow

	MinSpawnDistance int // Minimum Manhattan distance of guards/keys from specials
	MaxAttempts      int // Retry cap for the carve/place/validate loop
}

// DefaultGenParams returns sensible defaults for floor generation.
func DefaultGenParams() GenParams {
	return GenParams{
		Width:            24,
		Height:           16,
		WallDensity:      0.12,
		GuardCount:       3,
		Doors:            2,
		Keys:             1,
		Hazards:          2,
		SlowTerrain:      true,
		SlowDensity:      0.06,
		MinSpawnDistance: 4,
		MaxAttempts:      64,
	}
}

// GuardSpawn records where a guard starts and which way it initially faces.
type GuardSpawn struct {
	Pos    Coord
	Facing Dir
}

// Result is the immutable snapshot produced by a successful generation.
// Ownership transfers to the caller; the simulation clones the grid before
// mutating it.
type Result struct {
	Grid        *Grid
	Start       Coord
	Objective   Coord
	Exit        Coord
	GuardSpawns []GuardSpawn
	KeySpawns   []Coord
	Attempts    int
}

// Generate carves a floor, places the start/objective/exit/guards/keys, and
// retries until the reachability and no-softlock invariants hold or the
// attempt cap is exceeded. All randomness is drawn from stream, so identical
// (params, stream seed) pairs produce identical results including the
// attempt count.
func Generate(p GenParams, stream *rng.Stream) (*Result, error) {
	if err := validateParams(p); err != nil {
		return nil, err
	}

	keys := p.Keys
	if p.Doors > 0 && keys < 1 {
		keys = 1
	}

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		res, ok := generateOnce(p, keys, stream)
		if !ok {
			continue
		}
		res.Attempts = attempt
		return res, nil
	}

	return nil, &ExhaustedError{Attempts: p.MaxAttempts}
}

// generateOnce runs one carve/place/validate attempt.
func generateOnce(p GenParams, keys int, stream *rng.Stream) (*Result, bool) {
	g := carve(p, stream)

	cells := g.FloorCells()
	if len(cells) < 3 {
		return nil, false
	}
	stream.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })

	start, objective, exit := cells[0], cells[1], cells[2]
	rest := cells[3:]

	// Reachability before any doors exist: walls are the only obstacles.
	open := func(c Coord) bool { return g.At(c).Kind != KindWall }
	if !reachable(g, open, start, objective) || !reachable(g, open, objective, exit) {
		return nil, false
	}

	res := &Result{
		Grid:      g,
		Start:     start,
		Objective: objective,
		Exit:      exit,
	}

	rest, ok := placeGuards(p, res, rest, stream)
	if !ok {
		return nil, false
	}
	rest, ok = placeTiles(p, keys, res, rest)
	if !ok {
		return nil, false
	}

	g.Set(objective, Pickup(ItemObjective))
	g.Set(exit, Exit())

	if p.SlowTerrain {
		for _, c := range rest {
			if stream.Float() < p.SlowDensity {
				g.Set(c, Slow())
			}
		}
	}

	if err := ValidatePlacement(res); err != nil {
		return nil, false
	}
	return res, true
}

// carve builds the raw wall/floor layout: solid border, interior walls
// sampled at the configured density.
func carve(p GenParams, stream *rng.Stream) *Grid {
	g := NewGrid(p.Width, p.Height)
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			border := x == 0 || y == 0 || x == p.Width-1 || y == p.Height-1
			if border || stream.Float() < p.WallDensity {
				g.Set(C(x, y), Wall())
			}
		}
	}
	return g
}

// placeGuards takes spawn cells from the shuffled pool, honoring the minimum
// Manhattan distance from the special cells and from other guards. Returns
// the remaining pool and whether enough spawns were found.
func placeGuards(p GenParams, res *Result, pool []Coord, stream *rng.Stream) ([]Coord, bool) {
	remaining := pool[:0:0]
	for _, c := range pool {
		if len(res.GuardSpawns) >= p.GuardCount {
			remaining = append(remaining, c)
			continue
		}
		if !spacedFromSpecials(c, res, p.MinSpawnDistance) || !spacedFromGuards(c, res, p.MinSpawnDistance) {
			remaining = append(remaining, c)
			continue
		}
		facing := Dirs[stream.Intn(len(Dirs))]
		res.GuardSpawns = append(res.GuardSpawns, GuardSpawn{Pos: c, Facing: facing})
	}
	return remaining, len(res.GuardSpawns) == p.GuardCount
}

// placeTiles places doors, keys, and hazards from the remaining pool.
func placeTiles(p GenParams, keys int, res *Result, pool []Coord) ([]Coord, bool) {
	doors, hazards := p.Doors, p.Hazards
	remaining := pool[:0:0]

	for _, c := range pool {
		switch {
		case doors > 0:
			res.Grid.Set(c, Door(false))
			doors--
		case keys > 0:
			if !spacedFromSpecials(c, res, p.MinSpawnDistance) {
				remaining = append(remaining, c)
				continue
			}
			res.Grid.Set(c, Pickup(ItemKeycard))
			res.KeySpawns = append(res.KeySpawns, c)
			keys--
		case hazards > 0:
			res.Grid.Set(c, Hazard())
			hazards--
		default:
			remaining = append(remaining, c)
		}
	}

	return remaining, doors == 0 && keys == 0 && hazards == 0
}

func spacedFromSpecials(c Coord, res *Result, min int) bool {
	return c.Manhattan(res.Start) >= min &&
		c.Manhattan(res.Objective) >= min &&
		c.Manhattan(res.Exit) >= min
}

func spacedFromGuards(c Coord, res *Result, min int) bool {
	for _, s := range res.GuardSpawns {
		if c.Manhattan(s.Pos) < min {
			return false
		}
	}
	return true
}
