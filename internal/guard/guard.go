// Package guard implements the patrol/alert/chase behavior of guard agents.
// Guards are pure state machines over the grid: all randomness comes from a
// private deterministic stream handed to each guard at floor initialization,
// so the guard phase never consumes draws from the floor stream.
package guard

import (
	"github.com/vovakirdan/tui-heist/internal/dungeon"
	"github.com/vovakirdan/tui-heist/internal/path"
	"github.com/vovakirdan/tui-heist/internal/rng"
)

// State is a guard's behavior state.
type State uint8

const (
	// StatePatrol is the default state: wander with momentum bias.
	StatePatrol State = iota
	// StateAlert means the guard noticed something and is facing it,
	// but has not committed to pursuit yet.
	StateAlert
	// StateChase means the guard is pursuing a last known target position.
	StateChase
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StatePatrol:
		return "patrol"
	case StateAlert:
		return "alert"
	case StateChase:
		return "chase"
	default:
		return "unknown"
	}
}

// Config holds the per-floor guard tuning supplied by the difficulty layer.
type Config struct {
	VisionRange  int // Maximum line-of-sight distance in tiles
	AlertTurns   int // Turns an alert holds without line of sight
	ChaseTurns   int // Turns a chase holds without line of sight
	SlowCost     int // Entry cost of slow terrain; cooldown = cost-1
	HazardRadius int // Manhattan radius of hazard noise
}

// DefaultConfig returns the baseline guard tuning.
func DefaultConfig() Config {
	return Config{
		VisionRange:  6,
		AlertTurns:   2,
		ChaseTurns:   5,
		SlowCost:     2,
		HazardRadius: 4,
	}
}

// Guard is one guard agent. Fields are owned by the turn scheduler; external
// collaborators only ever see read-only views.
type Guard struct {
	Pos       dungeon.Coord
	Facing    dungeon.Dir
	State     State
	Countdown int           // Alert/chase turns remaining without LOS
	Cooldown  int           // Activations to skip after entering slow terrain
	LastKnown dungeon.Coord // Target position the guard is investigating

	stream *rng.Stream
}

// New creates a guard at a spawn point with its private stream.
func New(spawn dungeon.GuardSpawn, stream *rng.Stream) *Guard {
	return &Guard{
		Pos:    spawn.Pos,
		Facing: spawn.Facing,
		State:  StatePatrol,
		stream: stream,
	}
}

// StepInfo reports what happened during one guard activation, for event
// emission by the scheduler.
type StepInfo struct {
	Skipped bool  // Guard was on cooldown and did nothing
	From    State // State before the activation
	To      State // State after the activation
	Moved   bool
}

// Changed reports whether the activation transitioned the behavior state.
func (i StepInfo) Changed() bool {
	return !i.Skipped && i.From != i.To
}

// Step runs one activation: sense, transition, act. A guard on cooldown only
// decrements the counter; it does not re-evaluate direction or state.
func (g *Guard) Step(grid *dungeon.Grid, player dungeon.Coord, cfg Config) StepInfo {
	info := StepInfo{From: g.State, To: g.State}

	if g.Cooldown > 0 {
		g.Cooldown--
		info.Skipped = true
		return info
	}

	g.sense(grid, player, cfg)
	info.To = g.State

	from := g.Pos
	switch g.State {
	case StatePatrol:
		g.patrol(grid)
	case StateAlert:
		g.faceToward(g.LastKnown)
	case StateChase:
		g.chase(grid, cfg)
	}
	info.Moved = g.Pos != from

	if info.Moved && grid.At(g.Pos).Kind == dungeon.KindSlow && cfg.SlowCost > 1 {
		g.Cooldown = cfg.SlowCost - 1
	}

	return info
}

// sense updates the behavior state from line of sight to the player.
func (g *Guard) sense(grid *dungeon.Grid, player dungeon.Coord, cfg Config) {
	seen := g.Pos.Manhattan(player) <= cfg.VisionRange && grid.LineOfSight(g.Pos, player)

	if seen {
		g.LastKnown = player
		switch g.State {
		case StatePatrol:
			g.State = StateAlert
			g.Countdown = cfg.AlertTurns
		case StateAlert:
			g.State = StateChase
			g.Countdown = cfg.ChaseTurns
		case StateChase:
			g.Countdown = cfg.ChaseTurns
		}
		return
	}

	if g.State == StateAlert || g.State == StateChase {
		g.Countdown--
		if g.Countdown <= 0 {
			g.State = StatePatrol
		}
	}
}

// Investigate forces the guard to the alert state with a new point of
// interest (hazard noise). A chasing guard is not downgraded.
func (g *Guard) Investigate(pos dungeon.Coord, cfg Config) bool {
	if g.State == StateChase {
		return false
	}
	g.LastKnown = pos
	g.State = StateAlert
	g.Countdown = cfg.AlertTurns
	return true
}

// patrol continues in the current facing when possible; otherwise the guard
// draws a new direction among the walkable neighbors, weighted against
// turning straight back, or stays put when boxed in.
func (g *Guard) patrol(grid *dungeon.Grid) {
	ahead := g.Pos.Step(g.Facing)
	if grid.Walkable(ahead) {
		g.Pos = ahead
		return
	}

	reverse := g.Facing.Opposite()
	var options []dungeon.Dir
	var weights []int
	for _, d := range dungeon.Dirs {
		if !grid.Walkable(g.Pos.Step(d)) {
			continue
		}
		options = append(options, d)
		if d == reverse {
			weights = append(weights, 1)
		} else {
			weights = append(weights, 3)
		}
	}
	pick := g.stream.WeightedPick(weights)
	if pick < 0 {
		return
	}
	g.Facing = options[pick]
	g.Pos = g.Pos.Step(g.Facing)
}

// chase steps along the cheapest route toward the last known position,
// pricing slow terrain at its entry cost, or holds when no route exists.
func (g *Guard) chase(grid *dungeon.Grid, cfg Config) {
	cost := func(c dungeon.Coord) int {
		if grid.At(c).Kind == dungeon.KindSlow {
			return cfg.SlowCost
		}
		return 1
	}
	p := path.ShortestWeighted(grid, grid.Walkable, cost, g.Pos, g.LastKnown)
	if len(p) < 2 {
		return
	}
	g.faceToward(p[1])
	g.Pos = p[1]
}

// faceToward turns the guard toward a target, preferring the axis with the
// larger displacement.
func (g *Guard) faceToward(target dungeon.Coord) {
	dx := target.X - g.Pos.X
	dy := target.Y - g.Pos.Y
	if dx == 0 && dy == 0 {
		return
	}
	if abs(dx) >= abs(dy) {
		if dx > 0 {
			g.Facing = dungeon.DirRight
		} else {
			g.Facing = dungeon.DirLeft
		}
		return
	}
	if dy > 0 {
		g.Facing = dungeon.DirDown
	} else {
		g.Facing = dungeon.DirUp
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
