// Package sim implements the turn scheduler: one discrete simulation step per
// external action, in the fixed order player action -> pickup resolution ->
// guard phase -> terminal checks. The scheduler exclusively owns the grid and
// the agent roster for the duration of one floor; collaborators read
// snapshots between steps.
package sim

import (
	"errors"

	"github.com/vovakirdan/tui-heist/internal/dungeon"
	"github.com/vovakirdan/tui-heist/internal/guard"
	"github.com/vovakirdan/tui-heist/internal/rng"
)

var (
	// ErrBlocked rejects a move into a non-walkable tile. The turn counter
	// does not advance and no state changes.
	ErrBlocked = errors.New("sim: destination not walkable")
	// ErrRunOver rejects input submitted after a terminal state.
	ErrRunOver = errors.New("sim: floor already ended")
)

// ActionKind selects the player action for one step.
type ActionKind uint8

const (
	ActionMove ActionKind = iota
	ActionWait
	ActionInteract
)

// Action is one discrete player input. Dir is meaningful only for moves.
type Action struct {
	Kind ActionKind
	Dir  dungeon.Dir
}

// Move returns a move action in the given direction.
func Move(d dungeon.Dir) Action {
	return Action{Kind: ActionMove, Dir: d}
}

// Wait returns the wait action.
func Wait() Action {
	return Action{Kind: ActionWait}
}

// Interact returns the interact action.
func Interact() Action {
	return Action{Kind: ActionInteract}
}

// Status is the floor outcome.
type Status uint8

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Score values awarded by gameplay events.
const (
	scoreKeycard   = 25
	scoreObjective = 100
	scoreFloorWon  = 250
)

// Player holds the player agent: a position and an inventory, nothing more.
type Player struct {
	Pos       dungeon.Coord
	Inventory map[dungeon.ItemKind]int
}

// Sim is the simulation state for one floor.
type Sim struct {
	Grid   *dungeon.Grid
	Player Player
	Guards []*guard.Guard

	Turn   int
	Status Status
	Score  int

	RunSeed    uint64
	FloorIndex int

	cfg guard.Config
}

// StepResult reports one completed simulation step.
type StepResult struct {
	Turn   int
	Status Status
	Events []Event
}

// New builds a floor simulation from a generation result. The grid is cloned
// so the result snapshot stays immutable, and each guard derives a private
// stream from the floor stream. Those splits are the last draws the floor
// stream ever makes.
func New(res *dungeon.Result, cfg guard.Config, stream *rng.Stream, runSeed uint64, floorIndex int) *Sim {
	guards := make([]*guard.Guard, len(res.GuardSpawns))
	for i, spawn := range res.GuardSpawns {
		guards[i] = guard.New(spawn, stream.Split())
	}

	return &Sim{
		Grid: res.Grid.Clone(),
		Player: Player{
			Pos:       res.Start,
			Inventory: make(map[dungeon.ItemKind]int),
		},
		Guards:     guards,
		RunSeed:    runSeed,
		FloorIndex: floorIndex,
		cfg:        cfg,
	}
}

// Step processes exactly one player action against exactly one simulation
// step. Rejected input (ErrBlocked, ErrRunOver) leaves all state unchanged
// and does not advance the turn counter.
func (s *Sim) Step(a Action) (StepResult, error) {
	if s.Status != StatusPlaying {
		return StepResult{Turn: s.Turn, Status: s.Status}, ErrRunOver
	}

	var events []Event

	// 1. Player action resolution.
	switch a.Kind {
	case ActionMove:
		dest := s.Player.Pos.Step(a.Dir)
		if !s.Grid.Walkable(dest) {
			return StepResult{Turn: s.Turn, Status: s.Status}, ErrBlocked
		}
		s.Player.Pos = dest
	case ActionWait:
		// Always succeeds.
	case ActionInteract:
		events = append(events, s.interact()...)
	}
	s.Turn++

	// 2. Pickup and hazard resolution, strictly before the guard phase.
	events = append(events, s.resolveTile()...)

	// 3. Guard phase, stable roster order.
	for i, g := range s.Guards {
		info := g.Step(s.Grid, s.Player.Pos, s.cfg)
		if info.Changed() {
			events = append(events, GuardStateEvent{
				Guard: i,
				Pos:   g.Pos,
				From:  info.From,
				To:    info.To,
				Turn:  s.Turn,
			})
		}
	}

	// 4. Terminal checks: capture first, then objective-gated exit.
	for i, g := range s.Guards {
		if g.Pos == s.Player.Pos {
			s.Status = StatusLost
			events = append(events, FloorLostEvent{Guard: i, Pos: g.Pos, Turn: s.Turn})
			return StepResult{Turn: s.Turn, Status: s.Status, Events: events}, nil
		}
	}
	if s.Grid.At(s.Player.Pos).Kind == dungeon.KindExit && s.Player.Inventory[dungeon.ItemObjective] > 0 {
		s.Status = StatusWon
		s.Score += scoreFloorWon
		events = append(events, FloorWonEvent{Turn: s.Turn, Score: s.Score})
		return StepResult{Turn: s.Turn, Status: s.Status, Events: events}, nil
	}

	events = append(events, TurnCompletedEvent{Turn: s.Turn})
	return StepResult{Turn: s.Turn, Status: s.Status, Events: events}, nil
}

// interact resolves context actions on adjacent tiles. Currently that means
// opening closed doors with a keycard. Interact always succeeds; with nothing
// to act on it is a no-op.
func (s *Sim) interact() []Event {
	if s.Player.Inventory[dungeon.ItemKeycard] == 0 {
		return nil
	}

	var events []Event
	for _, d := range dungeon.Dirs {
		c := s.Player.Pos.Step(d)
		t := s.Grid.At(c)
		if t.Kind != dungeon.KindDoor || t.Open {
			continue
		}
		if !s.Grid.Set(c, dungeon.Door(true)) {
			events = append(events, WarningEvent{Message: "tile write out of bounds at " + c.String(), Turn: s.Turn})
			continue
		}
		events = append(events, DoorOpenedEvent{Pos: c, Turn: s.Turn})
	}
	return events
}

// resolveTile applies the effects of the tile the player ended the action on:
// pickups are collected and the tile reverts to floor; armed hazards fire
// once and disarm permanently.
func (s *Sim) resolveTile() []Event {
	pos := s.Player.Pos
	t := s.Grid.At(pos)

	switch t.Kind {
	case dungeon.KindPickup:
		s.Player.Inventory[t.Item]++
		s.Grid.Set(pos, dungeon.Floor())
		switch t.Item {
		case dungeon.ItemKeycard:
			s.Score += scoreKeycard
		case dungeon.ItemObjective:
			s.Score += scoreObjective
		}
		return []Event{PickupCollectedEvent{Pos: pos, Item: t.Item, Turn: s.Turn}}

	case dungeon.KindHazard:
		if !t.Armed {
			return nil
		}
		s.Grid.Set(pos, dungeon.Tile{Kind: dungeon.KindHazard, Armed: false})
		alerted := 0
		for _, g := range s.Guards {
			if g.Pos.Manhattan(pos) <= s.cfg.HazardRadius && g.Investigate(pos, s.cfg) {
				alerted++
			}
		}
		return []Event{HazardTriggeredEvent{Pos: pos, Alerted: alerted, Turn: s.Turn}}
	}

	return nil
}

// GuardView is the read-only guard projection exposed to presentation.
type GuardView struct {
	Pos    dungeon.Coord
	Facing dungeon.Dir
	State  guard.State
}

// GuardViews returns the roster in stable order for rendering.
func (s *Sim) GuardViews() []GuardView {
	views := make([]GuardView, len(s.Guards))
	for i, g := range s.Guards {
		views[i] = GuardView{Pos: g.Pos, Facing: g.Facing, State: g.State}
	}
	return views
}

// InventoryCount returns how many of the given item the player holds.
func (s *Sim) InventoryCount(item dungeon.ItemKind) int {
	return s.Player.Inventory[item]
}
