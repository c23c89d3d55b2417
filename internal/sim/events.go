package sim

import (
	"github.com/vovakirdan/tui-heist/internal/dungeon"
	"github.com/vovakirdan/tui-heist/internal/guard"
)

// Event is the typed notification contract between the simulation core and
// external collaborators (message log, audio, HUD). The core never references
// presentation concerns; collaborators switch on the concrete event types.
type Event interface {
	simEvent()
}

// PickupCollectedEvent fires when the player collects a pickup tile.
type PickupCollectedEvent struct {
	Pos  dungeon.Coord
	Item dungeon.ItemKind
	Turn int
}

func (PickupCollectedEvent) simEvent() {}

// DoorOpenedEvent fires when an interact action opens a door.
type DoorOpenedEvent struct {
	Pos  dungeon.Coord
	Turn int
}

func (DoorOpenedEvent) simEvent() {}

// HazardTriggeredEvent fires when the player steps on an armed hazard.
// The hazard disarms permanently after firing once.
type HazardTriggeredEvent struct {
	Pos     dungeon.Coord
	Alerted int // Guards pulled into the alert state
	Turn    int
}

func (HazardTriggeredEvent) simEvent() {}

// GuardStateEvent fires when a guard transitions behavior state.
type GuardStateEvent struct {
	Guard int // Index into the guard roster
	Pos   dungeon.Coord
	From  guard.State
	To    guard.State
	Turn  int
}

func (GuardStateEvent) simEvent() {}

// TurnCompletedEvent fires after a full simulation step.
type TurnCompletedEvent struct {
	Turn int
}

func (TurnCompletedEvent) simEvent() {}

// FloorWonEvent fires when the player reaches the exit holding the objective.
type FloorWonEvent struct {
	Turn  int
	Score int
}

func (FloorWonEvent) simEvent() {}

// FloorLostEvent fires when a guard captures the player.
type FloorLostEvent struct {
	Guard int
	Pos   dungeon.Coord
	Turn  int
}

func (FloorLostEvent) simEvent() {}

// WarningEvent reports a warning-class diagnostic, such as an out-of-bounds
// tile write. Warnings never fail a step.
type WarningEvent struct {
	Message string
	Turn    int
}

func (WarningEvent) simEvent() {}
