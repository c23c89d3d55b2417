package dungeon

import (
	"errors"
	"testing"
)

// splitGrid builds a 7x5 grid cut in two by a full wall column at x=3.
// Start sits on the left side, objective and exit on the right.
func splitGrid() *Result {
	g := NewGrid(7, 5)
	for y := 0; y < 5; y++ {
		g.Set(C(3, y), Wall())
	}
	return &Result{
		Grid:      g,
		Start:     C(1, 1),
		Objective: C(5, 1),
		Exit:      C(5, 3),
	}
}

func placementCode(t *testing.T, res *Result) string {
	t.Helper()
	err := ValidatePlacement(res)
	if err == nil {
		return ""
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("unexpected error type: %v", err)
	}
	return verr.Code
}

func TestValidatePlacementWalledOffObjective(t *testing.T) {
	res := splitGrid()
	if code := placementCode(t, res); code != "OBJECTIVE_UNREACHABLE" {
		t.Errorf("walled-off objective: code = %q, want OBJECTIVE_UNREACHABLE", code)
	}
}

func TestValidatePlacementDoorCountsAsPassable(t *testing.T) {
	res := splitGrid()
	res.Grid.Set(C(3, 2), Door(false))

	// The closed door makes the main route openable, but now a key is
	// required and none is placed.
	if code := placementCode(t, res); code != "NO_KEY" {
		t.Errorf("door without key: code = %q, want NO_KEY", code)
	}
}

func TestValidatePlacementKeyOnStartSide(t *testing.T) {
	res := splitGrid()
	res.Grid.Set(C(3, 2), Door(false))
	res.Grid.Set(C(1, 3), Pickup(ItemKeycard))
	res.KeySpawns = []Coord{C(1, 3)}

	if err := ValidatePlacement(res); err != nil {
		t.Errorf("reachable key rejected: %v", err)
	}
}

func TestValidatePlacementKeyBehindDoor(t *testing.T) {
	res := splitGrid()
	res.Grid.Set(C(3, 2), Door(false))
	res.Grid.Set(C(5, 4), Pickup(ItemKeycard))
	res.KeySpawns = []Coord{C(5, 4)}

	if code := placementCode(t, res); code != "KEY_BEHIND_DOOR" {
		t.Errorf("key behind door: code = %q, want KEY_BEHIND_DOOR", code)
	}
}
