package dungeon

import "fmt"

// ValidationError reports a degenerate generation parameter. It is returned
// immediately, before any attempt is made.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// ExhaustedError reports that no valid floor was produced within the retry
// cap. The attempt count is carried so the caller can surface it.
type ExhaustedError struct {
	Attempts int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("generation exhausted after %d attempts", e.Attempts)
}

// validateParams rejects caller-bug parameter combinations without retrying.
func validateParams(p GenParams) error {
	if p.Width < MinDimension || p.Height < MinDimension {
		return &ValidationError{
			Code:    "GRID_TOO_SMALL",
			Message: fmt.Sprintf("grid %dx%d below minimum %dx%d", p.Width, p.Height, MinDimension, MinDimension),
		}
	}
	if p.WallDensity < 0 || p.WallDensity > 1 {
		return &ValidationError{
			Code:    "DENSITY_OUT_OF_RANGE",
			Message: fmt.Sprintf("wall density %v outside [0,1]", p.WallDensity),
		}
	}
	if p.SlowDensity < 0 || p.SlowDensity > 1 {
		return &ValidationError{
			Code:    "DENSITY_OUT_OF_RANGE",
			Message: fmt.Sprintf("slow density %v outside [0,1]", p.SlowDensity),
		}
	}
	if p.GuardCount < 0 || p.Doors < 0 || p.Keys < 0 || p.Hazards < 0 {
		return &ValidationError{
			Code:    "NEGATIVE_COUNT",
			Message: "guard/door/key/hazard counts must be non-negative",
		}
	}
	if p.MaxAttempts < 1 {
		return &ValidationError{
			Code:    "NO_ATTEMPTS",
			Message: fmt.Sprintf("max attempts %d must be at least 1", p.MaxAttempts),
		}
	}
	return nil
}

// ValidatePlacement checks the solvability invariants of a fully placed
// floor: the objective must be reachable from the start and the exit from
// the objective (closed doors count as openable, so they do not block), and
// when any door tiles exist at least one key must be reachable from the
// start without crossing a door. A floor failing the key check is a softlock
// by construction and must be regenerated.
func ValidatePlacement(res *Result) error {
	g := res.Grid

	// Doors are openable with a key, so for the main route they are treated
	// as passable.
	openable := func(c Coord) bool {
		t := g.At(c)
		return t.Kind == KindDoor || t.Walkable()
	}
	if !reachable(g, openable, res.Start, res.Objective) {
		return &ValidationError{Code: "OBJECTIVE_UNREACHABLE", Message: "no path start -> objective"}
	}
	if !reachable(g, openable, res.Objective, res.Exit) {
		return &ValidationError{Code: "EXIT_UNREACHABLE", Message: "no path objective -> exit"}
	}

	if g.CountKind(KindDoor) == 0 {
		return nil
	}

	if len(res.KeySpawns) == 0 {
		return &ValidationError{Code: "NO_KEY", Message: "door tiles present but no key placed"}
	}

	// The key route must not itself require a door.
	noDoors := func(c Coord) bool {
		t := g.At(c)
		return t.Kind != KindDoor && t.Walkable()
	}
	for _, key := range res.KeySpawns {
		if reachable(g, noDoors, res.Start, key) {
			return nil
		}
	}
	return &ValidationError{Code: "KEY_BEHIND_DOOR", Message: "no key reachable from start without crossing a door"}
}
