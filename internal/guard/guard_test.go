package guard

import (
	"testing"

	"github.com/vovakirdan/tui-heist/internal/dungeon"
	"github.com/vovakirdan/tui-heist/internal/rng"
)

func newGuard(pos dungeon.Coord, facing dungeon.Dir) *Guard {
	return New(dungeon.GuardSpawn{Pos: pos, Facing: facing}, rng.New(99))
}

func TestPatrolMomentum(t *testing.T) {
	g := dungeon.NewGrid(5, 5)
	guard := newGuard(dungeon.C(0, 0), dungeon.DirRight)
	player := dungeon.C(4, 4) // never axis-aligned with the patrol row
	cfg := DefaultConfig()

	for i := 0; i < 3; i++ {
		guard.Step(g, player, cfg)
	}

	if guard.Pos != (dungeon.C(3, 0)) {
		t.Errorf("after 3 activations guard at %v, want (3,0)", guard.Pos)
	}
	if guard.State != StatePatrol {
		t.Errorf("guard state = %v, want patrol", guard.State)
	}
	if guard.Facing != dungeon.DirRight {
		t.Errorf("guard facing = %v, want right", guard.Facing)
	}
}

func TestPatrolTurnsAtWall(t *testing.T) {
	// Single-cell corridor: the guard in a dead end must turn back.
	//   # # #
	//   . . #
	//   # # #
	g := dungeon.NewGrid(3, 3)
	for _, c := range []dungeon.Coord{
		dungeon.C(0, 0), dungeon.C(1, 0), dungeon.C(2, 0),
		dungeon.C(2, 1),
		dungeon.C(0, 2), dungeon.C(1, 2), dungeon.C(2, 2),
	} {
		g.Set(c, dungeon.Wall())
	}
	guard := newGuard(dungeon.C(1, 1), dungeon.DirRight)
	cfg := DefaultConfig()

	guard.Step(g, dungeon.C(0, 0), cfg) // player in a wall cell, no sighting
	if guard.Pos != (dungeon.C(0, 1)) {
		t.Errorf("dead-ended guard at %v, want (0,1)", guard.Pos)
	}
	if guard.Facing != dungeon.DirLeft {
		t.Errorf("guard facing = %v, want left", guard.Facing)
	}
}

func TestSightingEscalatesToChase(t *testing.T) {
	g := dungeon.NewGrid(7, 7)
	guard := newGuard(dungeon.C(1, 1), dungeon.DirRight)
	player := dungeon.C(4, 1) // same row, distance 3, clear line
	cfg := DefaultConfig()

	// First sighting: patrol -> alert, hold position.
	info := guard.Step(g, player, cfg)
	if info.From != StatePatrol || info.To != StateAlert {
		t.Fatalf("first sighting %v -> %v, want patrol -> alert", info.From, info.To)
	}
	if guard.Pos != (dungeon.C(1, 1)) {
		t.Errorf("alerted guard moved to %v, want hold at (1,1)", guard.Pos)
	}
	if guard.LastKnown != player {
		t.Errorf("last known = %v, want %v", guard.LastKnown, player)
	}

	// Persistent sighting: alert -> chase, step toward the target.
	info = guard.Step(g, player, cfg)
	if info.From != StateAlert || info.To != StateChase {
		t.Fatalf("second sighting %v -> %v, want alert -> chase", info.From, info.To)
	}
	if guard.Pos != (dungeon.C(2, 1)) {
		t.Errorf("chasing guard at %v, want (2,1)", guard.Pos)
	}
	if guard.Countdown != cfg.ChaseTurns {
		t.Errorf("chase countdown = %d, want %d", guard.Countdown, cfg.ChaseTurns)
	}
}

func TestAlertExpiresToPatrol(t *testing.T) {
	g := dungeon.NewGrid(7, 7)
	guard := newGuard(dungeon.C(1, 1), dungeon.DirRight)
	cfg := DefaultConfig()
	cfg.AlertTurns = 2

	guard.Step(g, dungeon.C(4, 1), cfg) // sighted, alert
	if guard.State != StateAlert {
		t.Fatalf("guard state = %v, want alert", guard.State)
	}

	// Player breaks line of sight; alert decays over AlertTurns.
	hidden := dungeon.C(5, 5)
	guard.Step(g, hidden, cfg)
	if guard.State != StateAlert {
		t.Errorf("after 1 unseen turn state = %v, want alert", guard.State)
	}
	info := guard.Step(g, hidden, cfg)
	if guard.State != StatePatrol {
		t.Errorf("after %d unseen turns state = %v, want patrol", cfg.AlertTurns, guard.State)
	}
	if !info.Changed() {
		t.Error("decay to patrol should report a state change")
	}
}

func TestChaseRefreshOnSighting(t *testing.T) {
	g := dungeon.NewGrid(9, 9)
	guard := newGuard(dungeon.C(1, 1), dungeon.DirRight)
	player := dungeon.C(6, 1)
	cfg := DefaultConfig()

	guard.Step(g, player, cfg) // alert
	guard.Step(g, player, cfg) // chase, moved to (2,1)
	guard.Countdown = 1
	guard.Step(g, player, cfg) // still in sight, countdown refreshes
	if guard.State != StateChase {
		t.Fatalf("guard state = %v, want chase", guard.State)
	}
	if guard.Countdown != cfg.ChaseTurns {
		t.Errorf("refreshed countdown = %d, want %d", guard.Countdown, cfg.ChaseTurns)
	}
}

func TestChaseWalksToLastKnown(t *testing.T) {
	g := dungeon.NewGrid(9, 9)
	guard := newGuard(dungeon.C(1, 1), dungeon.DirRight)
	player := dungeon.C(5, 1)
	cfg := DefaultConfig()

	guard.Step(g, player, cfg) // alert
	guard.Step(g, player, cfg) // chase begins

	// Player vanishes around a corner; guard keeps walking to the last
	// known position.
	hidden := dungeon.C(8, 8)
	for i := 0; i < cfg.ChaseTurns && guard.Pos != player; i++ {
		guard.Step(g, hidden, cfg)
	}
	if guard.Pos != player {
		t.Errorf("guard at %v, want last known %v", guard.Pos, player)
	}
}

func TestSlowTerrainCooldown(t *testing.T) {
	g := dungeon.NewGrid(7, 3)
	g.Set(dungeon.C(2, 1), dungeon.Slow())
	guard := newGuard(dungeon.C(1, 1), dungeon.DirRight)
	hidden := dungeon.C(6, 0) // off-axis from the patrol row
	cfg := DefaultConfig()
	cfg.SlowCost = 2

	guard.Step(g, hidden, cfg)
	if guard.Pos != (dungeon.C(2, 1)) {
		t.Fatalf("guard at %v, want slow cell (2,1)", guard.Pos)
	}
	if guard.Cooldown != 1 {
		t.Fatalf("cooldown = %d, want 1", guard.Cooldown)
	}

	info := guard.Step(g, hidden, cfg)
	if !info.Skipped {
		t.Error("guard on cooldown should skip the activation")
	}
	if guard.Pos != (dungeon.C(2, 1)) {
		t.Errorf("skipped guard moved to %v", guard.Pos)
	}

	guard.Step(g, hidden, cfg)
	if guard.Pos != (dungeon.C(3, 1)) {
		t.Errorf("after cooldown guard at %v, want (3,1)", guard.Pos)
	}
}

func TestVisionRangeLimit(t *testing.T) {
	g := dungeon.NewGrid(12, 3)
	guard := newGuard(dungeon.C(1, 1), dungeon.DirUp)
	cfg := DefaultConfig()
	cfg.VisionRange = 4

	guard.Step(g, dungeon.C(10, 1), cfg) // same row but distance 9
	if guard.State != StatePatrol {
		t.Errorf("out-of-range player sighted: state = %v", guard.State)
	}
}

func TestWallBlocksSighting(t *testing.T) {
	g := dungeon.NewGrid(7, 3)
	g.Set(dungeon.C(3, 1), dungeon.Wall())
	guard := newGuard(dungeon.C(1, 1), dungeon.DirLeft)
	cfg := DefaultConfig()

	guard.Step(g, dungeon.C(5, 1), cfg)
	if guard.State != StatePatrol {
		t.Errorf("sighting through a wall: state = %v", guard.State)
	}
}

func TestInvestigate(t *testing.T) {
	cfg := DefaultConfig()
	noise := dungeon.C(3, 3)

	patrolling := newGuard(dungeon.C(1, 1), dungeon.DirRight)
	if !patrolling.Investigate(noise, cfg) {
		t.Error("patrolling guard should accept an investigation")
	}
	if patrolling.State != StateAlert || patrolling.LastKnown != noise {
		t.Errorf("state/last known = %v/%v, want alert/%v", patrolling.State, patrolling.LastKnown, noise)
	}

	chasing := newGuard(dungeon.C(1, 1), dungeon.DirRight)
	chasing.State = StateChase
	chasing.LastKnown = dungeon.C(5, 5)
	if chasing.Investigate(noise, cfg) {
		t.Error("chasing guard should ignore an investigation")
	}
	if chasing.LastKnown != (dungeon.C(5, 5)) {
		t.Errorf("chase target overwritten: %v", chasing.LastKnown)
	}
}

func TestPatrolBoxedInStaysPut(t *testing.T) {
	// Walls on all four sides: no direction to draw.
	g := dungeon.NewGrid(3, 3)
	for _, c := range []dungeon.Coord{
		dungeon.C(1, 0), dungeon.C(0, 1), dungeon.C(2, 1), dungeon.C(1, 2),
	} {
		g.Set(c, dungeon.Wall())
	}
	guard := newGuard(dungeon.C(1, 1), dungeon.DirRight)
	cfg := DefaultConfig()

	guard.Step(g, dungeon.C(0, 0), cfg) // player off-axis, no sighting
	if guard.Pos != (dungeon.C(1, 1)) {
		t.Errorf("boxed-in guard moved to %v", guard.Pos)
	}
	if guard.Facing != dungeon.DirRight {
		t.Errorf("boxed-in guard turned to %v", guard.Facing)
	}
}

func TestChaseDetoursAroundSlowTerrain(t *testing.T) {
	// Slow cells sit on the direct row; the clean row above is cheaper.
	//   . . . . . . .
	//   . G ~ ~ P . .
	//   . . . . . . .
	g := dungeon.NewGrid(7, 3)
	g.Set(dungeon.C(2, 1), dungeon.Slow())
	g.Set(dungeon.C(3, 1), dungeon.Slow())
	guard := newGuard(dungeon.C(1, 1), dungeon.DirRight)
	player := dungeon.C(4, 1)
	cfg := DefaultConfig()
	cfg.SlowCost = 3

	guard.Step(g, player, cfg) // alert
	guard.Step(g, player, cfg) // chase begins
	if guard.Pos != (dungeon.C(1, 0)) {
		t.Fatalf("first chase step to %v, want detour via (1,0)", guard.Pos)
	}

	for i := 0; i < 6 && guard.Pos != player; i++ {
		guard.Step(g, player, cfg)
		if g.At(guard.Pos).Kind == dungeon.KindSlow {
			t.Fatalf("chasing guard entered slow cell %v", guard.Pos)
		}
	}
	if guard.Pos != player {
		t.Errorf("guard at %v, want %v", guard.Pos, player)
	}
	if guard.Cooldown != 0 {
		t.Errorf("detouring guard picked up cooldown %d", guard.Cooldown)
	}
}

func TestPatrolDeterministicAcrossRuns(t *testing.T) {
	run := func() []dungeon.Coord {
		g := dungeon.NewGrid(8, 8)
		g.Set(dungeon.C(4, 0), dungeon.Wall())
		g.Set(dungeon.C(4, 1), dungeon.Wall())
		guard := New(dungeon.GuardSpawn{Pos: dungeon.C(1, 1), Facing: dungeon.DirRight}, rng.New(7))
		cfg := DefaultConfig()
		cfg.VisionRange = 0 // pure patrol, no sightings

		var trail []dungeon.Coord
		for i := 0; i < 20; i++ {
			guard.Step(g, dungeon.C(7, 7), cfg)
			trail = append(trail, guard.Pos)
		}
		return trail
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("patrol trails diverge at activation %d: %v vs %v", i, a[i], b[i])
		}
	}
}
