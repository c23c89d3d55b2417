package sim

import (
	"fmt"
	"hash/fnv"

	"github.com/vovakirdan/tui-heist/internal/dungeon"
)

// Snapshot returns the plain key->value view of the run-level counters for
// the save/load collaborator. Live grid and agent state is deliberately
// absent: floors regenerate deterministically from the seed instead of being
// persisted.
func (s *Sim) Snapshot() map[string]string {
	return map[string]string{
		"run_seed":            fmt.Sprintf("%d", s.RunSeed),
		"floor_index":         fmt.Sprintf("%d", s.FloorIndex),
		"turn_count":          fmt.Sprintf("%d", s.Turn),
		"score":               fmt.Sprintf("%d", s.Score),
		"status":              s.Status.String(),
		"inventory.keycard":   fmt.Sprintf("%d", s.Player.Inventory[dungeon.ItemKeycard]),
		"inventory.objective": fmt.Sprintf("%d", s.Player.Inventory[dungeon.ItemObjective]),
	}
}

// StateHash returns a hash over the full mutable simulation state. Two runs
// with identical seed and input sequence must report identical hashes at
// every turn; determinism tests compare these.
func (s *Sim) StateHash() uint64 {
	h := fnv.New64a()

	fmt.Fprintf(h, "T:%d;S:%d;", s.Turn, s.Status)
	fmt.Fprintf(h, "P:%d,%d;K:%d;O:%d;",
		s.Player.Pos.X, s.Player.Pos.Y,
		s.Player.Inventory[dungeon.ItemKeycard],
		s.Player.Inventory[dungeon.ItemObjective])

	for i, g := range s.Guards {
		fmt.Fprintf(h, "G%d:%d,%d,%d,%d,%d,%d;",
			i, g.Pos.X, g.Pos.Y, g.State, g.Facing, g.Countdown, g.Cooldown)
	}

	for _, t := range s.Grid.Tiles {
		fmt.Fprintf(h, "%d:%v:%v:%d,", t.Kind, t.Open, t.Armed, t.Item)
	}

	return h.Sum64()
}
