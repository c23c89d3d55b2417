package config

import (
	"github.com/vovakirdan/tui-heist/internal/dungeon"
	"github.com/vovakirdan/tui-heist/internal/guard"
)

// GenParams builds the generation parameters for one floor, with difficulty
// scaling applied.
func (c HeistConfig) GenParams(dm *DifficultyManager, floorIndex int) dungeon.GenParams {
	return dungeon.GenParams{
		Width:            c.Floor.Width,
		Height:           c.Floor.Height,
		WallDensity:      dm.WallDensity(c.Floor.WallDensity, floorIndex),
		GuardCount:       dm.GuardCount(c.Guards.Count, floorIndex),
		Doors:            c.Generation.Doors,
		Keys:             c.Generation.Keys,
		Hazards:          c.Generation.Hazards,
		SlowTerrain:      c.Floor.SlowTerrain,
		SlowDensity:      c.Floor.SlowDensity,
		MinSpawnDistance: c.Generation.MinSpawnDistance,
		MaxAttempts:      c.Generation.MaxAttempts,
	}
}

// GuardTuning builds the guard tuning for one floor, with difficulty scaling
// applied.
func (c HeistConfig) GuardTuning(dm *DifficultyManager, floorIndex int) guard.Config {
	return guard.Config{
		VisionRange:  dm.VisionRange(c.Guards.VisionRange, floorIndex),
		AlertTurns:   c.Guards.AlertTurns,
		ChaseTurns:   c.Guards.ChaseTurns,
		SlowCost:     c.Guards.SlowCost,
		HazardRadius: c.Guards.HazardRadius,
	}
}
