package config

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg HeistConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultHeistConfig() {
		t.Errorf("embedded default diverges from hardcoded default:\n%+v\nvs\n%+v", cfg, DefaultHeistConfig())
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultHeistConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard initial level = %v, want 0.7", cfg.Difficulty.InitialLevel)
	}
	if cfg.Guards.Count != 4 {
		t.Errorf("hard guard count = %d, want 4", cfg.Guards.Count)
	}

	cfg = DefaultHeistConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestDifficultyLevelProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "floor", MaxAt: 4},
		Scaling:      ScalingConfig{GuardBonus: 2, VisionBonus: 2, DensityBonus: 0.1},
	})

	if got := dm.Level(0); got != 0.0 {
		t.Errorf("level at floor 0 = %v, want 0", got)
	}
	if got := dm.Level(2); got != 0.5 {
		t.Errorf("level at floor 2 = %v, want 0.5", got)
	}
	if got := dm.Level(10); got != 1.0 {
		t.Errorf("level past max = %v, want 1", got)
	}

	if got := dm.GuardCount(3, 10); got != 5 {
		t.Errorf("guard count at max = %d, want 5", got)
	}
	if got := dm.VisionRange(6, 0); got != 6 {
		t.Errorf("vision at floor 0 = %d, want 6", got)
	}
}

func TestDisabledProgressionHoldsInitialLevel(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "floor", MaxAt: 4},
	})
	for _, floor := range []int{0, 3, 100} {
		if got := dm.Level(floor); got != 0.3 {
			t.Errorf("disabled level at floor %d = %v, want 0.3", floor, got)
		}
	}
}

func TestGenParamsScaling(t *testing.T) {
	cfg := DefaultHeistConfig()
	dm := NewDifficultyManager(cfg.Difficulty)

	base := cfg.GenParams(dm, 0)
	if base.GuardCount != cfg.Guards.Count {
		t.Errorf("floor 0 guard count = %d, want %d", base.GuardCount, cfg.Guards.Count)
	}
	if base.WallDensity != cfg.Floor.WallDensity {
		t.Errorf("floor 0 wall density = %v, want %v", base.WallDensity, cfg.Floor.WallDensity)
	}

	deep := cfg.GenParams(dm, 100)
	if deep.GuardCount <= base.GuardCount {
		t.Errorf("deep floor guard count %d not above base %d", deep.GuardCount, base.GuardCount)
	}
	if deep.WallDensity <= base.WallDensity {
		t.Errorf("deep floor density %v not above base %v", deep.WallDensity, base.WallDensity)
	}
}
