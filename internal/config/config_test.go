package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/universal-elevators/internal/upgrade"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parse(defaultYAML)
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded default = %+v\nwant %+v", cfg, DefaultConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no floors", func(c *Config) { c.Building.Floors = 0 }},
		{"no elevators", func(c *Config) { c.Building.Elevators = 0 }},
		{"zero floor capacity", func(c *Config) { c.Building.FloorCapacity = 0 }},
		{"zero elevator capacity", func(c *Config) { c.Building.ElevatorCapacity = 0 }},
		{"arrival above one", func(c *Config) { c.Building.ArrivalProbability = 1.2 }},
		{"negative departure", func(c *Config) { c.Building.DepartureProbability = -0.1 }},
		{"negative energy", func(c *Config) { c.Building.EnergyCoef = -1 }},
		{"negative tips", func(c *Config) { c.Economy.StartingTips = -5 }},
		{"flat growth", func(c *Config) { c.Upgrades.AppendElevator.Growth = 1 }},
		{"negative base cost", func(c *Config) { c.Upgrades.AddFloorCapacity.BaseCost = -1 }},
		{"no controller", func(c *Config) { c.Controller = "" }},
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadCustomPathMergesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("building:\n  floors: 6\ncontroller: nearest\nupgrades:\n  append_floor:\n    base_cost: 20\n    growth: 2\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Building.Floors != 6 || cfg.Controller != "nearest" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Building.Elevators != 2 || cfg.TickRate != 4 {
		t.Errorf("defaults lost: %+v", cfg)
	}
	spec := cfg.UpgradeSpecs()[upgrade.KindAppendFloor]
	if spec.BaseCost != 20 || spec.Growth != 2 {
		t.Errorf("append_floor spec = %+v", spec)
	}
	if cfg.UpgradeSpecs()[upgrade.KindAppendElevator].BaseCost != 100 {
		t.Error("append_elevator lost its default curve")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() accepted a missing file")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("building: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(broken); err == nil {
		t.Error("Load() accepted broken YAML")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("building:\n  floors: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() = %v, want ErrInvalidConfig", err)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name    string
		tips    float64
		arrival float64
	}{
		{"easy", 100, 0.6},
		{"normal", 0, 0.5},
		{"", 0, 0.5},
		{"hard", 0, 0.35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preset, err := ParsePreset(tt.name)
			if err != nil {
				t.Fatalf("ParsePreset() failed: %v", err)
			}
			cfg := DefaultConfig()
			ApplyPreset(&cfg, preset)
			if cfg.Economy.StartingTips != tt.tips || cfg.Building.ArrivalProbability != tt.arrival {
				t.Errorf("got tips=%v arrival=%v", cfg.Economy.StartingTips, cfg.Building.ArrivalProbability)
			}
		})
	}

	if _, err := ParsePreset("nightmare"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ParsePreset(nightmare) = %v, want ErrInvalidConfig", err)
	}
}

func TestConversions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Economy.StartingTips = 42

	if got := cfg.EngineSettings(); got.StartingTips != 42 || got.FloorCapacityStep != 100 || got.ElevatorCapacityStep != 10 {
		t.Errorf("EngineSettings() = %+v", got)
	}
	if got := cfg.BuildingParams(); got.Floors != 4 || got.EnergyDown != 2.5 || got.TipWaitPenalty != 0.1 {
		t.Errorf("BuildingParams() = %+v", got)
	}
	if got := len(cfg.UpgradeSpecs()); got != len(upgrade.Purchasable()) {
		t.Errorf("UpgradeSpecs() has %d entries", got)
	}
}
