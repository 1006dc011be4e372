// Package config provides YAML-based game configuration loading,
// validation and difficulty presets.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/universal-elevators/internal/building"
	"github.com/vovakirdan/universal-elevators/internal/game"
	"github.com/vovakirdan/universal-elevators/internal/upgrade"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config contains the full game configuration.
type Config struct {
	Building   BuildingConfig `yaml:"building"`
	Economy    EconomyConfig  `yaml:"economy"`
	Upgrades   UpgradesConfig `yaml:"upgrades"`
	Controller string         `yaml:"controller"`
	TickRate   int            `yaml:"tick_rate"` // ticks per second in interactive play
}

// BuildingConfig defines the starting topology and the population model.
type BuildingConfig struct {
	Floors               int     `yaml:"floors"`
	Elevators            int     `yaml:"elevators"`
	FloorCapacity        int     `yaml:"floor_capacity"`
	ElevatorCapacity     int     `yaml:"elevator_capacity"`
	ArrivalProbability   float64 `yaml:"arrival_probability"`
	DepartureProbability float64 `yaml:"departure_probability"`
	EnergyUp             float64 `yaml:"energy_up"`
	EnergyDown           float64 `yaml:"energy_down"`
	EnergyCoef           float64 `yaml:"energy_coef"`
	TipMax               float64 `yaml:"tip_max"`
	TipWaitPenalty       float64 `yaml:"tip_wait_penalty"`
}

// EconomyConfig defines the player's funds and capacity increments.
type EconomyConfig struct {
	StartingTips         float64 `yaml:"starting_tips"`
	FloorCapacityStep    int     `yaml:"floor_capacity_step"`
	ElevatorCapacityStep int     `yaml:"elevator_capacity_step"`
}

// UpgradeConfig defines one price curve.
type UpgradeConfig struct {
	BaseCost     float64 `yaml:"base_cost"`
	Growth       float64 `yaml:"growth"`
	MaxPurchases int     `yaml:"max_purchases,omitempty"` // 0 = unlimited
}

// UpgradesConfig holds the price curve of every purchasable upgrade.
type UpgradesConfig struct {
	AppendFloor         UpgradeConfig `yaml:"append_floor"`
	AppendElevator      UpgradeConfig `yaml:"append_elevator"`
	AddFloorCapacity    UpgradeConfig `yaml:"add_floor_capacity"`
	AddElevatorCapacity UpgradeConfig `yaml:"add_elevator_capacity"`
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	b := c.Building
	switch {
	case b.Floors < 1:
		return invalid("building.floors must be at least 1, got %d", b.Floors)
	case b.Elevators < 1:
		return invalid("building.elevators must be at least 1, got %d", b.Elevators)
	case b.FloorCapacity < 1:
		return invalid("building.floor_capacity must be positive, got %d", b.FloorCapacity)
	case b.ElevatorCapacity < 1:
		return invalid("building.elevator_capacity must be positive, got %d", b.ElevatorCapacity)
	case !isProbability(b.ArrivalProbability):
		return invalid("building.arrival_probability must be in [0,1], got %v", b.ArrivalProbability)
	case !isProbability(b.DepartureProbability):
		return invalid("building.departure_probability must be in [0,1], got %v", b.DepartureProbability)
	case b.EnergyUp < 0 || b.EnergyDown < 0 || b.EnergyCoef < 0:
		return invalid("building energy parameters must not be negative")
	case b.TipMax < 0 || b.TipWaitPenalty < 0:
		return invalid("building tip parameters must not be negative")
	}

	e := c.Economy
	if e.StartingTips < 0 {
		return invalid("economy.starting_tips must not be negative, got %v", e.StartingTips)
	}
	if e.FloorCapacityStep < 0 || e.ElevatorCapacityStep < 0 {
		return invalid("economy capacity steps must not be negative")
	}

	curves := c.Upgrades.byKind()
	for _, kind := range upgrade.Purchasable() {
		u := curves[kind]
		if u.BaseCost < 0 {
			return invalid("upgrades.%s.base_cost must not be negative, got %v", kind, u.BaseCost)
		}
		if u.Growth <= 1 {
			return invalid("upgrades.%s.growth must be greater than 1, got %v", kind, u.Growth)
		}
		if u.MaxPurchases < 0 {
			return invalid("upgrades.%s.max_purchases must not be negative, got %d", kind, u.MaxPurchases)
		}
	}

	if c.Controller == "" {
		return invalid("controller must be set")
	}
	if c.TickRate < 1 {
		return invalid("tick_rate must be positive, got %d", c.TickRate)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

func isProbability(p float64) bool {
	return p >= 0 && p <= 1
}

func (u UpgradesConfig) byKind() map[upgrade.Kind]UpgradeConfig {
	return map[upgrade.Kind]UpgradeConfig{
		upgrade.KindAppendFloor:         u.AppendFloor,
		upgrade.KindAppendElevator:      u.AppendElevator,
		upgrade.KindAddFloorCapacity:    u.AddFloorCapacity,
		upgrade.KindAddElevatorCapacity: u.AddElevatorCapacity,
	}
}

// UpgradeSpecs converts the price curves for upgrade.NewCatalogFrom.
func (c Config) UpgradeSpecs() map[upgrade.Kind]upgrade.Spec {
	specs := make(map[upgrade.Kind]upgrade.Spec, len(upgrade.Purchasable()))
	for kind, u := range c.Upgrades.byKind() {
		specs[kind] = upgrade.Spec{
			BaseCost:     u.BaseCost,
			Growth:       u.Growth,
			MaxPurchases: u.MaxPurchases,
		}
	}
	return specs
}

// BuildingParams converts the building section for building.New.
func (c Config) BuildingParams() building.Config {
	b := c.Building
	return building.Config{
		Floors:               b.Floors,
		Elevators:            b.Elevators,
		FloorCapacity:        b.FloorCapacity,
		ElevatorCapacity:     b.ElevatorCapacity,
		ArrivalProbability:   b.ArrivalProbability,
		DepartureProbability: b.DepartureProbability,
		EnergyUp:             b.EnergyUp,
		EnergyDown:           b.EnergyDown,
		EnergyCoef:           b.EnergyCoef,
		TipMax:               b.TipMax,
		TipWaitPenalty:       b.TipWaitPenalty,
	}
}

// EngineSettings converts the economy section for game.NewEngine.
func (c Config) EngineSettings() game.Settings {
	return game.Settings{
		StartingTips:         c.Economy.StartingTips,
		FloorCapacityStep:    c.Economy.FloorCapacityStep,
		ElevatorCapacityStep: c.Economy.ElevatorCapacityStep,
	}
}
