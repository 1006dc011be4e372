package config

import (
	_ "embed"
)

//go:embed defaults/elevators.yaml
var defaultYAML []byte

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Building: BuildingConfig{
			Floors:               4,
			Elevators:            2,
			FloorCapacity:        100,
			ElevatorCapacity:     10,
			ArrivalProbability:   0.5,
			DepartureProbability: 0.05,
			EnergyUp:             5.0,
			EnergyDown:           2.5,
			EnergyCoef:           0.5,
			TipMax:               5.0,
			TipWaitPenalty:       0.1,
		},
		Economy: EconomyConfig{
			StartingTips:         0,
			FloorCapacityStep:    100,
			ElevatorCapacityStep: 10,
		},
		Upgrades: UpgradesConfig{
			AppendFloor:         UpgradeConfig{BaseCost: 10, Growth: 1.5},
			AppendElevator:      UpgradeConfig{BaseCost: 100, Growth: 1.9},
			AddFloorCapacity:    UpgradeConfig{BaseCost: 10, Growth: 1.1},
			AddElevatorCapacity: UpgradeConfig{BaseCost: 10, Growth: 1.1},
		},
		Controller: "random",
		TickRate:   4,
	}
}
