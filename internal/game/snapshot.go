package game

import (
	"encoding/json"

	"github.com/vovakirdan/universal-elevators/internal/upgrade"
)

// FloorState is the serialized view of one floor.
type FloorState struct {
	NumPeople        int  `json:"num_people"`
	Capacity         int  `json:"capacity"`
	ArePeopleWaiting bool `json:"are_people_waiting"`
}

// ElevatorState is the serialized view of one elevator.
type ElevatorState struct {
	NumPeople int `json:"num_people"`
	Capacity  int `json:"capacity"`
	FloorOn   int `json:"floor_on"`
}

// UpgradeState is the serialized view of one purchasable upgrade.
type UpgradeState struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
}

// UpgradesState lists the purchasable upgrades in a fixed order.
type UpgradesState struct {
	AppendFloor         UpgradeState `json:"append_floor"`
	AppendElevator      UpgradeState `json:"append_elevator"`
	AddFloorCapacity    UpgradeState `json:"add_floor_capacity"`
	AddElevatorCapacity UpgradeState `json:"add_elevator_capacity"`
}

// StateSnapshot is a read-only projection of the game at a tick boundary.
type StateSnapshot struct {
	Tick           int             `json:"tick"`
	Floors         []FloorState    `json:"floors"`
	Elevators      []ElevatorState `json:"elevators"`
	Upgrades       UpgradesState   `json:"upgrades"`
	AvgEnergySpent float64         `json:"avg_energy_spent"`
	AvgWaitTime    float64         `json:"avg_wait_time"`
	BuildingTips   float64         `json:"building_tips"`
	CollectedTips  float64         `json:"collected_tips"`
}

// Snapshot derives the current state. It has no side effects.
func (e *Engine) Snapshot() StateSnapshot {
	floors := e.building.Floors()
	elevators := e.building.Elevators()

	snap := StateSnapshot{
		Tick:      e.tick,
		Floors:    make([]FloorState, 0, len(floors)),
		Elevators: make([]ElevatorState, 0, len(elevators)),
		Upgrades: UpgradesState{
			AppendFloor:         e.upgradeState(upgrade.KindAppendFloor),
			AppendElevator:      e.upgradeState(upgrade.KindAppendElevator),
			AddFloorCapacity:    e.upgradeState(upgrade.KindAddFloorCapacity),
			AddElevatorCapacity: e.upgradeState(upgrade.KindAddElevatorCapacity),
		},
		AvgEnergySpent: e.building.AverageEnergy(),
		AvgWaitTime:    e.building.AverageWaitTime(),
		BuildingTips:   e.building.AccumulatedTips(),
		CollectedTips:  e.tips,
	}

	for _, f := range floors {
		snap.Floors = append(snap.Floors, FloorState{
			NumPeople:        f.NumPeople,
			Capacity:         f.Capacity,
			ArePeopleWaiting: f.PeopleWaiting,
		})
	}
	for _, el := range elevators {
		snap.Elevators = append(snap.Elevators, ElevatorState{
			NumPeople: el.NumPeople,
			Capacity:  el.Capacity,
			FloorOn:   el.FloorOn,
		})
	}
	return snap
}

func (e *Engine) upgradeState(kind upgrade.Kind) UpgradeState {
	u := e.catalog.Get(kind)
	return UpgradeState{
		Name:        u.Name,
		Description: u.Description,
		Cost:        u.Price(),
	}
}

// Cost returns the quoted price of kind in the snapshot.
func (s StateSnapshot) Cost(kind upgrade.Kind) float64 {
	switch kind {
	case upgrade.KindAppendFloor:
		return s.Upgrades.AppendFloor.Cost
	case upgrade.KindAppendElevator:
		return s.Upgrades.AppendElevator.Cost
	case upgrade.KindAddFloorCapacity:
		return s.Upgrades.AddFloorCapacity.Cost
	case upgrade.KindAddElevatorCapacity:
		return s.Upgrades.AddElevatorCapacity.Cost
	default:
		return 0
	}
}

// MarshalSnapshot serializes a snapshot to its wire form.
func MarshalSnapshot(s StateSnapshot) ([]byte, error) {
	return json.Marshal(s)
}
