package game

import "math/rand"

// FloorInfo is a read-only view of one floor.
type FloorInfo struct {
	NumPeople     int
	Capacity      int
	PeopleWaiting bool
}

// ElevatorInfo is a read-only view of one elevator, including the
// configuration a cloned elevator inherits.
type ElevatorInfo struct {
	NumPeople   int
	Capacity    int
	FloorOn     int
	EnergyUp    float64
	EnergyDown  float64
	EnergyCoef  float64
	EnergySpent float64 // during the last control step
}

// Building is the occupancy simulation the engine drives. The engine is its
// only caller; the methods run in the order the tick phases require.
type Building interface {
	// Population
	GenArrivals(rng *rand.Rand)
	GenDepartures(rng *rand.Rand)

	// Movement
	FlushAndCollectTips(rng *rand.Rand)
	ExchangeOccupants()
	RunElevatorControl()

	// Bookkeeping
	IncrementWaitTimes()
	UpdateAverageEnergy(tick int, energySpent float64)
	UpdateDestinationProbabilities()

	// Growth
	AppendFloor(capacity int)
	AppendElevator(capacity int, energyUp, energyDown, energyCoef float64)
	SetAllFloorCapacities(capacity int)
	SetAllElevatorCapacities(capacity int)

	// CollectAccumulatedTips drains the uncollected pool and returns it.
	CollectAccumulatedTips() float64

	Floors() []FloorInfo
	Elevators() []ElevatorInfo
	AverageEnergy() float64
	AverageWaitTime() float64
	AccumulatedTips() float64
}
