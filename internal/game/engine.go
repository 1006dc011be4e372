// Package game implements the tick orchestrator of the elevator game: it owns
// the player's funds and the upgrade catalog, drives the building simulation
// in a fixed phase order and projects the observable state into snapshots.
//
// The engine is not safe for concurrent use; wrap it (see internal/host).
package game

import (
	"math/rand"

	"github.com/vovakirdan/universal-elevators/internal/upgrade"
)

// Settings holds the tuning the engine applies on capacity purchases.
type Settings struct {
	StartingTips         float64
	FloorCapacityStep    int
	ElevatorCapacityStep int
}

// DefaultSettings returns the stock tuning.
func DefaultSettings() Settings {
	return Settings{
		FloorCapacityStep:    100,
		ElevatorCapacityStep: 10,
	}
}

// TickReport summarizes what one tick did on behalf of the player.
type TickReport struct {
	Tick      int            // tick number that was applied
	Collected float64        // tips moved from the building into funds
	Purchased []upgrade.Kind // upgrades bought, in purchase order
}

// Engine is the authoritative game state.
type Engine struct {
	building Building
	catalog  *upgrade.Catalog
	rng      *rand.Rand
	settings Settings

	tips   float64
	earned float64
	tick   int
}

// NewEngine creates an engine that exclusively owns the given building,
// catalog and random stream.
func NewEngine(b Building, catalog *upgrade.Catalog, rng *rand.Rand, settings Settings) *Engine {
	return &Engine{
		building: b,
		catalog:  catalog,
		rng:      rng,
		settings: settings,
		tips:     settings.StartingTips,
	}
}

// Tips returns the player's spendable funds.
func (e *Engine) Tips() float64 {
	return e.tips
}

// Earned returns all tips ever collected.
func (e *Engine) Earned() float64 {
	return e.earned
}

// Tick returns the number of completed ticks.
func (e *Engine) Tick() int {
	return e.tick
}

// Catalog exposes the upgrades for read access.
func (e *Engine) Catalog() *upgrade.Catalog {
	return e.catalog
}

// ApplyTick advances the game by one tick.
//
// Player decisions (tip collection, purchases) see the building as it was at
// the start of the tick; wait-time and energy accounting see the outcome of
// this tick's movement.
func (e *Engine) ApplyTick(cmd Command) TickReport {
	report := TickReport{Tick: e.tick}

	// Phase 1: tips.
	if cmd.CollectTips {
		e.catalog.Get(upgrade.KindCollectTips).Purchase()
		collected := e.building.CollectAccumulatedTips()
		e.tips += collected
		e.earned += collected
		report.Collected = collected
	}

	// Phase 2: growth. New units clone unit 0.
	if cmd.AppendFloor && e.buy(upgrade.KindAppendFloor, &report) {
		template := e.building.Floors()[0]
		e.building.AppendFloor(template.Capacity)
	}
	if cmd.AppendElevator && e.buy(upgrade.KindAppendElevator, &report) {
		template := e.building.Elevators()[0]
		e.building.AppendElevator(template.Capacity, template.EnergyUp, template.EnergyDown, template.EnergyCoef)
	}

	// Phase 3: capacity, applied to every unit.
	if cmd.AddFloorCapacity && e.buy(upgrade.KindAddFloorCapacity, &report) {
		current := e.building.Floors()[0].Capacity
		e.building.SetAllFloorCapacities(current + e.settings.FloorCapacityStep)
	}
	if cmd.AddElevatorCapacity && e.buy(upgrade.KindAddElevatorCapacity, &report) {
		current := e.building.Elevators()[0].Capacity
		e.building.SetAllElevatorCapacities(current + e.settings.ElevatorCapacityStep)
	}

	// Phase 4: population.
	e.building.GenArrivals(e.rng)
	e.building.GenDepartures(e.rng)

	// Phase 5: movement and tips.
	e.building.FlushAndCollectTips(e.rng)
	e.building.ExchangeOccupants()

	// Phase 6: control.
	e.building.RunElevatorControl()

	// Phase 7: bookkeeping.
	var energy float64
	for _, el := range e.building.Elevators() {
		energy += el.EnergySpent
	}
	e.building.IncrementWaitTimes()
	e.building.UpdateAverageEnergy(e.tick, energy)
	e.building.UpdateDestinationProbabilities()

	// Phase 8.
	e.tick++
	return report
}

// buy charges the quoted price of kind when funds allow it.
func (e *Engine) buy(kind upgrade.Kind, report *TickReport) bool {
	u := e.catalog.Get(kind)
	if !u.Available() || !u.Affordable(e.tips) {
		return false
	}
	e.tips -= u.Purchase()
	report.Purchased = append(report.Purchased, kind)
	return true
}
