// Package building simulates the occupants of a building: people arrive at
// the ground floor, ride elevators to their destination, rest there and
// eventually leave again, tipping on the way out.
package building

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/universal-elevators/internal/game"
)

// Config describes the starting topology and the population model.
type Config struct {
	Floors               int
	Elevators            int
	FloorCapacity        int
	ElevatorCapacity     int
	ArrivalProbability   float64 // p_in
	DepartureProbability float64 // p_out
	EnergyUp             float64
	EnergyDown           float64
	EnergyCoef           float64
	TipMax               float64
	TipWaitPenalty       float64
}

// DefaultConfig returns the stock starting building.
func DefaultConfig() Config {
	return Config{
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
	}
}

var _ game.Building = (*Building)(nil)

// Building implements game.Building.
type Building struct {
	cfg        Config
	controller Controller

	floors    []Floor
	elevators []Elevator

	tips      float64
	avgEnergy float64
}

// New creates a building with cfg's topology, driven by controller.
func New(cfg Config, controller Controller) (*Building, error) {
	if cfg.Floors < 1 || cfg.Elevators < 1 {
		return nil, errors.New("building: need at least one floor and one elevator")
	}
	if controller == nil {
		return nil, errors.New("building: controller is required")
	}

	b := &Building{cfg: cfg, controller: controller}
	for range cfg.Floors {
		b.floors = append(b.floors, Floor{capacity: cfg.FloorCapacity})
	}
	for range cfg.Elevators {
		b.AppendElevator(cfg.ElevatorCapacity, cfg.EnergyUp, cfg.EnergyDown, cfg.EnergyCoef)
	}
	b.UpdateDestinationProbabilities()
	return b, nil
}

// Controller returns the controller driving the elevators.
func (b *Building) Controller() Controller {
	return b.controller
}

// GenArrivals admits new people at the ground floor. Each Bernoulli
// success adds one person until a draw fails or the lobby is full.
func (b *Building) GenArrivals(rng *rand.Rand) {
	if len(b.floors) < 2 {
		return
	}
	lobby := &b.floors[0]
	for lobby.hasRoom() && rng.Float64() < b.cfg.ArrivalProbability {
		lobby.people = append(lobby.people, Person{FloorTo: b.sampleDestination(rng)})
	}
}

func (b *Building) sampleDestination(rng *rand.Rand) int {
	r := rng.Float64()
	for i := 1; i < len(b.floors); i++ {
		r -= b.floors[i].destProb
		if r < 0 {
			return i
		}
	}
	return len(b.floors) - 1
}

// GenDepartures sends resting people on upper floors back to the lobby.
func (b *Building) GenDepartures(rng *rand.Rand) {
	for i := 1; i < len(b.floors); i++ {
		people := b.floors[i].people
		for j := range people {
			if !people[j].AtDestination() {
				continue
			}
			if rng.Float64() < b.cfg.DepartureProbability {
				people[j].FloorTo = 0
				people[j].WaitTime = 0
			}
		}
	}
}

// FlushAndCollectTips removes everyone who reached the ground floor on
// their way out and adds their tips to the uncollected pool.
func (b *Building) FlushAndCollectTips(rng *rand.Rand) {
	for i := range b.elevators {
		el := &b.elevators[i]
		if el.floor != 0 {
			continue
		}
		el.people = b.flush(el.people, rng)
	}
	b.floors[0].people = b.flush(b.floors[0].people, rng)
}

func (b *Building) flush(people []Person, rng *rand.Rand) []Person {
	kept := people[:0]
	for _, p := range people {
		if p.FloorTo != 0 {
			kept = append(kept, p)
			continue
		}
		b.tips += b.cfg.TipMax * rng.Float64() / (1 + float64(p.WaitTime)*b.cfg.TipWaitPenalty)
	}
	return kept
}

// ExchangeOccupants lets riders alight at their destination, then lets
// waiting people board, for every elevator at its current floor.
func (b *Building) ExchangeOccupants() {
	for i := range b.elevators {
		el := &b.elevators[i]
		floor := &b.floors[el.floor]

		riders := el.people[:0]
		for _, p := range el.people {
			if p.FloorTo == el.floor && floor.hasRoom() {
				p.OnElevator = false
				floor.people = append(floor.people, p)
				continue
			}
			riders = append(riders, p)
		}
		el.people = riders

		remaining := floor.people[:0]
		for _, p := range floor.people {
			if !p.AtDestination() && el.hasRoom() {
				p.OnElevator = true
				el.people = append(el.people, p)
				continue
			}
			remaining = append(remaining, p)
		}
		floor.people = remaining
	}
}

// RunElevatorControl asks the controller where each elevator goes and
// moves it by at most one floor.
func (b *Building) RunElevatorControl() {
	dirs := b.controller.Decide(b.View())
	top := len(b.floors) - 1
	for i := range b.elevators {
		el := &b.elevators[i]
		dir := Idle
		if i < len(dirs) {
			dir = dirs[i]
		}
		if (dir == Up && el.floor >= top) || (dir == Down && el.floor <= 0) {
			dir = Idle
		}
		el.move(dir)
	}
}

// View returns the controller's picture of the building.
func (b *Building) View() ControlView {
	view := ControlView{
		Floors:    make([]FloorView, len(b.floors)),
		Elevators: make([]ElevatorView, len(b.elevators)),
	}
	for i := range b.floors {
		view.Floors[i] = FloorView{Waiting: b.floors[i].waiting()}
	}
	for i, el := range b.elevators {
		dests := make([]int, len(el.people))
		for j, p := range el.people {
			dests[j] = p.FloorTo
		}
		view.Elevators[i] = ElevatorView{Floor: el.floor, Capacity: el.capacity, Destinations: dests}
	}
	return view
}

// IncrementWaitTimes ages everyone who is not at their destination.
func (b *Building) IncrementWaitTimes() {
	for i := range b.floors {
		people := b.floors[i].people
		for j := range people {
			if !people[j].AtDestination() {
				people[j].WaitTime++
			}
		}
	}
	for i := range b.elevators {
		people := b.elevators[i].people
		for j := range people {
			people[j].WaitTime++
		}
	}
}

// UpdateAverageEnergy folds this tick's energy into the running mean.
func (b *Building) UpdateAverageEnergy(tick int, energySpent float64) {
	b.avgEnergy = (b.avgEnergy*float64(tick) + energySpent) / float64(tick+1)
}

// UpdateDestinationProbabilities weights upper floors by their free
// capacity. The ground floor is never a destination for arrivals.
func (b *Building) UpdateDestinationProbabilities() {
	var total float64
	weights := make([]float64, len(b.floors))
	for i := 1; i < len(b.floors); i++ {
		free := max(b.floors[i].capacity-len(b.floors[i].people), 0)
		weights[i] = float64(free + 1)
		total += weights[i]
	}
	for i := range b.floors {
		if total == 0 {
			b.floors[i].destProb = 0
			continue
		}
		b.floors[i].destProb = weights[i] / total
	}
}

// AppendFloor adds an empty floor on top.
func (b *Building) AppendFloor(capacity int) {
	b.floors = append(b.floors, Floor{capacity: capacity})
	b.UpdateDestinationProbabilities()
}

// AppendElevator adds an empty elevator parked at the ground floor.
func (b *Building) AppendElevator(capacity int, energyUp, energyDown, energyCoef float64) {
	b.elevators = append(b.elevators, Elevator{
		capacity:   capacity,
		energyUp:   energyUp,
		energyDown: energyDown,
		energyCoef: energyCoef,
	})
}

// SetAllFloorCapacities resizes every floor. Nobody is evicted.
func (b *Building) SetAllFloorCapacities(capacity int) {
	for i := range b.floors {
		b.floors[i].capacity = capacity
	}
}

// SetAllElevatorCapacities resizes every elevator. Nobody is evicted.
func (b *Building) SetAllElevatorCapacities(capacity int) {
	for i := range b.elevators {
		b.elevators[i].capacity = capacity
	}
}

// CollectAccumulatedTips drains the uncollected pool.
func (b *Building) CollectAccumulatedTips() float64 {
	tips := b.tips
	b.tips = 0
	return tips
}

// Floors returns a view of every floor, ground floor first.
func (b *Building) Floors() []game.FloorInfo {
	infos := make([]game.FloorInfo, len(b.floors))
	for i := range b.floors {
		f := &b.floors[i]
		infos[i] = game.FloorInfo{
			NumPeople:     len(f.people),
			Capacity:      f.capacity,
			PeopleWaiting: f.waiting() > 0,
		}
	}
	return infos
}

// Elevators returns a view of every elevator.
func (b *Building) Elevators() []game.ElevatorInfo {
	infos := make([]game.ElevatorInfo, len(b.elevators))
	for i, el := range b.elevators {
		infos[i] = game.ElevatorInfo{
			NumPeople:   len(el.people),
			Capacity:    el.capacity,
			FloorOn:     el.floor,
			EnergyUp:    el.energyUp,
			EnergyDown:  el.energyDown,
			EnergyCoef:  el.energyCoef,
			EnergySpent: el.energySpent,
		}
	}
	return infos
}

// AverageEnergy returns the running mean of energy spent per tick.
func (b *Building) AverageEnergy() float64 {
	return b.avgEnergy
}

// AverageWaitTime returns the mean wait of everyone inside, or 0.
func (b *Building) AverageWaitTime() float64 {
	var total, n int
	for _, f := range b.floors {
		for _, p := range f.people {
			total += p.WaitTime
			n++
		}
	}
	for _, el := range b.elevators {
		for _, p := range el.people {
			total += p.WaitTime
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(total) / float64(n)
}

// AccumulatedTips returns the uncollected pool.
func (b *Building) AccumulatedTips() float64 {
	return b.tips
}

// Population returns the number of people inside.
func (b *Building) Population() int {
	n := 0
	for _, f := range b.floors {
		n += len(f.people)
	}
	for _, el := range b.elevators {
		n += len(el.people)
	}
	return n
}
