package building

import (
	"math"
	"math/rand"
	"testing"
)

// scripted returns the same directions on every call.
type scripted struct {
	dirs  []Direction
	views []ControlView
}

func (s *scripted) ID() string    { return "scripted" }
func (s *scripted) Title() string { return "Scripted" }
func (s *scripted) Decide(view ControlView) []Direction {
	s.views = append(s.views, view)
	return s.dirs
}

func newTestBuilding(t *testing.T, cfg Config, dirs ...Direction) (*Building, *scripted) {
	t.Helper()
	ctrl := &scripted{dirs: dirs}
	b, err := New(cfg, ctrl)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return b, ctrl
}

func TestNewTopology(t *testing.T) {
	b, _ := newTestBuilding(t, DefaultConfig())

	floors := b.Floors()
	if len(floors) != 4 {
		t.Fatalf("floors = %d, want 4", len(floors))
	}
	for i, f := range floors {
		if f.Capacity != 100 || f.NumPeople != 0 || f.PeopleWaiting {
			t.Errorf("floor %d = %+v", i, f)
		}
	}
	elevators := b.Elevators()
	if len(elevators) != 2 {
		t.Fatalf("elevators = %d, want 2", len(elevators))
	}
	for i, el := range elevators {
		if el.Capacity != 10 || el.FloorOn != 0 || el.EnergyUp != 5 || el.EnergyDown != 2.5 || el.EnergyCoef != 0.5 {
			t.Errorf("elevator %d = %+v", i, el)
		}
	}
}

func TestNewRejectsEmptyTopology(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Floors = 0
	if _, err := New(cfg, &scripted{}); err == nil {
		t.Error("New() accepted a building without floors")
	}
	if _, err := New(DefaultConfig(), nil); err == nil {
		t.Error("New() accepted a nil controller")
	}
}

func TestArrivalsFillLobbyUpToCapacity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ArrivalProbability = 1
	cfg.FloorCapacity = 7
	b, _ := newTestBuilding(t, cfg)

	b.GenArrivals(rand.New(rand.NewSource(1)))

	lobby := b.Floors()[0]
	if lobby.NumPeople != 7 {
		t.Errorf("lobby = %d people, want 7", lobby.NumPeople)
	}
	if !lobby.PeopleWaiting {
		t.Error("arrivals should be waiting for an elevator")
	}
	for _, p := range b.floors[0].people {
		if p.FloorTo < 1 || p.FloorTo > 3 {
			t.Errorf("arrival destination %d out of range", p.FloorTo)
		}
	}
}

func TestNoArrivalsInSingleFloorBuilding(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Floors = 1
	cfg.ArrivalProbability = 1
	b, _ := newTestBuilding(t, cfg)

	b.GenArrivals(rand.New(rand.NewSource(1)))

	if b.Population() != 0 {
		t.Errorf("population = %d, want 0", b.Population())
	}
}

func TestDestinationProbabilities(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FloorCapacity = 3
	b, _ := newTestBuilding(t, cfg)
	b.floors[1].people = []Person{{FloorOn: 1, FloorTo: 1}, {FloorOn: 1, FloorTo: 1}, {FloorOn: 1, FloorTo: 1}}

	b.UpdateDestinationProbabilities()

	// Free capacity + 1: floor1 = 1, floor2 = 4, floor3 = 4.
	want := []float64{0, 1.0 / 9, 4.0 / 9, 4.0 / 9}
	for i, w := range want {
		if math.Abs(b.floors[i].destProb-w) > 1e-9 {
			t.Errorf("floor %d probability = %v, want %v", i, b.floors[i].destProb, w)
		}
	}
}

func TestDeparturesOnlyTouchRestingPeople(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DepartureProbability = 1
	b, _ := newTestBuilding(t, cfg)
	b.floors[2].people = []Person{
		{FloorOn: 2, FloorTo: 2, WaitTime: 9},
		{FloorOn: 2, FloorTo: 3, WaitTime: 4},
	}

	b.GenDepartures(rand.New(rand.NewSource(1)))

	resting, waiting := b.floors[2].people[0], b.floors[2].people[1]
	if resting.FloorTo != 0 || resting.WaitTime != 0 {
		t.Errorf("resting person = %+v, want heading to lobby with wait reset", resting)
	}
	if waiting.FloorTo != 3 || waiting.WaitTime != 4 {
		t.Errorf("waiting person changed: %+v", waiting)
	}
}

func TestFlushCollectsTipsAtGroundFloor(t *testing.T) {
	cfg := DefaultConfig()
	b, _ := newTestBuilding(t, cfg)
	b.elevators[0].people = []Person{{FloorTo: 0, OnElevator: true}, {FloorTo: 2, OnElevator: true}}
	b.elevators[1].floor = 3
	b.elevators[1].people = []Person{{FloorOn: 3, FloorTo: 0, OnElevator: true}}
	b.floors[0].people = []Person{{FloorTo: 0}, {FloorTo: 1}}

	b.FlushAndCollectTips(rand.New(rand.NewSource(1)))

	if got := len(b.elevators[0].people); got != 1 {
		t.Errorf("elevator 0 riders = %d, want 1", got)
	}
	if got := len(b.elevators[1].people); got != 1 {
		t.Errorf("elevator 1 riders = %d, want 1 (not at ground)", got)
	}
	if got := len(b.floors[0].people); got != 1 {
		t.Errorf("lobby = %d people, want 1", got)
	}
	tips := b.AccumulatedTips()
	if tips <= 0 || tips > 2*cfg.TipMax {
		t.Errorf("tips = %v, want within (0, %v]", tips, 2*cfg.TipMax)
	}
}

func TestLongWaitsTipLess(t *testing.T) {
	cfg := DefaultConfig()
	fresh, _ := newTestBuilding(t, cfg)
	stale, _ := newTestBuilding(t, cfg)
	fresh.floors[0].people = []Person{{FloorTo: 0}}
	stale.floors[0].people = []Person{{FloorTo: 0, WaitTime: 90}}

	fresh.FlushAndCollectTips(rand.New(rand.NewSource(3)))
	stale.FlushAndCollectTips(rand.New(rand.NewSource(3)))

	if math.Abs(stale.AccumulatedTips()*10-fresh.AccumulatedTips()) > 1e-9 {
		t.Errorf("stale tip %v, fresh tip %v: want a tenth", stale.AccumulatedTips(), fresh.AccumulatedTips())
	}
}

func TestExchangeAlightsThenBoards(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ElevatorCapacity = 2
	b, _ := newTestBuilding(t, cfg)
	b.elevators[1].floor = 3
	b.elevators[0].floor = 2
	b.elevators[0].people = []Person{
		{FloorOn: 2, FloorTo: 2, OnElevator: true},
		{FloorOn: 2, FloorTo: 3, OnElevator: true},
	}
	b.floors[2].people = []Person{
		{FloorOn: 2, FloorTo: 0},
		{FloorOn: 2, FloorTo: 1},
		{FloorOn: 2, FloorTo: 2},
	}

	b.ExchangeOccupants()

	riders := b.elevators[0].people
	if len(riders) != 2 {
		t.Fatalf("riders = %d, want 2", len(riders))
	}
	if riders[0].FloorTo != 3 || riders[1].FloorTo != 0 {
		t.Errorf("riders = %+v", riders)
	}
	if !riders[1].OnElevator {
		t.Error("boarded person not marked on elevator")
	}
	floor := b.floors[2].people
	if len(floor) != 3 {
		t.Fatalf("floor 2 = %d people, want 3", len(floor))
	}
	resting := 0
	for _, p := range floor {
		if p.AtDestination() {
			resting++
		}
	}
	if resting != 2 {
		t.Errorf("resting on floor 2 = %d, want 2", resting)
	}
}

func TestExchangeRespectsFloorCapacity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FloorCapacity = 1
	b, _ := newTestBuilding(t, cfg)
	b.elevators[0].floor = 1
	b.elevators[0].people = []Person{
		{FloorOn: 1, FloorTo: 1, OnElevator: true},
		{FloorOn: 1, FloorTo: 1, OnElevator: true},
	}

	b.ExchangeOccupants()

	if got := len(b.floors[1].people); got != 1 {
		t.Errorf("floor 1 = %d people, want 1", got)
	}
	if got := len(b.elevators[0].people); got != 1 {
		t.Errorf("riders = %d, want 1", got)
	}
}

func TestControlMovesAndChargesEnergy(t *testing.T) {
	cfg := DefaultConfig()
	b, ctrl := newTestBuilding(t, cfg, Up, Down)
	b.elevators[0].people = []Person{{FloorTo: 2, OnElevator: true}, {FloorTo: 3, OnElevator: true}}
	b.elevators[1].floor = 2

	b.RunElevatorControl()

	els := b.Elevators()
	if els[0].FloorOn != 1 || els[0].EnergySpent != 5+0.5*2 {
		t.Errorf("elevator 0 = %+v", els[0])
	}
	if els[1].FloorOn != 1 || els[1].EnergySpent != 2.5 {
		t.Errorf("elevator 1 = %+v", els[1])
	}
	for _, p := range b.elevators[0].people {
		if p.FloorOn != 1 {
			t.Errorf("rider still on floor %d", p.FloorOn)
		}
	}
	if len(ctrl.views) != 1 {
		t.Fatalf("controller called %d times, want 1", len(ctrl.views))
	}
	if got := ctrl.views[0].Elevators[0].Destinations; len(got) != 2 {
		t.Errorf("view destinations = %v", got)
	}
}

func TestControlClampsToShaft(t *testing.T) {
	b, _ := newTestBuilding(t, DefaultConfig(), Down)
	b.elevators[1].floor = 3

	b.RunElevatorControl()

	els := b.Elevators()
	if els[0].FloorOn != 0 || els[0].EnergySpent != 0 {
		t.Errorf("elevator 0 = %+v, want idle at ground", els[0])
	}
	// Missing direction means idle.
	if els[1].FloorOn != 3 || els[1].EnergySpent != 0 {
		t.Errorf("elevator 1 = %+v, want idle", els[1])
	}
}

func TestIncrementWaitTimes(t *testing.T) {
	b, _ := newTestBuilding(t, DefaultConfig())
	b.floors[1].people = []Person{{FloorOn: 1, FloorTo: 1}, {FloorOn: 1, FloorTo: 0}}
	b.elevators[0].people = []Person{{FloorTo: 2, OnElevator: true}}

	b.IncrementWaitTimes()

	if got := b.floors[1].people[0].WaitTime; got != 0 {
		t.Errorf("resting wait = %d, want 0", got)
	}
	if got := b.floors[1].people[1].WaitTime; got != 1 {
		t.Errorf("waiting wait = %d, want 1", got)
	}
	if got := b.elevators[0].people[0].WaitTime; got != 1 {
		t.Errorf("rider wait = %d, want 1", got)
	}
	if got := b.AverageWaitTime(); math.Abs(got-2.0/3) > 1e-9 {
		t.Errorf("AverageWaitTime() = %v, want 2/3", got)
	}
}

func TestAverageEnergyRunningMean(t *testing.T) {
	b, _ := newTestBuilding(t, DefaultConfig())

	b.UpdateAverageEnergy(0, 10)
	b.UpdateAverageEnergy(1, 0)
	b.UpdateAverageEnergy(2, 5)

	if got := b.AverageEnergy(); got != 5 {
		t.Errorf("AverageEnergy() = %v, want 5", got)
	}
}

func TestGrowthAndCapacity(t *testing.T) {
	b, _ := newTestBuilding(t, DefaultConfig())
	b.floors[1].people = make([]Person, 50)

	b.AppendFloor(100)
	b.AppendElevator(12, 6, 3, 0.25)
	b.SetAllFloorCapacities(30)
	b.SetAllElevatorCapacities(20)

	floors := b.Floors()
	if len(floors) != 5 {
		t.Fatalf("floors = %d, want 5", len(floors))
	}
	for i, f := range floors {
		if f.Capacity != 30 {
			t.Errorf("floor %d capacity = %d, want 30", i, f.Capacity)
		}
	}
	if floors[1].NumPeople != 50 {
		t.Error("capacity shrink must not evict anyone")
	}
	els := b.Elevators()
	if len(els) != 3 || els[2].EnergyUp != 6 || els[2].FloorOn != 0 {
		t.Errorf("appended elevator = %+v", els[len(els)-1])
	}
	for i, el := range els {
		if el.Capacity != 20 {
			t.Errorf("elevator %d capacity = %d, want 20", i, el.Capacity)
		}
	}
	if b.floors[4].destProb == 0 {
		t.Error("new floor should be a possible destination")
	}
}

func TestCollectAccumulatedTipsDrains(t *testing.T) {
	b, _ := newTestBuilding(t, DefaultConfig())
	b.tips = 7.5

	if got := b.CollectAccumulatedTips(); got != 7.5 {
		t.Errorf("CollectAccumulatedTips() = %v, want 7.5", got)
	}
	if b.AccumulatedTips() != 0 {
		t.Errorf("pool = %v after collection", b.AccumulatedTips())
	}
}

func TestLegalDirections(t *testing.T) {
	view := ControlView{
		Floors:    make([]FloorView, 3),
		Elevators: []ElevatorView{{Floor: 0}, {Floor: 1}, {Floor: 2}},
	}

	tests := []struct {
		elevator int
		want     []Direction
	}{
		{0, []Direction{Idle, Up}},
		{1, []Direction{Idle, Up, Down}},
		{2, []Direction{Idle, Down}},
	}
	for _, tt := range tests {
		got := view.Legal(tt.elevator)
		if len(got) != len(tt.want) {
			t.Errorf("Legal(%d) = %v, want %v", tt.elevator, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Legal(%d) = %v, want %v", tt.elevator, got, tt.want)
			}
		}
	}
}
