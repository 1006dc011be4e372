package building

// Person is one occupant of the building.
type Person struct {
	FloorOn    int
	FloorTo    int
	OnElevator bool
	WaitTime   int // ticks spent away from the destination
}

// AtDestination reports whether p is resting on its target floor.
func (p Person) AtDestination() bool {
	return !p.OnElevator && p.FloorOn == p.FloorTo
}

// Floor is one level of the building.
type Floor struct {
	people   []Person
	capacity int
	destProb float64
}

func (f *Floor) hasRoom() bool {
	return len(f.people) < f.capacity
}

func (f *Floor) waiting() int {
	n := 0
	for _, p := range f.people {
		if !p.AtDestination() {
			n++
		}
	}
	return n
}

// Elevator is one car and its shaft position.
type Elevator struct {
	people      []Person
	capacity    int
	floor       int
	direction   Direction
	energyUp    float64
	energyDown  float64
	energyCoef  float64
	energySpent float64
}

func (e *Elevator) hasRoom() bool {
	return len(e.people) < e.capacity
}

// move shifts the car by one floor and charges energy for it.
func (e *Elevator) move(dir Direction) {
	e.direction = dir
	load := e.energyCoef * float64(len(e.people))
	switch dir {
	case Up:
		e.floor++
		e.energySpent = e.energyUp + load
	case Down:
		e.floor--
		e.energySpent = e.energyDown + load
	default:
		e.energySpent = 0
	}
	for i := range e.people {
		e.people[i].FloorOn = e.floor
	}
}
