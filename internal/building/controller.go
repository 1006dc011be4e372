package building

// Direction is the move a controller orders for one elevator.
type Direction int

const (
	Idle Direction = iota
	Up
	Down
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "idle"
	}
}

// FloorView is what a controller can see of one floor.
type FloorView struct {
	Waiting int // people not at their destination
}

// ElevatorView is what a controller can see of one elevator.
type ElevatorView struct {
	Floor        int
	Capacity     int
	Destinations []int // one entry per rider
}

// ControlView is the building as presented to a controller.
type ControlView struct {
	Floors    []FloorView
	Elevators []ElevatorView
}

// Legal returns the directions elevator i may take without leaving the shaft.
func (v ControlView) Legal(i int) []Direction {
	dirs := []Direction{Idle}
	floor := v.Elevators[i].Floor
	if floor < len(v.Floors)-1 {
		dirs = append(dirs, Up)
	}
	if floor > 0 {
		dirs = append(dirs, Down)
	}
	return dirs
}

// Controller decides elevator movement once per tick.
type Controller interface {
	ID() string
	Title() string
	// Decide returns one direction per elevator in view order. Missing
	// entries are treated as Idle.
	Decide(view ControlView) []Direction
}
