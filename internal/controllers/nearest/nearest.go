// Package nearest provides a greedy controller: an elevator with riders
// heads for the closest rider destination, an empty one heads for the
// closest floor with people waiting.
package nearest

import (
	"github.com/vovakirdan/universal-elevators/internal/building"
	"github.com/vovakirdan/universal-elevators/internal/registry"
)

// ID is the registry name of the controller.
const ID = "nearest"

func init() {
	registry.Register(ID, func(int64) building.Controller {
		return New()
	})
}

// Controller is deterministic and keeps no state between ticks.
type Controller struct{}

// New creates a nearest-floor controller.
func New() *Controller {
	return &Controller{}
}

// ID returns the controller identifier.
func (c *Controller) ID() string {
	return ID
}

// Title returns the display name.
func (c *Controller) Title() string {
	return "Nearest Floor"
}

// Decide steers every elevator toward its target floor.
func (c *Controller) Decide(view building.ControlView) []building.Direction {
	dirs := make([]building.Direction, len(view.Elevators))
	for i, el := range view.Elevators {
		target, ok := nearest(el.Floor, el.Destinations)
		if !ok {
			target, ok = nearest(el.Floor, waitingFloors(view.Floors))
		}
		if !ok {
			continue
		}
		switch {
		case target > el.Floor:
			dirs[i] = building.Up
		case target < el.Floor:
			dirs[i] = building.Down
		}
	}
	return dirs
}

func waitingFloors(floors []building.FloorView) []int {
	var out []int
	for i, f := range floors {
		if f.Waiting > 0 {
			out = append(out, i)
		}
	}
	return out
}

// nearest returns the candidate closest to floor. Ties go to the lower floor.
func nearest(floor int, candidates []int) (int, bool) {
	best, bestDist := 0, -1
	for _, c := range candidates {
		d := c - floor
		if d < 0 {
			d = -d
		}
		if bestDist < 0 || d < bestDist || (d == bestDist && c < best) {
			best, bestDist = c, d
		}
	}
	return best, bestDist >= 0
}
