// Package random provides a controller that moves every elevator in a
// uniformly chosen legal direction each tick.
package random

import (
	"math/rand"

	"github.com/vovakirdan/universal-elevators/internal/building"
	"github.com/vovakirdan/universal-elevators/internal/registry"
)

// ID is the registry name of the controller.
const ID = "random"

func init() {
	registry.Register(ID, func(seed int64) building.Controller {
		return New(seed)
	})
}

// Controller picks directions at random.
type Controller struct {
	rng *rand.Rand
}

// New creates a controller with its own random stream.
func New(seed int64) *Controller {
	return &Controller{rng: rand.New(rand.NewSource(seed))}
}

// ID returns the controller identifier.
func (c *Controller) ID() string {
	return ID
}

// Title returns the display name.
func (c *Controller) Title() string {
	return "Random"
}

// Decide draws one legal direction per elevator.
func (c *Controller) Decide(view building.ControlView) []building.Direction {
	dirs := make([]building.Direction, len(view.Elevators))
	for i := range view.Elevators {
		legal := view.Legal(i)
		dirs[i] = legal[c.rng.Intn(len(legal))]
	}
	return dirs
}
