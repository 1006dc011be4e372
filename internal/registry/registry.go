// Package registry provides a global registry for elevator controllers.
// Controllers register themselves in init() functions, so the host can pick
// one by name from configuration without importing it directly.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/universal-elevators/internal/building"
)

// ErrUnknownController is returned by Create for an unregistered ID.
var ErrUnknownController = errors.New("registry: unknown controller")

// ControllerInfo contains metadata about a registered controller.
type ControllerInfo struct {
	ID    string
	Title string
}

// Factory creates a controller whose decisions are driven by seed.
type Factory func(seed int64) building.Controller

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a controller factory to the registry.
// Panics if a controller with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: controller %q already registered", id))
	}

	factories[id] = f
	titles[id] = f(0).Title()
}

// List returns all registered controllers, sorted by ID.
func List() []ControllerInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ControllerInfo, 0, len(factories))
	for id := range factories {
		result = append(result, ControllerInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a controller by its ID.
func Create(id string, seed int64) (building.Controller, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownController, id)
	}

	return f(seed), nil
}

// Exists checks if a controller with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
