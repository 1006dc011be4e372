// Package host owns one running game and serializes every access to it.
// Front-ends (terminal, SSH sessions, HTTP) talk to a Host, never to the
// engine directly.
package host

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/universal-elevators/internal/building"
	"github.com/vovakirdan/universal-elevators/internal/config"
	"github.com/vovakirdan/universal-elevators/internal/game"
	"github.com/vovakirdan/universal-elevators/internal/registry"
	"github.com/vovakirdan/universal-elevators/internal/storage"
	"github.com/vovakirdan/universal-elevators/internal/upgrade"
)

// RunSummary describes a game at the moment it was read.
type RunSummary struct {
	ID         string
	Controller string
	Seed       int64
	Ticks      int
	Earned     float64
	Tips       float64
	Floors     int
	Elevators  int
	StartedAt  time.Time
}

// Host is a game instance guarded by a single mutex. A snapshot observes
// either the state before a tick or after it, never a partial tick.
type Host struct {
	mu       sync.Mutex
	engine   *game.Engine
	building *building.Building

	id         string
	controller string
	seed       int64
	startedAt  time.Time
}

// New builds a game from cfg. The engine's random stream is seeded with
// seed and the controller's with seed+1.
func New(cfg config.Config, seed int64) (*Host, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ctrl, err := registry.Create(cfg.Controller, seed+1)
	if err != nil {
		return nil, fmt.Errorf("host: cannot create controller: %w", err)
	}

	b, err := building.New(cfg.BuildingParams(), ctrl)
	if err != nil {
		return nil, fmt.Errorf("host: cannot create building: %w", err)
	}

	engine := game.NewEngine(
		b,
		upgrade.NewCatalogFrom(cfg.UpgradeSpecs()),
		rand.New(rand.NewSource(seed)),
		cfg.EngineSettings(),
	)

	return &Host{
		engine:     engine,
		building:   b,
		id:         uuid.NewString(),
		controller: ctrl.ID(),
		seed:       seed,
		startedAt:  time.Now(),
	}, nil
}

// ID returns the run identifier.
func (h *Host) ID() string {
	return h.id
}

// UpdateGameState parses a JSON command and applies one tick with it.
// A malformed command leaves the game untouched.
func (h *Host) UpdateGameState(inputJSON string) (game.TickReport, error) {
	cmd, err := game.ParseCommand([]byte(inputJSON))
	if err != nil {
		return game.TickReport{}, err
	}
	return h.Step(cmd), nil
}

// Step applies one tick.
func (h *Host) Step(cmd game.Command) game.TickReport {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.engine.ApplyTick(cmd)
}

// StepSnapshot applies one tick and returns the state it produced. Both
// happen under one lock, so the snapshot belongs to the report's tick.
func (h *Host) StepSnapshot(cmd game.Command) (game.TickReport, game.StateSnapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	report := h.engine.ApplyTick(cmd)
	return report, h.engine.Snapshot()
}

// Snapshot returns the current state.
func (h *Host) Snapshot() game.StateSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.engine.Snapshot()
}

// GetGameState returns the current state as JSON.
func (h *Host) GetGameState() (string, error) {
	data, err := game.MarshalSnapshot(h.Snapshot())
	if err != nil {
		return "", fmt.Errorf("host: cannot encode state: %w", err)
	}
	return string(data), nil
}

// Result summarizes the run so far.
func (h *Host) Result() RunSummary {
	h.mu.Lock()
	defer h.mu.Unlock()

	return RunSummary{
		ID:         h.id,
		Controller: h.controller,
		Seed:       h.seed,
		Ticks:      h.engine.Tick(),
		Earned:     h.engine.Earned(),
		Tips:       h.engine.Tips(),
		Floors:     len(h.building.Floors()),
		Elevators:  len(h.building.Elevators()),
		StartedAt:  h.startedAt,
	}
}

// Record converts the summary into its stored form.
func (r RunSummary) Record() storage.Run {
	return storage.Run{
		ID:         r.ID,
		Controller: r.Controller,
		Seed:       r.Seed,
		Ticks:      r.Ticks,
		Earned:     r.Earned,
		Tips:       r.Tips,
		Floors:     r.Floors,
		Elevators:  r.Elevators,
	}
}
