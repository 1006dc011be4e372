package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/universal-elevators/internal/core"
	"github.com/vovakirdan/universal-elevators/internal/game"
)

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "t":
		return core.ActionCollectTips, false
	case "f":
		return core.ActionAppendFloor, false
	case "e":
		return core.ActionAppendElevator, false
	case "c":
		return core.ActionAddFloorCapacity, false
	case "v":
		return core.ActionAddElevatorCapacity, false
	case "p", " ":
		return core.ActionPause, false
	case "r":
		return core.ActionRuns, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame records the action for a key in frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// CommandFromFrame builds the tick command for the purchase actions in frame.
func CommandFromFrame(frame core.InputFrame) game.Command {
	return game.Command{
		CollectTips:         frame.Has(core.ActionCollectTips),
		AppendFloor:         frame.Has(core.ActionAppendFloor),
		AppendElevator:      frame.Has(core.ActionAppendElevator),
		AddFloorCapacity:    frame.Has(core.ActionAddFloorCapacity),
		AddElevatorCapacity: frame.Has(core.ActionAddElevatorCapacity),
	}
}
