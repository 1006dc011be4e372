package core

// Action is a player intent decoded from a key press.
type Action int

const (
	ActionNone Action = iota
	ActionCollectTips
	ActionAppendFloor
	ActionAppendElevator
	ActionAddFloorCapacity
	ActionAddElevatorCapacity
	ActionPause
	ActionRuns
	ActionQuit
	actionCount
)

// InputFrame collects the actions pressed since the last tick.
type InputFrame struct {
	pressed [actionCount]bool
}

// Set marks an action as pressed.
func (f *InputFrame) Set(a Action) {
	if a > ActionNone && a < actionCount {
		f.pressed[a] = true
	}
}

// Has reports whether an action was pressed.
func (f InputFrame) Has(a Action) bool {
	if a <= ActionNone || a >= actionCount {
		return false
	}
	return f.pressed[a]
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.pressed = [actionCount]bool{}
}

// Empty reports whether nothing was pressed.
func (f InputFrame) Empty() bool {
	return f.pressed == [actionCount]bool{}
}
