package game

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedCommand is returned when command JSON is missing a field
// or carries a field of the wrong type.
var ErrMalformedCommand = errors.New("game: malformed command")

// Command holds the player's intents for one tick. The flags are
// independent; the engine decides the order they are honored in.
type Command struct {
	CollectTips         bool `json:"collect_tips"`
	AppendFloor         bool `json:"append_floor"`
	AppendElevator      bool `json:"append_elevator"`
	AddFloorCapacity    bool `json:"add_floor_capacity"`
	AddElevatorCapacity bool `json:"add_elevator_capacity"`
}

// Merge returns a command with every flag set in either c or other.
func (c Command) Merge(other Command) Command {
	return Command{
		CollectTips:         c.CollectTips || other.CollectTips,
		AppendFloor:         c.AppendFloor || other.AppendFloor,
		AppendElevator:      c.AppendElevator || other.AppendElevator,
		AddFloorCapacity:    c.AddFloorCapacity || other.AddFloorCapacity,
		AddElevatorCapacity: c.AddElevatorCapacity || other.AddElevatorCapacity,
	}
}

// IsZero reports whether no flag is set.
func (c Command) IsZero() bool {
	return c == Command{}
}

// wireCommand uses pointers so missing fields can be told apart from false.
type wireCommand struct {
	CollectTips         *bool `json:"collect_tips"`
	AppendFloor         *bool `json:"append_floor"`
	AppendElevator      *bool `json:"append_elevator"`
	AddFloorCapacity    *bool `json:"add_floor_capacity"`
	AddElevatorCapacity *bool `json:"add_elevator_capacity"`
}

// ParseCommand decodes a command object. Every field is required.
func ParseCommand(data []byte) (Command, error) {
	var w wireCommand
	if err := json.Unmarshal(data, &w); err != nil {
		return Command{}, fmt.Errorf("%w: %w", ErrMalformedCommand, err)
	}

	fields := []struct {
		name string
		val  *bool
	}{
		{"collect_tips", w.CollectTips},
		{"append_floor", w.AppendFloor},
		{"append_elevator", w.AppendElevator},
		{"add_floor_capacity", w.AddFloorCapacity},
		{"add_elevator_capacity", w.AddElevatorCapacity},
	}
	for _, f := range fields {
		if f.val == nil {
			return Command{}, fmt.Errorf("%w: missing field %q", ErrMalformedCommand, f.name)
		}
	}

	return Command{
		CollectTips:         *w.CollectTips,
		AppendFloor:         *w.AppendFloor,
		AppendElevator:      *w.AppendElevator,
		AddFloorCapacity:    *w.AddFloorCapacity,
		AddElevatorCapacity: *w.AddElevatorCapacity,
	}, nil
}
