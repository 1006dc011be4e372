package game

import (
	"errors"
	"testing"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Command
		wantErr bool
	}{
		{
			name:  "all false",
			input: `{"collect_tips":false,"append_floor":false,"append_elevator":false,"add_floor_capacity":false,"add_elevator_capacity":false}`,
			want:  Command{},
		},
		{
			name:  "mixed",
			input: `{"collect_tips":true,"append_floor":false,"append_elevator":true,"add_floor_capacity":false,"add_elevator_capacity":true}`,
			want:  Command{CollectTips: true, AppendElevator: true, AddElevatorCapacity: true},
		},
		{
			name:  "unknown fields ignored",
			input: `{"collect_tips":false,"append_floor":true,"append_elevator":false,"add_floor_capacity":false,"add_elevator_capacity":false,"extra":1}`,
			want:  Command{AppendFloor: true},
		},
		{
			name:    "missing field",
			input:   `{"collect_tips":true,"append_floor":false,"append_elevator":false,"add_floor_capacity":false}`,
			wantErr: true,
		},
		{
			name:    "wrong type",
			input:   `{"collect_tips":"yes","append_floor":false,"append_elevator":false,"add_floor_capacity":false,"add_elevator_capacity":false}`,
			wantErr: true,
		},
		{
			name:    "not an object",
			input:   `[true]`,
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   `{`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCommand([]byte(tt.input))
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedCommand) {
					t.Fatalf("ParseCommand() error = %v, want ErrMalformedCommand", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCommand() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseCommand() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCommandMerge(t *testing.T) {
	a := Command{CollectTips: true}
	b := Command{AppendFloor: true, AddElevatorCapacity: true}

	got := a.Merge(b)
	want := Command{CollectTips: true, AppendFloor: true, AddElevatorCapacity: true}
	if got != want {
		t.Errorf("Merge() = %+v, want %+v", got, want)
	}
	if !(Command{}).IsZero() {
		t.Error("zero command reports non-zero")
	}
	if got.IsZero() {
		t.Error("merged command reports zero")
	}
}
