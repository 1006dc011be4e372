package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/universal-elevators/internal/core"
	"github.com/vovakirdan/universal-elevators/internal/game"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{runeKey('t'), core.ActionCollectTips, false},
		{runeKey('f'), core.ActionAppendFloor, false},
		{runeKey('e'), core.ActionAppendElevator, false},
		{runeKey('c'), core.ActionAddFloorCapacity, false},
		{runeKey('v'), core.ActionAddElevatorCapacity, false},
		{runeKey('p'), core.ActionPause, false},
		{runeKey('r'), core.ActionRuns, false},
		{runeKey('x'), core.ActionNone, false},
		{runeKey('q'), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
	}
	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestCommandFromFrame(t *testing.T) {
	km := NewKeyMapper()
	var frame core.InputFrame
	for _, r := range "fvp" {
		km.MapKeyToFrame(runeKey(r), &frame)
	}

	got := CommandFromFrame(frame)
	want := game.Command{AppendFloor: true, AddElevatorCapacity: true}
	if got != want {
		t.Errorf("CommandFromFrame() = %+v, want %+v", got, want)
	}
	if !CommandFromFrame(core.InputFrame{}).IsZero() {
		t.Error("empty frame produced a non-empty command")
	}
}
