package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/universal-elevators/internal/core"
	"github.com/vovakirdan/universal-elevators/internal/game"
)

func sampleSnapshot(tips float64, floors int) game.StateSnapshot {
	snap := game.StateSnapshot{
		Tick:          12,
		CollectedTips: tips,
		BuildingTips:  3.5,
		Elevators: []game.ElevatorState{
			{NumPeople: 3, Capacity: 10, FloorOn: 0},
			{NumPeople: 10, Capacity: 10, FloorOn: 2},
		},
		Upgrades: game.UpgradesState{
			AppendFloor:         game.UpgradeState{Cost: 11},
			AppendElevator:      game.UpgradeState{Cost: 101},
			AddFloorCapacity:    game.UpgradeState{Cost: 11},
			AddElevatorCapacity: game.UpgradeState{Cost: 11},
		},
	}
	for i := 0; i < floors; i++ {
		snap.Floors = append(snap.Floors, game.FloorState{NumPeople: 10 * i, Capacity: 100, ArePeopleWaiting: i == 1})
	}
	return snap
}

func TestDrawGameLayout(t *testing.T) {
	out := PlainView(sampleSnapshot(42, 4), 80, 24)
	lines := strings.Split(out, "\n")

	if !strings.Contains(lines[0], "UNIVERSAL ELEVATORS") || !strings.Contains(lines[0], "tick 12") {
		t.Errorf("header = %q", lines[0])
	}
	// Lobby sits on the last building row, above the HUD.
	lobby := lines[24-hudRows-1]
	if !strings.HasPrefix(lobby, " L   [") || !strings.Contains(lobby, "[ 3]") {
		t.Errorf("lobby row = %q", lobby)
	}
	top := lines[24-hudRows-4]
	if !strings.HasPrefix(top, " F3  [███") || !strings.Contains(top, " 30/100") {
		t.Errorf("top floor row = %q", top)
	}
	if !strings.Contains(lines[24-hudRows-2], "!") {
		t.Errorf("waiting marker missing on floor 1: %q", lines[24-hudRows-2])
	}
	if !strings.Contains(lines[24-hudRows-3], "[10]") {
		t.Errorf("full car missing on floor 2: %q", lines[24-hudRows-3])
	}
	if !strings.Contains(out, "Tips 42.00") || !strings.Contains(out, "[f] floor 11.00") {
		t.Errorf("HUD missing:\n%s", out)
	}
}

func TestPricesGreyedWhenUnaffordable(t *testing.T) {
	s := core.NewScreen(80, 24)
	floorKeyX := 14 // after "[t] collect"
	y := 24 - 2

	DrawGame(s, sampleSnapshot(0, 4), Status{})
	if got := s.GetCell(floorKeyX, y); got.Rune != '[' || got.Color != core.ColorGray {
		t.Errorf("poor player floor key = %+v, want gray '['", got)
	}

	DrawGame(s, sampleSnapshot(50, 4), Status{})
	if got := s.GetCell(floorKeyX, y).Color; got != core.ColorGreen {
		t.Errorf("floor key color = %v, want green", got)
	}
}

func TestTallBuildingKeepsLobbyVisible(t *testing.T) {
	out := PlainView(sampleSnapshot(0, 30), 80, 12)
	lines := strings.Split(out, "\n")

	if !strings.Contains(lines[headerRows], "... 25 more floors") {
		t.Errorf("overflow note = %q", lines[headerRows])
	}
	if !strings.HasPrefix(lines[12-hudRows-1], " L ") {
		t.Errorf("lobby row = %q", lines[12-hudRows-1])
	}
}

func TestPausedBanner(t *testing.T) {
	s := core.NewScreen(60, 12)
	DrawGame(s, sampleSnapshot(0, 2), Status{Paused: true, Controller: "nearest"})
	if row := s.Row(0); !strings.Contains(row, "[PAUSED]") || !strings.Contains(row, "nearest") {
		t.Errorf("header = %q", row)
	}
}

func TestWindowTooSmall(t *testing.T) {
	if out := PlainView(sampleSnapshot(0, 4), 30, 4); !strings.HasPrefix(out, "window too small") {
		t.Errorf("PlainView() = %q", out)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.ColorGreen)
	if out := RenderScreen(s); !strings.Contains(out, "ab") || !strings.Contains(out, "cd") {
		t.Errorf("RenderScreen() = %q", out)
	}
}
