package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/universal-elevators/internal/core"
	"github.com/vovakirdan/universal-elevators/internal/game"
	"github.com/vovakirdan/universal-elevators/internal/upgrade"
)

// Building view layout.
const (
	barWidth    = 10
	shaftX      = 30 // first elevator column
	shaftWidth  = 6
	hudRows     = 4
	headerRows  = 2
	minViewRows = headerRows + hudRows + 1
)

// Status is the front-end state drawn next to the snapshot.
type Status struct {
	Controller string
	Paused     bool
	Message    string
}

// priceKeys lists the purchase keys in HUD order.
var priceKeys = []struct {
	key   string
	label string
	kind  upgrade.Kind
}{
	{"f", "floor", upgrade.KindAppendFloor},
	{"e", "elevator", upgrade.KindAppendElevator},
	{"c", "floor cap", upgrade.KindAddFloorCapacity},
	{"v", "car cap", upgrade.KindAddElevatorCapacity},
}

// DrawGame draws snap into s: a header, the floors from the top of the
// building down to the lobby with elevator cars in their shafts, and a
// HUD with funds and upgrade prices.
func DrawGame(s *core.Screen, snap game.StateSnapshot, st Status) {
	s.Clear()
	if s.Height() < minViewRows {
		s.DrawText(0, 0, "window too small")
		return
	}

	drawHeader(s, snap, st)
	drawFloors(s, snap, core.NewRect(0, headerRows, s.Width(), s.Height()-headerRows-hudRows))
	drawHUD(s, snap, st, s.Height()-hudRows)
}

func drawHeader(s *core.Screen, snap game.StateSnapshot, st Status) {
	s.DrawTextColored(1, 0, "UNIVERSAL ELEVATORS", core.ColorBrightYellow)
	info := fmt.Sprintf("tick %d", snap.Tick)
	if st.Controller != "" {
		info += "  " + st.Controller
	}
	s.DrawTextColored(22, 0, info, core.ColorGray)
	if st.Paused {
		s.DrawTextColored(s.Width()-9, 0, "[PAUSED]", core.ColorOrange)
	}
	s.DrawHLine(0, 1, s.Width(), '─', core.ColorGray)
}

// drawFloors lays out one row per floor, highest floor first. When the
// building is taller than the area the lowest floors stay visible.
func drawFloors(s *core.Screen, snap game.StateSnapshot, area core.Rect) {
	n := len(snap.Floors)
	visible := core.Clamp(n, 0, area.H)
	hidden := n - visible
	if hidden > 0 {
		// Reserve the top row for the overflow note.
		visible--
		hidden++
		s.DrawTextColored(area.X+1, area.Y, fmt.Sprintf("... %d more floors", hidden), core.ColorGray)
	}

	bottom := area.Bottom() - 1
	for i := 0; i < visible; i++ {
		y := bottom - i
		drawFloor(s, i, snap.Floors[i], y)
		for e, el := range snap.Elevators {
			drawShaft(s, shaftX+e*shaftWidth, y, el, el.FloorOn == i)
		}
	}
}

func drawFloor(s *core.Screen, index int, f game.FloorState, y int) {
	label := fmt.Sprintf("F%-2d", index)
	if index == 0 {
		label = "L  "
	}
	s.DrawText(1, y, label)

	filled := core.Scale(f.NumPeople, f.Capacity, barWidth)
	color := core.LoadColor(f.NumPeople, f.Capacity)
	s.DrawText(5, y, "[")
	s.DrawHLine(6, y, filled, '█', color)
	s.DrawHLine(6+filled, y, barWidth-filled, '·', core.ColorGray)
	s.DrawText(6+barWidth, y, "]")
	s.DrawText(18, y, fmt.Sprintf("%3d/%-4d", f.NumPeople, f.Capacity))
	if f.ArePeopleWaiting {
		s.DrawTextColored(27, y, "!", core.ColorBrightRed)
	}
}

func drawShaft(s *core.Screen, x, y int, el game.ElevatorState, here bool) {
	if !here {
		s.SetColored(x+2, y, '│', core.ColorGray)
		return
	}
	car := fmt.Sprintf("[%2d]", el.NumPeople)
	s.DrawTextColored(x, y, car, core.LoadColor(el.NumPeople, el.Capacity))
}

func drawHUD(s *core.Screen, snap game.StateSnapshot, st Status, y int) {
	s.DrawHLine(0, y, s.Width(), '─', core.ColorGray)

	s.DrawText(1, y+1, "Tips")
	s.DrawTextColored(6, y+1, fmt.Sprintf("%.2f", snap.CollectedTips), core.ColorBrightGreen)
	stats := fmt.Sprintf("pool %.2f  wait %.2f  energy %.2f",
		snap.BuildingTips, snap.AvgWaitTime, snap.AvgEnergySpent)
	s.DrawTextColored(18, y+1, stats, core.ColorCyan)

	x := 1
	x += drawKey(s, x, y+2, "t", "collect", core.ColorGreen)
	for _, p := range priceKeys {
		cost := snap.Cost(p.kind)
		color := core.ColorGreen
		if cost > snap.CollectedTips {
			color = core.ColorGray
		}
		x += drawKey(s, x, y+2, p.key, fmt.Sprintf("%s %.2f", p.label, cost), color)
	}

	help := "[p] pause  [r] runs  [q] quit"
	if st.Message != "" {
		help = st.Message + "  " + help
	}
	s.DrawTextColored(1, y+3, help, core.ColorGray)
}

// drawKey draws "[k] label" and returns the width used including spacing.
func drawKey(s *core.Screen, x, y int, k, label string, c core.Color) int {
	text := "[" + k + "] " + label
	s.DrawTextColored(x, y, text, c)
	return len([]rune(text)) + 2
}

// PlainView renders snap without color, for logs and tests.
func PlainView(snap game.StateSnapshot, width, height int) string {
	s := core.NewScreen(width, height)
	DrawGame(s, snap, Status{})
	lines := strings.Split(s.String(), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}
