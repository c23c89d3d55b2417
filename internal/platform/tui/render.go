package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-heist/internal/core"
	"github.com/vovakirdan/tui-heist/internal/dungeon"
	"github.com/vovakirdan/tui-heist/internal/guard"
	"github.com/vovakirdan/tui-heist/internal/sim"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// TileCell returns the glyph and color for a tile.
func TileCell(t dungeon.Tile) (rune, core.Color) {
	switch t.Kind {
	case dungeon.KindWall:
		return '#', core.ColorGray
	case dungeon.KindDoor:
		if t.Open {
			return '/', core.ColorYellow
		}
		return '+', core.ColorYellow
	case dungeon.KindExit:
		return '>', core.ColorBrightWhite
	case dungeon.KindHazard:
		if t.Armed {
			return '^', core.ColorRed
		}
		return ',', core.ColorGray
	case dungeon.KindSlow:
		return '~', core.ColorBlue
	case dungeon.KindPickup:
		switch t.Item {
		case dungeon.ItemKeycard:
			return 'k', core.ColorCyan
		case dungeon.ItemObjective:
			return '$', core.ColorBrightYellow
		}
		return '?', core.ColorMagenta
	}
	return '.', core.ColorDefault
}

// guardColor maps a guard state to its display color.
func guardColor(s guard.State) core.Color {
	switch s {
	case guard.StateAlert:
		return core.ColorOrange
	case guard.StateChase:
		return core.ColorBrightRed
	}
	return core.ColorGreen
}

// DrawFloor draws the full floor state into a screen buffer at the given
// origin: tiles first, then guards, then the player on top.
func DrawFloor(s *core.Screen, sm *sim.Sim, ox, oy int) {
	for y := 0; y < sm.Grid.H; y++ {
		for x := 0; x < sm.Grid.W; x++ {
			r, c := TileCell(sm.Grid.At(dungeon.C(x, y)))
			s.SetCell(ox+x, oy+y, r, c)
		}
	}

	for _, g := range sm.GuardViews() {
		s.SetCell(ox+g.Pos.X, oy+g.Pos.Y, 'G', guardColor(g.State))
	}

	s.SetCell(ox+sm.Player.Pos.X, oy+sm.Player.Pos.Y, '@', core.ColorBrightWhite)
}
