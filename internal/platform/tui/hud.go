package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-heist/internal/dungeon"
	"github.com/vovakirdan/tui-heist/internal/guard"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	mapStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	hudStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("57")).
			Padding(0, 2)
)

// guardStateStyles color the guard roster lines in the HUD.
var guardStateStyles = map[guard.State]lipgloss.Style{
	guard.StatePatrol: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	guard.StateAlert:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	guard.StateChase:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
}

// renderSession composes the full session frame: map panel, HUD panel,
// message log, and help bar.
func renderSession(m SessionModel) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("HEIST"))
	b.WriteString("\n\n")

	if m.sim != nil {
		m.screen.Clear()
		DrawFloor(m.screen, m.sim, 0, 0)
		mapPanel := mapStyle.Render(RenderScreen(m.screen))
		hudPanel := hudStyle.Render(renderHUD(m))
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, mapPanel, "  ", hudPanel))
		b.WriteString("\n")
	}

	if banner := stateBanner(m); banner != "" {
		b.WriteString(bannerStyle.Render(banner))
		b.WriteString("\n")
	}

	for _, msg := range m.messages {
		b.WriteString(messageStyle.Render("· " + msg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")

	return b.String()
}

// renderHUD builds the side panel text.
func renderHUD(m SessionModel) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Seed   %s\n", m.seedText)
	fmt.Fprintf(&b, "Floor  %d/%d\n", m.floorIndex+1, m.cfg.Rules.Floors)
	fmt.Fprintf(&b, "Turn   %d\n", m.sim.Turn)
	fmt.Fprintf(&b, "Score  %d\n", m.totalScore())
	b.WriteString("\n")

	fmt.Fprintf(&b, "Keycards  %d\n", m.sim.InventoryCount(dungeon.ItemKeycard))
	if m.sim.InventoryCount(dungeon.ItemObjective) > 0 {
		b.WriteString("Objective secured\n")
	} else {
		b.WriteString("Objective $ pending\n")
	}
	b.WriteString("\n")

	b.WriteString("Guards\n")
	for i, g := range m.sim.GuardViews() {
		style := guardStateStyles[g.State]
		fmt.Fprintf(&b, "  %d %s\n", i+1, style.Render(g.State.String()))
	}

	return strings.TrimRight(b.String(), "\n")
}

// stateBanner returns the overlay line for paused/terminal states.
func stateBanner(m SessionModel) string {
	switch m.state {
	case statePaused:
		return "PAUSED - press p to resume"
	case stateRunWon:
		return fmt.Sprintf("RUN COMPLETE - score %d - press r for a new run", m.totalScore())
	case stateRunLost:
		return fmt.Sprintf("CAUGHT - score %d - press r for a new run", m.totalScore())
	}
	return ""
}
