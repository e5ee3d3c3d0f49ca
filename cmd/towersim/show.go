package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tower-simulator/internal/game/aircraft"
	"tower-simulator/internal/game/control"
	"tower-simulator/internal/game/simulation"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginTop(1)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	urgentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	cautionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	idleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func renderTower(sim *simulation.Simulation) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Tick %d  %d aircraft  %d terminals",
		sim.Ticks, len(sim.Aircraft), len(sim.Terminals))))
	b.WriteString("\n")

	section(&b, "Terminals")
	for _, t := range sim.Terminals {
		line := fmt.Sprintf("%s, %d%% occupied", t, t.OccupancyLevel())
		if t.HasEmergency() {
			line = urgentStyle.Render(line)
		}
		item(&b, line)
		for _, g := range t.Gates() {
			s := "  " + g.String()
			if !g.IsOccupied() {
				s = idleStyle.Render(s)
			}
			item(&b, s)
		}
	}

	section(&b, control.LandingQueueName+" (landing order)")
	queue(&b, sim.LandingQueue.InOrder())
	section(&b, control.TakeoffQueueName)
	queue(&b, sim.TakeoffQueue.InOrder())

	section(&b, control.LoadingAircraftName)
	loading := sim.Loading.Aircraft()
	if len(loading) == 0 {
		item(&b, idleStyle.Render("none"))
	}
	for _, ac := range loading {
		ticks, _ := sim.Loading.Get(ac)
		item(&b, fmt.Sprintf("%s, %d ticks remaining", ac.Callsign, ticks))
	}

	section(&b, "Aircraft")
	for _, ac := range sim.Aircraft {
		item(&b, styleAircraft(ac, fmt.Sprintf("%s, next %s, fuel %d%%, load %d%%",
			ac, ac.TaskList.NextTask(), ac.FuelPercentRemaining(), ac.OccupancyLevel())))
	}
	return strings.TrimRight(b.String(), "\n")
}

func section(b *strings.Builder, title string) {
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")
}

func item(b *strings.Builder, s string) {
	b.WriteString(itemStyle.Render(s))
	b.WriteString("\n")
}

func queue(b *strings.Builder, list []*aircraft.Aircraft) {
	if len(list) == 0 {
		item(b, idleStyle.Render("empty"))
		return
	}
	for i, ac := range list {
		item(b, styleAircraft(ac, fmt.Sprintf("%d. %s, fuel %d%%", i+1, ac.Callsign, ac.FuelPercentRemaining())))
	}
}

func styleAircraft(ac *aircraft.Aircraft, s string) string {
	switch {
	case ac.HasEmergency():
		return urgentStyle.Render(s)
	case ac.FuelPercentRemaining() <= control.CriticalFuelPercent:
		return cautionStyle.Render(s)
	}
	return s
}
