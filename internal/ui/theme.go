package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Study City theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconCity    = "🏙️"
	IconSparkle = "✨"
	IconCoin    = "💰"
	IconTimer   = "⏰"
	IconDone    = "✅"
	IconRibbon  = "🎀"
	IconTrophy  = "🏆"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconHammer  = "🏗️"
	IconShop    = "🛍️"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeRibbon = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("RIBBON EARNED")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// BuildingIcon maps a building type token to its skyline emoji.
func BuildingIcon(buildingType string) string {
	switch strings.ToLower(strings.TrimSpace(buildingType)) {
	case "office":
		return "🏢"
	case "entertainment":
		return "🎭"
	case "park":
		return "🌳"
	default:
		return "🏠"
	}
}

func GoalText(completed bool) string {
	if completed {
		return Good.Render("goal met")
	}
	return Warn.Render("goal missed")
}
