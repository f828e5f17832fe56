package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MayaSCA/focus-city-scape/internal/engine"
	"github.com/MayaSCA/focus-city-scape/internal/ui"
)

// RunSkyline opens the read-only dashboard: cities, their skylines, and
// ribbon progress.
func RunSkyline(ctx context.Context, svc *engine.Service, out io.Writer) error {
	m := newSkylineModel(ctx, svc)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}

type skylineModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	cities  []*engine.City
	ribbons []engine.Ribbon
	coins   int
	hours   float64

	expanded map[string]bool
	selected int

	lastLog string
}

type refreshedMsg struct {
	cities  []*engine.City
	ribbons []engine.Ribbon
	coins   int
	hours   float64
}

func newSkylineModel(ctx context.Context, svc *engine.Service) skylineModel {
	return skylineModel{
		ctx:      ctx,
		svc:      svc,
		expanded: map[string]bool{},
		lastLog:  "Loaded.",
	}
}

func (m skylineModel) Init() tea.Cmd {
	return m.refreshCmd()
}

func (m skylineModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return refreshedMsg{
			cities:  m.svc.Cities(),
			ribbons: m.svc.Ribbons(),
			coins:   m.svc.TotalCurrency(),
			hours:   m.svc.TotalStudyHours(),
		}
	}
}

func (m skylineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case refreshedMsg:
		m.cities = msg.cities
		m.ribbons = msg.ribbons
		m.coins = msg.coins
		m.hours = msg.hours
		if m.selected >= len(m.cities) {
			m.selected = len(m.cities) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.lastLog = "Refreshed."
			return m, m.refreshCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.cities)-1 {
				m.selected++
			}
			return m, nil
		case "enter", " ":
			if m.selected >= 0 && m.selected < len(m.cities) {
				id := m.cities[m.selected].ID
				m.expanded[id] = !m.expanded[id]
			}
			return m, nil
		}
	}
	return m, nil
}

func (m skylineModel) View() string {
	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := "\n" + m.lastLog

	// Simple 2-column layout.
	leftW := 28
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m skylineModel) renderHeader() string {
	return fmt.Sprintf("Study City | %s %d coins | %s %.1fh studied", ui.IconCoin, m.coins, ui.IconTimer, m.hours)
}

func (m skylineModel) renderSidebar() string {
	lines := []string{"Ribbons"}
	for _, r := range m.ribbons {
		mark := " "
		if r.Earned {
			mark = "x"
		}
		lines = append(lines, fmt.Sprintf("[%s] %s %s (%gh)", mark, r.Emoji, r.Name, r.HoursRequired))
	}
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- enter: expand city")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m skylineModel) renderMain() string {
	if len(m.cities) == 0 {
		return "Cities\n\n(no cities yet — sc create <name>)"
	}

	var out []string
	out = append(out, "Cities")
	for i, c := range m.cities {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		skyline := renderSkyline(c.Buildings)
		out = append(out, fmt.Sprintf("%s%s %s  %s  (%d coins local)", cursor, c.Name, skyline, pluralBuildings(len(c.Buildings)), c.LocalCurrency))
		if !m.expanded[c.ID] {
			continue
		}
		for _, b := range c.Buildings {
			out = append(out, fmt.Sprintf("    %s h=%3.0f rooms=%d %s %s",
				ui.BuildingIcon(string(b.Type)), b.Height, b.RoomsUnlocked,
				progressBar(b.SessionDuration, b.GoalDuration, 12),
				renderDecorations(b.Decorations)))
		}
	}
	return strings.Join(out, "\n")
}

func renderSkyline(buildings []*engine.Building) string {
	if len(buildings) == 0 {
		return "·"
	}
	var b strings.Builder
	for _, bl := range buildings {
		b.WriteString(ui.BuildingIcon(string(bl.Type)))
	}
	return b.String()
}

func renderDecorations(decorations []string) string {
	if len(decorations) == 0 {
		return ""
	}
	return "deco: " + strings.Join(decorations, ",")
}

func pluralBuildings(n int) string {
	if n == 1 {
		return "1 building"
	}
	return fmt.Sprintf("%d buildings", n)
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
