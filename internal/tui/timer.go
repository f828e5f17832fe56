package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MayaSCA/focus-city-scape/internal/engine"
)

// RunTimer drives one study session against a goal. It is the timer
// collaborator: the engine only ever sees the final elapsed minutes,
// delivered through CompleteSession when the user finishes. Cancelling
// discards the session handle without touching the store.
//
// Returns the completion result, or nil with canceled=true.
func RunTimer(ctx context.Context, svc *engine.Service, cityName string, session *engine.Session, out io.Writer) (*engine.CompleteResult, bool, error) {
	m := newTimerModel(ctx, svc, cityName, session)
	p := tea.NewProgram(m, tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return nil, false, err
	}
	fm, ok := final.(timerModel)
	if !ok {
		return nil, false, fmt.Errorf("unexpected timer model type %T", final)
	}
	if fm.err != nil {
		return nil, false, fm.err
	}
	if fm.canceled {
		return nil, true, nil
	}
	return fm.result, false, nil
}

type timerModel struct {
	ctx      context.Context
	svc      *engine.Service
	session  *engine.Session
	cityName string

	width     int
	now       time.Time
	finishing bool
	canceled  bool
	result    *engine.CompleteResult
	err       error
}

type tickMsg time.Time

type sessionDoneMsg struct {
	res *engine.CompleteResult
	err error
}

func newTimerModel(ctx context.Context, svc *engine.Service, cityName string, session *engine.Session) timerModel {
	return timerModel{
		ctx:      ctx,
		svc:      svc,
		session:  session,
		cityName: cityName,
		now:      session.StartedAt,
	}
}

func (m timerModel) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m timerModel) elapsed() time.Duration {
	d := m.now.Sub(m.session.StartedAt)
	if d < 0 {
		return 0
	}
	return d
}

func (m timerModel) finishCmd() tea.Cmd {
	minutes := int(m.elapsed().Minutes())
	return func() tea.Msg {
		res, err := m.svc.CompleteSession(m.ctx, m.session.CityID, minutes, m.session.GoalMinutes)
		return sessionDoneMsg{res: res, err: err}
	}
}

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tickMsg:
		m.now = time.Time(msg)
		if m.finishing {
			return m, nil
		}
		return m, tickCmd()
	case sessionDoneMsg:
		m.result = msg.res
		m.err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		if m.finishing {
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.canceled = true
			return m, tea.Quit
		case "f", "enter":
			m.finishing = true
			return m, m.finishCmd()
		}
	}
	return m, nil
}

func (m timerModel) View() string {
	goal := time.Duration(m.session.GoalMinutes) * time.Minute
	elapsed := m.elapsed()

	var b strings.Builder
	fmt.Fprintf(&b, "Studying for %s\n\n", m.cityName)
	fmt.Fprintf(&b, "  %s / goal %s\n", formatClock(elapsed), formatClock(goal))
	fmt.Fprintf(&b, "  %s\n\n", progressBar(int(elapsed.Seconds()), int(goal.Seconds()), 40))

	if elapsed >= goal {
		b.WriteString("  Goal reached! Keep going or finish.\n\n")
	}
	if m.finishing {
		b.WriteString("  Building…\n")
		return b.String()
	}
	b.WriteString("  f/enter: finish session   q/esc: cancel (nothing is saved)\n")
	return b.String()
}

func formatClock(d time.Duration) string {
	total := int(d.Seconds())
	if total < 0 {
		total = 0
	}
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	ratio := float64(value) / float64(total)
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
