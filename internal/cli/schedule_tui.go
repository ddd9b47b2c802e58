package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tasselapp/tassel/internal/cli/formatter"
	"github.com/tasselapp/tassel/internal/domain"
	"github.com/tasselapp/tassel/internal/timetable"
)

type scheduleKeyMap struct {
	Prev key.Binding
	Next key.Binding
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

var scheduleKeys = scheduleKeyMap{
	Prev: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous semester")),
	Next: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next semester")),
	Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
	Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
	Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// scheduleModel is a read-only browser over per-semester timetables.
type scheduleModel struct {
	semesters []*domain.Semester
	selected  int
	viewport  viewport.Model
	ready     bool
}

func newScheduleModel(app *App) scheduleModel {
	semesters := app.Store.Semesters()
	selected := 0
	for i, sem := range semesters {
		if sem.IsActive {
			selected = i
			break
		}
	}
	return scheduleModel{semesters: semesters, selected: selected}
}

func (m scheduleModel) Init() tea.Cmd {
	return nil
}

func (m scheduleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 3
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight
		}
		m.viewport.SetContent(m.timetable())

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, scheduleKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, scheduleKeys.Prev):
			if m.selected > 0 {
				m.selected--
				m.viewport.SetContent(m.timetable())
				m.viewport.GotoTop()
			}
		case key.Matches(msg, scheduleKeys.Next):
			if m.selected < len(m.semesters)-1 {
				m.selected++
				m.viewport.SetContent(m.timetable())
				m.viewport.GotoTop()
			}
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m scheduleModel) View() string {
	if len(m.semesters) == 0 {
		return formatter.Dim("No semesters. Press q to quit.") + "\n"
	}
	if !m.ready {
		return "loading..."
	}

	sem := m.semesters[m.selected]
	title := formatter.StyleHeader.Render(sem.Label())
	if sem.IsActive {
		title += " " + formatter.ActiveMarker(true)
	}
	position := formatter.Dim(fmt.Sprintf("(%d/%d)", m.selected+1, len(m.semesters)))
	help := formatter.Dim("←/→ semester · ↑/↓ scroll · q quit")

	header := lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", position)
	return header + "\n\n" + m.viewport.View() + "\n" + help
}

func (m scheduleModel) timetable() string {
	sem := m.semesters[m.selected]

	var scheduled []*domain.Course
	for _, c := range sem.Courses {
		if _, ok := timetable.MeetingInterval(c); ok {
			scheduled = append(scheduled, c)
		}
	}

	var b strings.Builder
	b.WriteString(formatter.FormatSchedule(scheduled))
	if conflicts := timetable.DetectConflicts(sem.Courses); len(conflicts) > 0 {
		b.WriteString("\n" + formatter.FormatConflicts(conflicts))
	}
	return b.String()
}

func runScheduleTUI(app *App) error {
	p := tea.NewProgram(newScheduleModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
