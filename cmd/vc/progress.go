package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jusjinuk/vibecite/internal/session"
)

// Messages fed into the progress UI by the search loop.
type recordStartMsg struct {
	index       int
	description string
}

type agentProgressMsg string

type recordDoneMsg struct {
	record *session.Record
	detail string
}

type searchDoneMsg struct {
	resolved int
	failed   int
	fatal    error
}

// searchModel renders a spinner for the record currently being resolved,
// the agent's latest activity line, and one row per finished record.
type searchModel struct {
	spinner  spinner.Model
	total    int
	index    int
	current  string
	activity string
	rows     []string

	resolved int
	failed   int
	fatal    error
	done     bool
}

func newSearchModel(total int) searchModel {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(ColorPrimary)),
	)
	return searchModel{spinner: sp, total: total}
}

func (m searchModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m searchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recordStartMsg:
		m.index = msg.index
		m.current = msg.description
		m.activity = ""
		return m, nil

	case agentProgressMsg:
		m.activity = string(msg)
		return m, nil

	case recordDoneMsg:
		desc := runewidth.Truncate(msg.record.Description, 48, "…")
		row := fmt.Sprintf("%s %s  %s",
			renderStatus(msg.record.Status),
			cliValue.Render(desc),
			cliMuted.Render(runewidth.Truncate(msg.detail, 60, "…")))
		m.rows = append(m.rows, row)
		return m, nil

	case searchDoneMsg:
		m.resolved = msg.resolved
		m.failed = msg.failed
		m.fatal = msg.fatal
		m.done = true
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m searchModel) View() string {
	var sb strings.Builder

	for _, row := range m.rows {
		sb.WriteString(row)
		sb.WriteString("\n")
	}

	if m.done {
		return sb.String()
	}

	if m.index > 0 {
		sb.WriteString(fmt.Sprintf("%s %s %s\n",
			m.spinner.View(),
			cliLabel.Render(fmt.Sprintf("[%d/%d]", m.index, m.total)),
			cliValue.Render(runewidth.Truncate(m.current, 56, "…"))))
		if m.activity != "" {
			sb.WriteString("   " + cliMuted.Render(m.activity) + "\n")
		}
	} else {
		sb.WriteString(m.spinner.View() + " " + cliSubtitle.Render("Contacting search agent...") + "\n")
	}

	return sb.String()
}
