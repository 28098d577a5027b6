package ui

import (
	"encoding/json"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kube-rca/console/internal/markup"
	"github.com/kube-rca/console/internal/session"
)

type styles struct {
	title   lipgloss.Style
	accent  lipgloss.Style
	tabOn   lipgloss.Style
	tabOff  lipgloss.Style
	modeOn  lipgloss.Style
	modeOff lipgloss.Style
	body    lipgloss.Style
	faint   lipgloss.Style
	errText lipgloss.Style
	bold    lipgloss.Style
	notice  lipgloss.Style
	help    lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title:   lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		accent:  lipgloss.NewStyle().Foreground(t.Accent),
		tabOn:   lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Underline(true),
		tabOff:  lipgloss.NewStyle().Foreground(t.Faint),
		modeOn:  lipgloss.NewStyle().Foreground(t.Emphasis).Bold(true),
		modeOff: lipgloss.NewStyle().Foreground(t.Faint),
		body: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		faint:   lipgloss.NewStyle().Foreground(t.Faint),
		errText: lipgloss.NewStyle().Foreground(t.Error),
		bold:    lipgloss.NewStyle().Foreground(t.Emphasis).Bold(true),
		notice:  lipgloss.NewStyle().Foreground(t.Success),
		help:    lipgloss.NewStyle().Foreground(t.Faint),
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("kube-rca console"))
	b.WriteString("  ")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.active {
	case tabTicket:
		b.WriteString(m.renderTicketTab())
	case tabAsk:
		b.WriteString(m.renderAskTab())
	}

	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(m.styles.notice.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.help.Render(
		"tab: switch · ctrl+t: mode · enter: submit · ctrl+y: copy · esc: clear · ctrl+c: quit"))

	return b.String()
}

func (m Model) renderTabs() string {
	ticket := m.styles.tabOff.Render("Ticket")
	ask := m.styles.tabOff.Render("Ask")
	if m.active == tabTicket {
		ticket = m.styles.tabOn.Render("Ticket")
	} else {
		ask = m.styles.tabOn.Render("Ask")
	}
	return ticket + m.styles.faint.Render(" | ") + ask
}

func (m Model) renderTicketTab() string {
	var b strings.Builder

	task := m.styles.modeOff.Render("TASK")
	ritm := m.styles.modeOff.Render("RITM")
	if m.ticket.Mode() == session.ModeRitm {
		ritm = m.styles.modeOn.Render("[RITM]")
	} else {
		task = m.styles.modeOn.Render("[TASK]")
	}
	b.WriteString(task + " " + ritm + "\n")

	if m.ticket.Mode() == session.ModeRitm {
		b.WriteString(m.ritmInput.View())
	} else {
		b.WriteString(m.taskInput.View())
	}
	b.WriteString("\n\n")

	switch m.ticket.State() {
	case session.Idle:
		b.WriteString(m.styles.faint.Render("enter a ticket number to fetch its RCA report"))
	case session.Loading:
		b.WriteString(m.spin.View() + m.styles.faint.Render(" fetching RCA report..."))
	case session.Failed:
		b.WriteString(m.styles.errText.Render(m.ticket.ErrorMessage()))
	case session.Succeeded:
		b.WriteString(m.renderRcaResult())
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderRcaResult() string {
	result := m.ticket.Result()
	if result == nil {
		return ""
	}

	var b strings.Builder
	if len(result.TicketData) > 0 {
		pretty, err := json.MarshalIndent(result.TicketData, "", "  ")
		if err == nil {
			b.WriteString(m.styles.faint.Render(string(pretty)))
			b.WriteString("\n\n")
		}
	}
	b.WriteString(markup.Styled(result.GeneratedRca, m.styles.bold))
	return m.styles.body.Render(b.String())
}

func (m Model) renderAskTab() string {
	var b strings.Builder

	b.WriteString(m.queryInput.View())
	b.WriteString("\n\n")

	switch m.agent.State() {
	case session.Idle:
		b.WriteString(m.styles.faint.Render("ask the agent about an incident"))
	case session.Loading:
		b.WriteString(m.spin.View() + m.styles.faint.Render(" waiting for the agent..."))
	case session.Failed:
		b.WriteString(m.styles.errText.Render(m.agent.ErrorMessage()))
	case session.Succeeded:
		b.WriteString(m.styles.body.Render(markup.Styled(m.agent.Answer(), m.styles.bold)))
	}
	b.WriteString("\n")

	return b.String()
}
