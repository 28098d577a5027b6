// 대화형 콘솔 화면 (bubbletea)
//
// 탭 두 개가 각각 독립 세션을 가진다:
//   - Ticket: 티켓 번호로 RCA 리포트 조회 (TASK/RITM 모드 전환)
//   - Ask: 자연어 질문을 에이전트에 전달
//
// 네트워크 호출은 tea.Cmd로 실행되고 완료는 resolvedMsg로 돌아온다.
// 세션 변경은 전부 Update 안에서만 일어난다.

package ui

import (
	"encoding/json"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kube-rca/console/internal/session"
)

type tab int

const (
	tabTicket tab = iota
	tabAsk
)

// 완료된 네트워크 호출 결과를 해당 탭의 세션으로 전달하는 메시지
type resolvedMsg struct {
	tab tab
	res session.Resolution
}

// Model 구조체 정의
type Model struct {
	theme  Theme
	styles styles

	ticket *session.TicketSession
	agent  *session.AgentSession

	taskInput  textinput.Model
	ritmInput  textinput.Model
	queryInput textinput.Model

	spin   spinner.Model
	active tab
	notice string
	width  int
}

func NewModel(theme Theme, exec session.Executor) Model {
	st := newStyles(theme)

	taskInput := textinput.New()
	taskInput.Placeholder = "RTSK0012345"
	taskInput.CharLimit = 64
	taskInput.Focus()

	ritmInput := textinput.New()
	ritmInput.Placeholder = "RITM0067890"
	ritmInput.CharLimit = 64

	queryInput := textinput.New()
	queryInput.Placeholder = "why did checkout latency spike last night?"
	queryInput.CharLimit = 500

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))
	spin.Style = st.accent

	return Model{
		theme:      theme,
		styles:     st,
		ticket:     session.NewTicketSession(exec),
		agent:      session.NewAgentSession(exec),
		taskInput:  taskInput,
		ritmInput:  ritmInput,
		queryInput: queryInput,
		spin:       spin,
		active:     tabTicket,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case resolvedMsg:
		switch msg.tab {
		case tabTicket:
			m.ticket.Resolve(msg.res)
		case tabAsk:
			m.agent.Resolve(msg.res)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocusedInput(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "tab", "shift+tab":
		m.notice = ""
		if m.active == tabTicket {
			m.active = tabAsk
		} else {
			m.active = tabTicket
		}
		m.refocus()
		return m, nil

	case "ctrl+t":
		// ticket 탭에서만 TASK/RITM 모드 전환
		if m.active != tabTicket || m.ticket.State() == session.Loading {
			return m, nil
		}
		if m.ticket.Mode() == session.ModeTask {
			m.ticket.SetMode(session.ModeRitm)
		} else {
			m.ticket.SetMode(session.ModeTask)
		}
		m.refocus()
		return m, nil

	case "enter":
		return m.submitActive()

	case "esc":
		m.clearActive()
		return m, nil

	case "ctrl+y":
		m.copyActive()
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

// 활성 세션이 Loading이면 제출 키는 무시된다 (워크플로당 한 건만 진행)
func (m Model) submitActive() (tea.Model, tea.Cmd) {
	m.notice = ""

	switch m.active {
	case tabTicket:
		m.ticket.SetInput(m.ticketInput().Value())
		work, ok := m.ticket.Submit()
		if !ok {
			return m, nil
		}
		return m, tea.Batch(m.spin.Tick, func() tea.Msg {
			return resolvedMsg{tab: tabTicket, res: work()}
		})

	case tabAsk:
		m.agent.SetInput(m.queryInput.Value())
		work, ok := m.agent.Submit()
		if !ok {
			return m, nil
		}
		return m, tea.Batch(m.spin.Tick, func() tea.Msg {
			return resolvedMsg{tab: tabAsk, res: work()}
		})
	}
	return m, nil
}

func (m *Model) clearActive() {
	m.notice = ""
	switch m.active {
	case tabTicket:
		m.ticket.Clear()
		m.taskInput.SetValue("")
		m.ritmInput.SetValue("")
	case tabAsk:
		m.agent.Clear()
		m.queryInput.SetValue("")
	}
}

// 성공 결과를 클립보드로 내보내기:
// ticket 탭은 pretty-printed JSON, ask 탭은 응답 텍스트 그대로
func (m *Model) copyActive() {
	switch m.active {
	case tabTicket:
		result := m.ticket.Result()
		if result == nil {
			return
		}
		pretty, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			m.notice = "copy failed: " + err.Error()
			return
		}
		if err := clipboard.WriteAll(string(pretty)); err != nil {
			m.notice = "copy failed: " + err.Error()
			return
		}
		m.notice = "copied RCA report to clipboard"

	case tabAsk:
		if m.agent.State() != session.Succeeded {
			return
		}
		if err := clipboard.WriteAll(m.agent.Answer()); err != nil {
			m.notice = "copy failed: " + err.Error()
			return
		}
		m.notice = "copied answer to clipboard"
	}
}

func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.active == tabAsk:
		m.queryInput, cmd = m.queryInput.Update(msg)
	case m.ticket.Mode() == session.ModeRitm:
		m.ritmInput, cmd = m.ritmInput.Update(msg)
	default:
		m.taskInput, cmd = m.taskInput.Update(msg)
	}
	return m, cmd
}

// 활성 탭/모드에 맞는 입력 위젯
func (m *Model) ticketInput() *textinput.Model {
	if m.ticket.Mode() == session.ModeRitm {
		return &m.ritmInput
	}
	return &m.taskInput
}

func (m *Model) refocus() {
	m.taskInput.Blur()
	m.ritmInput.Blur()
	m.queryInput.Blur()
	if m.active == tabAsk {
		m.queryInput.Focus()
		return
	}
	m.ticketInput().Focus()
}

func (m Model) loading() bool {
	return m.ticket.State() == session.Loading || m.agent.State() == session.Loading
}
