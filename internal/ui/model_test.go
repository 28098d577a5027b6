package ui

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kube-rca/console/internal/client"
	"github.com/kube-rca/console/internal/session"
)

type fakeExecutor struct {
	outcome client.Outcome
	calls   int
}

func (f *fakeExecutor) Post(path string, body any) client.Outcome {
	f.calls++
	return f.outcome
}

func (f *fakeExecutor) Timeout() time.Duration { return 30 * time.Second }

func keyEnter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }
func keyTab() tea.KeyMsg   { return tea.KeyMsg{Type: tea.KeyTab} }

// cmd를 실행해서 resolvedMsg가 나올 때까지 풀어낸다 (tea.Batch 대응)
func drainForResolution(t *testing.T, cmd tea.Cmd) (resolvedMsg, bool) {
	t.Helper()
	if cmd == nil {
		return resolvedMsg{}, false
	}
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case resolvedMsg:
			return msg, true
		case tea.BatchMsg:
			queue = append(queue, msg...)
		}
	}
	return resolvedMsg{}, false
}

func TestEnterWithEmptyInputDoesNothing(t *testing.T) {
	exec := &fakeExecutor{}
	m := NewModel(DefaultTheme, exec)

	updated, cmd := m.Update(keyEnter())
	model := updated.(Model)

	if cmd != nil {
		t.Fatal("empty submit must not produce a command")
	}
	if model.ticket.State() != session.Idle {
		t.Fatalf("expected Idle, got %s", model.ticket.State())
	}
	if exec.calls != 0 {
		t.Fatalf("expected zero network calls, got %d", exec.calls)
	}
}

func TestEnterSubmitsAndResolvesTicket(t *testing.T) {
	payload := `{"ticket_data":{"number":"RTSK1"},"generated_rca":"the **scheduler** died"}`
	exec := &fakeExecutor{outcome: client.Outcome{Kind: client.Success, Payload: json.RawMessage(payload)}}
	m := NewModel(DefaultTheme, exec)
	m.taskInput.SetValue("RTSK1")

	updated, cmd := m.Update(keyEnter())
	model := updated.(Model)

	if model.ticket.State() != session.Loading {
		t.Fatalf("expected Loading right after submit, got %s", model.ticket.State())
	}

	res, ok := drainForResolution(t, cmd)
	if !ok {
		t.Fatal("expected a resolution message from the submit command")
	}

	updated, _ = model.Update(res)
	model = updated.(Model)

	if model.ticket.State() != session.Succeeded {
		t.Fatalf("expected Succeeded, got %s", model.ticket.State())
	}
	if exec.calls != 1 {
		t.Fatalf("expected exactly one call, got %d", exec.calls)
	}
	view := model.View()
	if !strings.Contains(view, "scheduler") {
		t.Fatal("view must contain the RCA text")
	}
}

func TestEnterWhileLoadingIsIgnored(t *testing.T) {
	exec := &fakeExecutor{outcome: client.Outcome{Kind: client.Success, Payload: json.RawMessage(`{}`)}}
	m := NewModel(DefaultTheme, exec)
	m.taskInput.SetValue("RTSK1")

	updated, _ := m.Update(keyEnter())
	model := updated.(Model)
	if model.ticket.State() != session.Loading {
		t.Fatalf("expected Loading, got %s", model.ticket.State())
	}

	updated, cmd := model.Update(keyEnter())
	model = updated.(Model)
	if cmd != nil {
		t.Fatal("submit while loading must be ignored")
	}
}

func TestTabSwitchesToAskSession(t *testing.T) {
	payload := `{"response":"restart the **ingress** pods"}`
	exec := &fakeExecutor{outcome: client.Outcome{Kind: client.Success, Payload: json.RawMessage(payload)}}
	m := NewModel(DefaultTheme, exec)

	updated, _ := m.Update(keyTab())
	model := updated.(Model)
	if model.active != tabAsk {
		t.Fatal("tab key must switch to the ask tab")
	}

	model.queryInput.SetValue("what broke?")
	updated, cmd := model.Update(keyEnter())
	model = updated.(Model)

	res, ok := drainForResolution(t, cmd)
	if !ok {
		t.Fatal("expected a resolution message")
	}
	updated, _ = model.Update(res)
	model = updated.(Model)

	if model.agent.State() != session.Succeeded {
		t.Fatalf("expected Succeeded, got %s", model.agent.State())
	}
	if !strings.Contains(model.View(), "ingress") {
		t.Fatal("view must contain the agent answer")
	}
}

func TestEscClearsActiveSession(t *testing.T) {
	exec := &fakeExecutor{outcome: client.Outcome{Kind: client.HTTPFailure, Status: 500, Body: "boom"}}
	m := NewModel(DefaultTheme, exec)
	m.taskInput.SetValue("RTSK1")

	updated, cmd := m.Update(keyEnter())
	model := updated.(Model)
	res, _ := drainForResolution(t, cmd)
	updated, _ = model.Update(res)
	model = updated.(Model)
	if model.ticket.State() != session.Failed {
		t.Fatalf("expected Failed, got %s", model.ticket.State())
	}

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	model = updated.(Model)

	if model.ticket.State() != session.Idle {
		t.Fatalf("expected Idle after esc, got %s", model.ticket.State())
	}
	if model.taskInput.Value() != "" || model.ritmInput.Value() != "" {
		t.Fatal("esc must reset both ticket fields")
	}
}

func TestFailedViewShowsBackendBody(t *testing.T) {
	exec := &fakeExecutor{outcome: client.Outcome{Kind: client.HTTPFailure, Status: 404, Body: "no ticket found for RTSK9"}}
	m := NewModel(DefaultTheme, exec)
	m.taskInput.SetValue("RTSK9")

	updated, cmd := m.Update(keyEnter())
	model := updated.(Model)
	res, _ := drainForResolution(t, cmd)
	updated, _ = model.Update(res)
	model = updated.(Model)

	if !strings.Contains(model.View(), "no ticket found for RTSK9") {
		t.Fatal("view must surface the backend error body verbatim")
	}
}
