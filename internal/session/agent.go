// 자연어 질문을 백엔드 에이전트에 보내는 워크플로

package session

import (
	"encoding/json"
	"strings"

	"github.com/kube-rca/console/internal/client"
	"github.com/kube-rca/console/internal/model"
)

// AgentSession 구조체 정의
type AgentSession struct {
	exec Executor

	input  string
	state  State
	answer string
	errMsg string

	generation int
}

func NewAgentSession(exec Executor) *AgentSession {
	return &AgentSession{exec: exec}
}

func (s *AgentSession) State() State         { return s.state }
func (s *AgentSession) Input() string        { return s.input }
func (s *AgentSession) ErrorMessage() string { return s.errMsg }

// 마지막 응답 텍스트. 백엔드가 response를 생략했으면 빈 문자열이고,
// 그것도 정상 성공이다 (상태로 구분).
func (s *AgentSession) Answer() string { return s.answer }

func (s *AgentSession) SetInput(value string) {
	s.input = value
}

// 제출 시도. 동작은 TicketSession.Submit과 동일하되
// 본문은 {query}, 엔드포인트는 /agent-query.
func (s *AgentSession) Submit() (func() Resolution, bool) {
	if s.state == Loading {
		return nil, false
	}

	value := strings.TrimSpace(s.input)
	if value == "" {
		return nil, false
	}

	body := model.AgentQueryRequest{Query: value}

	s.state = Loading
	s.generation++

	gen := s.generation
	exec := s.exec
	return func() Resolution {
		return Resolution{Generation: gen, Outcome: exec.Post("/agent-query", body)}
	}, true
}

func (s *AgentSession) Resolve(r Resolution) {
	if r.Generation != s.generation || s.state != Loading {
		return
	}

	if r.Outcome.Kind != client.Success {
		s.fail(failureMessage(r.Outcome, s.exec.Timeout()))
		return
	}

	var answer model.AgentAnswer
	if err := json.Unmarshal(r.Outcome.Payload, &answer); err != nil {
		s.fail("backend returned an unreadable response")
		return
	}

	s.answer = answer.Response
	s.errMsg = ""
	s.state = Succeeded
}

func (s *AgentSession) fail(msg string) {
	s.answer = ""
	s.errMsg = msg
	s.state = Failed
}

func (s *AgentSession) Clear() {
	s.input = ""
	s.answer = ""
	s.errMsg = ""
	s.state = Idle
	s.generation++
}
