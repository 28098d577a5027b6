// 티켓 번호로 RCA 리포트를 조회하는 워크플로

package session

import (
	"encoding/json"
	"strings"

	"github.com/kube-rca/console/internal/client"
	"github.com/kube-rca/console/internal/model"
)

// 티켓 번호 입력 모드. 모드별로 입력 필드가 따로 있고
// 제출 시에는 현재 모드의 필드만 사용한다.
type Mode string

const (
	ModeTask Mode = "TASK"
	ModeRitm Mode = "RITM"
)

// TicketSession 구조체 정의
type TicketSession struct {
	exec Executor

	mode      Mode
	taskInput string
	ritmInput string

	state  State
	result *model.RcaResult
	errMsg string

	// 제출 세대 번호: clear 후에 도착한 늦은 응답이 세션을 덮어쓰지 못하게 함
	generation int
}

func NewTicketSession(exec Executor) *TicketSession {
	return &TicketSession{exec: exec, mode: ModeTask}
}

func (s *TicketSession) State() State         { return s.state }
func (s *TicketSession) Mode() Mode           { return s.mode }
func (s *TicketSession) ErrorMessage() string { return s.errMsg }

// 마지막 성공 결과. Succeeded 상태가 아니면 nil.
func (s *TicketSession) Result() *model.RcaResult { return s.result }

func (s *TicketSession) SetMode(m Mode) {
	if m == ModeTask || m == ModeRitm {
		s.mode = m
	}
}

// 현재 모드의 입력 필드 값 설정
func (s *TicketSession) SetInput(value string) {
	if s.mode == ModeRitm {
		s.ritmInput = value
		return
	}
	s.taskInput = value
}

// 현재 모드의 입력 필드 값
func (s *TicketSession) Input() string {
	if s.mode == ModeRitm {
		return s.ritmInput
	}
	return s.taskInput
}

// 제출 시도. 반환된 함수를 실행하면 네트워크 호출이 일어나고,
// 그 결과를 Resolve에 넘기면 세션에 반영된다.
//
// 거부 조건 (false 반환, 상태 변화 없음):
//   - 이미 Loading인 경우
//   - 공백 제거 후 입력이 빈 경우 (검증 실패는 조용히 거부, 에러 아님)
func (s *TicketSession) Submit() (func() Resolution, bool) {
	if s.state == Loading {
		return nil, false
	}

	value := strings.TrimSpace(s.Input())
	if value == "" {
		return nil, false
	}

	var body any
	if s.mode == ModeRitm {
		body = model.RitmLookupRequest{RitmNumber: value}
	} else {
		body = model.TaskLookupRequest{RtskNumber: value}
	}

	s.state = Loading
	s.generation++

	gen := s.generation
	exec := s.exec
	return func() Resolution {
		return Resolution{Generation: gen, Outcome: exec.Post("/get-details", body)}
	}, true
}

// 완료된 호출 결과를 세션에 반영.
// 세대 번호가 현재와 다르면 (clear 이후 도착한 응답) 아무것도 하지 않는다.
func (s *TicketSession) Resolve(r Resolution) {
	if r.Generation != s.generation || s.state != Loading {
		return
	}

	if r.Outcome.Kind != client.Success {
		s.fail(failureMessage(r.Outcome, s.exec.Timeout()))
		return
	}

	var result model.RcaResult
	if err := json.Unmarshal(r.Outcome.Payload, &result); err != nil {
		s.fail("backend returned an unreadable response")
		return
	}

	s.result = &result
	s.errMsg = ""
	s.state = Succeeded
}

func (s *TicketSession) fail(msg string) {
	s.result = nil
	s.errMsg = msg
	s.state = Failed
}

// 입력, 결과, 에러를 모두 지우고 Idle로 복귀.
// 진행 중인 호출은 취소하지 않는다. 세대 번호를 올려서
// 그 호출이 나중에 완료되더라도 Resolve에서 무시되게 한다.
func (s *TicketSession) Clear() {
	s.taskInput = ""
	s.ritmInput = ""
	s.result = nil
	s.errMsg = ""
	s.state = Idle
	s.generation++
}
