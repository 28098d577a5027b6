// 워크플로 상태 관리 공통 정의
//
// 세션은 이벤트 루프(또는 CLI 호출 한 번) 안에서만 변경된다.
// Submit이 반환한 함수는 다른 goroutine에서 실행해도 되지만,
// 그 결과(Resolution)는 반드시 같은 루프에서 Resolve로 반영해야 한다.

package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/kube-rca/console/internal/client"
)

// 워크플로 상태: Idle → Loading → {Succeeded | Failed}, clear 시 Idle 복귀
type State int

const (
	Idle State = iota
	Loading
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Executor 인터페이스: 테스트에서 가짜 구현으로 대체
type Executor interface {
	Post(path string, body any) client.Outcome
	Timeout() time.Duration
}

// 완료된 호출 결과. Generation이 세션의 현재 세대와 다르면 무시된다.
type Resolution struct {
	Generation int
	Outcome    client.Outcome
}

// 실패 결과를 사용자에게 보여줄 메시지로 변환
//
//   - TimedOut: 설정된 제한 시간을 초 단위로 표기하고 재시도 안내
//   - HTTPFailure: 백엔드가 보낸 본문이 있으면 그대로, 없으면 "HTTP <status>"
//   - NetworkFailure: 전송 오류 메시지, 없으면 일반 안내
func failureMessage(out client.Outcome, timeout time.Duration) string {
	switch out.Kind {
	case client.TimedOut:
		return fmt.Sprintf("request exceeded %d seconds, please try again", int(timeout.Seconds()))
	case client.HTTPFailure:
		if strings.TrimSpace(out.Body) != "" {
			return out.Body
		}
		return fmt.Sprintf("HTTP %d", out.Status)
	case client.NetworkFailure:
		if out.Err != nil {
			return out.Err.Error()
		}
		return "network error, please check the backend connection"
	}
	return "unexpected response from backend"
}
