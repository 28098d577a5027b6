// RCA 백엔드와 HTTP 통신하는 클라이언트 정의
//
// 환경변수:
//   - RCA_BASE_URL: RCA 백엔드 URL (예: http://localhost:8000)
//   - RCA_TIMEOUT_MS: 요청 제한 시간 (밀리초)
//
// 호출 결과는 에러 대신 Outcome으로 분류해서 반환:
//   - 제한 시간 초과와 HTTP 에러는 예외적인 상황이 아니라 예상되는 결과이므로
//     호출자가 분기할 수 있는 값으로 돌려준다

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/kube-rca/console/internal/config"
)

// 호출 결과 분류
type OutcomeKind int

const (
	Success OutcomeKind = iota
	HTTPFailure
	TimedOut
	NetworkFailure
)

// Outcome 구조체 정의: POST 한 번의 결과
type Outcome struct {
	Kind    OutcomeKind
	Payload json.RawMessage // Success: 응답 본문
	Status  int             // HTTPFailure: 상태 코드
	Body    string          // HTTPFailure: 본문 원문 그대로 보존
	Err     error           // NetworkFailure: 전송 오류
}

// Executor 구조체 정의
type Executor struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

func NewExecutor(cfg config.ServiceConfig) *Executor {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Executor{
		baseURL: baseURL,
		timeout: timeout,
		// 제한 시간은 호출별 context로 걸기 때문에 http.Client.Timeout은 쓰지 않음
		httpClient: &http.Client{},
	}
}

// 설정된 제한 시간 반환 (실패 메시지에 초 단위로 표기)
func (e *Executor) Timeout() time.Duration {
	return e.timeout
}

// path로 JSON 본문을 POST하고 결과를 넷 중 하나로 분류해서 반환
//
// 호출당 타이머는 하나만 만들고 모든 경로에서 해제한다.
// 제한 시간이 지나면 진행 중인 요청은 취소되어 이후 콜백은 발생하지 않는다.
func (e *Executor) Post(path string, body any) Outcome {
	payload, err := json.Marshal(body)
	if err != nil {
		return Outcome{Kind: NetworkFailure, Err: fmt.Errorf("failed to marshal request: %w", err)}
	}

	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+path, bytes.NewBuffer(payload))
	if err != nil {
		return Outcome{Kind: NetworkFailure, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := e.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Outcome{Kind: TimedOut}
		}
		return Outcome{Kind: NetworkFailure, Err: fmt.Errorf("failed to send request: %w", err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		// 본문을 읽는 중에 제한 시간이 지날 수도 있다
		if errors.Is(err, context.DeadlineExceeded) {
			return Outcome{Kind: TimedOut}
		}
		return Outcome{Kind: NetworkFailure, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return Outcome{Kind: HTTPFailure, Status: resp.StatusCode, Body: string(raw)}
	}

	return Outcome{Kind: Success, Payload: raw}
}
