package stub

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kube-rca/console/internal/model"
)

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestGetDetailsValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(nil)

	tests := []struct {
		name string
		body string
	}{
		{name: "empty-object", body: `{}`},
		{name: "blank-number", body: `{"rtsk_number":"   "}`},
		{name: "not-json", body: `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, router, "/get-details", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestGetDetailsKnownTicket(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(nil)

	w := postJSON(t, router, "/get-details", `{"rtsk_number":"RTSK0012345"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result model.RcaResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.TicketData["number"] != "RTSK0012345" {
		t.Fatalf("ticket_data must echo the number, got %v", result.TicketData["number"])
	}
	if !strings.Contains(result.GeneratedRca, "**") {
		t.Fatal("generated_rca should carry bold markup")
	}
}

func TestGetDetailsRitmKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(nil)

	w := postJSON(t, router, "/get-details", `{"ritm_number":"RITM0067890"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestGetDetailsUnknownTicketIsPlainText404(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(nil)

	w := postJSON(t, router, "/get-details", `{"rtsk_number":"INC0000001"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if got := w.Body.String(); got != "no ticket found for INC0000001" {
		t.Fatalf("unexpected body: %q", got)
	}
}

func TestAgentQueryCanned(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(nil)

	w := postJSON(t, router, "/agent-query", `{"query":"what broke last night?"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var answer model.AgentAnswer
	if err := json.Unmarshal(w.Body.Bytes(), &answer); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if answer.Response == "" {
		t.Fatal("expected a canned answer")
	}
}

func TestAgentQueryValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(nil)

	w := postJSON(t, router, "/agent-query", `{"query":"  "}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

type failingAnswerer struct{}

func (failingAnswerer) Answer(query string) (string, error) {
	return "", fmt.Errorf("model unavailable")
}

func TestAgentQueryAnswererFailureIs502(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(failingAnswerer{})

	w := postJSON(t, router, "/agent-query", `{"query":"anything"}`)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
}
