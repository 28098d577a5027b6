package stub

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kube-rca/console/internal/model"
)

type AgentHandler struct {
	answerer Answerer
}

func NewAgentHandler(answerer Answerer) *AgentHandler {
	return &AgentHandler{answerer: answerer}
}

// POST /agent-query
func (h *AgentHandler) AgentQuery(c *gin.Context) {
	var req model.AgentQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "query is required"})
		return
	}

	if h.answerer != nil {
		answer, err := h.answerer.Answer(req.Query)
		if err != nil {
			log.Printf("Failed to answer agent query: %v", err)
			c.JSON(http.StatusBadGateway, model.ErrorResponse{Error: "agent backend unavailable"})
			return
		}
		c.JSON(http.StatusOK, model.AgentAnswer{Response: answer})
		return
	}

	c.JSON(http.StatusOK, model.AgentAnswer{Response: cannedAnswer(req.Query)})
}

func cannedAnswer(query string) string {
	return "Based on recent incident data, the most likely cause is the " +
		"**checkout-api memory limit** rollout from Tuesday. Correlated symptoms: " +
		"**OOM kills** in kube-events and elevated p99 latency on the payment path. " +
		"(asked: " + query + ")"
}
