package stub

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kube-rca/console/internal/model"
)

type LookupHandler struct{}

func NewLookupHandler() *LookupHandler {
	return &LookupHandler{}
}

type lookupRequest struct {
	RtskNumber string `json:"rtsk_number"`
	RitmNumber string `json:"ritm_number"`
}

// POST /get-details
//
// 티켓 번호 형식(RTSK/SCTASK/RITM 접두사)이 맞으면 결정적인 가짜 리포트를
// 생성하고, 아니면 404와 평문 진단 메시지를 돌려준다.
// 404 본문을 평문으로 두는 것은 콘솔의 원문 표시 경로를 시험하기 위함.
func (h *LookupHandler) GetDetails(c *gin.Context) {
	var req lookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "invalid request body"})
		return
	}

	number := strings.TrimSpace(req.RtskNumber)
	if number == "" {
		number = strings.TrimSpace(req.RitmNumber)
	}
	if number == "" {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "rtsk_number or ritm_number is required"})
		return
	}

	if !knownTicketNumber(number) {
		c.String(http.StatusNotFound, "no ticket found for %s", number)
		return
	}

	c.JSON(http.StatusOK, model.RcaResult{
		TicketData:   cannedTicketData(number),
		GeneratedRca: cannedRca(number),
	})
}

func knownTicketNumber(number string) bool {
	upper := strings.ToUpper(number)
	for _, prefix := range []string{"RTSK", "SCTASK", "RITM"} {
		if strings.HasPrefix(upper, prefix) {
			return true
		}
	}
	return false
}

func cannedTicketData(number string) map[string]any {
	return map[string]any{
		"number":            number,
		"short_description": "checkout-api pods restarting in a loop",
		"assignment_group":  "platform-sre",
		"state":             "Closed",
		"opened_at":         time.Now().Add(-48 * time.Hour).Format(time.RFC3339),
		"priority":          2,
	}
}

func cannedRca(number string) string {
	return fmt.Sprintf(
		"**Root cause** for %s: the checkout-api deployment was rolled out with a "+
			"memory limit of **128Mi**, well below its working set. The kernel "+
			"**OOM-killed** the container on every warm-up, producing the restart loop. "+
			"Raising the limit to **512Mi** and adding a startup probe resolved the incident.",
		number)
}
