// 로컬 개발용 스텁 백엔드
//
// 실제 RCA 서비스 없이 콘솔을 띄워볼 수 있게 /get-details 와 /agent-query 를
// 흉내낸다. AI_API_KEY가 설정되어 있으면 에이전트 응답을 Gemini로 생성하고,
// 없으면 canned 응답을 돌려준다.

package stub

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kube-rca/console/internal/config"
	"github.com/kube-rca/console/internal/model"
)

// 자연어 질문에 답하는 구현체. nil이면 canned 응답 사용.
type Answerer interface {
	Answer(query string) (string, error)
}

func NewRouter(answerer Answerer) *gin.Engine {
	router := gin.Default()
	router.Use(CORSMiddleware())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, model.PingResponse{Message: "pong"})
	})

	lookup := NewLookupHandler()
	router.POST("/get-details", lookup.GetDetails)

	agent := NewAgentHandler(answerer)
	router.POST("/agent-query", agent.AgentQuery)

	return router
}

// 설정에 따라 Gemini 연결을 시도하고 라우터를 띄운다
func Run(cfg config.StubConfig) error {
	var answerer Answerer
	if cfg.APIKey != "" {
		gemini, err := NewGeminiAnswerer(cfg.APIKey)
		if err != nil {
			log.Printf("Failed to init Gemini answerer, using canned responses: %v", err)
		} else {
			answerer = gemini
			log.Printf("Agent queries will be answered by Gemini")
		}
	}

	router := NewRouter(answerer)
	log.Printf("Stub backend listening on %s", cfg.Addr)
	return router.Run(cfg.Addr)
}
