// 콘솔 설정 로딩 유틸
//
// 환경변수:
//   - RCA_BASE_URL: RCA 백엔드 URL (default: http://localhost:8000)
//   - RCA_TIMEOUT_MS: 요청 제한 시간, 밀리초 (default: 30000)
//   - RCA_THEME: 콘솔 테마 이름 (default: incident)
//   - STUB_ADDR: 스텁 백엔드 listen 주소 (default: :8000)
//   - AI_API_KEY: 스텁 백엔드의 Gemini 응답 생성용 (없으면 canned 응답)

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Service ServiceConfig
	UI      UIConfig
	Stub    StubConfig
}

type ServiceConfig struct {
	BaseURL string
	Timeout time.Duration
}

type UIConfig struct {
	Theme string
}

type StubConfig struct {
	Addr   string
	APIKey string
}

// .env 파일이 있으면 먼저 로드 (없으면 무시)
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Service: ServiceConfig{
			BaseURL: getenv("RCA_BASE_URL", "http://localhost:8000"),
			Timeout: time.Duration(getenvInt("RCA_TIMEOUT_MS", 30000)) * time.Millisecond,
		},
		UI: UIConfig{
			Theme: getenv("RCA_THEME", "incident"),
		},
		Stub: StubConfig{
			Addr:   getenv("STUB_ADDR", ":8000"),
			APIKey: os.Getenv("AI_API_KEY"),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// 숫자가 아니거나 0 이하면 fallback 사용
func getenvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
