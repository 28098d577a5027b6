package model

// 스텁 백엔드 공용 응답 구조체

type ErrorResponse struct {
	Error string `json:"error"`
}

type PingResponse struct {
	Message string `json:"message"`
}
