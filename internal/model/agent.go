package model

type AgentQueryRequest struct {
	Query string `json:"query"`
}

// response가 빠져 있으면 빈 문자열로 남는다 (에러 아님)
type AgentAnswer struct {
	Response string `json:"response"`
}
