package model

// 티켓 조회 요청: 모드에 따라 둘 중 하나만 전송
type TaskLookupRequest struct {
	RtskNumber string `json:"rtsk_number"`
}

type RitmLookupRequest struct {
	RitmNumber string `json:"ritm_number"`
}

// 백엔드가 생성한 RCA 리포트
//
// TicketData는 구조를 모르는 채로 받아서 그대로 표시/복사에 사용
type RcaResult struct {
	TicketData   map[string]any `json:"ticket_data"`
	GeneratedRca string         `json:"generated_rca"`
}
