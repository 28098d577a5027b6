// 백엔드 텍스트의 **볼드** 인라인 마크업 처리

package markup

import "regexp"

type Kind int

const (
	Plain Kind = iota
	Bold
)

// Segment 구조체 정의: 순서대로 이어 붙이면 ** 구분자만 빠진 원문이 된다
type Segment struct {
	Kind Kind
	Text string
}

// 비탐욕 매칭: 가장 가까운 닫는 **까지만 강조. 중첩은 지원하지 않음.
var boldPattern = regexp.MustCompile(`\*\*(.+?)\*\*`)

// 입력을 왼쪽부터 훑으며 Plain/Bold 세그먼트 목록으로 분리
//
//   - 빈 입력: nil (렌더링할 것 없음)
//   - 매칭이 하나도 없으면: 전체가 Plain 세그먼트 하나
//   - 짝이 없는 * 나 닫히지 않은 ** 는 일반 텍스트로 남는다
func Render(input string) []Segment {
	if input == "" {
		return nil
	}

	matches := boldPattern.FindAllStringSubmatchIndex(input, -1)
	if len(matches) == 0 {
		return []Segment{{Kind: Plain, Text: input}}
	}

	segments := make([]Segment, 0, len(matches)*2+1)
	last := 0
	for _, m := range matches {
		if m[0] > last {
			segments = append(segments, Segment{Kind: Plain, Text: input[last:m[0]]})
		}
		segments = append(segments, Segment{Kind: Bold, Text: input[m[2]:m[3]]})
		last = m[1]
	}
	if last < len(input) {
		segments = append(segments, Segment{Kind: Plain, Text: input[last:]})
	}
	return segments
}
