package markup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Bold 세그먼트에만 스타일을 입혀 하나의 문자열로 합침 (터미널 출력용)
func Styled(input string, bold lipgloss.Style) string {
	var b strings.Builder
	for _, seg := range Render(input) {
		if seg.Kind == Bold {
			b.WriteString(bold.Render(seg.Text))
			continue
		}
		b.WriteString(seg.Text)
	}
	return b.String()
}
