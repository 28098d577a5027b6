// 콘솔 테마 정의
//
// 스킨마다 화면 컴포넌트를 복제하는 대신, 색상 팔레트 하나(Theme)로
// 같은 렌더링 로직을 재사용한다. RCA_THEME 환경변수로 선택.

package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme 구조체 정의: 스킨 하나가 쓰는 색상 팔레트
type Theme struct {
	Name string

	Accent   lipgloss.Color // 타이틀, 활성 탭
	Border   lipgloss.Color
	Text     lipgloss.Color
	Faint    lipgloss.Color // 보조 텍스트, 도움말
	Emphasis lipgloss.Color // **볼드** 세그먼트
	Error    lipgloss.Color
	Success  lipgloss.Color
}

var themes = map[string]Theme{
	"incident": {
		Name:     "incident",
		Accent:   lipgloss.Color("203"),
		Border:   lipgloss.Color("240"),
		Text:     lipgloss.Color("252"),
		Faint:    lipgloss.Color("243"),
		Emphasis: lipgloss.Color("214"),
		Error:    lipgloss.Color("196"),
		Success:  lipgloss.Color("42"),
	},
	"glacier": {
		Name:     "glacier",
		Accent:   lipgloss.Color("39"),
		Border:   lipgloss.Color("24"),
		Text:     lipgloss.Color("253"),
		Faint:    lipgloss.Color("245"),
		Emphasis: lipgloss.Color("51"),
		Error:    lipgloss.Color("204"),
		Success:  lipgloss.Color("85"),
	},
	"forest": {
		Name:     "forest",
		Accent:   lipgloss.Color("113"),
		Border:   lipgloss.Color("22"),
		Text:     lipgloss.Color("251"),
		Faint:    lipgloss.Color("244"),
		Emphasis: lipgloss.Color("155"),
		Error:    lipgloss.Color("167"),
		Success:  lipgloss.Color("77"),
	},
	"mono": {
		Name:     "mono",
		Accent:   lipgloss.Color("255"),
		Border:   lipgloss.Color("238"),
		Text:     lipgloss.Color("250"),
		Faint:    lipgloss.Color("241"),
		Emphasis: lipgloss.Color("231"),
		Error:    lipgloss.Color("250"),
		Success:  lipgloss.Color("250"),
	},
}

var DefaultTheme = themes["incident"]

// 이름으로 테마 조회. 모르는 이름이면 기본 테마와 false 반환.
func ThemeByName(name string) (Theme, bool) {
	if t, ok := themes[name]; ok {
		return t, true
	}
	return DefaultTheme, false
}

// 등록된 테마 이름 목록 (정렬됨)
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
