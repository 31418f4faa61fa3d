package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TextColor 返回一個使用指定前景色的 Render 函數，
// 例如 style.TextColor(p.Accent)("✦ ")
func TextColor(c lipgloss.Color) func(string) string {
	s := lipgloss.NewStyle().Foreground(c)
	return func(str string) string {
		return s.Render(str)
	}
}

// GradientBar 用一組十六進制顏色渲染一行色塊，每種顏色一格
func GradientBar(colors []string, glyph string) string {
	var sb strings.Builder
	for _, c := range colors {
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render(glyph))
	}
	return sb.String()
}

// Dots 渲染 n 個進度點，前 done 個高亮
func (s Styles) Dots(done, n int) string {
	if n <= 0 {
		return ""
	}
	done = max(0, min(done, n))
	return s.DotActive.Render(strings.Repeat("●", done)) +
		s.Dot.Render(strings.Repeat("○", n-done))
}
