package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Yat-Muk/stellar-ui/internal/domain/palette"
	"github.com/Yat-Muk/stellar-ui/internal/tui/style"
)

// SpinFrames 旋轉圖標的幀數
const SpinFrames = 4

var spinGlyphs = [SpinFrames]string{"◐", "◓", "◑", "◒"}

// spinGlyph 旋轉中顯示動畫幀，否則顯示靜態圖標
func spinGlyph(spinning bool, frame int, idle string) string {
	if !spinning {
		return idle
	}
	return spinGlyphs[frame%SpinFrames]
}

// RenderLogo 渲染 "✦ STELLAR UI"，字母按主色到次色漸變
func RenderLogo(st style.Styles) string {
	const text = "STELLAR UI"
	from, to := string(st.Palette.Primary), string(st.Palette.Secondary)

	runes := []rune(text)
	var sb strings.Builder
	sb.WriteString(style.TextColor(st.Palette.Accent)("✦ "))
	for i, r := range runes {
		t := float64(i) / float64(len(runes)-1)
		c := palette.Blend(to, from, t)
		sb.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c)).Render(string(r)))
	}
	return st.Logo.Render(sb.String())
}

// RenderStatus 按級別渲染狀態欄消息
func RenderStatus(st style.Styles, level, msg string) string {
	if msg == "" {
		return ""
	}
	switch level {
	case "success":
		return st.Success.Render("✓ " + msg)
	case "error":
		return st.Error.Render("✗ " + msg)
	case "warning":
		return st.Warning.Render("! " + msg)
	default:
		return st.Info.Render(msg)
	}
}

// spread 左右兩段文字撐滿 width，右段靠右
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// fixed 把內容放入固定尺寸的塊中，超出部分裁剪
func fixed(content string, width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		MaxWidth(width).
		Height(height).
		MaxHeight(height).
		Render(content)
}
