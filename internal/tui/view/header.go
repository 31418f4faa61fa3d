package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Yat-Muk/stellar-ui/internal/tui/style"
	"github.com/Yat-Muk/stellar-ui/internal/tui/types"
)

// renderHeader Logo、副標題、版本與主題徽章
func renderHeader(st style.Styles, h types.HeaderInfo, width int) string {
	icon := "☀"
	if h.Theme == "dark" {
		icon = "☾"
	}
	badge := st.Badge.Render(spinGlyph(h.Spinning, h.SpinFrame, icon) + " " + h.Theme)

	left := lipgloss.JoinHorizontal(lipgloss.Center,
		RenderLogo(st),
		st.Subtitle.Render(" modern interface playground"),
	)

	version := h.Version
	if version != "" && version[0] >= '0' && version[0] <= '9' {
		version = "v" + version
	}
	right := lipgloss.JoinHorizontal(lipgloss.Center, st.Muted.Render(version+"  "), badge)

	rule := lipgloss.NewStyle().Foreground(st.Palette.Border).Render(strings.Repeat("─", width))

	return lipgloss.JoinVertical(lipgloss.Left,
		spread(left, right, width),
		"",
		rule,
	)
}
