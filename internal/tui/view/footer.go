package view

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Yat-Muk/stellar-ui/internal/tui/style"
	"github.com/Yat-Muk/stellar-ui/internal/tui/types"
)

// renderFooter 第一行彩蛋提示與進度，第二行按鍵幫助與狀態
func renderFooter(st style.Styles, p types.ProgressInfo, help, status string, width int) string {
	hint := lipgloss.JoinHorizontal(lipgloss.Top,
		st.Muted.Render(" Try the Konami Code: "),
		st.Info.Italic(true).Render(p.Hint),
		"  ",
		st.Dots(p.Done, p.Total),
	)

	var found string
	if p.Matches > 0 {
		found = st.DotActive.Render(fmt.Sprintf("found ×%d ", p.Matches))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		spread(hint, found, width),
		spread(help, status+" ", width),
	)
}
