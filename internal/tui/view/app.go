package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Yat-Muk/stellar-ui/internal/tui/style"
	"github.com/Yat-Muk/stellar-ui/internal/tui/types"
)

// Size 佈局尺寸，由狀態層計算
type Size struct {
	Width        int
	BodyHeight   int
	SidebarWidth int
	HeaderHeight int
	FooterHeight int
}

// AppData 渲染整個畫面需要的數據
type AppData struct {
	Styles style.Styles
	Size   Size

	Header      types.HeaderInfo
	Counter     types.CounterInfo
	Swatches    []types.SwatchInfo
	Form        types.FormInfo
	FormFocused bool
	Progress    types.ProgressInfo

	// Canvas 已渲染好的畫布，尺寸與畫布面板內部一致
	Canvas string
	Help   string
	Status string
}

// RenderApp 渲染主畫面：頭部、側欄 + 畫布、頁腳
func RenderApp(d AppData) string {
	st := d.Styles
	sz := d.Size

	header := fixed(renderHeader(st, d.Header, sz.Width), sz.Width, sz.HeaderHeight)

	sidebar := renderSidebar(st, d, sz.SidebarWidth, sz.BodyHeight)
	playground := st.Canvas.Render(d.Canvas)
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, playground)

	footer := fixed(renderFooter(st, d.Progress, d.Help, d.Status, sz.Width), sz.Width, sz.FooterHeight)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
