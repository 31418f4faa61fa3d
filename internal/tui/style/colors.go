package style

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Yat-Muk/stellar-ui/internal/domain/config"
)

// Palette 一套主題配色
type Palette struct {
	Primary   lipgloss.Color // 主色 - Logo、軌跡粒子
	Secondary lipgloss.Color // 次色 - 邊框、提示文字背景
	Accent    lipgloss.Color // 強調色
	Success   lipgloss.Color
	Error     lipgloss.Color
	Warning   lipgloss.Color

	Text       lipgloss.Color // 主要文字
	Muted      lipgloss.Color // 弱化文字
	Background lipgloss.Color // 畫布背景
	Surface    lipgloss.Color // 面板背景
	Border     lipgloss.Color
}

// 品牌色，兩套主題共用
var (
	Indigo  = lipgloss.Color("#667eea")
	Purple  = lipgloss.Color("#764ba2")
	Pink    = lipgloss.Color("#f093fb")
	Mint    = lipgloss.Color("#43e97b")
	Aqua    = lipgloss.Color("#38f9d7")
	Crimson = lipgloss.Color("#f5576c")
	Amber   = lipgloss.Color("#fbbf24")
)

// LightPalette 淺色主題
var LightPalette = Palette{
	Primary:   Indigo,
	Secondary: Purple,
	Accent:    Pink,
	Success:   Mint,
	Error:     Crimson,
	Warning:   Amber,

	Text:       lipgloss.Color("#2d3748"),
	Muted:      lipgloss.Color("#718096"),
	Background: lipgloss.Color("#f7fafc"),
	Surface:    lipgloss.Color("#ffffff"),
	Border:     lipgloss.Color("#cbd5e0"),
}

// DarkPalette 深色主題
var DarkPalette = Palette{
	Primary:   lipgloss.Color("#818cf8"),
	Secondary: lipgloss.Color("#a78bfa"),
	Accent:    Pink,
	Success:   Aqua,
	Error:     lipgloss.Color("#fb7185"),
	Warning:   Amber,

	Text:       lipgloss.Color("#e2e8f0"),
	Muted:      lipgloss.Color("#94a3b8"),
	Background: lipgloss.Color("#0f0f23"),
	Surface:    lipgloss.Color("#1a1a2e"),
	Border:     lipgloss.Color("#334155"),
}

// PaletteFor 按主題取配色，未知主題按淺色處理
func PaletteFor(t config.Theme) Palette {
	if t == config.ThemeDark {
		return DarkPalette
	}
	return LightPalette
}
