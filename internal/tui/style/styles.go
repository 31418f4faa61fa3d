package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles 由配色派生的全部組件樣式，主題切換時整體替換
type Styles struct {
	Palette Palette

	// 頭部
	Logo     lipgloss.Style
	Subtitle lipgloss.Style
	Badge    lipgloss.Style

	// 面板
	Panel        lipgloss.Style
	PanelFocused lipgloss.Style
	Canvas       lipgloss.Style
	SectionTitle lipgloss.Style

	// 計數器
	CounterValue lipgloss.Style

	// 按鈕
	Button        lipgloss.Style
	ButtonPressed lipgloss.Style
	ButtonBusy    lipgloss.Style
	ButtonSuccess lipgloss.Style

	// 表單
	Label        lipgloss.Style
	LabelFocused lipgloss.Style
	Input        lipgloss.Style
	Placeholder  lipgloss.Style

	// 狀態欄
	Help    lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style

	// 序列進度
	Dot       lipgloss.Style
	DotActive lipgloss.Style
}

// New 從配色構建樣式
func New(p Palette) Styles {
	return Styles{
		Palette: p,

		Logo: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			Padding(0, 1),

		Subtitle: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),

		Badge: lipgloss.NewStyle().
			Foreground(p.Surface).
			Background(p.Secondary).
			Padding(0, 1).
			Bold(true),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),

		PanelFocused: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.Primary).
			Padding(0, 1),

		Canvas: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Secondary),

		SectionTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Secondary),

		CounterValue: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),

		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(p.Primary).
			Padding(0, 2),

		ButtonPressed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(p.Secondary).
			Padding(0, 2).
			Bold(true),

		ButtonBusy: lipgloss.NewStyle().
			Foreground(p.Surface).
			Background(p.Muted).
			Padding(0, 2),

		ButtonSuccess: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1a1a2e")).
			Background(p.Success).
			Padding(0, 2).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(p.Muted),

		LabelFocused: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),

		Input: lipgloss.NewStyle().
			Foreground(p.Text),

		Placeholder: lipgloss.NewStyle().
			Foreground(p.Border),

		Help: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 1),

		Info:    lipgloss.NewStyle().Foreground(p.Primary),
		Success: lipgloss.NewStyle().Foreground(p.Success).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(p.Warning).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(p.Error).Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(p.Muted),

		Dot:       lipgloss.NewStyle().Foreground(p.Border),
		DotActive: lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
	}
}
