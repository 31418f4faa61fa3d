package state

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Yat-Muk/stellar-ui/internal/domain/config"
	"github.com/Yat-Muk/stellar-ui/internal/tui/constants"
	"github.com/Yat-Muk/stellar-ui/internal/tui/style"
)

// Focus 當前鍵盤焦點
type Focus int

const (
	FocusPlayground Focus = iota
	FocusForm
)

// StatusType 狀態類型
type StatusType int

const (
	StatusReady StatusType = iota
	StatusSuccess
	StatusError
	StatusInfo
	StatusWarn
)

// StatusMsg 狀態欄消息
type StatusMsg struct {
	Type    StatusType
	Message string
	Detail  string
	At      time.Time
}

// UIState UI 核心狀態
type UIState struct {
	Width  int
	Height int
	Focus  Focus
	Status StatusMsg

	Theme  config.Theme
	Styles style.Styles

	Spinner spinner.Model
	Help    help.Model
	Keys    constants.KeyMap

	ThemeSpin      Pulse
	ResetSpin      Pulse
	IncrementPress Pulse
}

// NewUIState 創建 UI 狀態
func NewUIState(theme config.Theme) *UIState {
	s := &UIState{
		Width:   100,
		Height:  30,
		Focus:   FocusPlayground,
		Status:  StatusMsg{Type: StatusReady},
		Spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		Help:    help.New(),
		Keys:    constants.DefaultKeyMap(),

		ThemeSpin:      NewPulse(ThemeSpinDuration),
		ResetSpin:      NewPulse(ResetSpinDuration),
		IncrementPress: NewPulse(PressDuration),
	}
	s.SetTheme(theme)
	return s
}

// SetTheme 切換主題並重建派生樣式
func (s *UIState) SetTheme(t config.Theme) {
	if t != config.ThemeDark {
		t = config.ThemeLight
	}
	s.Theme = t
	s.Styles = style.New(style.PaletteFor(t))

	p := s.Styles.Palette
	s.Spinner.Style = lipgloss.NewStyle().Foreground(p.Primary)
	s.Help.Styles.ShortKey = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	s.Help.Styles.ShortDesc = lipgloss.NewStyle().Foreground(p.Muted)
	s.Help.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(p.Border)
	s.Help.Styles.FullKey = s.Help.Styles.ShortKey
	s.Help.Styles.FullDesc = s.Help.Styles.ShortDesc
	s.Help.Styles.FullSeparator = s.Help.Styles.ShortSeparator
}

// SetStatus 設置狀態欄消息
func (s *UIState) SetStatus(t StatusType, msg, detail string, at time.Time) {
	s.Status = StatusMsg{
		Type:    t,
		Message: msg,
		Detail:  detail,
		At:      at,
	}
}

// ClearStatus 重置狀態欄
func (s *UIState) ClearStatus() {
	s.Status = StatusMsg{Type: StatusReady}
}

// UpdateSize 更新尺寸
func (s *UIState) UpdateSize(w, h int) {
	s.Width = w
	s.Height = h
	s.Help.Width = w
}

// UpdateSpinner 推進旋轉指示器
func (s *UIState) UpdateSpinner(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.Spinner, cmd = s.Spinner.Update(msg)
	return cmd
}

// Pulsing 是否有按鈕反饋仍在進行，需要繼續刷新畫面
func (s *UIState) Pulsing(now time.Time) bool {
	return s.ThemeSpin.Active(now) || s.ResetSpin.Active(now) || s.IncrementPress.Active(now)
}
