package constants

import "github.com/charmbracelet/bubbles/key"

// 單鍵動作
const (
	KeyTheme     = "t"
	KeyIncrement = "+"
	KeySpace     = " "
	KeyReset     = "r"
	KeyGenerate  = "g"
	KeyForm      = "tab"
	KeySubmit    = "enter"
	KeyLeave     = "esc"
	KeyQuit      = "q"
	KeyForceQuit = "ctrl+c"
)

// KeyMap 全局按鍵綁定，同時供頁腳幫助使用
type KeyMap struct {
	Theme     key.Binding
	Increment key.Binding
	Reset     key.Binding
	Generate  key.Binding
	Form      key.Binding
	Submit    key.Binding
	Leave     key.Binding
	Quit      key.Binding
}

// DefaultKeyMap 默認綁定
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Theme: key.NewBinding(
			key.WithKeys(KeyTheme),
			key.WithHelp("t", "theme"),
		),
		Increment: key.NewBinding(
			key.WithKeys(KeyIncrement, KeySpace),
			key.WithHelp("+/space", "count"),
		),
		Reset: key.NewBinding(
			key.WithKeys(KeyReset),
			key.WithHelp("r", "reset"),
		),
		Generate: key.NewBinding(
			key.WithKeys(KeyGenerate),
			key.WithHelp("g", "colors"),
		),
		Form: key.NewBinding(
			key.WithKeys(KeyForm),
			key.WithHelp("tab", "form"),
		),
		Submit: key.NewBinding(
			key.WithKeys(KeySubmit),
			key.WithHelp("enter", "send"),
		),
		Leave: key.NewBinding(
			key.WithKeys(KeyLeave),
			key.WithHelp("esc", "leave form"),
		),
		Quit: key.NewBinding(
			key.WithKeys(KeyQuit, KeyForceQuit),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp 實現 help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Theme, k.Increment, k.Reset, k.Generate, k.Form, k.Quit}
}

// FullHelp 實現 help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Theme, k.Increment, k.Reset, k.Generate},
		{k.Form, k.Submit, k.Leave, k.Quit},
	}
}

// FormHelp 表單聚焦時的幫助
func (k KeyMap) FormHelp() []key.Binding {
	return []key.Binding{k.Form, k.Submit, k.Leave, k.Quit}
}
