package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Yat-Muk/stellar-ui/internal/application"
	"github.com/Yat-Muk/stellar-ui/internal/pkg/inputvalidator"
	"github.com/Yat-Muk/stellar-ui/internal/tui/style"
)

// 表單字段
const (
	FieldName = iota
	FieldEmail
	FieldMessage
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "Email", "Message"}

// FormState 聯繫表單的輸入狀態
type FormState struct {
	Inputs  [fieldCount]textinput.Model
	Focused int
	Active  bool
}

// NewFormState 創建表單狀態
func NewFormState() *FormState {
	f := &FormState{}

	placeholders := [fieldCount]string{"Your name", "you@example.com", "Say hello..."}
	limits := [fieldCount]int{inputvalidator.MaxNameLength, inputvalidator.MaxEmailLength, inputvalidator.MaxMessageLength}
	for i := range f.Inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = limits[i]
		ti.Width = SidebarWidth - 16
		f.Inputs[i] = ti
	}
	return f
}

// Label 字段名
func (f *FormState) Label(i int) string { return fieldLabels[i] }

// Enter 進入表單，聚焦上次停留的字段
func (f *FormState) Enter() tea.Cmd {
	f.Active = true
	return f.focus(f.Focused)
}

// Next 循環聚焦下一個字段
func (f *FormState) Next() tea.Cmd {
	if !f.Active {
		return f.Enter()
	}
	return f.focus((f.Focused + 1) % fieldCount)
}

// Leave 離開表單，保留已輸入內容
func (f *FormState) Leave() {
	f.Active = false
	for i := range f.Inputs {
		f.Inputs[i].Blur()
	}
}

func (f *FormState) focus(i int) tea.Cmd {
	f.Focused = i
	var cmd tea.Cmd
	for j := range f.Inputs {
		if j == i {
			cmd = f.Inputs[j].Focus()
		} else {
			f.Inputs[j].Blur()
		}
	}
	return cmd
}

// Update 把按鍵交給當前字段
func (f *FormState) Update(msg tea.Msg) tea.Cmd {
	if !f.Active {
		return nil
	}
	var cmd tea.Cmd
	f.Inputs[f.Focused], cmd = f.Inputs[f.Focused].Update(msg)
	return cmd
}

// Submission 當前輸入
func (f *FormState) Submission() application.Submission {
	return application.Submission{
		Name:    strings.TrimSpace(f.Inputs[FieldName].Value()),
		Email:   strings.TrimSpace(f.Inputs[FieldEmail].Value()),
		Message: strings.TrimSpace(f.Inputs[FieldMessage].Value()),
	}
}

// Clear 清空所有字段，焦點回到第一個
func (f *FormState) Clear() {
	for i := range f.Inputs {
		f.Inputs[i].Reset()
	}
	if f.Active {
		f.focus(FieldName)
	} else {
		f.Focused = FieldName
	}
}

// SetStyles 跟隨主題
func (f *FormState) SetStyles(s style.Styles) {
	for i := range f.Inputs {
		f.Inputs[i].TextStyle = s.Input
		f.Inputs[i].PlaceholderStyle = s.Placeholder
		f.Inputs[i].Cursor.Style = s.LabelFocused
	}
}
