package handlers

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Yat-Muk/stellar-ui/internal/tui/state"
)

// MouseHandler 畫布內的指針移動生成軌跡，左鍵點擊生成漣漪
type MouseHandler struct{}

func NewMouseHandler() *MouseHandler {
	return &MouseHandler{}
}

// Handle 畫布外的鼠標事件被忽略；返回是否生成了粒子
func (h *MouseHandler) Handle(msg tea.MouseMsg, m *state.Manager) bool {
	p, ok := m.Layout().CanvasPoint(msg.X, msg.Y)
	if !ok {
		return false
	}

	switch {
	case msg.Action == tea.MouseActionMotion:
		return m.Interaction().HandlePointer(p)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.Interaction().HandleClick(p)
		return true
	}
	return false
}
