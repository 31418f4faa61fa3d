package handlers

import (
	"github.com/Yat-Muk/stellar-ui/internal/domain/effect"
	"github.com/Yat-Muk/stellar-ui/internal/tui/state"
)

// Notifier 狀態欄消息，顯示 statusTTL 後自動清除
type Notifier struct {
	timer effect.Timer
}

func NewNotifier(timer effect.Timer) *Notifier {
	return &Notifier{timer: timer}
}

// Flash 設置消息；期間被新消息覆蓋則不清除
func (n *Notifier) Flash(m *state.Manager, t state.StatusType, message, detail string) {
	now := m.Clock().Now()
	m.UI().SetStatus(t, message, detail, now)
	if n == nil || n.timer == nil {
		return
	}
	n.timer.Schedule(statusTTL, func() {
		cur := m.UI().Status
		if cur.At.Equal(now) && cur.Message == message && cur.Detail == detail {
			m.UI().ClearStatus()
		}
	})
}
