package state

import "time"

// 按鈕反饋時長
const (
	ThemeSpinDuration = 300 * time.Millisecond
	ResetSpinDuration = 300 * time.Millisecond
	PressDuration     = 100 * time.Millisecond
)

// Pulse 一次性的短暫視覺反饋，例如按鈕按下或圖標旋轉一周
type Pulse struct {
	started  time.Time
	duration time.Duration
}

func NewPulse(d time.Duration) Pulse {
	return Pulse{duration: d}
}

// Start 從 now 開始；進行中再次觸發會重新計時
func (p *Pulse) Start(now time.Time) { p.started = now }

// Active 是否仍在進行
func (p Pulse) Active(now time.Time) bool {
	if p.started.IsZero() {
		return false
	}
	return now.Sub(p.started) < p.duration
}

// Frame 把進度映射為 n 幀中的一幀；未進行時為 0
func (p Pulse) Frame(now time.Time, n int) int {
	if n <= 0 || !p.Active(now) {
		return 0
	}
	k := float64(now.Sub(p.started)) / float64(p.duration)
	return min(int(k*float64(n)), n-1)
}
