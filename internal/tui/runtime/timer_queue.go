package runtime

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TimerFiredMsg 定時器到期，回到 Update 中執行對應回調
type TimerFiredMsg struct {
	ID uint64
}

// TimerQueue 把 Schedule 調用轉換為 bubbletea 的 Tick 命令
//
// Schedule 只登記；Router 在每次 Update 之後調用 Flush 取走命令。
// 回調總在 Update 所在的 goroutine 中執行，因此不需要加鎖。
type TimerQueue struct {
	nextID   uint64
	pending  []uint64
	delays   map[uint64]time.Duration
	handlers map[uint64]func()
}

func NewTimerQueue() *TimerQueue {
	return &TimerQueue{
		delays:   make(map[uint64]time.Duration),
		handlers: make(map[uint64]func()),
	}
}

// Schedule 實現 effect.Timer
func (q *TimerQueue) Schedule(delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}
	q.nextID++
	id := q.nextID
	q.pending = append(q.pending, id)
	q.delays[id] = delay
	q.handlers[id] = fn
}

// Flush 為所有新登記的定時器生成 Tick 命令
func (q *TimerQueue) Flush() tea.Cmd {
	if len(q.pending) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, 0, len(q.pending))
	for _, id := range q.pending {
		cmds = append(cmds, tick(id, q.delays[id]))
		delete(q.delays, id)
	}
	q.pending = q.pending[:0]

	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

func tick(id uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return TimerFiredMsg{ID: id}
	})
}

// Fire 執行並遺忘回調；未知或已執行的 ID 返回 false
func (q *TimerQueue) Fire(id uint64) bool {
	fn, ok := q.handlers[id]
	if !ok {
		return false
	}
	delete(q.handlers, id)
	if fn != nil {
		fn()
	}
	return true
}

// Pending 尚未執行的定時器數 (包括已 Flush 的)
func (q *TimerQueue) Pending() int { return len(q.handlers) }
