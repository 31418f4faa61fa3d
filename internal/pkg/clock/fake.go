package clock

import (
	"container/heap"
	"sync"
	"time"
)

// Fake 可控時鐘，用於測試定時回調
// 回調只在 Advance / RunAll 中按 (到期時間, 註冊順序) 同步執行
type Fake struct {
	mu      sync.Mutex
	now     time.Time
	seq     uint64
	pending timerHeap
}

// NewFake 以指定起始時間創建假時鐘
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

// Now 返回當前模擬時間
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Schedule 在 delay 之後執行 fn
func (f *Fake) Schedule(delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	heap.Push(&f.pending, &fakeTimer{due: f.now.Add(delay), seq: f.seq, fn: fn})
}

// Advance 推進時間並執行期間到期的所有回調
// 回調中新註冊且在目標時間內到期的定時器同樣會被執行
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now.Add(d)
	f.mu.Unlock()

	for {
		f.mu.Lock()
		if f.pending.Len() == 0 || f.pending[0].due.After(target) {
			f.now = target
			f.mu.Unlock()
			return
		}
		t := heap.Pop(&f.pending).(*fakeTimer)
		f.now = t.due
		f.mu.Unlock()

		t.fn()
	}
}

// RunAll 執行所有掛起的回調直到隊列為空，返回最終的模擬時間
func (f *Fake) RunAll() time.Time {
	for {
		f.mu.Lock()
		if f.pending.Len() == 0 {
			now := f.now
			f.mu.Unlock()
			return now
		}
		next := f.pending[0].due.Sub(f.now)
		f.mu.Unlock()

		f.Advance(next)
	}
}

// Pending 掛起的定時器數量
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pending.Len()
}

type fakeTimer struct {
	due time.Time
	seq uint64
	fn  func()
}

type timerHeap []*fakeTimer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].due.Equal(h[j].due) {
		return h[i].seq < h[j].seq
	}
	return h[i].due.Before(h[j].due)
}

func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *timerHeap) Push(x any) { *h = append(*h, x.(*fakeTimer)) }

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}
