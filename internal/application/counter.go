package application

import (
	"math"
	"time"

	"github.com/Yat-Muk/stellar-ui/internal/domain/effect"
	"github.com/Yat-Muk/stellar-ui/internal/pkg/clock"
)

// CounterTween 計數器數字過渡時長
const CounterTween = 500 * time.Millisecond

// Counter 帶緩動顯示的計數器
//
// 目標值立即更新；顯示值從變化時刻正在顯示的數字出發，
// 按 easeOutQuad 向下取整插值，結束時精確等於目標值。
type Counter struct {
	clock clock.Clock

	value   int
	from    int
	started time.Time
}

func NewCounter(clk clock.Clock) *Counter {
	return &Counter{clock: clk}
}

// Increment 加一並返回新的目標值
func (c *Counter) Increment() int {
	c.retarget(c.value + 1)
	return c.value
}

// Reset 歸零
func (c *Counter) Reset() {
	c.retarget(0)
}

func (c *Counter) retarget(v int) {
	now := c.clock.Now()
	c.from = c.displayAt(now)
	c.value = v
	c.started = now
}

// Value 目標值
func (c *Counter) Value() int { return c.value }

// Display 當前應顯示的數字
func (c *Counter) Display() int { return c.displayAt(c.clock.Now()) }

// Animating 過渡是否仍在進行
func (c *Counter) Animating() bool {
	if c.started.IsZero() {
		return false
	}
	return c.clock.Now().Sub(c.started) < CounterTween
}

func (c *Counter) displayAt(now time.Time) int {
	if c.started.IsZero() {
		return c.value
	}
	p := float64(now.Sub(c.started)) / float64(CounterTween)
	if p >= 1 {
		return c.value
	}
	eased := effect.EaseOutQuad(p)
	return int(math.Floor(float64(c.from) + float64(c.value-c.from)*eased))
}
