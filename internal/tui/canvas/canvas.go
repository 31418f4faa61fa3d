package canvas

import (
	"math"
	"sort"
	"time"

	"github.com/Yat-Muk/stellar-ui/internal/domain/effect"
	"github.com/Yat-Muk/stellar-ui/internal/pkg/clock"
)

const (
	// TransitionDuration Restyle 的過渡時長，對應 "transition: all 1s ease"
	TransitionDuration = time.Second

	// 不透明度不高於此值的實體不繪製
	visibleOpacity = 0.05
)

// Colors 畫布使用的主題色
type Colors struct {
	Background string
	Foreground string
	Accent     string
}

type motion struct {
	anim    effect.Animation
	started time.Time
	onDone  func()
}

type transition struct {
	from    effect.Style
	to      effect.Style
	started time.Time
}

type entity struct {
	id    effect.Handle
	kind  effect.Kind
	pos   effect.Point
	style effect.Style
	text  string

	motion     *motion
	transition *transition
}

// Canvas 字符格畫布，實現 effect.Surface
//
// 動畫與過渡在 Step 中按時鐘推進，Step 由幀定時器驅動。
// 與調度器一樣只在事件循環中使用。
type Canvas struct {
	clock  clock.Clock
	width  int
	height int
	colors Colors

	next     effect.Handle
	entities map[effect.Handle]*entity
}

var _ effect.Surface = (*Canvas)(nil)

func New(clk clock.Clock, width, height int, colors Colors) *Canvas {
	c := &Canvas{
		clock:    clk,
		colors:   colors,
		entities: make(map[effect.Handle]*entity),
	}
	c.Resize(width, height)
	return c
}

// Resize 調整畫布尺寸，已有實體保留原坐標
func (c *Canvas) Resize(width, height int) {
	c.width = max(width, 1)
	c.height = max(height, 1)
}

// SetColors 切換主題色
func (c *Canvas) SetColors(colors Colors) { c.colors = colors }

func (c *Canvas) Colors() Colors { return c.colors }

func (c *Canvas) Size() (int, int) { return c.width, c.height }

// Bounds 實現 effect.Surface
func (c *Canvas) Bounds() (float64, float64) {
	return float64(c.width), float64(c.height)
}

// Create 實現 effect.Surface
func (c *Canvas) Create(spec effect.Spec) effect.Handle {
	c.next++
	c.entities[c.next] = &entity{
		id:    c.next,
		kind:  spec.Kind,
		pos:   spec.Pos,
		style: spec.Style,
		text:  spec.Text,
	}
	return c.next
}

// Restyle 從當前外觀過渡到目標外觀；顏色立即生效
func (c *Canvas) Restyle(h effect.Handle, s effect.Style) {
	e, ok := c.entities[h]
	if !ok {
		return
	}
	from := e.style
	from.Color = s.Color
	e.style = from
	e.transition = &transition{from: from, to: s, started: c.clock.Now()}
}

// Animate 實現 effect.Surface；同一實體的新動畫替換舊動畫，舊的 onDone 不再調用
func (c *Canvas) Animate(h effect.Handle, a effect.Animation, onDone func()) {
	e, ok := c.entities[h]
	if !ok {
		return
	}
	if a.Easing == nil {
		a.Easing = effect.Linear
	}
	e.motion = &motion{anim: a, started: c.clock.Now(), onDone: onDone}
	e.apply(a.From)
}

// Destroy 實現 effect.Surface，重複調用為空操作
func (c *Canvas) Destroy(h effect.Handle) {
	delete(c.entities, h)
}

// Has 實體是否存活
func (c *Canvas) Has(h effect.Handle) bool {
	_, ok := c.entities[h]
	return ok
}

// Len 存活實體數
func (c *Canvas) Len() int { return len(c.entities) }

// Animating 是否有進行中的動畫或過渡，決定是否需要下一幀
func (c *Canvas) Animating() bool {
	for _, e := range c.entities {
		if e.motion != nil || e.transition != nil {
			return true
		}
	}
	return false
}

// Step 把所有動畫推進到當前時間，返回本幀完成的動畫數
//
// 完成回調在全部實體更新之後按句柄順序執行，回調中可以安全地銷毀或創建實體。
func (c *Canvas) Step() int {
	now := c.clock.Now()
	var done []finished

	for _, e := range c.entities {
		if t := e.transition; t != nil {
			k := progress(now.Sub(t.started), TransitionDuration)
			e.style.Opacity = lerp(t.from.Opacity, t.to.Opacity, effect.Ease(k))
			e.style.Scale = lerp(t.from.Scale, t.to.Scale, effect.Ease(k))
			e.style.Rotation = lerp(t.from.Rotation, t.to.Rotation, effect.Ease(k))
			if k >= 1 {
				e.transition = nil
			}
		}

		if m := e.motion; m != nil {
			k := progress(now.Sub(m.started), m.anim.Duration)
			e.apply(effect.Lerp(m.anim.From, m.anim.To, m.anim.Easing(k)))
			if k >= 1 {
				e.motion = nil
				done = append(done, finished{id: e.id, onDone: m.onDone})
			}
		}
	}

	sort.Slice(done, func(i, j int) bool { return done[i].id < done[j].id })
	for _, f := range done {
		if f.onDone != nil {
			f.onDone()
		}
	}
	return len(done)
}

type finished struct {
	id     effect.Handle
	onDone func()
}

func (e *entity) apply(f effect.Frame) {
	e.pos.Y = f.Y
	e.style.Rotation = f.Rotation
	e.style.Opacity = f.Opacity
	e.style.Scale = f.Scale
}

func progress(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 1
	}
	return math.Min(1, math.Max(0, float64(elapsed)/float64(total)))
}

func lerp(a, b, k float64) float64 { return a + (b-a)*k }
