package effect

import "time"

// Point 畫布坐標，單位為字符格
type Point struct {
	X, Y float64
}

// Handle 畫布上一個可視實體的標識，由 Surface 分配
type Handle uint64

// Kind 實體類別
type Kind uint8

const (
	KindTrail Kind = iota + 1
	KindConfetti
	KindRipple
	KindMessage
)

func (k Kind) String() string {
	switch k {
	case KindTrail:
		return "trail"
	case KindConfetti:
		return "confetti"
	case KindRipple:
		return "ripple"
	case KindMessage:
		return "message"
	default:
		return "unknown"
	}
}

// Style 實體的即時外觀
type Style struct {
	Color    string // #rrggbb，空則使用主題主色
	Opacity  float64
	Scale    float64
	Rotation float64 // 角度
}

// Spec 創建實體所需的全部信息
type Spec struct {
	Kind  Kind
	Pos   Point
	Style Style
	Text  string // 僅 KindMessage 使用，Pos 為文字中心
}

// Frame 動畫關鍵幀
type Frame struct {
	Y        float64
	Rotation float64
	Opacity  float64
	Scale    float64
}

// Animation 從 From 插值到 To
type Animation struct {
	From     Frame
	To       Frame
	Duration time.Duration
	Easing   Easing
}

// Surface 渲染層提供的能力
type Surface interface {
	// Bounds 畫布寬高 (字符格)
	Bounds() (width, height float64)
	Create(spec Spec) Handle
	Restyle(h Handle, s Style)
	// Animate 動畫結束時調用 onDone 一次；實體已被銷毀則不調用
	Animate(h Handle, a Animation, onDone func())
	// Destroy 對已銷毀的實體是空操作
	Destroy(h Handle)
}

// Timer 延遲調度能力；回調在事件循環中執行
type Timer interface {
	Schedule(delay time.Duration, fn func())
}

// Random 隨機源，返回 [0,1)
type Random interface {
	Float64() float64
}
