package palette

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// 所有隨機色使用同一飽和度與亮度：hsl(h, 70%, 60%)
	Saturation = 0.70
	Lightness  = 0.60
)

// Random 隨機源，返回 [0,1)
type Random interface {
	Float64() float64
}

// HSL 轉換為 #rrggbb，h 取模 360
func HSL(h, s, l float64) string {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return colorful.Hsl(h, s, l).Clamped().Hex()
}

// Hue 固定飽和度與亮度的色相色
func Hue(h float64) string {
	return HSL(h, Saturation, Lightness)
}

// Gradient 兩端點的色相漸變
type Gradient struct {
	FromHue int
	ToHue   int
}

func (g Gradient) From() string { return Hue(float64(g.FromHue)) }
func (g Gradient) To() string   { return Hue(float64(g.ToHue)) }

// At 沿漸變在 t∈[0,1] 處取色，在 HCL 空間混合避免中段發灰
func (g Gradient) At(t float64) string {
	if t <= 0 {
		return g.From()
	}
	if t >= 1 {
		return g.To()
	}
	a, _ := colorful.Hex(g.From())
	b, _ := colorful.Hex(g.To())
	return a.BlendHcl(b, t).Clamped().Hex()
}

func (g Gradient) String() string {
	return fmt.Sprintf("linear-gradient(135deg, hsl(%d, 70%%, 60%%) 0%%, hsl(%d, 70%%, 60%%) 100%%)", g.FromHue, g.ToHue)
}

// RandomGradient 第二色相與第一色相相隔 30~89 度
func RandomGradient(r Random) Gradient {
	h1 := int(math.Floor(r.Float64() * 360))
	h2 := (h1 + 30 + int(math.Floor(r.Float64()*60))) % 360
	return Gradient{FromHue: h1, ToHue: h2}
}

// Blend 將前景色按不透明度混向背景色，用於模擬終端中的透明度
func Blend(fg, bg string, opacity float64) string {
	f, err := colorful.Hex(fg)
	if err != nil {
		return fg
	}
	b, err := colorful.Hex(bg)
	if err != nil {
		return fg
	}
	opacity = math.Max(0, math.Min(1, opacity))
	return b.BlendRgb(f, opacity).Clamped().Hex()
}
