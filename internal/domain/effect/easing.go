package effect

import "math"

// Easing 將進度 t∈[0,1] 映射為插值比例
type Easing func(t float64) float64

// Linear 線性
func Linear(t float64) float64 { return clamp01(t) }

// EaseOutQuad p*(2-p)
func EaseOutQuad(t float64) float64 {
	t = clamp01(t)
	return t * (2 - t)
}

// ConfettiEasing cubic-bezier(0.25, 0.46, 0.45, 0.94)
var ConfettiEasing = CubicBezier(0.25, 0.46, 0.45, 0.94)

// Ease CSS 的 ease 關鍵字
var Ease = CubicBezier(0.25, 0.1, 0.25, 1)

// CubicBezier 構造 CSS 風格的三次貝塞爾緩動，端點固定為 (0,0) 和 (1,1)
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx

	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(s float64) float64 { return ((ax*s+bx)*s + cx) * s }
	sampleY := func(s float64) float64 { return ((ay*s+by)*s + cy) * s }
	slopeX := func(s float64) float64 { return (3*ax*s+2*bx)*s + cx }

	solve := func(x float64) float64 {
		// 牛頓迭代，斜率過小時退回二分
		s := x
		for i := 0; i < 8; i++ {
			dx := sampleX(s) - x
			if math.Abs(dx) < 1e-7 {
				return s
			}
			d := slopeX(s)
			if math.Abs(d) < 1e-6 {
				break
			}
			s -= dx / d
		}

		lo, hi := 0.0, 1.0
		s = x
		for i := 0; i < 32 && lo < hi; i++ {
			v := sampleX(s)
			if math.Abs(v-x) < 1e-7 {
				return s
			}
			if x > v {
				lo = s
			} else {
				hi = s
			}
			s = (lo + hi) / 2
		}
		return s
	}

	return func(t float64) float64 {
		t = clamp01(t)
		if t == 0 || t == 1 {
			return t
		}
		return sampleY(solve(t))
	}
}

// Lerp 按緩動後的比例插值兩幀
func Lerp(from, to Frame, k float64) Frame {
	mix := func(a, b float64) float64 { return a + (b-a)*k }
	return Frame{
		Y:        mix(from.Y, to.Y),
		Rotation: mix(from.Rotation, to.Rotation),
		Opacity:  mix(from.Opacity, to.Opacity),
		Scale:    mix(from.Scale, to.Scale),
	}
}

func clamp01(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}
