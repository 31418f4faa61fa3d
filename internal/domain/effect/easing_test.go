package effect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCubicBezier_Endpoints(t *testing.T) {
	for _, e := range []Easing{Linear, EaseOutQuad, ConfettiEasing, Ease} {
		assert.Equal(t, 0.0, e(0))
		assert.Equal(t, 1.0, e(1))
		assert.Equal(t, 0.0, e(-0.5))
		assert.Equal(t, 1.0, e(1.5))
	}
}

func TestCubicBezier_LinearControlPoints(t *testing.T) {
	e := CubicBezier(1.0/3, 1.0/3, 2.0/3, 2.0/3)
	for _, x := range []float64{0.1, 0.25, 0.5, 0.9} {
		assert.InDelta(t, x, e(x), 1e-6)
	}
}

func TestConfettiEasing_Shape(t *testing.T) {
	// ease-out 類曲線：單調遞增且前半段快於線性
	prev := 0.0
	for i := 1; i <= 100; i++ {
		x := float64(i) / 100
		y := ConfettiEasing(x)
		assert.GreaterOrEqual(t, y, prev)
		prev = y
	}
	assert.Greater(t, ConfettiEasing(0.5), 0.5)
	assert.InDelta(t, 0.7, ConfettiEasing(0.5), 0.1)
}

func TestEase_MatchesCSS(t *testing.T) {
	// 瀏覽器中 ease 在 0.5 處約為 0.8024
	assert.InDelta(t, 0.8024, Ease(0.5), 0.005)
	assert.Less(t, Ease(0.1), 0.2)
}

func TestEaseOutQuad(t *testing.T) {
	assert.InDelta(t, 0.75, EaseOutQuad(0.5), 1e-12)
	assert.InDelta(t, 0.19, EaseOutQuad(0.1), 1e-12)
}

func TestLerp(t *testing.T) {
	from := Frame{Y: -1, Rotation: 0, Opacity: 1, Scale: 1}
	to := Frame{Y: 25, Rotation: 360, Opacity: 0, Scale: 1}

	mid := Lerp(from, to, 0.5)
	assert.Equal(t, Frame{Y: 12, Rotation: 180, Opacity: 0.5, Scale: 1}, mid)
	assert.Equal(t, from, Lerp(from, to, 0))
	assert.Equal(t, to, Lerp(from, to, 1))
}
