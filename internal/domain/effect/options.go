package effect

import "time"

// Options 調度器參數
type Options struct {
	TrailCapacity   int
	TrailSampleRate float64
	TrailFadeDelay  time.Duration
	TrailLifetime   time.Duration
	TrailColor      string

	ConfettiCount       int
	ConfettiInterval    time.Duration
	ConfettiMinDuration time.Duration
	ConfettiMaxDuration time.Duration

	Message         string
	MessageDuration time.Duration

	RippleLifetime time.Duration
}

// DefaultMessage 彩蛋提示
const DefaultMessage = "🎉 You found the secret! 🎉"

func DefaultOptions() Options {
	return Options{
		TrailCapacity:   10,
		TrailSampleRate: 0.05,
		TrailFadeDelay:  10 * time.Millisecond,
		TrailLifetime:   time.Second,

		ConfettiCount:       50,
		ConfettiInterval:    30 * time.Millisecond,
		ConfettiMinDuration: 2 * time.Second,
		ConfettiMaxDuration: 3 * time.Second,

		Message:         DefaultMessage,
		MessageDuration: 3 * time.Second,

		RippleLifetime: 600 * time.Millisecond,
	}
}

// 軌跡粒子的兩個視覺階段
var (
	trailAppear = Style{Opacity: 0.5, Scale: 1}
	trailFaded  = Style{Opacity: 0, Scale: 2}
)

// 彩紙從頂邊上方一格出發，落到底邊之下
const (
	confettiStartY    = -1
	confettiOvershoot = 2
	rippleMaxScale    = 4
)
