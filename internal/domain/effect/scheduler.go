package effect

import (
	"time"

	"github.com/Yat-Muk/stellar-ui/internal/domain/palette"
	"github.com/Yat-Muk/stellar-ui/internal/pkg/clock"
	"go.uber.org/zap"
)

// Particle 一個短暫存活的可視實體
type Particle struct {
	ID        Handle
	Kind      Kind
	SpawnedAt time.Time
	Lifetime  time.Duration
	Pos       Point
	Hue       float64
	Rotation  float64

	removed bool
}

// Removed 是否已從畫布移除
func (p *Particle) Removed() bool { return p.removed }

// Stats 累計計數
type Stats struct {
	TrailSpawned    int
	ConfettiSpawned int
	RipplesSpawned  int
	Celebrations    int
	Evicted         int
	Removed         int
}

// Scheduler 把觸發事件轉化為有時限的粒子
//
// 所有方法與回調都必須在同一個事件循環中執行，Scheduler 不是並發安全的。
type Scheduler struct {
	opts    Options
	surface Surface
	timer   Timer
	clock   clock.Clock
	rng     Random
	log     *zap.Logger

	trail    *ActiveSet
	confetti map[Handle]*Particle
	ripples  map[Handle]*Particle
	messages map[Handle]*Particle

	stats Stats
}

// NewScheduler 創建調度器
func NewScheduler(surface Surface, timer Timer, clk clock.Clock, rng Random, opts Options, log *zap.Logger) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.TrailCapacity < 1 {
		opts.TrailCapacity = 1
	}
	if opts.ConfettiMaxDuration < opts.ConfettiMinDuration {
		opts.ConfettiMaxDuration = opts.ConfettiMinDuration
	}
	return &Scheduler{
		opts:     opts,
		surface:  surface,
		timer:    timer,
		clock:    clk,
		rng:      rng,
		log:      log.Named("effect"),
		trail:    NewActiveSet(),
		confetti: make(map[Handle]*Particle),
		ripples:  make(map[Handle]*Particle),
		messages: make(map[Handle]*Particle),
	}
}

// SetTrailColor 主題切換後更新軌跡顏色，只影響之後生成的粒子
func (s *Scheduler) SetTrailColor(hex string) {
	s.opts.TrailColor = hex
}

// ==========================================
// 軌跡模式
// ==========================================

// PointerMoved 按採樣率決定是否在指針處生成軌跡粒子
func (s *Scheduler) PointerMoved(p Point) bool {
	if s.rng.Float64() >= s.opts.TrailSampleRate {
		return false
	}
	s.SpawnTrail(p)
	return true
}

// SpawnTrail 生成一個軌跡粒子；滿員時先淘汰最舊的
func (s *Scheduler) SpawnTrail(at Point) Handle {
	for s.trail.Len() >= s.opts.TrailCapacity {
		oldest := s.trail.PopOldest()
		s.destroy(oldest)
		s.stats.Evicted++
		s.log.Debug("軌跡粒子已淘汰", zap.Uint64("handle", uint64(oldest.ID)))
	}

	style := trailAppear
	style.Color = s.opts.TrailColor

	h := s.surface.Create(Spec{Kind: KindTrail, Pos: at, Style: style})
	p := &Particle{
		ID:        h,
		Kind:      KindTrail,
		SpawnedAt: s.clock.Now(),
		Lifetime:  s.opts.TrailLifetime,
		Pos:       at,
	}
	s.trail.Push(p)
	s.stats.TrailSpawned++

	s.timer.Schedule(s.opts.TrailFadeDelay, func() {
		if p.removed {
			return
		}
		faded := trailFaded
		faded.Color = style.Color
		s.surface.Restyle(h, faded)
	})
	s.timer.Schedule(s.opts.TrailLifetime, func() {
		s.trail.Remove(p.ID)
		s.destroy(p)
	})

	return h
}

// ==========================================
// 彩紙模式
// ==========================================

// Celebrate 序列匹配後的慶祝效果：錯開生成彩紙並顯示提示文字
func (s *Scheduler) Celebrate() {
	s.stats.Celebrations++
	s.log.Info("觸發彩蛋",
		zap.Int("confetti", s.opts.ConfettiCount),
		zap.Int("celebrations", s.stats.Celebrations),
	)

	for i := 0; i < s.opts.ConfettiCount; i++ {
		s.timer.Schedule(time.Duration(i)*s.opts.ConfettiInterval, s.spawnConfetti)
	}
	s.showMessage()
}

func (s *Scheduler) spawnConfetti() {
	width, height := s.surface.Bounds()

	x := s.rng.Float64() * width
	hue := s.rng.Float64() * 360
	rotation := s.rng.Float64() * 360
	spin := s.rng.Float64() * 720
	span := s.opts.ConfettiMaxDuration - s.opts.ConfettiMinDuration
	duration := s.opts.ConfettiMinDuration + time.Duration(s.rng.Float64()*float64(span))

	at := Point{X: x, Y: confettiStartY}
	h := s.surface.Create(Spec{
		Kind: KindConfetti,
		Pos:  at,
		Style: Style{
			Color:    palette.Hue(hue),
			Opacity:  1,
			Scale:    1,
			Rotation: rotation,
		},
	})

	p := &Particle{
		ID:        h,
		Kind:      KindConfetti,
		SpawnedAt: s.clock.Now(),
		Lifetime:  duration,
		Pos:       at,
		Hue:       hue,
		Rotation:  rotation,
	}
	s.confetti[h] = p
	s.stats.ConfettiSpawned++

	s.surface.Animate(h, Animation{
		From:     Frame{Y: confettiStartY, Rotation: 0, Opacity: 1, Scale: 1},
		To:       Frame{Y: confettiStartY + height + confettiOvershoot, Rotation: spin, Opacity: 0, Scale: 1},
		Duration: duration,
		Easing:   ConfettiEasing,
	}, func() {
		delete(s.confetti, p.ID)
		s.destroy(p)
	})
}

func (s *Scheduler) showMessage() {
	width, height := s.surface.Bounds()
	at := Point{X: width / 2, Y: height / 2}

	h := s.surface.Create(Spec{
		Kind:  KindMessage,
		Pos:   at,
		Text:  s.opts.Message,
		Style: Style{Opacity: 1, Scale: 1},
	})
	p := &Particle{
		ID:        h,
		Kind:      KindMessage,
		SpawnedAt: s.clock.Now(),
		Lifetime:  s.opts.MessageDuration,
		Pos:       at,
	}
	s.messages[h] = p

	s.timer.Schedule(s.opts.MessageDuration, func() {
		delete(s.messages, p.ID)
		s.destroy(p)
	})
}

// ==========================================
// 漣漪
// ==========================================

// Ripple 點擊處擴散的圓環，固定時長後移除
func (s *Scheduler) Ripple(at Point) Handle {
	h := s.surface.Create(Spec{
		Kind:  KindRipple,
		Pos:   at,
		Style: Style{Color: s.opts.TrailColor, Opacity: 1, Scale: 0},
	})
	p := &Particle{
		ID:        h,
		Kind:      KindRipple,
		SpawnedAt: s.clock.Now(),
		Lifetime:  s.opts.RippleLifetime,
		Pos:       at,
	}
	s.ripples[h] = p
	s.stats.RipplesSpawned++

	s.surface.Animate(h, Animation{
		From:     Frame{Y: at.Y, Opacity: 1, Scale: 0},
		To:       Frame{Y: at.Y, Opacity: 0, Scale: rippleMaxScale},
		Duration: s.opts.RippleLifetime,
		Easing:   Linear,
	}, nil)
	s.timer.Schedule(s.opts.RippleLifetime, func() {
		delete(s.ripples, p.ID)
		s.destroy(p)
	})

	return h
}

// ==========================================
// 查詢
// ==========================================

// destroy 冪等移除
func (s *Scheduler) destroy(p *Particle) {
	if p == nil || p.removed {
		return
	}
	p.removed = true
	s.surface.Destroy(p.ID)
	s.stats.Removed++
}

// TrailHandles 軌跡集合的插入順序快照
func (s *Scheduler) TrailHandles() []Handle { return s.trail.Handles() }

func (s *Scheduler) LiveTrail() int    { return s.trail.Len() }
func (s *Scheduler) LiveConfetti() int { return len(s.confetti) }
func (s *Scheduler) LiveMessages() int { return len(s.messages) }
func (s *Scheduler) LiveRipples() int  { return len(s.ripples) }

// Live 所有存活實體數
func (s *Scheduler) Live() int {
	return s.LiveTrail() + s.LiveConfetti() + s.LiveMessages() + s.LiveRipples()
}

func (s *Scheduler) Stats() Stats { return s.stats }

// Options 當前參數
func (s *Scheduler) Options() Options { return s.opts }
