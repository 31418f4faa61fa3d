package effect

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/Yat-Muk/stellar-ui/internal/domain/palette"
	"github.com/Yat-Muk/stellar-ui/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestScheduler(t *testing.T, rng Random) (*Scheduler, *fakeSurface, *clock.Fake) {
	t.Helper()
	clk := clock.NewFake(epoch)
	surface := newFakeSurface(clk)
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 2))
	}
	s := NewScheduler(surface, clk, clk, rng, DefaultOptions(), zap.NewNop())
	return s, surface, clk
}

// ==========================================
// 軌跡模式
// ==========================================

func TestSpawnTrail_CapacityNeverExceeded(t *testing.T) {
	s, surface, clk := newTestScheduler(t, nil)

	for i := 0; i < 37; i++ {
		s.SpawnTrail(Point{X: float64(i), Y: 1})
		assert.LessOrEqual(t, s.LiveTrail(), 10, "第 %d 次生成後", i)
		assert.LessOrEqual(t, surface.liveOf(KindTrail), 10)
		clk.Advance(7 * time.Millisecond)
	}
	assert.Equal(t, 37, s.Stats().TrailSpawned)
}

func TestSpawnTrail_FIFOEviction(t *testing.T) {
	s, surface, _ := newTestScheduler(t, nil)

	var handles []Handle
	for i := 0; i < 10; i++ {
		handles = append(handles, s.SpawnTrail(Point{X: float64(i)}))
	}
	assert.Equal(t, handles, s.TrailHandles())

	h11 := s.SpawnTrail(Point{X: 10})
	assert.Equal(t, []Handle{handles[0]}, surface.destroyed, "最早的粒子先被淘汰")
	assert.Equal(t, append(handles[1:], h11), s.TrailHandles())

	h12 := s.SpawnTrail(Point{X: 11})
	assert.Equal(t, []Handle{handles[0], handles[1]}, surface.destroyed)
	assert.Equal(t, append(append([]Handle{}, handles[2:]...), h11, h12), s.TrailHandles())
	assert.Equal(t, 2, s.Stats().Evicted)
}

func TestSpawnTrail_Timeline(t *testing.T) {
	s, surface, clk := newTestScheduler(t, nil)
	s.SetTrailColor("#667eea")

	h := s.SpawnTrail(Point{X: 3, Y: 4})
	spec := surface.live[h]
	assert.Equal(t, KindTrail, spec.Kind)
	assert.Equal(t, Point{X: 3, Y: 4}, spec.Pos)
	assert.Equal(t, Style{Color: "#667eea", Opacity: 0.5, Scale: 1}, spec.Style)

	clk.Advance(9 * time.Millisecond)
	assert.Empty(t, surface.styles[h])

	clk.Advance(1 * time.Millisecond)
	require.Len(t, surface.styles[h], 1)
	assert.Equal(t, Style{Color: "#667eea", Opacity: 0, Scale: 2}, surface.styles[h][0])

	clk.Advance(989 * time.Millisecond)
	assert.Equal(t, 1, s.LiveTrail())

	clk.Advance(1 * time.Millisecond)
	assert.Equal(t, 0, s.LiveTrail())
	assert.Equal(t, []Handle{h}, surface.destroyed)
}

func TestSpawnTrail_EvictedTimerIsNoop(t *testing.T) {
	s, surface, clk := newTestScheduler(t, nil)

	first := s.SpawnTrail(Point{})
	for i := 0; i < 10; i++ {
		s.SpawnTrail(Point{X: float64(i + 1)})
	}
	require.Equal(t, []Handle{first}, surface.destroyed)
	survivors := s.TrailHandles()

	// 被淘汰粒子的淡出與移除回調仍會觸發，但不能影響其他成員
	clk.Advance(10 * time.Millisecond)
	assert.Empty(t, surface.styles[first])
	assert.Equal(t, survivors, s.TrailHandles())

	clk.RunAll()
	assert.Equal(t, 1, surface.destroyCalls[first], "移除只發生一次")
	assert.Equal(t, 0, s.LiveTrail())
	assert.Equal(t, 11, s.Stats().Removed)
}

func TestPointerMoved_Sampling(t *testing.T) {
	rng := &fixedRandom{vals: []float64{0.5, 0.049, 0.05, 0.9, 0.0}}
	s, _, _ := newTestScheduler(t, rng)

	var spawned []bool
	for i := 0; i < 5; i++ {
		spawned = append(spawned, s.PointerMoved(Point{X: 1, Y: 1}))
	}
	assert.Equal(t, []bool{false, true, false, false, true}, spawned)
	assert.Equal(t, 2, s.LiveTrail())
}

func TestPointerMoved_RateIsApproximatelyFivePercent(t *testing.T) {
	s, _, clk := newTestScheduler(t, rand.New(rand.NewPCG(42, 7)))

	const moves = 20000
	for i := 0; i < moves; i++ {
		s.PointerMoved(Point{X: 1, Y: 1})
		if i%50 == 0 {
			clk.Advance(time.Second)
		}
	}
	rate := float64(s.Stats().TrailSpawned) / moves
	assert.InDelta(t, 0.05, rate, 0.01)
}

// ==========================================
// 彩紙模式
// ==========================================

func TestCelebrate_SpawnsFiftyStaggered(t *testing.T) {
	s, surface, clk := newTestScheduler(t, nil)

	s.Celebrate()
	assert.Equal(t, 1, s.LiveMessages(), "提示文字立即顯示")
	assert.Equal(t, 0, s.Stats().ConfettiSpawned, "生成總是經由定時器")

	clk.Advance(0)
	assert.Equal(t, 1, s.Stats().ConfettiSpawned, "第一片在 0ms 生成")

	clk.Advance(30 * time.Millisecond)
	assert.Equal(t, 2, s.Stats().ConfettiSpawned)

	clk.Advance(48 * 30 * time.Millisecond)
	assert.Equal(t, 50, s.Stats().ConfettiSpawned)

	clk.Advance(time.Hour)
	assert.Equal(t, 50, s.Stats().ConfettiSpawned)
	assert.Equal(t, 0, s.LiveConfetti())
	assert.Equal(t, 0, surface.liveOf(KindConfetti))
}

func TestCelebrate_ConfettiAnimation(t *testing.T) {
	// x, hue, rotation, spin, duration
	rng := &fixedRandom{vals: []float64{0.25, 0.5, 0.1, 0.5, 0.5}}
	s, surface, clk := newTestScheduler(t, rng)

	s.Celebrate()
	clk.Advance(0)
	var confetti Handle
	for h, spec := range surface.live {
		if spec.Kind == KindConfetti {
			confetti = h
		}
	}
	require.NotZero(t, confetti)

	spec := surface.live[confetti]
	assert.Equal(t, Point{X: 20, Y: -1}, spec.Pos)
	assert.InDelta(t, 36, spec.Style.Rotation, 1e-9)
	assert.Equal(t, 1.0, spec.Style.Opacity)
	assert.Equal(t, palette.Hue(180), spec.Style.Color)

	anim := surface.anims[confetti]
	assert.Equal(t, 2500*time.Millisecond, anim.Duration)
	assert.Equal(t, Frame{Y: -1, Rotation: 0, Opacity: 1, Scale: 1}, anim.From)
	assert.Equal(t, Frame{Y: 25, Rotation: 360, Opacity: 0, Scale: 1}, anim.To)

	// 完成通知觸發移除，而不是固定計時
	clk.Advance(2499 * time.Millisecond)
	_, alive := surface.live[confetti]
	assert.True(t, alive)
	clk.Advance(time.Millisecond)
	_, alive = surface.live[confetti]
	assert.False(t, alive)
}

func TestCelebrate_DurationRange(t *testing.T) {
	s, surface, clk := newTestScheduler(t, rand.New(rand.NewPCG(9, 9)))

	s.Celebrate()
	clk.Advance(49 * 30 * time.Millisecond)

	count := 0
	for h, spec := range surface.live {
		if spec.Kind != KindConfetti {
			continue
		}
		count++
		d := surface.anims[h].Duration
		assert.GreaterOrEqual(t, d, 2*time.Second)
		assert.Less(t, d, 3*time.Second)
	}
	assert.Equal(t, 50, count, "最早的彩紙至少還需 2s-1.47s 才落地")
}

func TestCelebrate_MessageRemovedAfterExactlyThreeSeconds(t *testing.T) {
	s, surface, clk := newTestScheduler(t, nil)

	s.Celebrate()
	var msg Handle
	for h, spec := range surface.live {
		if spec.Kind == KindMessage {
			msg = h
		}
	}
	require.NotZero(t, msg)
	assert.Equal(t, DefaultMessage, surface.live[msg].Text)
	assert.Equal(t, Point{X: 40, Y: 12}, surface.live[msg].Pos)

	clk.Advance(2999 * time.Millisecond)
	assert.Equal(t, 1, s.LiveMessages())

	clk.Advance(time.Millisecond)
	assert.Equal(t, 0, s.LiveMessages())
	_, alive := surface.live[msg]
	assert.False(t, alive)
}

func TestCelebrate_OverlappingTriggers(t *testing.T) {
	s, _, clk := newTestScheduler(t, nil)

	s.Celebrate()
	clk.Advance(500 * time.Millisecond)
	s.Celebrate()
	assert.Equal(t, 2, s.LiveMessages())

	clk.Advance(49 * 30 * time.Millisecond)
	assert.Equal(t, 100, s.Stats().ConfettiSpawned, "每次觸發都完整生成 50 片")
	assert.Equal(t, 2, s.Stats().Celebrations)

	clk.RunAll()
	assert.Equal(t, 0, s.Live())
}

func TestCelebrate_NoCapOnConfetti(t *testing.T) {
	s, _, clk := newTestScheduler(t, nil)

	for i := 0; i < 20; i++ {
		s.SpawnTrail(Point{})
	}
	s.Celebrate()
	clk.Advance(49 * 30 * time.Millisecond)

	assert.Equal(t, 50, s.LiveConfetti())
	assert.LessOrEqual(t, s.LiveTrail(), 10)
}

func TestCelebrate_LogsTrigger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	clk := clock.NewFake(epoch)
	s := NewScheduler(newFakeSurface(clk), clk, clk, rand.New(rand.NewPCG(1, 1)), DefaultOptions(), zap.New(core))

	s.Celebrate()
	entries := logs.FilterMessage("觸發彩蛋").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(50), entries[0].ContextMap()["confetti"])
}

// ==========================================
// 漣漪與整體
// ==========================================

func TestRipple_FixedLifetime(t *testing.T) {
	s, surface, clk := newTestScheduler(t, nil)

	h := s.Ripple(Point{X: 5, Y: 5})
	assert.Equal(t, KindRipple, surface.live[h].Kind)
	assert.Equal(t, 1, s.LiveRipples())
	assert.Equal(t, 0, s.LiveTrail(), "漣漪不屬於軌跡集合")

	clk.Advance(599 * time.Millisecond)
	assert.Equal(t, 1, s.LiveRipples())
	clk.Advance(time.Millisecond)
	assert.Equal(t, 0, s.LiveRipples())
	assert.Equal(t, 1, surface.destroyCalls[h])
}

func TestEveryEntityEventuallyRemoved(t *testing.T) {
	s, surface, clk := newTestScheduler(t, rand.New(rand.NewPCG(3, 4)))

	for i := 0; i < 400; i++ {
		s.PointerMoved(Point{X: float64(i % 80), Y: float64(i % 24)})
		if i%100 == 0 {
			s.Celebrate()
			s.Ripple(Point{X: 1, Y: 1})
		}
		clk.Advance(5 * time.Millisecond)
	}

	clk.RunAll()
	assert.Equal(t, 0, s.Live())
	assert.Empty(t, surface.live)

	st := s.Stats()
	assert.Equal(t, st.TrailSpawned+st.ConfettiSpawned+st.RipplesSpawned+st.Celebrations, st.Removed)
	for h, n := range surface.destroyCalls {
		assert.Equal(t, 1, n, "handle %d", h)
	}
}

func TestNewScheduler_Normalises(t *testing.T) {
	clk := clock.NewFake(epoch)
	opts := DefaultOptions()
	opts.TrailCapacity = 0
	opts.ConfettiMaxDuration = time.Second

	s := NewScheduler(newFakeSurface(clk), clk, clk, rand.New(rand.NewPCG(1, 1)), opts, nil)
	assert.Equal(t, 1, s.Options().TrailCapacity)
	assert.Equal(t, opts.ConfettiMinDuration, s.Options().ConfettiMaxDuration)
}
