package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Yat-Muk/stellar-ui/internal/domain/palette"
	"github.com/Yat-Muk/stellar-ui/internal/pkg/clock"
)

// cycleRandom 依次返回給定值
type cycleRandom struct {
	vals []float64
	i    int
}

func (r *cycleRandom) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func TestPaletteService_Initial(t *testing.T) {
	clk := clock.NewFake(epoch)
	svc := NewPaletteService(clk, &cycleRandom{vals: []float64{0.5, 0}}, zap.NewNop())

	for _, sw := range svc.Swatches() {
		assert.Equal(t, palette.Gradient{FromHue: 180, ToHue: 210}, sw.Gradient)
		assert.False(t, sw.Popped)
	}
	assert.Zero(t, clk.Pending())
}

func TestPaletteService_GenerateStaggered(t *testing.T) {
	clk := clock.NewFake(epoch)
	rng := &cycleRandom{vals: []float64{0, 0}}
	svc := NewPaletteService(clk, rng, zap.NewNop())

	rng.vals = []float64{0.25, 0.5}
	svc.Generate()
	assert.Equal(t, 1, svc.Generations())

	want := palette.Gradient{FromHue: 90, ToHue: 150}
	revealed := func() int {
		n := 0
		for _, sw := range svc.Swatches() {
			if sw.Gradient == want {
				n++
			}
		}
		return n
	}

	clk.Advance(0)
	assert.Equal(t, 1, revealed())
	assert.True(t, svc.Swatches()[0].Popped)
	assert.False(t, svc.Swatches()[1].Popped)

	clk.Advance(100 * time.Millisecond)
	assert.Equal(t, 2, revealed())

	clk.Advance(100 * time.Millisecond)
	assert.Equal(t, 3, revealed())
	// 第一個色塊的高亮在 200ms 時收回
	assert.False(t, svc.Swatches()[0].Popped)
	assert.True(t, svc.Swatches()[2].Popped)

	clk.Advance(100 * time.Millisecond)
	assert.Equal(t, 4, revealed())

	clk.RunAll()
	for i, sw := range svc.Swatches() {
		assert.False(t, sw.Popped, "色塊 %d", i)
	}
}

func TestPaletteService_RepeatedGenerateKeepsLatestPop(t *testing.T) {
	clk := clock.NewFake(epoch)
	svc := NewPaletteService(clk, &cycleRandom{vals: []float64{0.1}}, zap.NewNop())

	svc.Generate()
	clk.Advance(150 * time.Millisecond)
	svc.Generate()
	clk.Advance(100 * time.Millisecond)

	// 第一輪的收回定時器 (200ms) 不能關掉第二輪 (150ms) 剛開始的高亮
	assert.True(t, svc.Swatches()[0].Popped)

	clk.Advance(100 * time.Millisecond)
	assert.False(t, svc.Swatches()[0].Popped)
	assert.Equal(t, 2, svc.Generations())
}
