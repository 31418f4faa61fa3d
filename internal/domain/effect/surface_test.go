package effect

import (
	"time"

	"github.com/Yat-Muk/stellar-ui/internal/pkg/clock"
)

// fakeSurface 記錄所有調用；Animate 通過假時鐘在 Duration 後回調 onDone
type fakeSurface struct {
	clk       *clock.Fake
	width     float64
	height    float64
	next      Handle
	live      map[Handle]Spec
	styles    map[Handle][]Style
	anims     map[Handle]Animation
	created   []Handle
	destroyed []Handle
	// 同一句柄的 Destroy 調用次數
	destroyCalls map[Handle]int
}

func newFakeSurface(clk *clock.Fake) *fakeSurface {
	return &fakeSurface{
		clk:          clk,
		width:        80,
		height:       24,
		live:         make(map[Handle]Spec),
		styles:       make(map[Handle][]Style),
		anims:        make(map[Handle]Animation),
		destroyCalls: make(map[Handle]int),
	}
}

func (f *fakeSurface) Bounds() (float64, float64) { return f.width, f.height }

func (f *fakeSurface) Create(spec Spec) Handle {
	f.next++
	f.live[f.next] = spec
	f.created = append(f.created, f.next)
	return f.next
}

func (f *fakeSurface) Restyle(h Handle, s Style) {
	if _, ok := f.live[h]; !ok {
		return
	}
	f.styles[h] = append(f.styles[h], s)
}

func (f *fakeSurface) Animate(h Handle, a Animation, onDone func()) {
	f.anims[h] = a
	f.clk.Schedule(a.Duration, func() {
		if _, ok := f.live[h]; ok && onDone != nil {
			onDone()
		}
	})
}

func (f *fakeSurface) Destroy(h Handle) {
	f.destroyCalls[h]++
	if _, ok := f.live[h]; !ok {
		return
	}
	delete(f.live, h)
	f.destroyed = append(f.destroyed, h)
}

func (f *fakeSurface) liveOf(kind Kind) int {
	n := 0
	for _, spec := range f.live {
		if spec.Kind == kind {
			n++
		}
	}
	return n
}

// fixedRandom 依次返回給定值，循環使用
type fixedRandom struct {
	vals []float64
	i    int
}

func (r *fixedRandom) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

var epoch = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
