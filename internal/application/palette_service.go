package application

import (
	"time"

	"go.uber.org/zap"

	"github.com/Yat-Muk/stellar-ui/internal/domain/effect"
	"github.com/Yat-Muk/stellar-ui/internal/domain/palette"
)

const (
	// PaletteSize 色塊數量
	PaletteSize = 4

	paletteStagger  = 100 * time.Millisecond
	paletteDuration = 200 * time.Millisecond
)

// Swatch 一個色塊
type Swatch struct {
	Gradient palette.Gradient
	// Popped 剛換色後的 200ms 內為 true，用於放大高亮
	Popped bool

	popToken int
}

// PaletteService 隨機漸變色板，換色按色塊順序錯開 100ms
type PaletteService struct {
	timer  effect.Timer
	rng    palette.Random
	logger *zap.Logger

	swatches    [PaletteSize]Swatch
	generations int
}

// NewPaletteService 初始色板立即生成，不做動畫
func NewPaletteService(timer effect.Timer, rng palette.Random, logger *zap.Logger) *PaletteService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &PaletteService{
		timer:  timer,
		rng:    rng,
		logger: logger.Named("palette"),
	}
	for i := range s.swatches {
		s.swatches[i].Gradient = palette.RandomGradient(rng)
	}
	return s
}

// Generate 重新生成所有色塊
func (s *PaletteService) Generate() {
	s.generations++
	s.logger.Debug("生成色板", zap.Int("generation", s.generations))

	for i := range s.swatches {
		idx := i
		s.timer.Schedule(time.Duration(idx)*paletteStagger, func() {
			s.reveal(idx)
		})
	}
}

func (s *PaletteService) reveal(i int) {
	sw := &s.swatches[i]
	sw.Gradient = palette.RandomGradient(s.rng)
	sw.Popped = true
	sw.popToken++

	token := sw.popToken
	s.timer.Schedule(paletteDuration, func() {
		// 期間再次換色則由後一次負責收回
		if s.swatches[i].popToken == token {
			s.swatches[i].Popped = false
		}
	})
}

// Swatches 色塊快照
func (s *PaletteService) Swatches() [PaletteSize]Swatch { return s.swatches }

// Generations 已觸發的換色次數
func (s *PaletteService) Generations() int { return s.generations }
