package application

import (
	"go.uber.org/zap"

	"github.com/Yat-Muk/stellar-ui/internal/domain/effect"
	"github.com/Yat-Muk/stellar-ui/internal/domain/sequence"
)

// InteractionService 把原始輸入分發到序列匹配器與效果調度器
//
// 匹配器的回調應已綁定到 effects.Celebrate，這裡只負責輸入轉換與記錄。
// 與兩者一樣，只應在事件循環中調用。
type InteractionService struct {
	matcher *sequence.Matcher
	effects *effect.Scheduler
	logger  *zap.Logger

	matches int
}

// NewInteractionService 創建交互服務
func NewInteractionService(matcher *sequence.Matcher, effects *effect.Scheduler, logger *zap.Logger) *InteractionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InteractionService{
		matcher: matcher,
		effects: effects,
		logger:  logger.Named("interaction"),
	}
}

// HandleKey 按鍵名送入匹配器，完成匹配時返回 true
func (s *InteractionService) HandleKey(key string) bool {
	before := s.matcher.Progress()
	matched := s.matcher.Feed(sequence.ParseKey(key))

	if matched {
		s.matches++
		s.logger.Info("序列匹配成功", zap.Int("matches", s.matches))
		return true
	}
	if before > 0 && s.matcher.Progress() == 0 {
		s.logger.Debug("序列中斷", zap.String("key", key), zap.Int("progress", before))
	}
	return false
}

// HandlePointer 指針移動，可能生成軌跡粒子
func (s *InteractionService) HandlePointer(p effect.Point) bool {
	return s.effects.PointerMoved(p)
}

// HandleClick 點擊處生成漣漪
func (s *InteractionService) HandleClick(p effect.Point) effect.Handle {
	return s.effects.Ripple(p)
}

// Progress 當前進度與序列總長
func (s *InteractionService) Progress() (int, int) {
	return s.matcher.Progress(), s.matcher.Len()
}

// Matches 本次運行的匹配次數
func (s *InteractionService) Matches() int { return s.matches }

// Effects 底層調度器
func (s *InteractionService) Effects() *effect.Scheduler { return s.effects }
