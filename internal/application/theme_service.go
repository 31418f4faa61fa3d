package application

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Yat-Muk/stellar-ui/internal/domain/config"
)

// ThemeService 明暗主題切換與持久化
type ThemeService struct {
	configSvc *ConfigService
	logger    *zap.Logger

	// saveMu 串行化 "切換 + 保存"，連續切換按順序落盤
	saveMu sync.Mutex

	mu      sync.RWMutex
	current config.Theme
}

// NewThemeService initial 為啟動時從配置讀到的主題
func NewThemeService(configSvc *ConfigService, initial config.Theme, logger *zap.Logger) *ThemeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if t, err := config.ParseTheme(initial.String()); err == nil {
		initial = t
	} else {
		initial = config.ThemeLight
	}
	return &ThemeService{
		configSvc: configSvc,
		logger:    logger.Named("theme"),
		current:   initial,
	}
}

// Current 當前主題
func (s *ThemeService) Current() config.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Toggle 切換主題並保存。保存失敗時返回錯誤，但內存中的切換保留
func (s *ThemeService) Toggle(ctx context.Context) (config.Theme, error) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	next := s.current.Toggle()
	s.current = next
	s.mu.Unlock()

	s.logger.Info("主題已切換", zap.String("theme", next.String()))

	if err := s.persist(ctx); err != nil {
		s.logger.Warn("主題保存失敗", zap.String("theme", next.String()), zap.Error(err))
		return next, err
	}
	return next, nil
}

// persist 寫入保存時刻的當前主題
func (s *ThemeService) persist(ctx context.Context) error {
	if s.configSvc == nil {
		return nil
	}
	return s.configSvc.UpdateConfig(ctx, func(c *config.Config) error {
		c.Theme = s.Current()
		return nil
	})
}
