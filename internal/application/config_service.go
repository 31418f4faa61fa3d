package application

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/Yat-Muk/stellar-ui/internal/domain/config"
)

// ConfigService 配置服務
type ConfigService struct {
	repo   config.Repository
	logger *zap.Logger
	mu     sync.Mutex
}

// NewConfigService 創建配置服務
func NewConfigService(repo config.Repository, logger *zap.Logger) *ConfigService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConfigService{
		repo:   repo,
		logger: logger,
	}
}

// GetConfig 獲取當前配置
func (s *ConfigService) GetConfig(ctx context.Context) (*config.Config, error) {
	return s.repo.Load(ctx)
}

// LoadOrDefault 加載失敗時回退默認配置，錯誤仍然返回供界面提示
func (s *ConfigService) LoadOrDefault(ctx context.Context) (*config.Config, error) {
	cfg, err := s.repo.Load(ctx)
	if err != nil {
		s.logger.Warn("加載配置失敗，使用默認值", zap.Error(err))
		return config.DefaultConfig(), err
	}
	return cfg, nil
}

// UpdateConfig 原子更新配置
// Lock -> Load -> DeepCopy -> Modify -> Validate -> Save -> Unlock
func (s *ConfigService) UpdateConfig(ctx context.Context, modifier func(*config.Config) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("加載配置失敗: %w", err)
	}

	next := current.DeepCopy()
	if err := modifier(next); err != nil {
		return fmt.Errorf("應用配置修改失敗: %w", err)
	}

	if err := next.Validate(); err != nil {
		return fmt.Errorf("新配置驗證失敗: %w", err)
	}

	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("保存配置失敗: %w", err)
	}

	s.logger.Debug("配置已更新並保存")
	return nil
}
