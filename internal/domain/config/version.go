package config

import (
	"fmt"

	apperrors "github.com/Yat-Muk/stellar-ui/internal/pkg/errors"
)

const (
	// ConfigVersionLatest 最新配置版本
	ConfigVersionLatest = 2

	// ConfigVersionV1 只有一行 "theme: dark" 的裸文件，等同瀏覽器版保存在
	// localStorage.theme 的那一個值。沒有 version 字段的文件按 V1 處理
	ConfigVersionV1 = 1
)

// Migrator 配置遷移器
type Migrator struct{}

// NewMigrator 創建遷移器
func NewMigrator() *Migrator {
	return &Migrator{}
}

// MigrateToLatest 自動遷移到最新版本
func (m *Migrator) MigrateToLatest(cfg *Config) (*Config, error) {
	if cfg == nil {
		return nil, fmt.Errorf("配置為空，無法遷移")
	}

	if cfg.Version == ConfigVersionLatest {
		return cfg, nil
	}

	if cfg.Version == ConfigVersionV1 || cfg.Version == 0 {
		return m.migrateV1ToV2(cfg), nil
	}

	return nil, fmt.Errorf("%w: v%d (當前程序僅支持 v%d)", apperrors.ErrConfigVersion, cfg.Version, ConfigVersionLatest)
}

// migrateV1ToV2 保留主題，其餘段落取默認值
func (m *Migrator) migrateV1ToV2(oldCfg *Config) *Config {
	newCfg := DefaultConfig()

	if theme, err := ParseTheme(string(oldCfg.Theme)); err == nil {
		newCfg.Theme = theme
	}

	return newCfg
}

// NeedsMigration 檢查是否需要遷移
func (m *Migrator) NeedsMigration(cfg *Config) bool {
	if cfg == nil {
		return false
	}
	return cfg.Version < ConfigVersionLatest
}
