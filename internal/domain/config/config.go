package config

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Yat-Muk/stellar-ui/internal/domain/effect"
	apperrors "github.com/Yat-Muk/stellar-ui/internal/pkg/errors"
)

// Repository 配置倉庫接口
type Repository interface {
	// Load 加載配置
	Load(ctx context.Context) (*Config, error)

	// Save 保存配置
	Save(ctx context.Context, cfg *Config) error
}

// Config 主配置結構，同時承擔持久化的界面狀態 (主題)
type Config struct {
	Version int           `yaml:"version"`
	Theme   Theme         `yaml:"theme"`
	Log     LogConfig     `yaml:"log"`
	Effects EffectsConfig `yaml:"effects"`
	Contact ContactConfig `yaml:"contact"`
}

// LogConfig 日誌配置
type LogConfig struct {
	Level      string `yaml:"level"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
	Compress   bool   `yaml:"compress"`
}

// EffectsConfig 粒子效果參數
type EffectsConfig struct {
	TrailCapacity       int           `yaml:"trail_capacity"`
	TrailSampleRate     float64       `yaml:"trail_sample_rate"`
	TrailFadeDelay      time.Duration `yaml:"trail_fade_delay"`
	TrailLifetime       time.Duration `yaml:"trail_lifetime"`
	ConfettiCount       int           `yaml:"confetti_count"`
	ConfettiInterval    time.Duration `yaml:"confetti_interval"`
	ConfettiMinDuration time.Duration `yaml:"confetti_min_duration"`
	ConfettiMaxDuration time.Duration `yaml:"confetti_max_duration"`
	MessageDuration     time.Duration `yaml:"message_duration"`
	RippleLifetime      time.Duration `yaml:"ripple_lifetime"`
	FrameInterval       time.Duration `yaml:"frame_interval"`
}

// ContactConfig 聯繫表單模擬提交的時序
type ContactConfig struct {
	SendDelay  time.Duration `yaml:"send_delay"`
	ResetDelay time.Duration `yaml:"reset_delay"`
}

// DefaultConfig 默認配置
func DefaultConfig() *Config {
	opts := effect.DefaultOptions()
	return &Config{
		Version: ConfigVersionLatest,
		Theme:   ThemeLight,
		Log: LogConfig{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     14,
			Compress:   true,
		},
		Effects: EffectsConfig{
			TrailCapacity:       opts.TrailCapacity,
			TrailSampleRate:     opts.TrailSampleRate,
			TrailFadeDelay:      opts.TrailFadeDelay,
			TrailLifetime:       opts.TrailLifetime,
			ConfettiCount:       opts.ConfettiCount,
			ConfettiInterval:    opts.ConfettiInterval,
			ConfettiMinDuration: opts.ConfettiMinDuration,
			ConfettiMaxDuration: opts.ConfettiMaxDuration,
			MessageDuration:     opts.MessageDuration,
			RippleLifetime:      opts.RippleLifetime,
			FrameInterval:       33 * time.Millisecond,
		},
		Contact: ContactConfig{
			SendDelay:  1500 * time.Millisecond,
			ResetDelay: 2000 * time.Millisecond,
		},
	}
}

// Validate 驗證配置
func (c *Config) Validate() error {
	if _, err := ParseTheme(string(c.Theme)); err != nil {
		return invalid("theme %q 不受支持", c.Theme)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return invalid("log.level %q 不受支持", c.Log.Level)
	}

	e := c.Effects
	if e.TrailCapacity < 1 {
		return invalid("effects.trail_capacity 必須大於 0")
	}
	if e.TrailSampleRate < 0 || e.TrailSampleRate > 1 {
		return invalid("effects.trail_sample_rate 必須在 0 到 1 之間")
	}
	if e.ConfettiCount < 0 {
		return invalid("effects.confetti_count 不能為負數")
	}
	if e.ConfettiMinDuration <= 0 || e.ConfettiMaxDuration < e.ConfettiMinDuration {
		return invalid("effects.confetti_*_duration 範圍無效")
	}
	if e.FrameInterval <= 0 {
		return invalid("effects.frame_interval 必須大於 0")
	}
	for name, d := range map[string]time.Duration{
		"trail_fade_delay":  e.TrailFadeDelay,
		"trail_lifetime":    e.TrailLifetime,
		"confetti_interval": e.ConfettiInterval,
		"message_duration":  e.MessageDuration,
		"ripple_lifetime":   e.RippleLifetime,
	} {
		if d < 0 {
			return invalid("effects.%s 不能為負數", name)
		}
	}

	if c.Contact.SendDelay < 0 || c.Contact.ResetDelay < 0 {
		return invalid("contact 延遲不能為負數")
	}
	return nil
}

func invalid(format string, args ...any) error {
	return apperrors.Wrap(apperrors.ErrConfigInvalid, apperrors.CodeConfigInvalid, fmt.Sprintf(format, args...))
}

// SchedulerOptions 轉換為效果調度器參數
func (e EffectsConfig) SchedulerOptions() effect.Options {
	opts := effect.DefaultOptions()
	opts.TrailCapacity = e.TrailCapacity
	opts.TrailSampleRate = e.TrailSampleRate
	opts.TrailFadeDelay = e.TrailFadeDelay
	opts.TrailLifetime = e.TrailLifetime
	opts.ConfettiCount = e.ConfettiCount
	opts.ConfettiInterval = e.ConfettiInterval
	opts.ConfettiMinDuration = e.ConfettiMinDuration
	opts.ConfettiMaxDuration = e.ConfettiMaxDuration
	opts.MessageDuration = e.MessageDuration
	opts.RippleLifetime = e.RippleLifetime
	return opts
}

// DeepCopy 深拷貝配置 (序列化回環)
func (c *Config) DeepCopy() *Config {
	if c == nil {
		return nil
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		panic(fmt.Errorf("DeepCopy 序列化失敗 (這是一個 Bug): %w", err))
	}

	var newCfg Config
	if err := yaml.Unmarshal(data, &newCfg); err != nil {
		panic(fmt.Errorf("DeepCopy 反序列化失敗 (這是一個 Bug): %w", err))
	}

	return &newCfg
}
