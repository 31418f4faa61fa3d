package main

import (
	"context"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/Yat-Muk/stellar-ui/internal/application"
	domainConfig "github.com/Yat-Muk/stellar-ui/internal/domain/config"
	"github.com/Yat-Muk/stellar-ui/internal/domain/effect"
	"github.com/Yat-Muk/stellar-ui/internal/domain/sequence"
	infraConfig "github.com/Yat-Muk/stellar-ui/internal/infra/config"
	"github.com/Yat-Muk/stellar-ui/internal/pkg/appctx"
	"github.com/Yat-Muk/stellar-ui/internal/pkg/clock"
	"github.com/Yat-Muk/stellar-ui/internal/pkg/logger"
	"github.com/Yat-Muk/stellar-ui/internal/pkg/version"
	"github.com/Yat-Muk/stellar-ui/internal/tui/canvas"
	"github.com/Yat-Muk/stellar-ui/internal/tui/handlers"
	"github.com/Yat-Muk/stellar-ui/internal/tui/runtime"
	"github.com/Yat-Muk/stellar-ui/internal/tui/state"
)

// Options 命令行帶入的運行參數
type Options struct {
	// Seed 非 0 時所有隨機效果可重現
	Seed uint64
}

type AppDependencies struct {
	Log           *zap.Logger
	Paths         *appctx.Paths
	Config        *domainConfig.Config
	StateMgr      *state.Manager
	HandlerConfig *handlers.Config
}

// loadConfig 在日誌就緒之前讀取配置，失敗時仍返回默認配置
func loadConfig(paths *appctx.Paths) (*domainConfig.Config, error) {
	repo := infraConfig.NewFileRepository(paths.ConfigFile, nil)
	cfg, err := repo.Load(context.Background())
	if err != nil {
		return domainConfig.DefaultConfig(), err
	}
	return cfg, nil
}

// newLogger 只寫文件；終端歸 TUI 所有
func newLogger(paths *appctx.Paths, cfg *domainConfig.Config, debug bool) (*zap.Logger, error) {
	logConfig := logger.DefaultConfig()
	logConfig.OutputPath = paths.LogFile
	logConfig.Console = false
	logConfig.Level = cfg.Log.Level
	logConfig.MaxSize = cfg.Log.MaxSize
	logConfig.MaxBackups = cfg.Log.MaxBackups
	logConfig.MaxAge = cfg.Log.MaxAge
	logConfig.Compress = cfg.Log.Compress
	if debug {
		logConfig.Level = "debug"
	}
	return logger.New(logConfig)
}

func newRandom(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func initializeDependencies(log *zap.Logger, paths *appctx.Paths, cfg *domainConfig.Config, opts Options) (*AppDependencies, error) {
	// ==========================================
	// 1. 基礎設施層
	// ==========================================
	configRepo := infraConfig.NewFileRepository(paths.ConfigFile, log)

	clk := clock.Real{}
	rng := newRandom(opts.Seed)
	// 所有延遲回調都經由定時器隊列回到事件循環
	timers := runtime.NewTimerQueue()

	// ==========================================
	// 2. 效果層
	// ==========================================
	cv := canvas.New(clk, 1, 1, canvas.Colors{})
	sched := effect.NewScheduler(cv, timers, clk, rng, cfg.Effects.SchedulerOptions(), log)

	matcher, err := sequence.NewMatcher(sequence.Konami(), sched.Celebrate)
	if err != nil {
		return nil, fmt.Errorf("初始化序列匹配器失敗: %w", err)
	}

	// ==========================================
	// 3. 應用服務層
	// ==========================================
	configSvc := application.NewConfigService(configRepo, log)
	themeSvc := application.NewThemeService(configSvc, cfg.Theme, log)
	counter := application.NewCounter(clk)
	paletteSvc := application.NewPaletteService(timers, rng, log)
	contactSvc := application.NewContactService(timers, clk.Now, cfg.Contact, log)
	interactionSvc := application.NewInteractionService(matcher, sched, log)

	// ==========================================
	// 4. 狀態管理
	// ==========================================
	stateMgr := state.NewManager(&state.Config{
		Log:         log,
		Clock:       clk,
		Theme:       themeSvc.Current(),
		Version:     version.Short(),
		Canvas:      cv,
		Counter:     counter,
		Palette:     paletteSvc,
		Contact:     contactSvc,
		Interaction: interactionSvc,
	})

	// ==========================================
	// 5. TUI Handler 配置
	// ==========================================
	handlerCfg := &handlers.Config{
		Log:           log,
		StateMgr:      stateMgr,
		ThemeSvc:      themeSvc,
		Timers:        timers,
		FrameInterval: cfg.Effects.FrameInterval,
	}

	return &AppDependencies{
		Log:           log,
		Paths:         paths,
		Config:        cfg,
		StateMgr:      stateMgr,
		HandlerConfig: handlerCfg,
	}, nil
}
