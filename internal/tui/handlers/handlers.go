package handlers

import (
	"time"

	"go.uber.org/zap"

	"github.com/Yat-Muk/stellar-ui/internal/application"
	"github.com/Yat-Muk/stellar-ui/internal/tui/runtime"
	"github.com/Yat-Muk/stellar-ui/internal/tui/state"
)

// Config 用於初始化 Handlers 的配置結構體
type Config struct {
	Log           *zap.Logger
	StateMgr      *state.Manager
	ThemeSvc      *application.ThemeService
	Timers        *runtime.TimerQueue
	FrameInterval time.Duration
}

// 狀態欄消息顯示時長
const statusTTL = 4 * time.Second
