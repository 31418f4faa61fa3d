package handlers

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Yat-Muk/stellar-ui/internal/application"
	"github.com/Yat-Muk/stellar-ui/internal/tui/msg"
)

// 主題保存的超時
const saveTimeout = 5 * time.Second

// defaultFrameInterval 約 30 幀每秒
const defaultFrameInterval = 33 * time.Millisecond

// CommandBuilder 構建需要在事件循環之外執行的命令 (I/O、定時)
type CommandBuilder struct {
	log           *zap.Logger
	themeSvc      *application.ThemeService
	frameInterval time.Duration
}

// NewCommandBuilder 創建命令構建器
func NewCommandBuilder(log *zap.Logger, themeSvc *application.ThemeService, frameInterval time.Duration) *CommandBuilder {
	if log == nil {
		log = zap.NewNop()
	}
	if frameInterval <= 0 {
		frameInterval = defaultFrameInterval
	}
	return &CommandBuilder{
		log:           log.Named("cmd"),
		themeSvc:      themeSvc,
		frameInterval: frameInterval,
	}
}

// ToggleThemeCmd 切換並保存主題；寫文件在命令 goroutine 中進行
func (b *CommandBuilder) ToggleThemeCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()

		_, err := b.themeSvc.Toggle(ctx)
		// 連續切換時以最終狀態為準
		return msg.ThemeChangedMsg{Theme: b.themeSvc.Current(), Err: err}
	}
}

// FrameCmd 下一幀
func (b *CommandBuilder) FrameCmd() tea.Cmd {
	return tea.Tick(b.frameInterval, func(t time.Time) tea.Msg {
		return msg.FrameMsg(t)
	})
}

// FrameInterval 幀間隔
func (b *CommandBuilder) FrameInterval() time.Duration { return b.frameInterval }
