package model

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Yat-Muk/stellar-ui/internal/tui/handlers"
	"github.com/Yat-Muk/stellar-ui/internal/tui/msg"
	"github.com/Yat-Muk/stellar-ui/internal/tui/runtime"
	"github.com/Yat-Muk/stellar-ui/internal/tui/state"
)

// Router 事件路由器
type Router struct {
	stateMgr     *state.Manager
	keyHandler   *handlers.KeyHandler
	mouseHandler *handlers.MouseHandler
	cmdBuilder   *handlers.CommandBuilder
	notifier     *handlers.Notifier
	timers       *runtime.TimerQueue
	log          *zap.Logger

	// 同一時間只保留一個幀定時器
	framePending bool
}

// NewRouter 創建路由器
func NewRouter(cfg *handlers.Config) *Router {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}

	// 1. 初始化 CommandBuilder
	cmdBuilder := handlers.NewCommandBuilder(log, cfg.ThemeSvc, cfg.FrameInterval)

	// 2. 狀態欄消息的過期也走定時器隊列
	notifier := handlers.NewNotifier(cfg.Timers)

	// 3. 初始化輸入處理器
	keyHandler := handlers.NewKeyHandler(cfg.StateMgr, cmdBuilder, notifier, log)

	return &Router{
		stateMgr:     cfg.StateMgr,
		keyHandler:   keyHandler,
		mouseHandler: handlers.NewMouseHandler(),
		cmdBuilder:   cmdBuilder,
		notifier:     notifier,
		timers:       cfg.Timers,
		log:          log.Named("router"),
	}
}

// InitModel 用於 Model.Init 調用
func (r *Router) InitModel() tea.Cmd {
	return r.after(nil)
}

// Update 適配 bubbletea 的 Update 簽名
func (r *Router) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	return nil, r.after(r.routeMessage(message))
}

// View 適配 bubbletea 的 View 簽名
func (r *Router) View() string {
	return r.stateMgr.Render()
}

// after 每次 Update 之後：交付新登記的定時器，並在需要時啟動幀循環
func (r *Router) after(cmd tea.Cmd) tea.Cmd {
	cmds := []tea.Cmd{cmd, r.timers.Flush()}
	if !r.framePending && r.stateMgr.Animating() {
		r.framePending = true
		cmds = append(cmds, r.cmdBuilder.FrameCmd())
	}
	return tea.Batch(cmds...)
}

// routeMessage 內部路由邏輯
func (r *Router) routeMessage(message tea.Msg) tea.Cmd {
	m := r.stateMgr

	switch msgType := message.(type) {

	// 監聽窗口大小變化消息
	case tea.WindowSizeMsg:
		m.Resize(msgType.Width, msgType.Height)
		return nil

	case tea.KeyMsg:
		_, cmd := r.keyHandler.Handle(msgType, m)
		return cmd

	case tea.MouseMsg:
		r.mouseHandler.Handle(msgType, m)
		return nil

	case runtime.TimerFiredMsg:
		r.timers.Fire(msgType.ID)
		return nil

	case msg.FrameMsg:
		m.Canvas().Step()
		if m.Animating() {
			return r.cmdBuilder.FrameCmd()
		}
		r.framePending = false
		return nil

	case spinner.TickMsg:
		// 只在發送中保持轉動
		if !m.Contact().Busy() {
			return nil
		}
		return m.UI().UpdateSpinner(msgType)

	case msg.ThemeChangedMsg:
		m.ApplyTheme(msgType.Theme)
		if msgType.Err != nil {
			r.log.Warn("主題保存失敗", zap.Error(msgType.Err))
			r.notifier.Flash(m, state.StatusError, "主題保存失敗", msgType.Err.Error())
			return nil
		}
		r.notifier.Flash(m, state.StatusSuccess, "主題已切換為 "+msgType.Theme.String(), "")
		return nil
	}

	// 其他消息 (如光標閃爍) 交給聚焦的輸入框
	return m.Form().Update(message)
}
