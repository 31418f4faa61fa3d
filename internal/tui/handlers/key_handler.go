package handlers

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	apperrors "github.com/Yat-Muk/stellar-ui/internal/pkg/errors"
	"github.com/Yat-Muk/stellar-ui/internal/tui/state"
)

// KeyHandler 核心處理器：按鍵先送入序列匹配器，再分發到組件動作
type KeyHandler struct {
	stateMgr   *state.Manager
	cmdBuilder *CommandBuilder
	notifier   *Notifier
	log        *zap.Logger
}

func NewKeyHandler(
	stateMgr *state.Manager,
	cmdBuilder *CommandBuilder,
	notifier *Notifier,
	log *zap.Logger,
) *KeyHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &KeyHandler{
		stateMgr:   stateMgr,
		cmdBuilder: cmdBuilder,
		notifier:   notifier,
		log:        log.Named("keys"),
	}
}

// Handle 處理全局按鍵
func (h *KeyHandler) Handle(msg tea.KeyMsg, m *state.Manager) (*state.Manager, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// 向表單輸入時按鍵屬於輸入框，不參與序列匹配
	if m.Typing() {
		return m, h.handleFormKey(msg, m)
	}

	// b / a 等普通按鍵也要先經過匹配器
	m.Interaction().HandleKey(msg.String())

	return m, h.handleAction(msg, m)
}

// ========================================
// 遊樂場焦點
// ========================================

func (h *KeyHandler) handleAction(msg tea.KeyMsg, m *state.Manager) tea.Cmd {
	keys := m.UI().Keys
	now := m.Clock().Now()

	switch {
	case key.Matches(msg, keys.Quit):
		return tea.Quit

	case key.Matches(msg, keys.Theme):
		m.UI().ThemeSpin.Start(now)
		return h.cmdBuilder.ToggleThemeCmd()

	case key.Matches(msg, keys.Increment):
		m.Counter().Increment()
		m.UI().IncrementPress.Start(now)

	case key.Matches(msg, keys.Reset):
		m.Counter().Reset()
		m.UI().ResetSpin.Start(now)

	case key.Matches(msg, keys.Generate):
		m.Palette().Generate()

	case key.Matches(msg, keys.Form):
		m.EnterForm()
		return m.Form().Enter()
	}
	return nil
}

// ========================================
// 表單焦點
// ========================================

func (h *KeyHandler) handleFormKey(msg tea.KeyMsg, m *state.Manager) tea.Cmd {
	keys := m.UI().Keys

	switch {
	case key.Matches(msg, keys.Leave):
		m.LeaveForm()
		return nil

	case key.Matches(msg, keys.Form):
		return m.Form().Next()

	case key.Matches(msg, keys.Submit):
		return h.submit(m)

	default:
		return m.Form().Update(msg)
	}
}

// submit 提交進行中再次提交會被忽略
func (h *KeyHandler) submit(m *state.Manager) tea.Cmd {
	receipt, err := m.Contact().Submit(m.Form().Submission())
	switch {
	case errors.Is(err, apperrors.ErrFormBusy):
		h.log.Debug("提交進行中，忽略")
		return nil

	case err != nil:
		h.notifier.Flash(m, state.StatusWarn, apperrors.MessageOf(err), "")
		return nil
	}

	h.notifier.Flash(m, state.StatusInfo, "正在發送", receipt.ID[:8])
	return m.UI().Spinner.Tick
}
