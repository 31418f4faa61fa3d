package handlers

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yat-Muk/stellar-ui/internal/application"
	"github.com/Yat-Muk/stellar-ui/internal/domain/config"
	"github.com/Yat-Muk/stellar-ui/internal/tui/msg"
	"github.com/Yat-Muk/stellar-ui/internal/tui/state"
)

func TestKeyHandler_KonamiCelebrates(t *testing.T) {
	env := setupTestEnv(t)

	for _, k := range konami() {
		env.press(k)
	}
	assert.Equal(t, 1, env.state.Interaction().Matches())

	env.clock.Advance(2 * time.Second)
	stats := env.sched.Stats()
	assert.Equal(t, 1, stats.Celebrations)
	assert.Equal(t, 50, stats.ConfettiSpawned)
	assert.Equal(t, 1, env.sched.LiveMessages())

	env.clock.Advance(time.Second)
	assert.Zero(t, env.sched.LiveMessages(), "提示文字 3 秒後移除")
}

func TestKeyHandler_ActionKeysAlsoFeedMatcher(t *testing.T) {
	env := setupTestEnv(t)
	env.press(tea.KeyMsg{Type: tea.KeyUp})
	env.press(tea.KeyMsg{Type: tea.KeyUp})

	done, total := env.state.Interaction().Progress()
	assert.Equal(t, 2, done)
	assert.Equal(t, 10, total)

	// 'g' 既打斷序列又生成色板
	env.press(runes("g"))
	done, _ = env.state.Interaction().Progress()
	assert.Zero(t, done)
	assert.Equal(t, 1, env.state.Palette().Generations())
}

func TestKeyHandler_CounterKeys(t *testing.T) {
	env := setupTestEnv(t)

	env.press(runes("+"))
	env.press(tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, 2, env.state.Counter().Value())
	assert.True(t, env.state.UI().IncrementPress.Active(env.clock.Now()))

	env.press(runes("r"))
	assert.Zero(t, env.state.Counter().Value())
	assert.True(t, env.state.UI().ResetSpin.Active(env.clock.Now()))

	env.clock.Advance(state.ResetSpinDuration)
	assert.False(t, env.state.UI().Pulsing(env.clock.Now()))
}

func TestKeyHandler_ThemeToggle(t *testing.T) {
	env := setupTestEnv(t)

	cmd := env.press(runes("t"))
	require.NotNil(t, cmd)
	assert.True(t, env.state.UI().ThemeSpin.Active(env.clock.Now()))

	out, ok := cmd().(msg.ThemeChangedMsg)
	require.True(t, ok)
	assert.NoError(t, out.Err)
	assert.Equal(t, config.ThemeDark, out.Theme)
	assert.Equal(t, 1, env.repo.saves)
	assert.Equal(t, config.ThemeDark, env.repo.cfg.Theme)
}

func TestKeyHandler_Quit(t *testing.T) {
	env := setupTestEnv(t)
	assert.True(t, isQuit(env.press(runes("q"))))
	assert.True(t, isQuit(env.press(tea.KeyMsg{Type: tea.KeyCtrlC})))
}

func TestKeyHandler_FormCapturesKeys(t *testing.T) {
	env := setupTestEnv(t)
	sm := env.state

	env.press(tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, sm.Typing())
	assert.Equal(t, state.FocusForm, sm.UI().Focus)

	// 輸入框聚焦時字母不觸發動作，也不推進序列
	env.press(tea.KeyMsg{Type: tea.KeyUp})
	for _, k := range "tgq" {
		assert.Nil(t, env.press(runes(string(k))))
	}
	done, _ := sm.Interaction().Progress()
	assert.Zero(t, done)
	assert.Zero(t, sm.Palette().Generations())
	assert.Equal(t, config.ThemeLight, sm.UI().Theme)
	assert.Equal(t, "tgq", sm.Form().Inputs[state.FieldName].Value())

	env.press(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, state.FieldEmail, sm.Form().Focused)

	env.press(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, sm.Typing())
	assert.Equal(t, state.FocusPlayground, sm.UI().Focus)

	// 離開表單後序列照常匹配
	env.press(tea.KeyMsg{Type: tea.KeyUp})
	done, _ = sm.Interaction().Progress()
	assert.Equal(t, 1, done)

	// ctrl+c 在表單內同樣退出
	env.press(tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, isQuit(env.press(tea.KeyMsg{Type: tea.KeyCtrlC})))
}

func fillForm(sm *state.Manager, name, email, message string) {
	sm.Form().Inputs[state.FieldName].SetValue(name)
	sm.Form().Inputs[state.FieldEmail].SetValue(email)
	sm.Form().Inputs[state.FieldMessage].SetValue(message)
}

func TestKeyHandler_SubmitLifecycle(t *testing.T) {
	env := setupTestEnv(t)
	sm := env.state

	env.press(tea.KeyMsg{Type: tea.KeyTab})
	fillForm(sm, "Ada", "ada@example.com", "Hello")

	cmd := env.press(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd, "發送中啟動旋轉指示器")
	assert.Equal(t, application.FormSending, sm.Contact().Status())
	assert.Equal(t, state.StatusInfo, sm.UI().Status.Type)
	assert.Equal(t, "正在發送", sm.UI().Status.Message)

	// 禁用期間再次提交被忽略
	receipt := sm.Contact().Last()
	assert.Nil(t, env.press(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, receipt, sm.Contact().Last())

	env.clock.Advance(1500 * time.Millisecond)
	assert.Equal(t, application.FormSent, sm.Contact().Status())
	assert.Equal(t, "ada@example.com", sm.Form().Inputs[state.FieldEmail].Value())

	env.clock.Advance(2000 * time.Millisecond)
	assert.Equal(t, application.FormIdle, sm.Contact().Status())
	assert.Empty(t, sm.Form().Submission().Name, "恢復後清空表單")
	assert.Empty(t, sm.Form().Submission().Email)
	assert.Equal(t, state.FieldName, sm.Form().Focused)
}

func TestKeyHandler_SubmitInvalid(t *testing.T) {
	env := setupTestEnv(t)
	sm := env.state

	env.press(tea.KeyMsg{Type: tea.KeyTab})
	fillForm(sm, "Ada", "not-an-email", "Hello")

	assert.Nil(t, env.press(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, application.FormIdle, sm.Contact().Status())
	assert.Equal(t, state.StatusWarn, sm.UI().Status.Type)
	assert.Contains(t, sm.UI().Status.Message, "not-an-email")

	env.clock.Advance(statusTTL)
	assert.Empty(t, sm.UI().Status.Message, "狀態消息到期清除")
}
