package state

import (
	"go.uber.org/zap"

	"github.com/Yat-Muk/stellar-ui/internal/application"
	"github.com/Yat-Muk/stellar-ui/internal/domain/config"
	"github.com/Yat-Muk/stellar-ui/internal/pkg/clock"
	"github.com/Yat-Muk/stellar-ui/internal/tui/canvas"
)

// Config 初始化配置
type Config struct {
	Log         *zap.Logger
	Clock       clock.Clock
	Theme       config.Theme
	Version     string
	Canvas      *canvas.Canvas
	Counter     *application.Counter
	Palette     *application.PaletteService
	Contact     *application.ContactService
	Interaction *application.InteractionService
}

// Manager 狀態管理器 (State Container)
//
// 只在事件循環中訪問；服務中的定時回調也經由事件循環執行。
type Manager struct {
	log     *zap.Logger
	clock   clock.Clock
	version string

	// 界面子狀態
	ui     *UIState
	form   *FormState
	layout Layout

	// 由 setup 注入的組件
	canvas      *canvas.Canvas
	counter     *application.Counter
	palette     *application.PaletteService
	contact     *application.ContactService
	interaction *application.InteractionService
}

// NewManager 創建狀態管理器
func NewManager(cfg *Config) *Manager {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}

	m := &Manager{
		log:         log.Named("state"),
		clock:       cfg.Clock,
		version:     cfg.Version,
		canvas:      cfg.Canvas,
		counter:     cfg.Counter,
		palette:     cfg.Palette,
		contact:     cfg.Contact,
		interaction: cfg.Interaction,
	}

	m.ui = NewUIState(cfg.Theme)
	m.form = NewFormState()
	m.Resize(m.ui.Width, m.ui.Height)
	m.ApplyTheme(cfg.Theme)

	// 表單在 "Sent!" 之後恢復時清空
	m.contact.OnReset(func() {
		m.form.Clear()
		m.log.Debug("表單已重置")
	})

	return m
}

// Getters 訪問器

func (m *Manager) UI() *UIState                                 { return m.ui }
func (m *Manager) Form() *FormState                             { return m.form }
func (m *Manager) Layout() Layout                               { return m.layout }
func (m *Manager) Clock() clock.Clock                           { return m.clock }
func (m *Manager) Canvas() *canvas.Canvas                       { return m.canvas }
func (m *Manager) Counter() *application.Counter                { return m.counter }
func (m *Manager) Palette() *application.PaletteService         { return m.palette }
func (m *Manager) Contact() *application.ContactService         { return m.contact }
func (m *Manager) Interaction() *application.InteractionService { return m.interaction }

// Resize 重新佈局，畫布跟隨面板尺寸
func (m *Manager) Resize(w, h int) {
	m.ui.UpdateSize(w, h)
	m.layout = ComputeLayout(w, h)
	m.canvas.Resize(m.layout.CanvasWidth, m.layout.CanvasHeight)
}

// ApplyTheme 主題色同步到所有繪製組件
func (m *Manager) ApplyTheme(t config.Theme) {
	m.ui.SetTheme(t)
	p := m.ui.Styles.Palette

	m.form.SetStyles(m.ui.Styles)
	m.canvas.SetColors(canvas.Colors{
		Background: string(p.Background),
		Foreground: string(p.Text),
		Accent:     string(p.Primary),
	})
	m.interaction.Effects().SetTrailColor(string(p.Primary))
}

// Animating 是否需要繼續驅動幀
func (m *Manager) Animating() bool {
	return m.canvas.Animating() || m.counter.Animating() || m.ui.Pulsing(m.clock.Now())
}

// EnterForm 焦點移到表單
func (m *Manager) EnterForm() {
	m.ui.Focus = FocusForm
}

// LeaveForm 焦點回到遊樂場
func (m *Manager) LeaveForm() {
	m.form.Leave()
	m.ui.Focus = FocusPlayground
}

// Typing 是否正在向表單字段輸入
func (m *Manager) Typing() bool {
	return m.ui.Focus == FocusForm && m.form.Active
}
