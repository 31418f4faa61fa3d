package model

import (
	tea "github.com/charmbracelet/bubbletea"
)

// WindowTitle 終端窗口標題
const WindowTitle = "✦ Stellar UI"

// Model TUI 核心模型，所有消息轉交給 Router
type Model struct {
	router *Router
	title  string
}

// NewModel 創建新的 TUI Model
func NewModel(router *Router) *Model {
	return &Model{
		router: router,
		title:  WindowTitle,
	}
}

// Init 設置窗口標題並啟動路由器
func (m *Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(m.title), m.router.InitModel())
}

// Update 更新循環
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.router.Update(msg)
	return m, cmd
}

// View 渲染視圖
func (m *Model) View() string {
	return m.router.View()
}
