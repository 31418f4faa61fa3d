package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Yat-Muk/stellar-ui/internal/tui/style"
	"github.com/Yat-Muk/stellar-ui/internal/tui/types"
)

// SwatchWidth 每個色塊的寬度 (字符格)，也是漸變採樣數
const SwatchWidth = 8

const (
	swatchRows = 2
	swatchGap  = 2
	labelWidth = 9
)

// renderSidebar 左側組件面板：計數器、色板、聯繫表單
func renderSidebar(st style.Styles, d AppData, width, height int) string {
	inner := width - 4

	sections := []string{
		renderCounter(st, d.Counter),
		"",
		renderPalette(st, d.Swatches),
		"",
		renderForm(st, d.Form, inner),
	}

	panel := st.Panel
	if d.FormFocused {
		panel = st.PanelFocused
	}
	return panel.
		Width(width - 2).
		Height(height - 2).
		MaxHeight(height).
		Render(strings.Join(sections, "\n"))
}

func renderCounter(st style.Styles, c types.CounterInfo) string {
	title := st.SectionTitle.Render("Counter")

	value := st.CounterValue.Render(fmt.Sprintf("%d", c.Display))
	if c.Animating {
		value += st.Muted.Render(fmt.Sprintf(" → %d", c.Value))
	}

	inc := st.Button
	if c.Pressed {
		inc = st.ButtonPressed
	}
	reset := st.Button
	if c.Spinning {
		reset = st.ButtonPressed
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		inc.Render("+ Increment"),
		"  ",
		reset.Render(spinGlyph(c.Spinning, c.SpinFrame, "↺")+" Reset"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, title, "  "+value, buttons)
}

func renderPalette(st style.Styles, swatches []types.SwatchInfo) string {
	title := st.SectionTitle.Render("Palette")

	boxes := make([]string, 0, len(swatches)*2)
	for i, sw := range swatches {
		if i > 0 {
			boxes = append(boxes, strings.Repeat(" ", swatchGap))
		}
		boxes = append(boxes, renderSwatch(st, sw))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
}

// renderSwatch 剛換色的色塊用實心字形並高亮標籤，模擬放大
func renderSwatch(st style.Styles, sw types.SwatchInfo) string {
	glyph := "▓"
	label := st.Muted
	if sw.Popped {
		glyph = "█"
		label = st.DotActive
	}

	bar := style.GradientBar(sw.Colors, glyph)
	rows := make([]string, 0, swatchRows+1)
	for i := 0; i < swatchRows; i++ {
		rows = append(rows, bar)
	}
	rows = append(rows, label.Width(SwatchWidth).Render(sw.Label))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderForm(st style.Styles, f types.FormInfo, width int) string {
	title := st.SectionTitle.Render("Contact")
	if !f.Active {
		title += st.Muted.Render("  (tab to edit)")
	}

	rows := []string{title}
	for _, field := range f.Fields {
		label := st.Label.Width(labelWidth).Render("  " + field.Label)
		if field.Focused {
			label = st.LabelFocused.Width(labelWidth).Render("› " + field.Label)
		}
		rows = append(rows, lipgloss.NewStyle().MaxWidth(width).Render(label+field.View))
	}

	button := st.Button
	switch {
	case f.Sent:
		button = st.ButtonSuccess
	case f.Busy:
		button = st.ButtonBusy
	}
	line := button.Render(f.Button)
	if f.Spinner != "" {
		line += " " + f.Spinner
	}
	if f.Receipt != "" && (f.Busy || f.Sent) {
		line += st.Muted.Render(" #" + f.Receipt)
	}
	rows = append(rows, "", line)

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
