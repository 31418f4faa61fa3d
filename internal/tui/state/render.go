package state

import (
	"fmt"
	"time"

	"github.com/Yat-Muk/stellar-ui/internal/application"
	"github.com/Yat-Muk/stellar-ui/internal/domain/sequence"
	"github.com/Yat-Muk/stellar-ui/internal/tui/types"
	"github.com/Yat-Muk/stellar-ui/internal/tui/view"
)

// Render 組裝各區域數據並渲染整個畫面
func (m *Manager) Render() string {
	now := m.clock.Now()
	ui := m.ui

	return view.RenderApp(view.AppData{
		Styles: ui.Styles,
		Size: view.Size{
			Width:        m.layout.Width,
			BodyHeight:   m.layout.BodyHeight,
			SidebarWidth: SidebarWidth,
			HeaderHeight: HeaderHeight,
			FooterHeight: FooterHeight,
		},
		Header: types.HeaderInfo{
			Version:   m.version,
			Theme:     ui.Theme.String(),
			Spinning:  ui.ThemeSpin.Active(now),
			SpinFrame: ui.ThemeSpin.Frame(now, view.SpinFrames),
		},
		Counter:     m.counterInfo(now),
		Swatches:    m.swatchInfo(),
		Form:        m.formInfo(),
		FormFocused: ui.Focus == FocusForm,
		Progress:    m.progressInfo(),
		Canvas:      m.canvas.Render(),
		Help:        m.helpView(),
		Status:      m.statusView(),
	})
}

func (m *Manager) counterInfo(now time.Time) types.CounterInfo {
	return types.CounterInfo{
		Display:   m.counter.Display(),
		Value:     m.counter.Value(),
		Animating: m.counter.Animating(),
		Pressed:   m.ui.IncrementPress.Active(now),
		Spinning:  m.ui.ResetSpin.Active(now),
		SpinFrame: m.ui.ResetSpin.Frame(now, view.SpinFrames),
	}
}

func (m *Manager) swatchInfo() []types.SwatchInfo {
	swatches := m.palette.Swatches()
	out := make([]types.SwatchInfo, 0, len(swatches))
	for _, sw := range swatches {
		colors := make([]string, view.SwatchWidth)
		for i := range colors {
			colors[i] = sw.Gradient.At(float64(i) / float64(view.SwatchWidth-1))
		}
		out = append(out, types.SwatchInfo{
			Colors: colors,
			Label:  sw.Gradient.From(),
			Popped: sw.Popped,
		})
	}
	return out
}

func (m *Manager) formInfo() types.FormInfo {
	info := types.FormInfo{
		Active: m.form.Active,
		Button: m.contact.Status().Label(),
		Busy:   m.contact.Status() == application.FormSending,
		Sent:   m.contact.Status() == application.FormSent,
	}
	if info.Busy {
		info.Spinner = m.ui.Spinner.View()
	}
	if r := m.contact.Last(); r.ID != "" {
		info.Receipt = r.ID[:8]
	}
	for i := range m.form.Inputs {
		info.Fields = append(info.Fields, types.FieldInfo{
			Label:   m.form.Label(i),
			View:    m.form.Inputs[i].View(),
			Focused: m.form.Active && m.form.Focused == i,
		})
	}
	return info
}

func (m *Manager) progressInfo() types.ProgressInfo {
	done, total := m.interaction.Progress()
	return types.ProgressInfo{
		Done:    done,
		Total:   total,
		Hint:    sequence.KonamiHint,
		Matches: m.interaction.Matches(),
	}
}

func (m *Manager) helpView() string {
	if m.ui.Focus == FocusForm {
		return m.ui.Help.ShortHelpView(m.ui.Keys.FormHelp())
	}
	return m.ui.Help.View(m.ui.Keys)
}

func (m *Manager) statusView() string {
	s := m.ui.Status
	if s.Message == "" {
		return ""
	}
	msg := s.Message
	if s.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, s.Detail)
	}

	var level string
	switch s.Type {
	case StatusSuccess:
		level = "success"
	case StatusError:
		level = "error"
	case StatusWarn:
		level = "warning"
	default:
		level = "info"
	}
	return view.RenderStatus(m.ui.Styles, level, msg)
}
