package canvas

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Yat-Muk/stellar-ui/internal/domain/effect"
	"github.com/Yat-Muk/stellar-ui/internal/domain/palette"
)

// 彩紙按旋轉角度切換字形，模擬翻轉
var confettiGlyphs = []string{"▪", "◆", "▴", "▸", "▾", "◂"}

// 終端字符格約為 2:1，漣漪橫向半徑加倍
const (
	rippleAspect = 2.0
	rippleRadius = 1.5
)

type cell struct {
	glyph string
	color string
	bold  bool
	// wide 左半格已繪製寬字符，本格跳過
	wide bool
}

type grid struct {
	w, h  int
	cells []cell
}

func newGrid(w, h int) *grid {
	return &grid{w: w, h: h, cells: make([]cell, w*h)}
}

func (g *grid) in(x, y int) bool { return x >= 0 && y >= 0 && x < g.w && y < g.h }

func (g *grid) set(x, y int, c cell) {
	if !g.in(x, y) {
		return
	}
	// 覆蓋寬字符的任一半時清掉另一半
	if prev := g.cells[y*g.w+x]; prev.wide && x > 0 {
		g.cells[y*g.w+x-1] = cell{}
	}
	if x+1 < g.w && g.cells[y*g.w+x+1].wide {
		g.cells[y*g.w+x+1] = cell{}
	}
	g.cells[y*g.w+x] = c
}

// Render 繪製所有可見實體，返回 height 行、每行 width 格的字符串
func (c *Canvas) Render() string {
	return c.paint(c.rasterize())
}

// sortedIDs 按句柄順序繪製，後創建的在上層；提示文字總在最上層
func (c *Canvas) sortedIDs() []effect.Handle {
	ids := make([]effect.Handle, 0, len(c.entities))
	for id := range c.entities {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := c.entities[ids[i]], c.entities[ids[j]]
		if (a.kind == effect.KindMessage) != (b.kind == effect.KindMessage) {
			return b.kind == effect.KindMessage
		}
		return ids[i] < ids[j]
	})
	return ids
}

func (c *Canvas) rasterize() *grid {
	g := newGrid(c.width, c.height)
	for _, id := range c.sortedIDs() {
		e := c.entities[id]
		if e.style.Opacity <= visibleOpacity {
			continue
		}
		switch e.kind {
		case effect.KindTrail:
			c.drawTrail(g, e)
		case effect.KindConfetti:
			c.drawConfetti(g, e)
		case effect.KindRipple:
			c.drawRipple(g, e)
		case effect.KindMessage:
			c.drawMessage(g, e)
		}
	}
	return g
}

func (c *Canvas) tint(e *entity) string {
	base := e.style.Color
	if base == "" {
		base = c.colors.Accent
	}
	if c.colors.Background == "" {
		return base
	}
	return palette.Blend(base, c.colors.Background, e.style.Opacity)
}

func cellOf(p effect.Point) (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

func (c *Canvas) drawTrail(g *grid, e *entity) {
	glyph := "●"
	if e.style.Scale >= 1.5 {
		glyph = "◯"
	}
	x, y := cellOf(e.pos)
	g.set(x, y, cell{glyph: glyph, color: c.tint(e)})
}

func (c *Canvas) drawConfetti(g *grid, e *entity) {
	rot := math.Mod(e.style.Rotation, 360)
	if rot < 0 {
		rot += 360
	}
	glyph := confettiGlyphs[int(rot/60)%len(confettiGlyphs)]
	x, y := cellOf(e.pos)
	g.set(x, y, cell{glyph: glyph, color: c.tint(e)})
}

func (c *Canvas) drawRipple(g *grid, e *entity) {
	r := e.style.Scale * rippleRadius
	cx, cy := e.pos.X, e.pos.Y
	color := c.tint(e)

	if r < 0.5 {
		x, y := cellOf(e.pos)
		g.set(x, y, cell{glyph: "·", color: color})
		return
	}

	// 沿圓周取點，步長保證相鄰點不超過一格
	steps := int(math.Ceil(2 * math.Pi * r * rippleAspect))
	seen := make(map[[2]int]bool, steps)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		x := int(math.Round(cx + math.Cos(a)*r*rippleAspect))
		y := int(math.Round(cy + math.Sin(a)*r))
		if seen[[2]int{x, y}] {
			continue
		}
		seen[[2]int{x, y}] = true
		g.set(x, y, cell{glyph: "∘", color: color})
	}
}

func (c *Canvas) drawMessage(g *grid, e *entity) {
	text := e.text
	width := runewidth.StringWidth(text)
	if width > g.w {
		text = runewidth.Truncate(text, g.w, "")
		width = runewidth.StringWidth(text)
	}

	color := e.style.Color
	if color == "" {
		color = c.colors.Foreground
	}
	if c.colors.Background != "" && color != "" {
		color = palette.Blend(color, c.colors.Background, e.style.Opacity)
	}

	x := int(math.Round(e.pos.X)) - width/2
	x = max(0, min(x, g.w-width))
	y := int(math.Round(e.pos.Y))

	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		g.set(x, y, cell{glyph: string(r), color: color, bold: true})
		if rw == 2 {
			g.set(x+1, y, cell{wide: true})
		}
		x += rw
	}
}

// paint 把格子轉換為帶顏色的行，相同樣式的連續格合併渲染
func (c *Canvas) paint(g *grid) string {
	base := lipgloss.NewStyle()
	if c.colors.Background != "" {
		base = base.Background(lipgloss.Color(c.colors.Background))
	}

	lines := make([]string, g.h)
	for y := 0; y < g.h; y++ {
		var sb strings.Builder
		var run strings.Builder
		var cur cell
		flush := func() {
			if run.Len() == 0 {
				return
			}
			st := base
			if cur.color != "" {
				st = st.Foreground(lipgloss.Color(cur.color))
			}
			if cur.bold {
				st = st.Bold(true)
			}
			sb.WriteString(st.Render(run.String()))
			run.Reset()
		}

		for x := 0; x < g.w; x++ {
			cl := g.cells[y*g.w+x]
			if cl.wide {
				continue
			}
			if cl.glyph == "" {
				cl = cell{glyph: " "}
			}
			if cl.color != cur.color || cl.bold != cur.bold {
				flush()
				cur = cl
			}
			run.WriteString(cl.glyph)
		}
		flush()
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// Snapshot 不帶顏色的純文本畫面，用於調試與測試
func (c *Canvas) Snapshot() string {
	g := c.rasterize()
	lines := make([]string, g.h)
	for y := 0; y < g.h; y++ {
		var sb strings.Builder
		for x := 0; x < g.w; x++ {
			cl := g.cells[y*g.w+x]
			switch {
			case cl.wide:
			case cl.glyph == "":
				sb.WriteByte(' ')
			default:
				sb.WriteString(cl.glyph)
			}
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}
