package state

import "github.com/Yat-Muk/stellar-ui/internal/domain/effect"

// 佈局常量 (字符格)
const (
	HeaderHeight = 3
	FooterHeight = 2
	SidebarWidth = 44

	minCanvasWidth  = 10
	minCanvasHeight = 6
)

// Layout 根據終端尺寸計算出的區域劃分
//
// 畫布面板帶一圈邊框，Canvas* 描述邊框內的可繪製區域。
type Layout struct {
	Width      int
	Height     int
	BodyHeight int

	CanvasX      int
	CanvasY      int
	CanvasWidth  int
	CanvasHeight int
}

// ComputeLayout 過小的終端按最小尺寸佈局，超出部分由終端裁剪
func ComputeLayout(width, height int) Layout {
	width = max(width, SidebarWidth+minCanvasWidth+2)
	height = max(height, HeaderHeight+FooterHeight+minCanvasHeight+2)

	body := height - HeaderHeight - FooterHeight
	return Layout{
		Width:        width,
		Height:       height,
		BodyHeight:   body,
		CanvasX:      SidebarWidth + 1,
		CanvasY:      HeaderHeight + 1,
		CanvasWidth:  width - SidebarWidth - 2,
		CanvasHeight: body - 2,
	}
}

// CanvasPoint 屏幕坐標轉換為畫布坐標，落在畫布外返回 false
func (l Layout) CanvasPoint(x, y int) (effect.Point, bool) {
	cx, cy := x-l.CanvasX, y-l.CanvasY
	if cx < 0 || cy < 0 || cx >= l.CanvasWidth || cy >= l.CanvasHeight {
		return effect.Point{}, false
	}
	return effect.Point{X: float64(cx), Y: float64(cy)}, true
}
