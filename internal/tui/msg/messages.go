package msg

import (
	"time"

	"github.com/Yat-Muk/stellar-ui/internal/domain/config"
)

// ThemeChangedMsg 主題切換完成 (含持久化結果)
type ThemeChangedMsg struct {
	Theme config.Theme
	Err   error
}

// FrameMsg 畫面刷新節拍，推進畫布動畫與補間
type FrameMsg time.Time
