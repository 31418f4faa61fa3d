package clock

import "time"

// Clock 提供當前時間
type Clock interface {
	Now() time.Time
}

// Real 系統單調時鐘
type Real struct{}

func (Real) Now() time.Time { return time.Now() }
