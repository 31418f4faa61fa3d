package sequence

import (
	apperrors "github.com/Yat-Muk/stellar-ui/internal/pkg/errors"
)

// Matcher 在無界的按鍵流中識別一個固定的連續序列
//
// 規則刻意保持簡單：當前符號等於 target[cursor] 時前進，
// 否則 cursor 歸零且不重新比較當前符號。
// 完整匹配後發出一次信號並歸零。
//
// Matcher 不是並發安全的，只應在事件循環中使用。
type Matcher struct {
	target  []Symbol
	cursor  int
	onMatch func()
}

// NewMatcher 創建匹配器；target 被複製，之後不可變
func NewMatcher(target []Symbol, onMatch func()) (*Matcher, error) {
	if len(target) == 0 {
		return nil, apperrors.ErrEmptySequence
	}
	t := make([]Symbol, len(target))
	copy(t, target)
	return &Matcher{target: t, onMatch: onMatch}, nil
}

// Feed 消費一個符號，完成匹配時返回 true
func (m *Matcher) Feed(s Symbol) bool {
	if s != m.target[m.cursor] {
		m.cursor = 0
		return false
	}

	m.cursor++
	if m.cursor < len(m.target) {
		return false
	}

	m.cursor = 0
	if m.onMatch != nil {
		m.onMatch()
	}
	return true
}

// Progress 已連續匹配的符號數
func (m *Matcher) Progress() int { return m.cursor }

// Len 目標序列長度
func (m *Matcher) Len() int { return len(m.target) }

// Reset 丟棄當前進度
func (m *Matcher) Reset() { m.cursor = 0 }
