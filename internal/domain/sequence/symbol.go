package sequence

import "fmt"

// Kind 按鍵符號的類別
type Kind uint8

const (
	KindNone Kind = iota
	KindArrow
	KindRune
)

// Direction 方向鍵
type Direction uint8

const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "ArrowUp"
	case Down:
		return "ArrowDown"
	case Left:
		return "ArrowLeft"
	case Right:
		return "ArrowRight"
	default:
		return "Arrow?"
	}
}

// Symbol 一次按鍵的身份。封閉的標籤聯合：方向鍵、單個字符或其他
// 零值表示不屬於字母表的按鍵，永遠不會與目標匹配
type Symbol struct {
	kind Kind
	dir  Direction
	r    rune
}

// Arrow 方向鍵符號
func Arrow(d Direction) Symbol {
	return Symbol{kind: KindArrow, dir: d}
}

// Rune 字符符號，大小寫敏感
func Rune(r rune) Symbol {
	return Symbol{kind: KindRune, r: r}
}

// Other 字母表之外的按鍵
func Other() Symbol {
	return Symbol{}
}

func (s Symbol) Kind() Kind { return s.kind }

func (s Symbol) String() string {
	switch s.kind {
	case KindArrow:
		return s.dir.String()
	case KindRune:
		return string(s.r)
	default:
		return "Other"
	}
}

// GoString 便於測試失敗時閱讀
func (s Symbol) GoString() string {
	return fmt.Sprintf("sequence.Symbol(%s)", s)
}

// ParseKey 將終端按鍵名稱轉換為符號
// 接受 bubbletea 的按鍵名 ("up", "down", ...) 及單個字符
func ParseKey(key string) Symbol {
	switch key {
	case "up":
		return Arrow(Up)
	case "down":
		return Arrow(Down)
	case "left":
		return Arrow(Left)
	case "right":
		return Arrow(Right)
	}

	runes := []rune(key)
	if len(runes) == 1 {
		return Rune(runes[0])
	}
	return Other()
}

// Konami ↑ ↑ ↓ ↓ ← → ← → b a
func Konami() []Symbol {
	return []Symbol{
		Arrow(Up), Arrow(Up),
		Arrow(Down), Arrow(Down),
		Arrow(Left), Arrow(Right),
		Arrow(Left), Arrow(Right),
		Rune('b'), Rune('a'),
	}
}

// KonamiHint 頁腳提示文字
const KonamiHint = "↑ ↑ ↓ ↓ ← → ← → B A"
