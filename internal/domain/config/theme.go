package config

import (
	"fmt"
	"strings"

	apperrors "github.com/Yat-Muk/stellar-ui/internal/pkg/errors"
)

// Theme 界面主題
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme 解析主題名稱，不區分大小寫
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	default:
		return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownTheme, s)
	}
}

// Toggle 明暗互換
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func (t Theme) String() string { return string(t) }
