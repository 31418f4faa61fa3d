package inputvalidator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// 聯繫表單輸入長度限制 (字符數)
const (
	MaxNameLength    = 64
	MaxEmailLength   = 254 // RFC 5321
	MaxMessageLength = 500
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidationError 驗證錯誤
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateRequired 去除首尾空白後不能為空
func ValidateRequired(input, fieldName, message string) error {
	if strings.TrimSpace(input) == "" {
		return &ValidationError{Field: fieldName, Message: message}
	}
	return nil
}

// ValidateLength 按字符數驗證長度
func ValidateLength(input string, maxLen int, fieldName string) error {
	if n := utf8.RuneCountInString(input); n > maxLen {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("長度超過限制（最大 %d 字符，當前 %d 字符）", maxLen, n),
		}
	}
	return nil
}

// ValidateEmail 驗證電子郵件，只接受裸地址
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)

	if email == "" {
		return &ValidationError{Field: "email", Message: "請填寫郵箱"}
	}
	if len(email) > MaxEmailLength {
		return &ValidationError{Field: "email", Message: "郵箱過長"}
	}
	if !emailRegex.MatchString(email) {
		return &ValidationError{Field: "email", Message: fmt.Sprintf("郵箱格式無效: %s", email)}
	}
	return nil
}

// SanitizeInput 清理輸入（移除控制字符，保留換行）
func SanitizeInput(input string) string {
	var result strings.Builder
	for _, r := range input {
		if (r >= 32 && r != 127) || r == '\n' {
			result.WriteRune(r)
		}
	}
	return result.String()
}
