package errors

import (
	"errors"
	"fmt"
)

// 預定義錯誤類型
var (
	// 配置相關
	ErrConfigInvalid = errors.New("configuration is invalid")
	ErrConfigVersion = errors.New("unsupported configuration version")

	// 狀態文件相關
	ErrStateCorrupt = errors.New("state file is corrupt")

	// 界面相關
	ErrUnknownTheme = errors.New("unknown theme")

	// 序列識別
	ErrEmptySequence = errors.New("target sequence must not be empty")

	// 聯繫表單
	ErrFormBusy    = errors.New("form submission in progress")
	ErrFormInvalid = errors.New("form input is invalid")
)

// 錯誤碼
const (
	CodeConfigInvalid = "CONFIG_INVALID"
	CodeStateLoad     = "STATE_LOAD"
	CodeStateSave     = "STATE_SAVE"
	CodePaths         = "PATHS"
	CodeFormInvalid   = "FORM_INVALID"
)

// Error 自定義錯誤類型
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New 創建新錯誤
func New(code, message string) error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap 包裝錯誤
func Wrap(err error, code, message string) error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// CodeOf 取出錯誤鏈中第一個錯誤碼，沒有則返回空字符串
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// MessageOf 取出錯誤鏈中第一個 *Error 的說明，沒有則返回 err.Error()
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
