package logger

import (
	"os"

	"github.com/Yat-Muk/stellar-ui/internal/pkg/sanitizer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config 日誌配置
type Config struct {
	Level      string // debug, info, warn, error
	OutputPath string // 日誌文件路徑，空則不寫文件
	MaxSize    int    // 單個文件最大大小（MB）
	MaxBackups int    // 保留的舊日誌文件數量
	MaxAge     int    // 保留的天數
	Compress   bool   // 是否壓縮
	Console    bool   // 是否輸出到控制台
}

// DefaultConfig 返回默認配置
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		OutputPath: "",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     14,
		Compress:   true,
		Console:    true,
	}
}

// New 創建新的日誌記錄器
func New(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var cores []zapcore.Core

	// 文件輸出 (JSON + 滾動)
	if cfg.OutputPath != "" {
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.OutputPath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		})

		fileEncoder := encoderConfig
		fileEncoder.EncodeLevel = zapcore.CapitalLevelEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(fileEncoder),
			fileWriter,
			level,
		))
	}

	// 控制台輸出；TUI 運行時必須關閉，否則會污染畫面
	if cfg.Console {
		consoleEncoder := encoderConfig
		consoleEncoder.EncodeLevel = zapcore.CapitalColorLevelEncoder

		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(consoleEncoder),
			zapcore.AddSync(os.Stdout),
			level,
		))
	}

	if len(cores) == 0 {
		return zap.NewNop(), nil
	}

	return zap.New(
		zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	), nil
}

// String 創建字符串字段
func String(key, val string) zap.Field {
	return zap.String(key, val)
}

// Int 創建整數字段
func Int(key string, val int) zap.Field {
	return zap.Int(key, val)
}

// Error 創建錯誤字段
func Error(err error) zap.Field {
	return zap.Error(err)
}

// Session 會話標識字段，同一次運行的所有日誌共享
func Session(id string) zap.Field {
	return zap.String("session", id)
}

// ==========================================
// 脫敏日誌字段
// ==========================================

// SanitizedString 脫敏字符串字段
func SanitizedString(key, val string) zap.Field {
	return zap.String(key, sanitizer.String(val, 2, 2))
}

// SanitizedEmail 脫敏郵箱字段
func SanitizedEmail(key, val string) zap.Field {
	return zap.String(key, sanitizer.Email(val))
}
