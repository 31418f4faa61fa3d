package appctx

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	apperrors "github.com/Yat-Muk/stellar-ui/internal/pkg/errors"
)

// EnvHome 覆蓋默認工作目錄的環境變量
const EnvHome = "STELLAR_HOME"

// Paths 定義應用程序所有的關鍵路徑
type Paths struct {
	BaseDir    string
	LogDir     string
	ConfigFile string
	LogFile    string
	StderrFile string
}

// NewPaths 解析工作目錄並確保目錄存在
// 優先級: 參數 > $STELLAR_HOME > ~/.stellar
func NewPaths(baseDir string) (*Paths, error) {
	if baseDir == "" {
		baseDir = os.Getenv(EnvHome)
	}
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodePaths, "無法獲取用戶主目錄")
		}
		baseDir = filepath.Join(home, ".stellar")
	}

	absPath, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodePaths, "無法解析絕對路徑")
	}

	logDir := filepath.Join(absPath, "logs")
	paths := &Paths{
		BaseDir:    absPath,
		LogDir:     logDir,
		ConfigFile: filepath.Join(absPath, "config.yaml"),
		LogFile:    filepath.Join(logDir, "stellar.log"),
		StderrFile: filepath.Join(logDir, "stderr.log"),
	}

	if err := os.MkdirAll(paths.BaseDir, 0700); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodePaths, fmt.Sprintf("無法創建目錄 %s", paths.BaseDir))
	}
	if err := os.MkdirAll(paths.LogDir, 0755); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodePaths, fmt.Sprintf("無法創建目錄 %s", paths.LogDir))
	}

	return paths, nil
}

// NewSessionID 生成本次運行的會話標識
func NewSessionID() string {
	return uuid.NewString()
}
