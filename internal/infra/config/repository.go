package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	domainConfig "github.com/Yat-Muk/stellar-ui/internal/domain/config"
	apperrors "github.com/Yat-Muk/stellar-ui/internal/pkg/errors"
)

// FileRepository 基於 YAML 文件的配置倉庫
type FileRepository struct {
	filePath string
	mu       sync.RWMutex
	fileMu   sync.Mutex
	migrator *domainConfig.Migrator
	logger   *zap.Logger

	cached      *domainConfig.Config
	lastModTime time.Time
	lastSize    int64
}

var _ domainConfig.Repository = (*FileRepository)(nil)

func NewFileRepository(path string, logger *zap.Logger) *FileRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileRepository{
		filePath: path,
		migrator: domainConfig.NewMigrator(),
		logger:   logger.Named("config"),
	}
}

// Path 配置文件路徑
func (r *FileRepository) Path() string { return r.filePath }

// Load 加載配置。文件不存在時返回默認配置；文件未變更時走內存緩存
func (r *FileRepository) Load(ctx context.Context) (*domainConfig.Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	stat, err := os.Stat(r.filePath)
	if os.IsNotExist(err) {
		r.mu.RUnlock()
		r.logger.Info("配置文件不存在，使用默認配置", zap.String("path", r.filePath))
		return domainConfig.DefaultConfig(), nil
	}
	if err != nil {
		r.mu.RUnlock()
		return nil, apperrors.Wrap(err, apperrors.CodeStateLoad, "檢查配置文件狀態失敗")
	}
	if r.hit(stat) {
		cfg := r.cached.DeepCopy()
		r.mu.RUnlock()
		r.logger.Debug("配置未變更，使用內存緩存")
		return cfg, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	// 雙重檢查
	stat, err = os.Stat(r.filePath)
	if os.IsNotExist(err) {
		return domainConfig.DefaultConfig(), nil
	}
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeStateLoad, "檢查配置文件狀態失敗")
	}
	if r.hit(stat) {
		return r.cached.DeepCopy(), nil
	}

	r.fileMu.Lock()
	content, err := os.ReadFile(r.filePath)
	r.fileMu.Unlock()
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeStateLoad, "讀取配置文件失敗")
	}

	cfg, err := r.decode(content)
	if err != nil {
		return nil, err
	}

	r.cached = cfg.DeepCopy()
	r.lastModTime = stat.ModTime()
	r.lastSize = stat.Size()

	r.logger.Info("配置文件已從磁盤加載",
		zap.String("path", r.filePath),
		zap.String("theme", cfg.Theme.String()),
		zap.Time("mod_time", r.lastModTime),
	)
	return cfg, nil
}

func (r *FileRepository) hit(stat os.FileInfo) bool {
	return r.cached != nil &&
		!stat.ModTime().After(r.lastModTime) &&
		stat.Size() == r.lastSize
}

// decode 解析並遷移。舊版本文件鋪在零值上遷移，最新版本鋪在默認值上，缺省字段取默認
func (r *FileRepository) decode(content []byte) (*domainConfig.Config, error) {
	var probe struct {
		Version int `yaml:"version"`
	}
	if err := yaml.Unmarshal(content, &probe); err != nil {
		return nil, corrupt(err, "解析配置文件格式失敗")
	}

	var cfg *domainConfig.Config
	if probe.Version < domainConfig.ConfigVersionLatest {
		cfg = &domainConfig.Config{}
	} else {
		cfg = domainConfig.DefaultConfig()
	}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, corrupt(err, "解析配置文件格式失敗")
	}

	if r.migrator.NeedsMigration(cfg) {
		from := cfg.Version
		migrated, err := r.migrator.MigrateToLatest(cfg)
		if err != nil {
			return nil, corrupt(err, "配置遷移失敗")
		}
		r.logger.Info("配置已遷移",
			zap.Int("from", from),
			zap.Int("to", domainConfig.ConfigVersionLatest),
		)
		cfg = migrated
	}

	if cfg.Version > domainConfig.ConfigVersionLatest {
		return nil, apperrors.Wrap(
			fmt.Errorf("%w: v%d", apperrors.ErrConfigVersion, cfg.Version),
			apperrors.CodeStateLoad, "配置版本過新",
		)
	}

	if err := cfg.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeStateLoad, "配置校驗失敗")
	}

	// 統一主題大小寫
	theme, _ := domainConfig.ParseTheme(cfg.Theme.String())
	cfg.Theme = theme

	return cfg, nil
}

func corrupt(err error, message string) error {
	return apperrors.Wrap(fmt.Errorf("%w: %v", apperrors.ErrStateCorrupt, err), apperrors.CodeStateLoad, message)
}

// Save 原子寫入配置 (臨時文件 -> Sync -> Rename)
func (r *FileRepository) Save(ctx context.Context, cfg *domainConfig.Config) error {
	if cfg == nil {
		return apperrors.New(apperrors.CodeStateSave, "配置對象為空")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return apperrors.Wrap(err, apperrors.CodeStateSave, "拒絕保存無效配置")
	}

	r.fileMu.Lock()
	defer r.fileMu.Unlock()

	snapshot := cfg.DeepCopy()
	snapshot.Version = domainConfig.ConfigVersionLatest

	data, err := yaml.Marshal(snapshot)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeStateSave, "序列化配置失敗")
	}

	dir := filepath.Dir(r.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return apperrors.Wrap(err, apperrors.CodeStateSave, "創建配置目錄失敗")
	}

	tmpFile, err := os.CreateTemp(dir, "config.*.yaml.tmp")
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeStateSave, "創建臨時文件失敗")
	}
	tmpName := tmpFile.Name()

	ok := false
	defer func() {
		if !ok {
			tmpFile.Close()
			os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return apperrors.Wrap(err, apperrors.CodeStateSave, "寫入數據失敗")
	}
	if err := tmpFile.Sync(); err != nil {
		return apperrors.Wrap(err, apperrors.CodeStateSave, "同步磁盤失敗")
	}
	if err := tmpFile.Close(); err != nil {
		return apperrors.Wrap(err, apperrors.CodeStateSave, "關閉臨時文件失敗")
	}
	if err := os.Chmod(tmpName, 0600); err != nil {
		r.logger.Warn("設置文件權限失敗", zap.Error(err))
	}
	if err := os.Rename(tmpName, r.filePath); err != nil {
		return apperrors.Wrap(err, apperrors.CodeStateSave, "替換配置文件失敗")
	}
	ok = true

	r.mu.Lock()
	r.cached = snapshot
	if stat, err := os.Stat(r.filePath); err == nil {
		r.lastModTime = stat.ModTime()
		r.lastSize = stat.Size()
	}
	r.mu.Unlock()

	r.logger.Debug("配置已保存", zap.String("path", r.filePath))
	return nil
}
