package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Yat-Muk/stellar-ui/internal/domain/sequence"
	"github.com/Yat-Muk/stellar-ui/internal/pkg/appctx"
	"github.com/Yat-Muk/stellar-ui/internal/pkg/logger"
	"github.com/Yat-Muk/stellar-ui/internal/pkg/version"
	"github.com/Yat-Muk/stellar-ui/internal/tui/model"
)

func main() {
	// 1. 命令行參數解析
	var (
		workDir   = flag.String("dir", "", "指定工作目錄 (默認: $STELLAR_HOME 或 ~/.stellar)")
		showVer   = flag.Bool("version", false, "顯示版本信息")
		debugFlag = flag.Bool("debug", false, "開啟調試模式")
		seed      = flag.Uint64("seed", 0, "固定隨機種子，便於重現效果 (0 為隨機)")
		noMouse   = flag.Bool("no-mouse", false, "關閉鼠標追蹤")
	)
	flag.Parse()

	if *showVer {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	// 2. 環境初始化
	paths, err := appctx.NewPaths(*workDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "致命錯誤: 無法初始化路徑: %v\n", err)
		os.Exit(1)
	}

	redirectStdErr(paths.StderrFile)

	// 日誌級別與滾動參數來自配置文件，所以先加載配置
	cfg, loadErr := loadConfig(paths)

	log, err := newLogger(paths, cfg, *debugFlag)
	if err != nil {
		panic(fmt.Sprintf("日誌初始化失敗: %v", err))
	}
	log = log.With(logger.Session(appctx.NewSessionID()))
	defer log.Sync()

	log.Info("Stellar UI 正在啟動",
		zap.String("version", version.Version),
		zap.String("commit", version.GitCommit),
		zap.String("config", paths.ConfigFile),
	)
	if loadErr != nil {
		log.Warn("加載配置失敗，使用默認值", zap.Error(loadErr))
	}
	log.Info("🌟 Welcome to Stellar UI!")
	log.Info("Try the Konami Code", zap.String("sequence", sequence.KonamiHint))

	// 3. 依賴注入
	deps, err := initializeDependencies(log, paths, cfg, Options{Seed: *seed})
	if err != nil {
		log.Fatal("依賴初始化失敗", zap.Error(err))
	}

	runTUI(deps, !*noMouse)
}

func runTUI(deps *AppDependencies, mouse bool) {
	router := model.NewRouter(deps.HandlerConfig)
	mainModel := model.NewModel(router)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	p := tea.NewProgram(mainModel, opts...)

	// 崩潰保護
	defer func() {
		if r := recover(); r != nil {
			p.ReleaseTerminal()
			fmt.Printf("\n\n❌ 程序崩潰: %v\n", r)
			deps.Log.Error("Panic", zap.Any("error", r), zap.String("stack", string(debug.Stack())))
			os.Exit(1)
		}
	}()

	if _, err := p.Run(); err != nil {
		fmt.Printf("程序運行錯誤: %v\n", err)
		os.Exit(1)
	}
	deps.Log.Info("正常退出")
	fmt.Println("👋 Bye!")
}

func redirectStdErr(filename string) {
	_ = os.MkdirAll(filepath.Dir(filename), 0755)
	f, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err == nil {
		os.Stderr = f
	}
}
