package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/Yat-Muk/stellar-ui/internal/domain/sequence"
)

// 由 -ldflags "-X" 在構建時注入
var (
	Version   = "dev"
	BuildTime = ""
	GoVersion = runtime.Version()
	GitCommit = ""
)

const commitLen = 7

// Short 頭部顯示的版本：發布版 v1.2.0，帶提交時 v1.2.0+abc1234，本地構建為 dev
func Short() string {
	v := "dev"
	if Version != "" && Version != "dev" {
		v = "v" + strings.TrimPrefix(Version, "v")
	}
	if GitCommit != "" {
		v += "+" + GitCommit[:min(len(GitCommit), commitLen)]
	}
	return v
}

// Info --version 的輸出，最後一行是彩蛋提示
func Info() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "✦ Stellar UI %s\n", Short())
	if BuildTime != "" {
		fmt.Fprintf(&sb, "  built  %s\n", BuildTime)
	}
	fmt.Fprintf(&sb, "  go     %s\n", GoVersion)
	fmt.Fprintf(&sb, "  psst   %s", sequence.KonamiHint)
	return sb.String()
}
