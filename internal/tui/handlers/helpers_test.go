package handlers

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Yat-Muk/stellar-ui/internal/application"
	"github.com/Yat-Muk/stellar-ui/internal/domain/config"
	"github.com/Yat-Muk/stellar-ui/internal/domain/effect"
	"github.com/Yat-Muk/stellar-ui/internal/domain/sequence"
	"github.com/Yat-Muk/stellar-ui/internal/pkg/clock"
	"github.com/Yat-Muk/stellar-ui/internal/tui/canvas"
	"github.com/Yat-Muk/stellar-ui/internal/tui/state"
)

var epoch = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

// memRepo 內存配置倉庫
type memRepo struct {
	mu      sync.Mutex
	cfg     *config.Config
	saveErr error
	saves   int
}

func (r *memRepo) Load(ctx context.Context) (*config.Config, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cfg == nil {
		return config.DefaultConfig(), nil
	}
	return r.cfg.DeepCopy(), nil
}

func (r *memRepo) Save(ctx context.Context, cfg *config.Config) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.cfg = cfg.DeepCopy()
	return nil
}

type testEnv struct {
	clock    *clock.Fake
	repo     *memRepo
	sched    *effect.Scheduler
	state    *state.Manager
	keys     *KeyHandler
	mouse    *MouseHandler
	cmds     *CommandBuilder
	themeSvc *application.ThemeService
}

// setupTestEnv 以假時鐘同時充當定時器，按需推進
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	log := zap.NewNop()
	clk := clock.NewFake(epoch)
	rng := rand.New(rand.NewPCG(7, 11))

	cv := canvas.New(clk, 40, 12, canvas.Colors{})
	sched := effect.NewScheduler(cv, clk, clk, rng, effect.DefaultOptions(), log)
	matcher, err := sequence.NewMatcher(sequence.Konami(), sched.Celebrate)
	require.NoError(t, err)

	repo := &memRepo{}
	cfgSvc := application.NewConfigService(repo, log)
	themeSvc := application.NewThemeService(cfgSvc, config.ThemeLight, log)

	sm := state.NewManager(&state.Config{
		Log:         log,
		Clock:       clk,
		Theme:       config.ThemeLight,
		Version:     "test",
		Canvas:      cv,
		Counter:     application.NewCounter(clk),
		Palette:     application.NewPaletteService(clk, rng, log),
		Contact:     application.NewContactService(clk, clk.Now, config.DefaultConfig().Contact, log),
		Interaction: application.NewInteractionService(matcher, sched, log),
	})

	cmds := NewCommandBuilder(log, themeSvc, 0)
	return &testEnv{
		clock:    clk,
		repo:     repo,
		sched:    sched,
		state:    sm,
		keys:     NewKeyHandler(sm, cmds, NewNotifier(clk), log),
		mouse:    NewMouseHandler(),
		cmds:     cmds,
		themeSvc: themeSvc,
	}
}

func (e *testEnv) press(k tea.KeyMsg) tea.Cmd {
	_, cmd := e.keys.Handle(k, e.state)
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func konami() []tea.KeyMsg {
	return []tea.KeyMsg{
		{Type: tea.KeyUp}, {Type: tea.KeyUp},
		{Type: tea.KeyDown}, {Type: tea.KeyDown},
		{Type: tea.KeyLeft}, {Type: tea.KeyRight},
		{Type: tea.KeyLeft}, {Type: tea.KeyRight},
		runes("b"), runes("a"),
	}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
