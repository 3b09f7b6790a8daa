package cli

import (
	"context"
	"io"
	"os"

	"github.com/hbjs97/actions/internal/action"
	"github.com/hbjs97/actions/internal/cmdexec"
	"github.com/hbjs97/actions/internal/config"
	"github.com/hbjs97/actions/internal/executor"
	"github.com/hbjs97/actions/internal/git"
	"github.com/hbjs97/actions/internal/logging"
	"github.com/hbjs97/actions/internal/notify"
	"github.com/hbjs97/actions/internal/picker"
	"github.com/hbjs97/actions/internal/placeholder"
	"github.com/hbjs97/actions/internal/registry"
	"github.com/hbjs97/actions/internal/settings"
	"github.com/hbjs97/actions/internal/setup"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// App은 CLI 명령들이 공유하는 의존성이다. 비어 있는 필드는 실제 구현으로 채워진다.
type App struct {
	CfgPath   string
	Workspace string
	Verbose   bool

	Commander  cmdexec.Commander
	Spawner    cmdexec.Spawner
	Fs         afero.Fs
	Notifier   notify.Notifier
	Chooser    picker.Chooser
	FormRunner setup.FormRunner
	// LogOutput은 로그 출력 대상이다. nil이면 stderr.
	LogOutput io.Writer
}

// NewApp은 실제 구현으로 채워진 App을 만든다.
func NewApp() *App {
	return &App{
		Commander:  &cmdexec.RealCommander{},
		Notifier:   notify.NewTerminal(),
		Chooser:    &picker.HuhChooser{},
		FormRunner: &setup.HuhFormRunner{},
	}
}

// session은 명령 하나를 실행하는 동안 쓰는 조립된 구성 요소다.
type session struct {
	cfg      *config.Config
	store    *config.Store
	logger   zerolog.Logger
	executor *executor.Executor
	picker   *picker.Picker
	registry *registry.Registry
	handlers *registry.Handlers
	editor   *settings.Editor
}

func (a *App) store(logger zerolog.Logger) *config.Store {
	return config.NewStore(a.CfgPath, logger)
}

func (a *App) logger(levelName string) zerolog.Logger {
	lc := logging.DefaultConfig()
	lc.Level = logging.ParseLevel(levelName)
	if a.Verbose {
		lc.Level = logging.DebugLevel
	}
	if a.LogOutput != nil {
		lc.Output = a.LogOutput
		lc.Pretty = false
	}
	return logging.New(lc)
}

func (a *App) notifier() notify.Notifier {
	if a.Notifier == nil {
		return notify.Discard{}
	}
	return a.Notifier
}

func (a *App) spawner(cfg *config.Config) cmdexec.Spawner {
	if a.Spawner != nil {
		return a.Spawner
	}
	if cfg.Shell == config.ShellBuiltin {
		return &cmdexec.InterpSpawner{}
	}
	return &cmdexec.ShellSpawner{Shell: cfg.Shell}
}

// quoting은 내장 인터프리터면 OS와 무관하게 POSIX 문법을 쓴다.
func quoting(cfg *config.Config) placeholder.Quoting {
	if cfg.Shell == config.ShellBuiltin {
		return placeholder.QuotePOSIX
	}
	return placeholder.QuotePlatform
}

func (a *App) workspace() executor.WorkspaceLocator {
	if a.Workspace != "" {
		return fixedWorkspace(a.Workspace)
	}
	return git.NewAdapter(a.commander())
}

func (a *App) commander() cmdexec.Commander {
	if a.Commander == nil {
		return &cmdexec.RealCommander{}
	}
	return a.Commander
}

// fixedWorkspace는 --workspace로 지정된 루트를 항상 반환한다.
type fixedWorkspace string

func (w fixedWorkspace) WorkspaceRoot(context.Context, string) (string, bool) {
	return string(w), true
}

// open은 설정을 읽고 executor, picker, registry, settings editor를 조립한다.
func (a *App) open() (*session, error) {
	boot := a.logger("")
	store := a.store(boot)
	cfg, err := store.Load()
	if err != nil {
		return nil, err
	}

	logger := a.logger(cfg.LogLevel)
	store = a.store(logger)
	n := a.notifier()

	exec := &executor.Executor{
		Spawner:   a.spawner(cfg),
		Notifier:  n,
		Logger:    logger,
		Fs:        a.Fs,
		Workspace: a.workspace(),
		Quoting:   quoting(cfg),
	}
	chooser := a.Chooser
	if chooser == nil {
		chooser = &picker.HuhChooser{}
	}
	p := &picker.Picker{Chooser: chooser, Runner: exec, Notifier: n}

	s := &session{
		cfg:      cfg,
		store:    store,
		logger:   logger,
		executor: exec,
		picker:   p,
		editor:   settings.NewEditor(store, n, logger),
	}
	handlers := &registry.Handlers{
		Runner: exec,
		Picker: p,
		Settings: func(ctx context.Context) error {
			return a.runInteractiveSettings(ctx, s)
		},
	}
	s.handlers = handlers
	s.registry = registry.New(handlers, logger)
	s.registry.Rebuild(cfg)
	return s, nil
}

func (a *App) runInteractiveSettings(ctx context.Context, s *session) error {
	fr := a.FormRunner
	if fr == nil {
		fr = &setup.HuhFormRunner{}
	}
	r := &setup.Runner{
		CfgPath:    a.CfgPath,
		Commander:  a.commander(),
		Editor:     s.editor,
		FormRunner: fr,
	}
	return r.Run(ctx)
}

// invocation은 경로 인자로 호출 인자를 만든다.
// 첫 경로가 대상이고, 경로가 둘 이상이면 모두 다중 선택으로 넘긴다.
func invocation(paths []string) registry.Invocation {
	var inv registry.Invocation
	if len(paths) > 0 {
		inv.Target = paths[0]
	}
	if len(paths) > 1 {
		inv.Selection = paths
	}
	return inv
}

// activeFile은 에디터 컨텍스트에서 경로가 없을 때 쓰는 현재 파일이다.
func activeFile(c action.Context) string {
	if c != action.ContextEditor {
		return ""
	}
	return os.Getenv("ACTIONS_ACTIVE_FILE")
}
