package executor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hbjs97/actions/internal/action"
	"github.com/hbjs97/actions/internal/cmdexec"
	"github.com/hbjs97/actions/internal/logging"
	"github.com/hbjs97/actions/internal/notify"
	"github.com/hbjs97/actions/internal/placeholder"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Request는 한 번의 작업 실행 요청이다.
type Request struct {
	Action action.Action
	// Target은 주 대상 경로 또는 file:// URI다.
	Target string
	// Selection은 다중 선택된 경로 목록이다.
	Selection []string
	// Timeout은 실행 제한 시간이다. 0 이하이면 cmdexec.DefaultTimeout.
	Timeout time.Duration
}

// Result는 실행 결과다.
type Result struct {
	RunID    string        `json:"run_id,omitempty"`
	ActionID string        `json:"action_id"`
	Command  string        `json:"command"`
	Dir      string        `json:"cwd"`
	Stdout   string        `json:"stdout"`
	Stderr   string        `json:"stderr"`
	ExitCode int           `json:"exit_code"`
	Duration time.Duration `json:"duration_ns"`
}

// Executor는 작업을 해석하고 프로세스를 한 번 실행한다. 상태를 갖지 않으므로 동시에 사용해도 안전하다.
type Executor struct {
	Spawner   cmdexec.Spawner
	Notifier  notify.Notifier
	Logger    zerolog.Logger
	Fs        afero.Fs
	Workspace WorkspaceLocator
	// Env는 자식 프로세스 환경이다. nil이면 현재 환경을 상속한다.
	Env []string
	// Quoting은 명령을 해석할 셸의 따옴표 문법이다. 0이면 OS 기본 셸.
	Quoting placeholder.Quoting
}

// Resolve는 실행하지 않고 명령 문자열과 작업 디렉토리만 계산한다.
func (e *Executor) Resolve(ctx context.Context, req Request) (*Result, error) {
	a := req.Action
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("executor.Resolve: %w", err)
	}
	rc, err := NewContext(ctx, e.fs(), e.Workspace, req.Target, req.Selection)
	if err != nil {
		return nil, fmt.Errorf("executor.Resolve: %w", err)
	}
	rc.Quoting = e.Quoting
	return &Result{
		ActionID: a.ID,
		Command:  placeholder.Command(a.Command, rc),
		Dir:      DeriveCwd(a, rc),
	}, nil
}

// Execute는 작업을 실행한다. 실패는 항상 Notifier로 알린다.
func (e *Executor) Execute(ctx context.Context, req Request) (*Result, error) {
	a := req.Action
	if err := a.Validate(); err != nil {
		e.Logger.Warn().Err(err).Msg("잘못된 작업 정의는 실행하지 않습니다")
		return nil, fmt.Errorf("executor.Execute: %w", err)
	}

	res, err := e.Resolve(ctx, req)
	if err != nil {
		return nil, e.fail(a, err)
	}
	res.RunID = ulid.Make().String()
	log := e.Logger.With().Str("run_id", res.RunID).Str("action", a.ID).Logger()

	if ok, _ := afero.DirExists(e.fs(), res.Dir); !ok {
		return res, e.fail(a, fmt.Errorf("%w: %s", ErrWorkingDirectoryNotFound, res.Dir))
	}

	if a.NotifiesOnSuccess() {
		e.notifier().Info(fmt.Sprintf("실행 중: %s", a.Label))
	}
	log.Debug().Str("command", res.Command).Str("cwd", res.Dir).Msg("명령 실행")

	start := time.Now()
	out, err := e.spawner().Spawn(ctx, res.Command, cmdexec.SpawnOptions{
		Dir:     res.Dir,
		Env:     e.Env,
		Timeout: req.Timeout,
	})
	res.Duration = time.Since(start)
	if out != nil {
		res.Stdout = string(out.Stdout)
		res.Stderr = string(out.Stderr)
		res.ExitCode = out.ExitCode
		if out.Truncated {
			log.Warn().Msg("출력이 잘렸습니다")
		}
	}

	if err != nil {
		log.Error().Err(err).
			Int("exit_code", res.ExitCode).
			Dur("duration", res.Duration).
			Msg("명령 실행 실패")
		return res, e.fail(a, fmt.Errorf("%w: %w", ErrExecutionFailure, err))
	}

	if res.Stdout != "" {
		log.Info().Str("stream", "stdout").Msg(logging.MaskTokens(res.Stdout))
	}
	if strings.TrimSpace(res.Stderr) != "" {
		log.Warn().Str("stream", "stderr").Msg(logging.MaskTokens(res.Stderr))
	}
	log.Debug().Dur("duration", res.Duration).Msg("명령 완료")

	if a.NotifiesOnSuccess() {
		e.notifier().Info(fmt.Sprintf("%s 완료.", a.Label))
	}
	return res, nil
}

// fail은 show_notification과 무관하게 실패를 사용자에게 알린다.
func (e *Executor) fail(a action.Action, err error) error {
	e.notifier().Error(fmt.Sprintf("%s 실패: %v", a.Label, err))
	return fmt.Errorf("executor.Execute: %w", err)
}

func (e *Executor) fs() afero.Fs {
	if e.Fs == nil {
		return afero.NewOsFs()
	}
	return e.Fs
}

func (e *Executor) notifier() notify.Notifier {
	if e.Notifier == nil {
		return notify.Discard{}
	}
	return e.Notifier
}

func (e *Executor) spawner() cmdexec.Spawner {
	if e.Spawner == nil {
		return &cmdexec.ShellSpawner{}
	}
	return e.Spawner
}
