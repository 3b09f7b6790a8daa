package cmdexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

const (
	// DefaultTimeout는 timeout이 지정되지 않았을 때의 실행 제한 시간이다.
	DefaultTimeout = 30 * time.Second
	// DefaultMaxOutput는 stream별로 보관하는 최대 출력 바이트 수다.
	DefaultMaxOutput = 1 << 20
	// KillGrace는 timeout 후 강제 종료 전 대기 시간이다.
	KillGrace = 200 * time.Millisecond
)

// ErrTimeout는 명령이 제한 시간 안에 끝나지 않았을 때 반환된다.
var ErrTimeout = errors.New("명령 실행 시간 초과")

// ExitError는 명령이 0이 아닌 상태로 종료되었음을 나타낸다.
type ExitError struct {
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("exit status %d", e.Code)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

// SpawnOptions는 한 번의 프로세스 실행 옵션이다.
type SpawnOptions struct {
	// Dir은 작업 디렉토리다.
	Dir string
	// Env는 전체 환경 변수다. nil이면 현재 프로세스 환경을 상속한다.
	Env []string
	// Timeout은 실행 제한 시간이다. 0 이하이면 DefaultTimeout.
	Timeout time.Duration
}

// Output은 완료된(또는 실패한) 실행의 캡처 결과다.
type Output struct {
	Stdout    []byte
	Stderr    []byte
	ExitCode  int
	Truncated bool
}

// Spawner는 명령 문자열 하나를 셸 호출 한 번으로 실행한다.
// 0이 아닌 종료는 *ExitError, 시간 초과는 ErrTimeout을 감싼 에러로 보고한다.
// 에러가 있어도 Output은 캡처된 만큼 채워서 반환한다.
type Spawner interface {
	Spawn(ctx context.Context, command string, opts SpawnOptions) (*Output, error)
}

// ShellSpawner는 시스템 셸(<shell> -c)로 명령을 실행한다.
type ShellSpawner struct {
	// Shell은 셸 경로다. 비어 있으면 DetectShell().
	Shell string
	// MaxOutput은 stream별 최대 캡처 크기다. 0이면 DefaultMaxOutput.
	MaxOutput int
}

var _ Spawner = (*ShellSpawner)(nil)

// Spawn은 명령을 실행하고 종료까지 기다린다.
func (s *ShellSpawner) Spawn(ctx context.Context, command string, opts SpawnOptions) (*Output, error) {
	shell := s.Shell
	if shell == "" {
		shell = DetectShell()
	}
	ctx, cancel := context.WithTimeout(ctx, timeoutOrDefault(opts.Timeout))
	defer cancel()

	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.CommandContext(ctx, shell, "/c", command)
	} else {
		cmd = exec.CommandContext(ctx, shell, "-c", command)
	}
	cmd.Dir = opts.Dir
	cmd.Env = opts.Env
	if cmd.Env == nil {
		cmd.Env = os.Environ()
	}
	setProcessGroup(cmd)
	cmd.Cancel = func() error { return killProcessGroup(cmd) }
	cmd.WaitDelay = KillGrace

	stdout := newCappedBuffer(s.MaxOutput)
	stderr := newCappedBuffer(s.MaxOutput)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	out := &Output{
		Stdout:    stdout.Bytes(),
		Stderr:    stderr.Bytes(),
		Truncated: stdout.truncated || stderr.truncated,
	}
	out.ExitCode = -1
	if cmd.ProcessState != nil {
		out.ExitCode = cmd.ProcessState.ExitCode()
	}
	return out, classify(ctx, err, out)
}

// DetectShell은 명령 실행에 사용할 셸을 결정한다.
func DetectShell() string {
	if runtime.GOOS == "windows" {
		if comspec := os.Getenv("COMSPEC"); comspec != "" {
			return comspec
		}
		return "cmd.exe"
	}
	if s := os.Getenv("SHELL"); s != "" && !strings.HasSuffix(s, "/fish") && !strings.HasSuffix(s, "/nu") {
		return s
	}
	return "/bin/sh"
}

func classify(ctx context.Context, err error, out *Output) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("cmdexec.Spawn: %w", ErrTimeout)
	}
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("cmdexec.Spawn: %w", &ExitError{Code: exitErr.ExitCode(), Stderr: string(out.Stderr)})
	}
	return fmt.Errorf("cmdexec.Spawn: %w", err)
}

func timeoutOrDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return DefaultTimeout
	}
	return d
}

// cappedBuffer는 limit 바이트까지만 보관하고 나머지는 버린다.
type cappedBuffer struct {
	buf       bytes.Buffer
	limit     int
	truncated bool
}

func newCappedBuffer(limit int) *cappedBuffer {
	if limit <= 0 {
		limit = DefaultMaxOutput
	}
	return &cappedBuffer{limit: limit}
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	room := b.limit - b.buf.Len()
	if room <= 0 {
		b.truncated = b.truncated || len(p) > 0
		return len(p), nil
	}
	if len(p) > room {
		b.buf.Write(p[:room])
		b.truncated = true
		return len(p), nil
	}
	return b.buf.Write(p)
}

func (b *cappedBuffer) Bytes() []byte {
	return b.buf.Bytes()
}
