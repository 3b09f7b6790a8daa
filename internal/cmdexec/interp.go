package cmdexec

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// InterpSpawner는 시스템 셸 대신 내장 POSIX 셸 인터프리터(mvdan.cc/sh)로 명령을 실행한다.
// 설정에서 shell = "builtin"일 때 사용한다.
type InterpSpawner struct {
	// MaxOutput은 stream별 최대 캡처 크기다. 0이면 DefaultMaxOutput.
	MaxOutput int
}

var _ Spawner = (*InterpSpawner)(nil)

// Spawn은 명령을 파싱한 뒤 인터프리터로 실행한다.
func (s *InterpSpawner) Spawn(ctx context.Context, command string, opts SpawnOptions) (*Output, error) {
	prog, err := Parse(command)
	if err != nil {
		return &Output{ExitCode: -1}, fmt.Errorf("cmdexec.Spawn: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeoutOrDefault(opts.Timeout))
	defer cancel()

	env := opts.Env
	if env == nil {
		env = os.Environ()
	}
	stdout := newCappedBuffer(s.MaxOutput)
	stderr := newCappedBuffer(s.MaxOutput)

	runner, err := interp.New(
		interp.StdIO(nil, stdout, stderr),
		interp.Dir(opts.Dir),
		interp.Env(expand.ListEnviron(env...)),
	)
	if err != nil {
		return &Output{ExitCode: -1}, fmt.Errorf("cmdexec.Spawn: %w", err)
	}

	err = runner.Run(ctx, prog)
	out := &Output{
		Stdout:    stdout.Bytes(),
		Stderr:    stderr.Bytes(),
		Truncated: stdout.truncated || stderr.truncated,
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		out.ExitCode = -1
		return out, fmt.Errorf("cmdexec.Spawn: %w", ErrTimeout)
	}
	var status interp.ExitStatus
	if errors.As(err, &status) {
		out.ExitCode = int(status)
		if status == 0 {
			return out, nil
		}
		return out, fmt.Errorf("cmdexec.Spawn: %w", &ExitError{Code: int(status), Stderr: string(out.Stderr)})
	}
	if err != nil {
		out.ExitCode = -1
		return out, fmt.Errorf("cmdexec.Spawn: %w", err)
	}
	return out, nil
}

// Parse는 명령 문자열을 POSIX 셸 문법으로 파싱한다.
func Parse(command string) (*syntax.File, error) {
	parser := syntax.NewParser(syntax.Variant(syntax.LangPOSIX), syntax.KeepComments(false))
	prog, err := parser.Parse(strings.NewReader(command), "")
	if err != nil {
		return nil, fmt.Errorf("cmdexec.Parse: %w", err)
	}
	return prog, nil
}
