package cmdexec

import (
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("POSIX 셸 필요")
	}
}

// spawners는 같은 명령을 시스템 셸과 내장 인터프리터 양쪽에서 검증한다.
func spawners() map[string]Spawner {
	return map[string]Spawner{
		"shell":  &ShellSpawner{Shell: "/bin/sh"},
		"interp": &InterpSpawner{},
	}
}

func TestSpawn_CapturesOutput(t *testing.T) {
	skipOnWindows(t)
	for name, s := range spawners() {
		t.Run(name, func(t *testing.T) {
			out, err := s.Spawn(context.Background(), `echo out; echo err 1>&2`, SpawnOptions{})
			require.NoError(t, err)
			assert.Equal(t, "out\n", string(out.Stdout))
			assert.Equal(t, "err\n", string(out.Stderr))
			assert.Equal(t, 0, out.ExitCode)
		})
	}
}

func TestSpawn_ExitCode(t *testing.T) {
	skipOnWindows(t)
	for name, s := range spawners() {
		t.Run(name, func(t *testing.T) {
			out, err := s.Spawn(context.Background(), `echo boom 1>&2; exit 3`, SpawnOptions{})
			require.Error(t, err)

			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, 3, exitErr.Code)
			assert.Equal(t, 3, out.ExitCode)
			assert.Contains(t, err.Error(), "exit status 3: boom")
		})
	}
}

func TestSpawn_Dir(t *testing.T) {
	skipOnWindows(t)
	dir := t.TempDir()
	for name, s := range spawners() {
		t.Run(name, func(t *testing.T) {
			out, err := s.Spawn(context.Background(), `pwd`, SpawnOptions{Dir: dir})
			require.NoError(t, err)
			assert.Equal(t, filepath.Base(dir), filepath.Base(strings.TrimSpace(string(out.Stdout))))
		})
	}
}

func TestSpawn_Env(t *testing.T) {
	skipOnWindows(t)
	for name, s := range spawners() {
		t.Run(name, func(t *testing.T) {
			out, err := s.Spawn(context.Background(), `echo "$GREETING"`, SpawnOptions{Env: []string{"GREETING=hi"}})
			require.NoError(t, err)
			assert.Equal(t, "hi\n", string(out.Stdout))
		})
	}
}

func TestSpawn_Timeout(t *testing.T) {
	skipOnWindows(t)
	for name, s := range spawners() {
		t.Run(name, func(t *testing.T) {
			start := time.Now()
			_, err := s.Spawn(context.Background(), `sleep 5`, SpawnOptions{Timeout: 100 * time.Millisecond})
			assert.ErrorIs(t, err, ErrTimeout)
			assert.Less(t, time.Since(start), 3*time.Second)
		})
	}
}

func TestInterpSpawner_ParseError(t *testing.T) {
	out, err := (&InterpSpawner{}).Spawn(context.Background(), `echo "unterminated`, SpawnOptions{})
	require.Error(t, err)
	assert.Equal(t, -1, out.ExitCode)
}

func TestCappedBuffer(t *testing.T) {
	b := newCappedBuffer(4)

	n, err := b.Write([]byte("ab"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.False(t, b.truncated)

	n, err = b.Write([]byte("cdef"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "abcd", string(b.Bytes()))
	assert.True(t, b.truncated)

	n, _ = b.Write([]byte("gh"))
	assert.Equal(t, 2, n)
	assert.Equal(t, "abcd", string(b.Bytes()))
}

func TestShellSpawner_Truncated(t *testing.T) {
	skipOnWindows(t)
	s := &ShellSpawner{Shell: "/bin/sh", MaxOutput: 8}
	out, err := s.Spawn(context.Background(), `echo 0123456789abcdef`, SpawnOptions{})
	require.NoError(t, err)
	assert.True(t, out.Truncated)
	assert.Equal(t, "01234567", string(out.Stdout))
}

func TestDetectShell(t *testing.T) {
	skipOnWindows(t)

	t.Setenv("SHELL", "/bin/bash")
	assert.Equal(t, "/bin/bash", DetectShell())

	t.Setenv("SHELL", "/usr/bin/fish")
	assert.Equal(t, "/bin/sh", DetectShell())

	t.Setenv("SHELL", "")
	assert.Equal(t, "/bin/sh", DetectShell())
}

func TestParse(t *testing.T) {
	_, err := Parse(`git log --oneline "a b" | head -5`)
	assert.NoError(t, err)

	_, err = Parse(`echo $(`)
	assert.Error(t, err)
}

func TestRealCommander_Run(t *testing.T) {
	skipOnWindows(t)
	out, err := (&RealCommander{}).Run(context.Background(), "/bin/sh", "-c", "echo hi; echo err 1>&2")
	require.NoError(t, err)
	assert.Equal(t, "hi\nerr\n", string(out))

	_, err = (&RealCommander{}).Run(context.Background(), "/bin/sh", "-c", "exit 4")
	assert.Error(t, err)
}
