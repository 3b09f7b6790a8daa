package testutil

import (
	"context"
	"errors"
	"testing"

	"github.com/hbjs97/actions/internal/cmdexec"
)

func TestFakeCommander_ExactMatch(t *testing.T) {
	t.Parallel()

	fc := NewFakeCommander()
	fc.Register("git -C /repo rev-parse --show-toplevel", "/repo\n", nil)

	out, err := fc.Run(context.Background(), "git", "-C", "/repo", "rev-parse", "--show-toplevel")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "/repo\n" {
		t.Errorf("got %q, want %q", string(out), "/repo\n")
	}
}

func TestFakeCommander_LongestPrefixWins(t *testing.T) {
	t.Parallel()

	fc := NewFakeCommander()
	fc.Register("git", "short", nil)
	fc.Register("git -C /a", "long", nil)

	out, err := fc.Run(context.Background(), "git", "-C", "/a", "rev-parse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "long" {
		t.Errorf("got %q, want %q", string(out), "long")
	}
}

func TestFakeCommander_NoMatch(t *testing.T) {
	t.Parallel()

	fc := NewFakeCommander()
	if _, err := fc.Run(context.Background(), "unknown", "command"); err == nil {
		t.Fatal("expected error for unregistered command")
	}
	if !fc.Called("unknown") {
		t.Error("expected call to be recorded")
	}
}

func TestFakeCommander_DefaultResponse(t *testing.T) {
	t.Parallel()

	fc := NewFakeCommander()
	fc.DefaultResponse = &Response{Output: []byte("default")}

	out, err := fc.Run(context.Background(), "any", "command")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "default" {
		t.Errorf("got %q, want %q", string(out), "default")
	}
}

func TestFakeSpawner_RecordsCalls(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	fs := &FakeSpawner{Output: &cmdexec.Output{Stdout: []byte("hi"), ExitCode: 3}, Err: boom}

	out, err := fs.Spawn(context.Background(), `echo "x"`, cmdexec.SpawnOptions{Dir: "/tmp"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if string(out.Stdout) != "hi" || out.ExitCode != 3 {
		t.Errorf("unexpected output: %+v", out)
	}
	calls := fs.Calls()
	if len(calls) != 1 || calls[0].Command != `echo "x"` || calls[0].Opts.Dir != "/tmp" {
		t.Errorf("unexpected calls: %+v", calls)
	}
}

func TestRecordingNotifier(t *testing.T) {
	t.Parallel()

	n := &RecordingNotifier{}
	n.Info("a")
	n.Error("b")
	n.Info("c")

	if got := n.Infos(); len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Errorf("unexpected infos: %v", got)
	}
	if got := n.Errors(); len(got) != 1 || got[0] != "b" {
		t.Errorf("unexpected errors: %v", got)
	}
}
