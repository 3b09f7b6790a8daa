// Package cmdexec abstracts external process execution for testability.
// Commander runs argv-style helper commands (git); Spawner runs a resolved
// action command line as one shell invocation. Tests inject the fakes from
// testutil.
package cmdexec

import (
	"context"
	"os/exec"
)

// Commander abstracts argv-style external command execution.
type Commander interface {
	// Run executes an external command and returns its combined output.
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// RealCommander executes actual external commands via os/exec.
type RealCommander struct{}

var _ Commander = (*RealCommander)(nil)

// Run executes the command using os/exec.CommandContext.
func (c *RealCommander) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}
