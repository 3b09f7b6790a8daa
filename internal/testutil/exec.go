package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/hbjs97/actions/internal/cmdexec"
)

// Response represents a pre-configured command response for FakeCommander.
type Response struct {
	Output []byte
	Err    error
}

// FakeCommander returns pre-configured responses for testing.
// Responses are keyed by "name arg1 arg2 ..."; the longest registered prefix wins.
type FakeCommander struct {
	// Responses maps command strings to their responses.
	Responses map[string]Response

	// Calls records all commands that were executed, in order.
	Calls []string

	// DefaultResponse is returned when no matching response is found.
	// If nil, an error is returned for unmatched commands.
	DefaultResponse *Response

	mu sync.Mutex
}

var _ cmdexec.Commander = (*FakeCommander)(nil)

// NewFakeCommander creates a FakeCommander with an empty response map.
func NewFakeCommander() *FakeCommander {
	return &FakeCommander{Responses: make(map[string]Response)}
}

// Register adds a response for the given command key.
func (c *FakeCommander) Register(key string, output string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Responses[key] = Response{Output: []byte(output), Err: err}
}

// Run looks up the command in Responses and returns the matching response.
func (c *FakeCommander) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	fullCmd := strings.TrimSpace(name + " " + strings.Join(args, " "))

	c.mu.Lock()
	defer c.mu.Unlock()
	c.Calls = append(c.Calls, fullCmd)

	bestKey, found := "", false
	for key := range c.Responses {
		if strings.HasPrefix(fullCmd, key) && len(key) >= len(bestKey) {
			bestKey, found = key, true
		}
	}
	if found {
		resp := c.Responses[bestKey]
		return resp.Output, resp.Err
	}
	if c.DefaultResponse != nil {
		return c.DefaultResponse.Output, c.DefaultResponse.Err
	}
	return nil, fmt.Errorf("FakeCommander: no response registered for %q", fullCmd)
}

// Called returns true if a command matching the given prefix was executed.
func (c *FakeCommander) Called(prefix string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, call := range c.Calls {
		if strings.HasPrefix(call, prefix) {
			return true
		}
	}
	return false
}

// SpawnCall records one FakeSpawner invocation.
type SpawnCall struct {
	Command string
	Opts    cmdexec.SpawnOptions
}

// FakeSpawner records spawned command lines and returns a fixed result.
type FakeSpawner struct {
	// Output is returned for every call. Nil means an empty, successful output.
	Output *cmdexec.Output
	// Err is returned for every call.
	Err error

	mu    sync.Mutex
	calls []SpawnCall
}

var _ cmdexec.Spawner = (*FakeSpawner)(nil)

// Spawn records the call.
func (s *FakeSpawner) Spawn(_ context.Context, command string, opts cmdexec.SpawnOptions) (*cmdexec.Output, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, SpawnCall{Command: command, Opts: opts})
	out := s.Output
	if out == nil {
		out = &cmdexec.Output{}
	}
	return out, s.Err
}

// Calls returns a copy of the recorded calls.
func (s *FakeSpawner) Calls() []SpawnCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]SpawnCall(nil), s.calls...)
}
