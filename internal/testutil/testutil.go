// Package testutil provides common test helpers for the actions project.
package testutil

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// TempConfigFile creates a temporary config.toml with the given content
// and returns its path. The file is automatically cleaned up.
func TempConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempConfigFile: write failed: %v", err)
	}
	return path
}

// SampleConfig is a config with one action per context plus a disabled one.
const SampleConfig = `version = 1
command_timeout = 5000

[[actions]]
id = "echo"
label = "Echo"
command = "echo {file}"
contexts = ["explorer"]

[[actions]]
id = "status"
label = "Git Status"
command = "git status --short"
cwd = "{workspace}"
contexts = ["scm", "explorer"]
show_notification = false

[[actions]]
id = "wc"
label = "Word Count"
command = "wc -l {files}"
contexts = ["editor"]

[[actions]]
id = "off"
label = "Disabled"
command = "true"
enabled = false
`

// SetupSampleConfig writes SampleConfig to a temp file and returns its path.
func SetupSampleConfig(t *testing.T) string {
	t.Helper()
	return TempConfigFile(t, SampleConfig)
}

// TempTarget creates a file (with parent directories) under a temp dir and returns
// the temp root and the file's absolute path.
func TempTarget(t *testing.T, rel string) (root, path string) {
	t.Helper()

	root = t.TempDir()
	path = filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		t.Fatalf("TempTarget: mkdir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte("line\n"), 0600); err != nil {
		t.Fatalf("TempTarget: write failed: %v", err)
	}
	return root, path
}

// RecordingNotifier collects notifications for assertions.
type RecordingNotifier struct {
	mu     sync.Mutex
	infos  []string
	errors []string
}

// Info records an info message.
func (n *RecordingNotifier) Info(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.infos = append(n.infos, msg)
}

// Error records an error message.
func (n *RecordingNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
}

// Infos returns recorded info messages.
func (n *RecordingNotifier) Infos() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.infos...)
}

// Errors returns recorded error messages.
func (n *RecordingNotifier) Errors() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.errors...)
}
