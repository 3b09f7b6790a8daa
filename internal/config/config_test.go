package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hbjs97/actions/internal/action"
	"github.com/hbjs97/actions/internal/config"
	"github.com/hbjs97/actions/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_SampleConfig(t *testing.T) {
	cfg, err := config.Load(testutil.SetupSampleConfig(t))
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, 5*time.Second, cfg.Timeout())
	require.Len(t, cfg.Actions, 4)
	assert.Equal(t, []string{"echo", "status", "wc", "off"}, action.IDs(cfg.Actions))

	status := cfg.Actions[1]
	assert.Equal(t, "{workspace}", status.Cwd)
	assert.Equal(t, []action.Context{action.ContextSCM, action.ContextExplorer}, status.Contexts)
	assert.False(t, status.NotifiesOnSuccess())
	assert.False(t, cfg.Actions[3].IsEnabled())
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := testutil.TempConfigFile(t, `
[[actions]]
id = "a"
label = "A"
command = "true"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.CurrentVersion, cfg.Version)
	assert.Equal(t, config.DefaultCommandTimeout, cfg.CommandTimeout)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
}

func TestLoad_KeepsInvalidActions(t *testing.T) {
	path := testutil.TempConfigFile(t, `
[[actions]]
id = "no-command"
label = "Broken"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Actions, 1)
	assert.ErrorIs(t, cfg.Actions[0].Validate(), action.ErrInvalidDefinition)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed toml", "version = ["},
		{"unsupported version", "version = 2"},
		{"negative timeout", "command_timeout = -1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(testutil.TempConfigFile(t, tt.content))
			assert.ErrorIs(t, err, config.ErrConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := config.Default()
	cfg.UseSubmenu = true
	cfg.Shell = config.ShellBuiltin
	cfg.Actions = []action.Action{
		{
			ID:               "build",
			Label:            "Build",
			Command:          "make -C {dir}",
			Contexts:         []action.Context{action.ContextExplorer, action.ContextEditor},
			ShowNotification: action.Bool(false),
		},
	}

	require.NoError(t, config.Save(path, cfg))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestWriteTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actions", "config.toml")

	require.NoError(t, config.WriteTemplate(path, false))
	cfg, err := config.Load(path)
	require.NoError(t, err)
	valid, skipped := action.Partition(cfg.Actions)
	assert.Len(t, valid, 2)
	assert.Empty(t, skipped)

	err = config.WriteTemplate(path, false)
	assert.ErrorIs(t, err, config.ErrExists)
	assert.NoError(t, config.WriteTemplate(path, true))
}

func TestDefaultPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, "/tmp/xdg/actions/config.toml", config.DefaultPath())
}
