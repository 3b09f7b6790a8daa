package config_test

import (
	"testing"

	"github.com/hbjs97/actions/internal/action"
	"github.com/hbjs97/actions/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vscodeSettings = `{
  // editor settings
  "editor.fontSize": 14,
  "actionsForVscode.commandTimeout": 10000,
  "actionsForVscode.useSubmenu": false,
  "actionsForVscode.actions": [
    {
      "id": "open-term",
      "label": "Open in Terminal",
      "command": "open -a Terminal {dir}",
      "contexts": ["explorer", "editor"],
      "showNotification": false, // trailing comma below
    },
  ],
}`

func TestImportVSCode(t *testing.T) {
	s, err := config.ImportVSCode([]byte(vscodeSettings))
	require.NoError(t, err)

	require.Len(t, s.Actions, 1)
	a := s.Actions[0]
	assert.Equal(t, "open-term", a.ID)
	assert.Equal(t, []action.Context{action.ContextExplorer, action.ContextEditor}, a.Contexts)
	assert.False(t, a.NotifiesOnSuccess())

	require.NotNil(t, s.CommandTimeout)
	assert.Equal(t, 10000, *s.CommandTimeout)
	require.NotNil(t, s.UseSubmenu)
	assert.False(t, *s.UseSubmenu)
}

func TestImportVSCode_Apply(t *testing.T) {
	s, err := config.ImportVSCode([]byte(vscodeSettings))
	require.NoError(t, err)

	cfg := config.Default()
	cfg.UseSubmenu = true
	s.Apply(cfg)
	assert.Equal(t, 10000, cfg.CommandTimeout)
	assert.False(t, cfg.UseSubmenu)
	assert.Empty(t, cfg.Actions)
}

func TestImportVSCode_MissingKeys(t *testing.T) {
	s, err := config.ImportVSCode([]byte(`{"editor.tabSize": 2}`))
	require.NoError(t, err)
	assert.Empty(t, s.Actions)
	assert.Nil(t, s.CommandTimeout)
	assert.Nil(t, s.UseSubmenu)
}

func TestImportVSCode_WrongType(t *testing.T) {
	_, err := config.ImportVSCode([]byte(`{"actionsForVscode.actions": "nope"}`))
	assert.ErrorIs(t, err, config.ErrConfig)
}
