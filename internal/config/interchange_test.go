package config_test

import (
	"bytes"
	"testing"

	"github.com/hbjs97/actions/internal/action"
	"github.com/hbjs97/actions/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleActions = []action.Action{
	{ID: "echo", Label: "Echo", Command: "echo {file}"},
	{
		ID:               "status",
		Label:            "Git Status",
		Command:          "git status",
		Cwd:              "{workspace}",
		Contexts:         []action.Context{action.ContextSCM},
		ShowNotification: action.Bool(false),
	},
}

func TestExportImport(t *testing.T) {
	for _, f := range []config.Format{config.FormatTOML, config.FormatJSON, config.FormatYAML, config.FormatVSCode} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, config.Export(&buf, sampleActions, f))

			got, err := config.Import(buf.Bytes(), f)
			require.NoError(t, err)
			assert.Equal(t, sampleActions, got)
		})
	}
}

func TestExport_JSONUsesCamelCase(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, config.Export(&buf, sampleActions, config.FormatJSON))
	assert.Contains(t, buf.String(), `"showNotification": false`)
	assert.NotContains(t, buf.String(), "show_notification")
}

func TestImport_JSONObjectForm(t *testing.T) {
	got, err := config.Import([]byte(`{"actions":[{"id":"a","label":"A","command":"true"}]}`), config.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, action.IDs(got))
}

func TestImport_Malformed(t *testing.T) {
	_, err := config.Import([]byte(`[{"id":`), config.FormatJSON)
	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestParseFormat(t *testing.T) {
	f, err := config.ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, config.FormatYAML, f)

	_, err = config.ParseFormat("xml")
	assert.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]config.Format{
		"actions.json":                  config.FormatJSON,
		"actions.yaml":                  config.FormatYAML,
		"backup.toml":                   config.FormatTOML,
		"/home/u/.vscode/settings.json": config.FormatVSCode,
	}
	for path, want := range tests {
		got, err := config.FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := config.FormatFromPath("README")
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	existing := []action.Action{
		{ID: "a", Label: "A", Command: "1"},
		{ID: "b", Label: "B", Command: "2"},
	}
	incoming := []action.Action{
		{ID: "b", Label: "B2", Command: "22"},
		{ID: "c", Label: "C", Command: "3"},
	}

	keep := config.Merge(existing, incoming, false)
	assert.Equal(t, []string{"a", "b", "c"}, action.IDs(keep.Actions))
	assert.Equal(t, "B", keep.Actions[1].Label)
	assert.Equal(t, []string{"c"}, keep.Added)
	assert.Equal(t, []string{"b"}, keep.Skipped)

	repl := config.Merge(existing, incoming, true)
	assert.Equal(t, "B2", repl.Actions[1].Label)
	assert.Equal(t, []string{"b"}, repl.Replaced)

	// 원본 목록은 바뀌지 않는다
	assert.Equal(t, "B", existing[1].Label)
}
