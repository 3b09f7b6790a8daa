package action_test

import (
	"testing"

	"github.com/hbjs97/actions/internal/action"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		a       action.Action
		wantErr bool
	}{
		{"ok", action.Action{ID: "build-all_2", Label: "Build", Command: "make"}, false},
		{"missing id", action.Action{Label: "x", Command: "x"}, true},
		{"missing label", action.Action{ID: "x", Command: "x"}, true},
		{"missing command", action.Action{ID: "x", Label: "x"}, true},
		{"id with space", action.Action{ID: "a b", Label: "x", Command: "x"}, true},
		{"id with dot", action.Action{ID: "a.b", Label: "x", Command: "x"}, true},
		{"unknown context", action.Action{ID: "x", Label: "x", Command: "x", Contexts: []action.Context{"terminal"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.a.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, action.ErrInvalidDefinition)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDefaults(t *testing.T) {
	t.Parallel()
	a := action.Action{ID: "x", Label: "x", Command: "x"}
	assert.True(t, a.IsEnabled())
	assert.True(t, a.NotifiesOnSuccess())
	assert.Equal(t, []action.Context{action.ContextExplorer}, a.EffectiveContexts())
	assert.True(t, a.AppliesTo(action.ContextExplorer))
	assert.False(t, a.AppliesTo(action.ContextSCM))

	a.Enabled = action.Bool(false)
	a.ShowNotification = action.Bool(false)
	assert.False(t, a.IsEnabled())
	assert.False(t, a.NotifiesOnSuccess())
}

func TestVisible(t *testing.T) {
	t.Parallel()
	list := []action.Action{
		{ID: "b", Label: "B", Command: "b", Contexts: []action.Context{action.ContextSCM, action.ContextExplorer}},
		{ID: "a", Label: "A", Command: "a"},
		{ID: "off", Label: "Off", Command: "off", Enabled: action.Bool(false)},
		{ID: "broken", Label: "", Command: "x"},
		{ID: "e", Label: "E", Command: "e", Contexts: []action.Context{action.ContextEditor}},
	}

	// 정렬하지 않고 원래 순서 유지
	assert.Equal(t, []string{"b", "a"}, action.IDs(action.Visible(list, action.ContextExplorer)))
	assert.Equal(t, []string{"b"}, action.IDs(action.Visible(list, action.ContextSCM)))
	assert.Equal(t, []string{"e"}, action.IDs(action.Visible(list, action.ContextEditor)))
	assert.Empty(t, action.Visible(nil, action.ContextEditor))
}

func TestPartition(t *testing.T) {
	t.Parallel()
	list := []action.Action{
		{ID: "a", Label: "first", Command: "a"},
		{ID: "bad id", Label: "x", Command: "x"},
		{ID: "a", Label: "second", Command: "a"},
		{ID: "b", Label: "B", Command: "b"},
	}
	valid, skipped := action.Partition(list)
	require.Len(t, valid, 2)
	assert.Equal(t, "first", valid[0].Label)
	assert.Equal(t, "b", valid[1].ID)
	require.Len(t, skipped, 2)
	for _, err := range skipped {
		assert.ErrorIs(t, err, action.ErrInvalidDefinition)
	}
}

func TestParseContext(t *testing.T) {
	t.Parallel()
	c, err := action.ParseContext(" SCM ")
	require.NoError(t, err)
	assert.Equal(t, action.ContextSCM, c)

	_, err = action.ParseContext("terminal")
	assert.Error(t, err)
}

func TestFind(t *testing.T) {
	t.Parallel()
	list := []action.Action{{ID: "a"}, {ID: "b"}}
	got, ok := action.Find(list, "b")
	assert.True(t, ok)
	assert.Equal(t, "b", got.ID)

	_, ok = action.Find(list, "c")
	assert.False(t, ok)
}

func TestCommandIDs(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "actions.build", action.CommandID("build"))
	assert.Equal(t, action.CommandShowExplorerActions, action.PickerCommand(action.ContextExplorer))
	assert.Equal(t, action.CommandShowSCMActions, action.PickerCommand(action.ContextSCM))
	assert.Equal(t, action.CommandShowEditorActions, action.PickerCommand(action.ContextEditor))
}
