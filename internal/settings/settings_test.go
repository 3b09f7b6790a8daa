package settings_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/hbjs97/actions/internal/action"
	"github.com/hbjs97/actions/internal/config"
	"github.com/hbjs97/actions/internal/settings"
	"github.com/hbjs97/actions/internal/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEditor(t *testing.T) (*settings.Editor, *config.Store, *testutil.RecordingNotifier) {
	t.Helper()
	store := config.NewStore(testutil.SetupSampleConfig(t), zerolog.Nop())
	n := &testutil.RecordingNotifier{}
	return settings.NewEditor(store, n, zerolog.Nop()), store, n
}

func storedIDs(t *testing.T, store *config.Store) []string {
	t.Helper()
	list, err := store.Actions()
	require.NoError(t, err)
	return action.IDs(list)
}

func TestEditor_Load(t *testing.T) {
	e, _, _ := newEditor(t)

	resp := e.Handle(settings.Message{Command: settings.CommandLoad})
	require.Len(t, resp, 1)
	assert.Equal(t, settings.CommandActionsLoaded, resp[0].Command)
	assert.Equal(t, []string{"echo", "status", "wc", "off"}, action.IDs(resp[0].Actions))
	assert.Equal(t, resp[0], e.Open())
}

func TestEditor_Add(t *testing.T) {
	e, store, n := newEditor(t)

	resp := e.Handle(settings.Message{
		Command: settings.CommandAdd,
		Action:  &action.Action{ID: "new", Label: "New", Command: "true"},
	})
	require.Len(t, resp, 2)
	assert.Equal(t, settings.CommandSaveDone, resp[0].Command)
	assert.Equal(t, settings.CommandActionsLoaded, resp[1].Command)
	assert.Equal(t, []string{"echo", "status", "wc", "off", "new"}, action.IDs(resp[1].Actions))
	assert.Equal(t, []string{"echo", "status", "wc", "off", "new"}, storedIDs(t, store))
	assert.Len(t, n.Infos(), 1)
}

func TestEditor_AddDuplicateLeavesListUnchanged(t *testing.T) {
	e, store, n := newEditor(t)
	before := storedIDs(t, store)

	resp := e.Handle(settings.Message{
		Command: settings.CommandAdd,
		Action:  &action.Action{ID: "echo", Label: "Other", Command: "true"},
	})
	require.Len(t, resp, 1)
	assert.Equal(t, settings.CommandError, resp[0].Command)
	assert.Contains(t, resp[0].Error, "echo")

	assert.Equal(t, before, storedIDs(t, store))
	list, err := store.Actions()
	require.NoError(t, err)
	assert.Equal(t, "Echo", list[0].Label)
	require.Len(t, n.Errors(), 1)
}

func TestEditor_AddInvalid(t *testing.T) {
	e, store, _ := newEditor(t)
	before := storedIDs(t, store)

	resp := e.Handle(settings.Message{
		Command: settings.CommandAdd,
		Action:  &action.Action{ID: "bad id", Label: "Bad", Command: "true"},
	})
	assert.Equal(t, settings.CommandError, resp[0].Command)
	assert.Equal(t, before, storedIDs(t, store))

	resp = e.Handle(settings.Message{Command: settings.CommandAdd})
	assert.Equal(t, settings.CommandError, resp[0].Command)
}

func TestEditor_Update(t *testing.T) {
	e, store, _ := newEditor(t)

	resp := e.Handle(settings.Message{
		Command: settings.CommandUpdate,
		Action:  &action.Action{ID: "wc", Label: "Lines", Command: "wc -l"},
	})
	require.Len(t, resp, 2)

	list, err := store.Actions()
	require.NoError(t, err)
	assert.Equal(t, []string{"echo", "status", "wc", "off"}, action.IDs(list))
	assert.Equal(t, "Lines", list[2].Label)
}

func TestEditor_UnknownID(t *testing.T) {
	tests := []settings.Message{
		{Command: settings.CommandUpdate, Action: &action.Action{ID: "ghost", Label: "G", Command: "true"}},
		{Command: settings.CommandDelete, ID: "ghost"},
	}
	for _, req := range tests {
		t.Run(req.Command, func(t *testing.T) {
			e, store, n := newEditor(t)
			before := storedIDs(t, store)

			resp := e.Handle(req)
			require.Len(t, resp, 1)
			assert.Equal(t, settings.CommandError, resp[0].Command)
			assert.Equal(t, before, storedIDs(t, store))
			assert.Len(t, n.Errors(), 1)
		})
	}
}

func TestEditor_Delete(t *testing.T) {
	e, store, _ := newEditor(t)

	resp := e.Handle(settings.Message{Command: settings.CommandDelete, ID: "status"})
	require.Len(t, resp, 2)
	assert.Equal(t, []string{"echo", "wc", "off"}, action.IDs(resp[1].Actions))
	assert.Equal(t, []string{"echo", "wc", "off"}, storedIDs(t, store))
}

func TestEditor_Save(t *testing.T) {
	e, store, _ := newEditor(t)

	list := []action.Action{
		{ID: "b", Label: "B", Command: "true"},
		{ID: "a", Label: "A", Command: "true"},
	}
	resp := e.Handle(settings.Message{Command: settings.CommandSave, Actions: list})
	require.Len(t, resp, 1)
	assert.Equal(t, settings.CommandSaveDone, resp[0].Command)
	assert.Equal(t, []string{"b", "a"}, storedIDs(t, store))
}

func TestEditor_SaveRejectsDuplicates(t *testing.T) {
	e, store, _ := newEditor(t)
	before := storedIDs(t, store)

	list := []action.Action{
		{ID: "a", Label: "A", Command: "true"},
		{ID: "a", Label: "A2", Command: "true"},
	}
	resp := e.Handle(settings.Message{Command: settings.CommandSave, Actions: list})
	assert.Equal(t, settings.CommandError, resp[0].Command)
	assert.Equal(t, before, storedIDs(t, store))
}

func TestEditor_UnknownCommand(t *testing.T) {
	e, _, _ := newEditor(t)
	resp := e.Handle(settings.Message{Command: "explode"})
	require.Len(t, resp, 1)
	assert.Equal(t, settings.CommandError, resp[0].Command)
}

func TestValidateList(t *testing.T) {
	err := settings.ValidateList([]action.Action{
		{ID: "a", Label: "A", Command: "x"},
		{ID: "a", Label: "B", Command: "y"},
	})
	assert.True(t, errors.Is(err, settings.ErrDuplicateID))

	err = settings.ValidateList([]action.Action{{ID: "a"}})
	assert.ErrorIs(t, err, action.ErrInvalidDefinition)

	assert.NoError(t, settings.ValidateList(nil))
}

func TestMessage_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(settings.Message{Command: settings.CommandActionsLoaded})
	require.NoError(t, err)
	assert.JSONEq(t, `{"command":"actionsLoaded","actions":[]}`, string(data))

	data, err = json.Marshal(settings.Message{Command: settings.CommandSaveDone})
	require.NoError(t, err)
	assert.JSONEq(t, `{"command":"saveDone"}`, string(data))

	data, err = json.Marshal(settings.Message{Command: settings.CommandError, Error: "boom"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"command":"error","error":"boom"}`, string(data))
}

func TestEditor_NilNotifier(t *testing.T) {
	store := config.NewStore(testutil.SetupSampleConfig(t), zerolog.Nop())
	e := settings.NewEditor(store, nil, zerolog.Nop())

	assert.NotPanics(t, func() {
		resp := e.Handle(settings.Message{
			Command: settings.CommandAdd,
			Action:  &action.Action{ID: "echo", Label: "Dup", Command: "true"},
		})
		require.Len(t, resp, 1)
		assert.Equal(t, settings.CommandError, resp[0].Command)

		resp = e.Handle(settings.Message{
			Command: settings.CommandAdd,
			Action:  &action.Action{ID: "fresh", Label: "Fresh", Command: "true"},
		})
		require.Len(t, resp, 2)
		assert.Equal(t, settings.CommandSaveDone, resp[0].Command)
	})
}
