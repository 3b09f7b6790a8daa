// Package settings implements the settings-editor message protocol: a
// front-end sends load, save, add, update and delete requests and receives
// the full action list (actionsLoaded) and save acknowledgements (saveDone).
// Every mutation is a read-modify-write of the configuration store; rejected
// requests leave the stored list unchanged.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/hbjs97/actions/internal/action"
	"github.com/hbjs97/actions/internal/notify"
	"github.com/rs/zerolog"
)

var (
	// ErrDuplicateID는 add 요청의 id가 이미 존재할 때 반환된다.
	ErrDuplicateID = errors.New("이미 존재하는 작업 id")
	// ErrUnknownID는 update/delete 요청의 id를 찾을 수 없을 때 반환된다.
	ErrUnknownID = errors.New("존재하지 않는 작업 id")
	// ErrUnknownCommand는 지원하지 않는 메시지 command다.
	ErrUnknownCommand = errors.New("알 수 없는 메시지")
)

// 요청 command.
const (
	CommandLoad   = "load"
	CommandSave   = "save"
	CommandAdd    = "add"
	CommandUpdate = "update"
	CommandDelete = "delete"
)

// 응답 command.
const (
	CommandActionsLoaded = "actionsLoaded"
	CommandSaveDone      = "saveDone"
	CommandError         = "error"
)

// Message는 editor와 주고받는 메시지 하나다.
type Message struct {
	Command string          `json:"command"`
	Action  *action.Action  `json:"action,omitempty"`
	Actions []action.Action `json:"actions,omitempty"`
	ID      string          `json:"id,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// MarshalJSON은 actionsLoaded에 빈 목록도 "actions": []로 싣는다.
func (m Message) MarshalJSON() ([]byte, error) {
	type wire Message
	if m.Command != CommandActionsLoaded {
		return json.Marshal(wire(m))
	}
	list := m.Actions
	if list == nil {
		list = []action.Action{}
	}
	return json.Marshal(struct {
		wire
		Actions []action.Action `json:"actions"`
	}{wire(m), list})
}

// Store는 작업 목록 저장소다. config.Store가 구현한다.
type Store interface {
	Actions() ([]action.Action, error)
	UpdateActions(actions []action.Action) error
}

// Editor는 settings 메시지를 처리한다. 여러 transport가 하나의 Editor를 공유할 수 있다.
type Editor struct {
	store    Store
	notifier notify.Notifier
	logger   zerolog.Logger
	mu       sync.Mutex
}

// NewEditor는 Editor를 생성한다.
func NewEditor(store Store, notifier notify.Notifier, logger zerolog.Logger) *Editor {
	return &Editor{store: store, notifier: notifier, logger: logger}
}

// Open은 editor가 열릴 때 보내는 초기 목록이다.
func (e *Editor) Open() Message {
	return e.Handle(Message{Command: CommandLoad})[0]
}

// Handle은 요청 하나를 처리하고 응답 메시지를 순서대로 반환한다.
// 실패하면 error 메시지 하나를 반환하고 notifier에도 알린다.
func (e *Editor) Handle(req Message) []Message {
	e.mu.Lock()
	defer e.mu.Unlock()

	log := e.logger.With().Str("command", req.Command).Logger()
	resp, err := e.handle(req)
	if err != nil {
		log.Warn().Err(err).Msg("settings 요청 거부")
		e.note().Error(err.Error())
		return []Message{{Command: CommandError, Error: err.Error()}}
	}
	log.Debug().Int("responses", len(resp)).Msg("settings 요청 처리")
	return resp
}

func (e *Editor) handle(req Message) ([]Message, error) {
	switch req.Command {
	case CommandLoad:
		loaded, err := e.loaded()
		if err != nil {
			return nil, err
		}
		return []Message{loaded}, nil
	case CommandSave:
		if err := e.save(req.Actions); err != nil {
			return nil, err
		}
		return []Message{{Command: CommandSaveDone}}, nil
	case CommandAdd:
		return e.mutate(req, add)
	case CommandUpdate:
		return e.mutate(req, update)
	case CommandDelete:
		return e.mutate(req, remove)
	}
	return nil, fmt.Errorf("settings.Handle: %w: %q", ErrUnknownCommand, req.Command)
}

func (e *Editor) loaded() (Message, error) {
	list, err := e.store.Actions()
	if err != nil {
		return Message{}, fmt.Errorf("settings.load: %w", err)
	}
	return Message{Command: CommandActionsLoaded, Actions: list}, nil
}

func (e *Editor) save(list []action.Action) error {
	if err := ValidateList(list); err != nil {
		return err
	}
	if err := e.store.UpdateActions(list); err != nil {
		return fmt.Errorf("settings.save: %w", err)
	}
	e.note().Info("작업을 저장했습니다.")
	return nil
}

func (e *Editor) note() notify.Notifier {
	if e.notifier == nil {
		return notify.Discard{}
	}
	return e.notifier
}

type mutation func(list []action.Action, req Message) ([]action.Action, error)

// mutate는 현재 목록에 변경을 적용해 저장한 뒤 saveDone과 새 목록을 반환한다.
func (e *Editor) mutate(req Message, fn mutation) ([]Message, error) {
	list, err := e.store.Actions()
	if err != nil {
		return nil, fmt.Errorf("settings.%s: %w", req.Command, err)
	}
	next, err := fn(append([]action.Action(nil), list...), req)
	if err != nil {
		return nil, err
	}
	if err := e.save(next); err != nil {
		return nil, err
	}
	loaded, err := e.loaded()
	if err != nil {
		return nil, err
	}
	return []Message{{Command: CommandSaveDone}, loaded}, nil
}

func add(list []action.Action, req Message) ([]action.Action, error) {
	if req.Action == nil {
		return nil, fmt.Errorf("settings.add: %w: action 필수", action.ErrInvalidDefinition)
	}
	if _, ok := action.Find(list, req.Action.ID); ok {
		return nil, fmt.Errorf("settings.add: %w: %q", ErrDuplicateID, req.Action.ID)
	}
	if err := req.Action.Validate(); err != nil {
		return nil, err
	}
	return append(list, *req.Action), nil
}

func update(list []action.Action, req Message) ([]action.Action, error) {
	if req.Action == nil {
		return nil, fmt.Errorf("settings.update: %w: action 필수", action.ErrInvalidDefinition)
	}
	i := indexOf(list, req.Action.ID)
	if i < 0 {
		return nil, fmt.Errorf("settings.update: %w: %q", ErrUnknownID, req.Action.ID)
	}
	if err := req.Action.Validate(); err != nil {
		return nil, err
	}
	list[i] = *req.Action
	return list, nil
}

func remove(list []action.Action, req Message) ([]action.Action, error) {
	i := indexOf(list, req.ID)
	if i < 0 {
		return nil, fmt.Errorf("settings.delete: %w: %q", ErrUnknownID, req.ID)
	}
	return append(list[:i], list[i+1:]...), nil
}

func indexOf(list []action.Action, id string) int {
	for i, a := range list {
		if a.ID == id {
			return i
		}
	}
	return -1
}

// ValidateList는 저장할 목록의 모든 작업이 유효하고 id가 유일한지 검사한다.
func ValidateList(list []action.Action) error {
	seen := make(map[string]bool, len(list))
	for _, a := range list {
		if err := a.Validate(); err != nil {
			return err
		}
		if seen[a.ID] {
			return fmt.Errorf("settings.ValidateList: %w: %q", ErrDuplicateID, a.ID)
		}
		seen[a.ID] = true
	}
	return nil
}
