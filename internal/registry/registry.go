// Package registry binds configured actions to stable command identifiers
// (actions.<id>) next to the fixed picker and settings commands, and
// dispatches invocations of those identifiers. The binding table is rebuilt
// from a configuration snapshot whenever the configuration changes.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/hbjs97/actions/internal/action"
	"github.com/hbjs97/actions/internal/config"
	"github.com/hbjs97/actions/internal/executor"
	"github.com/rs/zerolog"
)

// ErrUnknownCommand는 등록되지 않은 명령 id를 호출했을 때 반환된다.
var ErrUnknownCommand = errors.New("등록되지 않은 명령")

// Invocation은 명령 호출 인자다.
type Invocation struct {
	Target    string   `json:"target"`
	Selection []string `json:"selection,omitempty"`
	// Choice는 picker 명령에서 미리 고른 작업 id다. 비어 있으면 대화형으로 고른다.
	Choice string `json:"choice,omitempty"`
}

// Dispatcher는 바인딩된 명령을 실제로 수행한다.
type Dispatcher interface {
	Run(ctx context.Context, req executor.Request) (*executor.Result, error)
	Pick(ctx context.Context, c action.Context, actions []action.Action, req executor.Request, choice string) (*executor.Result, error)
	OpenSettings(ctx context.Context) error
}

// Kind는 명령 종류다.
type Kind string

const (
	KindAction   Kind = "action"
	KindPicker   Kind = "picker"
	KindSettings Kind = "settings"
)

// Command는 등록된 명령 하나다.
type Command struct {
	ID      string         `json:"id"`
	Title   string         `json:"title"`
	Kind    Kind           `json:"kind"`
	Context action.Context `json:"context,omitempty"`
	Action  *action.Action `json:"action,omitempty"`
}

// Registry는 명령 바인딩 테이블이다. Invoke와 Rebuild는 동시에 호출해도 안전하다.
type Registry struct {
	dispatcher Dispatcher
	logger     zerolog.Logger

	mu       sync.RWMutex
	commands map[string]Command
	actions  []action.Action
	timeout  time.Duration
	submenu  bool
}

// New는 빈 Registry를 만든다. Rebuild 전에는 고정 명령만 등록되어 있다.
func New(d Dispatcher, logger zerolog.Logger) *Registry {
	r := &Registry{dispatcher: d, logger: logger}
	r.Rebuild(config.Default())
	return r
}

// Rebuild는 cfg의 작업 목록으로 바인딩을 다시 만든다.
// 잘못되었거나 중복된 작업은 로그만 남기고 건너뛰며, 비활성 작업은 바인딩하지 않는다.
func (r *Registry) Rebuild(cfg *config.Config) {
	commands := fixedCommands()
	valid, skipped := action.Partition(cfg.Actions)
	for _, err := range skipped {
		r.logger.Warn().Err(err).Msg("작업 등록 건너뜀")
	}

	bound := 0
	for _, a := range valid {
		if !a.IsEnabled() {
			r.logger.Debug().Str("action", a.ID).Msg("비활성 작업")
			continue
		}
		id := action.CommandID(a.ID)
		if _, taken := commands[id]; taken {
			r.logger.Warn().Str("action", a.ID).Msg("고정 명령과 id가 겹쳐 건너뜀")
			continue
		}
		commands[id] = Command{ID: id, Title: a.Label, Kind: KindAction, Action: &a}
		bound++
	}

	r.mu.Lock()
	r.commands = commands
	r.actions = cfg.Actions
	r.timeout = cfg.Timeout()
	r.submenu = cfg.UseSubmenu
	r.mu.Unlock()

	r.logger.Info().
		Int("bound", bound).
		Int("skipped", len(skipped)).
		Bool("use_submenu", cfg.UseSubmenu).
		Msg("명령 등록")
}

func fixedCommands() map[string]Command {
	commands := make(map[string]Command, 4)
	for _, c := range action.Contexts {
		id := action.PickerCommand(c)
		commands[id] = Command{ID: id, Title: pickerTitle(c), Kind: KindPicker, Context: c}
	}
	commands[action.CommandOpenSettings] = Command{
		ID:    action.CommandOpenSettings,
		Title: "Actions: Open Settings",
		Kind:  KindSettings,
	}
	return commands
}

func pickerTitle(c action.Context) string {
	switch c {
	case action.ContextSCM:
		return "Actions: Show SCM Actions"
	case action.ContextEditor:
		return "Actions: Show Editor Actions"
	default:
		return "Actions: Show Explorer Actions"
	}
}

// Commands는 등록된 명령을 id 순으로 반환한다.
func (r *Registry) Commands() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Command, 0, len(r.commands))
	for _, c := range r.commands {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Lookup은 id로 명령을 찾는다.
func (r *Registry) Lookup(id string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.commands[id]
	return c, ok
}

// Actions는 마지막 Rebuild에 쓰인 작업 목록 snapshot이다.
func (r *Registry) Actions() []action.Action {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]action.Action(nil), r.actions...)
}

// UseSubmenu는 마지막 설정의 use_submenu 값이다.
func (r *Registry) UseSubmenu() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.submenu
}

// Invoke는 id에 바인딩된 명령을 실행한다.
// 작업과 picker 명령은 실행 결과를, openSettings는 nil 결과를 반환한다.
func (r *Registry) Invoke(ctx context.Context, id string, inv Invocation) (*executor.Result, error) {
	r.mu.RLock()
	cmd, ok := r.commands[id]
	actions := r.actions
	timeout := r.timeout
	ids := make([]string, 0, len(r.commands))
	for k := range r.commands {
		ids = append(ids, k)
	}
	r.mu.RUnlock()

	if !ok {
		if s := Suggest(id, ids); s != "" {
			return nil, fmt.Errorf("registry.Invoke: %w: %q (혹시 %q?)", ErrUnknownCommand, id, s)
		}
		return nil, fmt.Errorf("registry.Invoke: %w: %q", ErrUnknownCommand, id)
	}

	req := executor.Request{Target: inv.Target, Selection: inv.Selection, Timeout: timeout}
	r.logger.Debug().Str("command", id).Str("target", inv.Target).Msg("명령 호출")

	switch cmd.Kind {
	case KindAction:
		req.Action = *cmd.Action
		return r.dispatcher.Run(ctx, req)
	case KindPicker:
		return r.dispatcher.Pick(ctx, cmd.Context, actions, req, inv.Choice)
	default:
		return nil, r.dispatcher.OpenSettings(ctx)
	}
}

// Suggest는 candidates 중 id와 가장 가까운 것을 반환한다. 충분히 가깝지 않으면 빈 문자열.
func Suggest(id string, candidates []string) string {
	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(id, c)
		if bestDist < 0 || d < bestDist || (d == bestDist && c < best) {
			best, bestDist = c, d
		}
	}
	limit := len(id) / 3
	if limit < 2 {
		limit = 2
	}
	if bestDist < 0 || bestDist > limit {
		return ""
	}
	return best
}
