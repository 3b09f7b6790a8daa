// Package action defines user-configured actions: named shell command
// templates bound to one or more UI contexts (explorer, scm, editor).
// Actions are owned by the configuration store and are read-only here.
package action

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidDefinition는 필수 필드가 없거나 형식이 잘못된 작업 정의에 대해 반환된다.
var ErrInvalidDefinition = errors.New("잘못된 작업 정의")

// Context는 작업을 호출할 수 있는 UI 표면이다.
type Context string

const (
	// ContextExplorer는 파일 탐색기 컨텍스트 메뉴다.
	ContextExplorer Context = "explorer"
	// ContextSCM은 소스 컨트롤 패널이다.
	ContextSCM Context = "scm"
	// ContextEditor는 에디터 컨텍스트 메뉴다.
	ContextEditor Context = "editor"
)

// Contexts는 지원하는 모든 컨텍스트다.
var Contexts = []Context{ContextExplorer, ContextSCM, ContextEditor}

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Action은 하나의 사용자 정의 작업이다.
type Action struct {
	ID               string    `toml:"id" json:"id" yaml:"id"`
	Label            string    `toml:"label" json:"label" yaml:"label"`
	Command          string    `toml:"command" json:"command" yaml:"command"`
	Cwd              string    `toml:"cwd,omitempty" json:"cwd,omitempty" yaml:"cwd,omitempty"`
	Contexts         []Context `toml:"contexts,omitempty" json:"contexts,omitempty" yaml:"contexts,omitempty"`
	Icon             string    `toml:"icon,omitempty" json:"icon,omitempty" yaml:"icon,omitempty"`
	ShowNotification *bool     `toml:"show_notification" json:"showNotification,omitempty" yaml:"showNotification,omitempty"`
	Enabled          *bool     `toml:"enabled" json:"enabled,omitempty" yaml:"enabled,omitempty"`
}

// ParseContext는 문자열을 Context로 변환한다.
func ParseContext(s string) (Context, error) {
	c := Context(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Contexts {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("action.ParseContext: 알 수 없는 컨텍스트: %q (explorer, scm, editor)", s)
}

// Validate는 작업 정의가 실행 가능한지 검사한다.
func (a Action) Validate() error {
	switch {
	case a.ID == "":
		return fmt.Errorf("action.Validate: %w: id 필수", ErrInvalidDefinition)
	case a.Label == "":
		return fmt.Errorf("action.Validate: %w: %s: label 필수", ErrInvalidDefinition, a.ID)
	case a.Command == "":
		return fmt.Errorf("action.Validate: %w: %s: command 필수", ErrInvalidDefinition, a.ID)
	case !idPattern.MatchString(a.ID):
		return fmt.Errorf("action.Validate: %w: id %q는 영문, 숫자, '-', '_'만 사용 가능", ErrInvalidDefinition, a.ID)
	}
	for _, c := range a.Contexts {
		if _, err := ParseContext(string(c)); err != nil {
			return fmt.Errorf("action.Validate: %w: %s: 알 수 없는 컨텍스트 %q", ErrInvalidDefinition, a.ID, c)
		}
	}
	return nil
}

// IsEnabled는 enabled 설정값을 반환한다. 미설정이면 true.
func (a Action) IsEnabled() bool {
	return a.Enabled == nil || *a.Enabled
}

// NotifiesOnSuccess는 show_notification 설정값을 반환한다. 미설정이면 true.
// 실패 알림은 이 값과 무관하게 항상 표시된다.
func (a Action) NotifiesOnSuccess() bool {
	return a.ShowNotification == nil || *a.ShowNotification
}

// EffectiveContexts는 작업이 노출되는 컨텍스트 목록이다. 비어 있으면 explorer.
func (a Action) EffectiveContexts() []Context {
	if len(a.Contexts) == 0 {
		return []Context{ContextExplorer}
	}
	return a.Contexts
}

// AppliesTo는 작업이 주어진 컨텍스트에 노출되는지 반환한다.
func (a Action) AppliesTo(c Context) bool {
	for _, ec := range a.EffectiveContexts() {
		if ec == c {
			return true
		}
	}
	return false
}

// Visible은 컨텍스트 c의 picker에 표시할 작업을 원래 순서대로 반환한다.
func Visible(actions []Action, c Context) []Action {
	var out []Action
	for _, a := range actions {
		if !a.IsEnabled() || a.Validate() != nil {
			continue
		}
		if a.AppliesTo(c) {
			out = append(out, a)
		}
	}
	return out
}

// Partition은 등록 가능한 작업과 건너뛸 작업의 사유를 분리한다.
// 같은 id가 반복되면 처음 것만 유효하다.
func Partition(actions []Action) (valid []Action, skipped []error) {
	seen := make(map[string]bool, len(actions))
	for _, a := range actions {
		if err := a.Validate(); err != nil {
			skipped = append(skipped, err)
			continue
		}
		if seen[a.ID] {
			skipped = append(skipped, fmt.Errorf("action.Partition: %w: 중복 id %q", ErrInvalidDefinition, a.ID))
			continue
		}
		seen[a.ID] = true
		valid = append(valid, a)
	}
	return valid, skipped
}

// Find는 id로 작업을 찾는다.
func Find(actions []Action, id string) (Action, bool) {
	for _, a := range actions {
		if a.ID == id {
			return a, true
		}
	}
	return Action{}, false
}

// IDs는 작업 id 목록을 반환한다.
func IDs(actions []Action) []string {
	ids := make([]string, len(actions))
	for i, a := range actions {
		ids[i] = a.ID
	}
	return ids
}

// Bool은 *bool 필드 설정용 헬퍼다.
func Bool(v bool) *bool {
	return &v
}
