// Package setup is the interactive terminal editor for configured actions.
// It drives the same settings protocol as the HTTP and stdio front-ends,
// so validation and duplicate-id rules are shared with them.
package setup

import "github.com/hbjs97/actions/internal/action"

// Operation은 편집 메뉴에서 사용자가 고르는 작업이다.
type Operation string

const (
	OpAdd    Operation = "add"
	OpEdit   Operation = "edit"
	OpDelete Operation = "delete"
	OpDone   Operation = "done"
)

// ActionInput은 작업 생성/수정 폼의 입력 값이다.
type ActionInput struct {
	ID               string
	Label            string
	Command          string
	Cwd              string
	Icon             string
	Contexts         []action.Context
	ShowNotification bool
	Enabled          bool
}

// InputFromAction은 기존 작업으로 폼 기본값을 만든다.
func InputFromAction(a action.Action) *ActionInput {
	return &ActionInput{
		ID:               a.ID,
		Label:            a.Label,
		Command:          a.Command,
		Cwd:              a.Cwd,
		Icon:             a.Icon,
		Contexts:         append([]action.Context(nil), a.EffectiveContexts()...),
		ShowNotification: a.NotifiesOnSuccess(),
		Enabled:          a.IsEnabled(),
	}
}

// Action은 입력 값을 작업 정의로 변환한다. 기본값과 같은 플래그는 생략한다.
func (in *ActionInput) Action() action.Action {
	a := action.Action{
		ID:       in.ID,
		Label:    in.Label,
		Command:  in.Command,
		Cwd:      in.Cwd,
		Icon:     in.Icon,
		Contexts: in.Contexts,
	}
	if !in.ShowNotification {
		a.ShowNotification = action.Bool(false)
	}
	if !in.Enabled {
		a.Enabled = action.Bool(false)
	}
	return a
}

// FormRunner는 TUI 폼 실행을 추상화하는 interface다.
// 프로덕션에서는 huh 기반 구현, 테스트에서는 mock을 사용한다.
type FormRunner interface {
	// RunActionForm은 작업 입력 폼을 실행한다.
	// defaults가 nil이 아니면 수정 모드이며 id는 바꿀 수 없다.
	RunActionForm(defaults *ActionInput, existingIDs []string) (*ActionInput, error)

	// RunOperationSelect는 편집 메뉴를 표시한다.
	RunOperationSelect(hasActions bool) (Operation, error)

	// RunActionSelect는 작업 하나를 고르게 하고 id를 반환한다.
	RunActionSelect(actions []action.Action) (string, error)

	// RunConfirm은 확인 프롬프트를 표시한다.
	RunConfirm(message string) (bool, error)

	// RunAddMore는 "작업을 더 추가하시겠습니까?" 프롬프트를 표시한다.
	RunAddMore() (bool, error)
}
