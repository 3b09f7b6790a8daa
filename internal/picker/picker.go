// Package picker shows the actions available in one context and executes
// the chosen one against the current target.
package picker

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hbjs97/actions/internal/action"
	"github.com/hbjs97/actions/internal/executor"
	"github.com/hbjs97/actions/internal/notify"
)

var (
	// ErrNoActions는 컨텍스트에 표시할 작업이 하나도 없을 때 반환된다.
	ErrNoActions = errors.New("표시할 작업이 없음")
	// ErrCancelled는 사용자가 선택을 취소했을 때 반환된다.
	ErrCancelled = errors.New("선택 취소")
	// ErrChoiceRequired는 대화형 선택을 할 수 없는 front-end에서 작업 id 없이 picker를 호출했을 때 반환된다.
	ErrChoiceRequired = errors.New("작업 id(choice) 필수")
)

// Chooser는 작업 목록에서 하나를 고르는 UI다.
type Chooser interface {
	Choose(ctx context.Context, title string, actions []action.Action) (action.Action, error)
}

// Runner는 선택된 작업을 실행한다. *executor.Executor가 구현한다.
type Runner interface {
	Execute(ctx context.Context, req executor.Request) (*executor.Result, error)
}

// Picker는 컨텍스트별 작업 선택기다.
type Picker struct {
	Chooser  Chooser
	Runner   Runner
	Notifier notify.Notifier
}

// Show는 c에 노출되는 작업 중 하나를 고르게 하고, 고른 작업을 req의 대상으로 실행한다.
// req.Action은 무시된다. 대상이 없으면 목록을 보여 주기 전에 중단한다.
func (p *Picker) Show(ctx context.Context, c action.Context, actions []action.Action, req executor.Request) (*executor.Result, error) {
	if strings.TrimSpace(req.Target) == "" {
		p.notifier().Error(executor.ErrNoTargetSelected.Error() + ".")
		return nil, fmt.Errorf("picker.Show: %w", executor.ErrNoTargetSelected)
	}

	visible := action.Visible(actions, c)
	if len(visible) == 0 {
		p.notifier().Info(fmt.Sprintf("%s 컨텍스트에 설정된 작업이 없습니다.", c))
		return nil, fmt.Errorf("picker.Show: %w: %s", ErrNoActions, c)
	}

	chosen, err := p.Chooser.Choose(ctx, Title(c), visible)
	if err != nil {
		return nil, fmt.Errorf("picker.Show: %w", err)
	}

	req.Action = chosen
	return p.Runner.Execute(ctx, req)
}

func (p *Picker) notifier() notify.Notifier {
	if p.Notifier == nil {
		return notify.Discard{}
	}
	return p.Notifier
}

// Title은 picker 제목이다.
func Title(c action.Context) string {
	switch c {
	case action.ContextSCM:
		return "소스 컨트롤 작업 선택"
	case action.ContextEditor:
		return "에디터 작업 선택"
	default:
		return "탐색기 작업 선택"
	}
}

// Detail은 선택지 아래에 표시하는 명령 설명이다.
func Detail(a action.Action) string {
	return "Execute: " + a.Command
}

// Preselected는 미리 정해진 id의 작업을 고르는 Chooser다.
// 대화형 UI가 없는 front-end(HTTP, stdio)에서 쓴다. 목록에 없으면 취소로 처리한다.
type Preselected string

// Choose는 id가 일치하는 작업을 반환한다.
func (p Preselected) Choose(_ context.Context, _ string, actions []action.Action) (action.Action, error) {
	if a, ok := action.Find(actions, string(p)); ok {
		return a, nil
	}
	return action.Action{}, fmt.Errorf("%w: %q는 이 컨텍스트의 작업이 아닙니다", ErrCancelled, string(p))
}

// NonInteractive는 선택 UI가 없는 서버 모드의 Chooser다. 항상 ErrChoiceRequired를 반환한다.
type NonInteractive struct{}

// Choose는 선택하지 않는다.
func (NonInteractive) Choose(context.Context, string, []action.Action) (action.Action, error) {
	return action.Action{}, ErrChoiceRequired
}
