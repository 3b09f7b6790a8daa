package registry

import (
	"context"

	"github.com/hbjs97/actions/internal/action"
	"github.com/hbjs97/actions/internal/executor"
	"github.com/hbjs97/actions/internal/picker"
)

// Handlers는 executor와 picker로 명령을 수행하는 Dispatcher다.
type Handlers struct {
	Runner picker.Runner
	Picker *picker.Picker
	// Settings는 settings editor를 연다. nil이면 openSettings는 아무것도 하지 않는다.
	Settings func(ctx context.Context) error
}

var _ Dispatcher = (*Handlers)(nil)

// Run은 작업 하나를 실행한다.
func (h *Handlers) Run(ctx context.Context, req executor.Request) (*executor.Result, error) {
	return h.Runner.Execute(ctx, req)
}

// Pick은 picker를 표시한다. choice가 있으면 대화형 선택 대신 그 작업을 고른다.
func (h *Handlers) Pick(ctx context.Context, c action.Context, actions []action.Action, req executor.Request, choice string) (*executor.Result, error) {
	p := *h.Picker
	if choice != "" {
		p.Chooser = picker.Preselected(choice)
	}
	return p.Show(ctx, c, actions, req)
}

// OpenSettings는 settings editor를 연다.
func (h *Handlers) OpenSettings(ctx context.Context) error {
	if h.Settings == nil {
		return nil
	}
	return h.Settings(ctx)
}
