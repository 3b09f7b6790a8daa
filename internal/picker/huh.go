package picker

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/hbjs97/actions/internal/action"
)

// HuhChooser는 charmbracelet/huh Select 기반 Chooser다.
type HuhChooser struct {
	// Accessible은 스크린 리더용 접근성 모드다.
	Accessible bool
}

var _ Chooser = (*HuhChooser)(nil)

// Choose는 필터링 가능한 선택 목록을 표시한다.
func (h *HuhChooser) Choose(ctx context.Context, title string, actions []action.Action) (action.Action, error) {
	options := make([]huh.Option[int], len(actions))
	for i, a := range actions {
		options[i] = huh.NewOption(a.Label, i)
	}

	var idx int
	sel := huh.NewSelect[int]().
		Title(title).
		Options(options...).
		Filtering(true).
		Value(&idx).
		DescriptionFunc(func() string {
			if idx < 0 || idx >= len(actions) {
				return ""
			}
			return Detail(actions[idx])
		}, &idx)

	form := huh.NewForm(huh.NewGroup(sel)).WithAccessible(h.Accessible)
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return action.Action{}, ErrCancelled
		}
		return action.Action{}, fmt.Errorf("picker.Choose: %w", err)
	}
	return actions[idx], nil
}
