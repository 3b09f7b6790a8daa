package setup

import (
	"fmt"
	"regexp"

	"github.com/charmbracelet/huh"
	"github.com/hbjs97/actions/internal/action"
)

// HuhFormRunner는 charmbracelet/huh 기반의 FormRunner 구현이다.
type HuhFormRunner struct{}

var _ FormRunner = (*HuhFormRunner)(nil)

var actionIDRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// RunActionForm은 작업 입력 폼을 실행한다.
func (h *HuhFormRunner) RunActionForm(defaults *ActionInput, existingIDs []string) (*ActionInput, error) {
	input := &ActionInput{
		Contexts:         []action.Context{action.ContextExplorer},
		ShowNotification: true,
		Enabled:          true,
	}
	if defaults != nil {
		*input = *defaults
	}

	idValidate := func(s string) error {
		if s == "" {
			return fmt.Errorf("id를 입력하세요")
		}
		if !actionIDRegex.MatchString(s) {
			return fmt.Errorf("영문, 숫자, '-', '_'만 사용 가능합니다")
		}
		for _, id := range existingIDs {
			if id == s {
				return fmt.Errorf("이미 존재하는 id입니다: %s", s)
			}
		}
		return nil
	}

	contextOptions := make([]huh.Option[action.Context], len(action.Contexts))
	for i, c := range action.Contexts {
		contextOptions[i] = huh.NewOption(string(c), c)
	}

	var fields []huh.Field
	if defaults == nil {
		fields = append(fields, huh.NewInput().Title("id").
			Description("명령 id는 actions.<id>가 됩니다").
			Value(&input.ID).Validate(idValidate))
	}
	fields = append(fields,
		huh.NewInput().Title("이름").Value(&input.Label).Validate(huh.ValidateNotEmpty()),
		huh.NewInput().Title("명령").
			Description("{path} {file} {filename} {dir} {files} {workspace}").
			Value(&input.Command).Validate(huh.ValidateNotEmpty()),
		huh.NewInput().Title("작업 디렉토리 (선택)").
			Description("비우면 대상의 디렉토리").
			Value(&input.Cwd),
		huh.NewMultiSelect[action.Context]().Title("표시할 메뉴").
			Options(contextOptions...).
			Value(&input.Contexts).
			Validate(func(cs []action.Context) error {
				if len(cs) == 0 {
					return fmt.Errorf("최소 1개 이상 선택해야 합니다")
				}
				return nil
			}),
		huh.NewConfirm().Title("실행/완료 알림 표시").Value(&input.ShowNotification),
		huh.NewConfirm().Title("활성화").Value(&input.Enabled),
	)

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("setup.RunActionForm: %w", err)
	}
	return input, nil
}

// RunOperationSelect는 편집 메뉴를 표시한다.
func (h *HuhFormRunner) RunOperationSelect(hasActions bool) (Operation, error) {
	options := []huh.Option[Operation]{huh.NewOption("작업 추가", OpAdd)}
	if hasActions {
		options = append(options,
			huh.NewOption("작업 수정", OpEdit),
			huh.NewOption("작업 삭제", OpDelete),
		)
	}
	options = append(options, huh.NewOption("끝내기", OpDone))

	var op Operation
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[Operation]().
			Title("무엇을 하시겠습니까?").
			Options(options...).
			Value(&op),
	))
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("setup.RunOperationSelect: %w", err)
	}
	return op, nil
}

// RunActionSelect는 작업 선택 UI를 표시한다.
func (h *HuhFormRunner) RunActionSelect(actions []action.Action) (string, error) {
	options := make([]huh.Option[string], len(actions))
	for i, a := range actions {
		options[i] = huh.NewOption(fmt.Sprintf("%s (%s)", a.Label, a.ID), a.ID)
	}

	var selected string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("작업을 선택하세요").
			Options(options...).
			Filtering(true).
			Value(&selected),
	))
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("setup.RunActionSelect: %w", err)
	}
	return selected, nil
}

// RunConfirm은 확인 프롬프트를 표시한다.
func (h *HuhFormRunner) RunConfirm(message string) (bool, error) {
	var confirm bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(message).Value(&confirm),
	))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("setup.RunConfirm: %w", err)
	}
	return confirm, nil
}

// RunAddMore는 "작업을 더 추가하시겠습니까?" 프롬프트를 표시한다.
func (h *HuhFormRunner) RunAddMore() (bool, error) {
	return h.RunConfirm("작업을 더 추가하시겠습니까?")
}
