package cli_test

import (
	"github.com/hbjs97/actions/internal/action"
	"github.com/hbjs97/actions/internal/setup"
)

// stubFormRunner는 편집 메뉴를 열자마자 끝내기를 고른다.
type stubFormRunner struct {
	opened bool
}

func (s *stubFormRunner) RunActionForm(*setup.ActionInput, []string) (*setup.ActionInput, error) {
	return nil, nil
}

func (s *stubFormRunner) RunOperationSelect(bool) (setup.Operation, error) {
	s.opened = true
	return setup.OpDone, nil
}

func (s *stubFormRunner) RunActionSelect([]action.Action) (string, error) {
	return "", nil
}

func (s *stubFormRunner) RunConfirm(string) (bool, error) {
	return false, nil
}

func (s *stubFormRunner) RunAddMore() (bool, error) {
	return false, nil
}
