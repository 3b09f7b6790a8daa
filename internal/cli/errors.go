package cli

import (
	"errors"

	"github.com/hbjs97/actions/internal/action"
	"github.com/hbjs97/actions/internal/config"
	"github.com/hbjs97/actions/internal/executor"
	"github.com/hbjs97/actions/internal/picker"
	"github.com/hbjs97/actions/internal/registry"
	"github.com/hbjs97/actions/internal/settings"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrInvalidDefinition는 잘못된 작업 정의다.
	ErrInvalidDefinition = action.ErrInvalidDefinition
	// ErrNoTargetSelected는 실행 대상이 없을 때의 sentinel error다.
	ErrNoTargetSelected = executor.ErrNoTargetSelected
	// ErrUnsupportedTarget는 로컬 파일이 아닌 대상이다.
	ErrUnsupportedTarget = executor.ErrUnsupportedTarget
	// ErrWorkingDirectoryNotFound는 작업 디렉토리가 없을 때의 sentinel error다.
	ErrWorkingDirectoryNotFound = executor.ErrWorkingDirectoryNotFound
	// ErrExecutionFailure는 명령 실행 실패다.
	ErrExecutionFailure = executor.ErrExecutionFailure
	// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
	ErrConfig = config.ErrConfig
	// ErrDuplicateID는 이미 존재하는 작업 id다.
	ErrDuplicateID = settings.ErrDuplicateID
	// ErrUnknownID는 존재하지 않는 작업 id다.
	ErrUnknownID = settings.ErrUnknownID
	// ErrNoActions는 컨텍스트에 표시할 작업이 없을 때의 sentinel error다.
	ErrNoActions = picker.ErrNoActions
	// ErrUnknownCommand는 등록되지 않은 명령 id다.
	ErrUnknownCommand = registry.ErrUnknownCommand
)

// Notified는 err가 이미 notifier로 사용자에게 표시된 실패인지 반환한다.
// main은 이런 에러를 다시 출력하지 않는다.
func Notified(err error) bool {
	for _, target := range []error{
		ErrNoTargetSelected,
		ErrUnsupportedTarget,
		ErrWorkingDirectoryNotFound,
		ErrExecutionFailure,
		ErrNoActions,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
