package cli

import (
	"errors"
)

// ExitCode는 actions의 종료 코드다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다.
	ExitSuccess ExitCode = 0
	// ExitGeneral는 일반 에러다.
	ExitGeneral ExitCode = 1
	// ExitNoTarget는 실행 대상이 없는 경우다.
	ExitNoTarget ExitCode = 2
	// ExitUnsupportedTarget는 로컬 파일이 아닌 대상이다.
	ExitUnsupportedTarget ExitCode = 3
	// ExitCwdNotFound는 작업 디렉토리가 없는 경우다.
	ExitCwdNotFound ExitCode = 4
	// ExitExecutionFailure는 명령이 실패했거나 시간 초과된 경우다.
	ExitExecutionFailure ExitCode = 5
	// ExitConfigError는 설정 파일 오류다.
	ExitConfigError ExitCode = 6
	// ExitSettingsRejected는 중복/미존재 id로 설정 변경이 거부된 경우다.
	ExitSettingsRejected ExitCode = 7
	// ExitInvalidDefinition는 잘못된 작업 정의다.
	ExitInvalidDefinition ExitCode = 8
)

// MapExitCode는 sentinel error를 기반으로 적절한 종료 코드를 반환한다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	switch {
	case errors.Is(err, ErrNoTargetSelected):
		return ExitNoTarget
	case errors.Is(err, ErrUnsupportedTarget):
		return ExitUnsupportedTarget
	case errors.Is(err, ErrWorkingDirectoryNotFound):
		return ExitCwdNotFound
	case errors.Is(err, ErrExecutionFailure):
		return ExitExecutionFailure
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, ErrDuplicateID), errors.Is(err, ErrUnknownID):
		return ExitSettingsRejected
	case errors.Is(err, ErrInvalidDefinition):
		return ExitInvalidDefinition
	default:
		return ExitGeneral
	}
}
