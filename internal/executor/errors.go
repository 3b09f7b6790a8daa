package executor

import "errors"

var (
	// ErrNoTargetSelected는 실행 대상 경로가 없을 때 반환된다.
	ErrNoTargetSelected = errors.New("선택된 파일 또는 폴더가 없습니다")
	// ErrUnsupportedTarget는 대상이 로컬 파일 시스템 경로가 아닐 때 반환된다.
	ErrUnsupportedTarget = errors.New("로컬 파일에서만 동작합니다")
	// ErrWorkingDirectoryNotFound는 해석된 작업 디렉토리가 없을 때 반환된다. 프로세스는 실행되지 않는다.
	ErrWorkingDirectoryNotFound = errors.New("작업 디렉토리를 찾을 수 없습니다")
	// ErrExecutionFailure는 0이 아닌 종료, 실행 실패, 시간 초과를 나타낸다.
	ErrExecutionFailure = errors.New("명령 실행 실패")
)
