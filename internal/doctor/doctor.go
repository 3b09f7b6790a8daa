// Package doctor diagnoses the actions configuration and the environment
// commands run in: the config file, each action definition, the shell and git.
package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/hbjs97/actions/internal/action"
	"github.com/hbjs97/actions/internal/cmdexec"
	"github.com/hbjs97/actions/internal/config"
	"github.com/hbjs97/actions/internal/placeholder"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

var tokenPattern = regexp.MustCompile(`\{[A-Za-z_]+\}`)

var knownTokens = map[string]bool{
	placeholder.Path:      true,
	placeholder.File:      true,
	placeholder.Filename:  true,
	placeholder.Dir:       true,
	placeholder.Files:     true,
	placeholder.Workspace: true,
}

// sample은 명령 문법 검사에 쓰는 가상의 대상이다.
var sample = placeholder.Context{
	TargetPath:    "/workspace/src/main.go",
	WorkspaceRoot: "/workspace",
}

// CheckConfig는 설정 파일을 읽는다. 파일이 없으면 기본 설정과 WARN을 반환한다.
func CheckConfig(path string) (*config.Config, DiagResult) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return config.Default(), DiagResult{
			Name:    "config",
			Status:  StatusWarn,
			Message: fmt.Sprintf("설정 파일 없음: %s", path),
			Fix:     "actions init 실행",
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, DiagResult{
			Name:    "config",
			Status:  StatusFail,
			Message: err.Error(),
			Fix:     "설정 파일 문법 확인",
		}
	}
	return cfg, DiagResult{
		Name:    "config",
		Status:  StatusOK,
		Message: fmt.Sprintf("%s (작업 %d개)", path, len(cfg.Actions)),
	}
}

// CheckActions는 각 작업 정의를 검사한다.
// 등록되지 않을 작업은 FAIL, 실행은 되지만 의심스러운 작업은 WARN이다.
func CheckActions(cfg *config.Config) []DiagResult {
	var results []DiagResult
	valid, skipped := action.Partition(cfg.Actions)
	for _, err := range skipped {
		results = append(results, DiagResult{
			Name:    "action",
			Status:  StatusFail,
			Message: err.Error(),
			Fix:     "id, label, command를 확인하세요 (등록되지 않음)",
		})
	}

	for _, a := range valid {
		name := "action_" + a.ID
		if r, ok := checkTokens(name, a); !ok {
			results = append(results, r)
			continue
		}
		if _, err := cmdexec.Parse(placeholder.Command(a.Command, sample)); err != nil {
			results = append(results, DiagResult{
				Name:    name,
				Status:  StatusWarn,
				Message: fmt.Sprintf("셸 문법 오류 가능성: %v", err),
			})
			continue
		}
		msg := "정상"
		if !a.IsEnabled() {
			msg = "비활성"
		}
		results = append(results, DiagResult{Name: name, Status: StatusOK, Message: msg})
	}
	return results
}

func checkTokens(name string, a action.Action) (DiagResult, bool) {
	var unknown []string
	for _, tmpl := range []string{a.Command, a.Cwd} {
		for _, tok := range tokenPattern.FindAllString(tmpl, -1) {
			if !knownTokens[tok] {
				unknown = append(unknown, tok)
			}
		}
	}
	if len(unknown) == 0 {
		return DiagResult{}, true
	}
	return DiagResult{
		Name:    name,
		Status:  StatusWarn,
		Message: fmt.Sprintf("알 수 없는 플레이스홀더 %s는 그대로 남습니다", strings.Join(unknown, ", ")),
		Fix:     "사용 가능: {path} {file} {filename} {dir} {files} {workspace}",
	}, false
}

// CheckShell은 명령을 실행할 셸이 동작하는지 확인한다.
func CheckShell(ctx context.Context, cmd cmdexec.Commander, shell string) DiagResult {
	if shell == config.ShellBuiltin {
		return DiagResult{Name: "shell", Status: StatusOK, Message: "내장 POSIX 인터프리터"}
	}
	if shell == "" {
		shell = cmdexec.DetectShell()
	}
	if _, err := cmd.Run(ctx, shell, "-c", "exit 0"); err != nil {
		return DiagResult{
			Name:    "shell",
			Status:  StatusFail,
			Message: fmt.Sprintf("%s 실행 실패: %v", shell, err),
			Fix:     `설정의 shell 값을 확인하거나 shell = "builtin" 사용`,
		}
	}
	return DiagResult{Name: "shell", Status: StatusOK, Message: shell}
}

// CheckGit은 git 존재 여부를 확인한다. {workspace} 탐지에만 쓰이므로 없으면 WARN이다.
func CheckGit(ctx context.Context, cmd cmdexec.Commander) DiagResult {
	out, err := cmd.Run(ctx, "git", "--version")
	if err != nil {
		return DiagResult{
			Name:    "git",
			Status:  StatusWarn,
			Message: "git 없음: {workspace}는 대상의 디렉토리로 대체됩니다",
			Fix:     "설치: https://git-scm.com/downloads 또는 --workspace 지정",
		}
	}
	return DiagResult{Name: "git", Status: StatusOK, Message: strings.TrimSpace(string(out))}
}

// RunAll은 모든 진단을 실행한다.
func RunAll(ctx context.Context, cmd cmdexec.Commander, cfgPath string) []DiagResult {
	cfg, res := CheckConfig(cfgPath)
	results := []DiagResult{res}
	shell := ""
	if cfg != nil {
		results = append(results, CheckActions(cfg)...)
		shell = cfg.Shell
	}
	results = append(results, CheckShell(ctx, cmd, shell))
	results = append(results, CheckGit(ctx, cmd))
	return results
}

// HasFailure는 FAIL 결과가 하나라도 있는지 반환한다.
func HasFailure(results []DiagResult) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}
