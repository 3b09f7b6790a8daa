package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrExists는 init 대상 파일이 이미 있을 때 반환된다.
var ErrExists = errors.New("설정 파일이 이미 존재합니다")

// Template은 actions init이 쓰는 주석 포함 설정 파일이다.
const Template = `# actions 설정 파일
version = 1

# 명령 실행 제한 시간 (ms)
command_timeout = 30000

# 컨텍스트 메뉴를 하위 메뉴로 묶을지 여부
use_submenu = true

# 실행 셸. 비우면 $SHELL, "builtin"이면 내장 인터프리터
# shell = "/bin/bash"

# 로그 레벨: debug, info, warn, error
# log_level = "info"

# 플레이스홀더: {path} {file} {filename} {dir} {files} {workspace}
# 템플릿에 중괄호가 전혀 없으면 대상 경로가 자동으로 덧붙는다.

[[actions]]
id = "reveal"
label = "List Directory"
command = "ls -la {dir}"
contexts = ["explorer", "editor"]

[[actions]]
id = "git-log"
label = "Git Log (file)"
command = "git log --oneline -n 20 -- {path}"
cwd = "{workspace}"
contexts = ["explorer", "scm"]
show_notification = false
`

// WriteTemplate은 path에 Template을 쓴다. force가 false면 기존 파일을 덮어쓰지 않는다.
func WriteTemplate(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config.WriteTemplate: %w: %s", ErrExists, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config.WriteTemplate: %w", err)
	}
	if err := os.WriteFile(path, []byte(Template), 0600); err != nil {
		return fmt.Errorf("config.WriteTemplate: %w", err)
	}
	return nil
}

// DefaultPath는 기본 설정 파일 경로다 (~/.config/actions/config.toml).
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "actions", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "actions", "config.toml")
	}
	return filepath.Join(home, ".config", "actions", "config.toml")
}
