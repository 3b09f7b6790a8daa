package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/hbjs97/actions/internal/action"
)

// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
var ErrConfig = errors.New("설정 파일 오류")

// CurrentVersion은 지원하는 설정 파일 버전이다.
const CurrentVersion = 1

// DefaultCommandTimeout은 command_timeout 기본값(ms)이다.
const DefaultCommandTimeout = 30000

// ShellBuiltin은 내장 셸 인터프리터를 쓰도록 하는 shell 설정값이다.
const ShellBuiltin = "builtin"

// Config는 actions 설정 파일의 최상위 구조체다.
type Config struct {
	Version        int             `toml:"version"`
	CommandTimeout int             `toml:"command_timeout"`
	UseSubmenu     bool            `toml:"use_submenu"`
	Shell          string          `toml:"shell,omitempty"`
	LogLevel       string          `toml:"log_level,omitempty"`
	Actions        []action.Action `toml:"actions"`
}

// Default는 설정 파일이 없을 때 쓰는 기본 설정이다.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load는 config.toml을 파싱하여 Config를 반환한다.
// 개별 작업의 유효성은 검사하지 않는다. 잘못된 작업은 등록 시점에 건너뛴다.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w: %w", ErrConfig, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Timeout은 command_timeout을 time.Duration으로 반환한다.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.CommandTimeout) * time.Millisecond
}

// Save는 Config를 TOML 파일로 저장한다 (0600 권한, 임시 파일 후 rename).
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".config-*.toml")
	if err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	defer os.Remove(tmp.Name()) // rename 성공 후에는 no-op

	if err := toml.NewEncoder(tmp).Encode(cfg); err != nil {
		tmp.Close()
		return fmt.Errorf("config.Save: %w", err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("config.Save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = CurrentVersion
	}
	if c.CommandTimeout == 0 {
		c.CommandTimeout = DefaultCommandTimeout
	}
}

func (c *Config) validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("config.Load: %w: 지원하지 않는 version %d", ErrConfig, c.Version)
	}
	if c.CommandTimeout < 0 {
		return fmt.Errorf("config.Load: %w: command_timeout은 0 이상이어야 합니다", ErrConfig)
	}
	return nil
}
