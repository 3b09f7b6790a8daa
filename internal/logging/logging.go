// Package logging configures the zerolog logger used across actions.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Level은 로그 레벨이다.
type Level = zerolog.Level

// 편의를 위해 노출하는 로그 레벨.
const (
	DebugLevel = zerolog.DebugLevel
	InfoLevel  = zerolog.InfoLevel
	WarnLevel  = zerolog.WarnLevel
	ErrorLevel = zerolog.ErrorLevel
)

// Config는 로거 설정이다.
type Config struct {
	// Level은 출력할 최소 레벨이다.
	Level Level
	// Output은 로그 출력 대상이다. 기본값 os.Stderr.
	Output io.Writer
	// Pretty는 사람이 읽기 쉬운 콘솔 출력을 사용한다.
	Pretty bool
}

// DefaultConfig는 기본 설정을 반환한다.
func DefaultConfig() Config {
	return Config{
		Level:  InfoLevel,
		Output: os.Stderr,
		Pretty: true,
	}
}

// New는 설정에 맞는 로거를 만든다.
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly}
	}
	return zerolog.New(out).Level(cfg.Level).With().Timestamp().Logger()
}

// ParseLevel은 레벨 문자열(대소문자 무시)을 해석한다.
// 알 수 없는 값이면 InfoLevel.
func ParseLevel(level string) Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return DebugLevel
	case "INFO":
		return InfoLevel
	case "WARN", "WARNING":
		return WarnLevel
	case "ERROR":
		return ErrorLevel
	default:
		return InfoLevel
	}
}
