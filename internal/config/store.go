package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hbjs97/actions/internal/action"
	"github.com/rs/zerolog"
)

// debounceDelay는 연속된 파일 이벤트를 한 번의 reload로 묶는 간격이다.
const debounceDelay = 100 * time.Millisecond

// Store는 설정 파일 하나에 대한 저장소다.
type Store struct {
	path   string
	logger zerolog.Logger
	mu     sync.Mutex
}

// NewStore는 path의 설정 파일을 다루는 Store를 만든다.
func NewStore(path string, logger zerolog.Logger) *Store {
	return &Store{path: filepath.Clean(path), logger: logger}
}

// Path는 설정 파일 경로다.
func (s *Store) Path() string {
	return s.path
}

// Load는 현재 설정의 snapshot을 읽는다. 파일이 없으면 기본 설정을 반환한다.
func (s *Store) Load() (*Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() (*Config, error) {
	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return Load(s.path)
}

// Actions는 저장된 작업 목록을 순서대로 반환한다.
func (s *Store) Actions() ([]action.Action, error) {
	cfg, err := s.Load()
	if err != nil {
		return nil, err
	}
	return cfg.Actions, nil
}

// UpdateActions는 작업 목록 전체를 교체해 저장한다. 다른 설정값은 유지한다.
func (s *Store) UpdateActions(actions []action.Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.load()
	if err != nil {
		return err
	}
	cfg.Actions = actions
	if err := Save(s.path, cfg); err != nil {
		return err
	}
	s.logger.Debug().Int("actions", len(actions)).Str("path", s.path).Msg("작업 목록 저장")
	return nil
}

// Watch는 설정 파일 변경을 감시하며, 변경마다 새 snapshot으로 onChange를 호출한다.
// ctx가 끝날 때까지 블록한다. 파싱에 실패한 변경은 로그만 남기고 무시한다.
func (s *Store) Watch(ctx context.Context, onChange func(*Config)) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("config.Watch: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config.Watch: %w", err)
	}
	defer w.Close()

	// 에디터가 파일을 교체(rename)하는 경우에도 잡히도록 디렉토리를 감시한다
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("config.Watch: %w", err)
	}
	s.logger.Debug().Str("path", s.path).Msg("설정 감시 시작")

	debounce := time.NewTimer(debounceDelay)
	debounce.Stop()
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != s.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				debounce.Reset(debounceDelay)
			}
		case <-debounce.C:
			cfg, err := s.Load()
			if err != nil {
				s.logger.Warn().Err(err).Msg("설정 다시 읽기 실패, 이전 설정 유지")
				continue
			}
			s.logger.Info().Int("actions", len(cfg.Actions)).Msg("설정 변경 감지")
			onChange(cfg)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.logger.Error().Err(err).Msg("설정 감시 에러")
		}
	}
}
