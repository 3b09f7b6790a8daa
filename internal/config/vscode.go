package config

import (
	"encoding/json"
	"fmt"

	"github.com/hbjs97/actions/internal/action"
	"github.com/tidwall/jsonc"
)

const (
	keyActions        = "actionsForVscode.actions"
	keyCommandTimeout = "actionsForVscode.commandTimeout"
	keyUseSubmenu     = "actionsForVscode.useSubmenu"
)

// VSCodeSettings는 VS Code settings.json에서 읽어 온 확장 설정이다.
// 키가 없던 항목은 nil이다.
type VSCodeSettings struct {
	Actions        []action.Action
	CommandTimeout *int
	UseSubmenu     *bool
}

// ImportVSCode는 주석과 trailing comma가 있는 settings.json을 해석한다.
func ImportVSCode(data []byte) (*VSCodeSettings, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
		return nil, fmt.Errorf("config.ImportVSCode: %w: %w", ErrConfig, err)
	}

	var s VSCodeSettings
	if v, ok := raw[keyActions]; ok {
		if err := json.Unmarshal(v, &s.Actions); err != nil {
			return nil, fmt.Errorf("config.ImportVSCode: %w: %s: %w", ErrConfig, keyActions, err)
		}
	}
	if v, ok := raw[keyCommandTimeout]; ok {
		var n int
		if err := json.Unmarshal(v, &n); err != nil {
			return nil, fmt.Errorf("config.ImportVSCode: %w: %s: %w", ErrConfig, keyCommandTimeout, err)
		}
		s.CommandTimeout = &n
	}
	if v, ok := raw[keyUseSubmenu]; ok {
		var b bool
		if err := json.Unmarshal(v, &b); err != nil {
			return nil, fmt.Errorf("config.ImportVSCode: %w: %s: %w", ErrConfig, keyUseSubmenu, err)
		}
		s.UseSubmenu = &b
	}
	return &s, nil
}

// Apply는 settings.json의 전역 설정값을 cfg에 반영한다. 작업 목록은 건드리지 않는다.
func (s *VSCodeSettings) Apply(cfg *Config) {
	if s.CommandTimeout != nil && *s.CommandTimeout > 0 {
		cfg.CommandTimeout = *s.CommandTimeout
	}
	if s.UseSubmenu != nil {
		cfg.UseSubmenu = *s.UseSubmenu
	}
}
