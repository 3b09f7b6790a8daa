package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hbjs97/actions/internal/action"
	"gopkg.in/yaml.v3"
)

// Format은 작업 목록 import/export 형식이다.
type Format string

const (
	FormatTOML   Format = "toml"
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatVSCode Format = "vscode"
)

// ParseFormat은 형식 이름을 Format으로 변환한다. "yml"은 yaml로 취급한다.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "toml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "vscode":
		return FormatVSCode, nil
	}
	return "", fmt.Errorf("config.ParseFormat: 지원하지 않는 형식: %q (toml, json, yaml, vscode)", s)
}

// FormatFromPath는 파일 확장자로 형식을 추정한다. settings.json은 vscode 형식이다.
func FormatFromPath(path string) (Format, error) {
	if filepath.Base(path) == "settings.json" {
		return FormatVSCode, nil
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("config.FormatFromPath: 확장자로 형식을 알 수 없음: %s", path)
	}
	return ParseFormat(ext)
}

type tomlActions struct {
	Actions []action.Action `toml:"actions"`
}

type yamlActions struct {
	Actions []action.Action `yaml:"actions"`
}

// Export는 작업 목록을 f 형식으로 w에 쓴다.
func Export(w io.Writer, actions []action.Action, f Format) error {
	if actions == nil {
		actions = []action.Action{}
	}
	var err error
	switch f {
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(tomlActions{Actions: actions})
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(actions)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(yamlActions{Actions: actions})
		if err == nil {
			err = enc.Close()
		}
	case FormatVSCode:
		settings := map[string]any{keyActions: actions}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(settings)
	default:
		return fmt.Errorf("config.Export: 지원하지 않는 형식: %q", f)
	}
	if err != nil {
		return fmt.Errorf("config.Export: %w", err)
	}
	return nil
}

// Import는 data를 f 형식으로 해석해 작업 목록을 반환한다.
// JSON은 배열과 {"actions": [...]} 두 형태를 모두 받는다.
func Import(data []byte, f Format) ([]action.Action, error) {
	switch f {
	case FormatTOML:
		var doc tomlActions
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
			return nil, fmt.Errorf("config.Import: %w: %w", ErrConfig, err)
		}
		return doc.Actions, nil
	case FormatJSON:
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			var list []action.Action
			if err := json.Unmarshal(trimmed, &list); err != nil {
				return nil, fmt.Errorf("config.Import: %w: %w", ErrConfig, err)
			}
			return list, nil
		}
		var doc struct {
			Actions []action.Action `json:"actions"`
		}
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("config.Import: %w: %w", ErrConfig, err)
		}
		return doc.Actions, nil
	case FormatYAML:
		var doc yamlActions
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("config.Import: %w: %w", ErrConfig, err)
		}
		return doc.Actions, nil
	case FormatVSCode:
		s, err := ImportVSCode(data)
		if err != nil {
			return nil, err
		}
		return s.Actions, nil
	}
	return nil, fmt.Errorf("config.Import: 지원하지 않는 형식: %q", f)
}

// MergeResult는 Merge 결과 요약이다.
type MergeResult struct {
	Actions  []action.Action
	Added    []string
	Replaced []string
	Skipped  []string
}

// Merge는 incoming을 existing 뒤에 덧붙인다.
// 이미 있는 id는 replace가 true면 제자리에서 교체하고, 아니면 건너뛴다.
func Merge(existing, incoming []action.Action, replace bool) MergeResult {
	res := MergeResult{Actions: append([]action.Action(nil), existing...)}
	index := make(map[string]int, len(existing))
	for i, a := range existing {
		if _, ok := index[a.ID]; !ok {
			index[a.ID] = i
		}
	}
	for _, a := range incoming {
		if i, ok := index[a.ID]; ok {
			if replace {
				res.Actions[i] = a
				res.Replaced = append(res.Replaced, a.ID)
			} else {
				res.Skipped = append(res.Skipped, a.ID)
			}
			continue
		}
		index[a.ID] = len(res.Actions)
		res.Actions = append(res.Actions, a)
		res.Added = append(res.Added, a.ID)
	}
	return res
}
