package executor

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hbjs97/actions/internal/action"
	"github.com/hbjs97/actions/internal/placeholder"
	"github.com/spf13/afero"
)

// 한 글자 scheme은 Windows 드라이브 문자(C:)와 구분하기 위해 URI로 보지 않는다.
var schemePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]+:`)

// WorkspaceLocator는 디렉토리를 감싸는 프로젝트 루트를 찾는다.
type WorkspaceLocator interface {
	WorkspaceRoot(ctx context.Context, dir string) (string, bool)
}

// LocalPath는 대상 참조(경로 또는 file:// URI)를 로컬 절대 경로로 변환한다.
func LocalPath(target string) (string, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return "", fmt.Errorf("executor.LocalPath: %w", ErrNoTargetSelected)
	}
	if schemePattern.MatchString(target) {
		u, err := url.Parse(target)
		if err != nil {
			return "", fmt.Errorf("executor.LocalPath: %w: %v", ErrUnsupportedTarget, err)
		}
		if u.Scheme != "file" || (u.Host != "" && u.Host != "localhost") {
			return "", fmt.Errorf("executor.LocalPath: %w: %s", ErrUnsupportedTarget, target)
		}
		target = filepath.FromSlash(u.Path)
	}
	abs, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("executor.LocalPath: %w", err)
	}
	return abs, nil
}

// NewContext는 한 번의 실행에 쓸 placeholder.Context를 만든다.
// 워크스페이스 루트를 찾지 못하면 기본 작업 디렉토리를 루트로 쓴다.
func NewContext(ctx context.Context, fs afero.Fs, ws WorkspaceLocator, target string, selection []string) (placeholder.Context, error) {
	path, err := LocalPath(target)
	if err != nil {
		return placeholder.Context{}, err
	}

	var extra []string
	for _, s := range selection {
		if strings.TrimSpace(s) == "" {
			continue
		}
		p, err := LocalPath(s)
		if err != nil {
			return placeholder.Context{}, err
		}
		extra = append(extra, p)
	}

	isDir, _ := afero.IsDir(fs, path) // stat 실패는 파일로 취급, cwd 검사에서 걸러진다
	root := DefaultDir(path, isDir)
	if ws != nil {
		if r, ok := ws.WorkspaceRoot(ctx, root); ok {
			root = r
		}
	}

	return placeholder.Context{
		TargetPath:      path,
		IsDirectory:     isDir,
		AdditionalPaths: extra,
		WorkspaceRoot:   root,
	}, nil
}

// DefaultDir은 cwd가 지정되지 않았을 때의 작업 디렉토리다.
// 디렉토리 대상은 그 자신, 파일 대상은 부모 디렉토리.
func DefaultDir(target string, isDir bool) string {
	if isDir {
		return target
	}
	return filepath.Dir(target)
}

// DeriveCwd는 작업이 실행될 디렉토리를 결정한다.
// 상대 경로 cwd는 워크스페이스 루트 기준이다.
func DeriveCwd(a action.Action, c placeholder.Context) string {
	if a.Cwd == "" {
		return DefaultDir(c.TargetPath, c.IsDirectory)
	}
	dir := placeholder.Directory(a.Cwd, c)
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(c.WorkspaceRoot, dir)
	}
	return filepath.Clean(dir)
}
