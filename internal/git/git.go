// Package git locates the workspace root that encloses a target path.
package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hbjs97/actions/internal/cmdexec"
)

// Adapter는 git CLI를 통해 워크스페이스 정보를 조회한다.
type Adapter struct {
	cmd cmdexec.Commander
}

// NewAdapter는 새 Adapter를 생성한다.
func NewAdapter(cmd cmdexec.Commander) *Adapter {
	return &Adapter{cmd: cmd}
}

// TopLevel은 dir이 속한 git 작업 트리의 루트 경로를 반환한다.
func (a *Adapter) TopLevel(ctx context.Context, dir string) (string, error) {
	out, err := a.cmd.Run(ctx, "git", "-C", dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("git.TopLevel: %w", err)
	}
	root := strings.TrimSpace(string(out))
	if root == "" {
		return "", fmt.Errorf("git.TopLevel: 빈 출력")
	}
	return filepath.Clean(root), nil
}

// WorkspaceRoot는 dir의 워크스페이스 루트를 찾는다.
// git 조회에 실패하면 상위 디렉토리에서 .git을 찾고, 그래도 없으면 false를 반환한다.
func (a *Adapter) WorkspaceRoot(ctx context.Context, dir string) (string, bool) {
	if root, err := a.TopLevel(ctx, dir); err == nil {
		return root, true
	}
	if root := FindRepoRoot(dir); root != "" {
		return root, true
	}
	return "", false
}

// FindRepoRoot는 dir에서 위로 올라가며 .git이 있는 디렉토리를 찾는다.
// 없으면 빈 문자열.
func FindRepoRoot(dir string) string {
	current := filepath.Clean(dir)
	for {
		if _, err := os.Stat(filepath.Join(current, ".git")); err == nil {
			return current
		}
		parent := filepath.Dir(current)
		if parent == current {
			return ""
		}
		current = parent
	}
}
