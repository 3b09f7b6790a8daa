package git_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/actions/internal/git"
	"github.com/hbjs97/actions/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopLevel(t *testing.T) {
	fc := testutil.NewFakeCommander()
	fc.Register("git -C /work/repo/src rev-parse --show-toplevel", "/work/repo\n", nil)

	a := git.NewAdapter(fc)
	root, err := a.TopLevel(context.Background(), "/work/repo/src")
	require.NoError(t, err)
	assert.Equal(t, "/work/repo", root)
}

func TestTopLevel_Errors(t *testing.T) {
	tests := []struct {
		name   string
		output string
		err    error
	}{
		{"not a repository", "", errors.New("fatal: not a git repository")},
		{"empty output", "  \n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := testutil.NewFakeCommander()
			fc.Register("git -C /tmp rev-parse", tt.output, tt.err)

			_, err := git.NewAdapter(fc).TopLevel(context.Background(), "/tmp")
			assert.Error(t, err)
		})
	}
}

func TestWorkspaceRoot_FromGit(t *testing.T) {
	fc := testutil.NewFakeCommander()
	fc.Register("git -C /work/repo rev-parse", "/work/repo\n", nil)

	root, ok := git.NewAdapter(fc).WorkspaceRoot(context.Background(), "/work/repo")
	assert.True(t, ok)
	assert.Equal(t, "/work/repo", root)
}

func TestWorkspaceRoot_FallbackToDotGit(t *testing.T) {
	repo := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(repo, ".git"), 0700))
	nested := filepath.Join(repo, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0700))

	// git 바이너리가 없는 환경
	fc := testutil.NewFakeCommander()
	fc.DefaultResponse = &testutil.Response{Err: errors.New("exec: \"git\": executable file not found")}

	root, ok := git.NewAdapter(fc).WorkspaceRoot(context.Background(), nested)
	assert.True(t, ok)
	assert.Equal(t, repo, root)
}

func TestWorkspaceRoot_NotFound(t *testing.T) {
	fc := testutil.NewFakeCommander()
	fc.DefaultResponse = &testutil.Response{Err: errors.New("fatal: not a git repository")}

	_, ok := git.NewAdapter(fc).WorkspaceRoot(context.Background(), t.TempDir())
	assert.False(t, ok)
}

func TestFindRepoRoot(t *testing.T) {
	repo := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(repo, ".git"), []byte("gitdir: ../.bare\n"), 0600))
	nested := filepath.Join(repo, "pkg", "x")
	require.NoError(t, os.MkdirAll(nested, 0700))

	assert.Equal(t, repo, git.FindRepoRoot(nested))
	assert.Equal(t, repo, git.FindRepoRoot(repo))
}
