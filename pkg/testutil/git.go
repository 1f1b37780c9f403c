package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// GitRepo is a real repository in a temp directory
type GitRepo struct {
	Dir  string
	Repo *git.Repository
}

// InitGitRepo creates an empty repository in a fresh temp directory
func InitGitRepo(t *testing.T) *GitRepo {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	return &GitRepo{Dir: dir, Repo: repo}
}

// WriteFile writes content at the slash-separated path rel
func (g *GitRepo) WriteFile(t *testing.T, rel, content string) {
	t.Helper()

	path := filepath.Join(g.Dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// Stage adds rel to the index
func (g *GitRepo) Stage(t *testing.T, rel string) {
	t.Helper()

	wt, err := g.Repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add(rel)
	require.NoError(t, err)
}

// CommitAll stages everything in the work tree and commits it
func (g *GitRepo) CommitAll(t *testing.T, message string) plumbing.Hash {
	t.Helper()

	wt, err := g.Repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, wt.AddWithOptions(&git.AddOptions{All: true}))

	hash, err := wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Theme Author",
			Email: "themes@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)
	return hash
}
