package vcs

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/utils/diff"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/ferdium/ferdium-themes/pkg/errors"
	"github.com/ferdium/ferdium-themes/pkg/logging"
)

// gitRepository reads a work tree through go-git. go-git objects are not safe
// for concurrent use, so every access holds mu.
type gitRepository struct {
	root string
	repo *git.Repository

	mu        sync.Mutex
	loaded    bool
	status    git.Status
	head      *object.Tree
	statusErr error
}

// Open returns a go-git backed Repository when root or one of its parents is
// a git work tree, and Unavailable otherwise.
func Open(root string) Repository {
	logger := logging.GetLogger("vcs")

	abs, err := filepath.Abs(root)
	if err != nil {
		logger.Debug().Err(err).Str("root", root).Msg("Cannot resolve root, skipping version control")
		return Unavailable()
	}

	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if stderrors.Is(err, git.ErrRepositoryNotExists) {
			logger.Debug().Str("root", abs).Msg("Not a git repository, history checks disabled")
		} else {
			logger.Warn().Err(err).Str("root", abs).Msg("Cannot open git repository, history checks disabled")
		}
		return Unavailable()
	}

	wt, err := repo.Worktree()
	if err != nil {
		logger.Warn().Err(err).Str("root", abs).Msg("Repository has no work tree, history checks disabled")
		return Unavailable()
	}

	logger.Debug().Str("root", wt.Filesystem.Root()).Msg("Using git repository")
	return &gitRepository{root: wt.Filesystem.Root(), repo: repo}
}

func (g *gitRepository) IsRepository() bool { return true }

func (g *gitRepository) Root() string { return g.root }

// load computes the work tree status and HEAD tree once
func (g *gitRepository) load() error {
	if g.loaded {
		return g.statusErr
	}
	g.loaded = true

	wt, err := g.repo.Worktree()
	if err != nil {
		g.statusErr = errors.Wrap(err, errors.ErrVCS, "failed to open work tree")
		return g.statusErr
	}
	status, err := wt.Status()
	if err != nil {
		g.statusErr = errors.Wrap(err, errors.ErrVCS, "failed to read work tree status")
		return g.statusErr
	}
	g.status = status

	ref, err := g.repo.Head()
	if err != nil {
		if stderrors.Is(err, plumbing.ErrReferenceNotFound) {
			// no commits yet: everything staged counts as added
			return nil
		}
		g.statusErr = errors.Wrap(err, errors.ErrVCS, "failed to resolve HEAD")
		return g.statusErr
	}
	commit, err := g.repo.CommitObject(ref.Hash())
	if err != nil {
		g.statusErr = errors.Wrap(err, errors.ErrVCS, "failed to read HEAD commit")
		return g.statusErr
	}
	tree, err := commit.Tree()
	if err != nil {
		g.statusErr = errors.Wrap(err, errors.ErrVCS, "failed to read HEAD tree")
		return g.statusErr
	}
	g.head = tree
	return nil
}

func changed(fs *git.FileStatus) bool {
	if fs.Worktree == git.Untracked && fs.Staging == git.Untracked {
		return false
	}
	return fs.Worktree != git.Unmodified || fs.Staging != git.Unmodified
}

func (g *gitRepository) DiffSummary(ctx context.Context, path string) (DiffSummary, error) {
	if err := ctx.Err(); err != nil {
		return DiffSummary{}, err
	}
	prefix, err := Relative(g, path)
	if err != nil {
		return DiffSummary{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.load(); err != nil {
		return DiffSummary{}, err
	}

	var summary DiffSummary
	for file, fs := range g.status {
		if !changed(fs) || !within(file, prefix) {
			continue
		}
		summary.ChangedFiles = append(summary.ChangedFiles, file)
	}
	sort.Strings(summary.ChangedFiles)

	for _, file := range summary.ChangedFiles {
		diffs, err := g.diffFile(file)
		if err != nil {
			return DiffSummary{}, err
		}
		for _, d := range diffs {
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				summary.Insertions += lineCount(d.Text)
			case diffmatchpatch.DiffDelete:
				summary.Deletions += lineCount(d.Text)
			}
		}
	}
	return summary, nil
}

func (g *gitRepository) Diff(ctx context.Context, file string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	rel, err := Relative(g, file)
	if err != nil {
		return "", err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.load(); err != nil {
		return "", err
	}
	if fs, ok := g.status[rel]; !ok || !changed(fs) {
		return "", nil
	}

	diffs, err := g.diffFile(rel)
	if err != nil {
		return "", err
	}
	return formatDiff(rel, diffs), nil
}

// diffFile diffs the HEAD version of file against the work tree copy. A side
// that does not exist diffs as empty.
func (g *gitRepository) diffFile(file string) ([]diffmatchpatch.Diff, error) {
	before := ""
	if g.head != nil {
		f, err := g.head.File(file)
		switch {
		case err == nil:
			before, err = f.Contents()
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrVCS, "failed to read %s at HEAD", file)
			}
		case stderrors.Is(err, object.ErrFileNotFound):
		default:
			return nil, errors.Wrapf(err, errors.ErrVCS, "failed to look up %s at HEAD", file)
		}
	}

	after := ""
	data, err := os.ReadFile(filepath.Join(g.root, filepath.FromSlash(file)))
	switch {
	case err == nil:
		after = string(data)
	case os.IsNotExist(err):
	default:
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", file)
	}

	return diff.Do(before, after), nil
}

// formatDiff renders whole-file line diffs in unified style
func formatDiff(file string, diffs []diffmatchpatch.Diff) string {
	var b strings.Builder
	b.WriteString("diff --git a/" + file + " b/" + file + "\n")
	b.WriteString("--- a/" + file + "\n")
	b.WriteString("+++ b/" + file + "\n")
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		}
		for _, line := range splitLines(d.Text) {
			b.WriteString(prefix + line + "\n")
		}
	}
	return b.String()
}

func within(file, prefix string) bool {
	return prefix == "" || file == prefix || strings.HasPrefix(file, prefix+"/")
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func lineCount(text string) int {
	return len(splitLines(text))
}
