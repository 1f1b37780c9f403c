package vcs

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/ferdium/ferdium-themes/pkg/errors"
)

// Repository is the version-control collaborator used by the history check
type Repository interface {
	// IsRepository reports whether a repository is available at all
	IsRepository() bool

	// Root returns the absolute work tree root, empty when unavailable
	Root() string

	// DiffSummary lists the changed files below path
	DiffSummary(ctx context.Context, path string) (DiffSummary, error)

	// Diff returns the textual diff of a single file, empty when unchanged
	Diff(ctx context.Context, file string) (string, error)
}

// DiffSummary describes the uncommitted changes below a path
type DiffSummary struct {
	ChangedFiles []string
	Insertions   int
	Deletions    int
}

// Empty reports whether nothing changed
func (s DiffSummary) Empty() bool {
	return len(s.ChangedFiles) == 0
}

// Contains reports whether the repository-relative file is among the changes
func (s DiffSummary) Contains(file string) bool {
	for _, f := range s.ChangedFiles {
		if f == file {
			return true
		}
	}
	return false
}

// Relative converts path to the slash-separated form used in a DiffSummary.
// The repository root itself maps to "".
func Relative(repo Repository, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrVCS, "cannot resolve %s", path)
	}
	rel, err := filepath.Rel(repo.Root(), abs)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrVCS, "cannot resolve %s", path)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Newf(errors.ErrVCS, "%s is outside the repository", path).
			WithDetail("root", repo.Root())
	}
	rel = filepath.ToSlash(rel)
	if rel == "." {
		rel = ""
	}
	return rel, nil
}

type unavailable struct{}

// Unavailable returns the no-op variant used outside a repository
func Unavailable() Repository {
	return unavailable{}
}

func (unavailable) IsRepository() bool { return false }

func (unavailable) Root() string { return "" }

func (unavailable) DiffSummary(context.Context, string) (DiffSummary, error) {
	return DiffSummary{}, nil
}

func (unavailable) Diff(context.Context, string) (string, error) {
	return "", nil
}
