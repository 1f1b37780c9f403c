// Package history enforces the version-bump policy: a theme folder with
// uncommitted changes must also raise the version in its manifest.
package history

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ferdium/ferdium-themes/pkg/logging"
	"github.com/ferdium/ferdium-themes/pkg/vcs"
)

// CheckVersionBump returns the history-policy violations for one theme
// folder. Outside a repository, or when the folder has no changes, it
// returns nil. Failures to query the repository are reported as violations so
// that a theme is never accepted on an unverified history.
func CheckVersionBump(ctx context.Context, folderPath, manifestPath string, repo vcs.Repository) []string {
	if repo == nil || !repo.IsRepository() {
		return nil
	}
	logger := logging.ForTheme("history", filepath.Base(folderPath))

	summary, err := repo.DiffSummary(ctx, folderPath)
	if err != nil {
		logger.Warn().Err(err).Msg("Could not read folder changes")
		return []string{fmt.Sprintf("Got the following error while checking for git changes: %v", err)}
	}
	if summary.Empty() {
		return nil
	}
	logger.Debug().
		Strs("files", summary.ChangedFiles).
		Int("insertions", summary.Insertions).
		Int("deletions", summary.Deletions).
		Msg("Theme folder has uncommitted changes")

	folderRel, err := vcs.Relative(repo, folderPath)
	if err != nil {
		return []string{fmt.Sprintf("Got the following error while checking for git changes: %v", err)}
	}
	manifestRel, err := vcs.Relative(repo, manifestPath)
	if err != nil {
		return []string{fmt.Sprintf("Got the following error while checking for git changes: %v", err)}
	}
	if !summary.Contains(manifestRel) {
		return []string{fmt.Sprintf(
			"Found changes in '%s' without the corresponding version bump in '%s'",
			folderRel, manifestRel)}
	}

	diff, err := repo.Diff(ctx, manifestPath)
	if err != nil {
		logger.Warn().Err(err).Msg("Could not read manifest diff")
		return []string{fmt.Sprintf("Got the following error while checking for changes in '%s': %v", manifestRel, err)}
	}
	if !VersionLineAdded(diff) {
		return []string{fmt.Sprintf(
			"Found changes in '%s' without the corresponding version bump in '%s' (found other changes though)",
			folderRel, manifestRel)}
	}
	return nil
}

// VersionLineAdded reports whether diff adds a content line mentioning
// "version". File header lines ("+++") do not count.
func VersionLineAdded(diff string) bool {
	for _, line := range strings.Split(diff, "\n") {
		if strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++") &&
			strings.Contains(line, "version") {
			return true
		}
	}
	return false
}
