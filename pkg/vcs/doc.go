// Package vcs answers the two questions the history check asks of version
// control: which files below a path differ from the last commit, and what the
// textual diff of one file is.
//
// Open picks the implementation once per run. Inside a git work tree it
// returns a go-git backed Repository; anywhere else it returns the
// Unavailable variant, whose IsRepository reports false so callers skip
// history checks entirely.
//
// Changes are measured between HEAD and the working tree, so both staged and
// unstaged edits count. Untracked files are ignored. Paths returned by
// DiffSummary are relative to the repository root and slash-separated.
package vcs
