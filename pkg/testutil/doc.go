// Package testutil provides helpers for building theme repositories in tests.
//
// Key components:
//   - ThemeTree: writes theme folders (manifest, stylesheet, extra files) to any types.FS
//   - GitRepo: a throwaway go-git repository in a temp directory
//   - FailingFS: a types.FS wrapper that injects errors for chosen paths
//
// Tests that do not involve version control should use an in-memory
// filesystem (filesystem.NewMemory); anything touching go-git needs a real
// temp directory.
package testutil
