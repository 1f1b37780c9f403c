// Package filesystem provides implementations of types.FS: the OS filesystem
// used by the CLI and an afero-backed filesystem used by tests.
package filesystem
