// Package types defines the core data structures shared by the packaging
// pipeline: the filesystem abstraction, the raw and typed theme manifest,
// theme folders, catalog entries and per-run results.
package types
