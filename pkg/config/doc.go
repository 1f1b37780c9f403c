// Package config loads themepack configuration.
//
// Values are layered with koanf: the embedded defaults.toml first, then an
// optional themepack.toml (or .themepack.toml) in the repository root, then
// THEMEPACK_* environment variables. Relative paths are resolved against the
// repository root.
package config
