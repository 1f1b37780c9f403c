package config

import (
	"path/filepath"
	"runtime"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/ferdium/ferdium-themes/pkg/errors"
)

// Config is the complete themepack configuration
type Config struct {
	Paths    Paths    `koanf:"paths" toml:"paths"`
	Theme    Theme    `koanf:"theme" toml:"theme"`
	Catalog  Catalog  `koanf:"catalog" toml:"catalog"`
	Archive  Archive  `koanf:"archive" toml:"archive"`
	Package  Package  `koanf:"package" toml:"package"`
	Scaffold Scaffold `koanf:"scaffold" toml:"scaffold"`
}

// Paths locates the inputs and outputs of a run, relative to the repository root
type Paths struct {
	Themes   string `koanf:"themes" toml:"themes"`
	Archives string `koanf:"archives" toml:"archives"`
	Catalog  string `koanf:"catalog" toml:"catalog"`
}

// Theme names the files that make up a theme folder
type Theme struct {
	Manifest   string   `koanf:"manifest" toml:"manifest"`
	Stylesheet string   `koanf:"stylesheet" toml:"stylesheet"`
	Preview    string   `koanf:"preview" toml:"preview"`
	Ignore     []string `koanf:"ignore" toml:"ignore"`
}

// Catalog configures the catalog output
type Catalog struct {
	PreviewBaseURL string `koanf:"preview_base_url" toml:"preview_base_url"`
}

// Archive configures per-theme archives
type Archive struct {
	Extension string   `koanf:"extension" toml:"extension"`
	Exclude   []string `koanf:"exclude" toml:"exclude"`
}

// Package configures the packaging run
type Package struct {
	Concurrency  int  `koanf:"concurrency" toml:"concurrency"`
	CheckHistory bool `koanf:"check_history" toml:"check_history"`
}

// Scaffold configures the create command
type Scaffold struct {
	App string `koanf:"app" toml:"app"`
}

// MandatoryFiles returns the files every theme folder must contain, in report order
func (c *Config) MandatoryFiles() []string {
	return []string{c.Theme.Manifest, c.Theme.Stylesheet}
}

// ThemesDir resolves the themes root against the repository root
func (c *Config) ThemesDir(root string) string {
	return resolve(root, c.Paths.Themes)
}

// ArchivesDir resolves the archive output directory against the repository root
func (c *Config) ArchivesDir(root string) string {
	return resolve(root, c.Paths.Archives)
}

// CatalogPath resolves the catalog file against the repository root
func (c *Config) CatalogPath(root string) string {
	return resolve(root, c.Paths.Catalog)
}

// Workers returns the effective packaging concurrency
func (c *Config) Workers() int {
	if c.Package.Concurrency > 0 {
		return c.Package.Concurrency
	}
	return runtime.NumCPU()
}

// Validate checks values that would make a run meaningless
func (c *Config) Validate() error {
	required := []struct{ key, value string }{
		{"paths.themes", c.Paths.Themes},
		{"paths.archives", c.Paths.Archives},
		{"paths.catalog", c.Paths.Catalog},
		{"theme.manifest", c.Theme.Manifest},
		{"theme.stylesheet", c.Theme.Stylesheet},
		{"archive.extension", c.Archive.Extension},
	}
	for _, r := range required {
		if r.value == "" {
			return errors.Newf(errors.ErrConfigParse, "configuration key %s cannot be empty", r.key).
				WithDetail("key", r.key)
		}
	}
	if c.Package.Concurrency < 0 {
		return errors.Newf(errors.ErrConfigParse, "package.concurrency must not be negative, got %d", c.Package.Concurrency)
	}
	for _, pattern := range append(append([]string{}, c.Archive.Exclude...), c.Theme.Ignore...) {
		if !validPattern(pattern) {
			return errors.Newf(errors.ErrConfigParse, "invalid pattern %q", pattern).
				WithDetail("pattern", pattern)
		}
	}
	return nil
}

// ToTOML renders the configuration as TOML
func (c *Config) ToTOML() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return data, nil
}

func resolve(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
