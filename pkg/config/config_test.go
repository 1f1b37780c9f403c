package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferdium/ferdium-themes/pkg/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "themes", cfg.Paths.Themes)
	assert.Equal(t, "archives", cfg.Paths.Archives)
	assert.Equal(t, "all.json", cfg.Paths.Catalog)
	assert.Equal(t, []string{"theme.json", "custom.css"}, cfg.MandatoryFiles())
	assert.Equal(t, "preview.png", cfg.Theme.Preview)
	assert.Equal(t, "tar.gz", cfg.Archive.Extension)
	assert.Contains(t, cfg.Archive.Exclude, "**/*.md")
	assert.Contains(t, cfg.Archive.Exclude, "**/.DS_Store")
	assert.Equal(t, "https://cdn.jsdelivr.net/gh/ferdium/ferdium-themes/themes/", cfg.Catalog.PreviewBaseURL)
	assert.True(t, cfg.Package.CheckHistory)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers())
	assert.Equal(t, "Ferdium", cfg.Scaffold.App)
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("defaults_without_repository_config", func(t *testing.T) {
		root := t.TempDir()

		cfg, err := Load(root)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "themes"), cfg.ThemesDir(root))
		assert.Equal(t, filepath.Join(root, "archives"), cfg.ArchivesDir(root))
		assert.Equal(t, filepath.Join(root, "all.json"), cfg.CatalogPath(root))
	})

	t.Run("repository_config_overrides_defaults", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "themepack.toml"), []byte(`
[paths]
archives = "dist"

[archive]
exclude = ["**/*.txt"]

[package]
concurrency = 3
check_history = false
`), 0644))

		cfg, err := Load(root)
		require.NoError(t, err)
		assert.Equal(t, "dist", cfg.Paths.Archives)
		assert.Equal(t, "themes", cfg.Paths.Themes, "untouched keys keep defaults")
		assert.Equal(t, []string{"**/*.txt"}, cfg.Archive.Exclude)
		assert.Equal(t, 3, cfg.Workers())
		assert.False(t, cfg.Package.CheckHistory)
	})

	t.Run("hidden_config_file_is_used", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, ".themepack.toml"), []byte("[paths]\ncatalog = \"catalog.json\"\n"), 0644))

		cfg, err := Load(root)
		require.NoError(t, err)
		assert.Equal(t, "catalog.json", cfg.Paths.Catalog)
	})

	t.Run("environment_overrides_file", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "themepack.toml"), []byte("[package]\nconcurrency = 3\n"), 0644))
		t.Setenv("THEMEPACK_PACKAGE_CONCURRENCY", "8")
		t.Setenv("THEMEPACK_PACKAGE_CHECK_HISTORY", "false")
		t.Setenv("THEMEPACK_ARCHIVE_EXCLUDE", "**/*.md,**/*.psd")

		cfg, err := Load(root)
		require.NoError(t, err)
		assert.Equal(t, 8, cfg.Package.Concurrency)
		assert.False(t, cfg.Package.CheckHistory)
		assert.Equal(t, []string{"**/*.md", "**/*.psd"}, cfg.Archive.Exclude)
	})

	t.Run("malformed_file_is_a_parse_error", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "themepack.toml"), []byte("[paths\nthemes = "), 0644))

		_, err := Load(root)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("invalid_values_are_rejected", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "themepack.toml"), []byte("[archive]\nextension = \"\"\n"), 0644))

		_, err := Load(root)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
		assert.Contains(t, err.Error(), "archive.extension")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"negative_concurrency", func(c *Config) { c.Package.Concurrency = -1 }, "concurrency"},
		{"empty_manifest_name", func(c *Config) { c.Theme.Manifest = "" }, "theme.manifest"},
		{"broken_exclude_pattern", func(c *Config) { c.Archive.Exclude = []string{"[*.md"} }, "invalid pattern"},
		{"empty_ignore_pattern", func(c *Config) { c.Theme.Ignore = []string{""} }, "invalid pattern"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestAbsolutePathsAreKept(t *testing.T) {
	cfg := Default()
	abs := filepath.Join(t.TempDir(), "out")
	cfg.Paths.Archives = abs
	assert.Equal(t, abs, cfg.ArchivesDir("/repo"))
}

func TestToTOML(t *testing.T) {
	data, err := Default().ToTOML()
	require.NoError(t, err)

	var decoded Config
	require.NoError(t, toml.Unmarshal(data, &decoded))
	assert.Equal(t, *Default(), decoded)
	assert.Contains(t, string(data), "preview_base_url")
}
