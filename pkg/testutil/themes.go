package testutil

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ferdium/ferdium-themes/pkg/types"
)

// DefaultStylesheet is the stylesheet written by AddTheme
const DefaultStylesheet = "body { background: #1e1e1e; }\n"

// ThemeTree writes theme folders below Root/themes
type ThemeTree struct {
	FS   types.FS
	Root string
}

// NewThemeTree creates the themes directory under root
func NewThemeTree(t *testing.T, fs types.FS, root string) *ThemeTree {
	t.Helper()

	require.NoError(t, fs.MkdirAll(filepath.Join(root, "themes"), 0755))
	return &ThemeTree{FS: fs, Root: root}
}

// ThemesDir returns the directory holding the theme folders
func (tt *ThemeTree) ThemesDir() string {
	return filepath.Join(tt.Root, "themes")
}

// ThemeDir returns the folder of the named theme
func (tt *ThemeTree) ThemeDir(name string) string {
	return filepath.Join(tt.ThemesDir(), name)
}

// ValidManifest returns a manifest for id that passes validation when the
// theme also ships a preview.png
func ValidManifest(id string) map[string]any {
	return map[string]any{
		"id":      id,
		"name":    id + " theme",
		"version": "1.0.0",
	}
}

// AddTheme writes a complete theme: theme.json from manifest, custom.css,
// preview.png and any extra files (paths relative to the theme folder).
func (tt *ThemeTree) AddTheme(t *testing.T, name string, manifest map[string]any, extra map[string]string) string {
	t.Helper()

	files := map[string]string{
		"custom.css":  DefaultStylesheet,
		"preview.png": "png",
	}
	for rel, content := range extra {
		files[rel] = content
	}
	tt.writeFiles(t, name, files)
	tt.WriteManifest(t, name, manifest)
	return tt.ThemeDir(name)
}

// AddValidTheme writes a theme that passes every check
func (tt *ThemeTree) AddValidTheme(t *testing.T, name string) string {
	t.Helper()
	return tt.AddTheme(t, name, ValidManifest(name), nil)
}

// WriteManifest (over)writes the theme.json of the named theme
func (tt *ThemeTree) WriteManifest(t *testing.T, name string, manifest map[string]any) {
	t.Helper()

	data, err := json.MarshalIndent(manifest, "", "  ")
	require.NoError(t, err)
	tt.WriteFile(t, name, "theme.json", string(data)+"\n")
}

// WriteFile writes a file inside the named theme folder
func (tt *ThemeTree) WriteFile(t *testing.T, name, rel, content string) {
	t.Helper()
	tt.writeFiles(t, name, map[string]string{rel: content})
}

// Remove deletes a file inside the named theme folder
func (tt *ThemeTree) Remove(t *testing.T, name, rel string) {
	t.Helper()
	require.NoError(t, tt.FS.Remove(filepath.Join(tt.ThemeDir(name), filepath.FromSlash(rel))))
}

func (tt *ThemeTree) writeFiles(t *testing.T, name string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		path := filepath.Join(tt.ThemeDir(name), filepath.FromSlash(rel))
		require.NoError(t, tt.FS.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, tt.FS.WriteFile(path, []byte(content), 0644))
	}
}
