package types

import (
	"os"
	"path/filepath"
)

// ThemeFolder is the unit of work for one packaging run
type ThemeFolder struct {
	// Name is the folder name, which is the source of truth for the theme id
	Name string

	// Path is the path to the theme directory
	Path string

	// ManifestPath is the path to the theme's manifest file
	ManifestPath string

	// Missing lists mandatory files that were not found. When non-empty the
	// manifest is never read.
	Missing []string

	// Raw is the parsed manifest, nil if it could not be read
	Raw RawManifest

	// ParseErr is set when the manifest exists but could not be parsed
	ParseErr error
}

// GetFilePath returns the full path to a file within the theme
func (t *ThemeFolder) GetFilePath(filename string) string {
	return filepath.Join(t.Path, filename)
}

// FileExists checks if a file exists within the theme
func (t *ThemeFolder) FileExists(fs FS, filename string) (bool, error) {
	_, err := fs.Stat(t.GetFilePath(filename))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Eligible reports whether the folder has every mandatory file and a parsed manifest
func (t *ThemeFolder) Eligible() bool {
	return len(t.Missing) == 0 && t.ParseErr == nil && t.Raw != nil
}
