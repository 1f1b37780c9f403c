// Package scaffold creates a new development theme in the host
// application's themes folder from an embedded sample theme.
package scaffold

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/adrg/xdg"

	"github.com/ferdium/ferdium-themes/pkg/errors"
	"github.com/ferdium/ferdium-themes/pkg/filesystem"
	"github.com/ferdium/ferdium-themes/pkg/logging"
	"github.com/ferdium/ferdium-themes/pkg/manifest"
	"github.com/ferdium/ferdium-themes/pkg/types"
)

//go:embed sample_theme
var sampleTheme embed.FS

const sampleRoot = "sample_theme"

// DevFolder is the subfolder of the host themes folder holding local themes
const DevFolder = "dev"

// templated files get THEME, SNAME and SPASCAL substituted
var templated = map[string]bool{"theme.json": true}

var whitespace = regexp.MustCompile(`\s`)

// CreateOptions configures CreateTheme
type CreateOptions struct {
	// Name is the display name, e.g. "Google Hangouts"
	Name string

	// App is the host application folder name, e.g. Ferdium or FerdiumDev
	App string

	// ThemesDir overrides the host themes folder
	ThemesDir string

	// FS defaults to the OS filesystem
	FS types.FS
}

// CreateResult describes the created theme
type CreateResult struct {
	ID         string
	Name       string
	PascalName string
	Path       string
}

// ThemeID derives the theme id: lower-cased, whitespace replaced by "-"
func ThemeID(name string) string {
	return whitespace.ReplaceAllString(strings.ToLower(name), "-")
}

// PascalName keeps only the letters a-z of id and capitalises the first one
func PascalName(id string) string {
	var b strings.Builder
	for _, r := range id {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	letters := []rune(b.String())
	if len(letters) == 0 {
		return ""
	}
	letters[0] = unicode.ToUpper(letters[0])
	return string(letters)
}

// HostThemesDir returns <config dir>/<app>/config/themes
func HostThemesDir(app string) string {
	return filepath.Join(xdg.ConfigHome, app, "config", "themes")
}

// CreateTheme copies the sample theme into <themes>/dev/<id>
func CreateTheme(opts CreateOptions) (*CreateResult, error) {
	logger := logging.GetLogger("scaffold")

	name := strings.TrimSpace(opts.Name)
	if name == "" {
		return nil, errors.New(errors.ErrInvalidInput, "theme name cannot be empty")
	}
	id := ThemeID(name)
	if !manifest.ValidID(id) {
		return nil, errors.Newf(errors.ErrInvalidInput,
			"theme name %q gives the id %q, which may only contain letters, numbers, '-', '.' and '_'", name, id).
			WithDetail("id", id)
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	app := opts.App
	if app == "" {
		app = "Ferdium"
	}
	themesDir := opts.ThemesDir
	if themesDir == "" {
		themesDir = HostThemesDir(app)
	}

	if _, err := fsys.Stat(themesDir); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrNotFound,
				"Couldn't find your theme folder (%s). Is %s installed?", themesDir, app).
				WithDetail("path", themesDir)
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot access theme folder").
			WithDetail("path", themesDir)
	}

	devDir := filepath.Join(themesDir, DevFolder)
	if err := fsys.MkdirAll(devDir, 0755); err != nil {
		return nil, errors.Wrap(err, errors.ErrDirCreate, "failed to create dev theme folder").
			WithDetail("path", devDir)
	}

	target := filepath.Join(devDir, id)
	if _, err := fsys.Stat(target); err == nil {
		return nil, errors.Newf(errors.ErrAlreadyExists, "Theme already exists: %s", target).
			WithDetail("path", target)
	}

	result := &CreateResult{ID: id, Name: name, PascalName: PascalName(id), Path: target}
	replacer := strings.NewReplacer("THEME", result.ID, "SNAME", result.Name, "SPASCAL", result.PascalName)

	err := fs.WalkDir(sampleTheme, sampleRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(p, sampleRoot), "/")
		dest := filepath.Join(target, filepath.FromSlash(rel))
		if d.IsDir() {
			return fsys.MkdirAll(dest, 0755)
		}

		data, err := sampleTheme.ReadFile(p)
		if err != nil {
			return err
		}
		if templated[path.Base(p)] {
			data = []byte(replacer.Replace(string(data)))
		}
		return fsys.WriteFile(dest, data, 0644)
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileWrite, "failed to copy sample theme").
			WithDetail("path", target)
	}

	logger.Info().Str("id", id).Str("path", target).Msg("Created theme")
	return result, nil
}
