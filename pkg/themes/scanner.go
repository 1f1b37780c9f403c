package themes

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ferdium/ferdium-themes/pkg/config"
	"github.com/ferdium/ferdium-themes/pkg/errors"
	"github.com/ferdium/ferdium-themes/pkg/logging"
	"github.com/ferdium/ferdium-themes/pkg/manifest"
	"github.com/ferdium/ferdium-themes/pkg/types"
)

// Scanner finds and loads theme folders
type Scanner struct {
	FS             types.FS
	Root           string
	ManifestFile   string
	StylesheetFile string
	Ignore         []string
}

// NewScanner builds a scanner for the themes directory of repoRoot
func NewScanner(fs types.FS, repoRoot string, cfg *config.Config) *Scanner {
	return &Scanner{
		FS:             fs,
		Root:           cfg.ThemesDir(repoRoot),
		ManifestFile:   cfg.Theme.Manifest,
		StylesheetFile: cfg.Theme.Stylesheet,
		Ignore:         cfg.Theme.Ignore,
	}
}

// Candidates returns the names of the theme folders, sorted
func (s *Scanner) Candidates() ([]string, error) {
	logger := logging.GetLogger("themes.scanner")

	info, err := s.FS.Stat(s.Root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, errors.ErrNotFound, "themes directory does not exist").
				WithDetail("path", s.Root)
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot access themes directory").
			WithDetail("path", s.Root)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrInvalidInput, "themes root is not a directory").
			WithDetail("path", s.Root)
	}

	entries, err := s.FS.ReadDir(s.Root)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read themes directory").
			WithDetail("path", s.Root)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() {
			continue
		}
		if s.ignored(name) {
			logger.Trace().Str("name", name).Msg("Skipping ignored folder")
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	logger.Debug().Int("count", len(names)).Str("root", s.Root).Msg("Found theme folders")
	return names, nil
}

func (s *Scanner) ignored(name string) bool {
	for _, pattern := range s.Ignore {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

// Load inspects one theme folder. Missing mandatory files are recorded in
// report order and stop the load; otherwise the manifest is parsed.
func (s *Scanner) Load(name string) types.ThemeFolder {
	folder := types.ThemeFolder{
		Name: name,
		Path: filepath.Join(s.Root, name),
	}
	folder.ManifestPath = folder.GetFilePath(s.ManifestFile)
	logger := logging.ForTheme("themes.scanner", name)

	for _, file := range []string{s.ManifestFile, s.StylesheetFile} {
		exists, err := folder.FileExists(s.FS, file)
		if err != nil {
			logger.Warn().Err(err).Str("file", file).Msg("Cannot stat mandatory file")
		}
		if !exists {
			folder.Missing = append(folder.Missing, file)
		}
	}
	if len(folder.Missing) > 0 {
		logger.Debug().Strs("missing", folder.Missing).Msg("Theme folder is incomplete")
		return folder
	}

	data, err := s.FS.ReadFile(folder.ManifestPath)
	if err != nil {
		folder.ParseErr = errors.Wrap(err, errors.ErrFileAccess, "cannot read manifest").
			WithDetail("path", folder.ManifestPath)
		return folder
	}
	raw, err := manifest.Parse(data)
	if err != nil {
		folder.ParseErr = err
		return folder
	}
	folder.Raw = raw
	return folder
}

// Scan discovers and loads every theme folder
func (s *Scanner) Scan() ([]types.ThemeFolder, error) {
	names, err := s.Candidates()
	if err != nil {
		return nil, err
	}
	folders := make([]types.ThemeFolder, 0, len(names))
	for _, name := range names {
		folders = append(folders, s.Load(name))
	}
	return folders, nil
}

// StructuralErrors renders the problems found while loading a folder, one
// message per missing file, or one for an unreadable manifest.
func StructuralErrors(folder types.ThemeFolder, manifestFile string) []string {
	if len(folder.Missing) > 0 {
		errs := make([]string, 0, len(folder.Missing))
		for _, file := range folder.Missing {
			errs = append(errs, fmt.Sprintf("Folder doesn't contain a %q.", file))
		}
		return errs
	}
	if folder.ParseErr != nil {
		return []string{fmt.Sprintf("Could not read or parse %q: %v", manifestFile, folder.ParseErr)}
	}
	return nil
}
