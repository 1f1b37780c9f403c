package packaging

import (
	"context"

	"github.com/ferdium/ferdium-themes/pkg/catalog"
	"github.com/ferdium/ferdium-themes/pkg/history"
	"github.com/ferdium/ferdium-themes/pkg/logging"
	"github.com/ferdium/ferdium-themes/pkg/manifest"
	"github.com/ferdium/ferdium-themes/pkg/themes"
	"github.com/ferdium/ferdium-themes/pkg/types"
)

// processTheme runs the per-theme stage. Rejections are recorded on the
// result; only archive I/O failures come back as errors.
func (p *pipeline) processTheme(ctx context.Context, name string) (types.ThemeResult, error) {
	result := types.ThemeResult{Theme: name}
	if err := ctx.Err(); err != nil {
		return result, err
	}
	cfg := p.opts.Config
	logger := logging.ForTheme("packaging", name)

	folder := p.scanner.Load(name)
	if errs := themes.StructuralErrors(folder, cfg.Theme.Manifest); len(errs) > 0 {
		result.Errors = errs
		logger.Warn().Strs("errors", errs).Msg("Couldn't package theme")
		return result, nil
	}

	previewExists, err := folder.FileExists(p.opts.FS, cfg.Theme.Preview)
	if err != nil {
		logger.Warn().Err(err).Msg("Cannot stat preview file")
	}
	result.Errors = p.validator.Validate(folder.Raw, folder.Name, previewExists)

	if cfg.Package.CheckHistory {
		result.Errors = append(result.Errors,
			history.CheckVersionBump(ctx, folder.Path, folder.ManifestPath, p.opts.Repo)...)
	}

	if len(result.Errors) > 0 {
		logger.Warn().Strs("errors", result.Errors).Msg("Couldn't package theme")
		return result, nil
	}

	m, err := manifest.ToManifest(folder.Raw)
	if err != nil {
		result.Errors = []string{err.Error()}
		return result, nil
	}
	entry := catalog.NewEntry(m, cfg.Catalog.PreviewBaseURL)

	if !p.opts.DryRun {
		path, err := p.archiver.Archive(folder.Path, cfg.ArchivesDir(p.opts.Root), m.ID)
		if err != nil {
			return result, err
		}
		result.Archive = path
	}

	result.Entry = &entry
	logger.Debug().Str("version", m.Version).Msg("Theme accepted")
	return result, nil
}
