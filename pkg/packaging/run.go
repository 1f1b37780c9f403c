package packaging

import (
	"context"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/ferdium/ferdium-themes/pkg/archive"
	"github.com/ferdium/ferdium-themes/pkg/catalog"
	"github.com/ferdium/ferdium-themes/pkg/errors"
	"github.com/ferdium/ferdium-themes/pkg/logging"
	"github.com/ferdium/ferdium-themes/pkg/manifest"
	"github.com/ferdium/ferdium-themes/pkg/themes"
	"github.com/ferdium/ferdium-themes/pkg/types"
)

type pipeline struct {
	opts      Options
	scanner   *themes.Scanner
	validator manifest.Validator
	archiver  *archive.Archiver
}

// Run packages every theme folder below the themes directory
func Run(ctx context.Context, opts Options) (*types.RunSummary, error) {
	logger := logging.GetLogger("packaging")
	defer logging.LogOperationStart(logger, "package")()

	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	cfg := opts.Config

	p := &pipeline{
		opts:    opts,
		scanner: themes.NewScanner(opts.FS, opts.Root, cfg),
		validator: manifest.Validator{
			ManifestFile: cfg.Theme.Manifest,
			PreviewFile:  cfg.Theme.Preview,
		},
		archiver: archive.New(opts.FS, cfg),
	}

	logger.Debug().
		Str("root", opts.Root).
		Int("concurrency", opts.Concurrency).
		Bool("dryRun", opts.DryRun).
		Bool("history", opts.Repo.IsRepository() && cfg.Package.CheckHistory).
		Msg("Starting packaging run")

	if !opts.DryRun {
		if err := p.reset(); err != nil {
			return nil, err
		}
	}

	names, err := p.scanner.Candidates()
	if err != nil {
		return nil, err
	}
	names, err = themes.Select(names, opts.Only)
	if err != nil {
		return nil, err
	}

	results := make([]types.ThemeResult, len(names))
	var g errgroup.Group
	g.SetLimit(opts.Concurrency)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			result, err := p.processTheme(ctx, name)
			results[i] = result
			return err
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("Packaging run aborted")
		return nil, err
	}

	summary := &types.RunSummary{
		Processed: len(results),
		Results:   results,
		DryRun:    opts.DryRun,
	}
	builder := catalog.NewBuilder()
	for _, r := range results {
		if !r.Succeeded() {
			summary.Failed++
			continue
		}
		builder.Add(*r.Entry)
	}
	summary.Catalog = builder.Entries()

	if !opts.DryRun {
		path := cfg.CatalogPath(opts.Root)
		if err := builder.Write(opts.FS, path); err != nil {
			return nil, err
		}
		summary.CatalogPath = path
	}

	logger.Info().
		Int("processed", summary.Processed).
		Int("succeeded", summary.Succeeded()).
		Int("failed", summary.Failed).
		Msg("Packaging run completed")
	return summary, nil
}

// Validate runs every check without writing archives or the catalog
func Validate(ctx context.Context, opts Options) (*types.RunSummary, error) {
	opts.DryRun = true
	return Run(ctx, opts)
}

// FailureError returns a PACKAGING_FAILED error when any theme was rejected
func FailureError(summary *types.RunSummary) error {
	if summary == nil || summary.OK() {
		return nil
	}
	var failed []string
	for _, r := range summary.FailedResults() {
		failed = append(failed, r.Theme)
	}
	return errors.Newf(errors.ErrPackagingFailed, "%d of %d themes failed", summary.Failed, summary.Processed).
		WithDetail("themes", failed)
}

// reset empties the archive directory and removes the previous catalog
func (p *pipeline) reset() error {
	cfg := p.opts.Config
	archivesDir := cfg.ArchivesDir(p.opts.Root)

	if err := p.opts.FS.RemoveAll(archivesDir); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to clear archive directory").
			WithDetail("path", archivesDir)
	}
	if err := p.opts.FS.MkdirAll(archivesDir, 0755); err != nil {
		return errors.Wrap(err, errors.ErrDirCreate, "failed to create archive directory").
			WithDetail("path", archivesDir)
	}

	catalogPath := cfg.CatalogPath(p.opts.Root)
	if err := p.opts.FS.Remove(catalogPath); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to remove previous catalog").
			WithDetail("path", catalogPath)
	}
	return nil
}
