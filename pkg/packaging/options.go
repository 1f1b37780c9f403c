package packaging

import (
	"github.com/ferdium/ferdium-themes/pkg/config"
	"github.com/ferdium/ferdium-themes/pkg/filesystem"
	"github.com/ferdium/ferdium-themes/pkg/types"
	"github.com/ferdium/ferdium-themes/pkg/vcs"
)

// Options configures a packaging run
type Options struct {
	// Root is the repository root holding the themes directory
	Root string

	// Config defaults to config.Load(Root)
	Config *config.Config

	// FS defaults to the OS filesystem
	FS types.FS

	// Repo defaults to vcs.Open(Root) when history checks are enabled
	Repo vcs.Repository

	// Concurrency overrides package.concurrency when positive
	Concurrency int

	// Only restricts the run to the named theme folders
	Only []string

	// DryRun validates without touching archives or the catalog
	DryRun bool
}

func (o Options) withDefaults() (Options, error) {
	if o.Root == "" {
		o.Root = "."
	}
	if o.Config == nil {
		cfg, err := config.Load(o.Root)
		if err != nil {
			return o, err
		}
		o.Config = cfg
	}
	if o.FS == nil {
		o.FS = filesystem.NewOS()
	}
	if o.Repo == nil {
		if o.Config.Package.CheckHistory {
			o.Repo = vcs.Open(o.Root)
		} else {
			o.Repo = vcs.Unavailable()
		}
	}
	if o.Concurrency <= 0 {
		o.Concurrency = o.Config.Workers()
	}
	return o, nil
}
