package themepack

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ferdium/ferdium-themes/internal/version"
	"github.com/ferdium/ferdium-themes/pkg/config"
	"github.com/ferdium/ferdium-themes/pkg/errors"
	"github.com/ferdium/ferdium-themes/pkg/filesystem"
	"github.com/ferdium/ferdium-themes/pkg/logging"
	"github.com/ferdium/ferdium-themes/pkg/packaging"
	"github.com/ferdium/ferdium-themes/pkg/scaffold"
	"github.com/ferdium/ferdium-themes/pkg/themes"
	"github.com/ferdium/ferdium-themes/pkg/ui"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "themepack",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.String(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgNoCommandProvided)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().String("root", ".", MsgFlagRoot)
	rootCmd.PersistentFlags().String("format", "auto", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newPackageCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// rootDir returns the --root flag value
func rootDir(cmd *cobra.Command) string {
	root, _ := cmd.Root().PersistentFlags().GetString("root")
	return root
}

// newRenderer builds the renderer selected by --format for the command output
func newRenderer(cmd *cobra.Command) (ui.Renderer, error) {
	name, _ := cmd.Root().PersistentFlags().GetString("format")
	format, err := ui.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

// themeNamesCompletion completes theme folder names not yet on the command line
func themeNamesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	root := rootDir(cmd)
	cfg, err := config.Load(root)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	names, err := themes.NewScanner(filesystem.NewOS(), root, cfg).Candidates()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	given := make(map[string]bool, len(args))
	for _, a := range args {
		given[a] = true
	}
	var available []string
	for _, name := range names {
		if !given[name] {
			available = append(available, name)
		}
	}
	return available, cobra.ShellCompDirectiveNoFileComp
}

func newPackageCmd() *cobra.Command {
	var (
		concurrency int
		noHistory   bool
	)

	cmd := &cobra.Command{
		Use:               "package [themes...]",
		Short:             MsgPackageShort,
		Long:              MsgPackageLong,
		Example:           MsgPackageExample,
		GroupID:           "core",
		ValidArgsFunction: themeNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd, args, concurrency, noHistory, false)
		},
	}
	cmd.Flags().IntVarP(&concurrency, "concurrency", "j", 0, MsgFlagConcurrency)
	cmd.Flags().BoolVar(&noHistory, "no-history", false, MsgFlagNoHistory)
	return cmd
}

func newValidateCmd() *cobra.Command {
	var (
		concurrency int
		noHistory   bool
	)

	cmd := &cobra.Command{
		Use:               "validate [themes...]",
		Short:             MsgValidateShort,
		Long:              MsgValidateLong,
		Example:           MsgValidateExample,
		GroupID:           "core",
		ValidArgsFunction: themeNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd, args, concurrency, noHistory, true)
		},
	}
	cmd.Flags().IntVarP(&concurrency, "concurrency", "j", 0, MsgFlagConcurrency)
	cmd.Flags().BoolVar(&noHistory, "no-history", false, MsgFlagNoHistory)
	return cmd
}

func runPipeline(cmd *cobra.Command, args []string, concurrency int, noHistory, dryRun bool) error {
	root := rootDir(cmd)
	renderer, err := newRenderer(cmd)
	if err != nil {
		return err
	}
	cfg, err := config.Load(root)
	if err != nil {
		return err
	}
	if noHistory {
		cfg.Package.CheckHistory = false
		log.Info().Msg(MsgHistoryDisabled)
	}

	log.Info().Str("root", root).Strs("themes", args).Bool("dryRun", dryRun).Msg("Running theme pipeline")

	summary, err := packaging.Run(cmd.Context(), packaging.Options{
		Root:        root,
		Config:      cfg,
		Concurrency: concurrency,
		Only:        args,
		DryRun:      dryRun,
	})
	if err != nil {
		return err
	}
	if err := renderer.RenderResult(summary); err != nil {
		return err
	}
	return packaging.FailureError(summary)
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := rootDir(cmd)
			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}
			cfg, err := config.Load(root)
			if err != nil {
				return err
			}
			scanner := themes.NewScanner(filesystem.NewOS(), root, cfg)
			names, err := scanner.Candidates()
			if err != nil {
				return err
			}
			return renderer.RenderResult(&ui.ThemeList{Root: scanner.Root, Themes: names})
		},
	}
}

func newCreateCmd() *cobra.Command {
	var (
		app       string
		themesDir string
	)

	cmd := &cobra.Command{
		Use:     "create <theme name>",
		Short:   MsgCreateShort,
		Long:    MsgCreateLong,
		Example: MsgCreateExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app == "" {
				cfg, err := config.Load(rootDir(cmd))
				if err != nil {
					return err
				}
				app = cfg.Scaffold.App
			}

			result, err := scaffold.CreateTheme(scaffold.CreateOptions{
				Name:      args[0],
				App:       app,
				ThemesDir: themesDir,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, MsgThemeCreated+"\n\n", result.ID, result.Path)
			_, _ = io.WriteString(out, MsgCreateSuccess+"\n")
			return nil
		},
	}
	cmd.Flags().StringVar(&app, "app", "", MsgFlagApp)
	cmd.Flags().StringVar(&themesDir, "themes-dir", "", MsgFlagThemesDir)
	return cmd
}

func newConfigCmd() *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := io.WriteString(cmd.OutOrStdout(), config.DefaultContent())
				return err
			}

			cfg, err := config.Load(rootDir(cmd))
			if err != nil {
				return err
			}
			data, err := cfg.ToTOML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			default:
				return errors.Newf(errors.ErrInvalidInput, MsgUnsupportedShell, args[0])
			}
		},
	}
}
