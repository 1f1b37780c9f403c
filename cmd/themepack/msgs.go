package themepack

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Validate and package Ferdium themes"
	MsgPackageShort    = "Validate, archive and catalog theme folders"
	MsgValidateShort   = "Check theme folders without writing anything"
	MsgListShort       = "List theme folders"
	MsgCreateShort     = "Create a new development theme"
	MsgConfigShort     = "Print the effective configuration"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgNoThemes          = "No theme folders found in %s"
	MsgThemeCreated      = "✅ Successfully created theme %q in %s"
	MsgPackagingFailed   = "One or more themes couldn't be packaged."
	MsgValidationFailed  = "One or more themes failed validation."
	MsgHistoryDisabled   = "History checks disabled"
	MsgUnsupportedShell  = "unsupported shell: %s"
	MsgNoCommandProvided = "no command specified"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRoot        = "Repository root containing the themes directory"
	MsgFlagFormat      = "Output format: auto, term, text, json or yaml"
	MsgFlagConcurrency = "Themes processed in parallel (0 uses package.concurrency)"
	MsgFlagNoHistory   = "Skip the version-bump check against git"
	MsgFlagApp         = "Host application folder (Ferdium or FerdiumDev)"
	MsgFlagThemesDir   = "Themes folder of the host application (defaults to the XDG config location)"
	MsgFlagDefaults    = "Print the built-in defaults (commented) instead of the effective values"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/package-long.txt
	msgPackageLongRaw string
	MsgPackageLong    = strings.TrimSpace(msgPackageLongRaw)

	//go:embed msgs/package-example.txt
	msgPackageExampleRaw string
	MsgPackageExample    = strings.TrimRight(msgPackageExampleRaw, "\n")

	//go:embed msgs/validate-long.txt
	msgValidateLongRaw string
	MsgValidateLong    = strings.TrimSpace(msgValidateLongRaw)

	//go:embed msgs/validate-example.txt
	msgValidateExampleRaw string
	MsgValidateExample    = strings.TrimRight(msgValidateExampleRaw, "\n")

	//go:embed msgs/create-long.txt
	msgCreateLongRaw string
	MsgCreateLong    = strings.TrimSpace(msgCreateLongRaw)

	//go:embed msgs/create-example.txt
	msgCreateExampleRaw string
	MsgCreateExample    = strings.TrimRight(msgCreateExampleRaw, "\n")

	//go:embed msgs/create-success.txt
	msgCreateSuccessRaw string
	MsgCreateSuccess    = strings.TrimSpace(msgCreateSuccessRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
