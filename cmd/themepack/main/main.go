package main

import (
	"fmt"
	"os"

	"github.com/ferdium/ferdium-themes/cmd/themepack"
	"github.com/ferdium/ferdium-themes/pkg/errors"
	"github.com/ferdium/ferdium-themes/pkg/ui"
)

func main() {
	rootCmd := themepack.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Per-theme failures were already reported in the summary
		if errors.IsErrorCode(err, errors.ErrPackagingFailed) {
			fmt.Fprintln(os.Stderr, ui.DefaultStyles.Render("Error", themepack.MsgPackagingFailed))
			os.Exit(1)
		}

		fmt.Fprintln(os.Stderr, ui.DefaultStyles.Render("Error", fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
