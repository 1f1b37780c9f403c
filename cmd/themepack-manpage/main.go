package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/ferdium/ferdium-themes/cmd/themepack"
	"github.com/ferdium/ferdium-themes/internal/version"
)

func main() {
	rootCmd := themepack.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "THEMEPACK",
		Section: "1",
		Source:  "themepack " + version.Version,
		Manual:  "themepack manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
