package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "esxdts",
	Short: "ExtendScript XML to TypeScript declaration recovery tool",
	Long: `esxdts reads an ExtendScript object-model XML dump and the native
library files it was generated from, and recovers a TypeScript .d.ts
declaration file from them.

The XML alone is usually enough to produce a declaration file, but
ExtendScript's own XML export is frequently missing parameter names,
parameter descriptions, and whole method descriptions. When one or more
binary library files are given, esxdts scans them for the strings the
XML exporter dropped and repairs the definitions before emitting them.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print recovery statistics to stderr")
}
