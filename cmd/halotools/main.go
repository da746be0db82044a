package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/eteq/halotools/empirical/prebuilt"
)

var (
	// Version information - will be set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

var noColor bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "halotools",
		Short: "Galaxy-halo modeling and mock catalog tooling",
		Long: `halotools composes galaxy-halo component models into composite models
and populates simulated halo catalogs with mock galaxies.`,
	}

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(populateCmd)
	rootCmd.AddCommand(cacheCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
