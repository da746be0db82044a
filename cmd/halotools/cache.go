package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/eteq/halotools/internal/cli/config"
	"github.com/eteq/halotools/internal/cli/ui"
	"github.com/eteq/halotools/sim"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "List the catalogs stored in the local catalog cache",
	Long: `Show every halo catalog stored in the local catalog cache, keyed by
simulation name and redshift. The cache path comes from halotools.yml.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprint(os.Stderr, ui.ConfigError(err.Error(), nil, noColor))
			os.Exit(1)
		}

		cache, err := sim.OpenCatalogCache(cfg.Cache.Path)
		if err != nil {
			fmt.Fprint(os.Stderr, ui.ConfigError(err.Error(), nil, noColor))
			os.Exit(1)
		}
		defer cache.Close()

		entries, err := cache.Entries()
		if err != nil {
			fmt.Fprint(os.Stderr, ui.ConfigError(err.Error(), nil, noColor))
			os.Exit(1)
		}

		renderCacheEntries(os.Stdout, entries, noColor)
		return nil
	},
}

func renderCacheEntries(w io.Writer, entries []sim.CacheEntry, noColor bool) {
	if len(entries) == 0 {
		fmt.Fprint(w, ui.Info("The catalog cache is empty.", noColor))
		return
	}

	table := ui.NewTable(w, []string{"Simname", "Redshift", "Created"}, noColor)
	for _, e := range entries {
		table.AddRow(
			e.Simname,
			strconv.FormatFloat(e.Redshift, 'g', -1, 64),
			e.CreatedAt.Format(time.RFC3339))
	}
	table.Render()
}
