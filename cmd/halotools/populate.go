package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/eteq/halotools/catalog"
	"github.com/eteq/halotools/empirical/factory"
	"github.com/eteq/halotools/empirical/mock"
	"github.com/eteq/halotools/internal/cli/config"
	"github.com/eteq/halotools/internal/cli/ui"
	"github.com/eteq/halotools/sim"
)

var (
	populateNumHalos int
	populateBoxSize  float64
	populateRedshift float64
	populateSeed     int64
	populateNoCache  bool
)

var populateCmd = &cobra.Command{
	Use:   "populate <nickname>",
	Short: "Populate a fake halo catalog with mock galaxies",
	Long: `Build the named prebuilt composite model, generate a fake halo catalog,
run the model's calling sequence over it and report the resulting galaxy
table. The halo catalog is kept in the local catalog cache so repeated
runs against the same configuration reuse it.

Defaults come from halotools.yml in the current directory when present;
flags override the file.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		nickname := args[0]

		cfg, err := config.Load()
		if err != nil {
			fmt.Fprint(os.Stderr, ui.ConfigError(err.Error(), nil, noColor))
			os.Exit(1)
		}
		if cmd.Flags().Changed("num-halos") {
			cfg.Sim.NumHalos = populateNumHalos
		}
		if cmd.Flags().Changed("box-size") {
			cfg.Sim.BoxSize = populateBoxSize
		}
		if cmd.Flags().Changed("redshift") {
			cfg.Sim.Redshift = populateRedshift
		}
		if cmd.Flags().Changed("seed") {
			cfg.Sim.Seed = populateSeed
		}

		logger, err := newLogger(cfg.Logging.Level)
		if err != nil {
			fmt.Fprint(os.Stderr, ui.ConfigError(err.Error(), nil, noColor))
			os.Exit(1)
		}
		defer logger.Sync()

		model, err := factory.NewPrebuilt(nickname,
			factory.Keywords{"redshift": cfg.Sim.Redshift},
			factory.WithLogger(logger))
		if err != nil {
			if errors.Is(err, factory.ErrUnknownPrebuilt) {
				suggestions := ui.FindSimilar(nickname, factory.PrebuiltNames())
				fmt.Fprint(os.Stderr, ui.ModelNotFoundError(nickname, suggestions, noColor))
				os.Exit(1)
			}
			fmt.Fprint(os.Stderr, ui.CompositionError(err.Error(), nil, noColor))
			os.Exit(1)
		}

		fake := &sim.FakeSim{
			NumHalos: cfg.Sim.NumHalos,
			BoxSize:  cfg.Sim.BoxSize,
			Redshift: cfg.Sim.Redshift,
			Seed:     uint64(cfg.Sim.Seed),
		}
		halos, err := loadHalos(fake, cfg, logger)
		if err != nil {
			fmt.Fprint(os.Stderr, ui.PopulationError(err.Error(), "", noColor))
			os.Exit(1)
		}

		galaxies, err := mock.Populate(model, halos, mock.WithLogger(logger))
		if err != nil {
			fmt.Fprint(os.Stderr, ui.PopulationError(err.Error(),
				"No galaxy table was produced.", noColor))
			os.Exit(1)
		}

		renderPopulationSummary(os.Stdout, nickname, halos, galaxies, noColor)
		return nil
	},
}

func init() {
	populateCmd.Flags().IntVar(&populateNumHalos, "num-halos", 0, "number of halos to generate")
	populateCmd.Flags().Float64Var(&populateBoxSize, "box-size", 0, "box side length in Mpc/h")
	populateCmd.Flags().Float64Var(&populateRedshift, "redshift", 0, "snapshot redshift")
	populateCmd.Flags().Int64Var(&populateSeed, "seed", 0, "random seed for the fake catalog")
	populateCmd.Flags().BoolVar(&populateNoCache, "no-cache", false, "bypass the catalog cache")
}

// loadHalos fetches the halo catalog from the cache when possible,
// generating and storing it otherwise.
func loadHalos(fake *sim.FakeSim, cfg *config.Config, logger *zap.Logger) (*catalog.Table, error) {
	if populateNoCache {
		return fake.HaloTable()
	}

	cache, err := sim.OpenCatalogCache(cfg.Cache.Path)
	if err != nil {
		return nil, err
	}
	defer cache.Close()

	halos, err := cache.Get(fake.Name(), fake.Redshift)
	if err == nil {
		logger.Debug("halo catalog served from cache",
			zap.String("simname", fake.Name()),
			zap.Float64("redshift", fake.Redshift))
		return halos, nil
	}
	if !errors.Is(err, sim.ErrCacheMiss) {
		return nil, err
	}

	halos, err = fake.HaloTable()
	if err != nil {
		return nil, err
	}
	if err := cache.Put(fake.Name(), fake.Redshift, halos); err != nil {
		return nil, err
	}
	return halos, nil
}

func renderPopulationSummary(w io.Writer, nickname string, halos, galaxies *catalog.Table, noColor bool) {
	ui.Header(w, "Mock population: "+nickname, noColor)
	fmt.Fprintln(w)

	kv := ui.NewKeyValueTable(w, noColor)
	kv.AddRow("Halos", strconv.Itoa(halos.Len()))
	kv.AddRow("Galaxies", strconv.Itoa(galaxies.Len()))
	kv.AddRow("Columns", strings.Join(galaxies.ColumnNames(), ", "))
	kv.Render()
	fmt.Fprintln(w)

	ui.WriteSuccess(w, "mock population complete", noColor)
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid logging level %q: %w", level, err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}
