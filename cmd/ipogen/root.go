package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/pairwise/catalog"
	"github.com/katalvlaran/pairwise/config"
	"github.com/katalvlaran/pairwise/ipo"
	"github.com/katalvlaran/pairwise/render"
)

// flags are the command-line overrides of config.Config.
type flags struct {
	configPath string
	seed       int64
	format     string
	title      string
	border     string
	verify     bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "ipogen <factors> <levels> [factors.csv] [infeasible.csv]",
		Short: "Generate pairwise test combinations with the IPO algorithm",
		Long: `ipogen builds a small set of test runs in which every pair of levels of
any two factors appears at least once (pairwise coverage), using the
In-Parameter-Order (IPO) strategy.

Arguments:
  factors         number of factors, 2..26
  levels          level count per factor, e.g. [3,5,5]
  factors.csv     optional table "Name;level1;level2;..." per factor
  infeasible.csv  optional table "levelA;levelB" per forbidden pair`,
		Example: `  ipogen 3 [3,5,5]
  ipogen 3 [3,5,5] factors.csv infeasible.csv --seed 42 --format csv`,
		Args:          cobra.RangeArgs(2, 4),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, f.verbose)
			defer func() { _ = logger.Sync() }()

			return run(cmd.OutOrStdout(), logger, cfg, args)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "YAML configuration file")
	fl.Int64Var(&f.seed, "seed", 0, "seed for random placeholder resolution (0 = default)")
	fl.StringVar(&f.format, "format", "", "output format: table or csv")
	fl.StringVar(&f.title, "title", "", "table title")
	fl.StringVar(&f.border, "border", "", "table border: normal, rounded, ascii or markdown")
	fl.BoolVar(&f.verify, "verify", false, "cross-check pairwise coverage after generation")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging on stderr")

	return cmd
}

// resolveConfig loads --config (if any) and applies explicitly set flags.
func resolveConfig(cmd *cobra.Command, f flags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return cfg, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("seed") {
		cfg.Seed = f.seed
	}
	if changed("format") {
		cfg.Format = f.format
	}
	if changed("title") {
		cfg.Title = f.title
	}
	if changed("border") {
		cfg.Border = f.border
	}
	if changed("verify") {
		cfg.Verify = f.verify
	}

	return cfg, cfg.Validate()
}

// newLogger writes console-encoded entries to w.
func newLogger(w io.Writer, level string, verbose bool) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.WarnLevel
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	enc := zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig())

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), lvl))
}

// run executes one generation: parse arguments, resolve the optional tables,
// generate, verify, and render.
func run(out io.Writer, logger *zap.Logger, cfg config.Config, args []string) error {
	n, err := parseFactorCount(args[0])
	if err != nil {
		return err
	}
	levels, err := parseLevelList(args[1], n)
	if err != nil {
		return err
	}
	d, err := ipo.NewDomain(levels)
	if err != nil {
		return err
	}

	var (
		labeler     render.Labeler = render.Symbolic{}
		constraints               = ipo.NewConstraints(d)
	)
	if len(args) > 2 {
		cat, err := catalog.LoadFactors(args[2])
		if err != nil {
			return err
		}
		if err = cat.Check(levels); err != nil {
			return err
		}
		labeler = cat
		logger.Debug("factor table loaded", zap.String("path", args[2]))

		if len(args) > 3 {
			pairs, err := catalog.LoadInfeasible(args[3])
			if err != nil {
				return err
			}
			if constraints, err = cat.Resolve(d, pairs); err != nil {
				return err
			}
			logger.Debug("infeasible pairs loaded", zap.String("path", args[3]), zap.Int("pairs", constraints.Len()))
		}
	}

	res, err := ipo.Generate(d, constraints, ipo.WithSeed(cfg.Seed), ipo.WithLogger(logger))
	if err != nil {
		return err
	}
	if cfg.Verify {
		if err = ipo.Verify(d, constraints, res.Runs).Err(); err != nil {
			return err
		}
		logger.Info("coverage verified", zap.Int("runs", len(res.Runs)))
	}

	switch cfg.Format {
	case "csv":
		return render.WriteCSV(out, res.Runs, d.Size(), labeler)
	default:
		opts := []render.Option{render.WithBorder(pickBorder(out, cfg.Border))}
		if cfg.Title != "" {
			opts = append(opts, render.WithTitle(cfg.Title))
		}
		_, err = fmt.Fprint(out, render.Table(res.Runs, d.Size(), labeler, opts...))
		return err
	}
}

// pickBorder honours an explicit border; otherwise box-drawing on a
// terminal and plain ASCII for pipes and files.
func pickBorder(out io.Writer, configured string) render.Border {
	if configured != "" {
		return render.Border(configured)
	}
	if f, ok := out.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return render.BorderNormal
	}

	return render.BorderASCII
}
