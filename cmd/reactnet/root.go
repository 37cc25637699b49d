// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/reactnet/analysis"
	"github.com/katalvlaran/reactnet/internal/config"
	"github.com/katalvlaran/reactnet/report"
)

// loggerFactory builds the run logger once the configuration is known.
type loggerFactory func(verbose bool) (*zap.Logger, error)

type cli struct {
	v          *viper.Viper
	configFile string
	newLogger  loggerFactory
}

func newRootCmd(v *viper.Viper, newLogger loggerFactory) *cobra.Command {
	c := &cli{v: v, newLogger: newLogger}
	root := &cobra.Command{
		Use:          "reactnet",
		Short:        "Network analysis of biorefinery reaction data",
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&c.configFile, "config", "", "config file (default ./"+config.DefaultFile+")")
	pf.Bool("verbose", false, "development logging at debug level")
	bind(v, pf, config.KeyVerbose, "verbose")

	root.AddCommand(newRunCmd(c), newKindsCmd())

	return root
}

func newRunCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "run <kind>",
		Short:     "Run one analysis and write its artifacts",
		Args:      cobra.ExactArgs(1),
		ValidArgs: kindNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, args[0])
		},
	}
	f := cmd.Flags()
	f.String("plot", "", "degree_distribution plot: bar, scatter, exponent, scatter_comparison_plot, distribution_comparison_plot")
	f.String("input", "", "main reaction table (TSV)")
	f.String("merge", "", "table appended by merge_and_graph_fragmentation")
	f.String("compare", "", "second dataset of dataset_comparison")
	f.String("reference-dir", "", "directory holding the NOC reference CSV files")
	f.String("output-dir", "", "directory receiving results and pages")
	f.String("format", "", "result encoding: json or yaml")

	bind(c.v, f, config.KeyPlot, "plot")
	bind(c.v, f, config.KeyInput, "input")
	bind(c.v, f, config.KeyMerge, "merge")
	bind(c.v, f, config.KeyCompare, "compare")
	bind(c.v, f, config.KeyReferenceDir, "reference-dir")
	bind(c.v, f, config.KeyOutputDir, "output-dir")
	bind(c.v, f, config.KeyFormat, "format")

	return cmd
}

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the available analyses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, k := range analysis.Kinds() {
				graph := "unweighted"
				if k.Weighted() {
					graph = "weighted"
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-32s %s\n", k, graph); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (c *cli) run(cmd *cobra.Command, name string) error {
	kind, err := analysis.ParseKind(name)
	if err != nil {
		return err
	}
	cfg, err := config.Load(c.v, c.configFile)
	if err != nil {
		return err
	}
	log, err := c.newLogger(cfg.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	opts, err := cfg.AnalysisOptions()
	if err != nil {
		return err
	}
	format, err := cfg.ReportFormat()
	if err != nil {
		return err
	}
	w, err := report.NewWriter(cfg.OutputDir, report.WithFormat(format), report.WithLogger(log))
	if err != nil {
		return err
	}
	runner, err := analysis.NewRunner(cfg.Inputs(), opts, w, log)
	if err != nil {
		return err
	}

	_, paths, err := runner.Run(cmd.Context(), kind)
	if err != nil {
		log.Error("analysis failed", zap.Stringer("analysis", kind), zap.Error(err))
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run %s: %s\n", w.RunID(), kind)
	for _, p := range paths {
		fmt.Fprintln(out, p)
	}

	return nil
}

// bind ties a flag to a configuration key; a missing flag is a programming error.
func bind(v *viper.Viper, fs *pflag.FlagSet, key, flag string) {
	if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
		panic(err)
	}
}

func kindNames() []string {
	kinds := analysis.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}

	return names
}
