// SPDX-License-Identifier: MIT

// Package config loads reactnet settings from a YAML file, REACTNET_*
// environment variables and command-line flags, in increasing priority.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/katalvlaran/reactnet/analysis"
	"github.com/katalvlaran/reactnet/report"
)

// EnvPrefix prefixes every environment override, e.g. REACTNET_OUTPUT_DIR.
const EnvPrefix = "REACTNET"

// DefaultFile is looked up in the working directory when no file is given.
const DefaultFile = "reactnet.yaml"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Keys shared with command-line flags.
const (
	KeyInput        = "input"
	KeyMerge        = "merge"
	KeyCompare      = "compare"
	KeyReferenceDir = "reference_dir"
	KeyOutputDir    = "output_dir"
	KeyFormat       = "format"
	KeyPlot         = "plot"
	KeyVerbose      = "verbose"
)

// Palette colours the two datasets of a comparison and their overlap.
type Palette struct {
	First  string `mapstructure:"first" validate:"required"`
	Second string `mapstructure:"second" validate:"required"`
	Common string `mapstructure:"common" validate:"required"`
}

// Analysis mirrors analysis.Options.
type Analysis struct {
	TopK               int      `mapstructure:"top_k" validate:"min=1"`
	NumToPlot          int      `mapstructure:"num_to_plot" validate:"min=0"`
	SameWidthEdges     bool     `mapstructure:"same_width_edges"`
	GirvanNewmanSteps  int      `mapstructure:"girvan_newman_steps" validate:"min=1"`
	KCoreLevels        int      `mapstructure:"kcore_levels" validate:"min=1"`
	BetweennessScale   float64  `mapstructure:"betweenness_scale" validate:"gt=0"`
	DegreeScale        float64  `mapstructure:"degree_scale" validate:"gt=0"`
	ClusterPalette     []string `mapstructure:"cluster_palette" validate:"min=1,dive,required"`
	ComparisonPalette  Palette  `mapstructure:"comparison_palette"`
	ImportantMolecules []string `mapstructure:"important_molecules" validate:"dive,required"`
	CorrelationDegrees []string `mapstructure:"correlation_degrees" validate:"min=1,dive,required"`
}

// Config is the complete runtime configuration.
type Config struct {
	Input        string   `mapstructure:"input" validate:"required"`
	Merge        string   `mapstructure:"merge"`
	Compare      string   `mapstructure:"compare"`
	ReferenceDir string   `mapstructure:"reference_dir"`
	OutputDir    string   `mapstructure:"output_dir" validate:"required"`
	Format       string   `mapstructure:"format" validate:"oneof=json yaml"`
	Plot         string   `mapstructure:"plot" validate:"oneof=bar scatter exponent scatter_comparison_plot distribution_comparison_plot"`
	Verbose      bool     `mapstructure:"verbose"`
	Analysis     Analysis `mapstructure:"analysis"`
}

// SetDefaults registers the stock values on v.
func SetDefaults(v *viper.Viper) {
	d := analysis.DefaultOptions()
	v.SetDefault(KeyInput, "resources/reaction_data.tsv")
	v.SetDefault(KeyMerge, "resources/lignocellulosic_reactions.tsv")
	v.SetDefault(KeyCompare, "resources/lignocellulosic_reactions.tsv")
	v.SetDefault(KeyReferenceDir, "resources/NOC data")
	v.SetDefault(KeyOutputDir, "visualisations")
	v.SetDefault(KeyFormat, report.FormatJSON.String())
	v.SetDefault(KeyPlot, d.Plot.String())
	v.SetDefault(KeyVerbose, false)
	v.SetDefault("analysis.top_k", d.TopK)
	v.SetDefault("analysis.num_to_plot", d.NumToPlot)
	v.SetDefault("analysis.same_width_edges", d.SameWidthEdges)
	v.SetDefault("analysis.girvan_newman_steps", d.GNSteps)
	v.SetDefault("analysis.kcore_levels", d.KCoreLevels)
	v.SetDefault("analysis.betweenness_scale", d.BetweennessScale)
	v.SetDefault("analysis.degree_scale", d.DegreeScale)
	v.SetDefault("analysis.cluster_palette", d.ClusterPalette)
	v.SetDefault("analysis.comparison_palette.first", d.ComparisonPalette.First)
	v.SetDefault("analysis.comparison_palette.second", d.ComparisonPalette.Second)
	v.SetDefault("analysis.comparison_palette.common", d.ComparisonPalette.Common)
	v.SetDefault("analysis.important_molecules", d.ImportantMolecules)
	degrees := make([]string, len(d.CorrelationDegrees))
	for i, dt := range d.CorrelationDegrees {
		degrees[i] = dt.String()
	}
	v.SetDefault("analysis.correlation_degrees", degrees)
}

// Load reads file into v (DefaultFile when empty and present), applies
// environment overrides, and returns the validated Config. Flags bound to v
// beforehand take precedence over both.
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "config: read %s", file)
		}
	} else {
		v.SetConfigName(strings.TrimSuffix(DefaultFile, ".yaml"))
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.Wrap(err, "config: read default file")
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "config: decode")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, formatFieldError(f))
	}

	return errors.Wrap(ErrInvalidConfig, strings.Join(msgs, "; "))
}

func formatFieldError(f validator.FieldError) string {
	field := strings.ToLower(f.Namespace())
	switch f.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, f.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, f.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, f.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// AnalysisOptions converts c into analysis.Options.
func (c *Config) AnalysisOptions() (analysis.Options, error) {
	plot, err := analysis.ParsePlotOption(c.Plot)
	if err != nil {
		return analysis.Options{}, err
	}
	a := c.Analysis
	degrees := make([]analysis.DegreeType, 0, len(a.CorrelationDegrees))
	for _, s := range a.CorrelationDegrees {
		dt, err := analysis.ParseDegreeType(s)
		if err != nil {
			return analysis.Options{}, errors.Wrap(err, "config: correlation degrees")
		}
		degrees = append(degrees, dt)
	}
	palette := analysis.ComparisonPalette{
		First:  a.ComparisonPalette.First,
		Second: a.ComparisonPalette.Second,
		Common: a.ComparisonPalette.Common,
	}

	return analysis.Options{
		TopK:               a.TopK,
		NumToPlot:          a.NumToPlot,
		SameWidthEdges:     a.SameWidthEdges,
		GNSteps:            a.GirvanNewmanSteps,
		KCoreLevels:        a.KCoreLevels,
		ClusterPalette:     append([]string(nil), a.ClusterPalette...),
		ComparisonPalette:  palette,
		ImportantMolecules: append([]string(nil), a.ImportantMolecules...),
		CorrelationDegrees: degrees,
		ReferenceDir:       c.ReferenceDir,
		Plot:               plot,
		BetweennessScale:   a.BetweennessScale,
		DegreeScale:        a.DegreeScale,
	}, nil
}

// Inputs returns the reaction table locations.
func (c *Config) Inputs() analysis.Inputs {
	return analysis.Inputs{Main: c.Input, Merge: c.Merge, Compare: c.Compare}
}

// ReportFormat parses Format.
func (c *Config) ReportFormat() (report.Format, error) {
	return report.ParseFormat(c.Format)
}
