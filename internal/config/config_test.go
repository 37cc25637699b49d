// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reactnet/analysis"
	"github.com/katalvlaran/reactnet/internal/config"
	"github.com/katalvlaran/reactnet/metrics"
	"github.com/katalvlaran/reactnet/report"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reactnet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "resources/reaction_data.tsv", cfg.Input)
	assert.Equal(t, "resources/lignocellulosic_reactions.tsv", cfg.Merge)
	assert.Equal(t, "resources/NOC data", cfg.ReferenceDir)
	assert.Equal(t, "visualisations", cfg.OutputDir)
	assert.Equal(t, "distribution_comparison_plot", cfg.Plot)

	opts, err := cfg.AnalysisOptions()
	require.NoError(t, err)
	want := analysis.DefaultOptions()
	want.ReferenceDir = "resources/NOC data"
	assert.Equal(t, want, opts)

	f, err := cfg.ReportFormat()
	require.NoError(t, err)
	assert.Equal(t, report.FormatJSON, f)
	assert.Equal(t, "resources/lignocellulosic_reactions.tsv", cfg.Inputs().Compare)
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	path := writeFile(t, `
output_dir: out
format: yaml
plot: bar
analysis:
  top_k: 3
  cluster_palette: ["red", "blue"]
`)
	t.Setenv("REACTNET_ANALYSIS_GIRVAN_NEWMAN_STEPS", "7")
	t.Setenv("REACTNET_INPUT", "data.tsv")

	cfg, err := config.Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, "data.tsv", cfg.Input)
	assert.Equal(t, 3, cfg.Analysis.TopK)
	assert.Equal(t, 7, cfg.Analysis.GirvanNewmanSteps)
	assert.Equal(t, []string{"red", "blue"}, cfg.Analysis.ClusterPalette)

	opts, err := cfg.AnalysisOptions()
	require.NoError(t, err)
	assert.Equal(t, analysis.PlotBar, opts.Plot)
	f, err := cfg.ReportFormat()
	require.NoError(t, err)
	assert.Equal(t, report.FormatYAML, f)
}

func TestLoad_FlagsWin(t *testing.T) {
	v := viper.New()
	v.Set(config.KeyOutputDir, "from-flag")
	t.Setenv("REACTNET_OUTPUT_DIR", "from-env")

	cfg, err := config.Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.OutputDir)
}

func TestLoad_Invalid(t *testing.T) {
	for name, body := range map[string]string{
		"format":  "format: xml\n",
		"plot":    "plot: pie\n",
		"top-k":   "analysis:\n  top_k: 0\n",
		"palette": "analysis:\n  cluster_palette: [\"\"]\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(viper.New(), writeFile(t, body))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}

	_, err := config.Load(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestAnalysisOptions_CorrelationDegrees(t *testing.T) {
	cfg, err := config.Load(viper.New(), writeFile(t, "analysis:\n  correlation_degrees: [total, IN]\n"))
	require.NoError(t, err)
	opts, err := cfg.AnalysisOptions()
	require.NoError(t, err)
	assert.Equal(t, []analysis.DegreeType{metrics.TotalDegree, metrics.InDegree}, opts.CorrelationDegrees)

	cfg, err = config.Load(viper.New(), writeFile(t, "analysis:\n  correlation_degrees: [sideways]\n"))
	require.NoError(t, err)
	_, err = cfg.AnalysisOptions()
	require.ErrorIs(t, err, analysis.ErrInvalidArgument)

	_, err = config.Load(viper.New(), writeFile(t, "analysis:\n  correlation_degrees: []\n"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}
