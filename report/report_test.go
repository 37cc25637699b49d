// SPDX-License-Identifier: MIT

package report_test

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/reactnet/core"
	"github.com/katalvlaran/reactnet/report"
)

func sample(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, err := g.AddEdge("glucose", "ethanol", 2)
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("argon"))

	return g
}

func TestNetworkFrom(t *testing.T) {
	n := report.NetworkFrom(sample(t))

	want := []report.Node{
		{ID: "argon", Label: "argon"},
		{ID: "ethanol", Label: "ethanol"},
		{ID: "glucose", Label: "glucose"},
	}
	if diff := cmp.Diff(want, n.Nodes); diff != "" {
		t.Fatalf("nodes mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []report.Edge{{From: "glucose", To: "ethanol", Weight: 2, Width: 2}}, n.Edges)
	assert.True(t, n.Directed)

	require.True(t, n.Highlight("ethanol", 15))
	assert.False(t, n.Highlight("xenon", 1))
	node := n.Node("ethanol")
	assert.Equal(t, "star", node.Shape)
	assert.Equal(t, 15.0, node.Size)
	assert.Equal(t, &report.Color{Background: "red", Border: "#648FC9"}, node.Color)

	n.Paint(report.Solid("#1abc9c"), "argon", "xenon")
	assert.Equal(t, "#1abc9c", n.Node("argon").Color.Border)

	n.UniformWidth(1)
	assert.Equal(t, 1.0, n.Edges[0].Width)
}

func TestParseFormat(t *testing.T) {
	f, err := report.ParseFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, report.FormatYAML, f)

	_, err = report.ParseFormat("xml")
	require.ErrorIs(t, err, report.ErrUnknownFormat)
}

type payload struct {
	Count int    `json:"count" yaml:"count"`
	Label string `json:"label" yaml:"label"`
}

func TestWriter_Results(t *testing.T) {
	obs, logs := observer.New(zap.InfoLevel)

	t.Run("json", func(t *testing.T) {
		w, err := report.NewWriter(t.TempDir(), report.WithRunID("run-1"), report.WithLogger(zap.New(obs)))
		require.NoError(t, err)
		path, err := w.WriteResult("fragmentation", payload{Count: 3, Label: "x"})
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(path, "fragmentation.json"))

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		var got struct {
			RunID  string  `json:"run_id"`
			Result payload `json:"result"`
		}
		require.NoError(t, json.Unmarshal(raw, &got))
		assert.Equal(t, "run-1", got.RunID)
		assert.Equal(t, payload{Count: 3, Label: "x"}, got.Result)
	})

	t.Run("yaml", func(t *testing.T) {
		w, err := report.NewWriter(t.TempDir(), report.WithFormat(report.FormatYAML))
		require.NoError(t, err)
		assert.NotEmpty(t, w.RunID())
		path, err := w.WriteResult("cpd", payload{Count: 1})
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(path, "cpd.yaml"))

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		var got map[string]any
		require.NoError(t, yaml.Unmarshal(raw, &got))
		assert.Equal(t, "cpd", got["name"])
	})

	assert.Equal(t, 1, logs.FilterMessage("artifact written").Len())
}

func TestWriter_NetworkPage(t *testing.T) {
	w, err := report.NewWriter(t.TempDir(), report.WithRunID("run-2"))
	require.NoError(t, err)

	n := report.NetworkFrom(sample(t))
	n.Physics = &report.Physics{BarnesHut: report.BarnesHut{SpringLength: 10, SpringConstant: 0.015}, MinVelocity: 0.75}
	path, err := w.WriteNetwork("graph_combined", n)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	page := string(raw)
	assert.Contains(t, page, "vis-network")
	assert.Contains(t, page, `"glucose"`)
	assert.Contains(t, page, `"springLength":10`)
	assert.Contains(t, page, "run-2")
	assert.Equal(t, "graph_combined", n.Title)
}

func TestSummary(t *testing.T) {
	s := report.NewSummary("Fragmentation").
		Section("Components").
		Fact("components", 2).
		Table([]string{"size", "count"}, [][]string{{"3", "1"}, {"a|b", "1"}})
	assert.Contains(t, s.Markdown(), "- **components**: 2")

	body, err := s.HTML()
	require.NoError(t, err)
	html := string(body)
	assert.Contains(t, html, "<h1>Fragmentation</h1>")
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<strong>components</strong>")

	w, err := report.NewWriter(t.TempDir())
	require.NoError(t, err)
	path, err := w.WriteSummary("summary", s)
	require.NoError(t, err)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), w.RunID())
	_, err = os.Stat(strings.TrimSuffix(path, ".html") + ".md")
	require.NoError(t, err)
}

