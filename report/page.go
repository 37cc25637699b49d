// SPDX-License-Identifier: MIT

package report

import (
	"html/template"
	"io"

	"github.com/pkg/errors"
)

// visNetworkJS is the vis-network standalone bundle the pages load.
const visNetworkJS = "https://unpkg.com/vis-network@9.1.9/standalone/umd/vis-network.min.js"

var pageTmpl = template.Must(template.New("network").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Network.Title}}</title>
<script src="{{.Script}}"></script>
<style>
body { margin: 0; font-family: sans-serif; }
#network { width: 100%; height: 750px; border: 1px solid lightgray; }
</style>
</head>
<body>
<h3>{{.Network.Title}}</h3>
<p>run {{.RunID}}</p>
<div id="network"></div>
<script>
var nodes = new vis.DataSet({{.Network.Nodes}});
var edges = new vis.DataSet({{.Network.Edges}});
var options = {
  edges: { arrows: { to: { enabled: {{.Network.Directed}} } }, smooth: false },
  physics: {{.Physics}}
};
new vis.Network(document.getElementById("network"), { nodes: nodes, edges: edges }, options);
</script>
</body>
</html>
`))

type pageData struct {
	Network *Network
	Physics any
	Script  string
	RunID   string
}

// renderPage writes n as a standalone vis-network HTML page.
func renderPage(w io.Writer, n *Network, runID string) error {
	var physics any = map[string]any{"enabled": true}
	if n.Physics != nil {
		physics = n.Physics
	}
	if n.Nodes == nil {
		n.Nodes = []Node{}
	}
	if n.Edges == nil {
		n.Edges = []Edge{}
	}
	err := pageTmpl.Execute(w, pageData{Network: n, Physics: physics, Script: visNetworkJS, RunID: runID})

	return errors.Wrap(err, "report: render network page")
}
