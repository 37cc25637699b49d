// SPDX-License-Identifier: MIT

package report

import (
	"github.com/katalvlaran/reactnet/core"
)

// Color is a vis-network node colour.
type Color struct {
	Background string `json:"background,omitempty" yaml:"background,omitempty"`
	Border     string `json:"border,omitempty" yaml:"border,omitempty"`
}

// Solid returns a Color with the same background and border.
func Solid(c string) *Color { return &Color{Background: c, Border: c} }

// Node is one chemical on the page.
type Node struct {
	ID    string  `json:"id" yaml:"id"`
	Label string  `json:"label" yaml:"label"`
	Color *Color  `json:"color,omitempty" yaml:"color,omitempty"`
	Shape string  `json:"shape,omitempty" yaml:"shape,omitempty"`
	Size  float64 `json:"size,omitempty" yaml:"size,omitempty"`
	Title string  `json:"title,omitempty" yaml:"title,omitempty"`
}

// Edge is one drawn edge. Width follows the weight.
type Edge struct {
	From   string  `json:"from" yaml:"from"`
	To     string  `json:"to" yaml:"to"`
	Weight int64   `json:"weight" yaml:"weight"`
	Width  float64 `json:"width,omitempty" yaml:"width,omitempty"`
}

// BarnesHut tunes the vis-network physics solver.
type BarnesHut struct {
	SpringLength   float64 `json:"springLength"`
	SpringConstant float64 `json:"springConstant"`
}

// Physics holds the vis-network physics options.
type Physics struct {
	BarnesHut   BarnesHut `json:"barnesHut"`
	MinVelocity float64   `json:"minVelocity"`
}

// Network is the visualisation model of a graph.
type Network struct {
	Title    string   `json:"title"`
	Directed bool     `json:"directed"`
	Nodes    []Node   `json:"nodes"`
	Edges    []Edge   `json:"edges"`
	Physics  *Physics `json:"physics,omitempty"`

	at map[string]int
}

// NetworkFrom lays out every vertex and edge of g, vertices in sorted order
// and edges in insertion order. Labels default to vertex IDs.
func NetworkFrom(g *core.Graph) *Network {
	n := &Network{Directed: g.Directed(), at: make(map[string]int, g.VertexCount())}
	for _, v := range g.Vertices() {
		n.at[v] = len(n.Nodes)
		n.Nodes = append(n.Nodes, Node{ID: v, Label: v})
	}
	for _, e := range g.Edges() {
		n.Edges = append(n.Edges, Edge{From: e.From, To: e.To, Weight: e.Weight, Width: float64(e.Weight)})
	}

	return n
}

// Node returns the node with the given ID, or nil.
func (n *Network) Node(id string) *Node {
	i, ok := n.at[id]
	if !ok {
		return nil
	}

	return &n.Nodes[i]
}

// Paint colours the listed nodes; unknown IDs are skipped.
func (n *Network) Paint(c *Color, ids ...string) {
	for _, id := range ids {
		if node := n.Node(id); node != nil {
			node.Color = c
		}
	}
}

// Highlight marks id as a red star of the given size.
func (n *Network) Highlight(id string, size float64) bool {
	node := n.Node(id)
	if node == nil {
		return false
	}
	node.Shape = "star"
	node.Size = size
	node.Color = &Color{Background: "red", Border: "#648FC9"}

	return true
}

// UniformWidth draws every edge with the same width.
func (n *Network) UniformWidth(w float64) {
	for i := range n.Edges {
		n.Edges[i].Width = w
	}
}
