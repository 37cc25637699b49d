// SPDX-License-Identifier: MIT

package metrics

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/reactnet/core"
)

// ErrUnknownDegreeType is returned by ParseDegreeType for unknown names.
var ErrUnknownDegreeType = errors.New("metrics: unknown degree type")

// DegreeType selects which degree of a vertex is measured.
type DegreeType int

const (
	// TotalDegree is in+out on directed graphs, the plain degree otherwise.
	TotalDegree DegreeType = iota
	// InDegree counts incoming edges.
	InDegree
	// OutDegree counts outgoing edges.
	OutDegree
)

// String implements fmt.Stringer.
func (t DegreeType) String() string {
	switch t {
	case TotalDegree:
		return "total"
	case InDegree:
		return "in"
	case OutDegree:
		return "out"
	default:
		return "unknown"
	}
}

// ParseDegreeType accepts "in", "out" and "total", case-insensitively.
func ParseDegreeType(s string) (DegreeType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "total":
		return TotalDegree, nil
	case "in":
		return InDegree, nil
	case "out":
		return OutDegree, nil
	default:
		return 0, errors.Wrapf(ErrUnknownDegreeType, "%q", s)
	}
}

// DegreeOf returns the degree of id under t. On undirected graphs every type
// yields the plain degree.
func DegreeOf(g *core.Graph, id string, t DegreeType) int {
	in, out, und, err := g.Degree(id)
	if err != nil {
		return 0
	}
	if !g.Directed() {
		return und
	}
	switch t {
	case InDegree:
		return in
	case OutDegree:
		return out
	default:
		return in + out
	}
}

// Degrees returns the degree sequence of g in sorted vertex order.
func Degrees(g *core.Graph, t DegreeType) []int {
	vs := g.Vertices()
	out := make([]int, len(vs))
	for i, v := range vs {
		out[i] = DegreeOf(g, v, t)
	}

	return out
}

// RankDegree ranks vertices by total degree.
func RankDegree(g *core.Graph) []Score {
	scores := make(map[string]float64, g.VertexCount())
	for _, v := range g.Vertices() {
		scores[v] = float64(g.TotalDegree(v))
	}

	return Rank(scores)
}
