// Package graph generates the decorative network drawn behind the hero text.
//
// The graph has no meaning; it is regenerated for every page session. Two
// quirks are kept on purpose: a node's drawn targets are filtered for
// self-links after drawing, so a node can end up with fewer links than it
// drew (even none), and duplicate targets are not collapsed.
package graph

import "math/rand/v2"

// DefaultNodeCount is the size of the hero graph.
const DefaultNodeCount = 20

// Extent is the exclusive upper bound of both coordinates.
const Extent = 100.0

// maxDraws is the largest number of link targets drawn per node.
const maxDraws = 3

// Node is a point on the normalised [0,100) plane.
type Node struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Connections []int   `json:"connections"`

	// RawDraws is how many targets were drawn before self-links were
	// removed. Always in [1,3].
	RawDraws int `json:"-"`
}

// Point is a resolved coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Edge is one rendered line, from a node to one of its connections.
type Edge struct {
	From  int   `json:"from"`
	To    int   `json:"to"`
	Start Point `json:"start"`
	End   Point `json:"end"`
}

// Graph is an index-addressable, immutable list of nodes.
type Graph struct {
	nodes []Node
}

// Source is the subset of *rand.Rand the generator draws from.
type Source interface {
	Float64() float64
	IntN(n int) int
}

// Generate draws a fresh graph of nodeCount nodes from r. A nil r uses the
// global generator. nodeCount <= 0 yields an empty graph.
func Generate(r Source, nodeCount int) Graph {
	if r == nil {
		r = globalSource{}
	}
	if nodeCount <= 0 {
		return Graph{}
	}

	nodes := make([]Node, nodeCount)
	for i := range nodes {
		x := r.Float64() * Extent
		y := r.Float64() * Extent

		k := r.IntN(maxDraws) + 1
		conns := make([]int, 0, k)
		for range k {
			target := r.IntN(nodeCount)
			if target == i {
				continue
			}
			conns = append(conns, target)
		}

		nodes[i] = Node{X: x, Y: y, Connections: conns, RawDraws: k}
	}
	return Graph{nodes: nodes}
}

// Len returns the number of nodes.
func (g Graph) Len() int { return len(g.nodes) }

// Nodes returns a copy of the node list.
func (g Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	for i, n := range g.nodes {
		n.Connections = append([]int(nil), n.Connections...)
		out[i] = n
	}
	return out
}

// Point resolves node i to its coordinate. Indices outside the graph resolve
// to the origin rather than failing, so a renderer can draw links to nodes
// that are not there (yet).
func (g Graph) Point(i int) Point {
	if i < 0 || i >= len(g.nodes) {
		return Point{}
	}
	n := g.nodes[i]
	return Point{X: n.X, Y: n.Y}
}

// Link builds the edge between nodes i and j, resolving either end the way
// Point does.
func (g Graph) Link(i, j int) Edge {
	return Edge{From: i, To: j, Start: g.Point(i), End: g.Point(j)}
}

// Edges lists one edge per (node, connection) pair in node order,
// duplicates included.
func (g Graph) Edges() []Edge {
	var edges []Edge
	for i, n := range g.nodes {
		for _, c := range n.Connections {
			edges = append(edges, g.Link(i, c))
		}
	}
	return edges
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }
func (globalSource) IntN(n int) int   { return rand.IntN(n) }
