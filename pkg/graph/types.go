// Package graph provides the serialization format for workspace
// dependency graphs.
//
// This is the wire format used by `cargoscope export --format json`, the
// HTTP API, and the snapshot store. It is a plain node-link structure:
//
//	{
//	  "nodes": [{"id": "term", "label": "term"}],
//	  "edges": [{"from": "wezterm", "to": "term"}]
//	}
//
// Node IDs are the normalized project directories, the same identity the
// registry uses. Nodes are sorted by ID for deterministic output; edges
// keep discovery order and may repeat when a manifest declares the same
// path dependency twice.
package graph

import (
	"slices"
	"strings"

	"github.com/matzehuels/cargoscope/pkg/workspace"
)

// Graph is the canonical serialization format for a workspace graph.
type Graph struct {
	Nodes []Node `json:"nodes" bson:"nodes"`
	Edges []Edge `json:"edges" bson:"edges"`
}

// Node is one project in serialized form.
type Node struct {
	ID       string `json:"id" bson:"id"`                                 // normalized project directory
	Label    string `json:"label,omitempty" bson:"label,omitempty"`       // [package] name when present
	Manifest string `json:"manifest,omitempty" bson:"manifest,omitempty"` // manifest path, for reference
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n *Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Edge is a directed dependency: From consumes To.
type Edge struct {
	From string `json:"from" bson:"from"`
	To   string `json:"to" bson:"to"`
}

// FromRegistry converts a linked registry to its serialization format.
// Nodes are sorted by ID; edges are emitted per project in enumeration
// order, preserving declaration order and duplicates.
func FromRegistry(r *workspace.Registry) Graph {
	out := Graph{Nodes: make([]Node, 0, r.Len())}
	for _, p := range r.Projects() {
		out.Nodes = append(out.Nodes, Node{ID: p.Dir, Label: p.Name, Manifest: p.Manifest})
		for _, dep := range p.Deps {
			out.Edges = append(out.Edges, Edge{From: p.Dir, To: dep})
		}
	}
	slices.SortFunc(out.Nodes, func(a, b Node) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Dependents returns, for each node ID, the number of edges pointing at
// it. Nodes with a zero count are the unused projects.
func (g Graph) Dependents() map[string]int {
	counts := make(map[string]int, len(g.Nodes))
	for _, n := range g.Nodes {
		counts[n.ID] = 0
	}
	for _, e := range g.Edges {
		counts[e.To]++
	}
	return counts
}
