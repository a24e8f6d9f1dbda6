package domain

import (
	"iter"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Subgraph is the node set reachable from a root set, inclusive of the roots.
// It is computed fresh per invocation and never mutated; the parent links
// recorded during traversal allow reconstructing one dependency path from a
// root to any reached node for diagnostics.
type Subgraph struct {
	g      *Graph
	nodes  map[NodeID]PackageRecord
	parent map[NodeID]NodeID
}

// Len returns the number of reached nodes.
func (s Subgraph) Len() int {
	return len(s.nodes)
}

// Has reports whether the node was reached.
func (s Subgraph) Has(id NodeID) bool {
	_, ok := s.nodes[id]
	return ok
}

// Records returns an iterator over the reached package records. Order follows
// the underlying graph's set order for determinism.
func (s Subgraph) Records() iter.Seq[PackageRecord] {
	return func(yield func(PackageRecord) bool) {
		for _, id := range s.g.order {
			r, ok := s.nodes[id]
			if !ok {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}

// Path returns the dependency chain from a root to the given node, both ends
// inclusive. Returns nil when the node was not reached.
func (s Subgraph) Path(id NodeID) []PackageRecord {
	if _, ok := s.nodes[id]; !ok {
		return nil
	}
	var chain []PackageRecord
	for {
		chain = append(chain, s.nodes[id])
		next, ok := s.parent[id]
		if !ok {
			break
		}
		id = next
	}
	slices.Reverse(chain)
	return chain
}

// Induced returns the graph induced on the reached node set. Running the
// walker on its own output with the same roots yields the same set again.
func (s Subgraph) Induced() *Graph {
	keep := make(map[NodeID]struct{}, len(s.nodes))
	for id := range s.nodes {
		keep[id] = struct{}{}
	}
	return s.g.restrict(keep)
}

// Fingerprint returns a digest over the sorted name@version entries of the
// subgraph. Two subgraphs pinning identical versions share a fingerprint
// regardless of load order, which gives CI logs a one-line parity check.
func (s Subgraph) Fingerprint() uint64 {
	labels := make([]string, 0, len(s.nodes))
	for _, r := range s.nodes {
		labels = append(labels, r.Label())
	}
	slices.Sort(labels)

	digest := xxhash.New()
	for _, l := range labels {
		_, _ = digest.WriteString(l)
		_, _ = digest.WriteString("\n")
	}
	return digest.Sum64()
}

// versionsByName groups the reached nodes into name -> sorted distinct
// versions, keeping one representative node per (name, version) for path
// reconstruction.
func (s Subgraph) versionsByName() map[string]map[string]NodeID {
	out := make(map[string]map[string]NodeID)
	for _, id := range s.g.order {
		r, ok := s.nodes[id]
		if !ok {
			continue
		}
		name := r.Name.String()
		byVersion, ok := out[name]
		if !ok {
			byVersion = make(map[string]NodeID)
			out[name] = byVersion
		}
		if _, ok := byVersion[r.Version.String()]; !ok {
			byVersion[r.Version.String()] = id
		}
	}
	return out
}

// formatPath renders a dependency chain as "a@1 -> b@2".
func formatPath(chain []PackageRecord) string {
	parts := make([]string, len(chain))
	for i, r := range chain {
		parts[i] = r.Label()
	}
	return strings.Join(parts, " -> ")
}
