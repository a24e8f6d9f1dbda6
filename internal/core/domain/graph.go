// Package domain contains the core model and comparison logic for dependency
// lockfile graphs.
package domain

import (
	"errors"
	"iter"
	"slices"

	"go.trai.ch/zerr"
)

// Graph is a directed structure over one PackageSet. Nodes are package records
// keyed by NodeID, edges are resolved dependency references. A Graph is
// immutable once built; Exclude returns a new filtered Graph.
type Graph struct {
	nodes  map[NodeID]PackageRecord
	order  []NodeID
	edges  map[NodeID][]NodeID
	byName map[InternedString][]NodeID
	byHash map[string]NodeID
}

// NewGraph builds a graph from a parsed package set, resolving every declared
// dependency reference to exactly one record in the same set.
//
// Matching rule: a reference carrying a checksum matches by checksum only.
// Otherwise it matches by name, narrowed by version when the reference spells
// one out. Zero matches fail with ErrUnresolvedDependency, more than one match
// fails with ErrAmbiguousDependency.
func NewGraph(set PackageSet) (*Graph, error) {
	g := &Graph{
		nodes:  make(map[NodeID]PackageRecord, len(set)),
		order:  make([]NodeID, 0, len(set)),
		edges:  make(map[NodeID][]NodeID, len(set)),
		byName: make(map[InternedString][]NodeID),
		byHash: make(map[string]NodeID),
	}

	for _, r := range set {
		id := r.NodeID()
		g.nodes[id] = r
		g.order = append(g.order, id)
		g.byName[r.Name] = append(g.byName[r.Name], id)
		if r.Checksum != "" {
			g.byHash[r.Checksum] = id
		}
	}

	for _, id := range g.order {
		r := g.nodes[id]
		for _, ref := range r.Dependencies {
			target, err := g.resolve(r, ref)
			if err != nil {
				return nil, err
			}
			g.edges[id] = append(g.edges[id], target)
		}
	}

	return g, nil
}

// resolve finds the unique target node for one dependency reference.
func (g *Graph) resolve(from PackageRecord, ref DependencyRef) (NodeID, error) {
	if ref.Checksum != "" {
		target, ok := g.byHash[ref.Checksum]
		if !ok {
			err := zerr.With(ErrUnresolvedDependency, "package", from.Label())
			err = zerr.With(err, "dependency", ref.Name.String())
			err = zerr.With(err, "checksum", ref.Checksum)
			return NodeID{}, err
		}
		return target, nil
	}

	candidates := g.byName[ref.Name]
	if !ref.Version.IsZero() {
		narrowed := make([]NodeID, 0, 1)
		for _, id := range candidates {
			if g.nodes[id].Version == ref.Version {
				narrowed = append(narrowed, id)
			}
		}
		candidates = narrowed
	}

	switch len(candidates) {
	case 0:
		err := zerr.With(ErrUnresolvedDependency, "package", from.Label())
		err = zerr.With(err, "dependency", ref.Name.String())
		return NodeID{}, err
	case 1:
		return candidates[0], nil
	default:
		versions := make([]string, len(candidates))
		for i, id := range candidates {
			versions[i] = g.nodes[id].Version.String()
		}
		slices.Sort(versions)
		err := zerr.With(ErrAmbiguousDependency, "package", from.Label())
		err = zerr.With(err, "dependency", ref.Name.String())
		err = zerr.With(err, "candidates", versions)
		return NodeID{}, err
	}
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Records returns an iterator over the package records in set order.
func (g *Graph) Records() iter.Seq[PackageRecord] {
	return func(yield func(PackageRecord) bool) {
		for _, id := range g.order {
			if !yield(g.nodes[id]) {
				return
			}
		}
	}
}

// Exclude returns a new graph with every node whose name is in names removed,
// along with every edge that pointed at a removed node. Exclusion changes
// reachability: dependents of an excluded node lose the subtrees that were
// only reachable through it. It must therefore run before root selection and
// traversal, never as a display filter on the final report.
func (g *Graph) Exclude(names []string) *Graph {
	excluded := make(map[InternedString]struct{}, len(names))
	for _, n := range names {
		excluded[NewInternedString(n)] = struct{}{}
	}

	keep := make(map[NodeID]struct{}, len(g.nodes))
	for id, r := range g.nodes {
		if _, drop := excluded[r.Name]; !drop {
			keep[id] = struct{}{}
		}
	}
	return g.restrict(keep)
}

// restrict returns the graph induced on the kept node set: kept nodes plus the
// edges whose endpoints both survive.
func (g *Graph) restrict(keep map[NodeID]struct{}) *Graph {
	out := &Graph{
		nodes:  make(map[NodeID]PackageRecord, len(keep)),
		order:  make([]NodeID, 0, len(keep)),
		edges:  make(map[NodeID][]NodeID),
		byName: make(map[InternedString][]NodeID),
		byHash: make(map[string]NodeID),
	}

	for _, id := range g.order {
		if _, ok := keep[id]; !ok {
			continue
		}
		r := g.nodes[id]
		out.nodes[id] = r
		out.order = append(out.order, id)
		out.byName[r.Name] = append(out.byName[r.Name], id)
		if r.Checksum != "" {
			out.byHash[r.Checksum] = id
		}
		for _, target := range g.edges[id] {
			if _, ok := keep[target]; ok {
				out.edges[id] = append(out.edges[id], target)
			}
		}
	}

	return out
}

// RootSelector chooses the starting nodes for traversal. The zero value
// selects every node in the graph, which is the documented default when the
// user gives no root constraint.
type RootSelector struct {
	hash string
	name string
}

// RootByHash selects the unique node with the given checksum.
func RootByHash(hash string) RootSelector {
	return RootSelector{hash: hash}
}

// RootByName selects the node with the given name, which must exist at
// exactly one version.
func RootByName(name string) RootSelector {
	return RootSelector{name: name}
}

// AllRoots selects every node in the graph.
func AllRoots() RootSelector {
	return RootSelector{}
}

// IsAll reports whether the selector places no root constraint.
func (s RootSelector) IsAll() bool {
	return s.hash == "" && s.name == ""
}

// SelectRoots resolves the selector against the graph. It is expected to run
// against the already-filtered graph: a root that was excluded simply is not
// found here when selected by hash or name, and contributes nothing when the
// selector is AllRoots.
func (g *Graph) SelectRoots(sel RootSelector) ([]NodeID, error) {
	switch {
	case sel.hash != "":
		id, ok := g.byHash[sel.hash]
		if !ok {
			return nil, zerr.With(ErrHashNotFound, "hash", sel.hash)
		}
		return []NodeID{id}, nil

	case sel.name != "":
		ids := g.byName[NewInternedString(sel.name)]
		switch len(ids) {
		case 0:
			return nil, zerr.With(ErrNameNotFound, "name", sel.name)
		case 1:
			return []NodeID{ids[0]}, nil
		default:
			versions := make([]string, len(ids))
			for i, id := range ids {
				versions[i] = g.nodes[id].Version.String()
			}
			slices.Sort(versions)
			err := zerr.With(ErrAmbiguousName, "name", sel.name)
			return nil, zerr.With(err, "versions", versions)
		}

	default:
		return slices.Clone(g.order), nil
	}
}

// SelectRootsAfterExclusion resolves sel against the filtered graph. A root
// that was present in the full graph, at any number of versions, but vanished
// through exclusion yields an empty root set: excluding a requested root means
// requesting an empty tree, not a configuration error. A selector that never
// matched anything, or that is still ambiguous after filtering, keeps its
// error.
func SelectRootsAfterExclusion(full, filtered *Graph, sel RootSelector) ([]NodeID, error) {
	roots, err := filtered.SelectRoots(sel)
	if err == nil {
		return roots, nil
	}
	if !errors.Is(err, ErrNameNotFound) && !errors.Is(err, ErrHashNotFound) {
		return nil, err
	}

	switch {
	case sel.hash != "":
		if _, ok := full.byHash[sel.hash]; ok {
			return nil, nil
		}
	case sel.name != "":
		if len(full.byName[NewInternedString(sel.name)]) > 0 {
			return nil, nil
		}
	}
	return nil, err
}

// Reachable traverses the graph from the root set along outgoing dependency
// edges and returns the reachable subgraph, roots included. Each node is
// marked visited before its out-edges are expanded, so diamonds and cycles
// terminate. Roots not present in the graph (for instance an excluded root)
// contribute nothing: excluding a requested root yields an empty subgraph,
// not an error.
func (g *Graph) Reachable(roots []NodeID) Subgraph {
	sub := Subgraph{
		g:      g,
		nodes:  make(map[NodeID]PackageRecord),
		parent: make(map[NodeID]NodeID),
	}

	queue := make([]NodeID, 0, len(roots))
	for _, id := range roots {
		if _, ok := g.nodes[id]; !ok {
			continue
		}
		if _, seen := sub.nodes[id]; seen {
			continue
		}
		sub.nodes[id] = g.nodes[id]
		queue = append(queue, id)
	}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, target := range g.edges[id] {
			if _, seen := sub.nodes[target]; seen {
				continue
			}
			sub.nodes[target] = g.nodes[target]
			sub.parent[target] = id
			queue = append(queue, target)
		}
	}

	return sub
}
