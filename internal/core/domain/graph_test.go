package domain_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lockdiff/internal/core/domain"
	"go.trai.ch/zerr"
)

func rec(name, version, checksum string, deps ...domain.DependencyRef) domain.PackageRecord {
	return domain.PackageRecord{
		Name:         domain.NewInternedString(name),
		Version:      domain.NewInternedString(version),
		Checksum:     checksum,
		Dependencies: deps,
	}
}

func dep(name string) domain.DependencyRef {
	return domain.DependencyRef{Name: domain.NewInternedString(name)}
}

func depV(name, version string) domain.DependencyRef {
	return domain.DependencyRef{
		Name:    domain.NewInternedString(name),
		Version: domain.NewInternedString(version),
	}
}

func labels(g *domain.Graph) []string {
	var out []string
	for r := range g.Records() {
		out = append(out, r.Label())
	}
	slices.Sort(out)
	return out
}

func subLabels(s domain.Subgraph) []string {
	var out []string
	for r := range s.Records() {
		out = append(out, r.Label())
	}
	slices.Sort(out)
	return out
}

func TestNewGraph_ResolvesEdges(t *testing.T) {
	g, err := domain.NewGraph(domain.PackageSet{
		rec("foo", "1.0.0", "", dep("bar")),
		rec("bar", "2.0.0", ""),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Len())
}

func TestNewGraph_UnresolvedDependency(t *testing.T) {
	_, err := domain.NewGraph(domain.PackageSet{
		rec("foo", "1.0.0", "", dep("missing")),
	})
	require.ErrorIs(t, err, domain.ErrUnresolvedDependency)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	meta := zErr.Metadata()
	assert.Equal(t, "foo@1.0.0", meta["package"])
	assert.Equal(t, "missing", meta["dependency"])
}

func TestNewGraph_AmbiguousDependency(t *testing.T) {
	// Two major versions of bar coexist; a bare-name reference cannot pick one.
	_, err := domain.NewGraph(domain.PackageSet{
		rec("foo", "1.0.0", "", dep("bar")),
		rec("bar", "1.0.0", ""),
		rec("bar", "2.0.0", ""),
	})
	require.ErrorIs(t, err, domain.ErrAmbiguousDependency)
}

func TestNewGraph_VersionNarrowsAmbiguity(t *testing.T) {
	g, err := domain.NewGraph(domain.PackageSet{
		rec("foo", "1.0.0", "", depV("bar", "2.0.0")),
		rec("bar", "1.0.0", ""),
		rec("bar", "2.0.0", ""),
	})
	require.NoError(t, err)

	roots, err := g.SelectRoots(domain.RootByName("foo"))
	require.NoError(t, err)
	sub := g.Reachable(roots)
	assert.Equal(t, []string{"bar@2.0.0", "foo@1.0.0"}, subLabels(sub))
}

func TestNewGraph_ChecksumReference(t *testing.T) {
	g, err := domain.NewGraph(domain.PackageSet{
		rec("foo", "1.0.0", "aaa", domain.DependencyRef{
			Name:     domain.NewInternedString("bar"),
			Checksum: "bbb",
		}),
		rec("bar", "2.0.0", "bbb"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Len())

	_, err = domain.NewGraph(domain.PackageSet{
		rec("foo", "1.0.0", "aaa", domain.DependencyRef{
			Name:     domain.NewInternedString("bar"),
			Checksum: "nope",
		}),
		rec("bar", "2.0.0", "bbb"),
	})
	require.ErrorIs(t, err, domain.ErrUnresolvedDependency)
}

func TestExclude_SeversEdgesAndSubtrees(t *testing.T) {
	// foo -> mid -> leaf; excluding mid must disconnect leaf from foo.
	g, err := domain.NewGraph(domain.PackageSet{
		rec("foo", "1.0.0", "", dep("mid")),
		rec("mid", "1.0.0", "", dep("leaf")),
		rec("leaf", "1.0.0", ""),
	})
	require.NoError(t, err)

	filtered := g.Exclude([]string{"mid"})
	assert.Equal(t, []string{"foo@1.0.0", "leaf@1.0.0"}, labels(filtered))

	roots, err := filtered.SelectRoots(domain.RootByName("foo"))
	require.NoError(t, err)
	sub := filtered.Reachable(roots)
	assert.Equal(t, []string{"foo@1.0.0"}, subLabels(sub),
		"leaf should no longer be reachable through the excluded node")
}

func TestExclude_OrderIndependent(t *testing.T) {
	set := domain.PackageSet{
		rec("a", "1.0.0", "", dep("b"), dep("c")),
		rec("b", "1.0.0", "", dep("c")),
		rec("c", "1.0.0", ""),
	}
	g, err := domain.NewGraph(set)
	require.NoError(t, err)

	batch := g.Exclude([]string{"a", "b"})
	chained := g.Exclude([]string{"a"}).Exclude([]string{"b"})
	assert.Equal(t, labels(batch), labels(chained))
}

func TestExclude_LeavesOriginalUntouched(t *testing.T) {
	g, err := domain.NewGraph(domain.PackageSet{
		rec("a", "1.0.0", "", dep("b")),
		rec("b", "1.0.0", ""),
	})
	require.NoError(t, err)

	_ = g.Exclude([]string{"b"})
	assert.Equal(t, 2, g.Len())
}

func TestSelectRoots_ByHash(t *testing.T) {
	g, err := domain.NewGraph(domain.PackageSet{
		rec("foo", "1.0.0", "aaa"),
		rec("bar", "2.0.0", "bbb"),
	})
	require.NoError(t, err)

	roots, err := g.SelectRoots(domain.RootByHash("bbb"))
	require.NoError(t, err)
	require.Len(t, roots, 1)

	_, err = g.SelectRoots(domain.RootByHash("zzz"))
	require.ErrorIs(t, err, domain.ErrHashNotFound)
}

func TestSelectRoots_ByName(t *testing.T) {
	g, err := domain.NewGraph(domain.PackageSet{
		rec("foo", "1.0.0", ""),
		rec("bar", "1.0.0", ""),
		rec("bar", "2.0.0", ""),
	})
	require.NoError(t, err)

	roots, err := g.SelectRoots(domain.RootByName("foo"))
	require.NoError(t, err)
	require.Len(t, roots, 1)

	_, err = g.SelectRoots(domain.RootByName("missing"))
	require.ErrorIs(t, err, domain.ErrNameNotFound)

	// Two versions of bar: picking one arbitrarily would silently compare
	// the wrong subtree.
	_, err = g.SelectRoots(domain.RootByName("bar"))
	require.ErrorIs(t, err, domain.ErrAmbiguousName)
}

func TestSelectRoots_AllIsDefault(t *testing.T) {
	g, err := domain.NewGraph(domain.PackageSet{
		rec("foo", "1.0.0", ""),
		rec("bar", "2.0.0", ""),
	})
	require.NoError(t, err)

	roots, err := g.SelectRoots(domain.AllRoots())
	require.NoError(t, err)
	assert.Len(t, roots, 2)
}

func TestSelectRootsAfterExclusion_ExcludedRootMeansEmptyTree(t *testing.T) {
	g, err := domain.NewGraph(domain.PackageSet{
		rec("foo", "1.0.0", "", dep("bar")),
		rec("bar", "2.0.0", ""),
	})
	require.NoError(t, err)

	filtered := g.Exclude([]string{"foo"})
	roots, err := domain.SelectRootsAfterExclusion(g, filtered, domain.RootByName("foo"))
	require.NoError(t, err)
	assert.Empty(t, roots)

	sub := filtered.Reachable(roots)
	assert.Equal(t, 0, sub.Len())
}

func TestSelectRootsAfterExclusion_ExcludedAmbiguousNameMeansEmptyTree(t *testing.T) {
	// bar exists at two versions; excluding it removes both, so the request
	// degrades to an empty tree exactly like a single-version root would.
	g, err := domain.NewGraph(domain.PackageSet{
		rec("bar", "1.0.0", ""),
		rec("bar", "2.0.0", ""),
	})
	require.NoError(t, err)

	filtered := g.Exclude([]string{"bar"})
	roots, err := domain.SelectRootsAfterExclusion(g, filtered, domain.RootByName("bar"))
	require.NoError(t, err)
	assert.Empty(t, roots)
}

func TestSelectRootsAfterExclusion_RemainingAmbiguityStillFails(t *testing.T) {
	g, err := domain.NewGraph(domain.PackageSet{
		rec("bar", "1.0.0", ""),
		rec("bar", "2.0.0", ""),
		rec("other", "1.0.0", ""),
	})
	require.NoError(t, err)

	filtered := g.Exclude([]string{"other"})
	_, err = domain.SelectRootsAfterExclusion(g, filtered, domain.RootByName("bar"))
	require.ErrorIs(t, err, domain.ErrAmbiguousName)
}

func TestSelectRootsAfterExclusion_UnknownRootStillFails(t *testing.T) {
	g, err := domain.NewGraph(domain.PackageSet{
		rec("foo", "1.0.0", ""),
	})
	require.NoError(t, err)

	filtered := g.Exclude(nil)
	_, err = domain.SelectRootsAfterExclusion(g, filtered, domain.RootByName("never-existed"))
	require.ErrorIs(t, err, domain.ErrNameNotFound)
}

func TestReachable_DiamondAndCycle(t *testing.T) {
	// a -> b, a -> c, b -> d, c -> d, d -> a (cycle back to the root).
	g, err := domain.NewGraph(domain.PackageSet{
		rec("a", "1.0.0", "", dep("b"), dep("c")),
		rec("b", "1.0.0", "", dep("d")),
		rec("c", "1.0.0", "", dep("d")),
		rec("d", "1.0.0", "", dep("a")),
	})
	require.NoError(t, err)

	roots, err := g.SelectRoots(domain.RootByName("a"))
	require.NoError(t, err)
	sub := g.Reachable(roots)
	assert.Equal(t, []string{"a@1.0.0", "b@1.0.0", "c@1.0.0", "d@1.0.0"}, subLabels(sub))
}

func TestReachable_Idempotent(t *testing.T) {
	g, err := domain.NewGraph(domain.PackageSet{
		rec("a", "1.0.0", "", dep("b")),
		rec("b", "1.0.0", "", dep("c")),
		rec("c", "1.0.0", ""),
		rec("stray", "1.0.0", ""),
	})
	require.NoError(t, err)

	roots, err := g.SelectRoots(domain.RootByName("a"))
	require.NoError(t, err)
	sub := g.Reachable(roots)

	again := sub.Induced().Reachable(roots)
	assert.Equal(t, subLabels(sub), subLabels(again))
}

func TestReachable_ExcludesUnreachableNodes(t *testing.T) {
	// extra is in the raw set but not reachable from foo.
	g, err := domain.NewGraph(domain.PackageSet{
		rec("foo", "1.0.0", ""),
		rec("extra", "1.0.0", ""),
	})
	require.NoError(t, err)

	roots, err := g.SelectRoots(domain.RootByName("foo"))
	require.NoError(t, err)
	sub := g.Reachable(roots)
	assert.Equal(t, []string{"foo@1.0.0"}, subLabels(sub))
	assert.True(t, sub.Has(rec("foo", "1.0.0", "").NodeID()))
	assert.False(t, sub.Has(rec("extra", "1.0.0", "").NodeID()))
}

func TestSubgraph_Path(t *testing.T) {
	g, err := domain.NewGraph(domain.PackageSet{
		rec("a", "1.0.0", "", dep("b")),
		rec("b", "1.0.0", "", dep("c")),
		rec("c", "1.0.0", ""),
	})
	require.NoError(t, err)

	roots, err := g.SelectRoots(domain.RootByName("a"))
	require.NoError(t, err)
	sub := g.Reachable(roots)

	chain := sub.Path(rec("c", "1.0.0", "").NodeID())
	require.Len(t, chain, 3)
	assert.Equal(t, "a@1.0.0", chain[0].Label())
	assert.Equal(t, "c@1.0.0", chain[2].Label())
}

func TestSubgraph_FingerprintIgnoresLoadOrder(t *testing.T) {
	setA := domain.PackageSet{
		rec("a", "1.0.0", ""),
		rec("b", "2.0.0", ""),
	}
	setB := domain.PackageSet{
		rec("b", "2.0.0", ""),
		rec("a", "1.0.0", ""),
	}

	gA, err := domain.NewGraph(setA)
	require.NoError(t, err)
	gB, err := domain.NewGraph(setB)
	require.NoError(t, err)

	rootsA, _ := gA.SelectRoots(domain.AllRoots())
	rootsB, _ := gB.SelectRoots(domain.AllRoots())
	assert.Equal(t, gA.Reachable(rootsA).Fingerprint(), gB.Reachable(rootsB).Fingerprint())
}
