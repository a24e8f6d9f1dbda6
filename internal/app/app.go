// Package app implements the application layer for lockdiff.
package app

import (
	"context"
	"fmt"
	"os"

	"go.trai.ch/lockdiff/internal/core/domain"
	"go.trai.ch/lockdiff/internal/core/ports"
	"go.trai.ch/lockdiff/internal/ui/report"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	source       ports.ByteSource
	parser       ports.LockfileParser
	configLoader ports.ConfigLoader
	logger       ports.Logger
	renderer     ports.ReportRenderer
}

// New creates a new App instance.
func New(
	source ports.ByteSource,
	parser ports.LockfileParser,
	loader ports.ConfigLoader,
	log ports.Logger,
) *App {
	return &App{
		source:       source,
		parser:       parser,
		configLoader: loader,
		logger:       log,
	}
}

// WithRenderer overrides the report renderer. Used for testing.
func (a *App) WithRenderer(r ports.ReportRenderer) *App {
	a.renderer = r
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	Verbose bool
	Strict  bool
}

// Run loads both lockfile sides, restricts each to the requested subtree,
// compares the results and renders the report. It returns ErrVersionsDiffer
// when at least one common package mismatches; any other error is a
// configuration or data problem, surfaced before a report exists.
func (a *App) Run(ctx context.Context, specA, specB domain.SideSpec, opts RunOptions) error {
	a.logger.SetVerbose(opts.Verbose)

	defaults, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load defaults")
	}
	if defaults != nil {
		specA = mergeDefaults(specA, defaults.A)
		specB = mergeDefaults(specB, defaults.B)
		opts.Strict = opts.Strict || defaults.Strict
	}

	// The two sides share no state; load and build them in parallel. The
	// fetch is the only blocking point, everything after is pure.
	var subA, subB domain.Subgraph
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		subA, err = a.loadSide(gctx, "A", specA)
		return err
	})
	g.Go(func() error {
		var err error
		subB, err = a.loadSide(gctx, "B", specB)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	result := domain.Compare(subA, subB, domain.CompareOptions{Strict: opts.Strict})

	renderer := a.renderer
	if renderer == nil {
		renderer = report.NewRenderer(os.Stdout, opts.Verbose)
	}
	if err := renderer.Render(result); err != nil {
		return zerr.Wrap(err, "failed to render report")
	}

	if !result.Matches() {
		return domain.ErrVersionsDiffer
	}
	return nil
}

// loadSide runs one side through its isolated pipeline: fetch, parse, build,
// exclude, select roots, walk.
func (a *App) loadSide(ctx context.Context, label string, spec domain.SideSpec) (domain.Subgraph, error) {
	data, err := a.source.Fetch(ctx, spec.Source)
	if err != nil {
		return domain.Subgraph{}, zerr.With(err, "side", label)
	}

	set, err := a.parser.Parse(data)
	if err != nil {
		return domain.Subgraph{}, zerr.With(zerr.With(err, "side", label), "source", spec.Source)
	}
	a.logger.Debug(fmt.Sprintf("side %s: parsed %d package records from %s", label, len(set), spec.Source))

	graph, err := domain.NewGraph(set)
	if err != nil {
		return domain.Subgraph{}, zerr.With(zerr.With(err, "side", label), "source", spec.Source)
	}

	// Exclusion runs before root selection: excluding a requested root means
	// an empty tree for this side, not an error.
	filtered := graph.Exclude(spec.Exclude)

	roots, err := domain.SelectRootsAfterExclusion(graph, filtered, spec.Root)
	if err != nil {
		return domain.Subgraph{}, zerr.With(zerr.With(err, "side", label), "source", spec.Source)
	}

	sub := filtered.Reachable(roots)
	for r := range sub.Records() {
		a.logger.Debug(fmt.Sprintf("found %s %s %s", spec.Source, r.Name, r.Version))
	}
	a.logger.Debug(fmt.Sprintf("side %s: %d of %d packages reachable", label, sub.Len(), graph.Len()))

	return sub, nil
}

// mergeDefaults fills empty spec fields from the defaults file. Flags win.
func mergeDefaults(spec domain.SideSpec, d domain.SideDefaults) domain.SideSpec {
	if spec.Root.IsAll() {
		switch {
		case d.RootHash != "":
			spec.Root = domain.RootByHash(d.RootHash)
		case d.RootName != "":
			spec.Root = domain.RootByName(d.RootName)
		}
	}
	spec.Exclude = append(spec.Exclude, d.Exclude...)
	return spec
}
