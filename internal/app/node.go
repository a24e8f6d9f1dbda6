package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lockdiff/internal/adapters/cargolock" //nolint:depguard // Wired in app layer
	"go.trai.ch/lockdiff/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/lockdiff/internal/adapters/fetch"     //nolint:depguard // Wired in app layer
	"go.trai.ch/lockdiff/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/lockdiff/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fetch.NodeID,
			cargolock.NodeID,
			config.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			source, err := graft.Dep[ports.ByteSource](ctx)
			if err != nil {
				return nil, err
			}

			parser, err := graft.Dep[ports.LockfileParser](ctx)
			if err != nil {
				return nil, err
			}

			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(source, parser, loader, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    application,
				Logger: log,
			}, nil
		},
	})
}
