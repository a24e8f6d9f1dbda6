// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/lockdiff/internal/adapters/cargolock"
	_ "go.trai.ch/lockdiff/internal/adapters/config"
	_ "go.trai.ch/lockdiff/internal/adapters/fetch"
	_ "go.trai.ch/lockdiff/internal/adapters/logger"
	// Register app nodes.
	_ "go.trai.ch/lockdiff/internal/app"
)
