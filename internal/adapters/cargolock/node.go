package cargolock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lockdiff/internal/core/ports"
)

// NodeID is the unique identifier for the lockfile parser Graft node.
const NodeID graft.ID = "adapter.lockfile_parser"

func init() {
	graft.Register(graft.Node[ports.LockfileParser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LockfileParser, error) {
			return New(), nil
		},
	})
}
