package fetch

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lockdiff/internal/core/ports"
)

// NodeID is the unique identifier for the byte source Graft node.
const NodeID graft.ID = "adapter.byte_source"

func init() {
	graft.Register(graft.Node[ports.ByteSource]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ByteSource, error) {
			return New(), nil
		},
	})
}
