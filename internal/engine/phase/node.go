package phase

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/adapters/fs"    //nolint:depguard // Wired in engine layer
	"go.trai.ch/forge/internal/adapters/shell" //nolint:depguard // Wired in engine layer
	"go.trai.ch/forge/internal/core/ports"
)

// NodeID is the unique identifier for the phase set Graft node.
const NodeID graft.ID = "engine.phase"

func init() {
	graft.Register(graft.Node[*Set]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, fs.WorkspaceNodeID},
		Run: func(ctx context.Context) (*Set, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			workspace, err := graft.Dep[ports.Workspace](ctx)
			if err != nil {
				return nil, err
			}
			return NewDefaultSet(executor, workspace, os.Stdout), nil
		},
	})
}
