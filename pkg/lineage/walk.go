package lineage

import (
	"context"
	"slices"

	"github.com/aigovhub/lineage/pkg/contract"
	"github.com/aigovhub/lineage/pkg/entities"
)

// EdgeSource loads dependency edges one frontier at a time.
type EdgeSource interface {
	GetParentDependencies(ctx context.Context, childModelIDs ...int64) ([]*entities.ModelDependency, *contract.Error)
	GetChildDependencies(ctx context.Context, parentModelIDs ...int64) ([]*entities.ModelDependency, *contract.Error)
}

// Walk collects every model reachable from root by following dependency edges in the
// given direction, breadth first. A maxDepth of zero means no limit. Each model is
// expanded at most once and each edge is reported once, so cycles terminate.
func Walk(
	ctx context.Context, source EdgeSource, root int64, direction entities.Direction, maxDepth int,
) (*entities.LineageGraph, *contract.Error) {
	var fetch func(context.Context, ...int64) ([]*entities.ModelDependency, *contract.Error)

	switch direction {
	case entities.DirectionUpstream:
		fetch = source.GetParentDependencies
	case entities.DirectionDownstream:
		fetch = source.GetChildDependencies
	default:
		return nil, contract.NewError(
			contract.ErrorCodeInvalidParameterValue,
			"direction must be one of [upstream downstream], got "+string(direction),
		)
	}

	visited := map[int64]bool{root: true}
	seenEdges := make(map[int64]bool)
	edges := make([]*entities.ModelDependency, 0)
	frontier := []int64{root}

	for depth := 0; len(frontier) > 0 && (maxDepth == 0 || depth < maxDepth); depth++ {
		if err := ctx.Err(); err != nil {
			return nil, contract.NewErrorWith(contract.ErrorCodeInternalError, "lineage walk cancelled", err)
		}

		batch, err := fetch(ctx, frontier...)
		if err != nil {
			return nil, err
		}

		next := make([]int64, 0)

		for _, edge := range batch {
			if seenEdges[edge.ID] {
				continue
			}
			seenEdges[edge.ID] = true
			edges = append(edges, edge)

			neighbour := edge.ChildModelID
			if direction == entities.DirectionUpstream {
				neighbour = edge.ParentModelID
			}

			if !visited[neighbour] {
				visited[neighbour] = true
				next = append(next, neighbour)
			}
		}

		frontier = next
	}

	modelIDs := make([]int64, 0, len(visited))
	for id := range visited {
		if id != root {
			modelIDs = append(modelIDs, id)
		}
	}
	slices.Sort(modelIDs)

	slices.SortFunc(edges, func(a, b *entities.ModelDependency) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})

	return &entities.LineageGraph{
		RootModelID: root,
		Direction:   direction,
		MaxDepth:    maxDepth,
		ModelIDs:    modelIDs,
		Edges:       edges,
	}, nil
}
