package store

import (
	"context"

	"github.com/aigovhub/lineage/pkg/contract"
	"github.com/aigovhub/lineage/pkg/entities"
)

// EntityStore reads externally owned models and owns dataset records.
type EntityStore interface {
	GetModel(ctx context.Context, id int64) (*entities.Model, *contract.Error)
	GetModelVersion(ctx context.Context, id int64) (*entities.ModelVersion, *contract.Error)

	GetDataset(ctx context.Context, id int64) (*entities.Dataset, *contract.Error)
	CreateDataset(ctx context.Context, dataset *entities.Dataset) (*entities.Dataset, *contract.Error)
	ListDatasets(ctx context.Context, filter DatasetFilter, page Page) (*PagedList[*entities.Dataset], *contract.Error)
}

// LineageStore persists the append-only edge sets. Implementations must check that every
// referenced entity exists in the same transaction as the insert.
type LineageStore interface {
	EntityStore

	LinkDatasetToModel(ctx context.Context, link *entities.ModelDatasetLink) (*entities.ModelDatasetLink, *contract.Error)
	GetModelDatasets(ctx context.Context, modelID int64) ([]*entities.ModelDatasetLink, *contract.Error)

	CreateDependency(ctx context.Context, dependency *entities.ModelDependency) (*entities.ModelDependency, *contract.Error)
	// GetParentDependencies returns edges whose child is one of the given models.
	GetParentDependencies(ctx context.Context, childModelIDs ...int64) ([]*entities.ModelDependency, *contract.Error)
	// GetChildDependencies returns edges whose parent is one of the given models.
	GetChildDependencies(ctx context.Context, parentModelIDs ...int64) ([]*entities.ModelDependency, *contract.Error)
	// GetLineage reads a model's dataset links, parent edges and child edges together.
	GetLineage(ctx context.Context, modelID int64) (*entities.Lineage, *contract.Error)
}

type DatasetFilter struct {
	OrganizationID  *int64
	DataSensitivity *entities.DataSensitivity
}

// Page requests a slice of a result set; a zero MaxResults means no limit.
type Page struct {
	MaxResults int
	Token      string
}

type PagedList[T any] struct {
	Items         []T
	NextPageToken *string
}
