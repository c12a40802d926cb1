package contract

import (
	"context"

	"github.com/aigovhub/lineage/pkg/entities"
)

type LineageService interface {
	CreateDataset(ctx context.Context, input *entities.CreateDataset) (*entities.Dataset, *Error)
	GetDataset(ctx context.Context, input *entities.GetDataset) (*entities.Dataset, *Error)
	ListDatasets(ctx context.Context, input *entities.ListDatasets) (*entities.ListDatasetsResponse, *Error)
	LinkDatasetToModel(ctx context.Context, input *entities.LinkDatasetToModel) (*entities.ModelDatasetLink, *Error)
	GetModelDatasets(ctx context.Context, input *entities.GetModelDatasets) ([]*entities.ModelDatasetLink, *Error)
	CreateDependency(ctx context.Context, input *entities.CreateDependency) (*entities.ModelDependency, *Error)
	GetLineage(ctx context.Context, input *entities.GetLineage) (*entities.Lineage, *Error)
	TraverseLineage(ctx context.Context, input *entities.TraverseLineage) (*entities.LineageGraph, *Error)
}
