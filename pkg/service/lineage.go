package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/aigovhub/lineage/pkg/config"
	"github.com/aigovhub/lineage/pkg/contract"
	"github.com/aigovhub/lineage/pkg/entities"
	"github.com/aigovhub/lineage/pkg/lineage"
	"github.com/aigovhub/lineage/pkg/store"
	"github.com/aigovhub/lineage/pkg/store/sql"
	"github.com/aigovhub/lineage/pkg/utils"
	"github.com/aigovhub/lineage/pkg/validation"
)

type LineageService struct {
	config    *config.Config
	logger    *logrus.Logger
	validator *validator.Validate
	Store     store.LineageStore
	now       func() time.Time
}

var _ contract.LineageService = (*LineageService)(nil)

func NewLineageServiceWithStore(
	logger *logrus.Logger, cfg *config.Config, lineageStore store.LineageStore,
) (*LineageService, error) {
	validate, err := validation.NewValidator()
	if err != nil {
		return nil, fmt.Errorf("could not create validator: %w", err)
	}

	return &LineageService{
		config:    cfg,
		logger:    logger,
		validator: validate,
		Store:     lineageStore,
		now:       time.Now,
	}, nil
}

func NewLineageService(logger *logrus.Logger, cfg *config.Config) (*LineageService, error) {
	lineageStore, err := sql.NewSQLStore(logger, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create new sql store: %w", err)
	}

	return NewLineageServiceWithStore(logger, cfg, lineageStore)
}

func (l *LineageService) validate(operation string, input any) *contract.Error {
	if err := l.validator.Struct(input); err != nil {
		return l.reject(operation, validation.NewErrorFromValidationError(err))
	}

	return nil
}

// reject counts and logs a failed operation before handing the error back.
func (l *LineageService) reject(operation string, err *contract.Error) *contract.Error {
	operationErrors.WithLabelValues(operation, string(err.Code)).Inc()
	l.logger.WithFields(logrus.Fields{
		"operation": operation,
		"code":      err.Code,
		"resource":  err.Resource,
	}).Debug(err.Message)

	return err
}

func (l *LineageService) timestamp() time.Time {
	return l.now().UTC().Truncate(time.Millisecond)
}

// CreateDataset implements LineageService.
func (l *LineageService) CreateDataset(
	ctx context.Context, input *entities.CreateDataset,
) (*entities.Dataset, *contract.Error) {
	const operation = "create_dataset"

	if err := l.validate(operation, input); err != nil {
		return nil, err
	}

	dataset := &entities.Dataset{
		Name:               input.Name,
		Description:        input.Description,
		SourceSystem:       input.SourceSystem,
		Location:           input.Location,
		DataSensitivity:    input.DataSensitivity,
		DataClassification: input.DataClassification,
		OrganizationID:     input.OrganizationID,
		RecordCount:        input.RecordCount,
		SchemaInfo:         input.SchemaInfo,
		CreatedAt:          l.timestamp(),
	}

	if dataset.DataSensitivity == "" {
		dataset.DataSensitivity = entities.DataSensitivityInternal
	}

	if dataset.DataClassification == "" {
		dataset.DataClassification = entities.DataClassificationInternal
	}

	created, err := l.Store.CreateDataset(ctx, dataset)
	if err != nil {
		return nil, l.reject(operation, err)
	}

	datasetsCreated.WithLabelValues(string(created.DataSensitivity), string(created.DataClassification)).Inc()
	l.logger.WithFields(logrus.Fields{
		"dataset_id":          created.ID,
		"data_sensitivity":    created.DataSensitivity,
		"data_classification": created.DataClassification,
	}).Info("Dataset created")

	return created, nil
}

// GetDataset implements LineageService.
func (l *LineageService) GetDataset(ctx context.Context, input *entities.GetDataset) (*entities.Dataset, *contract.Error) {
	dataset, err := l.Store.GetDataset(ctx, input.DatasetID)
	if err != nil {
		return nil, l.reject("get_dataset", err)
	}

	return dataset, nil
}

// ListDatasets implements LineageService.
func (l *LineageService) ListDatasets(
	ctx context.Context, input *entities.ListDatasets,
) (*entities.ListDatasetsResponse, *contract.Error) {
	const operation = "list_datasets"

	if err := l.validate(operation, input); err != nil {
		return nil, err
	}

	filter := store.DatasetFilter{OrganizationID: input.OrganizationID}

	if input.DataSensitivity != "" {
		filter.DataSensitivity = &input.DataSensitivity
	}

	page, err := l.Store.ListDatasets(ctx, filter, store.Page{
		MaxResults: utils.ValueOr(input.MaxResults, 0),
		Token:      input.PageToken,
	})
	if err != nil {
		return nil, l.reject(operation, err)
	}

	return &entities.ListDatasetsResponse{
		Datasets:      page.Items,
		NextPageToken: page.NextPageToken,
	}, nil
}

// LinkDatasetToModel implements LineageService.
func (l *LineageService) LinkDatasetToModel(
	ctx context.Context, input *entities.LinkDatasetToModel,
) (*entities.ModelDatasetLink, *contract.Error) {
	const operation = "link_dataset_to_model"

	if err := l.validate(operation, input); err != nil {
		return nil, err
	}

	link := &entities.ModelDatasetLink{
		ModelID:        input.ModelID,
		ModelVersionID: input.ModelVersionID,
		DatasetID:      input.DatasetID,
		DatasetType:    input.DatasetType,
		Notes:          input.Notes,
		CreatedAt:      l.timestamp(),
	}

	if link.DatasetType == "" {
		link.DatasetType = entities.DatasetTypeTraining
	}

	created, err := l.Store.LinkDatasetToModel(ctx, link)
	if err != nil {
		return nil, l.reject(operation, err)
	}

	edgesCreated.WithLabelValues(edgeKindDatasetLink, string(created.DatasetType)).Inc()
	l.logger.WithFields(logrus.Fields{
		"link_id":      created.ID,
		"model_id":     created.ModelID,
		"dataset_id":   created.DatasetID,
		"dataset_type": created.DatasetType,
	}).Info("Dataset linked to model")

	return created, nil
}

// GetModelDatasets implements LineageService.
func (l *LineageService) GetModelDatasets(
	ctx context.Context, input *entities.GetModelDatasets,
) ([]*entities.ModelDatasetLink, *contract.Error) {
	links, err := l.Store.GetModelDatasets(ctx, input.ModelID)
	if err != nil {
		return nil, l.reject("get_model_datasets", err)
	}

	return links, nil
}

// CreateDependency implements LineageService.
func (l *LineageService) CreateDependency(
	ctx context.Context, input *entities.CreateDependency,
) (*entities.ModelDependency, *contract.Error) {
	const operation = "create_dependency"

	if err := l.validate(operation, input); err != nil {
		return nil, err
	}

	dependency := &entities.ModelDependency{
		ParentModelID:   input.ParentModelID,
		ParentVersionID: input.ParentVersionID,
		ChildModelID:    input.ChildModelID,
		ChildVersionID:  input.ChildVersionID,
		DependencyType:  input.DependencyType,
		Notes:           input.Notes,
		CreatedAt:       l.timestamp(),
	}

	if dependency.DependencyType == "" {
		dependency.DependencyType = entities.DependencyTypeDerivedFrom
	}

	if err := lineage.CheckSelfDependency(l.config.Lineage.SelfDependency, dependency); err != nil {
		return nil, l.reject(operation, err)
	}

	created, err := l.Store.CreateDependency(ctx, dependency)
	if err != nil {
		return nil, l.reject(operation, err)
	}

	edgesCreated.WithLabelValues(edgeKindDependency, string(created.DependencyType)).Inc()
	l.logger.WithFields(logrus.Fields{
		"dependency_id":   created.ID,
		"parent_model_id": created.ParentModelID,
		"child_model_id":  created.ChildModelID,
		"dependency_type": created.DependencyType,
	}).Info("Model dependency declared")

	return created, nil
}

// GetLineage implements LineageService. The three sets are single hop.
func (l *LineageService) GetLineage(ctx context.Context, input *entities.GetLineage) (*entities.Lineage, *contract.Error) {
	result, err := l.Store.GetLineage(ctx, input.ModelID)
	if err != nil {
		return nil, l.reject("get_lineage", err)
	}

	return result, nil
}

// TraverseLineage implements LineageService.
func (l *LineageService) TraverseLineage(
	ctx context.Context, input *entities.TraverseLineage,
) (*entities.LineageGraph, *contract.Error) {
	const operation = "traverse_lineage"

	if err := l.validate(operation, input); err != nil {
		return nil, err
	}

	if _, err := l.Store.GetModel(ctx, input.ModelID); err != nil {
		return nil, l.reject(operation, err)
	}

	direction := input.Direction
	if direction == "" {
		direction = entities.DirectionUpstream
	}

	maxDepth := input.MaxDepth
	if limit := l.config.Lineage.MaxTraversalDepth; limit > 0 && (maxDepth == 0 || maxDepth > limit) {
		maxDepth = limit
	}

	start := time.Now()

	graph, err := lineage.Walk(ctx, l.Store, input.ModelID, direction, maxDepth)
	if err != nil {
		return nil, l.reject(operation, err)
	}

	walkDuration.WithLabelValues(string(direction)).Observe(time.Since(start).Seconds())
	walkSize.Observe(float64(len(graph.ModelIDs)))

	return graph, nil
}
