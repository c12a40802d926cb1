package sql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/aigovhub/lineage/pkg/contract"
	"github.com/aigovhub/lineage/pkg/entities"
	"github.com/aigovhub/lineage/pkg/store/sql/model"
)

const (
	resourceParentModel   = "parent_model"
	resourceParentVersion = "parent_version"
	resourceChildVersion  = "child_version"
)

// LinkDatasetToModel appends a dataset -> model edge. The existence checks and the insert
// share one transaction; the foreign keys on the table back them up.
func (s *Store) LinkDatasetToModel(
	ctx context.Context, input *entities.ModelDatasetLink,
) (*entities.ModelDatasetLink, *contract.Error) {
	link := model.NewModelDatasetLinkFromEntity(input)

	if err := s.db.WithContext(ctx).Transaction(func(transaction *gorm.DB) error {
		if _, err := getModel(transaction, link.ModelID, resourceModel); err != nil {
			return err
		}

		if err := checkDatasetExists(transaction, link.DatasetID); err != nil {
			return err
		}

		if link.ModelVersionID != nil {
			if _, err := getModelVersion(transaction, *link.ModelVersionID, link.ModelID, resourceModelVersion); err != nil {
				return err
			}
		}

		if err := transaction.Create(&link).Error; err != nil {
			return fmt.Errorf("failed to insert model dataset link: %w", err)
		}

		return nil
	}); err != nil {
		return nil, translateWriteError(err, "failed to link dataset to model")
	}

	return link.ToEntity(), nil
}

func checkDatasetExists(transaction *gorm.DB, id int64) *contract.Error {
	var count int64
	if err := transaction.Model(&model.Dataset{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to get dataset", err)
	}

	if count == 0 {
		return contract.NewNotFoundError(resourceDataset, id)
	}

	return nil
}

// GetModelDatasets returns every dataset link of the model in insertion order.
func (s *Store) GetModelDatasets(ctx context.Context, modelID int64) ([]*entities.ModelDatasetLink, *contract.Error) {
	return findModelDatasets(s.db.WithContext(ctx), modelID)
}

func findModelDatasets(transaction *gorm.DB, modelID int64) ([]*entities.ModelDatasetLink, *contract.Error) {
	var links []model.ModelDatasetLink
	if err := transaction.
		Where("model_id = ?", modelID).
		Order("id").
		Find(&links).Error; err != nil {
		return nil, contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to get model datasets", err)
	}

	items := make([]*entities.ModelDatasetLink, 0, len(links))
	for _, link := range links {
		items = append(items, link.ToEntity())
	}

	return items, nil
}

// CreateDependency appends a parent -> child model edge after resolving both models and
// any version references inside one transaction.
func (s *Store) CreateDependency(
	ctx context.Context, input *entities.ModelDependency,
) (*entities.ModelDependency, *contract.Error) {
	dependency := model.NewModelDependencyFromEntity(input)

	if err := s.db.WithContext(ctx).Transaction(func(transaction *gorm.DB) error {
		if _, err := getModel(transaction, dependency.ChildModelID, resourceModel); err != nil {
			return err
		}

		if _, err := getModel(transaction, dependency.ParentModelID, resourceParentModel); err != nil {
			return err
		}

		if dependency.ParentVersionID != nil {
			if _, err := getModelVersion(
				transaction, *dependency.ParentVersionID, dependency.ParentModelID, resourceParentVersion,
			); err != nil {
				return err
			}
		}

		if dependency.ChildVersionID != nil {
			if _, err := getModelVersion(
				transaction, *dependency.ChildVersionID, dependency.ChildModelID, resourceChildVersion,
			); err != nil {
				return err
			}
		}

		if err := transaction.Create(&dependency).Error; err != nil {
			return fmt.Errorf("failed to insert model dependency: %w", err)
		}

		return nil
	}); err != nil {
		return nil, translateWriteError(err, "failed to create model dependency")
	}

	return dependency.ToEntity(), nil
}

func (s *Store) GetParentDependencies(
	ctx context.Context, childModelIDs ...int64,
) ([]*entities.ModelDependency, *contract.Error) {
	return findDependencies(s.db.WithContext(ctx), "child_model_id", childModelIDs)
}

func (s *Store) GetChildDependencies(
	ctx context.Context, parentModelIDs ...int64,
) ([]*entities.ModelDependency, *contract.Error) {
	return findDependencies(s.db.WithContext(ctx), "parent_model_id", parentModelIDs)
}

func findDependencies(
	transaction *gorm.DB, column string, modelIDs []int64,
) ([]*entities.ModelDependency, *contract.Error) {
	if len(modelIDs) == 0 {
		return []*entities.ModelDependency{}, nil
	}

	var dependencies []model.ModelDependency
	if err := transaction.
		Where(column+" IN ?", modelIDs).
		Order("id").
		Find(&dependencies).Error; err != nil {
		return nil, contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to get model dependencies", err)
	}

	items := make([]*entities.ModelDependency, 0, len(dependencies))
	for _, dependency := range dependencies {
		items = append(items, dependency.ToEntity())
	}

	return items, nil
}

// GetLineage reads the model and its three single-hop edge sets in one transaction so
// the sets describe the same snapshot.
func (s *Store) GetLineage(ctx context.Context, modelID int64) (*entities.Lineage, *contract.Error) {
	var lineage entities.Lineage

	if err := s.db.WithContext(ctx).Transaction(func(transaction *gorm.DB) error {
		if _, err := getModel(transaction, modelID, resourceModel); err != nil {
			return err
		}

		datasets, err := findModelDatasets(transaction, modelID)
		if err != nil {
			return err
		}

		parents, err := findDependencies(transaction, "child_model_id", []int64{modelID})
		if err != nil {
			return err
		}

		children, err := findDependencies(transaction, "parent_model_id", []int64{modelID})
		if err != nil {
			return err
		}

		lineage = entities.Lineage{
			Datasets:     datasets,
			ParentModels: parents,
			ChildModels:  children,
		}

		return nil
	}); err != nil {
		var cErr *contract.Error
		if errors.As(err, &cErr) {
			return nil, cErr
		}

		return nil, contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to get lineage", err)
	}

	return &lineage, nil
}
