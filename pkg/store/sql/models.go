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
	resourceModel        = "model"
	resourceModelVersion = "model_version"
	resourceDataset      = "dataset"
)

func getModel(transaction *gorm.DB, id int64, resource string) (*model.RegisteredModel, *contract.Error) {
	var registeredModel model.RegisteredModel
	if err := transaction.Where("id = ?", id).First(&registeredModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, contract.NewNotFoundError(resource, id)
		}

		return nil, contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to get "+resource, err)
	}

	return &registeredModel, nil
}

// getModelVersion resolves a version id and, when modelID is non-zero, checks the version
// belongs to that model. A version of another model is reported as not found.
func getModelVersion(
	transaction *gorm.DB, id int64, modelID int64, resource string,
) (*model.ModelVersion, *contract.Error) {
	var version model.ModelVersion
	if err := transaction.Where("id = ?", id).First(&version).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, contract.NewNotFoundError(resource, id)
		}

		return nil, contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to get "+resource, err)
	}

	if modelID != 0 && version.ModelID != modelID {
		return nil, &contract.Error{
			Code:     contract.ErrorCodeResourceDoesNotExist,
			Message:  fmt.Sprintf("%s %d does not belong to model %d", resource, id, modelID),
			Resource: resource,
		}
	}

	return &version, nil
}

func (s *Store) GetModel(ctx context.Context, id int64) (*entities.Model, *contract.Error) {
	registeredModel, err := getModel(s.db.WithContext(ctx), id, resourceModel)
	if err != nil {
		return nil, err
	}

	return registeredModel.ToEntity(), nil
}

func (s *Store) GetModelVersion(ctx context.Context, id int64) (*entities.ModelVersion, *contract.Error) {
	version, err := getModelVersion(s.db.WithContext(ctx), id, 0, resourceModelVersion)
	if err != nil {
		return nil, err
	}

	return version.ToEntity(), nil
}
