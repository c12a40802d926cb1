package sql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/aigovhub/lineage/pkg/contract"
	"github.com/aigovhub/lineage/pkg/entities"
	"github.com/aigovhub/lineage/pkg/store"
	"github.com/aigovhub/lineage/pkg/store/sql/model"
)

func (s *Store) GetDataset(ctx context.Context, id int64) (*entities.Dataset, *contract.Error) {
	var dataset model.Dataset
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&dataset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, contract.NewNotFoundError(resourceDataset, id)
		}

		return nil, contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to get dataset", err)
	}

	entity, err := dataset.ToEntity()
	if err != nil {
		return nil, contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to read dataset", err)
	}

	return entity, nil
}

func (s *Store) CreateDataset(ctx context.Context, input *entities.Dataset) (*entities.Dataset, *contract.Error) {
	dataset, err := model.NewDatasetFromEntity(input)
	if err != nil {
		return nil, contract.NewErrorWith(contract.ErrorCodeInvalidParameterValue, "invalid schema_info", err)
	}

	if err := s.db.WithContext(ctx).Create(&dataset).Error; err != nil {
		return nil, translateWriteError(err, "failed to create dataset")
	}

	entity, err := dataset.ToEntity()
	if err != nil {
		return nil, contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to read dataset", err)
	}

	return entity, nil
}

// ListDatasets returns datasets matching every supplied filter, newest first.
func (s *Store) ListDatasets(
	ctx context.Context, filter store.DatasetFilter, page store.Page,
) (*store.PagedList[*entities.Dataset], *contract.Error) {
	transaction := s.db.WithContext(ctx).Model(&model.Dataset{})

	if filter.OrganizationID != nil {
		transaction = transaction.Where("organization_id = ?", *filter.OrganizationID)
	}

	if filter.DataSensitivity != nil {
		transaction = transaction.Where("data_sensitivity = ?", string(*filter.DataSensitivity))
	}

	offset, cErr := getOffset(page.Token)
	if cErr != nil {
		return nil, cErr
	}

	if page.MaxResults > 0 {
		transaction = transaction.Limit(page.MaxResults).Offset(offset)
	} else if offset > 0 {
		return nil, contract.NewError(
			contract.ErrorCodeInvalidParameterValue,
			"page_token requires max_results",
		)
	}

	var datasets []model.Dataset
	if err := transaction.Order("created_at DESC").Order("id DESC").Find(&datasets).Error; err != nil {
		return nil, contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to list datasets", err)
	}

	items := make([]*entities.Dataset, 0, len(datasets))

	for _, dataset := range datasets {
		entity, err := dataset.ToEntity()
		if err != nil {
			return nil, contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to read dataset", err)
		}

		items = append(items, entity)
	}

	nextPageToken, cErr := mkNextPageToken(len(items), page.MaxResults, offset)
	if cErr != nil {
		return nil, cErr
	}

	return &store.PagedList[*entities.Dataset]{
		Items:         items,
		NextPageToken: nextPageToken,
	}, nil
}
