package model

import "github.com/aigovhub/lineage/pkg/entities"

// ModelDatasetLink mapped from table <model_dataset_links>.
type ModelDatasetLink struct {
	ID             *int64           `db:"id"               gorm:"column:id;primaryKey;autoIncrement:true"`
	ModelID        int64            `db:"model_id"         gorm:"column:model_id;not null;index"`
	ModelVersionID *int64           `db:"model_version_id" gorm:"column:model_version_id"`
	DatasetID      int64            `db:"dataset_id"       gorm:"column:dataset_id;not null;index"`
	DatasetType    string           `db:"dataset_type"     gorm:"column:dataset_type;size:32;not null;default:training;check:chk_model_dataset_links_dataset_type,dataset_type IN ('training','validation','test','inference')"`
	Notes          *string          `db:"notes"            gorm:"column:notes"`
	CreatedAt      int64            `db:"created_at"       gorm:"column:created_at;not null;autoCreateTime:milli"`
	Model          *RegisteredModel `gorm:"foreignKey:ModelID;references:ID;constraint:OnDelete:RESTRICT"`
	ModelVersion   *ModelVersion    `gorm:"foreignKey:ModelVersionID;references:ID;constraint:OnDelete:RESTRICT"`
	Dataset        *Dataset         `gorm:"foreignKey:DatasetID;references:ID;constraint:OnDelete:RESTRICT"`
}

func (l ModelDatasetLink) ToEntity() *entities.ModelDatasetLink {
	return &entities.ModelDatasetLink{
		ID:             *l.ID,
		ModelID:        l.ModelID,
		ModelVersionID: l.ModelVersionID,
		DatasetID:      l.DatasetID,
		DatasetType:    entities.DatasetType(l.DatasetType),
		Notes:          l.Notes,
		CreatedAt:      fromMillis(l.CreatedAt),
	}
}

func NewModelDatasetLinkFromEntity(link *entities.ModelDatasetLink) ModelDatasetLink {
	return ModelDatasetLink{
		ModelID:        link.ModelID,
		ModelVersionID: link.ModelVersionID,
		DatasetID:      link.DatasetID,
		DatasetType:    string(link.DatasetType),
		Notes:          link.Notes,
		CreatedAt:      link.CreatedAt.UnixMilli(),
	}
}
