package model

import "github.com/aigovhub/lineage/pkg/entities"

// ModelVersion mapped from table <model_versions>.
type ModelVersion struct {
	ID           *int64           `db:"id"            gorm:"column:id;primaryKey;autoIncrement:true"`
	ModelID      int64            `db:"model_id"      gorm:"column:model_id;not null;index"`
	VersionTag   string           `db:"version_tag"   gorm:"column:version_tag;size:255;not null"`
	StoragePath  *string          `db:"storage_path"  gorm:"column:storage_path"`
	CreationTime *int64           `db:"creation_time" gorm:"column:creation_time"`
	Model        *RegisteredModel `gorm:"foreignKey:ModelID;references:ID;constraint:OnDelete:RESTRICT"`
}

func (v ModelVersion) ToEntity() *entities.ModelVersion {
	return &entities.ModelVersion{
		ID:         *v.ID,
		ModelID:    v.ModelID,
		VersionTag: v.VersionTag,
	}
}
