package model

import "github.com/aigovhub/lineage/pkg/entities"

// RegisteredModel mapped from table <registered_models>. Rows are written by the model
// registry; this service only reads them.
type RegisteredModel struct {
	ID           *int64  `db:"id"            gorm:"column:id;primaryKey;autoIncrement:true"`
	Name         string  `db:"name"          gorm:"column:name;size:255;not null"`
	Description  *string `db:"description"   gorm:"column:description"`
	CreationTime *int64  `db:"creation_time" gorm:"column:creation_time"`
}

func (m RegisteredModel) ToEntity() *entities.Model {
	return &entities.Model{
		ID:   *m.ID,
		Name: m.Name,
	}
}
