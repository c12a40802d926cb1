package model

import "github.com/aigovhub/lineage/pkg/entities"

// ModelDependency mapped from table <model_dependencies>.
type ModelDependency struct {
	ID              *int64           `db:"id"                gorm:"column:id;primaryKey;autoIncrement:true"`
	ParentModelID   int64            `db:"parent_model_id"   gorm:"column:parent_model_id;not null;index"`
	ParentVersionID *int64           `db:"parent_version_id" gorm:"column:parent_version_id"`
	ChildModelID    int64            `db:"child_model_id"    gorm:"column:child_model_id;not null;index"`
	ChildVersionID  *int64           `db:"child_version_id"  gorm:"column:child_version_id"`
	DependencyType  string           `db:"dependency_type"   gorm:"column:dependency_type;size:32;not null;default:derived_from;check:chk_model_dependencies_dependency_type,dependency_type IN ('fine_tuned_from','ensemble_component_of','distilled_from','derived_from')"`
	Notes           *string          `db:"notes"             gorm:"column:notes"`
	CreatedAt       int64            `db:"created_at"        gorm:"column:created_at;not null;autoCreateTime:milli"`
	ParentModel     *RegisteredModel `gorm:"foreignKey:ParentModelID;references:ID;constraint:OnDelete:RESTRICT"`
	ChildModel      *RegisteredModel `gorm:"foreignKey:ChildModelID;references:ID;constraint:OnDelete:RESTRICT"`
	ParentVersion   *ModelVersion    `gorm:"foreignKey:ParentVersionID;references:ID;constraint:OnDelete:RESTRICT"`
	ChildVersion    *ModelVersion    `gorm:"foreignKey:ChildVersionID;references:ID;constraint:OnDelete:RESTRICT"`
}

func (d ModelDependency) ToEntity() *entities.ModelDependency {
	return &entities.ModelDependency{
		ID:              *d.ID,
		ParentModelID:   d.ParentModelID,
		ParentVersionID: d.ParentVersionID,
		ChildModelID:    d.ChildModelID,
		ChildVersionID:  d.ChildVersionID,
		DependencyType:  entities.DependencyType(d.DependencyType),
		Notes:           d.Notes,
		CreatedAt:       fromMillis(d.CreatedAt),
	}
}

func NewModelDependencyFromEntity(dependency *entities.ModelDependency) ModelDependency {
	return ModelDependency{
		ParentModelID:   dependency.ParentModelID,
		ParentVersionID: dependency.ParentVersionID,
		ChildModelID:    dependency.ChildModelID,
		ChildVersionID:  dependency.ChildVersionID,
		DependencyType:  string(dependency.DependencyType),
		Notes:           dependency.Notes,
		CreatedAt:       dependency.CreatedAt.UnixMilli(),
	}
}
