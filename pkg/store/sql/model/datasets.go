package model

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/aigovhub/lineage/pkg/entities"
)

// Dataset mapped from table <datasets>.
type Dataset struct {
	ID                 *int64         `db:"id"                  gorm:"column:id;primaryKey;autoIncrement:true"`
	Name               string         `db:"name"                gorm:"column:name;size:255;not null;index"`
	Description        *string        `db:"description"         gorm:"column:description"`
	SourceSystem       *string        `db:"source_system"       gorm:"column:source_system;size:255"`
	Location           *string        `db:"location"            gorm:"column:location"`
	DataSensitivity    string         `db:"data_sensitivity"    gorm:"column:data_sensitivity;size:32;not null;default:internal;index;check:chk_datasets_data_sensitivity,data_sensitivity IN ('public','internal','pii','phi','pci')"`
	DataClassification string         `db:"data_classification" gorm:"column:data_classification;size:32;not null;default:internal;check:chk_datasets_data_classification,data_classification IN ('public','internal','confidential','restricted')"`
	OrganizationID     *int64         `db:"organization_id"     gorm:"column:organization_id;index"`
	RecordCount        *int64         `db:"record_count"        gorm:"column:record_count"`
	SchemaInfo         datatypes.JSON `db:"schema_info"         gorm:"column:schema_info"`
	CreatedAt          int64          `db:"created_at"          gorm:"column:created_at;not null;index;autoCreateTime:milli"`
	UpdatedAt          *int64         `db:"updated_at"          gorm:"column:updated_at;autoUpdateTime:false"`
}

func (d Dataset) ToEntity() (*entities.Dataset, error) {
	var schemaInfo map[string]any
	if len(d.SchemaInfo) > 0 {
		if err := json.Unmarshal(d.SchemaInfo, &schemaInfo); err != nil {
			return nil, fmt.Errorf("failed to decode schema_info of dataset %d: %w", *d.ID, err)
		}
	}

	var updatedAt *time.Time
	if d.UpdatedAt != nil {
		t := fromMillis(*d.UpdatedAt)
		updatedAt = &t
	}

	return &entities.Dataset{
		ID:                 *d.ID,
		Name:               d.Name,
		Description:        d.Description,
		SourceSystem:       d.SourceSystem,
		Location:           d.Location,
		DataSensitivity:    entities.DataSensitivity(d.DataSensitivity),
		DataClassification: entities.DataClassification(d.DataClassification),
		OrganizationID:     d.OrganizationID,
		RecordCount:        d.RecordCount,
		SchemaInfo:         schemaInfo,
		CreatedAt:          fromMillis(d.CreatedAt),
		UpdatedAt:          updatedAt,
	}, nil
}

func NewDatasetFromEntity(dataset *entities.Dataset) (Dataset, error) {
	var schemaInfo datatypes.JSON
	if dataset.SchemaInfo != nil {
		raw, err := json.Marshal(dataset.SchemaInfo)
		if err != nil {
			return Dataset{}, fmt.Errorf("failed to encode schema_info: %w", err)
		}
		schemaInfo = raw
	}

	return Dataset{
		Name:               dataset.Name,
		Description:        dataset.Description,
		SourceSystem:       dataset.SourceSystem,
		Location:           dataset.Location,
		DataSensitivity:    string(dataset.DataSensitivity),
		DataClassification: string(dataset.DataClassification),
		OrganizationID:     dataset.OrganizationID,
		RecordCount:        dataset.RecordCount,
		SchemaInfo:         schemaInfo,
		CreatedAt:          dataset.CreatedAt.UnixMilli(),
	}, nil
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
