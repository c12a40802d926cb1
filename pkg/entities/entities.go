package entities

import "time"

// Dataset is a data source used by one or more models.
type Dataset struct {
	ID                 int64              `json:"id"`
	Name               string             `json:"name"`
	Description        *string            `json:"description"`
	SourceSystem       *string            `json:"source_system"`
	Location           *string            `json:"location"`
	DataSensitivity    DataSensitivity    `json:"data_sensitivity"`
	DataClassification DataClassification `json:"data_classification"`
	OrganizationID     *int64             `json:"organization_id"`
	RecordCount        *int64             `json:"record_count"`
	SchemaInfo         map[string]any     `json:"schema_info"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          *time.Time         `json:"updated_at"`
}

// Model is owned by the model registry and only read here to validate references.
type Model struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ModelVersion struct {
	ID         int64  `json:"id"`
	ModelID    int64  `json:"model_id"`
	VersionTag string `json:"version_tag"`
}

// ModelDatasetLink records that a dataset was used by a model. Edges are immutable.
type ModelDatasetLink struct {
	ID             int64       `json:"id"`
	ModelID        int64       `json:"model_id"`
	ModelVersionID *int64      `json:"model_version_id"`
	DatasetID      int64       `json:"dataset_id"`
	DatasetType    DatasetType `json:"dataset_type"`
	Notes          *string     `json:"notes"`
	CreatedAt      time.Time   `json:"created_at"`
}

// ModelDependency records that the child model depends on the parent model.
type ModelDependency struct {
	ID              int64          `json:"id"`
	ParentModelID   int64          `json:"parent_model_id"`
	ParentVersionID *int64         `json:"parent_version_id"`
	ChildModelID    int64          `json:"child_model_id"`
	ChildVersionID  *int64         `json:"child_version_id"`
	DependencyType  DependencyType `json:"dependency_type"`
	Notes           *string        `json:"notes"`
	CreatedAt       time.Time      `json:"created_at"`
}

// Lineage is the single-hop neighbourhood of a model.
type Lineage struct {
	Datasets     []*ModelDatasetLink `json:"datasets"`
	ParentModels []*ModelDependency  `json:"parent_models"`
	ChildModels  []*ModelDependency  `json:"child_models"`
}

// LineageGraph is the result of a transitive walk over dependency edges.
type LineageGraph struct {
	RootModelID int64              `json:"root_model_id"`
	Direction   Direction          `json:"direction"`
	MaxDepth    int                `json:"max_depth"`
	ModelIDs    []int64            `json:"model_ids"`
	Edges       []*ModelDependency `json:"edges"`
}
