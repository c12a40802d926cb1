package entities

type CreateDataset struct {
	Name               string             `json:"name"                validate:"required,max=255"`
	Description        *string            `json:"description"`
	SourceSystem       *string            `json:"source_system"`
	Location           *string            `json:"location"`
	DataSensitivity    DataSensitivity    `json:"data_sensitivity"    validate:"omitempty,dataSensitivity"`
	DataClassification DataClassification `json:"data_classification" validate:"omitempty,dataClassification"`
	OrganizationID     *int64             `json:"organization_id"`
	RecordCount        *int64             `json:"record_count"        validate:"omitempty,gte=0"`
	SchemaInfo         map[string]any     `json:"schema_info"`
}

type GetDataset struct {
	DatasetID int64 `params:"dataset_id" validate:"required"`
}

type ListDatasets struct {
	OrganizationID  *int64          `query:"organization_id"`
	DataSensitivity DataSensitivity `query:"data_sensitivity" validate:"omitempty,dataSensitivity"`
	MaxResults      *int            `query:"max_results"      validate:"omitempty,gt=0,lte=1000"`
	PageToken       string          `query:"page_token"`
}

type ListDatasetsResponse struct {
	Datasets      []*Dataset
	NextPageToken *string
}

type LinkDatasetToModel struct {
	ModelID        int64       `json:"-"                params:"model_id" validate:"required"`
	DatasetID      int64       `json:"dataset_id"       validate:"required"`
	DatasetType    DatasetType `json:"dataset_type"     validate:"omitempty,datasetType"`
	ModelVersionID *int64      `json:"model_version_id"`
	Notes          *string     `json:"notes"`
}

type GetModelDatasets struct {
	ModelID int64 `params:"model_id" validate:"required"`
}

type CreateDependency struct {
	ChildModelID    int64          `json:"-"                 params:"model_id" validate:"required"`
	ParentModelID   int64          `json:"parent_model_id"   validate:"required"`
	ParentVersionID *int64         `json:"parent_version_id"`
	ChildVersionID  *int64         `json:"child_version_id"`
	DependencyType  DependencyType `json:"dependency_type"   validate:"omitempty,dependencyType"`
	Notes           *string        `json:"notes"`
}

type GetLineage struct {
	ModelID int64 `params:"model_id" validate:"required"`
}

type TraverseLineage struct {
	ModelID   int64     `params:"model_id"  validate:"required"`
	Direction Direction `query:"direction"  validate:"omitempty,lineageDirection"`
	MaxDepth  int       `query:"max_depth"  validate:"gte=0"`
}
