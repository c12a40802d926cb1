package entities

import "fmt"

// DataSensitivity is the legal/privacy category of a dataset's contents.
type DataSensitivity string

const (
	DataSensitivityPublic   DataSensitivity = "public"
	DataSensitivityInternal DataSensitivity = "internal"
	DataSensitivityPII      DataSensitivity = "pii"
	DataSensitivityPHI      DataSensitivity = "phi"
	DataSensitivityPCI      DataSensitivity = "pci"
)

func DataSensitivityValues() []DataSensitivity {
	return []DataSensitivity{
		DataSensitivityPublic,
		DataSensitivityInternal,
		DataSensitivityPII,
		DataSensitivityPHI,
		DataSensitivityPCI,
	}
}

func (s DataSensitivity) IsValid() bool {
	switch s {
	case DataSensitivityPublic, DataSensitivityInternal, DataSensitivityPII, DataSensitivityPHI, DataSensitivityPCI:
		return true
	default:
		return false
	}
}

func ParseDataSensitivity(value string) (DataSensitivity, error) {
	s := DataSensitivity(value)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid data sensitivity %q, expected one of %v", value, DataSensitivityValues())
	}

	return s, nil
}

// DataClassification is the handling/access-restriction tier of a dataset.
type DataClassification string

const (
	DataClassificationPublic       DataClassification = "public"
	DataClassificationInternal     DataClassification = "internal"
	DataClassificationConfidential DataClassification = "confidential"
	DataClassificationRestricted   DataClassification = "restricted"
)

func DataClassificationValues() []DataClassification {
	return []DataClassification{
		DataClassificationPublic,
		DataClassificationInternal,
		DataClassificationConfidential,
		DataClassificationRestricted,
	}
}

func (c DataClassification) IsValid() bool {
	switch c {
	case DataClassificationPublic, DataClassificationInternal, DataClassificationConfidential,
		DataClassificationRestricted:
		return true
	default:
		return false
	}
}

func ParseDataClassification(value string) (DataClassification, error) {
	c := DataClassification(value)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid data classification %q, expected one of %v", value, DataClassificationValues())
	}

	return c, nil
}

// DatasetType is the role a dataset plays in a model's lifecycle.
type DatasetType string

const (
	DatasetTypeTraining   DatasetType = "training"
	DatasetTypeValidation DatasetType = "validation"
	DatasetTypeTest       DatasetType = "test"
	DatasetTypeInference  DatasetType = "inference"
)

func DatasetTypeValues() []DatasetType {
	return []DatasetType{
		DatasetTypeTraining,
		DatasetTypeValidation,
		DatasetTypeTest,
		DatasetTypeInference,
	}
}

func (t DatasetType) IsValid() bool {
	switch t {
	case DatasetTypeTraining, DatasetTypeValidation, DatasetTypeTest, DatasetTypeInference:
		return true
	default:
		return false
	}
}

func ParseDatasetType(value string) (DatasetType, error) {
	t := DatasetType(value)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid dataset type %q, expected one of %v", value, DatasetTypeValues())
	}

	return t, nil
}

// DependencyType classifies a model-to-model relationship.
type DependencyType string

const (
	DependencyTypeFineTunedFrom       DependencyType = "fine_tuned_from"
	DependencyTypeEnsembleComponentOf DependencyType = "ensemble_component_of"
	DependencyTypeDistilledFrom       DependencyType = "distilled_from"
	DependencyTypeDerivedFrom         DependencyType = "derived_from"
)

func DependencyTypeValues() []DependencyType {
	return []DependencyType{
		DependencyTypeFineTunedFrom,
		DependencyTypeEnsembleComponentOf,
		DependencyTypeDistilledFrom,
		DependencyTypeDerivedFrom,
	}
}

func (t DependencyType) IsValid() bool {
	switch t {
	case DependencyTypeFineTunedFrom, DependencyTypeEnsembleComponentOf, DependencyTypeDistilledFrom,
		DependencyTypeDerivedFrom:
		return true
	default:
		return false
	}
}

func ParseDependencyType(value string) (DependencyType, error) {
	t := DependencyType(value)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid dependency type %q, expected one of %v", value, DependencyTypeValues())
	}

	return t, nil
}

// Direction selects which way a transitive lineage walk follows dependency edges.
type Direction string

const (
	// DirectionUpstream follows child -> parent edges (what a model was built from).
	DirectionUpstream Direction = "upstream"
	// DirectionDownstream follows parent -> child edges (what was built from a model).
	DirectionDownstream Direction = "downstream"
)

func (d Direction) IsValid() bool {
	switch d {
	case DirectionUpstream, DirectionDownstream:
		return true
	default:
		return false
	}
}
