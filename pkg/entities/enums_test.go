package entities_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aigovhub/lineage/pkg/entities"
)

func TestVocabularies(t *testing.T) {
	t.Parallel()

	assert.ElementsMatch(t,
		[]entities.DataSensitivity{"public", "internal", "pii", "phi", "pci"},
		entities.DataSensitivityValues(),
	)
	assert.ElementsMatch(t,
		[]entities.DataClassification{"public", "internal", "confidential", "restricted"},
		entities.DataClassificationValues(),
	)
	assert.ElementsMatch(t,
		[]entities.DatasetType{"training", "validation", "test", "inference"},
		entities.DatasetTypeValues(),
	)
	assert.ElementsMatch(t,
		[]entities.DependencyType{"fine_tuned_from", "ensemble_component_of", "distilled_from", "derived_from"},
		entities.DependencyTypeValues(),
	)
}

func TestParseVocabularies(t *testing.T) {
	t.Parallel()

	for _, value := range entities.DataSensitivityValues() {
		parsed, err := entities.ParseDataSensitivity(string(value))
		require.NoError(t, err)
		assert.Equal(t, value, parsed)
	}

	for _, value := range entities.DataClassificationValues() {
		parsed, err := entities.ParseDataClassification(string(value))
		require.NoError(t, err)
		assert.Equal(t, value, parsed)
	}

	for _, value := range entities.DatasetTypeValues() {
		parsed, err := entities.ParseDatasetType(string(value))
		require.NoError(t, err)
		assert.Equal(t, value, parsed)
	}

	for _, value := range entities.DependencyTypeValues() {
		parsed, err := entities.ParseDependencyType(string(value))
		require.NoError(t, err)
		assert.Equal(t, value, parsed)
	}

	// Values are case sensitive and never empty.
	for _, value := range []string{"", "PII", "secret"} {
		_, err := entities.ParseDataSensitivity(value)
		require.Error(t, err, value)
	}

	_, err := entities.ParseDataClassification("Internal")
	require.Error(t, err)
	_, err = entities.ParseDatasetType("holdout")
	require.Error(t, err)
	_, err = entities.ParseDependencyType("copied_from")
	require.Error(t, err)

	assert.True(t, entities.DirectionUpstream.IsValid())
	assert.True(t, entities.DirectionDownstream.IsValid())
	assert.False(t, entities.Direction("both").IsValid())
}

func TestDatasetWireNames(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(entities.Dataset{ID: 1, Name: "claims"})
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))

	for _, key := range []string{
		"id", "name", "description", "source_system", "location", "data_sensitivity",
		"data_classification", "organization_id", "record_count", "schema_info", "created_at",
		"updated_at",
	} {
		assert.Contains(t, fields, key)
	}
}
