package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aigovhub/lineage/pkg/config"
	"github.com/aigovhub/lineage/pkg/contract"
	"github.com/aigovhub/lineage/pkg/entities"
	"github.com/aigovhub/lineage/pkg/store/sql/sqltest"
	"github.com/aigovhub/lineage/pkg/utils"
)

func newTestService(t *testing.T, policy config.SelfDependencyPolicy) (*LineageService, *gorm.DB) {
	t.Helper()

	cfg := sqltest.NewConfig()
	cfg.Lineage.SelfDependency = policy

	lineageStore, database := sqltest.NewStore(t, cfg)

	service, err := NewLineageServiceWithStore(sqltest.NewLogger(), cfg, lineageStore)
	require.NoError(t, err)

	return service, database
}

func TestCreateDatasetRoundTrip(t *testing.T) {
	t.Parallel()

	service, _ := newTestService(t, config.SelfDependencyAllow)
	ctx := context.Background()

	created, cErr := service.CreateDataset(ctx, &entities.CreateDataset{
		Name:               "claims",
		Description:        utils.PtrTo("Adjudicated claims"),
		DataSensitivity:    entities.DataSensitivityPHI,
		DataClassification: entities.DataClassificationRestricted,
		OrganizationID:     utils.PtrTo(int64(3)),
		RecordCount:        utils.PtrTo(int64(10)),
		SchemaInfo:         map[string]any{"format": "parquet"},
	})
	require.Nil(t, cErr)

	fetched, cErr := service.GetDataset(ctx, &entities.GetDataset{DatasetID: created.ID})
	require.Nil(t, cErr)
	assert.Equal(t, created, fetched)
	assert.Equal(t, time.UTC, fetched.CreatedAt.Location())
}

func TestCreateDatasetDefaults(t *testing.T) {
	t.Parallel()

	service, _ := newTestService(t, config.SelfDependencyAllow)
	fixed := time.Date(2024, 5, 6, 7, 8, 9, 123456789, time.FixedZone("CEST", 2*60*60))
	service.now = func() time.Time { return fixed }

	created, cErr := service.CreateDataset(context.Background(), &entities.CreateDataset{
		Name: "events",
	})
	require.Nil(t, cErr)
	assert.Equal(t, entities.DataSensitivityInternal, created.DataSensitivity)
	assert.Equal(t, entities.DataClassificationInternal, created.DataClassification)
	assert.Nil(t, created.Description)
	assert.Nil(t, created.UpdatedAt)
	assert.Equal(t, fixed.UTC().Truncate(time.Millisecond), created.CreatedAt)
}

func TestCreateDatasetValidation(t *testing.T) {
	t.Parallel()

	service, _ := newTestService(t, config.SelfDependencyAllow)

	scenarios := []struct {
		name  string
		input *entities.CreateDataset
	}{
		{"empty name", &entities.CreateDataset{}},
		{"long name", &entities.CreateDataset{Name: strings.Repeat("x", 256)}},
		{"unknown sensitivity", &entities.CreateDataset{Name: "a", DataSensitivity: "secret"}},
		{"unknown classification", &entities.CreateDataset{Name: "a", DataClassification: "secret"}},
		{"negative record count", &entities.CreateDataset{Name: "a", RecordCount: utils.PtrTo(int64(-5))}},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			_, cErr := service.CreateDataset(context.Background(), scenario.input)
			require.NotNil(t, cErr)
			assert.True(t, contract.IsValidation(cErr))
		})
	}

	_, cErr := service.CreateDataset(context.Background(), &entities.CreateDataset{Name: strings.Repeat("x", 255)})
	require.Nil(t, cErr)
}

func TestFreeTextIsStoredAsSent(t *testing.T) {
	t.Parallel()

	service, database := newTestService(t, config.SelfDependencyAllow)
	ctx := context.Background()

	dataset, cErr := service.CreateDataset(ctx, &entities.CreateDataset{
		Name:         " ",
		Description:  utils.PtrTo(""),
		SourceSystem: utils.PtrTo("  warehouse  "),
		Location:     utils.PtrTo("\t"),
	})
	require.Nil(t, cErr)
	assert.Equal(t, " ", dataset.Name)
	assert.Equal(t, utils.PtrTo(""), dataset.Description)
	assert.Equal(t, utils.PtrTo("  warehouse  "), dataset.SourceSystem)
	assert.Equal(t, utils.PtrTo("\t"), dataset.Location)

	fetched, cErr := service.GetDataset(ctx, &entities.GetDataset{DatasetID: dataset.ID})
	require.Nil(t, cErr)
	assert.Equal(t, dataset, fetched)

	parentID := sqltest.CreateModel(t, database, "base")
	childID := sqltest.CreateModel(t, database, "tuned")

	link, cErr := service.LinkDatasetToModel(ctx, &entities.LinkDatasetToModel{
		ModelID:   childID,
		DatasetID: dataset.ID,
		Notes:     utils.PtrTo(" "),
	})
	require.Nil(t, cErr)
	assert.Equal(t, utils.PtrTo(" "), link.Notes)

	dependency, cErr := service.CreateDependency(ctx, &entities.CreateDependency{
		ChildModelID:  childID,
		ParentModelID: parentID,
		Notes:         utils.PtrTo(""),
	})
	require.Nil(t, cErr)
	assert.Equal(t, utils.PtrTo(""), dependency.Notes)

	lineage, cErr := service.GetLineage(ctx, &entities.GetLineage{ModelID: childID})
	require.Nil(t, cErr)
	require.Len(t, lineage.Datasets, 1)
	require.Len(t, lineage.ParentModels, 1)
	assert.Equal(t, utils.PtrTo(" "), lineage.Datasets[0].Notes)
	assert.Equal(t, utils.PtrTo(""), lineage.ParentModels[0].Notes)
}

func TestGovernanceVocabulariesAreAccepted(t *testing.T) {
	t.Parallel()

	service, _ := newTestService(t, config.SelfDependencyAllow)

	for _, sensitivity := range entities.DataSensitivityValues() {
		for _, classification := range entities.DataClassificationValues() {
			created, cErr := service.CreateDataset(context.Background(), &entities.CreateDataset{
				Name:               string(sensitivity) + "-" + string(classification),
				DataSensitivity:    sensitivity,
				DataClassification: classification,
			})
			require.Nil(t, cErr)
			assert.Equal(t, sensitivity, created.DataSensitivity)
			assert.Equal(t, classification, created.DataClassification)
		}
	}
}

func TestListDatasetsBySensitivity(t *testing.T) {
	t.Parallel()

	service, _ := newTestService(t, config.SelfDependencyAllow)
	ctx := context.Background()

	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	service.now = func() time.Time {
		clock = clock.Add(time.Second)

		return clock
	}

	for _, input := range []*entities.CreateDataset{
		{Name: "old-pii", DataSensitivity: entities.DataSensitivityPII},
		{Name: "public", DataSensitivity: entities.DataSensitivityPublic},
		{Name: "new-pii", DataSensitivity: entities.DataSensitivityPII},
	} {
		_, cErr := service.CreateDataset(ctx, input)
		require.Nil(t, cErr)
	}

	response, cErr := service.ListDatasets(ctx, &entities.ListDatasets{DataSensitivity: entities.DataSensitivityPII})
	require.Nil(t, cErr)
	require.Len(t, response.Datasets, 2)
	assert.Equal(t, "new-pii", response.Datasets[0].Name)
	assert.Equal(t, "old-pii", response.Datasets[1].Name)

	_, cErr = service.ListDatasets(ctx, &entities.ListDatasets{DataSensitivity: "secret"})
	require.NotNil(t, cErr)
	assert.True(t, contract.IsValidation(cErr))

	response, cErr = service.ListDatasets(ctx, &entities.ListDatasets{MaxResults: utils.PtrTo(2)})
	require.Nil(t, cErr)
	assert.Len(t, response.Datasets, 2)
	require.NotNil(t, response.NextPageToken)

	response, cErr = service.ListDatasets(ctx, &entities.ListDatasets{
		MaxResults: utils.PtrTo(2),
		PageToken:  *response.NextPageToken,
	})
	require.Nil(t, cErr)
	require.Len(t, response.Datasets, 1)
	assert.Equal(t, "old-pii", response.Datasets[0].Name)
	assert.Nil(t, response.NextPageToken)
}

func TestLinkDatasetToModel(t *testing.T) {
	t.Parallel()

	service, database := newTestService(t, config.SelfDependencyAllow)
	ctx := context.Background()

	modelID := sqltest.CreateModel(t, database, "churn")
	dataset, cErr := service.CreateDataset(ctx, &entities.CreateDataset{Name: "events"})
	require.Nil(t, cErr)

	_, cErr = service.LinkDatasetToModel(ctx, &entities.LinkDatasetToModel{ModelID: modelID + 100, DatasetID: dataset.ID})
	require.NotNil(t, cErr)
	assert.True(t, contract.IsNotFound(cErr))
	assert.Equal(t, "model", cErr.Resource)

	_, cErr = service.LinkDatasetToModel(ctx, &entities.LinkDatasetToModel{ModelID: modelID, DatasetID: dataset.ID + 100})
	require.NotNil(t, cErr)
	assert.True(t, contract.IsNotFound(cErr))
	assert.Equal(t, "dataset", cErr.Resource)

	_, cErr = service.LinkDatasetToModel(ctx, &entities.LinkDatasetToModel{
		ModelID: modelID, DatasetID: dataset.ID, DatasetType: "holdout",
	})
	require.NotNil(t, cErr)
	assert.True(t, contract.IsValidation(cErr))

	link, cErr := service.LinkDatasetToModel(ctx, &entities.LinkDatasetToModel{
		ModelID:   modelID,
		DatasetID: dataset.ID,
		Notes:     utils.PtrTo("baseline"),
	})
	require.Nil(t, cErr)
	assert.Equal(t, entities.DatasetTypeTraining, link.DatasetType)
	assert.Equal(t, utils.PtrTo("baseline"), link.Notes)

	links, cErr := service.GetModelDatasets(ctx, &entities.GetModelDatasets{ModelID: modelID})
	require.Nil(t, cErr)
	assert.Equal(t, []*entities.ModelDatasetLink{link}, links)
}

func TestLineageViewsAreInverses(t *testing.T) {
	t.Parallel()

	service, database := newTestService(t, config.SelfDependencyAllow)
	ctx := context.Background()

	parentID := sqltest.CreateModel(t, database, "base")
	childID := sqltest.CreateModel(t, database, "tuned")

	dependency, cErr := service.CreateDependency(ctx, &entities.CreateDependency{
		ChildModelID:  childID,
		ParentModelID: parentID,
	})
	require.Nil(t, cErr)
	assert.Equal(t, entities.DependencyTypeDerivedFrom, dependency.DependencyType)

	childLineage, cErr := service.GetLineage(ctx, &entities.GetLineage{ModelID: childID})
	require.Nil(t, cErr)
	require.Len(t, childLineage.ParentModels, 1)
	assert.Equal(t, parentID, childLineage.ParentModels[0].ParentModelID)
	assert.Empty(t, childLineage.ChildModels)
	assert.Empty(t, childLineage.Datasets)

	parentLineage, cErr := service.GetLineage(ctx, &entities.GetLineage{ModelID: parentID})
	require.Nil(t, cErr)
	require.Len(t, parentLineage.ChildModels, 1)
	assert.Equal(t, childID, parentLineage.ChildModels[0].ChildModelID)
	assert.Empty(t, parentLineage.ParentModels)

	assert.Equal(t, childLineage.ParentModels, parentLineage.ChildModels)

	_, cErr = service.GetLineage(ctx, &entities.GetLineage{ModelID: childID + 100})
	require.NotNil(t, cErr)
	assert.True(t, contract.IsNotFound(cErr))
	assert.Equal(t, "model", cErr.Resource)
}

func TestCreateDependencyMissingModels(t *testing.T) {
	t.Parallel()

	service, database := newTestService(t, config.SelfDependencyAllow)
	ctx := context.Background()

	modelID := sqltest.CreateModel(t, database, "base")

	_, cErr := service.CreateDependency(ctx, &entities.CreateDependency{ChildModelID: modelID, ParentModelID: 999})
	require.NotNil(t, cErr)
	assert.Equal(t, "parent_model", cErr.Resource)

	_, cErr = service.CreateDependency(ctx, &entities.CreateDependency{ChildModelID: 999, ParentModelID: modelID})
	require.NotNil(t, cErr)
	assert.Equal(t, "model", cErr.Resource)
}

func TestSelfDependencyAllowed(t *testing.T) {
	t.Parallel()

	service, database := newTestService(t, config.SelfDependencyAllow)
	ctx := context.Background()

	modelID := sqltest.CreateModel(t, database, "loop")

	dependency, cErr := service.CreateDependency(ctx, &entities.CreateDependency{
		ChildModelID:  modelID,
		ParentModelID: modelID,
	})
	require.Nil(t, cErr)
	assert.Equal(t, dependency.ParentModelID, dependency.ChildModelID)

	lineage, cErr := service.GetLineage(ctx, &entities.GetLineage{ModelID: modelID})
	require.Nil(t, cErr)
	assert.Equal(t, []*entities.ModelDependency{dependency}, lineage.ParentModels)
	assert.Equal(t, []*entities.ModelDependency{dependency}, lineage.ChildModels)
}

func TestSelfDependencyRejected(t *testing.T) {
	t.Parallel()

	service, database := newTestService(t, config.SelfDependencyReject)
	ctx := context.Background()

	modelID := sqltest.CreateModel(t, database, "loop")

	_, cErr := service.CreateDependency(ctx, &entities.CreateDependency{
		ChildModelID:  modelID,
		ParentModelID: modelID,
	})
	require.NotNil(t, cErr)
	assert.True(t, contract.IsValidation(cErr))

	lineage, cErr := service.GetLineage(ctx, &entities.GetLineage{ModelID: modelID})
	require.Nil(t, cErr)
	assert.Empty(t, lineage.ParentModels)
}

func TestSelfDependencyBetweenVersions(t *testing.T) {
	t.Parallel()

	service, database := newTestService(t, config.SelfDependencyRejectSameVersion)
	ctx := context.Background()

	modelID := sqltest.CreateModel(t, database, "loop")
	v1 := sqltest.CreateModelVersion(t, database, modelID, "v1")
	v2 := sqltest.CreateModelVersion(t, database, modelID, "v2")

	_, cErr := service.CreateDependency(ctx, &entities.CreateDependency{
		ChildModelID:    modelID,
		ParentModelID:   modelID,
		ParentVersionID: &v1,
		ChildVersionID:  &v1,
	})
	require.NotNil(t, cErr)
	assert.True(t, contract.IsValidation(cErr))

	dependency, cErr := service.CreateDependency(ctx, &entities.CreateDependency{
		ChildModelID:    modelID,
		ParentModelID:   modelID,
		ParentVersionID: &v1,
		ChildVersionID:  &v2,
		DependencyType:  entities.DependencyTypeFineTunedFrom,
	})
	require.Nil(t, cErr)
	assert.Equal(t, &v1, dependency.ParentVersionID)
	assert.Equal(t, &v2, dependency.ChildVersionID)
}

func TestTraverseLineage(t *testing.T) {
	t.Parallel()

	service, database := newTestService(t, config.SelfDependencyAllow)
	ctx := context.Background()

	a := sqltest.CreateModel(t, database, "a")
	b := sqltest.CreateModel(t, database, "b")
	c := sqltest.CreateModel(t, database, "c")

	// a -> b -> c -> a
	for _, pair := range [][2]int64{{a, b}, {b, c}, {c, a}} {
		_, cErr := service.CreateDependency(ctx, &entities.CreateDependency{ParentModelID: pair[0], ChildModelID: pair[1]})
		require.Nil(t, cErr)
	}

	graph, cErr := service.TraverseLineage(ctx, &entities.TraverseLineage{ModelID: c})
	require.Nil(t, cErr)
	assert.Equal(t, entities.DirectionUpstream, graph.Direction)
	assert.ElementsMatch(t, []int64{a, b}, graph.ModelIDs)
	assert.Len(t, graph.Edges, 3)

	graph, cErr = service.TraverseLineage(ctx, &entities.TraverseLineage{
		ModelID: a, Direction: entities.DirectionDownstream, MaxDepth: 1,
	})
	require.Nil(t, cErr)
	assert.Equal(t, []int64{b}, graph.ModelIDs)

	_, cErr = service.TraverseLineage(ctx, &entities.TraverseLineage{ModelID: a, Direction: "sideways"})
	require.NotNil(t, cErr)
	assert.True(t, contract.IsValidation(cErr))

	_, cErr = service.TraverseLineage(ctx, &entities.TraverseLineage{ModelID: 999})
	require.NotNil(t, cErr)
	assert.True(t, contract.IsNotFound(cErr))
}

func TestTraverseLineageDepthCap(t *testing.T) {
	t.Parallel()

	service, database := newTestService(t, config.SelfDependencyAllow)
	service.config.Lineage.MaxTraversalDepth = 1
	ctx := context.Background()

	a := sqltest.CreateModel(t, database, "a")
	b := sqltest.CreateModel(t, database, "b")
	c := sqltest.CreateModel(t, database, "c")

	for _, pair := range [][2]int64{{a, b}, {b, c}} {
		_, cErr := service.CreateDependency(ctx, &entities.CreateDependency{ParentModelID: pair[0], ChildModelID: pair[1]})
		require.Nil(t, cErr)
	}

	graph, cErr := service.TraverseLineage(ctx, &entities.TraverseLineage{ModelID: c, MaxDepth: 5})
	require.Nil(t, cErr)
	assert.Equal(t, 1, graph.MaxDepth)
	assert.Equal(t, []int64{b}, graph.ModelIDs)
}

func TestEndToEndTrainingLineage(t *testing.T) {
	t.Parallel()

	service, database := newTestService(t, config.SelfDependencyAllow)
	ctx := context.Background()

	dataset, cErr := service.CreateDataset(ctx, &entities.CreateDataset{
		Name:               "Training Data v1",
		DataSensitivity:    entities.DataSensitivityPII,
		DataClassification: entities.DataClassificationConfidential,
	})
	require.Nil(t, cErr)

	modelID := sqltest.CreateModel(t, database, "credit-risk")
	require.Equal(t, int64(1), modelID)

	_, cErr = service.LinkDatasetToModel(ctx, &entities.LinkDatasetToModel{
		ModelID:     modelID,
		DatasetID:   dataset.ID,
		DatasetType: entities.DatasetTypeTraining,
	})
	require.Nil(t, cErr)

	lineage, cErr := service.GetLineage(ctx, &entities.GetLineage{ModelID: modelID})
	require.Nil(t, cErr)
	require.Len(t, lineage.Datasets, 1)
	assert.Equal(t, entities.DatasetTypeTraining, lineage.Datasets[0].DatasetType)
	assert.Equal(t, dataset.ID, lineage.Datasets[0].DatasetID)
	assert.Empty(t, lineage.ParentModels)
	assert.Empty(t, lineage.ChildModels)
}
