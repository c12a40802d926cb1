// Package sqltest provides an in-memory SQLite lineage store for tests.
package sqltest

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aigovhub/lineage/pkg/config"
	"github.com/aigovhub/lineage/pkg/store/sql"
	"github.com/aigovhub/lineage/pkg/store/sql/model"
	"github.com/aigovhub/lineage/pkg/utils"
)

func NewConfig() *config.Config {
	return &config.Config{
		Address:     "localhost:0",
		LogLevel:    "error",
		StoreURL:    "sqlite:///:memory:",
		AutoMigrate: true,
		Version:     "test",
		Lineage: config.LineageConfig{
			SelfDependency: config.SelfDependencyAllow,
		},
	}
}

func NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.ErrorLevel)

	return logger
}

// NewStore returns a migrated store backed by a private in-memory database along with
// its gorm handle, which tests use to seed registry-owned rows.
func NewStore(t *testing.T, cfg *config.Config) (*sql.Store, *gorm.DB) {
	t.Helper()

	logger := NewLogger()

	database, err := sql.NewDatabase(logger, cfg)
	require.NoError(t, err)
	require.NoError(t, sql.Migrate(database))

	lineageStore := sql.NewSQLStoreWithDB(logger, cfg, database)
	t.Cleanup(func() {
		_ = lineageStore.Close()
	})

	return lineageStore, database
}

// CreateModel inserts a registered model the way the model registry would.
func CreateModel(t *testing.T, database *gorm.DB, name string) int64 {
	t.Helper()

	registeredModel := model.RegisteredModel{
		Name:         name,
		CreationTime: utils.PtrTo(time.Now().UnixMilli()),
	}
	require.NoError(t, database.Create(&registeredModel).Error)

	return *registeredModel.ID
}

// CreateModelVersion inserts a version of an existing registered model.
func CreateModelVersion(t *testing.T, database *gorm.DB, modelID int64, tag string) int64 {
	t.Helper()

	version := model.ModelVersion{
		ModelID:      modelID,
		VersionTag:   tag,
		CreationTime: utils.PtrTo(time.Now().UnixMilli()),
	}
	require.NoError(t, database.Create(&version).Error)

	return *version.ID
}
