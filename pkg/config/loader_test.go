package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aigovhub/lineage/pkg/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "lineage.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "localhost:5000", cfg.Address)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "sqlite://lineage.db", cfg.StoreURL)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, time.Minute, cfg.ShutdownTimeout.Duration)
	assert.Equal(t, 200*time.Millisecond, cfg.SlowThreshold.Duration)
	assert.Equal(t, config.SelfDependencyAllow, cfg.Lineage.SelfDependency)
	assert.Zero(t, cfg.Lineage.MaxTraversalDepth)
}

func TestLoadPrecedence(t *testing.T) {
	path := writeConfig(t, `
address: 0.0.0.0:8080
store_url: postgres://lineage@db/lineage
shutdown_timeout: 5s
lineage:
  self_dependency: reject
  max_traversal_depth: 4
`)

	t.Setenv("LINEAGE_LOG_LEVEL", "debug")
	t.Setenv("LINEAGE_LINEAGE__MAX_TRAVERSAL_DEPTH", "8")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("store-url", "", "")
	flags.String("address", "", "")
	require.NoError(t, flags.Parse([]string{"--store-url", "sqlite:///:memory:"}))

	cfg, err := config.Load(path, flags)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Address)
	assert.Equal(t, "sqlite:///:memory:", cfg.StoreURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout.Duration)
	assert.Equal(t, config.SelfDependencyReject, cfg.Lineage.SelfDependency)
	assert.Equal(t, 8, cfg.Lineage.MaxTraversalDepth)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	scenarios := []struct {
		name    string
		content string
	}{
		{
			name:    "unknown self dependency policy",
			content: "lineage:\n  self_dependency: sometimes\n",
		},
		{
			name:    "negative traversal depth",
			content: "lineage:\n  max_traversal_depth: -1\n",
		},
		{
			name:    "empty store url",
			content: "store_url: \"\"\n",
		},
		{
			name:    "bad duration",
			content: "shutdown_timeout: soon\n",
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, scenario.content), nil)
			require.Error(t, err)
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
}

func TestDurationUnmarshalJSON(t *testing.T) {
	var d config.Duration

	require.NoError(t, d.UnmarshalJSON([]byte(`"90s"`)))
	assert.Equal(t, 90*time.Second, d.Duration)

	require.NoError(t, d.UnmarshalJSON([]byte(`1000`)))
	assert.Equal(t, time.Microsecond, d.Duration)

	require.Error(t, d.UnmarshalJSON([]byte(`true`)))
}
