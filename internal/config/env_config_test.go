package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	config, err := NewConfiguration()
	require.NoError(t, err)

	assert.Empty(t, config.ExcludedModels())
	assert.False(t, config.Verbose())
	assert.Equal(t, "session.yaml", config.SessionFile())
	assert.Equal(t, "", config.FactURL())
	assert.Equal(t, "info", config.Level())
}

func TestValuesFromEnvironment(t *testing.T) {
	t.Setenv("EXCLUDED_MODELS", "helper,legacy")
	t.Setenv("VERBOSE_COVERAGE", "true")
	t.Setenv("SESSION_FILE", "/var/run/session.yaml")
	t.Setenv("FACT_URL", "http://sink.example.com/facts")
	t.Setenv("LOG_LEVEL", "debug")

	config, err := NewConfiguration()
	require.NoError(t, err)

	assert.Equal(t, []string{"helper", "legacy"}, config.ExcludedModels())
	assert.True(t, config.Verbose())
	assert.Equal(t, "/var/run/session.yaml", config.SessionFile())
	assert.Equal(t, "http://sink.example.com/facts", config.FactURL())
	assert.Equal(t, "debug", config.Level())
}

func TestInvalidEnvironmentIsRejected(t *testing.T) {
	t.Setenv("VERBOSE_COVERAGE", "snafu")

	_, err := NewConfiguration()
	assert.Error(t, err)
}

func TestExcludedModelsWithBlanksIsRejected(t *testing.T) {
	t.Setenv("EXCLUDED_MODELS", "helper, legacy")

	_, err := NewConfiguration()
	assert.Error(t, err)
}
