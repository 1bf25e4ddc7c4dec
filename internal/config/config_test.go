package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setCredentials(t *testing.T) {
	t.Helper()
	t.Setenv("VTEX_ACCOUNT_NAME", "mystore")
	t.Setenv("VTEX_APP_KEY", "vtexappkey-mystore-ABCDEF")
	t.Setenv("VTEX_APP_TOKEN", "secret-token")
	t.Setenv("VTEX_ENVIRONMENT", "")
	t.Setenv("VTEX_INCLUDE_DETAILS", "")
	t.Setenv("OUTPUT_DIR", "")
}

func TestLoadDefaults(t *testing.T) {
	setCredentials(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "mystore", cfg.AccountName)
	assert.Equal(t, "vtexcommercestable", cfg.Environment)
	assert.Equal(t, "output", cfg.OutputDir)
	assert.False(t, cfg.IncludeDetails)
	assert.Equal(t, "https://mystore.vtexcommercestable.com.br", cfg.BaseURL())
}

func TestLoadOverrides(t *testing.T) {
	setCredentials(t)
	t.Setenv("VTEX_ENVIRONMENT", "myvtex")
	t.Setenv("VTEX_INCLUDE_DETAILS", "true")
	t.Setenv("OUTPUT_DIR", "exports")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "https://mystore.myvtex.com.br", cfg.BaseURL())
	assert.True(t, cfg.IncludeDetails)
	assert.Equal(t, "exports", cfg.OutputDir)
}

func TestLoadReportsMissingVariables(t *testing.T) {
	setCredentials(t)
	t.Setenv("VTEX_APP_KEY", "")
	t.Setenv("VTEX_APP_TOKEN", "")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "VTEX_APP_KEY")
	assert.Contains(t, err.Error(), "VTEX_APP_TOKEN")
	assert.NotContains(t, err.Error(), "VTEX_ACCOUNT_NAME")
}
