package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv_FromEnvironment(t *testing.T) {
	t.Setenv(EnvAPIBaseURL, " http://localhost:8080/api/json/v1 ")
	t.Setenv(EnvAPIKey, "abc")
	t.Setenv(EnvRequestTimeout, "7")

	env := LoadEnv(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "http://localhost:8080/api/json/v1", env.APIBaseURL)
	assert.Equal(t, "abc", env.APIKey)
	assert.Equal(t, 7, env.RequestTimeoutSeconds)
}

func TestLoadEnv_FromFile(t *testing.T) {
	t.Setenv(EnvAPIBaseURL, "")
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvRequestTimeout, "")
	os.Unsetenv(EnvAPIBaseURL)
	os.Unsetenv(EnvAPIKey)
	os.Unsetenv(EnvRequestTimeout)

	path := filepath.Join(t.TempDir(), ".env")
	content := EnvAPIKey + "=from-file\n" + EnvRequestTimeout + "=not-a-number\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	env := LoadEnv(path)

	assert.Equal(t, "from-file", env.APIKey)
	assert.Equal(t, "", env.APIBaseURL)
	assert.Equal(t, 0, env.RequestTimeoutSeconds)
}
