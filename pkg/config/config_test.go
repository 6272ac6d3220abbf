package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "secrets.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}

func TestResolveFromFlags(t *testing.T) {
	creds, err := Resolve("https://bb.example.edu/", "key-1", "secret-1", "")
	require.NoError(t, err)

	assert.Equal(t, "https://bb.example.edu", creds.Host)
	assert.Equal(t, "key-1", creds.Key)
	assert.Equal(t, "secret-1", creds.Secret)
	assert.Equal(t, 60, creds.TimeoutSeconds)
}

func TestResolveFromEnvironment(t *testing.T) {
	t.Setenv("BB_HOST", "https://bb.example.edu")
	t.Setenv("BB_KEY", "env-key")
	t.Setenv("BB_SECRET", "env-secret")

	creds, err := Resolve("", "", "", "")
	require.NoError(t, err)

	assert.Equal(t, "https://bb.example.edu", creds.Host)
	assert.Equal(t, "env-key", creds.Key)
	assert.Equal(t, "env-secret", creds.Secret)
}

func TestResolveFromFile(t *testing.T) {
	path := writeConfigFile(t, `
[blackboard]
host = "https://bb.example.edu"
key = "file-key"
secret = "file-secret"
timeout_seconds = 30
`)

	creds, err := Resolve("", "", "", path)
	require.NoError(t, err)

	assert.Equal(t, "https://bb.example.edu", creds.Host)
	assert.Equal(t, "file-key", creds.Key)
	assert.Equal(t, "file-secret", creds.Secret)
	assert.Equal(t, 30, creds.TimeoutSeconds)
}

func TestResolveTopLevelFile(t *testing.T) {
	path := writeConfigFile(t, `
host = "https://bb.example.edu"
key = "file-key"
secret = "file-secret"
`)

	creds, err := Resolve("", "", "", path)
	require.NoError(t, err)
	assert.Equal(t, "file-key", creds.Key)
}

func TestResolvePrecedence(t *testing.T) {
	path := writeConfigFile(t, `
[blackboard]
host = "https://file.example.edu"
key = "file-key"
secret = "file-secret"
`)

	t.Setenv("BB_KEY", "env-key")

	creds, err := Resolve("https://flag.example.edu", "", "", path)
	require.NoError(t, err)

	// Flags beat environment, environment beats the file.
	assert.Equal(t, "https://flag.example.edu", creds.Host)
	assert.Equal(t, "env-key", creds.Key)
	assert.Equal(t, "file-secret", creds.Secret)
}

func TestResolveMissingCredentials(t *testing.T) {
	_, err := Resolve("", "", "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing credentials")
}

func TestResolveInvalidHost(t *testing.T) {
	_, err := Resolve("not-a-url", "key", "secret", "")
	require.Error(t, err)
}

func TestResolveMissingFile(t *testing.T) {
	_, err := Resolve("", "", "", filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
