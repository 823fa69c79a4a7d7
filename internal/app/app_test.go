package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "user-query-service/internal/domain/user"
)

func writeConfig(t *testing.T, logPath, format, extra string) string {
	t.Helper()
	dir := t.TempDir()
	content := "APP_ENV=test\nLOG_FORMAT=" + format + "\nLOG_LEVEL=debug\nLOG_OUTPUT_PATH=" + logPath + "\n" + extra
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o600))
	return dir
}

func TestNewWithConfigPath_WiresService(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "app.log")
	dir := writeConfig(t, logPath, "json", "")

	a, err := NewWithConfigPath(dir)
	require.NoError(t, err)
	require.NotNil(t, a.Users)

	u, err := domain.NewUser("John", "Doe", 30, domain.PrivilegeUpdate)
	require.NoError(t, err)

	found, ok := a.Users.FirstUpdateEligible([]domain.User{u}, 18)
	assert.True(t, ok)
	assert.Equal(t, u, found)

	require.NoError(t, a.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "user query service ready")
	assert.Contains(t, string(data), "update eligible lookup")
	assert.Contains(t, string(data), `"logger":"users"`)
}

func TestNew_UsesConfigPathEnv(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "env.log")
	t.Setenv("CONFIG_PATH", writeConfig(t, logPath, "json", "SERVICE_NAME=from-env-path\n"))

	a, err := New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	assert.Equal(t, "from-env-path", a.Config.Logger.ServiceName)
}

func TestNewWithConfigPath_InvalidConfig(t *testing.T) {
	dir := writeConfig(t, filepath.Join(t.TempDir(), "bad.log"), "xml", "")

	a, err := NewWithConfigPath(dir)

	require.Error(t, err)
	assert.Nil(t, a)
	assert.Contains(t, err.Error(), "config validation failed")
	assert.Contains(t, err.Error(), "Config.Logger.Format")
}

func TestClose_NilLogger(t *testing.T) {
	assert.NoError(t, (&App{}).Close())
}
