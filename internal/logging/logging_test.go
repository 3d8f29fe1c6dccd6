package logging

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initTemp logs into a temp dir and restores the previous default logger
func initTemp(t *testing.T) string {
	t.Helper()

	prev := slog.Default()
	dir := filepath.Join(t.TempDir(), "logs")
	closer, err := InitAt(dir)
	require.NoError(t, err)
	t.Cleanup(func() {
		slog.SetDefault(prev)
		closer.Close()
	})

	return filepath.Join(dir, fileName)
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestInitAt_WritesToFile(t *testing.T) {
	t.Setenv(LevelEnv, "")
	path := initTemp(t)
	require.NotNil(t, Logger)

	slog.Debug("table synced", "tank", "Tank A")

	out := readLog(t, path)
	assert.Contains(t, out, "table synced")
	assert.Contains(t, out, `tank="Tank A"`)
}

func TestInitAt_StandardLogGoesToFile(t *testing.T) {
	t.Setenv(LevelEnv, "")
	path := initTemp(t)

	log.Print("from the log package")

	assert.Contains(t, readLog(t, path), "from the log package")
}

// TestInitAt_LevelFromEnv ensures records below the configured level are dropped.
func TestInitAt_LevelFromEnv(t *testing.T) {
	t.Setenv(LevelEnv, "warn")
	path := initTemp(t)

	slog.Info("app initialized")
	slog.Warn("failed to copy report")

	out := readLog(t, path)
	assert.NotContains(t, out, "app initialized")
	assert.Contains(t, out, "failed to copy report")
}

// TestLevelFromEnv_Invalid falls back to debug.
// Edge case: Typo in the environment variable.
func TestLevelFromEnv_Invalid(t *testing.T) {
	t.Setenv(LevelEnv, "loud")

	assert.Equal(t, slog.LevelDebug, levelFromEnv())
}

func TestInitAt_UnwritableDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := InitAt(filepath.Join(file, "logs"))

	assert.Error(t, err)
}
