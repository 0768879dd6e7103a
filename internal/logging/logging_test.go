package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitializeWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.log")
	t.Cleanup(Close)

	require.NoError(t, Initialize(Config{Level: "debug", Format: "json", Output: path}))
	Info("calculation finished", zap.String("target", "annuity_payment"))
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"calculation finished"`)
	assert.Contains(t, string(data), `"target":"annuity_payment"`)

	// после Close глобальный логгер ничего не пишет
	Info("after close")
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "after close")
}

func TestInitializeSwitchesOutput(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")
	t.Cleanup(Close)

	require.NoError(t, Initialize(Config{Level: "info", Format: "json", Output: first}))
	Info("to first")
	require.NoError(t, Initialize(Config{Level: "info", Format: "json", Output: second}))
	Info("to second")
	Close()

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to first")
	assert.NotContains(t, string(data), "to second")

	data, err = os.ReadFile(second)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to second")
}

func TestNewFallsBackToInfoLevel(t *testing.T) {
	logger, closeFn, err := New(Config{Level: "loud", Format: "console", Output: "stderr"})
	require.NoError(t, err)
	defer closeFn()

	assert.False(t, logger.Core().Enabled(zap.DebugLevel))
	assert.True(t, logger.Core().Enabled(zap.InfoLevel))
}

func TestNewRejectsUnwritableOutput(t *testing.T) {
	_, _, err := New(Config{Output: filepath.Join(t.TempDir(), "missing", "calc.log")})
	assert.Error(t, err)
}
