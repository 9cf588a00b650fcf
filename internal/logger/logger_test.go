package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tgienger/dgboard/internal/config"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "dgboard.log")

	log, err := New(config.LoggingConfig{File: path, Level: "info"})
	require.NoError(t, err)
	log.Info("saving tasks failed")
	log.Debug("hidden at info level")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "saving tasks failed")
	assert.NotContains(t, string(data), "hidden at info level")
}

func TestNew_DevelopmentUsesConsoleEncoding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dev.log")

	log, err := New(config.LoggingConfig{File: path, Development: true})
	require.NoError(t, err)
	log.Debug("task created")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "DEBUG")
	assert.Contains(t, string(data), "task created")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(config.LoggingConfig{File: filepath.Join(t.TempDir(), "x.log"), Level: "loud"})
	assert.Error(t, err)
}

func TestNew_NoFileIsNop(t *testing.T) {
	log, err := New(config.LoggingConfig{})
	require.NoError(t, err)
	assert.NotNil(t, log)
}
