package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel(" WARN "))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
}

func TestInit_FileOutput(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Logger = prev })

	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, Init("info", "json", "file", path))

	Debug("hidden")
	Info("visible")
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"visible"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestInit_FileOutputWithoutPath(t *testing.T) {
	assert.Error(t, Init("info", "json", "file", ""))
}
