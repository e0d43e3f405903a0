package pkg

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewLogger(&buf, "TEST", "warn")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "lines", 4)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "TEST")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "lines=4")
}

func TestNewLoggerBadLevel(t *testing.T) {
	_, err := NewLogger(&bytes.Buffer{}, "", "loud")
	assert.Error(t, err)
}

func TestInitLog(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "log")

	logger, closer, err := InitLog(dest, "TETTERM", "")
	require.NoError(t, err)

	logger.Info("started")
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(b), "started")

	_, _, err = InitLog(filepath.Join(dest, "nested"), "", "")
	assert.Error(t, err)
}
