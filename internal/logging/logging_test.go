package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "selectui.log")
	l := New(Config{Path: path, MaxSizeMB: 1, MaxBackups: 1})

	l.Logf("navigate page=%s", "form")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "navigate page=form")
}

func TestLogger_DisabledAndNil(t *testing.T) {
	l := New(Config{})
	assert.NotPanics(t, func() { l.Logf("dropped %d", 1) })
	assert.NoError(t, l.Close())

	var nilLogger *Logger
	assert.NotPanics(t, func() { nilLogger.Logf("dropped") })
	assert.NoError(t, nilLogger.Close())
}
