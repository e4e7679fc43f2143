package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCPrintDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		CPrint(INFO, "test message")
		CPrint(TRACE, "with fields", LogFormat{"key": "value", "n": 1})
	})
}

func TestSetLevel(t *testing.T) {
	SetLevel(WARN)
	defer SetLevel(INFO)
	assert.Equal(t, "warning", logger.GetLevel().String())
}

func TestEnableFileRotationIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, EnableFileRotation(dir))
	require.NoError(t, EnableFileRotation(dir))

	CPrint(INFO, "rotated message")

	_, err := os.Stat(filepath.Join(dir, "bsa.log"))
	assert.NoError(t, err)
}
