package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNewWritesLevelTaggedLines confirms the console format is "[LEVEL] message".
func TestNewWritesLevelTaggedLines(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(false, &buf)

	logger.Info("Updating White Source")
	logger.Errorf("Missing %s", "API key")
	_ = logger.Sync()

	assert.Equal(t, "[INFO] Updating White Source\n[ERROR] Missing API key\n", buf.String())
}

// TestNewSuppressesDebugUnlessEnabled ensures DEBUG lines follow the debug flag.
func TestNewSuppressesDebugUnlessEnabled(t *testing.T) {
	t.Parallel()

	var quiet bytes.Buffer
	New(false, &quiet).Debug("Found dependency g:a:1")
	assert.Empty(t, quiet.String())

	var verbose bytes.Buffer
	New(true, &verbose).Debug("Found dependency g:a:1")
	assert.Equal(t, "[DEBUG] Found dependency g:a:1\n", verbose.String())
}

func TestNop(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { Nop().Info("discarded") })
}
