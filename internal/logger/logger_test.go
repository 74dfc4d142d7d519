package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFiltersBelowLevel(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	log, err := New("warn", &out)
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("status channel unavailable")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "status channel unavailable")
	assert.Contains(t, out.String(), "WARN")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New("chatty", &bytes.Buffer{})
	require.Error(t, err)
}

func TestSyncOnBuffer(t *testing.T) {
	t.Parallel()

	log, err := New("error", &bytes.Buffer{})
	require.NoError(t, err)
	assert.NoError(t, Sync(log))
}
