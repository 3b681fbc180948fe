package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithWriter(&buf, "warn")
	require.NoError(t, err)

	l.Info("booking id=%d created", 1)
	assert.Empty(t, buf.String())

	l.Warn("slot %s taken", "08:00 - 09:00")
	assert.Contains(t, buf.String(), "slot 08:00 - 09:00 taken")
}

func TestLogger_UnknownLevel(t *testing.T) {
	_, err := NewWithWriter(&bytes.Buffer{}, "verbose")
	assert.Error(t, err)
}

func TestLogger_CloseWithoutFile(t *testing.T) {
	l, err := New("", "info")
	require.NoError(t, err)
	assert.NoError(t, l.Close())
}
