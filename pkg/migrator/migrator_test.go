package migrator

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestRun_UnknownCommand(t *testing.T) {
	m := New(nil, fstest.MapFS{}, nopLogger{})

	err := m.Run(context.Background(), "redo-everything")
	assert.ErrorIs(t, err, ErrUnknownCommand)
}
