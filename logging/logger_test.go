package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Config{Level: "chatty"})

	assert.ErrorContains(t, err, `log level "chatty"`)
}

func TestNewWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "desk.log")
	l, err := New(Config{Level: "info", OutputPaths: []string{path}})
	require.NoError(t, err)

	l.Component("space").Debug("dropped")
	l.Component("space").Info("window added")
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "space", entry["logger"])
	assert.Equal(t, "window added", entry["msg"])
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Info("nothing")
	assert.NotNil(t, l.Component("x"))
}
