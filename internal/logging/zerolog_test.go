package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "debug", "json")

	log.Info(context.Background(), "hello", "user", "alice", "attempt", 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "alice", entry["user"])
	assert.Equal(t, float64(2), entry["attempt"])
}

func TestZerologLogger_LevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info", "json")

	log.Debug(context.Background(), "invisible")
	assert.Empty(t, buf.String())
}

func TestZerologLogger_With(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info", "json").With("component", "session")

	log.Error(context.Background(), "save failed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "session", entry["component"])
}

func TestZerologLogger_BadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "loud", "json")

	log.Info(context.Background(), "still works")
	assert.Contains(t, buf.String(), "still works")
}
