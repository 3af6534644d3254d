package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModuleScoping(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewSlogLogger(&buf, LogLevelInfo, true)

	log.Module("poller").Info("Batch processed", Int("detections", 3))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "poller", record["module"])
	assert.Equal(t, "Batch processed", record["msg"])
	assert.Equal(t, float64(3), record["detections"])
}

func TestNestedModules(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewSlogLogger(&buf, LogLevelInfo, true)

	log.Module("vocalization").Module("cache").Info("Model loaded")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "vocalization.cache", record["module"])
}

func TestLevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewSlogLogger(&buf, LogLevelWarn, false)

	log.Debug("not logged")
	log.Info("not logged either")
	assert.Empty(t, buf.String())

	log.Warn("logged")
	assert.Contains(t, buf.String(), "logged")
}

func TestWithAccumulatesFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewSlogLogger(&buf, LogLevelInfo, true)

	scoped := log.With(String("species", "Turdus merula"))
	scoped.Info("Classified", Float64("confidence", 0.92345))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "Turdus merula", record["species"])
	// Floats are rounded to 3 decimals.
	assert.Equal(t, 0.923, record["confidence"])
}

func TestMultiLoggerFansOut(t *testing.T) {
	t.Parallel()

	var a, b bytes.Buffer
	log := NewMultiLogger(
		NewSlogLogger(&a, LogLevelInfo, false),
		NewSlogLogger(&b, LogLevelInfo, true),
	)

	log.Module("api").Info("HTTP server starting")

	assert.Contains(t, a.String(), "HTTP server starting")
	assert.Contains(t, b.String(), "HTTP server starting")
	assert.Contains(t, b.String(), `"module":"api"`)
}

func TestErrorField(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewSlogLogger(&buf, LogLevelInfo, true)

	log.Error("Open failed", Error(assert.AnError))

	out := buf.String()
	assert.True(t, strings.Contains(out, "assert.AnError"), "error value should be logged, got: %s", out)
}
