package errors

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderBasics(t *testing.T) {
	t.Parallel()

	err := Newf("model %s is corrupt", "Turdus_merula").
		Component("vocalization").
		Category(CategoryModelLoad).
		Context("model_path", "/models/Turdus_merula.tflite").
		Build()

	assert.Equal(t, "model Turdus_merula is corrupt", err.Error())
	assert.Equal(t, "vocalization", err.Component)
	assert.Equal(t, CategoryModelLoad, err.Category)
	assert.Equal(t, "/models/Turdus_merula.tflite", err.GetContext()["model_path"])
	assert.False(t, err.Timestamp.IsZero())
}

func TestBuilderDefaults(t *testing.T) {
	t.Parallel()

	err := Newf("something broke").Build()
	assert.Equal(t, CategoryGeneric, err.Category)
	assert.Equal(t, ComponentUnknown, err.Component)
	assert.NotNil(t, err.GetContext())
}

func TestBuilderWrapsError(t *testing.T) {
	t.Parallel()

	inner := fmt.Errorf("disk full")
	err := New(inner).Category(CategoryFileIO).Build()

	assert.True(t, Is(err, inner))

	var ee *EnhancedError
	require.True(t, As(err, &ee))
	assert.Equal(t, CategoryFileIO, ee.Category)
}

func TestBuildPreservesInnerMetadata(t *testing.T) {
	t.Parallel()

	inner := Newf("tensor allocation failed").
		Component("vocalization").
		Category(CategoryModelLoad).
		Context("model_path", "/models/a.tflite").
		Build()

	// Re-wrapping without overrides keeps the inner classification.
	outer := New(fmt.Errorf("loading model: %w", inner)).Build()
	assert.Equal(t, CategoryModelLoad, outer.Category)
	assert.Equal(t, "vocalization", outer.Component)
	assert.Equal(t, "/models/a.tflite", outer.GetContext()["model_path"])

	// Explicit overrides win.
	replaced := New(fmt.Errorf("poll failed: %w", inner)).
		Component("poller").
		Category(CategoryDatabase).
		Build()
	assert.Equal(t, CategoryDatabase, replaced.Category)
	assert.Equal(t, "poller", replaced.Component)
}

func TestHasCategory(t *testing.T) {
	t.Parallel()

	err := Newf("no model").Category(CategoryModelNotFound).Build()
	assert.True(t, HasCategory(err, CategoryModelNotFound))
	assert.False(t, HasCategory(err, CategoryInference))

	wrapped := fmt.Errorf("outer: %w", err)
	assert.True(t, HasCategory(wrapped, CategoryModelNotFound))

	assert.False(t, HasCategory(fmt.Errorf("plain"), CategoryModelNotFound))
	assert.False(t, HasCategory(nil, CategoryModelNotFound))
}

func TestTimingContext(t *testing.T) {
	t.Parallel()

	err := Newf("slow").Timing("model-load", 1500*time.Millisecond).Build()
	ctx := err.GetContext()
	assert.Equal(t, "model-load", ctx["operation"])
	assert.Equal(t, int64(1500), ctx["duration_ms"])
}
