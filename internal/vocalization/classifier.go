package vocalization

import (
	"time"

	"github.com/tphakala/vocalization-go/internal/conf"
	"github.com/tphakala/vocalization-go/internal/errors"
	"github.com/tphakala/vocalization-go/internal/logger"
	"github.com/tphakala/vocalization-go/internal/observability"
)

// Result is a completed classification of one audio clip.
type Result struct {
	Category        string             `json:"category"`
	CategoryDisplay string             `json:"category_display"`
	Confidence      float64            `json:"confidence"`
	Model           string             `json:"model"`
	Probabilities   map[string]float64 `json:"probabilities"`
}

// Classifier ties together name resolution, model caching, feature
// extraction and inference. Classify is not safe for concurrent use; the
// interpreter tensors are shared state.
type Classifier struct {
	resolver  *NameResolver
	cache     *ModelCache
	extractor *FeatureExtractor
	metrics   *observability.Metrics
	language  string
	log       logger.Logger
}

// New creates a classifier over the configured model directory.
func New(settings *conf.Settings, metrics *observability.Metrics) *Classifier {
	return &Classifier{
		resolver:  NewNameResolver(settings.Models.Dir),
		cache:     NewModelCache(settings.Models.CacheSize, metrics),
		extractor: NewFeatureExtractor(),
		metrics:   metrics,
		language:  settings.Language,
		log:       GetLogger(),
	}
}

// Classify runs the species model for the given label on the audio file.
// Returns a model-not-found error when no model matches the species.
func (c *Classifier) Classify(speciesLabel, audioPath string) (*Result, error) {
	modelPath, ok := c.resolver.Resolve(speciesLabel)
	if !ok {
		return nil, errors.Newf("no model for species").
			Component("vocalization").
			Category(errors.CategoryModelNotFound).
			Context("species", speciesLabel).
			Build()
	}

	start := time.Now()

	entry, err := c.cache.GetOrLoad(modelPath)
	if err != nil {
		return nil, err
	}

	features, err := c.extractor.Extract(audioPath)
	if err != nil {
		return nil, err
	}

	prediction, err := predict(entry, features)
	if err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	c.metrics.RecordInferenceDuration(elapsed.Seconds())

	c.log.Debug("Classification complete",
		logger.String("species", speciesLabel),
		logger.String("category", prediction.Category),
		logger.Float64("confidence", prediction.Confidence),
		logger.Duration("duration", elapsed))

	return &Result{
		Category:        prediction.Category,
		CategoryDisplay: DisplayCategory(prediction.Category, c.language),
		Confidence:      prediction.Confidence,
		Model:           modelPath,
		Probabilities:   prediction.Probabilities,
	}, nil
}

// HasModel reports whether a model exists for the species label.
func (c *Classifier) HasModel(speciesLabel string) bool {
	return c.resolver.HasModel(speciesLabel)
}

// AvailableSpecies returns the normalized names of all species with a model.
func (c *Classifier) AvailableSpecies() []string {
	return c.resolver.KnownSpecies()
}

// ModelCount returns the number of available species models.
func (c *Classifier) ModelCount() int {
	return c.resolver.ModelCount()
}

// Close releases all cached model resources.
func (c *Classifier) Close() {
	c.cache.Close()
}
