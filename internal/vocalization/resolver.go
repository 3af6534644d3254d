package vocalization

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/tphakala/vocalization-go/internal/logger"
)

// ModelFileExtension is the file extension of model artifacts in the model
// directory. Files are named by scientific name, e.g. Turdus_merula.tflite.
const ModelFileExtension = ".tflite"

// legacyModelSuffix matches the deprecated versioned model file naming,
// e.g. Turdus_merula_cnn_v1.tflite.
var legacyModelSuffix = regexp.MustCompile(`_cnn_v\d+$`)

// nonNameChars matches everything that is neither letter, digit nor space.
var nonNameChars = regexp.MustCompile(`[^a-z0-9\s]`)

// whitespaceRun matches runs of whitespace for collapsing.
var whitespaceRun = regexp.MustCompile(`\s+`)

// NameResolver maps a species label, scientific or common, in any naming
// convention, to the model file for that species. The model directory is
// scanned once, lazily, on the first resolver operation; keys are held in
// ascending lexicographic order so fuzzy matching is deterministic.
type NameResolver struct {
	modelsDir string
	log       logger.Logger

	scanOnce sync.Once
	keys     []string          // sorted normalized keys
	models   map[string]string // normalized key -> model file path
}

// NewNameResolver creates a resolver over the given model directory.
func NewNameResolver(modelsDir string) *NameResolver {
	return &NameResolver{
		modelsDir: modelsDir,
		log:       GetLogger().Module("resolver"),
	}
}

// NormalizeSpeciesName normalizes a species label for matching: lowercase,
// underscores treated as spaces, punctuation stripped, whitespace runs
// collapsed, trimmed.
func NormalizeSpeciesName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, "_", " ")
	normalized = nonNameChars.ReplaceAllString(normalized, "")
	normalized = whitespaceRun.ReplaceAllString(normalized, " ")
	return strings.TrimSpace(normalized)
}

// Resolve maps a species label to the model file path for that species.
// An exact match on the normalized label is authoritative; otherwise keys are
// scanned in lexicographic order and the first substring match in either
// direction wins. Returns false if no model matches.
func (r *NameResolver) Resolve(label string) (string, bool) {
	r.scan()

	normalized := NormalizeSpeciesName(label)
	if normalized == "" {
		return "", false
	}

	if path, ok := r.models[normalized]; ok {
		return path, true
	}

	// Fuzzy fallback tolerates plural/singular and partial-name variants.
	for _, key := range r.keys {
		if strings.Contains(normalized, key) || strings.Contains(key, normalized) {
			r.log.Debug("Fuzzy species match",
				logger.String("label", normalized),
				logger.String("matched_key", key))
			return r.models[key], true
		}
	}

	return "", false
}

// HasModel reports whether a model exists for the species label.
func (r *NameResolver) HasModel(label string) bool {
	_, ok := r.Resolve(label)
	return ok
}

// KnownSpecies returns the normalized keys of all available models in
// lexicographic order.
func (r *NameResolver) KnownSpecies() []string {
	r.scan()
	return append([]string(nil), r.keys...)
}

// ModelCount returns the number of available models.
func (r *NameResolver) ModelCount() int {
	r.scan()
	return len(r.keys)
}

// scan populates the key set from the model directory. It runs once for the
// lifetime of the resolver; models added later require a restart.
func (r *NameResolver) scan() {
	r.scanOnce.Do(func() {
		r.models = make(map[string]string)

		entries, err := os.ReadDir(r.modelsDir)
		if err != nil {
			r.log.Warn("Models directory not readable",
				logger.String("models_dir", r.modelsDir),
				logger.Error(err))
			return
		}

		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ModelFileExtension) {
				continue
			}

			stem := strings.TrimSuffix(entry.Name(), ModelFileExtension)
			stem = legacyModelSuffix.ReplaceAllString(stem, "")

			key := NormalizeSpeciesName(stem)
			if key == "" {
				continue
			}
			r.models[key] = filepath.Join(r.modelsDir, entry.Name())
		}

		r.keys = make([]string, 0, len(r.models))
		for key := range r.models {
			r.keys = append(r.keys, key)
		}
		sort.Strings(r.keys)

		r.log.Info("Vocalization models scanned",
			logger.String("models_dir", r.modelsDir),
			logger.Int("model_count", len(r.keys)))
	})
}
