package vocalization

import (
	"bufio"
	"container/list"
	"os"
	"strings"
	"sync"
	"time"

	tflite "github.com/tphakala/go-tflite"

	"github.com/tphakala/vocalization-go/internal/errors"
	"github.com/tphakala/vocalization-go/internal/logger"
	"github.com/tphakala/vocalization-go/internal/observability"
)

// labelsFileSuffix is the optional sidecar file overriding the class labels
// of a model, e.g. Turdus_merula.labels.txt next to Turdus_merula.tflite.
const labelsFileSuffix = ".labels.txt"

// defaultClassLabels is the ordered label set used when a model ships no
// sidecar labels file. Order must match the model's output tensor.
var defaultClassLabels = []string{CategorySong, CategoryCall, CategoryAlarm}

// ModelEntry is a loaded model handle plus its ordered class labels. Entries
// are owned exclusively by the ModelCache and never mutated after creation.
type ModelEntry struct {
	Path        string
	Model       *tflite.Model
	Interpreter *tflite.Interpreter
	Labels      []string
}

// close releases the TFLite resources of the entry.
func (e *ModelEntry) close() {
	if e.Interpreter != nil {
		e.Interpreter.Delete()
		e.Interpreter = nil
	}
	if e.Model != nil {
		e.Model.Delete()
		e.Model = nil
	}
}

// ModelCache is a capacity-bounded LRU cache of loaded models keyed by model
// file path. Misses load synchronously; load failures are returned and not
// cached, so every miss is retried on the next call. Evicted entries release
// their TFLite resources.
type ModelCache struct {
	capacity int
	metrics  *observability.Metrics
	log      logger.Logger

	mu      sync.Mutex
	entries map[string]*list.Element // path -> element in order
	order   *list.List               // front = most recently used
	loadFn  func(path string) (*ModelEntry, error)
}

// NewModelCache creates a cache holding at most capacity loaded models.
func NewModelCache(capacity int, metrics *observability.Metrics) *ModelCache {
	c := &ModelCache{
		capacity: max(1, capacity),
		metrics:  metrics,
		log:      GetLogger().Module("cache"),
		entries:  make(map[string]*list.Element),
		order:    list.New(),
	}
	c.loadFn = c.loadModelFile
	return c
}

// GetOrLoad returns the cached model entry for the given path, loading it on
// a miss. A hit or a successful load marks the entry most recently used.
func (c *ModelCache) GetOrLoad(path string) (*ModelEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[path]; ok {
		c.order.MoveToFront(elem)
		c.metrics.RecordCacheEvent(observability.CacheEventHit)
		return elem.Value.(*ModelEntry), nil
	}

	c.metrics.RecordCacheEvent(observability.CacheEventMiss)

	start := time.Now()
	entry, err := c.loadFn(path)
	if err != nil {
		c.metrics.RecordCacheEvent(observability.CacheEventError)
		return nil, err
	}

	// Make room before inserting so the cache never exceeds capacity at rest.
	for c.order.Len() >= c.capacity {
		c.evictOldest()
	}

	c.entries[path] = c.order.PushFront(entry)
	c.log.Debug("Model loaded",
		logger.String("model_path", path),
		logger.Int("cached_models", c.order.Len()),
		logger.Duration("load_time", time.Since(start)))

	return entry, nil
}

// Len returns the number of currently cached models.
func (c *ModelCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Close releases all cached models.
func (c *ModelCache) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.order.Len() > 0 {
		c.evictOldest()
	}
}

// evictOldest removes the least-recently-used entry and releases its model.
// Caller must hold the lock.
func (c *ModelCache) evictOldest() {
	elem := c.order.Back()
	if elem == nil {
		return
	}
	entry := c.order.Remove(elem).(*ModelEntry)
	delete(c.entries, entry.Path)
	entry.close()

	c.metrics.RecordCacheEvent(observability.CacheEventEviction)
	c.log.Debug("Model evicted", logger.String("model_path", entry.Path))
}

// loadModelFile loads a TFLite model artifact and prepares an interpreter.
func (c *ModelCache) loadModelFile(path string) (*ModelEntry, error) {
	start := time.Now()

	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the scanned model directory
	if err != nil {
		return nil, errors.New(err).
			Component("vocalization").
			Category(errors.CategoryModelLoad).
			ModelContext(path, "").
			Build()
	}

	model := tflite.NewModel(data)
	if model == nil {
		return nil, errors.Newf("cannot load TensorFlow Lite model").
			Component("vocalization").
			Category(errors.CategoryModelLoad).
			ModelContext(path, "").
			Context("model_size_kb", len(data)/1024).
			Timing("model-load", time.Since(start)).
			Build()
	}

	// Per-species models are small; a single interpreter thread is enough.
	options := tflite.NewInterpreterOptions()
	options.SetNumThread(1)

	interpreter := tflite.NewInterpreter(model, options)
	if interpreter == nil {
		model.Delete()
		return nil, errors.Newf("cannot create interpreter").
			Component("vocalization").
			Category(errors.CategoryModelLoad).
			ModelContext(path, "").
			Build()
	}

	if status := interpreter.AllocateTensors(); status != tflite.OK {
		interpreter.Delete()
		model.Delete()
		return nil, errors.Newf("tensor allocation failed: %v", status).
			Component("vocalization").
			Category(errors.CategoryModelLoad).
			ModelContext(path, "").
			Build()
	}

	labels, err := loadModelLabels(path)
	if err != nil {
		interpreter.Delete()
		model.Delete()
		return nil, err
	}

	return &ModelEntry{
		Path:        path,
		Model:       model,
		Interpreter: interpreter,
		Labels:      labels,
	}, nil
}

// loadModelLabels reads the sidecar labels file if present, otherwise returns
// the default ordered label set.
func loadModelLabels(modelPath string) ([]string, error) {
	labelsPath := strings.TrimSuffix(modelPath, ModelFileExtension) + labelsFileSuffix

	file, err := os.Open(labelsPath) //nolint:gosec // G304: derived from the scanned model directory
	if err != nil {
		if os.IsNotExist(err) {
			return defaultClassLabels, nil
		}
		return nil, errors.New(err).
			Component("vocalization").
			Category(errors.CategoryModelLoad).
			Context("labels_path", labelsPath).
			Build()
	}
	defer file.Close()

	var labels []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			labels = append(labels, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.New(err).
			Component("vocalization").
			Category(errors.CategoryModelLoad).
			Context("labels_path", labelsPath).
			Build()
	}

	if len(labels) == 0 {
		return defaultClassLabels, nil
	}
	return labels, nil
}
