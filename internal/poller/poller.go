// Package poller drives the incremental classification loop: it reads new
// detections from the BirdNET-Pi database, classifies their audio and stores
// the results. The cursor plus the upsert on birdnet_id make the loop
// idempotent; re-running over the same detections never duplicates results.
package poller

import (
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/tphakala/vocalization-go/internal/conf"
	"github.com/tphakala/vocalization-go/internal/datastore"
	"github.com/tphakala/vocalization-go/internal/logger"
	"github.com/tphakala/vocalization-go/internal/observability"
	"github.com/tphakala/vocalization-go/internal/vocalization"
)

var (
	pollerLogger logger.Logger
	loggerOnce   sync.Once
)

func getLogger() logger.Logger {
	loggerOnce.Do(func() {
		pollerLogger = logger.Global().Module("poller")
	})
	return pollerLogger
}

// Classifier is the classification surface the poller needs.
type Classifier interface {
	Classify(speciesLabel, audioPath string) (*vocalization.Result, error)
	HasModel(speciesLabel string) bool
}

// DetectionSource yields unprocessed detections in cursor order.
type DetectionSource interface {
	FetchDetections(afterID int64, limit int) ([]datastore.Detection, error)
}

// Store is the persistence surface the poller needs.
type Store interface {
	Save(v *datastore.Vocalization) error
	GetCursor() (int64, error)
	SetCursor(id int64) error
}

// Poller polls the detection source on a fixed interval and classifies every
// new detection exactly once per cursor position.
type Poller struct {
	settings   *conf.Settings
	classifier Classifier
	source     DetectionSource
	store      Store
	metrics    *observability.Metrics
	log        logger.Logger
}

// New creates a poller over the given classifier, detection source and store.
func New(settings *conf.Settings, classifier Classifier, source DetectionSource, store Store, metrics *observability.Metrics) *Poller {
	return &Poller{
		settings:   settings,
		classifier: classifier,
		source:     source,
		store:      store,
		metrics:    metrics,
		log:        getLogger(),
	}
}

// Run polls until the context is canceled. The first poll happens
// immediately, then every configured interval.
func (p *Poller) Run(ctx context.Context) error {
	interval := time.Duration(p.settings.Poller.Interval) * time.Second
	p.log.Info("Poller started",
		logger.Duration("interval", interval),
		logger.Int("batch_size", p.settings.Poller.BatchSize),
		logger.Float64("min_confidence", p.settings.Poller.MinConfidence))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	p.pollOnce()
	for {
		select {
		case <-ctx.Done():
			p.log.Info("Poller stopped")
			return ctx.Err()
		case <-ticker.C:
			p.pollOnce()
		}
	}
}

// pollOnce runs one poll cycle, recovering from panics so a single bad
// detection cannot take the service down.
func (p *Poller) pollOnce() {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error("Panic during poll cycle", logger.Any("panic", r))
		}
	}()

	if _, err := p.ProcessBatch(); err != nil {
		p.log.Error("Poll cycle failed", logger.Error(err))
	}
}

// ProcessBatch fetches one batch of detections past the cursor, classifies
// each and advances the cursor. Returns the number of detections seen; zero
// means the poller is caught up.
func (p *Poller) ProcessBatch() (int, error) {
	cursor, err := p.store.GetCursor()
	if err != nil {
		return 0, err
	}

	detections, err := p.source.FetchDetections(cursor, p.settings.Poller.BatchSize)
	if err != nil {
		return 0, err
	}
	if len(detections) == 0 {
		return 0, nil
	}

	stored := 0
	for i := range detections {
		if p.processDetection(&detections[i]) {
			stored++
		}
	}

	// The cursor moves to the last detection in the batch regardless of
	// per-detection outcomes. Skipped detections are deliberate skips, not
	// retries.
	last := detections[len(detections)-1].ID
	if err := p.store.SetCursor(last); err != nil {
		return len(detections), err
	}
	p.metrics.SetCursorPosition(last)

	p.log.Info("Batch processed",
		logger.Int("detections", len(detections)),
		logger.Int("stored", stored),
		logger.Int64("cursor", last))
	return len(detections), nil
}

// processDetection classifies one detection, reporting whether a result was
// stored. Every skip path is logged with its reason.
func (p *Poller) processDetection(d *datastore.Detection) bool {
	p.metrics.RecordDetectionProcessed()

	if !p.classifier.HasModel(d.ScientificName) && !p.classifier.HasModel(d.CommonName) {
		p.metrics.RecordSkip(observability.SkipReasonNoModel)
		p.log.Debug("No model for species",
			logger.Int64("detection_id", d.ID),
			logger.String("species", d.ScientificName))
		return false
	}

	audioPath, ok := p.findAudioFile(d)
	if !ok {
		p.metrics.RecordSkip(observability.SkipReasonNoAudio)
		p.log.Warn("Audio file not found",
			logger.Int64("detection_id", d.ID),
			logger.String("file_name", d.FileName))
		return false
	}

	label := d.ScientificName
	if !p.classifier.HasModel(label) {
		label = d.CommonName
	}

	result, err := p.classifier.Classify(label, audioPath)
	if err != nil {
		p.metrics.RecordSkip(observability.SkipReasonClassifyError)
		p.log.Error("Classification failed",
			logger.Int64("detection_id", d.ID),
			logger.String("species", label),
			logger.Error(err))
		return false
	}

	if result.Confidence < p.settings.Poller.MinConfidence {
		p.metrics.RecordSkip(observability.SkipReasonLowConfidence)
		p.log.Debug("Confidence below threshold",
			logger.Int64("detection_id", d.ID),
			logger.String("category", result.Category),
			logger.Float64("confidence", result.Confidence))
		return false
	}

	probabilities, err := json.Marshal(result.Probabilities)
	if err != nil {
		probabilities = []byte("{}")
	}

	v := &datastore.Vocalization{
		BirdnetID:           d.ID,
		Date:                d.Date,
		Time:                d.Time,
		ScientificName:      d.ScientificName,
		CommonName:          d.CommonName,
		DetectionConfidence: d.Confidence,
		Category:            result.Category,
		Confidence:          result.Confidence,
		Probabilities:       string(probabilities),
		ModelPath:           result.Model,
		AudioFile:           audioPath,
		ClassifiedAt:        time.Now(),
	}
	if err := p.store.Save(v); err != nil {
		p.log.Error("Saving result failed",
			logger.Int64("detection_id", d.ID),
			logger.Error(err))
		return false
	}

	p.metrics.RecordResultStored()
	return true
}

// findAudioFile locates the recording of a detection. BirdNET-Pi stores the
// file name without a stable path, so candidates are tried from most to
// least specific, ending with recursive searches.
func (p *Poller) findAudioFile(d *datastore.Detection) (string, bool) {
	name := d.FileName
	if name == "" {
		return "", false
	}

	if filepath.IsAbs(name) {
		if fileExists(name) {
			return name, true
		}
		name = filepath.Base(name)
	}

	candidates := []string{
		filepath.Join(p.settings.BirdNET.Dir, name),
		filepath.Join(p.settings.ExtractedByDateDir(d.Date), name),
		filepath.Join(p.settings.ExtractedDir(), name),
	}
	for _, candidate := range candidates {
		if fileExists(candidate) {
			return candidate, true
		}
	}

	base := filepath.Base(name)
	if path, ok := findFileRecursive(p.settings.ExtractedDir(), base); ok {
		return path, true
	}
	return findFileRecursive(p.settings.BirdSongsDir(), base)
}

// fileExists reports whether path is an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// findFileRecursive searches root for a file with the given base name.
func findFileRecursive(root, name string) (string, bool) {
	var found string
	_ = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, not fatal.
			return nil
		}
		if !entry.IsDir() && entry.Name() == name {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	return found, found != ""
}
