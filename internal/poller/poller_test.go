package poller

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/vocalization-go/internal/conf"
	"github.com/tphakala/vocalization-go/internal/datastore"
	"github.com/tphakala/vocalization-go/internal/errors"
	"github.com/tphakala/vocalization-go/internal/vocalization"
)

// fakeClassifier returns canned results per species.
type fakeClassifier struct {
	species map[string]*vocalization.Result
	calls   []string
	err     error
}

func (f *fakeClassifier) Classify(label, audioPath string) (*vocalization.Result, error) {
	f.calls = append(f.calls, label)
	if f.err != nil {
		return nil, f.err
	}
	return f.species[label], nil
}

func (f *fakeClassifier) HasModel(label string) bool {
	_, ok := f.species[label]
	return ok
}

// fakeSource serves detections from a slice keyed by id.
type fakeSource struct {
	detections []datastore.Detection
}

func (f *fakeSource) FetchDetections(afterID int64, limit int) ([]datastore.Detection, error) {
	var out []datastore.Detection
	for _, d := range f.detections {
		if d.ID > afterID && len(out) < limit {
			out = append(out, d)
		}
	}
	return out, nil
}

// fakeStore records saves and cursor updates in memory.
type fakeStore struct {
	saved   map[int64]*datastore.Vocalization
	cursor  int64
	cursors []int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{saved: make(map[int64]*datastore.Vocalization)}
}

func (f *fakeStore) Save(v *datastore.Vocalization) error {
	f.saved[v.BirdnetID] = v
	return nil
}

func (f *fakeStore) GetCursor() (int64, error) { return f.cursor, nil }

func (f *fakeStore) SetCursor(id int64) error {
	f.cursor = id
	f.cursors = append(f.cursors, id)
	return nil
}

// newTestSettings creates settings over a temp BirdNET directory and places
// the given audio files in the By_Date extraction directory.
func newTestSettings(t *testing.T, date string, audioFiles ...string) *conf.Settings {
	t.Helper()

	settings := &conf.Settings{}
	settings.BirdNET.Dir = t.TempDir()
	settings.Poller.Interval = 30
	settings.Poller.BatchSize = 100
	settings.Poller.MinConfidence = 0.5

	dir := settings.ExtractedByDateDir(date)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, name := range audioFiles {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("riff"), 0o644))
	}
	return settings
}

func songResult(confidence float64) *vocalization.Result {
	return &vocalization.Result{
		Category:        vocalization.CategorySong,
		CategoryDisplay: "song",
		Confidence:      confidence,
		Probabilities:   map[string]float64{"song": confidence},
	}
}

func TestProcessBatchStoresResults(t *testing.T) {
	settings := newTestSettings(t, "2026-08-27", "merel-1.wav")

	classifier := &fakeClassifier{species: map[string]*vocalization.Result{
		"Turdus merula": songResult(0.9),
	}}
	source := &fakeSource{detections: []datastore.Detection{
		{ID: 42, Date: "2026-08-27", Time: "06:15:00", ScientificName: "Turdus merula",
			CommonName: "Eurasian Blackbird", Confidence: 0.81, FileName: "merel-1.wav"},
	}}
	store := newFakeStore()

	p := New(settings, classifier, source, store, nil)
	n, err := p.ProcessBatch()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.Contains(t, store.saved, int64(42))
	saved := store.saved[42]
	assert.Equal(t, vocalization.CategorySong, saved.Category)
	assert.Equal(t, 0.9, saved.Confidence)
	assert.Equal(t, "Turdus merula", saved.ScientificName)
	assert.Equal(t, int64(42), store.cursor)
}

func TestProcessBatchIdempotent(t *testing.T) {
	settings := newTestSettings(t, "2026-08-27", "merel-1.wav")

	classifier := &fakeClassifier{species: map[string]*vocalization.Result{
		"Turdus merula": songResult(0.9),
	}}
	source := &fakeSource{detections: []datastore.Detection{
		{ID: 42, Date: "2026-08-27", ScientificName: "Turdus merula", FileName: "merel-1.wav"},
	}}
	store := newFakeStore()

	p := New(settings, classifier, source, store, nil)

	n, err := p.ProcessBatch()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// A second run past the cursor sees nothing new.
	n, err = p.ProcessBatch()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Len(t, classifier.calls, 1)
	assert.Len(t, store.saved, 1)
}

func TestCursorAdvancesOnSkips(t *testing.T) {
	settings := newTestSettings(t, "2026-08-27", "merel-1.wav")

	classifier := &fakeClassifier{species: map[string]*vocalization.Result{
		"Turdus merula": songResult(0.9),
	}}
	source := &fakeSource{detections: []datastore.Detection{
		// No model for this species.
		{ID: 41, Date: "2026-08-27", ScientificName: "Cygnus olor", FileName: "zwaan.wav"},
		{ID: 42, Date: "2026-08-27", ScientificName: "Turdus merula", FileName: "merel-1.wav"},
		// Audio file missing.
		{ID: 43, Date: "2026-08-27", ScientificName: "Turdus merula", FileName: "merel-2.wav"},
	}}
	store := newFakeStore()

	p := New(settings, classifier, source, store, nil)
	n, err := p.ProcessBatch()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// Only the complete detection was stored, but the cursor covers all.
	assert.Len(t, store.saved, 1)
	assert.Contains(t, store.saved, int64(42))
	assert.Equal(t, int64(43), store.cursor)
}

func TestLowConfidenceNotStored(t *testing.T) {
	settings := newTestSettings(t, "2026-08-27", "merel-1.wav")

	classifier := &fakeClassifier{species: map[string]*vocalization.Result{
		"Turdus merula": songResult(0.3),
	}}
	source := &fakeSource{detections: []datastore.Detection{
		{ID: 42, Date: "2026-08-27", ScientificName: "Turdus merula", FileName: "merel-1.wav"},
	}}
	store := newFakeStore()

	p := New(settings, classifier, source, store, nil)
	n, err := p.ProcessBatch()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.Empty(t, store.saved)
	assert.Equal(t, int64(42), store.cursor)
}

func TestClassifyErrorSkipsDetection(t *testing.T) {
	settings := newTestSettings(t, "2026-08-27", "merel-1.wav")

	classifier := &fakeClassifier{
		species: map[string]*vocalization.Result{"Turdus merula": nil},
		err: errors.Newf("inference failed").
			Component("vocalization").
			Category(errors.CategoryInference).
			Build(),
	}
	source := &fakeSource{detections: []datastore.Detection{
		{ID: 42, Date: "2026-08-27", ScientificName: "Turdus merula", FileName: "merel-1.wav"},
	}}
	store := newFakeStore()

	p := New(settings, classifier, source, store, nil)
	n, err := p.ProcessBatch()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Empty(t, store.saved)
	assert.Equal(t, int64(42), store.cursor)
}

func TestCursorMonotonic(t *testing.T) {
	settings := newTestSettings(t, "2026-08-27", "merel-1.wav")

	classifier := &fakeClassifier{species: map[string]*vocalization.Result{
		"Turdus merula": songResult(0.9),
	}}
	source := &fakeSource{detections: []datastore.Detection{
		{ID: 10, Date: "2026-08-27", ScientificName: "Turdus merula", FileName: "merel-1.wav"},
		{ID: 20, Date: "2026-08-27", ScientificName: "Turdus merula", FileName: "merel-1.wav"},
		{ID: 30, Date: "2026-08-27", ScientificName: "Turdus merula", FileName: "merel-1.wav"},
	}}
	store := newFakeStore()

	settings.Poller.BatchSize = 1
	p := New(settings, classifier, source, store, nil)

	for range 3 {
		_, err := p.ProcessBatch()
		require.NoError(t, err)
	}

	assert.Equal(t, []int64{10, 20, 30}, store.cursors)
}

func TestFindAudioFileSearchOrder(t *testing.T) {
	settings := &conf.Settings{}
	settings.BirdNET.Dir = t.TempDir()
	p := &Poller{settings: settings, log: getLogger()}

	d := &datastore.Detection{Date: "2026-08-27", FileName: "clip.wav"}

	// Nothing exists yet.
	_, ok := p.findAudioFile(d)
	assert.False(t, ok)

	// A copy deep under BirdSongs is found recursively.
	deep := filepath.Join(settings.BirdSongsDir(), "2026", "aug")
	require.NoError(t, os.MkdirAll(deep, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(deep, "clip.wav"), []byte("x"), 0o644))

	path, ok := p.findAudioFile(d)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(deep, "clip.wav"), path)

	// The By_Date copy is preferred over the recursive match.
	byDate := settings.ExtractedByDateDir(d.Date)
	require.NoError(t, os.MkdirAll(byDate, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(byDate, "clip.wav"), []byte("x"), 0o644))

	path, ok = p.findAudioFile(d)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(byDate, "clip.wav"), path)
}

func TestFindAudioFileAbsolutePath(t *testing.T) {
	settings := &conf.Settings{}
	settings.BirdNET.Dir = t.TempDir()
	p := &Poller{settings: settings, log: getLogger()}

	dir := t.TempDir()
	abs := filepath.Join(dir, "clip.wav")
	require.NoError(t, os.WriteFile(abs, []byte("x"), 0o644))

	path, ok := p.findAudioFile(&datastore.Detection{Date: "2026-08-27", FileName: abs})
	require.True(t, ok)
	assert.Equal(t, abs, path)
}

func TestFindAudioFileEmptyName(t *testing.T) {
	settings := &conf.Settings{}
	settings.BirdNET.Dir = t.TempDir()
	p := &Poller{settings: settings, log: getLogger()}

	_, ok := p.findAudioFile(&datastore.Detection{Date: "2026-08-27"})
	assert.False(t, ok)
}
