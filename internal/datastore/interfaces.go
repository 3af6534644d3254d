package datastore

import (
	"errors"
	"sync"

	"github.com/tphakala/vocalization-go/internal/logger"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Interface abstracts the result store for the poller and the HTTP API.
type Interface interface {
	Open() error
	Close() error

	// Save upserts a result keyed on its BirdnetID.
	Save(v *Vocalization) error
	Get(id uint) (*Vocalization, error)
	Search(filters SearchFilters) ([]Vocalization, error)

	GetCursor() (int64, error)
	SetCursor(id int64) error

	GetStats() (*Stats, error)
	GetDailyCounts(days int) ([]DailyCount, error)
	GetTopSpecies(days, limit int) ([]SpeciesCount, error)

	SaveFeedback(f *Feedback) error
}

var (
	storeLogger logger.Logger
	loggerOnce  sync.Once
)

func getLogger() logger.Logger {
	loggerOnce.Do(func() {
		storeLogger = logger.Global().Module("datastore")
	})
	return storeLogger
}
