package datastore

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tphakala/vocalization-go/internal/errors"
	"github.com/tphakala/vocalization-go/internal/logger"
)

// defaultSearchLimit caps Search results when the filters set no limit.
const defaultSearchLimit = 100

// SQLiteStore implements Interface on a service-owned SQLite database.
type SQLiteStore struct {
	path string
	db   *gorm.DB
}

// NewSQLiteStore creates a store for the database at path. Open must be
// called before any other method.
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

// Open opens the database, creating the containing directory and migrating
// the schema as needed.
func (s *SQLiteStore) Open() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.New(fmt.Errorf("creating database directory: %w", err)).
			Component("datastore").
			Category(errors.CategoryFileIO).
			Context("db_path", s.path).
			Build()
	}

	db, err := gorm.Open(sqlite.Open(s.path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return errors.New(fmt.Errorf("opening database: %w", err)).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Context("db_path", s.path).
			Build()
	}

	if err := db.AutoMigrate(&Vocalization{}, &ServiceState{}, &Feedback{}); err != nil {
		return errors.New(fmt.Errorf("migrating schema: %w", err)).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Context("db_path", s.path).
			Build()
	}

	s.db = db
	getLogger().Info("Result database opened", logger.String("db_path", s.path))
	return nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Save upserts the result keyed on birdnet_id, so re-processing a detection
// replaces its previous classification.
func (s *SQLiteStore) Save(v *Vocalization) error {
	if v.ClassifiedAt.IsZero() {
		v.ClassifiedAt = time.Now()
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "birdnet_id"}},
		UpdateAll: true,
	}).Create(v).Error
	if err != nil {
		return errors.New(fmt.Errorf("saving vocalization: %w", err)).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Context("birdnet_id", v.BirdnetID).
			Build()
	}
	return nil
}

// Get returns the vocalization with the given primary key.
func (s *SQLiteStore) Get(id uint) (*Vocalization, error) {
	var v Vocalization
	if err := s.db.First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.New(fmt.Errorf("getting vocalization: %w", err)).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Context("id", id).
			Build()
	}
	return &v, nil
}

// Search returns results matching the filters, newest first.
func (s *SQLiteStore) Search(filters SearchFilters) ([]Vocalization, error) {
	limit := filters.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	query := s.db.Model(&Vocalization{})
	if filters.Species != "" {
		pattern := "%" + filters.Species + "%"
		query = query.Where("scientific_name LIKE ? OR common_name LIKE ?", pattern, pattern)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Date != "" {
		query = query.Where("date = ?", filters.Date)
	}

	var results []Vocalization
	err := query.Order("date DESC, time DESC").
		Limit(limit).
		Offset(filters.Offset).
		Find(&results).Error
	if err != nil {
		return nil, errors.New(fmt.Errorf("searching vocalizations: %w", err)).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Build()
	}
	return results, nil
}

// GetCursor returns the last processed detection id, zero when the service
// has never processed anything.
func (s *SQLiteStore) GetCursor() (int64, error) {
	var state ServiceState
	err := s.db.Where("key = ?", cursorStateKey).First(&state).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, errors.New(fmt.Errorf("reading cursor: %w", err)).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Build()
	}

	var id int64
	if _, err := fmt.Sscanf(state.Value, "%d", &id); err != nil {
		// Unparseable cursor means restarting from the beginning; the
		// upsert on birdnet_id keeps that safe.
		getLogger().Warn("Invalid cursor value, resetting",
			logger.String("value", state.Value))
		return 0, nil
	}
	return id, nil
}

// SetCursor persists the last processed detection id.
func (s *SQLiteStore) SetCursor(id int64) error {
	state := ServiceState{Key: cursorStateKey, Value: fmt.Sprintf("%d", id)}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&state).Error
	if err != nil {
		return errors.New(fmt.Errorf("saving cursor: %w", err)).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Context("cursor", id).
			Build()
	}
	return nil
}

// GetStats summarizes the stored results.
func (s *SQLiteStore) GetStats() (*Stats, error) {
	stats := &Stats{ByCategory: make(map[string]int64)}

	if err := s.db.Model(&Vocalization{}).Count(&stats.Total).Error; err != nil {
		return nil, errors.New(fmt.Errorf("counting vocalizations: %w", err)).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Build()
	}

	type categoryCount struct {
		Category string
		Count    int64
	}
	var byCategory []categoryCount
	err := s.db.Model(&Vocalization{}).
		Select("category, COUNT(*) as count").
		Group("category").
		Scan(&byCategory).Error
	if err != nil {
		return nil, errors.New(fmt.Errorf("counting by category: %w", err)).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Build()
	}
	for _, c := range byCategory {
		stats.ByCategory[c.Category] = c.Count
	}

	err = s.db.Model(&Vocalization{}).
		Distinct("scientific_name").
		Count(&stats.SpeciesSeen).Error
	if err != nil {
		return nil, errors.New(fmt.Errorf("counting species: %w", err)).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Build()
	}

	return stats, nil
}

// GetDailyCounts returns per-day result counts for the last days days,
// oldest first. Days without results are absent.
func (s *SQLiteStore) GetDailyCounts(days int) ([]DailyCount, error) {
	cutoff := time.Now().AddDate(0, 0, -(days - 1)).Format("2006-01-02")

	var counts []DailyCount
	err := s.db.Model(&Vocalization{}).
		Select("date, COUNT(*) as count").
		Where("date >= ?", cutoff).
		Group("date").
		Order("date ASC").
		Scan(&counts).Error
	if err != nil {
		return nil, errors.New(fmt.Errorf("counting daily results: %w", err)).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Build()
	}
	return counts, nil
}

// GetTopSpecies returns the species with the most results in the last days
// days, most frequent first.
func (s *SQLiteStore) GetTopSpecies(days, limit int) ([]SpeciesCount, error) {
	cutoff := time.Now().AddDate(0, 0, -(days - 1)).Format("2006-01-02")

	var counts []SpeciesCount
	err := s.db.Model(&Vocalization{}).
		Select("scientific_name, common_name, COUNT(*) as count").
		Where("date >= ?", cutoff).
		Group("scientific_name, common_name").
		Order("count DESC").
		Limit(limit).
		Scan(&counts).Error
	if err != nil {
		return nil, errors.New(fmt.Errorf("counting top species: %w", err)).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Build()
	}
	return counts, nil
}

// SaveFeedback stores a user correction.
func (s *SQLiteStore) SaveFeedback(f *Feedback) error {
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now()
	}
	if err := s.db.Create(f).Error; err != nil {
		return errors.New(fmt.Errorf("saving feedback: %w", err)).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Build()
	}
	return nil
}
