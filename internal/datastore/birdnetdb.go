package datastore

import (
	"fmt"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tphakala/vocalization-go/internal/errors"
	"github.com/tphakala/vocalization-go/internal/logger"
)

// Detection is one row from the external BirdNET-Pi detections table. ID is
// the SQLite rowid, which is strictly increasing and serves as the poll
// cursor.
type Detection struct {
	ID             int64   `json:"id"`
	Date           string  `json:"date"`
	Time           string  `json:"time"`
	ScientificName string  `json:"scientific_name"`
	CommonName     string  `json:"common_name"`
	Confidence     float64 `json:"confidence"`
	FileName       string  `json:"file_name"`
}

// BirdNETDB reads detections from the BirdNET-Pi database. The database is
// owned by BirdNET-Pi and opened read-only; this type never writes to it.
type BirdNETDB struct {
	path string
	db   *gorm.DB
}

// NewBirdNETDB creates a reader for the detections database at path.
func NewBirdNETDB(path string) *BirdNETDB {
	return &BirdNETDB{path: path}
}

// Open opens the detections database read-only. A missing database is an
// error; the caller decides whether to retry.
func (b *BirdNETDB) Open() error {
	if _, err := os.Stat(b.path); err != nil {
		return errors.New(fmt.Errorf("detections database not found: %w", err)).
			Component("datastore").
			Category(errors.CategoryFileIO).
			Context("db_path", b.path).
			Build()
	}

	dsn := fmt.Sprintf("file:%s?mode=ro", b.path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return errors.New(fmt.Errorf("opening detections database: %w", err)).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Context("db_path", b.path).
			Build()
	}

	b.db = db
	getLogger().Info("Detections database opened", logger.String("db_path", b.path))
	return nil
}

// Close closes the detections database connection.
func (b *BirdNETDB) Close() error {
	if b.db == nil {
		return nil
	}
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// FetchDetections returns up to limit detections with rowid greater than
// afterID, in ascending rowid order.
func (b *BirdNETDB) FetchDetections(afterID int64, limit int) ([]Detection, error) {
	var detections []Detection
	err := b.db.Raw(`
		SELECT rowid AS id, Date AS date, Time AS time,
		       Sci_Name AS scientific_name, Com_Name AS common_name,
		       Confidence AS confidence, File_Name AS file_name
		FROM detections
		WHERE rowid > ?
		ORDER BY rowid ASC
		LIMIT ?`, afterID, limit).Scan(&detections).Error
	if err != nil {
		return nil, errors.New(fmt.Errorf("fetching detections: %w", err)).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Context("after_id", afterID).
			Build()
	}
	return detections, nil
}
