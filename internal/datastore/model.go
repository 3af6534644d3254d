// Package datastore persists classification results in a service-owned
// SQLite database and reads detections from the external BirdNET-Pi database.
package datastore

import (
	"time"
)

// Vocalization is one stored classification result. BirdnetID is the rowid of
// the source detection in the BirdNET-Pi database; the unique index makes
// re-processing a detection overwrite its previous result instead of
// duplicating it.
type Vocalization struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	BirdnetID           int64     `gorm:"uniqueIndex;column:birdnet_id" json:"birdnet_id"`
	Date                string    `gorm:"index:idx_vocalizations_date" json:"date"` // detection date, YYYY-MM-DD
	Time                string    `json:"time"`                                     // detection time, HH:MM:SS
	ScientificName      string    `gorm:"index:idx_vocalizations_sci" json:"scientific_name"`
	CommonName          string    `json:"common_name"`
	DetectionConfidence float64   `json:"detection_confidence"` // species confidence from BirdNET-Pi
	Category            string    `gorm:"index:idx_vocalizations_category" json:"category"`
	Confidence          float64   `json:"confidence"`    // vocalization category confidence
	Probabilities       string    `json:"probabilities"` // JSON object, category -> probability
	ModelPath           string    `json:"model_path"`
	AudioFile           string    `json:"audio_file"`
	ClassifiedAt        time.Time `json:"classified_at"`
}

// ServiceState is a key/value row for persistent service state, most notably
// the detection cursor.
type ServiceState struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// cursorStateKey is the ServiceState key holding the last processed
// detection id.
const cursorStateKey = "last_processed_id"

// Feedback is a user correction or confirmation of a stored classification.
type Feedback struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	VocalizationID  uint      `gorm:"index" json:"vocalization_id"`
	CorrectCategory string    `json:"correct_category"`
	Comment         string    `json:"comment"`
	CreatedAt       time.Time `json:"created_at"`
}

// Stats summarizes the stored classification results.
type Stats struct {
	Total       int64            `json:"total"`
	ByCategory  map[string]int64 `json:"by_category"`
	SpeciesSeen int64            `json:"species_seen"`
}

// DailyCount is the number of classifications stored on one date.
type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// SpeciesCount is the number of classifications for one species.
type SpeciesCount struct {
	ScientificName string `json:"scientific_name"`
	CommonName     string `json:"common_name"`
	Count          int64  `json:"count"`
}

// SearchFilters narrows a vocalization query. Zero values mean no filter;
// Limit zero applies the default limit.
type SearchFilters struct {
	Species  string
	Category string
	Date     string
	Limit    int
	Offset   int
}
