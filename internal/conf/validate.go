package conf

import (
	"github.com/tphakala/vocalization-go/internal/errors"
)

// Validate checks settings for values that would break the service at
// runtime. It normalizes recoverable problems (unknown language codes fall
// back to English) and rejects the rest.
func Validate(s *Settings) error {
	if s.Models.CacheSize < 1 {
		return errors.Newf("models.cachesize must be at least 1, got %d", s.Models.CacheSize).
			Component("conf").
			Category(errors.CategoryValidation).
			Build()
	}

	if s.Poller.Interval < 1 {
		return errors.Newf("poller.interval must be at least 1 second, got %d", s.Poller.Interval).
			Component("conf").
			Category(errors.CategoryValidation).
			Build()
	}

	if s.Poller.BatchSize < 1 {
		return errors.Newf("poller.batchsize must be at least 1, got %d", s.Poller.BatchSize).
			Component("conf").
			Category(errors.CategoryValidation).
			Build()
	}

	if s.Poller.MinConfidence < 0 || s.Poller.MinConfidence > 1 {
		return errors.Newf("poller.minconfidence must be within [0,1], got %f", s.Poller.MinConfidence).
			Component("conf").
			Category(errors.CategoryValidation).
			Build()
	}

	if s.Output.DataDir == "" {
		return errors.Newf("output.datadir must not be empty").
			Component("conf").
			Category(errors.CategoryValidation).
			Build()
	}

	// Unsupported language codes are not an error, the classifier falls back
	// to English display strings.
	switch s.Language {
	case "en", "nl", "de":
	default:
		s.Language = "en"
	}

	return nil
}
