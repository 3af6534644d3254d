package conf

// Audio constants shared between the decoder and the feature extractor.
// These must match what the vocalization models were trained with and are
// deliberately not configurable.
const (
	// SampleRate is the sample rate all audio is decoded or resampled to.
	SampleRate = 48000

	// NumChannels is the channel count after downmixing.
	NumChannels = 1

	// BitDepth is the assumed bit depth for raw PCM conversions.
	BitDepth = 16
)

// Service defaults.
const (
	// DefaultModelCacheSize is the number of models kept loaded at once.
	DefaultModelCacheSize = 5

	// DefaultPollInterval is the seconds between detection polls.
	DefaultPollInterval = 30

	// DefaultBatchSize is the maximum detections processed per poll.
	DefaultBatchSize = 100

	// DefaultMinConfidence is the minimum classification confidence for a
	// result to be persisted.
	DefaultMinConfidence = 0.5
)
