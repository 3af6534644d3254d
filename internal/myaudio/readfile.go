// Package myaudio decodes audio files into the mono float32 sample stream
// the feature extractor consumes. WAV and FLAC are supported natively; other
// formats are rejected with an audio-decode error.
package myaudio

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/tphakala/vocalization-go/internal/conf"
	"github.com/tphakala/vocalization-go/internal/errors"
)

// AudioInfo holds basic information about an audio file.
type AudioInfo struct {
	SampleRate   int
	TotalSamples int
	NumChannels  int
	BitDepth     int
}

// ReadAudioFile decodes the audio file at path into mono float32 samples in
// [-1, 1] at conf.SampleRate, resampling and downmixing as needed.
func ReadAudioFile(path string) ([]float32, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.New(err).
			Component("myaudio").
			Category(errors.CategoryFileIO).
			Context("audio_path", path).
			Build()
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(path))

	var samples []float32
	var sourceRate int

	switch ext {
	case ".wav":
		samples, sourceRate, err = readWAV(file)
	case ".flac":
		samples, sourceRate, err = readFLAC(file)
	default:
		return nil, errors.Newf("unsupported audio format: %s", ext).
			Component("myaudio").
			Category(errors.CategoryAudioDecode).
			Context("audio_path", path).
			Build()
	}

	if err != nil {
		return nil, errors.New(err).
			Component("myaudio").
			Category(errors.CategoryAudioDecode).
			Context("audio_path", path).
			Build()
	}

	if sourceRate != conf.SampleRate {
		samples, err = ResampleAudio(samples, sourceRate, conf.SampleRate)
		if err != nil {
			return nil, errors.New(err).
				Component("myaudio").
				Category(errors.CategoryAudio).
				Context("audio_path", path).
				Context("source_rate", sourceRate).
				Build()
		}
	}

	return samples, nil
}

// GetAudioInfo returns format information about the audio file at path
// without decoding the sample data.
func GetAudioInfo(path string) (AudioInfo, error) {
	file, err := os.Open(path)
	if err != nil {
		return AudioInfo{}, errors.New(err).
			Component("myaudio").
			Category(errors.CategoryFileIO).
			Context("audio_path", path).
			Build()
	}
	defer file.Close()

	var info AudioInfo
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		info, err = readWAVInfo(file)
	case ".flac":
		info, err = readFLACInfo(file)
	default:
		err = errors.Newf("unsupported audio format: %s", filepath.Ext(path)).Build()
	}
	if err != nil {
		return AudioInfo{}, errors.New(err).
			Component("myaudio").
			Category(errors.CategoryAudioDecode).
			Context("audio_path", path).
			Build()
	}
	return info, nil
}

// getAudioDivisor returns the scale factor converting integer PCM samples of
// the given bit depth to float32 in [-1, 1].
func getAudioDivisor(bitDepth int) (float32, error) {
	switch bitDepth {
	case 16:
		return 32768.0, nil
	case 24:
		return 8388608.0, nil
	case 32:
		return 2147483648.0, nil
	default:
		return 0, errors.Newf("unsupported audio file bit depth: %d", bitDepth).
			Component("myaudio").
			Category(errors.CategoryAudioDecode).
			Build()
	}
}

// downmix averages interleaved multi-channel samples into a mono signal.
// Mono input is returned unchanged.
func downmix(samples []float32, numChannels int) []float32 {
	if numChannels <= 1 {
		return samples
	}

	frames := len(samples) / numChannels
	mono := make([]float32, frames)
	for i := range frames {
		var sum float32
		for ch := range numChannels {
			sum += samples[i*numChannels+ch]
		}
		mono[i] = sum / float32(numChannels)
	}
	return mono
}
