package myaudio

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/tphakala/vocalization-go/internal/conf"
)

// pcmBufferSize is the decode buffer size in samples. One second of 48 kHz
// stereo fits comfortably; short clips decode in a single pass.
const pcmBufferSize = 96_000

func readWAVInfo(file *os.File) (AudioInfo, error) {
	decoder := wav.NewDecoder(file)
	decoder.ReadInfo()

	if !decoder.IsValidFile() {
		return AudioInfo{}, errors.New("invalid WAV file format")
	}

	if decoder.BitDepth != 16 && decoder.BitDepth != 24 && decoder.BitDepth != 32 {
		return AudioInfo{}, fmt.Errorf("unsupported bit depth: %d", decoder.BitDepth)
	}

	if decoder.NumChans != 1 && decoder.NumChans != 2 {
		return AudioInfo{}, fmt.Errorf("unsupported number of channels: %d", decoder.NumChans)
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return AudioInfo{}, err
	}

	bytesPerSample := int(decoder.BitDepth / 8)
	totalSamples := int(fileInfo.Size()) / bytesPerSample / int(decoder.NumChans)

	return AudioInfo{
		SampleRate:   int(decoder.SampleRate),
		TotalSamples: totalSamples,
		NumChannels:  int(decoder.NumChans),
		BitDepth:     int(decoder.BitDepth),
	}, nil
}

// readWAV decodes the full WAV stream into mono float32 samples at the
// source sample rate.
func readWAV(file *os.File) ([]float32, int, error) {
	decoder := wav.NewDecoder(file)
	decoder.ReadInfo()
	if !decoder.IsValidFile() {
		return nil, 0, errors.New("input is not a valid WAV audio file")
	}

	numChannels := int(decoder.NumChans)
	if numChannels != 1 && numChannels != 2 {
		return nil, 0, fmt.Errorf("unsupported number of channels: %d", numChannels)
	}

	divisor, err := getAudioDivisor(int(decoder.BitDepth))
	if err != nil {
		return nil, 0, err
	}

	buf := &audio.IntBuffer{
		Data:   make([]int, pcmBufferSize),
		Format: &audio.Format{SampleRate: conf.SampleRate, NumChannels: numChannels},
	}

	var samples []float32
	for {
		n, err := decoder.PCMBuffer(buf)
		if err != nil {
			return nil, 0, err
		}
		if n == 0 {
			break
		}

		for _, sample := range buf.Data[:n] {
			samples = append(samples, float32(sample)/divisor)
		}
	}

	return downmix(samples, numChannels), int(decoder.SampleRate), nil
}
