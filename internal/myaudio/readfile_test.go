package myaudio

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestWAV encodes a 16-bit PCM WAV file with a 1 kHz sine tone.
func writeTestWAV(t *testing.T, path string, sampleRate, numChannels, numFrames int) {
	t.Helper()

	out, err := os.Create(path)
	require.NoError(t, err)
	defer out.Close()

	encoder := wav.NewEncoder(out, sampleRate, 16, numChannels, 1)

	data := make([]int, numFrames*numChannels)
	for i := range numFrames {
		sample := int(10000 * math.Sin(2*math.Pi*1000*float64(i)/float64(sampleRate)))
		for ch := range numChannels {
			data[i*numChannels+ch] = sample
		}
	}
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: numChannels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	require.NoError(t, encoder.Write(buf))
	require.NoError(t, encoder.Close())
}

func TestReadAudioFileWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	writeTestWAV(t, path, 48000, 1, 48000)

	samples, err := ReadAudioFile(path)
	require.NoError(t, err)
	assert.Len(t, samples, 48000)

	// Samples are scaled to [-1, 1].
	var peak float32
	for _, s := range samples {
		if s > peak {
			peak = s
		}
		assert.LessOrEqual(t, s, float32(1))
		assert.GreaterOrEqual(t, s, float32(-1))
	}
	assert.InDelta(t, 10000.0/32768.0, float64(peak), 0.01)
}

func TestReadAudioFileStereoDownmix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stereo.wav")
	writeTestWAV(t, path, 48000, 2, 24000)

	samples, err := ReadAudioFile(path)
	require.NoError(t, err)
	assert.Len(t, samples, 24000)
}

func TestReadAudioFileResamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone44k.wav")
	writeTestWAV(t, path, 44100, 1, 44100)

	// One second at 44.1 kHz becomes one second at 48 kHz.
	samples, err := ReadAudioFile(path)
	require.NoError(t, err)
	assert.InDelta(t, 48000, len(samples), 10)
}

func TestReadAudioFileUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.mp3")
	require.NoError(t, os.WriteFile(path, []byte("not audio"), 0o644))

	_, err := ReadAudioFile(path)
	assert.Error(t, err)
}

func TestReadAudioFileMissing(t *testing.T) {
	_, err := ReadAudioFile(filepath.Join(t.TempDir(), "nope.wav"))
	assert.Error(t, err)
}

func TestGetAudioInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	writeTestWAV(t, path, 44100, 2, 1000)

	info, err := GetAudioInfo(path)
	require.NoError(t, err)
	assert.Equal(t, 44100, info.SampleRate)
	assert.Equal(t, 2, info.NumChannels)
	assert.Equal(t, 16, info.BitDepth)
}

func TestGetAudioDivisor(t *testing.T) {
	t.Parallel()

	for bitDepth, want := range map[int]float32{16: 32768, 24: 8388608, 32: 2147483648} {
		got, err := getAudioDivisor(bitDepth)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := getAudioDivisor(8)
	assert.Error(t, err)
}

func TestDownmix(t *testing.T) {
	t.Parallel()

	stereo := []float32{1, 0, 0.5, 0.5, -1, 1}
	mono := downmix(stereo, 2)
	require.Len(t, mono, 3)
	assert.InDelta(t, 0.5, mono[0], 1e-6)
	assert.InDelta(t, 0.5, mono[1], 1e-6)
	assert.InDelta(t, 0, mono[2], 1e-6)

	// Mono passes through untouched.
	in := []float32{0.1, 0.2}
	assert.Equal(t, in, downmix(in, 1))
}
