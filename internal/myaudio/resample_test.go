package myaudio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sine(freq float64, sampleRate, n int) []float32 {
	samples := make([]float32, n)
	for i := range samples {
		samples[i] = float32(0.5 * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)))
	}
	return samples
}

func TestResampleAudioUpsample(t *testing.T) {
	t.Parallel()

	in := sine(1000, 44100, 44100)
	out, err := ResampleAudio(in, 44100, 48000)
	require.NoError(t, err)
	assert.InDelta(t, 48000, len(out), 2)
}

func TestResampleAudioDownsample(t *testing.T) {
	t.Parallel()

	in := sine(1000, 48000, 48000)
	out, err := ResampleAudio(in, 48000, 22050)
	require.NoError(t, err)
	assert.InDelta(t, 22050, len(out), 2)
}

func TestResampleAudioSameRate(t *testing.T) {
	t.Parallel()

	in := sine(1000, 48000, 1024)
	out, err := ResampleAudio(in, 48000, 48000)
	require.NoError(t, err)
	assert.Equal(t, len(in), len(out))
}

func TestResampleAudioPreservesAmplitude(t *testing.T) {
	t.Parallel()

	out, err := ResampleAudio(sine(1000, 44100, 44100), 44100, 48000)
	require.NoError(t, err)

	var peak float32
	for _, s := range out {
		if abs := float32(math.Abs(float64(s))); abs > peak {
			peak = abs
		}
	}
	// Cubic interpolation may overshoot slightly but must stay close.
	assert.InDelta(t, 0.5, float64(peak), 0.05)
}

func TestResampleAudioInvalidInput(t *testing.T) {
	t.Parallel()

	_, err := ResampleAudio(sine(1000, 48000, 1024), 0, 48000)
	assert.Error(t, err)

	_, err = ResampleAudio(sine(1000, 48000, 1024), 48000, -1)
	assert.Error(t, err)

	_, err = ResampleAudio([]float32{0, 0.1}, 44100, 48000)
	assert.Error(t, err)
}
