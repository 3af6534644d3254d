package vocalization

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/tphakala/vocalization-go/internal/conf"
	"github.com/tphakala/vocalization-go/internal/errors"
	"github.com/tphakala/vocalization-go/internal/logger"
	"github.com/tphakala/vocalization-go/internal/myaudio"
)

// Spectrogram parameters. These must match what the models were trained with
// and are deliberately not configurable.
const (
	segmentDuration = 3.0 // seconds of audio per classification
	numMels         = 128
	fftSize         = 2048
	hopLength       = 512
	freqMin         = 500.0
	freqMax         = 8000.0

	// inputHeight x inputWidth is the fixed model input shape.
	inputHeight = 128
	inputWidth  = 128

	// normEpsilon guards the min-max normalization against division by zero
	// on silent input.
	normEpsilon = 1e-8

	// dbFloor clamps power values before the log scale conversion.
	dbFloor = 1e-10
)

// segmentSamples is the fixed sample count of one classification segment.
const segmentSamples = int(segmentDuration * conf.SampleRate)

// FeatureExtractor converts an audio file into the fixed-size normalized mel
// spectrogram the models consume.
type FeatureExtractor struct {
	log     logger.Logger
	filters [][]float64 // mel filterbank, built once
	window  []float64   // Hann window, built once
}

// NewFeatureExtractor creates a feature extractor with the fixed spectrogram
// parameters.
func NewFeatureExtractor() *FeatureExtractor {
	return &FeatureExtractor{
		log:     GetLogger().Module("features"),
		filters: melFilterbank(numMels, fftSize, conf.SampleRate, freqMin, freqMax),
		window:  hannWindow(fftSize),
	}
}

// Extract decodes the audio file and returns a inputHeight x inputWidth
// matrix of values in [0, 1].
func (e *FeatureExtractor) Extract(audioPath string) ([][]float32, error) {
	samples, err := myaudio.ReadAudioFile(audioPath)
	if err != nil {
		return nil, err
	}
	return e.extractFromSamples(samples)
}

// extractFromSamples runs the spectrogram pipeline on decoded samples.
func (e *FeatureExtractor) extractFromSamples(samples []float32) ([][]float32, error) {
	if len(samples) == 0 {
		return nil, errors.Newf("no audio samples to process").
			Component("vocalization").
			Category(errors.CategoryAudio).
			Build()
	}

	samples = fixSegmentLength(samples)

	melSpec := e.melSpectrogram(samples)
	powerToDB(melSpec)
	minMaxNormalize(melSpec)

	if len(melSpec) != inputHeight || len(melSpec[0]) != inputWidth {
		melSpec = resizeBilinear(melSpec, inputHeight, inputWidth)
	}

	features := make([][]float32, inputHeight)
	for i := range melSpec {
		row := make([]float32, inputWidth)
		for j := range melSpec[i] {
			row[j] = float32(melSpec[i][j])
		}
		features[i] = row
	}
	return features, nil
}

// fixSegmentLength right-pads short clips with silence and truncates long
// clips from the start, guaranteeing exactly segmentSamples samples.
func fixSegmentLength(samples []float32) []float32 {
	if len(samples) >= segmentSamples {
		return samples[:segmentSamples]
	}
	padded := make([]float32, segmentSamples)
	copy(padded, samples)
	return padded
}

// melSpectrogram computes a mel-scaled power spectrogram, numMels rows by
// frame count columns.
func (e *FeatureExtractor) melSpectrogram(samples []float32) [][]float64 {
	numFrames := 1 + (len(samples)-fftSize)/hopLength
	numBins := fftSize/2 + 1

	// Power spectra per frame.
	power := make([][]float64, numFrames)
	frame := make([]float64, fftSize)
	for t := range numFrames {
		start := t * hopLength
		for i := range fftSize {
			frame[i] = float64(samples[start+i]) * e.window[i]
		}

		spectrum := fft.FFTReal(frame)

		bins := make([]float64, numBins)
		for k := range numBins {
			mag := cmplx.Abs(spectrum[k])
			bins[k] = mag * mag
		}
		power[t] = bins
	}

	// Apply the filterbank: mel[m][t] = filters[m] . power[t]
	mel := make([][]float64, numMels)
	for m := range numMels {
		row := make([]float64, numFrames)
		filter := e.filters[m]
		for t := range numFrames {
			var sum float64
			for k, w := range filter {
				if w != 0 {
					sum += w * power[t][k]
				}
			}
			row[t] = sum
		}
		mel[m] = row
	}
	return mel
}

// powerToDB converts a power spectrogram to dB scale referenced to its
// maximum value, in place.
func powerToDB(spec [][]float64) {
	ref := dbFloor
	for _, row := range spec {
		for _, v := range row {
			if v > ref {
				ref = v
			}
		}
	}
	refDB := 10 * math.Log10(ref)

	for _, row := range spec {
		for j, v := range row {
			row[j] = 10*math.Log10(math.Max(v, dbFloor)) - refDB
		}
	}
}

// minMaxNormalize scales the matrix to [0, 1] in place. The epsilon keeps
// silent input from dividing by zero.
func minMaxNormalize(spec [][]float64) {
	minVal := math.Inf(1)
	maxVal := math.Inf(-1)
	for _, row := range spec {
		for _, v := range row {
			minVal = math.Min(minVal, v)
			maxVal = math.Max(maxVal, v)
		}
	}

	scale := maxVal - minVal + normEpsilon
	for _, row := range spec {
		for j, v := range row {
			row[j] = (v - minVal) / scale
		}
	}
}

// resizeBilinear resamples a matrix to targetRows x targetCols using
// bilinear interpolation.
func resizeBilinear(src [][]float64, targetRows, targetCols int) [][]float64 {
	srcRows := len(src)
	srcCols := len(src[0])

	dst := make([][]float64, targetRows)
	for i := range targetRows {
		row := make([]float64, targetCols)

		srcY := float64(i) * float64(srcRows-1) / float64(max(targetRows-1, 1))
		y0 := int(srcY)
		y1 := min(y0+1, srcRows-1)
		fy := srcY - float64(y0)

		for j := range targetCols {
			srcX := float64(j) * float64(srcCols-1) / float64(max(targetCols-1, 1))
			x0 := int(srcX)
			x1 := min(x0+1, srcCols-1)
			fx := srcX - float64(x0)

			top := src[y0][x0]*(1-fx) + src[y0][x1]*fx
			bottom := src[y1][x0]*(1-fx) + src[y1][x1]*fx
			row[j] = top*(1-fy) + bottom*fy
		}
		dst[i] = row
	}
	return dst
}

// hannWindow returns a Hann window of length n.
func hannWindow(n int) []float64 {
	w := make([]float64, n)
	for i := range n {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}
	return w
}

// melFilterbank builds numFilters triangular filters spanning fmin..fmax Hz
// over the positive FFT bins.
func melFilterbank(numFilters, fftSize, sampleRate int, fmin, fmax float64) [][]float64 {
	numBins := fftSize/2 + 1

	melMin := hzToMel(fmin)
	melMax := hzToMel(fmax)

	// numFilters+2 equally spaced points on the mel scale give the filter
	// edges and centers.
	melPoints := make([]float64, numFilters+2)
	for i := range melPoints {
		melPoints[i] = melMin + (melMax-melMin)*float64(i)/float64(numFilters+1)
	}

	binFreq := make([]float64, numBins)
	for k := range numBins {
		binFreq[k] = float64(k) * float64(sampleRate) / float64(fftSize)
	}

	filters := make([][]float64, numFilters)
	for m := range numFilters {
		lower := melToHz(melPoints[m])
		center := melToHz(melPoints[m+1])
		upper := melToHz(melPoints[m+2])

		filter := make([]float64, numBins)
		for k, f := range binFreq {
			switch {
			case f <= lower || f >= upper:
				// outside the triangle
			case f <= center:
				filter[k] = (f - lower) / (center - lower)
			default:
				filter[k] = (upper - f) / (upper - center)
			}
		}
		filters[m] = filter
	}
	return filters
}

// hzToMel converts a frequency in Hz to the mel scale (HTK formula).
func hzToMel(hz float64) float64 {
	return 2595 * math.Log10(1+hz/700)
}

// melToHz converts a mel value back to Hz.
func melToHz(mel float64) float64 {
	return 700 * (math.Pow(10, mel/2595) - 1)
}
