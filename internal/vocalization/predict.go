package vocalization

import (
	"math"

	tflite "github.com/tphakala/go-tflite"

	"github.com/tphakala/vocalization-go/internal/errors"
)

// Prediction is the raw model output for one classification.
type Prediction struct {
	Category      string
	Confidence    float64
	Probabilities map[string]float64
}

// predict runs inference on a loaded model with the given feature matrix and
// returns the winning category with its softmax probability.
func predict(entry *ModelEntry, features [][]float32) (Prediction, error) {
	input := entry.Interpreter.GetInputTensor(0)
	if input == nil {
		return Prediction{}, errors.Newf("cannot get input tensor").
			Component("vocalization").
			Category(errors.CategoryInference).
			ModelContext(entry.Path, "").
			Build()
	}

	flat := input.Float32s()
	if len(flat) != inputHeight*inputWidth {
		return Prediction{}, errors.Newf("unexpected input tensor size %d, want %d", len(flat), inputHeight*inputWidth).
			Component("vocalization").
			Category(errors.CategoryInference).
			ModelContext(entry.Path, "").
			Build()
	}

	for i, row := range features {
		copy(flat[i*inputWidth:(i+1)*inputWidth], row)
	}

	if status := entry.Interpreter.Invoke(); status != tflite.OK {
		return Prediction{}, errors.Newf("tensor invoke failed: %v", status).
			Component("vocalization").
			Category(errors.CategoryInference).
			ModelContext(entry.Path, "").
			Build()
	}

	output := entry.Interpreter.GetOutputTensor(0)
	if output == nil {
		return Prediction{}, errors.Newf("cannot get output tensor").
			Component("vocalization").
			Category(errors.CategoryInference).
			ModelContext(entry.Path, "").
			Build()
	}

	scores := make([]float32, len(entry.Labels))
	copy(scores, output.Float32s())

	probs := softmax(scores)

	best := 0
	for i, p := range probs {
		if p > probs[best] {
			best = i
		}
	}

	probabilities := make(map[string]float64, len(entry.Labels))
	for i, label := range entry.Labels {
		probabilities[label] = probs[i]
	}

	return Prediction{
		Category:      entry.Labels[best],
		Confidence:    probs[best],
		Probabilities: probabilities,
	}, nil
}

// softmax converts raw scores to probabilities. The max score is subtracted
// first for numerical stability.
func softmax(scores []float32) []float64 {
	if len(scores) == 0 {
		return nil
	}

	maxScore := scores[0]
	for _, s := range scores[1:] {
		if s > maxScore {
			maxScore = s
		}
	}

	probs := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		probs[i] = math.Exp(float64(s - maxScore))
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}
