package predictor

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/asdscreen/internal/screening"
)

// Scaler normalizes a raw feature vector to the distribution the
// classifier was trained on. Implementations must be pure.
type Scaler interface {
	Transform(x []float64) ([]float64, error)
}

// Classifier returns a binary label (0 or 1) for a scaled vector.
type Classifier interface {
	Predict(x []float64) (int, error)
}

// Outcome is one of the two terminal result variants.
type Outcome int

const (
	Negative Outcome = iota
	Positive
)

func (o Outcome) String() string {
	if o == Positive {
		return "positive"
	}
	return "negative"
}

// Headline returns the short result title.
func (o Outcome) Headline() string {
	if o == Positive {
		return "TAKE CARE!"
	}
	return "ALL WELL!"
}

// Message returns the result body shown to the user.
func (o Outcome) Message() string {
	if o == Positive {
		return "The system predicts that you may have Autism Spectrum Disorder (ASD).\n" +
			"Please consider seeing a medical specialist for further assessment."
	}
	return "The system found no Autism Spectrum Disorder (ASD) traits."
}

// Adapter runs the scale-then-classify pipeline.
type Adapter struct {
	scaler     Scaler
	classifier Classifier
	log        *zap.Logger
}

// New creates an Adapter. A nil logger is replaced with a no-op logger.
func New(scaler Scaler, classifier Classifier, log *zap.Logger) *Adapter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Adapter{scaler: scaler, classifier: classifier, log: log}
}

// Predict maps a feature vector to an Outcome. Every failure is returned
// as an *InferenceError; no partial result is ever produced.
func (a *Adapter) Predict(vector []float64) (Outcome, error) {
	if a == nil {
		return Negative, &InferenceError{Stage: StageScale, Err: ErrUnavailable}
	}
	start := time.Now()

	outcome, err := a.predict(vector)
	elapsed := time.Since(start)

	if err != nil {
		var ie *InferenceError
		stage := "unknown"
		if errors.As(err, &ie) {
			stage = ie.Stage
		}
		a.log.Warn("inference failed",
			zap.String("stage", stage),
			zap.Duration("latency", elapsed),
			zap.Error(err))
		return Negative, err
	}

	a.log.Info("prediction complete",
		zap.Stringer("outcome", outcome),
		zap.Duration("latency", elapsed))
	return outcome, nil
}

func (a *Adapter) predict(vector []float64) (Outcome, error) {
	if a.scaler == nil {
		return Negative, &InferenceError{Stage: StageScale, Err: ErrUnavailable}
	}
	if a.classifier == nil {
		return Negative, &InferenceError{Stage: StageClassify, Err: ErrUnavailable}
	}
	if len(vector) != screening.FeatureCount {
		return Negative, &InferenceError{
			Stage: StageInput,
			Err:   fmt.Errorf("feature vector has %d values, want %d", len(vector), screening.FeatureCount),
		}
	}

	// Collaborators must not see or mutate the caller's slice.
	in := make([]float64, len(vector))
	copy(in, vector)

	scaled, err := a.scaler.Transform(in)
	if err != nil {
		return Negative, &InferenceError{Stage: StageScale, Err: err}
	}

	label, err := a.classifier.Predict(scaled)
	if err != nil {
		return Negative, &InferenceError{Stage: StageClassify, Err: err}
	}

	switch label {
	case 1:
		return Positive, nil
	case 0:
		return Negative, nil
	}
	return Negative, &InferenceError{
		Stage: StageClassify,
		Err:   fmt.Errorf("classifier returned label %d, want 0 or 1", label),
	}
}
