package predictor

import (
	"errors"
	"fmt"
)

// Pipeline stages reported in InferenceError.
const (
	StageInput    = "input"
	StageScale    = "scale"
	StageClassify = "classify"
)

// ErrUnavailable indicates a collaborator was never supplied.
var ErrUnavailable = errors.New("model component unavailable")

// InferenceError indicates the scaling or classification step failed.
// It is recoverable: the session stays on the result stage and offers retry.
type InferenceError struct {
	Stage string
	Err   error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("inference failed at %s: %v", e.Stage, e.Err)
}

func (e *InferenceError) Unwrap() error { return e.Err }
