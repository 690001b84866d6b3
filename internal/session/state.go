package session

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/asdscreen/internal/predictor"
	"github.com/abhisek/asdscreen/internal/screening"
)

// Stage represents where the wizard currently is.
type Stage int

const (
	StageCollectingBasics        Stage = iota // Demographics form
	StageCollectingQuestionnaire              // Ten questions
	StageShowingResult                        // Outcome or inference error
)

func (s Stage) String() string {
	switch s {
	case StageCollectingBasics:
		return "collecting_basics"
	case StageCollectingQuestionnaire:
		return "collecting_questionnaire"
	case StageShowingResult:
		return "showing_result"
	default:
		return "unknown"
	}
}

// Predictor maps a feature vector to a result.
type Predictor interface {
	Predict(vector []float64) (predictor.Outcome, error)
}

// Session tracks one user's progress through the wizard.
// It has a single owner and is not safe for concurrent use.
type Session struct {
	// ID correlates log lines; it is never shown to the user.
	ID string

	Stage  Stage
	Record screening.AnswerRecord

	// Outcome is the cached result of the last successful Evaluate.
	Outcome *predictor.Outcome

	// InferenceErr is set when the last Evaluate failed.
	InferenceErr error

	// Log receives stage transitions. Nil means no logging.
	Log *zap.Logger
}

// New creates a session at the first stage with an empty record.
func New() *Session {
	return &Session{
		ID:    uuid.New().String(),
		Stage: StageCollectingBasics,
	}
}

// Reset discards everything and returns to the first stage under a new ID.
func Reset(s *Session) {
	prev := s.Stage
	s.ID = uuid.New().String()
	s.Stage = StageCollectingBasics
	s.Record = screening.AnswerRecord{}
	s.Outcome = nil
	s.InferenceErr = nil
	s.logger().Info("session reset", zap.String("session_id", s.ID), zap.Stringer("from", prev))
}

// Failed reports whether the result stage is showing an inference error.
func (s *Session) Failed() bool {
	return s.Stage == StageShowingResult && s.InferenceErr != nil
}

func (s *Session) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}
