package session

import (
	"errors"

	"go.uber.org/zap"

	"github.com/abhisek/asdscreen/internal/predictor"
	"github.com/abhisek/asdscreen/internal/screening"
)

// SubmitBasics validates the demographics form and advances to the
// questionnaire. On failure the record and stage are left untouched and a
// *screening.ValidationError is returned.
func SubmitBasics(s *Session, in screening.BasicsInput) error {
	if s.Stage != StageCollectingBasics {
		return wrongStage("submit basics", s.Stage)
	}

	if err := in.Validate(); err != nil {
		logValidation(s, err)
		return err
	}

	s.Record.Age = in.Age
	s.Record.Gender = in.Gender
	s.Record.Jaundice = in.Jaundice
	s.Record.Relation = in.Relation
	advance(s, StageCollectingQuestionnaire)
	return nil
}

// SubmitQuestionnaire stores the binary reduction of all ten responses and
// advances to the result stage. Any unanswered question blocks submission.
func SubmitQuestionnaire(s *Session, responses []screening.Response) error {
	if s.Stage != StageCollectingQuestionnaire {
		return wrongStage("submit questionnaire", s.Stage)
	}

	binary, err := screening.ReduceResponses(responses)
	if err != nil {
		logValidation(s, err)
		return err
	}

	s.Record.Responses = binary
	advance(s, StageShowingResult)
	return nil
}

// Evaluate encodes the record and runs the predictor. A success caches the
// outcome; a failure is stored on the session as an *predictor.InferenceError
// and returned. Calling it again retries with the same record.
func Evaluate(s *Session, p Predictor) error {
	if s.Stage != StageShowingResult {
		return wrongStage("evaluate", s.Stage)
	}

	vector, err := screening.FeatureVector(s.Record)
	if err != nil {
		return fail(s, &predictor.InferenceError{Stage: predictor.StageInput, Err: err})
	}

	if p == nil {
		return fail(s, &predictor.InferenceError{Stage: predictor.StageScale, Err: predictor.ErrUnavailable})
	}

	outcome, err := p.Predict(vector)
	if err != nil {
		var ie *predictor.InferenceError
		if !errors.As(err, &ie) {
			err = &predictor.InferenceError{Stage: predictor.StageClassify, Err: err}
		}
		return fail(s, err)
	}

	s.Outcome = &outcome
	s.InferenceErr = nil
	s.logger().Info("screening evaluated",
		zap.String("session_id", s.ID),
		zap.Stringer("outcome", outcome))
	return nil
}

func fail(s *Session, err error) error {
	s.Outcome = nil
	s.InferenceErr = err
	s.logger().Warn("evaluation failed",
		zap.String("session_id", s.ID),
		zap.Error(err))
	return err
}

func advance(s *Session, to Stage) {
	from := s.Stage
	s.Stage = to
	s.logger().Info("stage advanced",
		zap.String("session_id", s.ID),
		zap.Stringer("from", from),
		zap.Stringer("to", to))
}

// logValidation records which fields failed, never their values.
func logValidation(s *Session, err error) {
	var ve *screening.ValidationError
	if errors.As(err, &ve) {
		s.logger().Debug("submission rejected",
			zap.String("session_id", s.ID),
			zap.String("stage", ve.Stage),
			zap.Strings("fields", ve.FieldNames()))
		return
	}
	s.logger().Warn("submission rejected", zap.String("session_id", s.ID), zap.Error(err))
}
