package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/asdscreen/internal/predictor"
	"github.com/abhisek/asdscreen/internal/screening"
)

type stubScaler struct{ err error }

func (s stubScaler) Transform(x []float64) ([]float64, error) {
	if s.err != nil {
		return nil, s.err
	}
	return append([]float64(nil), x...), nil
}

type stubClassifier struct {
	label int
	seen  []float64
}

func (c *stubClassifier) Predict(x []float64) (int, error) {
	c.seen = x
	return c.label, nil
}

func validBasics() screening.BasicsInput {
	return screening.BasicsInput{
		Age:      25,
		Gender:   screening.GenderMale,
		Jaundice: screening.JaundiceNo,
		Relation: screening.RelationSelf,
	}
}

// scenarioResponses reduces to [1,0,1,1,0,0,1,0,1,0].
func scenarioResponses() []screening.Response {
	a, d := screening.ResponseDefinitelyAgree, screening.ResponseDefinitelyDisagree
	sa, sd := screening.ResponseSlightlyAgree, screening.ResponseSlightlyDisagree
	return []screening.Response{a, d, sa, a, sd, d, sa, sd, a, d}
}

func atResult(t *testing.T) *Session {
	t.Helper()
	s := New()
	require.NoError(t, SubmitBasics(s, validBasics()))
	require.NoError(t, SubmitQuestionnaire(s, scenarioResponses()))
	require.Equal(t, StageShowingResult, s.Stage)
	return s
}

func TestNew(t *testing.T) {
	s := New()
	assert.Equal(t, StageCollectingBasics, s.Stage)
	assert.True(t, s.Record.IsEmpty())
	assert.NotEmpty(t, s.ID)
	assert.Nil(t, s.Outcome)
}

func TestSubmitBasics_Advances(t *testing.T) {
	s := New()
	require.NoError(t, SubmitBasics(s, validBasics()))

	assert.Equal(t, StageCollectingQuestionnaire, s.Stage)
	assert.True(t, s.Record.BasicsComplete())
	assert.Equal(t, 25, s.Record.Age)
}

func TestSubmitBasics_PlaceholderDoesNotMutate(t *testing.T) {
	tests := []struct {
		name  string
		input screening.BasicsInput
		field string
	}{
		{"gender", func() screening.BasicsInput { in := validBasics(); in.Gender = screening.GenderUnset; return in }(), "Gender"},
		{"jaundice", func() screening.BasicsInput { in := validBasics(); in.Jaundice = screening.JaundiceUnset; return in }(), "Jaundice"},
		{"relation", func() screening.BasicsInput { in := validBasics(); in.Relation = screening.RelationUnset; return in }(), "Relation"},
		{"age", func() screening.BasicsInput { in := validBasics(); in.Age = 0; return in }(), "Age"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			err := SubmitBasics(s, tt.input)

			var ve *screening.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Contains(t, ve.FieldNames(), tt.field)
			assert.Equal(t, StageCollectingBasics, s.Stage)
			assert.True(t, s.Record.IsEmpty(), "record must be untouched")
		})
	}
}

func TestSubmitQuestionnaire_UnansweredBlocks(t *testing.T) {
	s := New()
	require.NoError(t, SubmitBasics(s, validBasics()))

	responses := scenarioResponses()
	responses[3] = screening.ResponseUnanswered
	responses[9] = screening.ResponseUnanswered

	err := SubmitQuestionnaire(s, responses)
	var ve *screening.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"Q4", "Q10"}, ve.FieldNames())
	assert.Equal(t, StageCollectingQuestionnaire, s.Stage)
	assert.Nil(t, s.Record.Responses)
}

func TestSubmitQuestionnaire_StoresBinary(t *testing.T) {
	s := atResult(t)
	assert.Equal(t, []int{1, 0, 1, 1, 0, 0, 1, 0, 1, 0}, s.Record.Responses)
}

func TestWrongStage(t *testing.T) {
	s := New()
	assert.ErrorIs(t, SubmitQuestionnaire(s, scenarioResponses()), ErrWrongStage)
	assert.ErrorIs(t, Evaluate(s, nil), ErrWrongStage)

	s = atResult(t)
	assert.ErrorIs(t, SubmitBasics(s, validBasics()), ErrWrongStage)
}

func TestEvaluate_Positive(t *testing.T) {
	s := atResult(t)
	cls := &stubClassifier{label: 1}
	p := predictor.New(stubScaler{}, cls, nil)

	require.NoError(t, Evaluate(s, p))
	require.NotNil(t, s.Outcome)
	assert.Equal(t, predictor.Positive, *s.Outcome)
	assert.NoError(t, s.InferenceErr)
	assert.False(t, s.Failed())
	assert.Equal(t, []float64{1, 0, 1, 1, 0, 0, 1, 0, 1, 0, 25, 1, 0, 3}, cls.seen)
}

func TestEvaluate_ScalerFailureThenRetry(t *testing.T) {
	s := atResult(t)
	before := s.Record
	before.Responses = append([]int(nil), s.Record.Responses...)

	failing := predictor.New(stubScaler{err: errors.New("malformed vector")}, &stubClassifier{}, nil)
	err := Evaluate(s, failing)

	var ie *predictor.InferenceError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, predictor.StageScale, ie.Stage)
	assert.Equal(t, StageShowingResult, s.Stage)
	assert.True(t, s.Failed())
	assert.Nil(t, s.Outcome)
	assert.Equal(t, before, s.Record)

	working := predictor.New(stubScaler{}, &stubClassifier{label: 0}, nil)
	require.NoError(t, Evaluate(s, working))
	require.NotNil(t, s.Outcome)
	assert.Equal(t, predictor.Negative, *s.Outcome)
	assert.False(t, s.Failed())
}

func TestEvaluate_NilPredictor(t *testing.T) {
	s := atResult(t)
	err := Evaluate(s, nil)
	assert.ErrorIs(t, err, predictor.ErrUnavailable)
	assert.True(t, s.Failed())
}

func TestReset(t *testing.T) {
	s := atResult(t)
	require.NoError(t, Evaluate(s, predictor.New(stubScaler{}, &stubClassifier{label: 1}, nil)))
	oldID := s.ID

	Reset(s)

	assert.Equal(t, StageCollectingBasics, s.Stage)
	assert.True(t, s.Record.IsEmpty())
	assert.Nil(t, s.Outcome)
	assert.NoError(t, s.InferenceErr)
	assert.NotEqual(t, oldID, s.ID)

	// A full second pass works after reset.
	require.NoError(t, SubmitBasics(s, validBasics()))
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "collecting_basics", StageCollectingBasics.String())
	assert.Equal(t, "showing_result", StageShowingResult.String())
	assert.Equal(t, "unknown", Stage(42).String())
}
