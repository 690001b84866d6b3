package screening

import (
	"errors"
	"fmt"
	"strconv"
)

// FeatureCount is the length of every feature vector:
// ten responses, then age, gender, jaundice and relation codes.
const FeatureCount = QuestionCount + 4

// Positions of the demographic features within the vector.
const (
	AgeIndex      = QuestionCount
	GenderIndex   = QuestionCount + 1
	JaundiceIndex = QuestionCount + 2
	RelationIndex = QuestionCount + 3
)

// ErrIncompleteRecord is returned when a vector is requested for a record
// that has not passed both stages.
var ErrIncompleteRecord = errors.New("answer record is incomplete")

// Code returns the model encoding for g: male 1, female 0.
func (g Gender) Code() (int, error) {
	switch g {
	case GenderMale:
		return 1, nil
	case GenderFemale:
		return 0, nil
	}
	return 0, fmt.Errorf("gender %d has no encoding", int(g))
}

// Code returns the model encoding for j: yes 1, no 0.
func (j Jaundice) Code() (int, error) {
	switch j {
	case JaundiceYes:
		return 1, nil
	case JaundiceNo:
		return 0, nil
	}
	return 0, fmt.Errorf("jaundice %d has no encoding", int(j))
}

// Code returns the model encoding for r:
// family 0, healthcare professional 1, other 2, self 3.
func (r Relation) Code() (int, error) {
	switch r {
	case RelationFamily:
		return 0, nil
	case RelationHealthcareProfessional:
		return 1, nil
	case RelationOther:
		return 2, nil
	case RelationSelf:
		return 3, nil
	}
	return 0, fmt.Errorf("relation %d has no encoding", int(r))
}

// Binary reduces a response: either Agree variant is 1, either Disagree is 0.
func (r Response) Binary() (int, error) {
	switch r {
	case ResponseDefinitelyAgree, ResponseSlightlyAgree:
		return 1, nil
	case ResponseSlightlyDisagree, ResponseDefinitelyDisagree:
		return 0, nil
	}
	return 0, fmt.Errorf("response %d is not an answer", int(r))
}

// ReduceResponses converts a full questionnaire into binary values.
// Every question must be explicitly answered; unanswered items produce a
// *ValidationError listing them by number.
func ReduceResponses(responses []Response) ([]int, error) {
	if len(responses) != QuestionCount {
		return nil, &ValidationError{
			Stage: "questionnaire",
			Fields: []FieldError{{
				Field:   "Responses",
				Message: fmt.Sprintf("Expected %d answers, got %d", QuestionCount, len(responses)),
			}},
		}
	}

	ve := &ValidationError{Stage: "questionnaire"}
	out := make([]int, QuestionCount)
	for i, r := range responses {
		b, err := r.Binary()
		if err != nil {
			ve.Fields = append(ve.Fields, FieldError{
				Field:   "Q" + strconv.Itoa(i+1),
				Message: fmt.Sprintf("Question %d is unanswered", i+1),
			})
			continue
		}
		out[i] = b
	}

	if len(ve.Fields) > 0 {
		return nil, ve
	}
	return out, nil
}

// FeatureVector assembles the fixed-order numeric input for the model:
// [10 responses][age][gender][jaundice][relation].
func FeatureVector(r AnswerRecord) ([]float64, error) {
	if !r.BasicsComplete() || !r.QuestionnaireComplete() {
		return nil, ErrIncompleteRecord
	}

	g, err := r.Gender.Code()
	if err != nil {
		return nil, err
	}
	j, err := r.Jaundice.Code()
	if err != nil {
		return nil, err
	}
	rel, err := r.Relation.Code()
	if err != nil {
		return nil, err
	}

	vec := make([]float64, FeatureCount)
	for i, v := range r.Responses {
		if v != 0 && v != 1 {
			return nil, fmt.Errorf("response %d is %d, want 0 or 1", i+1, v)
		}
		vec[i] = float64(v)
	}
	vec[AgeIndex] = float64(r.Age)
	vec[GenderIndex] = float64(g)
	vec[JaundiceIndex] = float64(j)
	vec[RelationIndex] = float64(rel)
	return vec, nil
}
