package screening

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared; validator caches struct metadata and is safe for reuse.
var validate = validator.New(validator.WithRequiredStructEnabled())

// AgeMin and AgeMax bound the accepted age in years.
const (
	AgeMin = 1
	AgeMax = 120
)

// BasicsInput is the raw stage-one submission.
type BasicsInput struct {
	Age      int      `validate:"min=1,max=120"`
	Gender   Gender   `validate:"required,oneof=1 2"`
	Jaundice Jaundice `validate:"required,oneof=1 2"`
	Relation Relation `validate:"required,oneof=1 2 3 4"`
}

// fieldMessages maps BasicsInput fields to the message shown when they fail.
var fieldMessages = map[string]string{
	"Age":      fmt.Sprintf("Age must be between %d and %d", AgeMin, AgeMax),
	"Gender":   "Please select a gender",
	"Jaundice": "Please say whether there was jaundice at birth",
	"Relation": "Please select your relationship to the person being screened",
}

// Validate checks that every field holds a defined, in-range value.
// It returns a *ValidationError naming each failing field.
func (in BasicsInput) Validate() error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate basics: %w", err)
	}

	ve := &ValidationError{Stage: "basics"}
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.Field()]
		if !ok {
			msg = fmt.Sprintf("%s is invalid", fe.Field())
		}
		ve.Fields = append(ve.Fields, FieldError{Field: fe.Field(), Message: msg})
	}
	return ve
}

// AnswerRecord accumulates one session's answers.
// Demographics hold the raw selections; codes are derived by the encoder.
type AnswerRecord struct {
	Age      int
	Gender   Gender
	Jaundice Jaundice
	Relation Relation

	// Responses holds the binary reduction of each answer in question order.
	// Nil until the questionnaire has been submitted.
	Responses []int
}

// BasicsComplete reports whether all four demographic fields are set.
func (r AnswerRecord) BasicsComplete() bool {
	return r.Age >= AgeMin && r.Age <= AgeMax &&
		r.Gender != GenderUnset &&
		r.Jaundice != JaundiceUnset &&
		r.Relation != RelationUnset
}

// QuestionnaireComplete reports whether all ten responses are present.
func (r AnswerRecord) QuestionnaireComplete() bool {
	return len(r.Responses) == QuestionCount
}

// IsEmpty reports whether the record holds no answers at all.
func (r AnswerRecord) IsEmpty() bool {
	return r.Age == 0 &&
		r.Gender == GenderUnset &&
		r.Jaundice == JaundiceUnset &&
		r.Relation == RelationUnset &&
		len(r.Responses) == 0
}

// FieldError is a single actionable validation failure.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError reports an incomplete or placeholder submission.
// It is always recoverable: the caller re-prompts.
type ValidationError struct {
	Stage  string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s incomplete: %s", e.Stage, strings.Join(e.Messages(), "; "))
}

// Messages returns the user-facing message for each failing field.
func (e *ValidationError) Messages() []string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return msgs
}

// FieldNames returns the failing field names, safe for logging.
func (e *ValidationError) FieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return names
}
