package screening

// Gender is the sex of the person being screened.
// The zero value is the "Select one" placeholder.
type Gender int

const (
	GenderUnset Gender = iota
	GenderMale
	GenderFemale
)

// GenderOptions lists the selectable values in display order.
var GenderOptions = []Gender{GenderMale, GenderFemale}

// Label returns the display text for the value.
func (g Gender) Label() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	default:
		return PlaceholderLabel
	}
}

// Jaundice records whether the person had jaundice at birth.
// The zero value is the "Select one" placeholder.
type Jaundice int

const (
	JaundiceUnset Jaundice = iota
	JaundiceYes
	JaundiceNo
)

// JaundiceOptions lists the selectable values in display order.
var JaundiceOptions = []Jaundice{JaundiceYes, JaundiceNo}

// Label returns the display text for the value.
func (j Jaundice) Label() string {
	switch j {
	case JaundiceYes:
		return "Yes"
	case JaundiceNo:
		return "No"
	default:
		return PlaceholderLabel
	}
}

// Relation is who is completing the screening relative to the subject.
// The zero value is the "Select one" placeholder.
type Relation int

const (
	RelationUnset Relation = iota
	RelationSelf
	RelationFamily
	RelationHealthcareProfessional
	RelationOther
)

// RelationOptions lists the selectable values in display order.
var RelationOptions = []Relation{
	RelationSelf,
	RelationFamily,
	RelationHealthcareProfessional,
	RelationOther,
}

// Label returns the display text for the value.
func (r Relation) Label() string {
	switch r {
	case RelationSelf:
		return "Self"
	case RelationFamily:
		return "Family"
	case RelationHealthcareProfessional:
		return "Healthcare professional"
	case RelationOther:
		return "Others"
	default:
		return PlaceholderLabel
	}
}

// Response is a single Likert-style questionnaire answer.
// The zero value means the question has not been answered.
type Response int

const (
	ResponseUnanswered Response = iota
	ResponseDefinitelyAgree
	ResponseSlightlyAgree
	ResponseSlightlyDisagree
	ResponseDefinitelyDisagree
)

// ResponseOptions lists the four answer choices in display order.
var ResponseOptions = []Response{
	ResponseDefinitelyAgree,
	ResponseSlightlyAgree,
	ResponseSlightlyDisagree,
	ResponseDefinitelyDisagree,
}

// Label returns the display text for the value.
func (r Response) Label() string {
	switch r {
	case ResponseDefinitelyAgree:
		return "Definitely Agree"
	case ResponseSlightlyAgree:
		return "Slightly Agree"
	case ResponseSlightlyDisagree:
		return "Slightly Disagree"
	case ResponseDefinitelyDisagree:
		return "Definitely Disagree"
	default:
		return "Unanswered"
	}
}

// Answered reports whether r is one of the four explicit choices.
func (r Response) Answered() bool {
	return r >= ResponseDefinitelyAgree && r <= ResponseDefinitelyDisagree
}

// PlaceholderLabel is shown for an unset single-choice field.
const PlaceholderLabel = "Select one"
