package models

import "fmt"

// Question types supported by the evaluator.
const (
	QuestionMCQ       = "mcq"
	QuestionMSQ       = "msq"
	QuestionNumerical = "numerical"
	QuestionTrueFalse = "true-false"
)

// Question is stored inside a test document. The Type field selects which of
// the correct-answer fields is meaningful; the others stay at their zero value.
type Question struct {
	Type          string   `bson:"type" json:"type"`
	Text          string   `bson:"text" json:"text"`
	Options       []string `bson:"options,omitempty" json:"options,omitempty"`
	ImageURL      string   `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Marks         float64  `bson:"marks" json:"marks"`
	NegativeMarks float64  `bson:"negative_marks" json:"negative_marks"`

	// mcq
	CorrectOption string `bson:"correct_option,omitempty" json:"correct_option,omitempty"`
	// msq
	CorrectOptions []string `bson:"correct_options,omitempty" json:"correct_options,omitempty"`
	// numerical
	CorrectValue float64 `bson:"correct_value,omitempty" json:"correct_value,omitempty"`
	Tolerance    float64 `bson:"tolerance,omitempty" json:"tolerance,omitempty"`
	// true-false
	CorrectBool bool `bson:"correct_bool,omitempty" json:"correct_bool,omitempty"`
}

// Validate checks that the question carries the fields its type needs.
func (q *Question) Validate() error {
	if q.Marks < 0 || q.NegativeMarks < 0 {
		return fmt.Errorf("question %q: marks must be non-negative", q.Text)
	}
	switch q.Type {
	case QuestionMCQ:
		if q.CorrectOption == "" {
			return fmt.Errorf("mcq question %q: missing correct_option", q.Text)
		}
	case QuestionMSQ:
		if len(q.CorrectOptions) == 0 {
			return fmt.Errorf("msq question %q: missing correct_options", q.Text)
		}
	case QuestionNumerical:
		if q.Tolerance < 0 {
			return fmt.Errorf("numerical question %q: negative tolerance", q.Text)
		}
	case QuestionTrueFalse:
		// correct_bool false is a valid answer key
	default:
		return fmt.Errorf("question %q: unknown type %q", q.Text, q.Type)
	}
	return nil
}

// PublicQuestion is a Question with the answer key stripped, safe to hand to
// a student starting an attempt.
type PublicQuestion struct {
	Type          string   `json:"type"`
	Text          string   `json:"text"`
	Options       []string `json:"options,omitempty"`
	ImageURL      string   `json:"image_url,omitempty"`
	Marks         float64  `json:"marks"`
	NegativeMarks float64  `json:"negative_marks"`
}

// Public returns the answer-free view of the question.
func (q *Question) Public() PublicQuestion {
	return PublicQuestion{
		Type:          q.Type,
		Text:          q.Text,
		Options:       q.Options,
		ImageURL:      q.ImageURL,
		Marks:         q.Marks,
		NegativeMarks: q.NegativeMarks,
	}
}
