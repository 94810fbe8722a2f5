package models

// Access levels for tests.
const (
	AccessFree    = "free"
	AccessPremium = "premium"
)

// PlanMaster unlocks every test regardless of enrollment.
const PlanMaster = "master"

// EnrollmentTestSeries is the catalog entry that unlocks all tests without
// unlocking course content.
const EnrollmentTestSeries = "Test Series Only"

type Test struct {
	ID         string     `bson:"_id,omitempty" json:"id"`
	Name       string     `bson:"name" json:"name"`
	Subject    string     `bson:"subject" json:"subject"`
	Type       string     `bson:"type" json:"type"`
	Access     string     `bson:"access" json:"access"`
	Duration   int        `bson:"duration" json:"duration"`
	IsActive   bool       `bson:"is_active" json:"is_active"`
	TotalMarks float64    `bson:"total_marks" json:"total_marks"`
	Questions  []Question `bson:"questions" json:"questions"`
}

// TestSummary is the catalog row returned by the test listing, with the
// caller's access resolved.
type TestSummary struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Subject        string  `json:"subject"`
	Type           string  `json:"type"`
	Duration       int     `json:"duration"`
	TotalQuestions int     `json:"total_questions"`
	TotalMarks     float64 `json:"total_marks"`
	Access         string  `json:"access"`
	HasAccess      bool    `json:"has_access"`
}

// TestDetail is the full test payload served to a student who is about to
// attempt it. Questions are sanitized.
type TestDetail struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Subject    string           `json:"subject"`
	Type       string           `json:"type"`
	Duration   int              `json:"duration"`
	TotalMarks float64          `json:"total_marks"`
	Questions  []PublicQuestion `json:"questions"`
}

// Detail builds the sanitized view of the test.
func (t *Test) Detail() TestDetail {
	questions := make([]PublicQuestion, 0, len(t.Questions))
	for i := range t.Questions {
		questions = append(questions, t.Questions[i].Public())
	}
	return TestDetail{
		ID:         t.ID,
		Name:       t.Name,
		Subject:    t.Subject,
		Type:       t.Type,
		Duration:   t.Duration,
		TotalMarks: t.TotalMarks,
		Questions:  questions,
	}
}
