package models

import "time"

// Attempt is a user's single, final submission record for one test. It is
// written once and never mutated; test title, subject and total marks are
// snapshotted so later edits to the test do not rewrite history.
type Attempt struct {
	ID             string         `bson:"_id,omitempty" json:"id"`
	UserID         string         `bson:"user_id" json:"user_id"`
	TestID         string         `bson:"test_id" json:"test_id"`
	TestTitle      string         `bson:"test_title" json:"test_title"`
	Subject        string         `bson:"subject" json:"subject"`
	Score          float64        `bson:"score" json:"score"`
	TotalMarks     float64        `bson:"total_marks" json:"total_marks"`
	Percentage     float64        `bson:"percentage" json:"percentage"`
	CorrectAnswers int            `bson:"correct_answers" json:"correct_answers"`
	WrongAnswers   int            `bson:"wrong_answers" json:"wrong_answers"`
	Unattempted    int            `bson:"unattempted" json:"unattempted"`
	TimeTaken      int            `bson:"time_taken" json:"time_taken"`
	SubmittedAt    time.Time      `bson:"submitted_at" json:"submitted_at"`
	Answers        map[string]any `bson:"answers" json:"answers,omitempty"`
}

// AttemptSummary is the answer-free listing row for a past attempt.
type AttemptSummary struct {
	ID             string    `json:"id"`
	TestID         string    `json:"test_id"`
	TestTitle      string    `json:"test_title"`
	Subject        string    `json:"subject"`
	Score          float64   `json:"score"`
	TotalMarks     float64   `json:"total_marks"`
	Percentage     float64   `json:"percentage"`
	CorrectAnswers int       `json:"correct_answers"`
	WrongAnswers   int       `json:"wrong_answers"`
	Unattempted    int       `json:"unattempted"`
	TimeTaken      int       `json:"time_taken"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

// Summary strips the raw answers from an attempt.
func (a *Attempt) Summary() AttemptSummary {
	return AttemptSummary{
		ID:             a.ID,
		TestID:         a.TestID,
		TestTitle:      a.TestTitle,
		Subject:        a.Subject,
		Score:          a.Score,
		TotalMarks:     a.TotalMarks,
		Percentage:     a.Percentage,
		CorrectAnswers: a.CorrectAnswers,
		WrongAnswers:   a.WrongAnswers,
		Unattempted:    a.Unattempted,
		TimeTaken:      a.TimeTaken,
		SubmittedAt:    a.SubmittedAt,
	}
}

// AttemptReview is the detailed post-attempt view: the stored attempt plus
// the original questions with their answer keys, for solution review.
type AttemptReview struct {
	Attempt
	TestQuestions []Question `json:"test_questions"`
}

// SubmissionRequest is the payload for submitting a test. Answers are keyed
// by 0-based question index ("0", "1", ...); a value is a single option
// token, a list of tokens (msq), or a numeric string / bool string.
type SubmissionRequest struct {
	Answers   map[string]any `json:"answers"`
	TimeTaken int            `json:"time_taken"`
}

// SubmissionResult is the summary returned right after grading.
type SubmissionResult struct {
	AttemptID      string  `json:"attempt_id"`
	Score          float64 `json:"score"`
	TotalMarks     float64 `json:"total_marks"`
	Percentage     float64 `json:"percentage"`
	CorrectAnswers int     `json:"correct_answers"`
	WrongAnswers   int     `json:"wrong_answers"`
	Unattempted    int     `json:"unattempted"`
	TimeTaken      int     `json:"time_taken"`
}
