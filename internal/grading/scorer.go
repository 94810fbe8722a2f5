package grading

import (
	"math"
	"strconv"

	"testprep-service/internal/models"
)

// Result aggregates the evaluation of a whole submission.
type Result struct {
	// Score is the raw sum of per-question deltas. Negative marking can push
	// it below zero; it is intentionally not floored at 0.
	Score       float64
	Percentage  float64
	Correct     int
	Wrong       int
	Unattempted int
	// Statuses records the per-question outcome keyed by question index.
	Statuses map[string]Status
}

// Score grades a full submission against a test. Answers are keyed by the
// 0-based question index as a string; a missing or mismatched index counts
// as unattempted. Evaluation errors count as wrong and never abort the pass.
func Score(test *models.Test, answers map[string]any) (*Result, error) {
	if len(test.Questions) == 0 {
		return nil, models.ErrEmptyTest
	}

	result := &Result{Statuses: make(map[string]Status, len(test.Questions))}
	for i, q := range test.Questions {
		key := strconv.Itoa(i)
		ev := Evaluate(q, answers[key])

		result.Score += ev.Delta
		result.Statuses[key] = ev.Status
		switch ev.Status {
		case StatusCorrect:
			result.Correct++
		case StatusUnattempted:
			result.Unattempted++
		default: // wrong and error both count as wrong
			result.Wrong++
		}
	}

	if test.TotalMarks > 0 {
		result.Percentage = result.Score / test.TotalMarks * 100
	}
	return result, nil
}

// Round2 rounds to two decimal places, the precision used for stored scores
// and percentages.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
