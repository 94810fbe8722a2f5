package grading

import (
	"testing"

	"testprep-service/internal/models"
)

func twoMCQTest() *models.Test {
	return &models.Test{
		ID:         "test-1",
		Name:       "Sample MCQ Test",
		TotalMarks: 4,
		Questions: []models.Question{
			{Type: models.QuestionMCQ, Marks: 2, NegativeMarks: 0.5, CorrectOption: "A"},
			{Type: models.QuestionMCQ, Marks: 2, NegativeMarks: 0.5, CorrectOption: "B"},
		},
	}
}

func TestScoreMixedOutcome(t *testing.T) {
	// One correct, one wrong with negative marking: 2 - 0.5 = 1.5 of 4.
	result, err := Score(twoMCQTest(), map[string]any{"0": "A", "1": "C"})
	if err != nil {
		t.Fatalf("score: %v", err)
	}

	if result.Score != 1.5 {
		t.Errorf("expected score 1.5, got %v", result.Score)
	}
	if result.Percentage != 37.5 {
		t.Errorf("expected percentage 37.5, got %v", result.Percentage)
	}
	if result.Correct != 1 || result.Wrong != 1 || result.Unattempted != 0 {
		t.Errorf("expected counts 1/1/0, got %d/%d/%d",
			result.Correct, result.Wrong, result.Unattempted)
	}
	if result.Statuses["0"] != StatusCorrect || result.Statuses["1"] != StatusWrong {
		t.Errorf("unexpected per-question statuses: %v", result.Statuses)
	}
}

func TestScoreCanGoNegative(t *testing.T) {
	result, err := Score(twoMCQTest(), map[string]any{"0": "X", "1": "Y"})
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if result.Score != -1 {
		t.Errorf("expected raw score -1 (no floor at zero), got %v", result.Score)
	}
	if result.Percentage != -25 {
		t.Errorf("expected percentage -25, got %v", result.Percentage)
	}
}

func TestScoreMissingIndicesAreUnattempted(t *testing.T) {
	// Only question 0 is answered; index "5" does not match any question.
	result, err := Score(twoMCQTest(), map[string]any{"0": "A", "5": "B"})
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if result.Correct != 1 || result.Unattempted != 1 {
		t.Errorf("expected 1 correct / 1 unattempted, got %d/%d",
			result.Correct, result.Unattempted)
	}
}

func TestScoreNilAnswers(t *testing.T) {
	result, err := Score(twoMCQTest(), nil)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if result.Unattempted != 2 || result.Score != 0 {
		t.Errorf("expected fully unattempted zero score, got %+v", result)
	}
}

func TestScoreEmptyTest(t *testing.T) {
	_, err := Score(&models.Test{ID: "empty"}, map[string]any{"0": "A"})
	if err != models.ErrEmptyTest {
		t.Fatalf("expected ErrEmptyTest, got %v", err)
	}
}

func TestScoreZeroTotalMarks(t *testing.T) {
	test := twoMCQTest()
	test.TotalMarks = 0
	result, err := Score(test, map[string]any{"0": "A", "1": "B"})
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if result.Percentage != 0 {
		t.Errorf("zero total marks must yield percentage 0, got %v", result.Percentage)
	}
}

func TestScoreErrorCountsAsWrong(t *testing.T) {
	test := &models.Test{
		ID:         "test-2",
		TotalMarks: 4,
		Questions: []models.Question{
			{Type: models.QuestionMCQ, Marks: 2, NegativeMarks: 0.5, CorrectOption: "A"},
			{Type: "unknown-kind", Marks: 2},
		},
	}
	result, err := Score(test, map[string]any{"0": "A", "1": "B"})
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if result.Wrong != 1 {
		t.Errorf("error status should count as wrong, got %d wrong", result.Wrong)
	}
	if result.Score != 2 {
		t.Errorf("error status must not move the score, got %v", result.Score)
	}
	if result.Statuses["1"] != StatusError {
		t.Errorf("expected error status recorded, got %q", result.Statuses["1"])
	}
}

func TestRound2(t *testing.T) {
	testCases := []struct {
		in   float64
		want float64
	}{
		{37.499999, 37.5},
		{66.666666, 66.67},
		{-12.346, -12.35},
		{0, 0},
	}
	for _, tc := range testCases {
		if got := Round2(tc.in); got != tc.want {
			t.Errorf("Round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
