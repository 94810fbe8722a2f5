// Package grading implements answer evaluation and attempt scoring. It is
// pure computation: no storage, no HTTP, no clock.
package grading

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"testprep-service/internal/models"
)

// Status classifies a single evaluated answer.
type Status string

const (
	StatusCorrect     Status = "correct"
	StatusWrong       Status = "wrong"
	StatusUnattempted Status = "unattempted"
	StatusError       Status = "error"
)

// Evaluation is the outcome of grading one question.
type Evaluation struct {
	Status  Status
	Correct bool
	// Delta is the score contribution: +marks on correct, -negative_marks on
	// wrong mcq/true-false, 0 otherwise.
	Delta float64
}

// Evaluate grades a single submitted answer against a question. A nil or
// empty-string submission is unattempted regardless of question type. A
// malformed question never aborts grading: it evaluates to StatusError,
// which callers count as wrong.
func Evaluate(q models.Question, submitted any) (ev Evaluation) {
	defer func() {
		if r := recover(); r != nil {
			ev = Evaluation{Status: StatusError}
		}
	}()

	if isUnattempted(submitted) {
		return Evaluation{Status: StatusUnattempted}
	}

	switch q.Type {
	case models.QuestionMCQ:
		return evaluateMCQ(q, submitted)
	case models.QuestionMSQ:
		return evaluateMSQ(q, submitted)
	case models.QuestionNumerical:
		return evaluateNumerical(q, submitted)
	case models.QuestionTrueFalse:
		return evaluateTrueFalse(q, submitted)
	default:
		return Evaluation{Status: StatusError}
	}
}

func evaluateMCQ(q models.Question, submitted any) Evaluation {
	if token, ok := submitted.(string); ok && token == q.CorrectOption {
		return Evaluation{Status: StatusCorrect, Correct: true, Delta: q.Marks}
	}
	return Evaluation{Status: StatusWrong, Delta: -q.NegativeMarks}
}

// evaluateMSQ awards full marks only for an exact, non-empty set match.
// There is no partial credit and no negative marking.
func evaluateMSQ(q models.Question, submitted any) Evaluation {
	got := tokenSet(submitted)
	if len(got) == 0 || len(got) != len(q.CorrectOptions) {
		return Evaluation{Status: StatusWrong}
	}
	for _, token := range q.CorrectOptions {
		if _, ok := got[token]; !ok {
			return Evaluation{Status: StatusWrong}
		}
	}
	return Evaluation{Status: StatusCorrect, Correct: true, Delta: q.Marks}
}

// evaluateNumerical treats the tolerance bound as inclusive. An unparseable
// submission counts as wrong, not as an evaluation error.
func evaluateNumerical(q models.Question, submitted any) Evaluation {
	value, ok := parseNumber(submitted)
	if !ok {
		return Evaluation{Status: StatusWrong}
	}
	if math.Abs(value-q.CorrectValue) <= q.Tolerance {
		return Evaluation{Status: StatusCorrect, Correct: true, Delta: q.Marks}
	}
	return Evaluation{Status: StatusWrong}
}

func evaluateTrueFalse(q models.Question, submitted any) Evaluation {
	got := strings.EqualFold(fmt.Sprint(submitted), "true")
	if got == q.CorrectBool {
		return Evaluation{Status: StatusCorrect, Correct: true, Delta: q.Marks}
	}
	return Evaluation{Status: StatusWrong, Delta: -q.NegativeMarks}
}

func isUnattempted(submitted any) bool {
	if submitted == nil {
		return true
	}
	s, ok := submitted.(string)
	return ok && s == ""
}

// tokenSet normalizes a submitted msq answer into a set. A bare token is
// wrapped into a one-element set; list elements are stringified the same way
// they arrive from JSON decoding.
func tokenSet(submitted any) map[string]struct{} {
	set := make(map[string]struct{})
	switch v := submitted.(type) {
	case string:
		set[v] = struct{}{}
	case []string:
		for _, token := range v {
			set[token] = struct{}{}
		}
	case []any:
		for _, token := range v {
			set[fmt.Sprint(token)] = struct{}{}
		}
	default:
		set[fmt.Sprint(v)] = struct{}{}
	}
	return set
}

func parseNumber(submitted any) (float64, bool) {
	switch v := submitted.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		value, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return value, err == nil
	default:
		return 0, false
	}
}
