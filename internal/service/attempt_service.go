package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"testprep-service/internal/grading"
	"testprep-service/internal/models"
)

// AttemptService owns the submission flow: guard against a second attempt,
// grade, persist the attempt, then fold the percentage into the user's
// rolling stats.
type AttemptService struct {
	Attempts AttemptStore
	Tests    TestStore
	Users    UserStore
	Boards   BoardCache

	now   func() time.Time
	newID func() string
}

func NewAttemptService(attempts AttemptStore, tests TestStore, users UserStore, boards BoardCache) *AttemptService {
	return &AttemptService{
		Attempts: attempts,
		Tests:    tests,
		Users:    users,
		Boards:   boards,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Submit grades and records a test attempt. The existence check and the
// insert are two steps; a concurrent duplicate slipping between them is
// caught by the store's unique (user_id, test_id) index instead.
func (s *AttemptService) Submit(ctx context.Context, userID, testID string, req models.SubmissionRequest) (*models.SubmissionResult, error) {
	existing, err := s.Attempts.FindByUserAndTest(ctx, userID, testID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		log.Printf("User %s tried to re-submit test %s", userID, testID)
		return nil, models.ErrAlreadyAttempted
	}

	test, err := s.Tests.FindByID(ctx, testID)
	if err != nil {
		return nil, err
	}
	if !test.IsActive {
		return nil, models.ErrTestInactive
	}

	result, err := grading.Score(test, req.Answers)
	if err != nil {
		return nil, err
	}

	attempt := &models.Attempt{
		ID:             s.newID(),
		UserID:         userID,
		TestID:         testID,
		TestTitle:      test.Name,
		Subject:        test.Subject,
		Score:          grading.Round2(result.Score),
		TotalMarks:     test.TotalMarks,
		Percentage:     grading.Round2(result.Percentage),
		CorrectAnswers: result.Correct,
		WrongAnswers:   result.Wrong,
		Unattempted:    result.Unattempted,
		TimeTaken:      req.TimeTaken,
		SubmittedAt:    s.now(),
		Answers:        req.Answers,
	}
	if err := s.Attempts.Create(ctx, attempt); err != nil {
		return nil, err
	}

	// The attempt is committed at this point. Stats are a best-effort
	// projection: a failure here is logged, never surfaced to the caller.
	if err := s.Users.ApplyAttemptStats(ctx, userID, attempt.Percentage); err != nil {
		log.Printf("Warning: failed to update stats for user %s: %v", userID, err)
	}

	if s.Boards != nil {
		s.Boards.Invalidate(ctx, testID)
	}

	return &models.SubmissionResult{
		AttemptID:      attempt.ID,
		Score:          attempt.Score,
		TotalMarks:     attempt.TotalMarks,
		Percentage:     attempt.Percentage,
		CorrectAnswers: attempt.CorrectAnswers,
		WrongAnswers:   attempt.WrongAnswers,
		Unattempted:    attempt.Unattempted,
		TimeTaken:      attempt.TimeTaken,
	}, nil
}

// CheckAttempt returns the user's attempt for a test, or nil when the test
// has not been attempted yet.
func (s *AttemptService) CheckAttempt(ctx context.Context, userID, testID string) (*models.Attempt, error) {
	return s.Attempts.FindByUserAndTest(ctx, userID, testID)
}

// History lists the user's past attempts, newest first.
func (s *AttemptService) History(ctx context.Context, userID, testID string) ([]models.AttemptSummary, error) {
	attempts, err := s.Attempts.FindByUser(ctx, userID, testID)
	if err != nil {
		return nil, err
	}
	summaries := make([]models.AttemptSummary, 0, len(attempts))
	for i := range attempts {
		summaries = append(summaries, attempts[i].Summary())
	}
	return summaries, nil
}

// Review returns one attempt with the original questions (answer keys
// included) for solution review. Only the attempt's owner may read it. A
// test that has since been deleted yields an empty question list rather
// than an error: the stored attempt remains readable.
func (s *AttemptService) Review(ctx context.Context, userID, attemptID string) (*models.AttemptReview, error) {
	attempt, err := s.Attempts.FindByID(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.UserID != userID {
		log.Printf("Access denied: user %s requested attempt %s owned by %s",
			userID, attemptID, attempt.UserID)
		return nil, models.ErrAccessDenied
	}

	review := &models.AttemptReview{Attempt: *attempt, TestQuestions: []models.Question{}}
	if test, err := s.Tests.FindByID(ctx, attempt.TestID); err == nil {
		review.TestQuestions = test.Questions
	} else {
		log.Printf("Warning: could not load test %s for attempt review: %v", attempt.TestID, err)
	}
	return review, nil
}
