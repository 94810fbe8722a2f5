package service

import (
	"context"
	"log"

	"testprep-service/internal/models"
)

// TestService serves the test catalog with per-user entitlements resolved.
type TestService struct {
	Tests  TestStore
	Users  UserStore
	Grants GrantStore
}

func NewTestService(tests TestStore, users UserStore, grants GrantStore) *TestService {
	return &TestService{Tests: tests, Users: users, Grants: grants}
}

// List returns the active tests visible to the user, each flagged with
// whether the user may take it.
func (s *TestService) List(ctx context.Context, userID, subject string) ([]models.TestSummary, error) {
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	tests, err := s.Tests.FindActive(ctx, subject)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.TestSummary, 0, len(tests))
	for i := range tests {
		t := &tests[i]
		summaries = append(summaries, models.TestSummary{
			ID:             t.ID,
			Title:          t.Name,
			Subject:        t.Subject,
			Type:           t.Type,
			Duration:       t.Duration,
			TotalQuestions: len(t.Questions),
			TotalMarks:     t.TotalMarks,
			Access:         t.Access,
			HasAccess:      s.hasAccess(ctx, user, t),
		})
	}
	return summaries, nil
}

// GetDetail returns the sanitized test for attempt-taking. Inactive tests
// are never served here, regardless of entitlements.
func (s *TestService) GetDetail(ctx context.Context, userID, testID string) (*models.TestDetail, error) {
	test, err := s.Tests.FindByID(ctx, testID)
	if err != nil {
		return nil, err
	}
	if !test.IsActive {
		return nil, models.ErrTestInactive
	}

	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !s.hasAccess(ctx, user, test) {
		log.Printf("Access denied for user %s to test %s", userID, testID)
		return nil, models.ErrAccessDenied
	}

	detail := test.Detail()
	return &detail, nil
}

// hasAccess resolves entitlement in precedence order: admin grant, free
// access level, subject enrollment, test-series enrollment, master plan.
func (s *TestService) hasAccess(ctx context.Context, user *models.User, test *models.Test) bool {
	if granted, err := s.Grants.HasActiveGrant(ctx, user.ID, test.ID); err != nil {
		log.Printf("Warning: grant check failed for user %s test %s: %v", user.ID, test.ID, err)
	} else if granted {
		return true
	}

	if test.Access == models.AccessFree {
		return true
	}
	for _, course := range user.EnrolledCourses {
		if course == test.Subject || course == models.EnrollmentTestSeries {
			return true
		}
	}
	return user.Plan == models.PlanMaster
}
