package service

import (
	"context"

	"testprep-service/internal/models"
)

// Store interfaces abstract the Mongo repositories so the use cases stay
// testable against in-memory fakes. The repository package implements all
// of them.

type AttemptStore interface {
	FindByUserAndTest(ctx context.Context, userID, testID string) (*models.Attempt, error)
	FindByID(ctx context.Context, id string) (*models.Attempt, error)
	Create(ctx context.Context, attempt *models.Attempt) error
	FindByUser(ctx context.Context, userID, testID string) ([]models.Attempt, error)
	FindByTestOrderByScore(ctx context.Context, testID string) ([]models.Attempt, error)
}

type TestStore interface {
	FindByID(ctx context.Context, testID string) (*models.Test, error)
	FindActive(ctx context.Context, subject string) ([]models.Test, error)
}

type UserStore interface {
	FindByID(ctx context.Context, userID string) (*models.User, error)
	ApplyAttemptStats(ctx context.Context, userID string, percentage float64) error
	DisplayNames(ctx context.Context, userIDs []string) (map[string]string, error)
}

type GrantStore interface {
	HasActiveGrant(ctx context.Context, userID, testID string) (bool, error)
}

// BoardCache is an optional read-through cache for ranked leaderboards.
type BoardCache interface {
	Get(ctx context.Context, testID string) (*models.RankedBoard, bool)
	Set(ctx context.Context, testID string, board *models.RankedBoard)
	Invalidate(ctx context.Context, testID string)
}
