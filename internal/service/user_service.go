package service

import (
	"context"

	"testprep-service/internal/models"
)

type UserService struct {
	Users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{Users: users}
}

func (s *UserService) Profile(ctx context.Context, userID string) (*models.User, error) {
	return s.Users.FindByID(ctx, userID)
}

// Stats returns the rolling stats block of the user document.
func (s *UserService) Stats(ctx context.Context, userID string) (*models.UserStats, error) {
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &user.Stats, nil
}
