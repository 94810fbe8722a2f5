package service

import (
	"context"
	"log"

	"testprep-service/internal/grading"
	"testprep-service/internal/models"
)

const anonymousName = "Anonymous"

// LeaderboardService derives ranked views over the attempts of a test.
// Nothing here mutates state; a view is a snapshot and may run concurrently
// with new submissions.
type LeaderboardService struct {
	Attempts AttemptStore
	Tests    TestStore
	Users    UserStore
	Boards   BoardCache
}

func NewLeaderboardService(attempts AttemptStore, tests TestStore, users UserStore, boards BoardCache) *LeaderboardService {
	return &LeaderboardService{Attempts: attempts, Tests: tests, Users: users, Boards: boards}
}

// Build returns the leaderboard for a test, personalized for the requesting
// user. An empty field yields a well-formed zero view, not an error.
func (s *LeaderboardService) Build(ctx context.Context, testID, userID string) (*models.LeaderboardView, error) {
	board, err := s.loadBoard(ctx, testID)
	if err != nil {
		return nil, err
	}
	view := &models.LeaderboardView{
		RankedBoard: *board,
		CurrentUser: standingFor(board, userID),
	}
	return view, nil
}

func (s *LeaderboardService) loadBoard(ctx context.Context, testID string) (*models.RankedBoard, error) {
	if s.Boards != nil {
		if board, ok := s.Boards.Get(ctx, testID); ok {
			return board, nil
		}
	}

	test, err := s.Tests.FindByID(ctx, testID)
	if err != nil {
		return nil, err
	}
	attempts, err := s.Attempts.FindByTestOrderByScore(ctx, testID)
	if err != nil {
		return nil, err
	}

	board := buildBoard(test, attempts, s.resolveNames(ctx, attempts))
	if s.Boards != nil {
		s.Boards.Set(ctx, testID, board)
	}
	return board, nil
}

func (s *LeaderboardService) resolveNames(ctx context.Context, attempts []models.Attempt) map[string]string {
	ids := make([]string, 0, len(attempts))
	for i := range attempts {
		ids = append(ids, attempts[i].UserID)
	}
	names, err := s.Users.DisplayNames(ctx, ids)
	if err != nil {
		// Names are cosmetic; a lookup failure degrades to Anonymous.
		log.Printf("Warning: could not resolve display names: %v", err)
		return map[string]string{}
	}
	return names
}

// buildBoard assigns competition ranks: tied scores share a rank and the
// next distinct score takes its 1-based position (1,1,3,4). Aggregates are
// computed over percentage so boards compare across tests.
func buildBoard(test *models.Test, attempts []models.Attempt, names map[string]string) *models.RankedBoard {
	board := &models.RankedBoard{
		TestID:        test.ID,
		TestName:      test.Name,
		TotalMarks:    test.TotalMarks,
		Entries:       make([]models.LeaderboardEntry, 0, len(attempts)),
		TotalAttempts: len(attempts),
	}

	rank := 1
	var percentageSum float64
	for i := range attempts {
		if i > 0 && attempts[i].Score < attempts[i-1].Score {
			rank = i + 1
		}
		name, ok := names[attempts[i].UserID]
		if !ok || name == "" {
			name = anonymousName
		}
		board.Entries = append(board.Entries, models.LeaderboardEntry{
			AttemptSummary: attempts[i].Summary(),
			UserID:         attempts[i].UserID,
			UserName:       name,
			Rank:           rank,
		})
		percentageSum += attempts[i].Percentage
	}

	if len(attempts) > 0 {
		board.AvgScore = grading.Round2(percentageSum / float64(len(attempts)))
		board.HighestScore = grading.Round2(attempts[0].Percentage)
	}
	return board
}

// standingFor locates the requesting user on the board and computes their
// percentile: the share of the field they outperform or tie, 0-100.
func standingFor(board *models.RankedBoard, userID string) models.CurrentUserStanding {
	for i := range board.Entries {
		if board.Entries[i].UserID != userID {
			continue
		}
		entry := board.Entries[i]
		rank := entry.Rank
		percentile := grading.Round2(
			float64(board.TotalAttempts-rank+1) / float64(board.TotalAttempts) * 100)
		return models.CurrentUserStanding{
			Attempted:  true,
			Rank:       &rank,
			Percentile: &percentile,
			Attempt:    &entry,
		}
	}
	return models.CurrentUserStanding{Attempted: false}
}
