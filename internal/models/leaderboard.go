package models

// LeaderboardEntry is an attempt with its competition rank and the owner's
// display name injected. Entries are derived per request, never persisted.
type LeaderboardEntry struct {
	AttemptSummary
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	Rank     int    `json:"rank"`
}

// RankedBoard is the requester-independent part of a leaderboard: the ranked
// entries plus aggregate stats. It is what the cache layer stores.
type RankedBoard struct {
	TestID        string             `json:"test_id"`
	TestName      string             `json:"test_name"`
	TotalMarks    float64            `json:"total_marks"`
	Entries       []LeaderboardEntry `json:"entries"`
	AvgScore      float64            `json:"avg_score"`
	HighestScore  float64            `json:"highest_score"`
	TotalAttempts int                `json:"total_attempts"`
}

// CurrentUserStanding personalizes a board for the requesting user.
type CurrentUserStanding struct {
	Attempted  bool              `json:"attempted"`
	Rank       *int              `json:"rank"`
	Percentile *float64          `json:"percentile"`
	Attempt    *LeaderboardEntry `json:"attempt"`
}

// LeaderboardView is the full response for a leaderboard request.
type LeaderboardView struct {
	RankedBoard
	CurrentUser CurrentUserStanding `json:"current_user"`
}
