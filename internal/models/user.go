package models

import "time"

// UserStats is the rolling projection of a user's attempt history. It is a
// cache over the attempts collection, maintained transactionally after each
// submission; the attempts themselves remain the source of truth.
type UserStats struct {
	TestsAttempted     int     `bson:"tests_attempted" json:"tests_attempted"`
	TotalPercentageSum float64 `bson:"total_percentage_sum" json:"total_percentage_sum"`
	AvgScore           float64 `bson:"avg_score" json:"avg_score"`
}

// User mirrors the user document owned by the auth/profile collaborators.
// The document ID is the external auth UID.
type User struct {
	ID              string    `bson:"_id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Email           string    `bson:"email" json:"email"`
	Plan            string    `bson:"plan" json:"plan"`
	EnrolledCourses []string  `bson:"enrolled_courses" json:"enrolled_courses"`
	Stats           UserStats `bson:"stats" json:"stats"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

// AccessGrant is an admin-issued per-test entitlement overriding the plan and
// enrollment checks.
type AccessGrant struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	TestID    string    `bson:"test_id" json:"test_id"`
	IsActive  bool      `bson:"is_active" json:"is_active"`
	GrantedAt time.Time `bson:"granted_at" json:"granted_at"`
}
