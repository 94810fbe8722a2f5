package models

import "errors"

var (
	// ErrTestNotFound indicates the requested test document does not exist.
	ErrTestNotFound = errors.New("test not found")
	// ErrTestInactive is returned when a deactivated test is requested for
	// attempt-taking. Stored attempts for inactive tests stay readable.
	ErrTestInactive = errors.New("test is not active")
	// ErrEmptyTest rejects a submission against a test with no questions.
	ErrEmptyTest = errors.New("test has no questions to evaluate")
	// ErrAlreadyAttempted enforces the one-attempt-per-test rule.
	ErrAlreadyAttempted = errors.New("test already attempted")
	// ErrAttemptNotFound indicates a missing attempt document.
	ErrAttemptNotFound = errors.New("attempt not found")
	// ErrUserNotFound indicates a missing user profile document.
	ErrUserNotFound = errors.New("user profile not found")
	// ErrAccessDenied covers both entitlement failures and foreign-attempt reads.
	ErrAccessDenied = errors.New("access denied")
	// ErrIndexRequired signals the store cannot serve the leaderboard sort
	// until an index is provisioned. Operational, not a logic bug.
	ErrIndexRequired = errors.New("database index required for leaderboard sort")
)
