package service

import (
	"context"
	"errors"
	"sort"

	"testprep-service/internal/grading"
	"testprep-service/internal/models"
)

// In-memory store fakes backing the service tests.

type fakeAttemptStore struct {
	attempts  map[string]*models.Attempt
	createErr error
	findErr   error
}

func newFakeAttemptStore() *fakeAttemptStore {
	return &fakeAttemptStore{attempts: make(map[string]*models.Attempt)}
}

func (f *fakeAttemptStore) FindByUserAndTest(_ context.Context, userID, testID string) (*models.Attempt, error) {
	for _, a := range f.attempts {
		if a.UserID == userID && a.TestID == testID {
			copied := *a
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeAttemptStore) FindByID(_ context.Context, id string) (*models.Attempt, error) {
	a, ok := f.attempts[id]
	if !ok {
		return nil, models.ErrAttemptNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeAttemptStore) Create(_ context.Context, attempt *models.Attempt) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, a := range f.attempts {
		if a.UserID == attempt.UserID && a.TestID == attempt.TestID {
			return models.ErrAlreadyAttempted
		}
	}
	copied := *attempt
	f.attempts[attempt.ID] = &copied
	return nil
}

func (f *fakeAttemptStore) FindByUser(_ context.Context, userID, testID string) ([]models.Attempt, error) {
	var out []models.Attempt
	for _, a := range f.attempts {
		if a.UserID != userID {
			continue
		}
		if testID != "" && a.TestID != testID {
			continue
		}
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SubmittedAt.After(out[j].SubmittedAt)
	})
	return out, nil
}

func (f *fakeAttemptStore) FindByTestOrderByScore(_ context.Context, testID string) ([]models.Attempt, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []models.Attempt
	for _, a := range f.attempts {
		if a.TestID == testID {
			out = append(out, *a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out, nil
}

type fakeTestStore struct {
	tests map[string]*models.Test
}

func newFakeTestStore(tests ...*models.Test) *fakeTestStore {
	store := &fakeTestStore{tests: make(map[string]*models.Test)}
	for _, t := range tests {
		store.tests[t.ID] = t
	}
	return store
}

func (f *fakeTestStore) FindByID(_ context.Context, testID string) (*models.Test, error) {
	t, ok := f.tests[testID]
	if !ok {
		return nil, models.ErrTestNotFound
	}
	return t, nil
}

func (f *fakeTestStore) FindActive(_ context.Context, subject string) ([]models.Test, error) {
	keys := make([]string, 0, len(f.tests))
	for id := range f.tests {
		keys = append(keys, id)
	}
	sort.Strings(keys)

	var out []models.Test
	for _, id := range keys {
		t := f.tests[id]
		if !t.IsActive {
			continue
		}
		if subject != "" && t.Subject != subject {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

type fakeUserStore struct {
	users    map[string]*models.User
	statsErr error
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	store := &fakeUserStore{users: make(map[string]*models.User)}
	for _, u := range users {
		store.users[u.ID] = u
	}
	return store
}

func (f *fakeUserStore) FindByID(_ context.Context, userID string) (*models.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	return u, nil
}

// ApplyAttemptStats mirrors the transactional fold of the real repository.
func (f *fakeUserStore) ApplyAttemptStats(_ context.Context, userID string, percentage float64) error {
	if f.statsErr != nil {
		return f.statsErr
	}
	u, ok := f.users[userID]
	if !ok {
		return nil // missing user is a silent no-op, like the repository
	}
	u.Stats.TestsAttempted++
	u.Stats.TotalPercentageSum += percentage
	u.Stats.AvgScore = grading.Round2(u.Stats.TotalPercentageSum / float64(u.Stats.TestsAttempted))
	return nil
}

func (f *fakeUserStore) DisplayNames(_ context.Context, userIDs []string) (map[string]string, error) {
	names := make(map[string]string)
	for _, id := range userIDs {
		if u, ok := f.users[id]; ok {
			names[id] = u.Name
		}
	}
	return names, nil
}

type fakeGrantStore struct {
	grants map[string]bool // userID + "|" + testID
}

func newFakeGrantStore() *fakeGrantStore {
	return &fakeGrantStore{grants: make(map[string]bool)}
}

func (f *fakeGrantStore) grant(userID, testID string) {
	f.grants[userID+"|"+testID] = true
}

func (f *fakeGrantStore) HasActiveGrant(_ context.Context, userID, testID string) (bool, error) {
	return f.grants[userID+"|"+testID], nil
}

type fakeBoardCache struct {
	boards      map[string]*models.RankedBoard
	sets        int
	invalidated []string
}

func newFakeBoardCache() *fakeBoardCache {
	return &fakeBoardCache{boards: make(map[string]*models.RankedBoard)}
}

func (f *fakeBoardCache) Get(_ context.Context, testID string) (*models.RankedBoard, bool) {
	board, ok := f.boards[testID]
	return board, ok
}

func (f *fakeBoardCache) Set(_ context.Context, testID string, board *models.RankedBoard) {
	f.sets++
	f.boards[testID] = board
}

func (f *fakeBoardCache) Invalidate(_ context.Context, testID string) {
	delete(f.boards, testID)
	f.invalidated = append(f.invalidated, testID)
}

var errStoreDown = errors.New("store unavailable")
