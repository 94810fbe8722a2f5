package repository

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"testprep-service/internal/models"
)

// mongoSortMemoryLimit is the server code for a sort that needs an index
// (QueryExceededMemoryLimitNoDiskUseAllowed).
const mongoSortMemoryLimit = 292

type AttemptRepository struct {
	Col *mongo.Collection
}

func NewAttemptRepository(db *mongo.Database) *AttemptRepository {
	return &AttemptRepository{Col: db.Collection("attempts")}
}

// EnsureIndexes creates the attempt indexes. The unique (user_id, test_id)
// index backs the one-attempt invariant against the check-then-insert race;
// the others back the leaderboard and history sorts.
func (r *AttemptRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "test_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "test_id", Value: 1}, {Key: "score", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "submitted_at", Value: -1}},
		},
	})
	return err
}

// FindByUserAndTest returns the user's attempt for a test, or nil if the
// test has not been attempted.
func (r *AttemptRepository) FindByUserAndTest(ctx context.Context, userID, testID string) (*models.Attempt, error) {
	var attempt models.Attempt
	err := r.Col.FindOne(ctx, bson.M{"user_id": userID, "test_id": testID}).Decode(&attempt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *AttemptRepository) FindByID(ctx context.Context, id string) (*models.Attempt, error) {
	var attempt models.Attempt
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&attempt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrAttemptNotFound
	}
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *AttemptRepository) Create(ctx context.Context, attempt *models.Attempt) error {
	_, err := r.Col.InsertOne(ctx, attempt)
	if mongo.IsDuplicateKeyError(err) {
		return models.ErrAlreadyAttempted
	}
	return err
}

// FindByTestOrderByScore returns every attempt for a test, best raw score
// first. A sort the server cannot satisfy without an index surfaces as
// models.ErrIndexRequired so callers can distinguish provisioning problems
// from logic bugs.
func (r *AttemptRepository) FindByTestOrderByScore(ctx context.Context, testID string) ([]models.Attempt, error) {
	opts := options.Find().SetSort(bson.D{{Key: "score", Value: -1}})
	cur, err := r.Col.Find(ctx, bson.M{"test_id": testID}, opts)
	if err != nil {
		return nil, mapSortError(err)
	}
	defer cur.Close(ctx)

	var attempts []models.Attempt
	for cur.Next(ctx) {
		var a models.Attempt
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	if err := cur.Err(); err != nil {
		return nil, mapSortError(err)
	}
	return attempts, nil
}

// FindByUser returns the user's attempts newest first. testID narrows the
// result to a single test when non-empty.
func (r *AttemptRepository) FindByUser(ctx context.Context, userID, testID string) ([]models.Attempt, error) {
	filter := bson.M{"user_id": userID}
	if testID != "" {
		filter["test_id"] = testID
	}
	opts := options.Find().SetSort(bson.D{{Key: "submitted_at", Value: -1}})
	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var attempts []models.Attempt
	for cur.Next(ctx) {
		var a models.Attempt
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, cur.Err()
}

func mapSortError(err error) error {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		if cmdErr.Code == mongoSortMemoryLimit ||
			strings.Contains(cmdErr.Message, "Sort exceeded memory limit") {
			return models.ErrIndexRequired
		}
	}
	return err
}
