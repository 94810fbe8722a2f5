package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"testprep-service/internal/grading"
	"testprep-service/internal/models"
)

type UserRepository struct {
	Col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{Col: db.Collection("users")}
}

func (r *UserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := r.Col.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ApplyAttemptStats folds one attempt percentage into the user's rolling
// stats. The read and write run inside a single transaction so concurrent
// submissions by the same user never lose an increment; the driver retries
// transient and write-conflict aborts. A missing user document is a logged
// no-op: the attempt record stays authoritative either way.
func (r *UserRepository) ApplyAttemptStats(ctx context.Context, userID string, percentage float64) error {
	sess, err := r.Col.Database().Client().StartSession()
	if err != nil {
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var user models.User
		err := r.Col.FindOne(sc, bson.M{"_id": userID}).Decode(&user)
		if errors.Is(err, mongo.ErrNoDocuments) {
			log.Printf("Warning: user %s not found, skipping stats update", userID)
			return nil, nil
		}
		if err != nil {
			return nil, err
		}

		attempts := user.Stats.TestsAttempted + 1
		sum := user.Stats.TotalPercentageSum + percentage

		_, err = r.Col.UpdateOne(sc, bson.M{"_id": userID}, bson.M{"$set": bson.M{
			"stats.tests_attempted":      attempts,
			"stats.total_percentage_sum": sum,
			"stats.avg_score":            grading.Round2(sum / float64(attempts)),
			"updated_at":                 time.Now(),
		}})
		return nil, err
	})
	return err
}

// DisplayNames resolves user IDs to display names in one query. IDs without
// a user document are simply absent from the result.
func (r *UserRepository) DisplayNames(ctx context.Context, userIDs []string) (map[string]string, error) {
	names := make(map[string]string, len(userIDs))
	if len(userIDs) == 0 {
		return names, nil
	}

	cur, err := r.Col.Find(ctx, bson.M{"_id": bson.M{"$in": userIDs}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var user models.User
		if err := cur.Decode(&user); err != nil {
			return nil, err
		}
		names[user.ID] = user.Name
	}
	return names, cur.Err()
}
