package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"testprep-service/internal/models"
)

type GrantRepository struct {
	Col *mongo.Collection
}

func NewGrantRepository(db *mongo.Database) *GrantRepository {
	return &GrantRepository{Col: db.Collection("access_grants")}
}

// HasActiveGrant reports whether an admin granted this user access to the test.
func (r *GrantRepository) HasActiveGrant(ctx context.Context, userID, testID string) (bool, error) {
	filter := bson.M{"user_id": userID, "test_id": testID, "is_active": true}
	count, err := r.Col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByUser lists all grants issued to a user, active or not.
func (r *GrantRepository) FindByUser(ctx context.Context, userID string) ([]models.AccessGrant, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var grants []models.AccessGrant
	for cur.Next(ctx) {
		var g models.AccessGrant
		if err := cur.Decode(&g); err != nil {
			return nil, err
		}
		grants = append(grants, g)
	}
	return grants, cur.Err()
}
