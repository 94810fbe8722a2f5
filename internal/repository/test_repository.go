package repository

import (
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"testprep-service/internal/models"
)

type TestRepository struct {
	Col *mongo.Collection
}

func NewTestRepository(db *mongo.Database) *TestRepository {
	return &TestRepository{Col: db.Collection("tests")}
}

func (r *TestRepository) FindByID(ctx context.Context, testID string) (*models.Test, error) {
	var test models.Test
	err := r.Col.FindOne(ctx, bson.M{"_id": testID}).Decode(&test)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrTestNotFound
	}
	if err != nil {
		return nil, err
	}
	validateQuestions(&test)
	return &test, nil
}

// FindActive lists active tests, optionally narrowed to one subject.
func (r *TestRepository) FindActive(ctx context.Context, subject string) ([]models.Test, error) {
	filter := bson.M{"is_active": true}
	if subject != "" {
		filter["subject"] = subject
	}

	cur, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var tests []models.Test
	for cur.Next(ctx) {
		var t models.Test
		if err := cur.Decode(&t); err != nil {
			return nil, err
		}
		tests = append(tests, t)
	}
	return tests, cur.Err()
}

// validateQuestions flags malformed question data at the store boundary.
// A bad question is logged but still served: the evaluator grades it as an
// error rather than blocking the whole test.
func validateQuestions(test *models.Test) {
	for i := range test.Questions {
		if err := test.Questions[i].Validate(); err != nil {
			log.Printf("Warning: test %s question %d: %v", test.ID, i, err)
		}
	}
}
