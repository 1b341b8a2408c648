package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/model"
)

// StatusCheckRepository is an append-only log of client check-ins.
type StatusCheckRepository interface {
	CreateStatusCheck(ctx context.Context, check *model.StatusCheck) (*model.StatusCheck, error)
	ListStatusChecks(ctx context.Context, limit int64) ([]*model.StatusCheck, error)
}

const statusCheckCollection = "status_checks"

type statusCheckMongoRepository struct {
	db *mongo.Database
}

func NewStatusCheckMongoRepository(db *mongo.Database) StatusCheckRepository {
	return &statusCheckMongoRepository{db: db}
}

func (r *statusCheckMongoRepository) CreateStatusCheck(
	ctx context.Context,
	check *model.StatusCheck,
) (*model.StatusCheck, error) {
	result, err := r.db.Collection(statusCheckCollection).InsertOne(ctx, check)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		check.ObjectID = objectID
	}

	return check, nil
}

func (r *statusCheckMongoRepository) ListStatusChecks(ctx context.Context, limit int64) ([]*model.StatusCheck, error) {
	findOptions := options.Find().SetProjection(bson.M{"_id": 0})
	if limit > 0 {
		findOptions.SetLimit(limit)
	}

	cursor, err := r.db.Collection(statusCheckCollection).Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	checks := make([]*model.StatusCheck, 0)
	for cursor.Next(ctx) {
		var check model.StatusCheck
		if err := cursor.Decode(&check); err != nil {
			return nil, err
		}
		checks = append(checks, &check)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return checks, nil
}
