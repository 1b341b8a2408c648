package repository

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/model"
)

// TaskListRepository stores one task list per user. Saves replace the whole list.
type TaskListRepository interface {
	SaveTaskList(ctx context.Context, userID string, tasks []any) (*model.TaskList, error)

	// GetTaskList returns mongo.ErrNoDocuments when the user never saved a list.
	GetTaskList(ctx context.Context, userID string) (*model.TaskList, error)
}

const taskListCollection = "tasks"

type taskListMongoRepository struct {
	db  *mongo.Database
	now func() time.Time
}

func NewTaskListMongoRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) TaskListRepository {
	collection := db.Collection(taskListCollection)

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create task list indexes")
	}

	return &taskListMongoRepository{db: db, now: time.Now}
}

func (r *taskListMongoRepository) SaveTaskList(ctx context.Context, userID string, tasks []any) (*model.TaskList, error) {
	if tasks == nil {
		tasks = []any{}
	}

	list := &model.TaskList{
		UserID:    userID,
		Tasks:     tasks,
		UpdatedAt: r.timestamp(),
	}

	_, err := r.db.Collection(taskListCollection).UpdateOne(
		ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{
			"tasks":      list.Tasks,
			"updated_at": list.UpdatedAt,
		}},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return nil, err
	}

	return list, nil
}

// timestamp is truncated to the millisecond precision Mongo stores dates with.
func (r *taskListMongoRepository) timestamp() time.Time {
	return r.now().UTC().Truncate(time.Millisecond)
}

func (r *taskListMongoRepository) GetTaskList(ctx context.Context, userID string) (*model.TaskList, error) {
	result := r.db.Collection(taskListCollection).FindOne(ctx, bson.M{"user_id": userID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var list model.TaskList
	if err := result.Decode(&list); err != nil {
		return nil, err
	}

	return &list, nil
}
