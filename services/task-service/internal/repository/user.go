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

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// UpsertUser inserts the user or overwrites its profile fields.
	// created_at is written only on insert.
	UpsertUser(ctx context.Context, params UpsertUserParams) (*model.User, error)

	// GetUser returns mongo.ErrNoDocuments when no user has the given id.
	GetUser(ctx context.Context, id string) (*model.User, error)
}

// UpsertUserParams defines the profile written on every sign-in.
type UpsertUserParams struct {
	ID      string
	Email   *string
	Name    *string
	Picture *string
}

const userCollection = "users"

type userMongoRepository struct {
	db  *mongo.Database
	now func() time.Time
}

func NewUserMongoRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) UserRepository {
	collection := db.Collection(userCollection)

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create user indexes")
	}

	return &userMongoRepository{db: db, now: time.Now}
}

func (r *userMongoRepository) UpsertUser(ctx context.Context, params UpsertUserParams) (*model.User, error) {
	now := r.now().UTC()

	result := r.db.Collection(userCollection).FindOneAndUpdate(
		ctx,
		bson.M{"id": params.ID},
		bson.M{
			"$set": bson.M{
				"email":      params.Email,
				"name":       params.Name,
				"picture":    params.Picture,
				"updated_at": now,
			},
			"$setOnInsert": bson.M{
				"created_at": now,
			},
		},
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After).
			SetProjection(bson.M{"_id": 0}),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var user model.User
	if err := result.Decode(&user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userMongoRepository) GetUser(ctx context.Context, id string) (*model.User, error) {
	result := r.db.Collection(userCollection).FindOne(
		ctx,
		bson.M{"id": id},
		options.FindOne().SetProjection(bson.M{"_id": 0}),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var user model.User
	if err := result.Decode(&user); err != nil {
		return nil, err
	}

	return &user, nil
}
