package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// TaskList is the single task collection owned by a user.
// Items are opaque JSON values; the service never inspects them.
type TaskList struct {
	ObjectID  bson.ObjectID `bson:"_id,omitempty"`
	UserID    string        `bson:"user_id"`
	Tasks     []any         `bson:"tasks"`
	UpdatedAt time.Time     `bson:"updated_at"`
}
