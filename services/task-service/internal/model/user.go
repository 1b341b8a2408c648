package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is the profile of a Google account that has signed in at least once.
// ID is the Google subject id; the Mongo _id never leaves the repository layer.
// Profile fields are null when the identity token did not carry them.
type User struct {
	ObjectID  bson.ObjectID `bson:"_id,omitempty" json:"-"`
	ID        string        `bson:"id"            json:"id"`
	Email     *string       `bson:"email"         json:"email"`
	Name      *string       `bson:"name"          json:"name"`
	Picture   *string       `bson:"picture"       json:"picture"`
	CreatedAt time.Time     `bson:"created_at"    json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at"    json:"updated_at"`
}
