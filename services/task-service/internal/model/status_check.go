package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// StatusCheck records that a client checked in.
type StatusCheck struct {
	ObjectID   bson.ObjectID `bson:"_id,omitempty" json:"-"`
	ID         string        `bson:"id"            json:"id"`
	ClientName string        `bson:"client_name"   json:"client_name"`
	Timestamp  time.Time     `bson:"timestamp"     json:"timestamp"`
}
