package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ContactMessage is a message submitted through the contact form.
// CreatedAt is always stamped by the server, never taken from the client.
type ContactMessage struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string        `bson:"name" json:"name"`
	Email     string        `bson:"email" json:"email"`
	Message   string        `bson:"message" json:"message"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
}
