package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Booking records a user's booking of a service listing.
type Booking struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ServiceID   string        `bson:"service_id,omitempty" json:"service_id,omitempty"`
	ServiceName string        `bson:"service_name,omitempty" json:"service_name,omitempty"`
	UserEmail   string        `bson:"user_email" json:"user_email"`
	UserName    string        `bson:"userName,omitempty" json:"userName,omitempty"`
	Date        string        `bson:"date,omitempty" json:"date,omitempty"`
	Price       float64       `bson:"price,omitempty" json:"price,omitempty"`
	Status      string        `bson:"status,omitempty" json:"status,omitempty"`
}

// BookingUpdate carries the mutable fields of a booking (status changes).
type BookingUpdate struct {
	Status string `bson:"status,omitempty" json:"status,omitempty"`
	Date   string `bson:"date,omitempty" json:"date,omitempty"`
}
