package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Service is a marketplace service listing. ProviderEmail is the owner
// attribute: it is set at creation time and never touched by updates.
type Service struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ServiceName   string        `bson:"service_name" json:"service_name"`
	ServiceImage  string        `bson:"service_image,omitempty" json:"service_image,omitempty"`
	Description   string        `bson:"description,omitempty" json:"description,omitempty"`
	Price         float64       `bson:"price,omitempty" json:"price,omitempty"`
	ServiceArea   string        `bson:"serviceArea,omitempty" json:"serviceArea,omitempty"`
	ProviderName  string        `bson:"providerName,omitempty" json:"providerName,omitempty"`
	ProviderEmail string        `bson:"providerEmail" json:"providerEmail"`
}

// ServiceUpdate carries the mutable fields of a listing. ProviderEmail is
// deliberately absent so an update can never reassign ownership.
type ServiceUpdate struct {
	ServiceName  string  `bson:"service_name,omitempty" json:"service_name,omitempty"`
	ServiceImage string  `bson:"service_image,omitempty" json:"service_image,omitempty"`
	Description  string  `bson:"description,omitempty" json:"description,omitempty"`
	Price        float64 `bson:"price,omitempty" json:"price,omitempty"`
	ServiceArea  string  `bson:"serviceArea,omitempty" json:"serviceArea,omitempty"`
}
