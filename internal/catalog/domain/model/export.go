package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExportDocument is the normalized snapshot written by "add export". It does
// not reference a product. Name, Image, OriginCountry and Email keep the
// caller's value as sent, so a numeric name is stored as a number.
type ExportDocument struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name          interface{}        `json:"name" bson:"name"`
	Image         interface{}        `json:"image" bson:"image"`
	Price         float64            `json:"price" bson:"price"`
	OriginCountry interface{}        `json:"originCountry" bson:"originCountry"`
	Rating        float64            `json:"rating" bson:"rating"`
	Quantity      float64            `json:"quantity" bson:"quantity"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	Email         interface{}        `json:"email,omitempty" bson:"email,omitempty"`
}
