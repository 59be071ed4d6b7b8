package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ListingStatus string

const (
	ListingAvailable ListingStatus = "available"
	ListingBooked    ListingStatus = "booked"
)

type Listing struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ProviderEmail string             `bson:"providerEmail" json:"provider_email" validate:"required,email"`

	Name        string   `bson:"name" json:"name" validate:"required"`
	Model       string   `bson:"model,omitempty" json:"model,omitempty"`
	Year        int      `bson:"year,omitempty" json:"year,omitempty"`
	PricePerDay float64  `bson:"pricePerDay,omitempty" json:"price_per_day,omitempty"`
	Location    string   `bson:"location,omitempty" json:"location,omitempty"`
	ImageURL    string   `bson:"imageUrl,omitempty" json:"image_url,omitempty"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Features    []string `bson:"features,omitempty" json:"features,omitempty"`

	Status    ListingStatus `bson:"status" json:"status"`
	CreatedAt time.Time     `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time     `bson:"updatedAt" json:"updated_at"`
}
