package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStatus string

// Cancellation and completion are not modeled yet, "booked" is the only
// status a booking can carry.
const BookingBooked BookingStatus = "booked"

type Booking struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ListingID primitive.ObjectID `bson:"listingId" json:"listing_id"`
	UserEmail string             `bson:"userEmail" json:"user_email"`
	Reference string             `bson:"reference" json:"reference"`
	Status    BookingStatus      `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at"`
}
