package models

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingRepo interface {
	ClaimListing(ctx context.Context, listingID primitive.ObjectID) error
	ReleaseListing(ctx context.Context, listingID primitive.ObjectID) error
	CreateBooking(ctx context.Context, booking *Booking) (*Booking, error)
	BookingsByUser(ctx context.Context, userEmail string) ([]*Booking, error)
}

// ClaimListing flips a listing from available to booked in a single
// conditional write. Two concurrent claims for the same listing race on
// the status guard and the store lets exactly one through, so no
// check-then-act window exists.
func (mdb *MongodbRepo) ClaimListing(ctx context.Context, listingID primitive.ObjectID) error {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	filter := bson.M{"_id": listingID, "status": ListingAvailable}
	update := bson.M{"$set": bson.M{"status": ListingBooked, "updatedAt": time.Now()}}

	err := mdb.Collection(ListingsColName).
		FindOneAndUpdate(ctx, filter, update, options.FindOneAndUpdate().SetReturnDocument(options.After)).
		Err()
	if err == nil {
		return nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return storeErr(err)
	}

	// No available listing matched. Distinguish "already booked" from
	// "never existed".
	exists := mdb.Collection(ListingsColName).FindOne(ctx, bson.M{"_id": listingID}).Err()
	if errors.Is(exists, mongo.ErrNoDocuments) {
		return ErrListingNotFound
	}
	if exists != nil {
		return storeErr(exists)
	}
	return ErrListingBooked
}

// ReleaseListing is the compensating write for a claim whose booking
// insert failed.
func (mdb *MongodbRepo) ReleaseListing(ctx context.Context, listingID primitive.ObjectID) error {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": ListingAvailable, "updatedAt": time.Now()}}
	_, err := mdb.Collection(ListingsColName).UpdateOne(ctx, bson.M{"_id": listingID}, update)
	if err != nil {
		return storeErr(err)
	}
	return nil
}

func (mdb *MongodbRepo) CreateBooking(ctx context.Context, booking *Booking) (*Booking, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	res, err := mdb.Collection(BookingsColName).InsertOne(ctx, booking)
	if err != nil {
		// The partial unique index on listingId backs up the claim; a
		// duplicate here means another booking already holds the listing.
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrListingBooked
		}
		return nil, storeErr(err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		booking.ID = oid
	}
	return booking, nil
}

func (mdb *MongodbRepo) BookingsByUser(ctx context.Context, userEmail string) ([]*Booking, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := mdb.Collection(BookingsColName).Find(ctx, bson.M{"userEmail": userEmail}, opts)
	if err != nil {
		return nil, storeErr(err)
	}
	defer cursor.Close(ctx)

	bookings := []*Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, storeErr(err)
	}
	return bookings, nil
}
