package models

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Validate = validator.New()

const (
	ListingsColName = "listings"
	BookingsColName = "bookings"
	UsersColName    = "users"

	// Every store call gets a bounded deadline so a dead store fails the
	// request instead of hanging it.
	storeTimeout = 5 * time.Second
)

type MongodbRepo struct {
	mongodbClient *mongo.Client
	dbName        string
}

func MongodbNewRepo(mongodbClient *mongo.Client, dbName string) *MongodbRepo {
	return &MongodbRepo{
		mongodbClient: mongodbClient,
		dbName:        dbName,
	}
}

func (mdb *MongodbRepo) Collection(name string) *mongo.Collection {
	return mdb.mongodbClient.Database(mdb.dbName).Collection(name)
}

func storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, storeTimeout)
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

// EnsureIndexes bootstraps the uniqueness guards the engine relies on:
// users are unique by email, and at most one booking per listing may hold
// the booked status. The partial index backs up the listing-status CAS at
// the store level.
func (mdb *MongodbRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	_, err := mdb.Collection(UsersColName).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return storeErr(err)
	}

	_, err = mdb.Collection(BookingsColName).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "listingId", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"status": BookingBooked}),
	})
	if err != nil {
		return storeErr(err)
	}

	return nil
}
