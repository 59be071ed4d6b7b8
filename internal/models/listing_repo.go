package models

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ListingRepo interface {
	CreateListing(ctx context.Context, listing *Listing) (*Listing, error)
	ListRecent(ctx context.Context, limit int64) ([]*Listing, error)
	SearchListings(ctx context.Context, query string) ([]*Listing, error)
	ListByOwner(ctx context.Context, ownerEmail string) ([]*Listing, error)
	UpdateListing(ctx context.Context, id primitive.ObjectID, ownerEmail string, patch bson.M) (int64, error)
	DeleteListing(ctx context.Context, id primitive.ObjectID, ownerEmail string) (int64, error)
}

func (mdb *MongodbRepo) CreateListing(ctx context.Context, listing *Listing) (*Listing, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	res, err := mdb.Collection(ListingsColName).InsertOne(ctx, listing)
	if err != nil {
		return nil, storeErr(err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		listing.ID = oid
	}
	return listing, nil
}

func (mdb *MongodbRepo) ListRecent(ctx context.Context, limit int64) ([]*Listing, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	return mdb.findListings(ctx, bson.M{}, opts)
}

// SearchListings matches the listing name case-insensitively. An empty
// query degenerates to a full scan on purpose.
func (mdb *MongodbRepo) SearchListings(ctx context.Context, query string) ([]*Listing, error) {
	filter := bson.M{"name": bson.M{"$regex": regexp.QuoteMeta(query), "$options": "i"}}
	return mdb.findListings(ctx, filter, options.Find())
}

func (mdb *MongodbRepo) ListByOwner(ctx context.Context, ownerEmail string) ([]*Listing, error) {
	return mdb.findListings(ctx, bson.M{"providerEmail": ownerEmail}, options.Find())
}

// UpdateListing merges patch into the listing owned by ownerEmail. The
// returned matched count is 0 when the id is unknown or owned by someone
// else; callers treat that as a no-op, not an error.
func (mdb *MongodbRepo) UpdateListing(ctx context.Context, id primitive.ObjectID, ownerEmail string, patch bson.M) (int64, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	filter := bson.M{"_id": id, "providerEmail": ownerEmail}
	res, err := mdb.Collection(ListingsColName).UpdateOne(ctx, filter, bson.M{"$set": patch})
	if err != nil {
		return 0, storeErr(err)
	}
	return res.MatchedCount, nil
}

func (mdb *MongodbRepo) DeleteListing(ctx context.Context, id primitive.ObjectID, ownerEmail string) (int64, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	filter := bson.M{"_id": id, "providerEmail": ownerEmail}
	res, err := mdb.Collection(ListingsColName).DeleteOne(ctx, filter)
	if err != nil {
		return 0, storeErr(err)
	}
	return res.DeletedCount, nil
}

func (mdb *MongodbRepo) findListings(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*Listing, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	cursor, err := mdb.Collection(ListingsColName).Find(ctx, filter, opts)
	if err != nil {
		return nil, storeErr(err)
	}
	defer cursor.Close(ctx)

	listings := []*Listing{}
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, storeErr(err)
	}
	return listings, nil
}
