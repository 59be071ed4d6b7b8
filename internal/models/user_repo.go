package models

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepo interface {
	FindUserByEmail(ctx context.Context, email string) (*User, error)
	CreateUser(ctx context.Context, user *User) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
}

// FindUserByEmail returns (nil, nil) when no user carries the email.
func (mdb *MongodbRepo) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	user := &User{}
	err := mdb.Collection(UsersColName).FindOne(ctx, bson.M{"email": email}).Decode(user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return user, nil
}

func (mdb *MongodbRepo) CreateUser(ctx context.Context, user *User) (*User, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	res, err := mdb.Collection(UsersColName).InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrUserExists
		}
		return nil, storeErr(err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return user, nil
}

func (mdb *MongodbRepo) ListUsers(ctx context.Context) ([]*User, error) {
	ctx, cancel := storeCtx(ctx)
	defer cancel()

	cursor, err := mdb.Collection(UsersColName).Find(ctx, bson.M{})
	if err != nil {
		return nil, storeErr(err)
	}
	defer cursor.Close(ctx)

	users := []*User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, storeErr(err)
	}
	return users, nil
}
