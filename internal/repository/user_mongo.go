package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/clienthub/clienthub/internal/model"
)

const usersCollection = "users"

type mongoUserRepository struct {
	users     *mongo.Collection
	customers *mongo.Collection
}

// NewMongoUserRepository builds UserRepository on top of mongodb
func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepository{
		users:     db.Collection(usersCollection),
		customers: db.Collection(customersCollection),
	}
}

func (r *mongoUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User

	err := r.users.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *mongoUserRepository) Upsert(ctx context.Context, u *model.User) (*model.User, error) {
	update := bson.M{
		"$set": bson.M{
			"email":           u.Email,
			"firstName":       u.FirstName,
			"lastName":        u.LastName,
			"profileImageUrl": u.ProfileImageURL,
			"updatedAt":       u.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"createdAt": u.CreatedAt,
		},
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var upserted model.User
	err := r.users.FindOneAndUpdate(ctx, bson.M{"_id": u.ID}, update, opts).Decode(&upserted)
	if err != nil {
		return nil, err
	}
	return &upserted, nil
}

// DeleteByID removes the user document. Mongodb has no equivalent of a
// cascading foreign key, so the user's customers are deleted explicitly
// before the user itself.
func (r *mongoUserRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	if _, err := r.customers.DeleteMany(ctx, bson.M{"userId": id}); err != nil {
		return false, err
	}

	res, err := r.users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
