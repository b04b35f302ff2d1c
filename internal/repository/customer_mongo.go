package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/clienthub/clienthub/internal/model"
)

const customersCollection = "customers"

// mongoCustomerRepository keeps customers as independent documents. No
// composite unique index is assumed, so the per-user email invariant is
// enforced entirely by IsEmailUnique and there is no write-time backstop
// against two concurrent creates passing the check together.
type mongoCustomerRepository struct {
	customers *mongo.Collection
}

// NewMongoCustomerRepository builds CustomerRepository on top of mongodb
func NewMongoCustomerRepository(db *mongo.Database) CustomerRepository {
	return &mongoCustomerRepository{customers: db.Collection(customersCollection)}
}

func (r *mongoCustomerRepository) FindAllByUserID(ctx context.Context, userID string) ([]*model.Customer, error) {
	customers := make([]*model.Customer, 0)

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.customers.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *mongoCustomerRepository) FindByID(ctx context.Context, id string, userID string) (*model.Customer, error) {
	var c model.Customer

	err := r.customers.FindOne(ctx, bson.M{"_id": id, "userId": userID}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *mongoCustomerRepository) Create(ctx context.Context, c *model.Customer) error {
	if _, err := r.customers.InsertOne(ctx, c); err != nil {
		return err
	}
	return nil
}

func (r *mongoCustomerRepository) Update(ctx context.Context, c *model.Customer) (bool, error) {
	update := bson.M{
		"$set": bson.M{
			"name":      c.Name,
			"email":     c.Email,
			"phone":     c.Phone,
			"company":   c.Company,
			"status":    c.Status,
			"updatedAt": c.UpdatedAt,
		},
	}

	res, err := r.customers.UpdateOne(ctx, bson.M{"_id": c.ID, "userId": c.UserID}, update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *mongoCustomerRepository) DeleteByID(ctx context.Context, id string, userID string) (bool, error) {
	res, err := r.customers.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// IsEmailUnique selects documents by (email, userId) only and filters the
// excluded id on the application side. The excluded id must never become an
// equality filter in the query itself - that predicate would match nothing
// and report any email as unique.
func (r *mongoCustomerRepository) IsEmailUnique(ctx context.Context, email string, userID string, excludeID string) (bool, error) {
	cursor, err := r.customers.Find(ctx, bson.M{"email": email, "userId": userID})
	if err != nil {
		return false, err
	}
	defer cursor.Close(ctx)

	var matches []*model.Customer
	if err := cursor.All(ctx, &matches); err != nil {
		return false, err
	}

	for _, c := range matches {
		if c.ID != excludeID {
			return false, nil
		}
	}
	return true, nil
}
