package mongodb

import (
	"context"

	"shop-ledger/internal/catalog/domain/model"
	"shop-ledger/internal/catalog/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRepository implements repository.UserRepository on MongoDB.
type UserRepository struct {
	store documentStore
}

var _ repository.UserRepository = (*UserRepository)(nil)

func NewUserRepository(collection CollectionInterface) *UserRepository {
	return &UserRepository{store: newDocumentStore("users", collection)}
}

// FindByEmail matches the email value exactly as supplied; a nil email
// matches users stored without one.
func (r *UserRepository) FindByEmail(ctx context.Context, email interface{}) (model.Document, error) {
	return r.store.findOne(ctx, bson.M{model.FieldEmail: email})
}

func (r *UserRepository) Create(ctx context.Context, doc model.Document) (*model.InsertResult, error) {
	return r.store.insert(ctx, bson.M(doc))
}

// EnsureIndexes adds a unique index on string emails so two concurrent
// registrations cannot both insert.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	return r.store.ensureIndex(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: model.FieldEmail, Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{model.FieldEmail: bson.M{"$type": "string"}}),
	})
}
