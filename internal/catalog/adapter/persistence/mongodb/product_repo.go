package mongodb

import (
	"context"

	"shop-ledger/internal/catalog/domain/model"
	"shop-ledger/internal/catalog/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductRepository implements repository.ProductRepository on MongoDB.
type ProductRepository struct {
	store documentStore
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

func NewProductRepository(collection CollectionInterface) *ProductRepository {
	return &ProductRepository{store: newDocumentStore("products", collection)}
}

func (r *ProductRepository) Create(ctx context.Context, doc model.Document) (*model.InsertResult, error) {
	return r.store.insert(ctx, bson.M(doc))
}

func (r *ProductRepository) ListByRating(ctx context.Context, limit int64) ([]model.Document, error) {
	opts := options.Find().SetSort(bson.D{{Key: model.FieldRating, Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return r.store.find(ctx, bson.M{}, opts)
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (model.Document, error) {
	return r.store.findByID(ctx, id)
}

func (r *ProductRepository) UpdateFields(ctx context.Context, id string, fields model.Document) (*model.UpdateResult, error) {
	return r.store.setFields(ctx, id, fields)
}

// AdjustQuantity uses $inc so concurrent adjustments never lose an update.
// Stock has no floor and may go negative.
func (r *ProductRepository) AdjustQuantity(ctx context.Context, id string, delta int64) (*model.UpdateResult, error) {
	return r.store.updateByID(ctx, id, bson.M{"$inc": bson.M{model.FieldQuantity: delta}})
}

func (r *ProductRepository) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	return r.store.deleteByID(ctx, id)
}

// EnsureIndexes backs the rating-ordered listings.
func (r *ProductRepository) EnsureIndexes(ctx context.Context) error {
	return r.store.ensureIndex(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: model.FieldRating, Value: -1}},
	})
}
