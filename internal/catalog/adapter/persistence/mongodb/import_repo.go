package mongodb

import (
	"context"

	"shop-ledger/internal/catalog/domain/model"
	"shop-ledger/internal/catalog/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ImportRepository implements repository.ImportRepository on MongoDB.
type ImportRepository struct {
	store documentStore
}

var _ repository.ImportRepository = (*ImportRepository)(nil)

func NewImportRepository(collection CollectionInterface) *ImportRepository {
	return &ImportRepository{store: newDocumentStore("imports", collection)}
}

func (r *ImportRepository) Create(ctx context.Context, doc model.Document) (*model.InsertResult, error) {
	return r.store.insert(ctx, bson.M(doc))
}

// ListNewestFirst sorts on _id descending; ObjectIDs grow with insertion time.
func (r *ImportRepository) ListNewestFirst(ctx context.Context, email string) ([]model.Document, error) {
	filter := bson.M{}
	if email != "" {
		filter[model.FieldImporterEmail] = email
	}
	opts := options.Find().SetSort(bson.D{{Key: model.FieldID, Value: -1}})
	return r.store.find(ctx, filter, opts)
}

func (r *ImportRepository) GetByID(ctx context.Context, id string) (model.Document, error) {
	return r.store.findByID(ctx, id)
}

func (r *ImportRepository) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	return r.store.deleteByID(ctx, id)
}

func (r *ImportRepository) EnsureIndexes(ctx context.Context) error {
	return r.store.ensureIndex(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: model.FieldImporterEmail, Value: 1}, {Key: model.FieldID, Value: -1}},
	})
}
