package mongodb

import (
	"context"

	"shop-ledger/internal/catalog/domain/model"
	"shop-ledger/internal/catalog/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ExportRepository implements repository.ExportRepository on MongoDB.
type ExportRepository struct {
	store documentStore
}

var _ repository.ExportRepository = (*ExportRepository)(nil)

func NewExportRepository(collection CollectionInterface) *ExportRepository {
	return &ExportRepository{store: newDocumentStore("exports", collection)}
}

func (r *ExportRepository) Create(ctx context.Context, doc *model.ExportDocument) (*model.InsertResult, error) {
	return r.store.insert(ctx, doc)
}

func (r *ExportRepository) List(ctx context.Context, email string) ([]model.Document, error) {
	filter := bson.M{}
	if email != "" {
		filter[model.FieldEmail] = email
	}
	return r.store.find(ctx, filter, nil)
}

func (r *ExportRepository) UpdateFields(ctx context.Context, id string, fields model.Document) (*model.UpdateResult, error) {
	return r.store.setFields(ctx, id, fields)
}

func (r *ExportRepository) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	return r.store.deleteByID(ctx, id)
}

func (r *ExportRepository) EnsureIndexes(ctx context.Context) error {
	return r.store.ensureIndex(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: model.FieldEmail, Value: 1}},
	})
}
