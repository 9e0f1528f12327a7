package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shop-ledger/internal/catalog/domain/model"
	"shop-ledger/internal/catalog/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// documentStore implements the operations every collection shares: insert,
// lookup by id, field-merge update and delete.
type documentStore struct {
	name       string
	collection CollectionInterface
}

func newDocumentStore(name string, collection CollectionInterface) documentStore {
	return documentStore{name: name, collection: collection}
}

func (s documentStore) insert(ctx context.Context, doc interface{}) (*model.InsertResult, error) {
	id, err := s.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("insert into %s: %w", s.name, repository.ErrDuplicateKey)
		}
		return nil, fmt.Errorf("insert into %s: %w", s.name, err)
	}
	return &model.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (s documentStore) findOne(ctx context.Context, filter bson.M) (model.Document, error) {
	var raw bson.M
	if err := s.collection.FindOne(ctx, filter).Decode(&raw); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("find in %s: %w", s.name, err)
	}
	return model.Document(raw), nil
}

func (s documentStore) findByID(ctx context.Context, id string) (model.Document, error) {
	oid, err := model.ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.findOne(ctx, bson.M{model.FieldID: oid})
}

func (s documentStore) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]model.Document, error) {
	cur, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", s.name, err)
	}
	defer cur.Close(ctx)

	docs := make([]model.Document, 0)
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode %s document: %w", s.name, err)
		}
		docs = append(docs, model.Document(raw))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", s.name, err)
	}
	return docs, nil
}

// updateByID applies update to the document with the given id. A missing
// document yields a zero-matched result, not an error.
func (s documentStore) updateByID(ctx context.Context, id string, update bson.M) (*model.UpdateResult, error) {
	oid, err := model.ParseID(id)
	if err != nil {
		return nil, err
	}
	res, err := s.collection.UpdateOne(ctx, bson.M{model.FieldID: oid}, update)
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", s.name, err)
	}
	out := &model.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.Matched(),
		ModifiedCount: res.Modified(),
		UpsertedID:    res.UpsertedID(),
	}
	if out.UpsertedID != nil {
		out.UpsertedCount = 1
	}
	return out, nil
}

// setFields performs a field-merge: only the supplied keys are overwritten.
func (s documentStore) setFields(ctx context.Context, id string, fields model.Document) (*model.UpdateResult, error) {
	return s.updateByID(ctx, id, bson.M{"$set": bson.M(fields.Without(model.FieldID))})
}

func (s documentStore) deleteByID(ctx context.Context, id string) (*model.DeleteResult, error) {
	oid, err := model.ParseID(id)
	if err != nil {
		return nil, err
	}
	res, err := s.collection.DeleteOne(ctx, bson.M{model.FieldID: oid})
	if err != nil {
		return nil, fmt.Errorf("delete from %s: %w", s.name, err)
	}
	return &model.DeleteResult{Acknowledged: true, DeletedCount: res.Deleted()}, nil
}

// ensureIndex creates index, tolerating an identical existing definition.
func (s documentStore) ensureIndex(ctx context.Context, index mongo.IndexModel) error {
	if _, err := s.collection.CreateIndex(ctx, index); err != nil {
		if strings.Contains(err.Error(), "already exists") {
			return nil
		}
		return fmt.Errorf("create index on %s: %w", s.name, err)
	}
	return nil
}
