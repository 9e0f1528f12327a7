package repository

import (
	"context"

	"shop-ledger/internal/catalog/domain/model"
)

// ProductRepository persists catalog products.
type ProductRepository interface {
	Create(ctx context.Context, doc model.Document) (*model.InsertResult, error)
	// ListByRating returns products ordered by rating descending. limit <= 0 means all.
	ListByRating(ctx context.Context, limit int64) ([]model.Document, error)
	GetByID(ctx context.Context, id string) (model.Document, error)
	UpdateFields(ctx context.Context, id string, fields model.Document) (*model.UpdateResult, error)
	// AdjustQuantity atomically adds delta to the product's quantity field.
	AdjustQuantity(ctx context.Context, id string, delta int64) (*model.UpdateResult, error)
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
}

// ImportRepository persists import transaction events.
type ImportRepository interface {
	Create(ctx context.Context, doc model.Document) (*model.InsertResult, error)
	// ListNewestFirst filters by importer_email when email is non-empty.
	ListNewestFirst(ctx context.Context, email string) ([]model.Document, error)
	GetByID(ctx context.Context, id string) (model.Document, error)
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
}

// ExportRepository persists export snapshots.
type ExportRepository interface {
	Create(ctx context.Context, doc *model.ExportDocument) (*model.InsertResult, error)
	// List filters by email when email is non-empty, in natural store order.
	List(ctx context.Context, email string) ([]model.Document, error)
	UpdateFields(ctx context.Context, id string, fields model.Document) (*model.UpdateResult, error)
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
}

// UserRepository persists registered users.
type UserRepository interface {
	// FindByEmail returns model.ErrDocumentNotFound when no user matches.
	FindByEmail(ctx context.Context, email interface{}) (model.Document, error)
	Create(ctx context.Context, doc model.Document) (*model.InsertResult, error)
}

// TransactionRunner executes fn inside a store transaction. Implementations
// return ErrTransactionsUnsupported when the deployment cannot run one, in
// which case fn has not been applied.
type TransactionRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ReconciliationLog durably records imports left without their stock decrement.
type ReconciliationLog interface {
	Append(ctx context.Context, entry model.ReconciliationEntry) error
}
