package usecase

import (
	"context"

	"shop-ledger/internal/catalog/domain/model"
	"shop-ledger/internal/catalog/domain/repository"
	"shop-ledger/internal/shared/errors"
	"shop-ledger/internal/shared/eventbus"
	"shop-ledger/internal/shared/logger"
	"shop-ledger/internal/shared/utils"
)

const productComponent = "catalog.products"

// ProductUsecaseInterface defines catalog operations on products.
type ProductUsecaseInterface interface {
	CreateProduct(ctx context.Context, payload interface{}) (*model.InsertResult, error)
	ListProducts(ctx context.Context) ([]model.Document, error)
	ListPopularProducts(ctx context.Context) ([]model.Document, error)
	GetProduct(ctx context.Context, id string) (model.Document, error)
	UpdateProduct(ctx context.Context, id string, payload interface{}) (*model.UpdateResult, error)
	DeleteProduct(ctx context.Context, id string) (*model.DeleteResult, error)
}

// ProductUsecase stores products as received and serves them ordered by rating.
type ProductUsecase struct {
	products     repository.ProductRepository
	publisher    eventbus.Publisher
	popularLimit int64
	log          logger.Logger
}

// NewProductUsecase creates a ProductUsecase. publisher may be nil.
func NewProductUsecase(products repository.ProductRepository, publisher eventbus.Publisher, popularLimit int64, log logger.Logger) *ProductUsecase {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &ProductUsecase{
		products:     products,
		publisher:    publisher,
		popularLimit: popularLimit,
		log:          log.WithComponent(productComponent),
	}
}

// CreateProduct inserts any JSON object verbatim, including {}.
func (uc *ProductUsecase) CreateProduct(ctx context.Context, payload interface{}) (*model.InsertResult, error) {
	ctx = utils.WithOperation(ctx, "product.create")
	doc, ok := asObject(payload)
	if !ok {
		return nil, errors.NewValidationError(MsgInvalidProduct).WithCause(errors.ErrInvalidInput).WithComponent(productComponent)
	}

	res, err := uc.products.Create(ctx, doc)
	if err != nil {
		uc.log.WithContext(ctx).Errorf("insert product: %v", err)
		return nil, errors.NewInternalError(MsgInsertProductFailed).WithCause(err).WithComponent(productComponent)
	}

	if uc.publisher != nil {
		uc.publisher.PublishAndForget(ctx, eventbus.NewBasicEventWithSource(eventbus.EventTypeProductCreated, res, productComponent))
	}
	return res, nil
}

// ListProducts returns every product, highest rating first.
func (uc *ProductUsecase) ListProducts(ctx context.Context) ([]model.Document, error) {
	docs, err := uc.products.ListByRating(ctx, 0)
	if err != nil {
		uc.log.WithContext(ctx).Errorf("list products: %v", err)
		return nil, translateStoreError(err, MsgProductNotFound, MsgServerError, productComponent)
	}
	return docs, nil
}

// ListPopularProducts returns the top rated products.
func (uc *ProductUsecase) ListPopularProducts(ctx context.Context) ([]model.Document, error) {
	docs, err := uc.products.ListByRating(ctx, uc.popularLimit)
	if err != nil {
		uc.log.WithContext(ctx).Errorf("list popular products: %v", err)
		return nil, translateStoreError(err, MsgProductNotFound, MsgServerError, productComponent)
	}
	return docs, nil
}

func (uc *ProductUsecase) GetProduct(ctx context.Context, id string) (model.Document, error) {
	doc, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, translateStoreError(err, MsgProductNotFound, MsgServerError, productComponent)
	}
	return doc, nil
}

// UpdateProduct merges the payload fields into the product. The identifier
// field is never overwritten. A missing product is a zero-match result.
func (uc *ProductUsecase) UpdateProduct(ctx context.Context, id string, payload interface{}) (*model.UpdateResult, error) {
	ctx = utils.WithOperation(ctx, "product.update")
	doc, ok := asObject(payload)
	if !ok {
		return nil, errors.NewValidationError(MsgInvalidUpdate).WithCause(errors.ErrInvalidInput).WithComponent(productComponent)
	}
	fields := doc.Without(model.FieldID)
	if len(fields) == 0 {
		return nil, errors.NewValidationError(MsgInvalidUpdate).WithCause(errors.ErrInvalidInput).WithComponent(productComponent)
	}

	res, err := uc.products.UpdateFields(ctx, id, fields)
	if err != nil {
		uc.log.WithContext(ctx).Errorf("update product %s: %v", id, err)
		return nil, translateStoreError(err, MsgProductNotFound, MsgServerError, productComponent)
	}
	return res, nil
}

// DeleteProduct removes a product. A missing product yields DeletedCount 0.
func (uc *ProductUsecase) DeleteProduct(ctx context.Context, id string) (*model.DeleteResult, error) {
	res, err := uc.products.Delete(ctx, id)
	if err != nil {
		uc.log.WithContext(ctx).Errorf("delete product %s: %v", id, err)
		return nil, translateStoreError(err, MsgProductNotFound, MsgServerError, productComponent)
	}
	return res, nil
}
