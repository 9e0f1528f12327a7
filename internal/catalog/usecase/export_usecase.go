package usecase

import (
	"context"
	"time"

	"shop-ledger/internal/catalog/domain/model"
	"shop-ledger/internal/catalog/domain/repository"
	"shop-ledger/internal/shared/errors"
	"shop-ledger/internal/shared/eventbus"
	"shop-ledger/internal/shared/logger"
	"shop-ledger/internal/shared/utils"
)

const exportComponent = "ledger.exports"

// ExportUsecaseInterface defines the export side of the trade ledger.
type ExportUsecaseInterface interface {
	ListExports(ctx context.Context, email string) ([]model.Document, error)
	AddExport(ctx context.Context, payload interface{}) (*model.InsertResult, error)
	UpdateExport(ctx context.Context, id string, payload interface{}) (*model.UpdateResult, error)
	DeleteExport(ctx context.Context, id string) (*model.DeleteResult, error)
}

// ExportUsecase normalizes export snapshots. Exports never touch product stock.
type ExportUsecase struct {
	exports   repository.ExportRepository
	publisher eventbus.Publisher
	log       logger.Logger
	now       func() time.Time
}

func NewExportUsecase(exports repository.ExportRepository, publisher eventbus.Publisher, log logger.Logger) *ExportUsecase {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &ExportUsecase{
		exports:   exports,
		publisher: publisher,
		log:       log.WithComponent(exportComponent),
		now:       time.Now,
	}
}

func (uc *ExportUsecase) ListExports(ctx context.Context, email string) ([]model.Document, error) {
	docs, err := uc.exports.List(ctx, email)
	if err != nil {
		uc.log.WithContext(ctx).Errorf("list exports: %v", err)
		return nil, errors.WrapError(err, MsgFetchExportsFailed).WithComponent(exportComponent)
	}
	return docs, nil
}

// AddExport builds a normalized snapshot from the payload. name, price and
// quantity are required and must be truthy, so a price of 0 is rejected.
func (uc *ExportUsecase) AddExport(ctx context.Context, payload interface{}) (*model.InsertResult, error) {
	ctx = utils.WithOperation(ctx, "export.add")
	doc, ok := asObject(payload)
	if !ok || !isTruthy(doc["name"]) || !isTruthy(doc["price"]) || !isTruthy(doc[model.FieldQuantity]) {
		return nil, errors.NewValidationError(MsgMissingExportFields).WithCause(errors.ErrInvalidInput).WithComponent(exportComponent)
	}

	export, err := uc.normalize(doc)
	if err != nil {
		return nil, err
	}

	res, err := uc.exports.Create(ctx, export)
	if err != nil {
		uc.log.WithContext(ctx).Errorf("insert export: %v", err)
		return nil, errors.NewInternalError(MsgAddExportFailed).WithCause(err).WithComponent(exportComponent)
	}
	if uc.publisher != nil {
		uc.publisher.PublishAndForget(ctx, eventbus.NewBasicEventWithSource(eventbus.EventTypeExportAdded, export, exportComponent))
	}
	return res, nil
}

func (uc *ExportUsecase) normalize(doc model.Document) (*model.ExportDocument, error) {
	price, ok := toNumber(doc["price"])
	if !ok {
		return nil, errors.NewValidationError(MsgInvalidExportNumbers).WithDetail("field", "price").WithComponent(exportComponent)
	}
	quantity, ok := toNumber(doc[model.FieldQuantity])
	if !ok {
		return nil, errors.NewValidationError(MsgInvalidExportNumbers).WithDetail("field", "quantity").WithComponent(exportComponent)
	}
	// Missing or non-numeric ratings default to zero.
	rating, ok := toNumber(doc[model.FieldRating])
	if !ok {
		rating = 0
	}

	return &model.ExportDocument{
		Name:          doc["name"],
		Image:         valueOr(doc["image"], ""),
		Price:         price,
		OriginCountry: valueOr(doc["originCountry"], ""),
		Rating:        rating,
		Quantity:      quantity,
		CreatedAt:     uc.now().UTC(),
		Email:         valueOr(doc[model.FieldEmail], nil),
	}, nil
}

// UpdateExport merges fields into an export record; the id is never overwritten.
func (uc *ExportUsecase) UpdateExport(ctx context.Context, id string, payload interface{}) (*model.UpdateResult, error) {
	doc, ok := asObject(payload)
	if !ok {
		return nil, errors.NewValidationError(MsgInvalidUpdate).WithCause(errors.ErrInvalidInput).WithComponent(exportComponent)
	}
	fields := doc.Without(model.FieldID)
	if len(fields) == 0 {
		return nil, errors.NewValidationError(MsgInvalidUpdate).WithCause(errors.ErrInvalidInput).WithComponent(exportComponent)
	}
	res, err := uc.exports.UpdateFields(ctx, id, fields)
	if err != nil {
		uc.log.WithContext(ctx).Errorf("update export %s: %v", id, err)
		return nil, translateStoreError(err, MsgProductNotFound, MsgServerError, exportComponent)
	}
	return res, nil
}

func (uc *ExportUsecase) DeleteExport(ctx context.Context, id string) (*model.DeleteResult, error) {
	res, err := uc.exports.Delete(ctx, id)
	if err != nil {
		uc.log.WithContext(ctx).Errorf("delete export %s: %v", id, err)
		return nil, translateStoreError(err, MsgProductNotFound, MsgServerError, exportComponent)
	}
	return res, nil
}
