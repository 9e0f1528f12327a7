package usecase

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"shop-ledger/internal/catalog/domain/model"
	"shop-ledger/internal/catalog/domain/repository"
	"shop-ledger/internal/shared/errors"
	"shop-ledger/internal/shared/eventbus"
	"shop-ledger/internal/shared/logger"
	"shop-ledger/internal/shared/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const importComponent = "ledger.imports"

// Write modes for recording an import.
const (
	WriteModeTransaction = "transaction"
	WriteModeSequential  = "sequential"
)

// ImportUsecaseInterface defines the import side of the trade ledger.
type ImportUsecaseInterface interface {
	ListImports(ctx context.Context, importerEmail string) ([]model.Document, error)
	GetImport(ctx context.Context, id string) (model.Document, error)
	CreateImport(ctx context.Context, payload interface{}) (*model.ImportOutcome, error)
	DeleteImport(ctx context.Context, id string) (*model.DeleteResult, error)
}

// ImportUsecase records an import event and decrements the referenced
// product's stock by the imported quantity.
type ImportUsecase struct {
	imports   repository.ImportRepository
	products  repository.ProductRepository
	tx        repository.TransactionRunner
	publisher eventbus.Publisher
	mode      string
	log       logger.Logger
	now       func() time.Time
}

// NewImportUsecase creates an ImportUsecase. With a nil tx or the sequential
// mode, the two writes run one after the other.
func NewImportUsecase(
	imports repository.ImportRepository,
	products repository.ProductRepository,
	tx repository.TransactionRunner,
	publisher eventbus.Publisher,
	mode string,
	log logger.Logger,
) *ImportUsecase {
	if log == nil {
		log = logger.NewNopLogger()
	}
	if mode != WriteModeSequential {
		mode = WriteModeTransaction
	}
	return &ImportUsecase{
		imports:   imports,
		products:  products,
		tx:        tx,
		publisher: publisher,
		mode:      mode,
		log:       log.WithComponent(importComponent),
		now:       time.Now,
	}
}

// ListImports returns imports newest first, optionally for one importer.
func (uc *ImportUsecase) ListImports(ctx context.Context, importerEmail string) ([]model.Document, error) {
	docs, err := uc.imports.ListNewestFirst(ctx, importerEmail)
	if err != nil {
		uc.log.WithContext(ctx).Errorf("list imports: %v", err)
		return nil, errors.WrapError(err, MsgFetchImportsFailed).WithComponent(importComponent)
	}
	return docs, nil
}

func (uc *ImportUsecase) GetImport(ctx context.Context, id string) (model.Document, error) {
	doc, err := uc.imports.GetByID(ctx, id)
	if err != nil {
		return nil, translateStoreError(err, MsgProductNotFound, MsgServerError, importComponent)
	}
	return doc, nil
}

// DeleteImport removes the import record only. Stock is not restored.
func (uc *ImportUsecase) DeleteImport(ctx context.Context, id string) (*model.DeleteResult, error) {
	res, err := uc.imports.Delete(ctx, id)
	if err != nil {
		uc.log.WithContext(ctx).Errorf("delete import %s: %v", id, err)
		return nil, translateStoreError(err, MsgProductNotFound, MsgServerError, importComponent)
	}
	return res, nil
}

// CreateImport stores the payload as given and decrements the product's
// quantity. Both inputs are validated before anything is written.
func (uc *ImportUsecase) CreateImport(ctx context.Context, payload interface{}) (*model.ImportOutcome, error) {
	ctx = utils.WithOperation(ctx, "import.create")
	doc, ok := asObject(payload)
	if !ok || !isTruthy(doc[model.FieldProductID]) || !isTruthy(doc[model.FieldQuantity]) {
		return nil, errors.NewValidationError(MsgMissingImportFields).WithCause(errors.ErrInvalidInput).WithComponent(importComponent)
	}

	productID, ok := doc[model.FieldProductID].(string)
	if !ok {
		return nil, errors.NewValidationError(MsgInvalidProductID).WithCause(errors.ErrInvalidID).WithComponent(importComponent)
	}
	if _, err := model.ParseID(productID); err != nil {
		return nil, errors.NewValidationError(MsgInvalidProductID).WithCause(errors.ErrInvalidID).WithComponent(importComponent)
	}
	quantity, ok := parseInteger(doc[model.FieldQuantity])
	if !ok {
		return nil, errors.NewValidationError(MsgInvalidQuantity).WithCause(errors.ErrInvalidInput).WithComponent(importComponent)
	}

	var (
		outcome *model.ImportOutcome
		err     error
	)
	if uc.mode == WriteModeTransaction && uc.tx != nil {
		outcome, err = uc.createInTransaction(ctx, doc, productID, quantity)
		if stderrors.Is(err, repository.ErrTransactionsUnsupported) {
			uc.log.WithContext(ctx).Warn("transactions unavailable, recording import without one")
			outcome, err = uc.createSequential(ctx, doc, productID, quantity)
		}
	} else {
		outcome, err = uc.createSequential(ctx, doc, productID, quantity)
	}
	if err != nil {
		return nil, err
	}

	uc.log.WithContext(ctx).WithFields(map[string]interface{}{
		"product_id": productID,
		"quantity":   quantity,
		"matched":    outcome.UpdateResult.MatchedCount,
	}).Info("import recorded")
	if uc.publisher != nil {
		uc.publisher.PublishAndForget(ctx, eventbus.NewBasicEventWithSource(eventbus.EventTypeImportRecorded, outcome, importComponent))
	}
	return outcome, nil
}

func (uc *ImportUsecase) createInTransaction(ctx context.Context, doc model.Document, productID string, quantity int64) (*model.ImportOutcome, error) {
	var outcome *model.ImportOutcome
	err := uc.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		inserted, err := uc.imports.Create(txCtx, doc)
		if err != nil {
			return fmt.Errorf("insert import: %w", err)
		}
		updated, err := uc.products.AdjustQuantity(txCtx, productID, -quantity)
		if err != nil {
			return fmt.Errorf("decrement stock: %w", err)
		}
		outcome = &model.ImportOutcome{ImportResult: inserted, UpdateResult: updated}
		return nil
	})
	if err != nil {
		if stderrors.Is(err, repository.ErrTransactionsUnsupported) {
			return nil, err
		}
		uc.log.WithContext(ctx).Errorf("import transaction aborted: %v", err)
		return nil, errors.NewInternalError(MsgImportFailed).WithCause(err).WithComponent(importComponent)
	}
	return outcome, nil
}

func (uc *ImportUsecase) createSequential(ctx context.Context, doc model.Document, productID string, quantity int64) (*model.ImportOutcome, error) {
	inserted, err := uc.imports.Create(ctx, doc)
	if err != nil {
		uc.log.WithContext(ctx).Errorf("insert import: %v", err)
		return nil, errors.NewInternalError(MsgImportFailed).WithCause(err).WithComponent(importComponent)
	}

	updated, err := uc.products.AdjustQuantity(ctx, productID, -quantity)
	if err != nil {
		importID := idString(inserted.InsertedID)
		uc.log.WithContext(ctx).WithFields(map[string]interface{}{
			"import_id":  importID,
			"product_id": productID,
		}).Errorf("stock decrement failed after import was stored: %v", err)
		uc.recordPartialFailure(ctx, importID, productID, quantity, err)
		return nil, errors.NewInternalError(MsgImportFailed).
			WithCause(fmt.Errorf("%w: %v", errors.ErrPartialFailure, err)).
			WithDetail("import_id", importID).
			WithComponent(importComponent)
	}
	return &model.ImportOutcome{ImportResult: inserted, UpdateResult: updated}, nil
}

func idString(id interface{}) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(id)
}

func (uc *ImportUsecase) recordPartialFailure(ctx context.Context, importID, productID string, quantity int64, cause error) {
	if uc.publisher == nil {
		return
	}
	entry := model.ReconciliationEntry{
		ImportID:  importID,
		ProductID: productID,
		Quantity:  quantity,
		Reason:    cause.Error(),
		RequestID: utils.GetRequestIDOrDefault(ctx, ""),
		FailedAt:  uc.now().UTC(),
	}
	event := eventbus.NewBasicEventWithSource(eventbus.EventTypeImportPartialFailure, entry, importComponent)
	if err := uc.publisher.Publish(context.WithoutCancel(ctx), event); err != nil {
		uc.log.WithContext(ctx).Errorf("reconciliation entry for import %s not recorded: %v", importID, err)
	}
}
