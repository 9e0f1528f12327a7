package usecase

import (
	stderrors "errors"

	"shop-ledger/internal/catalog/domain/model"
	"shop-ledger/internal/shared/errors"
)

// Client-facing messages. The HTTP layer reports them verbatim.
const (
	MsgInvalidProduct       = "Invalid product data"
	MsgInsertProductFailed  = "Failed to insert product"
	MsgProductNotFound      = "Product not found"
	MsgServerError          = "Server error"
	MsgInvalidID            = "Invalid id"
	MsgInvalidUpdate        = "Update payload must be a non-empty object"
	MsgInvalidUser          = "Invalid user data"
	MsgUserExists           = "user already exists. do not need to insert again"
	MsgFetchImportsFailed   = "Failed to fetch imports"
	MsgMissingImportFields  = "Missing productId or quantity"
	MsgInvalidProductID     = "Invalid productId"
	MsgInvalidQuantity      = "Invalid quantity"
	MsgImportFailed         = "Import failed"
	MsgFetchExportsFailed   = "Failed to fetch exports"
	MsgMissingExportFields  = "Name, price, and quantity are required"
	MsgInvalidExportNumbers = "Price, quantity and rating must be numeric"
	MsgAddExportFailed      = "Failed to add export product"
	MsgExportAdded          = "Export product added successfully"
)

// translateStoreError maps repository errors to application errors. notFound
// is the message used when the target document does not exist; fallback is
// reported for every other store failure, which is typed as infrastructure.
func translateStoreError(err error, notFound, fallback, component string) error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, model.ErrInvalidID):
		return errors.NewValidationError(MsgInvalidID).WithCause(errors.ErrInvalidID).WithComponent(component)
	case stderrors.Is(err, model.ErrDocumentNotFound):
		return errors.NewNotFoundError(notFound).WithCause(errors.ErrNotFound).WithComponent(component)
	default:
		var appErr *errors.AppError
		if stderrors.As(err, &appErr) {
			return appErr
		}
		return errors.NewInfrastructureError(fallback).WithCause(err).WithComponent(component)
	}
}
