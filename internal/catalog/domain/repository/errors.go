package repository

import "errors"

// ErrTransactionsUnsupported signals that the store is a standalone server
// without multi-document transaction support.
var ErrTransactionsUnsupported = errors.New("transactions are not supported by this deployment")

// ErrDuplicateKey is returned by inserts that violate a unique index.
var ErrDuplicateKey = errors.New("duplicate key")
