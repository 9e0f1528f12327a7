package mongodb

import (
	"context"
	"errors"
	"strings"

	"shop-ledger/internal/catalog/domain/repository"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// illegalOperationCode is returned by standalone servers for transaction commands.
const illegalOperationCode = 20

// ClientInterface abstracts MongoDB client operations for testing
type ClientInterface interface {
	StartSession(opts ...*options.SessionOptions) (mongo.Session, error)
}

// TransactionRunner runs callbacks inside a MongoDB session transaction.
type TransactionRunner struct {
	client ClientInterface
}

var _ repository.TransactionRunner = (*TransactionRunner)(nil)

func NewTransactionRunner(client ClientInterface) *TransactionRunner {
	return &TransactionRunner{client: client}
}

// WithTransaction commits fn's writes atomically. The driver retries fn on
// transient transaction errors, so fn must not have side effects outside
// the session.
func (t *TransactionRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := t.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	if err != nil && isTransactionUnsupported(err) {
		return repository.ErrTransactionsUnsupported
	}
	return err
}

func isTransactionUnsupported(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code == illegalOperationCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Transaction numbers are only allowed") ||
		strings.Contains(msg, "transactions are not supported")
}
