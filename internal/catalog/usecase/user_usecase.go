package usecase

import (
	"context"
	stderrors "errors"

	"shop-ledger/internal/catalog/domain/model"
	"shop-ledger/internal/catalog/domain/repository"
	"shop-ledger/internal/shared/errors"
	"shop-ledger/internal/shared/logger"
	"shop-ledger/internal/shared/utils"
)

const userComponent = "catalog.users"

// UserUsecaseInterface defines user registration.
type UserUsecaseInterface interface {
	RegisterUser(ctx context.Context, payload interface{}) (*model.RegistrationOutcome, error)
}

// UserUsecase registers users idempotently by email.
type UserUsecase struct {
	users repository.UserRepository
	log   logger.Logger
}

func NewUserUsecase(users repository.UserRepository, log logger.Logger) *UserUsecase {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &UserUsecase{users: users, log: log.WithComponent(userComponent)}
}

// RegisterUser inserts the payload unless a user with the same email value
// exists. The email is compared as given, so a payload without one matches
// any stored user that also lacks it.
func (uc *UserUsecase) RegisterUser(ctx context.Context, payload interface{}) (*model.RegistrationOutcome, error) {
	ctx = utils.WithOperation(ctx, "user.register")
	doc, ok := asObject(payload)
	if !ok {
		return nil, errors.NewValidationError(MsgInvalidUser).WithCause(errors.ErrInvalidInput).WithComponent(userComponent)
	}

	_, err := uc.users.FindByEmail(ctx, doc[model.FieldEmail])
	switch {
	case err == nil:
		return &model.RegistrationOutcome{Existing: true}, nil
	case !stderrors.Is(err, model.ErrDocumentNotFound):
		uc.log.WithContext(ctx).Errorf("lookup user: %v", err)
		return nil, errors.WrapError(err, MsgServerError).WithComponent(userComponent)
	}

	res, err := uc.users.Create(ctx, doc)
	if err != nil {
		// Lost a race against a concurrent registration of the same email.
		if stderrors.Is(err, repository.ErrDuplicateKey) {
			return &model.RegistrationOutcome{Existing: true}, nil
		}
		uc.log.WithContext(ctx).Errorf("insert user: %v", err)
		return nil, errors.WrapError(err, MsgServerError).WithComponent(userComponent)
	}
	return &model.RegistrationOutcome{Inserted: res}, nil
}
