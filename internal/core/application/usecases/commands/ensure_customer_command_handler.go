package commands

import (
	"context"
	"errors"
	"time"

	"atelier/internal/core/domain/model/customer"
	"atelier/internal/pkg/errs"
)

// EnsureCustomerCommandHandler finds a customer by email or creates one.
type EnsureCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewEnsureCustomerCommandHandler creates a handler for find-or-create.
func NewEnsureCustomerCommandHandler(uowFactory CustomerUoWFactory) EnsureCustomerCommandHandler {
	return EnsureCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the existing customer with the command's email, or creates
// and returns a new one. An existing customer's details are left untouched.
func (h *EnsureCustomerCommandHandler) Handle(
	ctx context.Context,
	cmd EnsureCustomerCommand,
) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerRepository()
	existing, err := repo.GetByEmail(ctx, cmd.Email())
	if err == nil {
		if err = uow.Commit(ctx); err != nil {
			return nil, err
		}
		return existing, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	created, err := customer.NewCustomer(cmd.CustomerID(), cmd.Name(), cmd.Email(), cmd.Phone(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
