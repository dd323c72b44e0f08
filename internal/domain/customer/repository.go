package customer

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("customer not found")

type CustomerRepository interface {
	// Insert persists a new customer and populates its ID. Optional
	// columns (address2, notes) are omitted from the statement when nil
	// so the store default applies.
	Insert(ctx context.Context, customer *Customer) error

	// Update rewrites the row matched by ID. Optional columns are set to
	// NULL when nil, clearing any previously stored value.
	Update(ctx context.Context, customer *Customer) error

	FindByID(ctx context.Context, customerID int64) (*Customer, error)

	CountActive(ctx context.Context) (int64, error)
}
