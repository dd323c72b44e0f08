package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"repairshop/internal/domain/customer"
	"repairshop/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

type CustomerRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ customer.CustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(db DBPool, logger *slog.Logger) *CustomerRepository {
	if db == nil {
		panic("DBPool cannot be nil for CustomerRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerRepository, using default stderr handler")
	}
	return &CustomerRepository{
		db:     db,
		logger: logger.With("component", "CustomerRepository"),
	}
}

// Insert writes a new customer row. The optional address2/notes columns
// are included in the statement only when a value is present, so the
// store's column default (NULL) applies otherwise.
func (r *CustomerRepository) Insert(ctx context.Context, cust *customer.Customer) error {
	if cust == nil {
		return fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}

	r.logger.InfoContext(ctx, "Attempting to insert new customer", slog.String("email", cust.Email))

	columns := []string{"first_name", "last_name", "email", "phone", "address1", "city", "state", "zip", "active"}
	args := []any{cust.FirstName, cust.LastName, cust.Email, cust.Phone, cust.Address1, cust.City, cust.State, cust.Zip, cust.Active}

	if cust.Address2 != nil {
		columns = append(columns, "address2")
		args = append(args, *cust.Address2)
	}
	if cust.Notes != nil {
		columns = append(columns, "notes")
		args = append(args, *cust.Notes)
	}

	placeholders := make([]string, len(args))
	for i := range args {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(`
        INSERT INTO customers (%s, created_at, updated_at)
        VALUES (%s, NOW(), NOW())
        RETURNING id, created_at, updated_at`,
		strings.Join(columns, ", "), strings.Join(placeholders, ", "))

	err := r.db.QueryRow(ctx, query, args...).Scan(
		&cust.ID,
		&cust.CreatedAt,
		&cust.UpdatedAt,
	)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to insert customer", slog.Any("error", err))
		return translateDBError(err, r.logger)
	}

	r.logger.InfoContext(ctx, "Customer inserted successfully", slog.Int64("customerID", cust.ID))
	return nil
}

// Update rewrites the row matched by ID. Unlike Insert, address2/notes
// are always part of the statement; a nil value writes NULL and clears
// anything previously stored. The active flag is not part of the save
// payload and is left untouched.
func (r *CustomerRepository) Update(ctx context.Context, cust *customer.Customer) error {
	if cust == nil {
		return fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}

	r.logger.InfoContext(ctx, "Attempting to update customer", slog.Int64("customerID", cust.ID))

	query := `
        UPDATE customers
        SET first_name = $1,
            last_name = $2,
            email = $3,
            phone = $4,
            address1 = $5,
            address2 = $6,
            city = $7,
            state = $8,
            zip = $9,
            notes = $10,
            updated_at = NOW()
        WHERE id = $11`

	cmdTag, err := r.db.Exec(ctx, query,
		cust.FirstName,
		cust.LastName,
		cust.Email,
		cust.Phone,
		cust.Address1,
		cust.Address2,
		cust.City,
		cust.State,
		cust.Zip,
		cust.Notes,
		cust.ID,
	)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to update customer", slog.Any("error", err))
		return translateDBError(err, r.logger)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Update affected zero rows, customer likely not found")
		return customer.ErrNotFound
	}

	r.logger.InfoContext(ctx, "Customer updated successfully")
	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, customerID int64) (*customer.Customer, error) {
	r.logger.DebugContext(ctx, "Attempting to find customer by ID", slog.Int64("customerID", customerID))

	query := `
        SELECT id, first_name, last_name, email, phone, address1, address2, city, state, zip, notes, active, created_at, updated_at
        FROM customers
        WHERE id = $1`

	var cust customer.Customer
	err := r.db.QueryRow(ctx, query, customerID).Scan(
		&cust.ID,
		&cust.FirstName,
		&cust.LastName,
		&cust.Email,
		&cust.Phone,
		&cust.Address1,
		&cust.Address2,
		&cust.City,
		&cust.State,
		&cust.Zip,
		&cust.Notes,
		&cust.Active,
		&cust.CreatedAt,
		&cust.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Customer not found", slog.Int64("customerID", customerID))
			return nil, customer.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query/scan customer by ID", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get customer by ID: %w", apperrors.ErrDatabase, err)
	}

	return &cust, nil
}

func (r *CustomerRepository) CountActive(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM customers WHERE active = TRUE`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.logger.ErrorContext(ctx, "Failed to count active customers", slog.Any("error", err))
		return 0, fmt.Errorf("%w: failed to count active customers: %w", apperrors.ErrDatabase, err)
	}
	return count, nil
}
