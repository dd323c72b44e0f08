package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"repairshop/internal/domain/ticket"
	"repairshop/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

type TicketRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ ticket.TicketRepository = (*TicketRepository)(nil)

func NewTicketRepository(db DBPool, logger *slog.Logger) *TicketRepository {
	if db == nil {
		panic("DBPool cannot be nil for TicketRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewTicketRepository, using default stderr handler")
	}
	return &TicketRepository{
		db:     db,
		logger: logger.With("component", "TicketRepository"),
	}
}

func (r *TicketRepository) Insert(ctx context.Context, tkt *ticket.Ticket) error {
	if tkt == nil {
		return fmt.Errorf("%w: ticket cannot be nil", apperrors.ErrInvalidArgument)
	}

	r.logger.InfoContext(ctx, "Attempting to insert new ticket", slog.Int64("customerID", tkt.CustomerID))

	query := `
        INSERT INTO tickets (customer_id, title, description, completed, tech, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
        RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		tkt.CustomerID,
		tkt.Title,
		tkt.Description,
		tkt.Completed,
		tkt.Tech,
	).Scan(
		&tkt.ID,
		&tkt.CreatedAt,
		&tkt.UpdatedAt,
	)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to insert ticket", slog.Any("error", err))
		return translateDBError(err, r.logger)
	}

	r.logger.InfoContext(ctx, "Ticket inserted successfully", slog.Int64("ticketID", tkt.ID))
	return nil
}

func (r *TicketRepository) Update(ctx context.Context, tkt *ticket.Ticket) error {
	if tkt == nil {
		return fmt.Errorf("%w: ticket cannot be nil", apperrors.ErrInvalidArgument)
	}

	r.logger.InfoContext(ctx, "Attempting to update ticket", slog.Int64("ticketID", tkt.ID))

	query := `
        UPDATE tickets
        SET customer_id = $1,
            title = $2,
            description = $3,
            completed = $4,
            tech = $5,
            updated_at = NOW()
        WHERE id = $6`

	cmdTag, err := r.db.Exec(ctx, query,
		tkt.CustomerID,
		tkt.Title,
		tkt.Description,
		tkt.Completed,
		tkt.Tech,
		tkt.ID,
	)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to update ticket", slog.Any("error", err))
		return translateDBError(err, r.logger)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Update affected zero rows, ticket likely not found")
		return ticket.ErrNotFound
	}

	r.logger.InfoContext(ctx, "Ticket updated successfully")
	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, ticketID int64) (*ticket.Ticket, error) {
	r.logger.DebugContext(ctx, "Attempting to find ticket by ID", slog.Int64("ticketID", ticketID))

	query := `
        SELECT id, customer_id, title, description, completed, tech, created_at, updated_at
        FROM tickets
        WHERE id = $1`

	var tkt ticket.Ticket
	err := r.db.QueryRow(ctx, query, ticketID).Scan(
		&tkt.ID,
		&tkt.CustomerID,
		&tkt.Title,
		&tkt.Description,
		&tkt.Completed,
		&tkt.Tech,
		&tkt.CreatedAt,
		&tkt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Ticket not found", slog.Int64("ticketID", ticketID))
			return nil, ticket.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query/scan ticket by ID", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get ticket by ID: %w", apperrors.ErrDatabase, err)
	}

	return &tkt, nil
}

func (r *TicketRepository) CountOpen(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM tickets WHERE completed = FALSE`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.logger.ErrorContext(ctx, "Failed to count open tickets", slog.Any("error", err))
		return 0, fmt.Errorf("%w: failed to count open tickets: %w", apperrors.ErrDatabase, err)
	}
	return count, nil
}
