package ticket

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("ticket not found")

type TicketRepository interface {
	// Insert persists a new ticket and populates its ID.
	Insert(ctx context.Context, ticket *Ticket) error

	// Update rewrites the row matched by ID.
	Update(ctx context.Context, ticket *Ticket) error

	FindByID(ctx context.Context, ticketID int64) (*Ticket, error)

	CountOpen(ctx context.Context) (int64, error)
}
