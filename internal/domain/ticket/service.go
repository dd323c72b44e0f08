package ticket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"repairshop/internal/domain/customer"
	"repairshop/internal/domain/identity"
	"repairshop/internal/event"
	"repairshop/internal/pkg/apperrors"
)

type SaveResult struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type TicketService interface {
	// SaveTicket inserts (ID 0) or updates (ID > 0) a ticket. Inserts
	// additionally require the target customer to exist and be active.
	SaveTicket(ctx context.Context, ident identity.Identity, tkt *Ticket) (*SaveResult, error)

	GetTicket(ctx context.Context, ticketID int64) (*Ticket, error)
}

var _ TicketService = (*ticketService)(nil)

type ticketService struct {
	repo      TicketRepository
	customers customer.CustomerRepository
	pub       event.EventPublisher
	logger    *slog.Logger
}

func NewTicketService(repo TicketRepository, customers customer.CustomerRepository, pub event.EventPublisher, logger *slog.Logger) TicketService {
	if repo == nil {
		panic("ticket repository cannot be nil")
	}
	if customers == nil {
		panic("customer repository cannot be nil")
	}
	if pub == nil {
		pub = event.NoopEventPublisher{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewTicketService, using default stderr handler")
	}

	return &ticketService{
		repo:      repo,
		customers: customers,
		pub:       pub,
		logger:    logger.With(slog.String("component", "ticketService")),
	}
}

func (s *ticketService) SaveTicket(ctx context.Context, ident identity.Identity, tkt *Ticket) (*SaveResult, error) {
	if tkt == nil {
		return nil, fmt.Errorf("%w: ticket cannot be nil", apperrors.ErrInvalidArgument)
	}

	if !ident.Authenticated {
		s.logger.WarnContext(ctx, "Rejected save attempt from unauthenticated caller")
		return nil, apperrors.ErrUnauthenticated
	}

	if tkt.IsNew() {
		return s.createTicket(ctx, ident, tkt)
	}
	return s.updateTicket(ctx, ident, tkt)
}

func (s *ticketService) createTicket(ctx context.Context, ident identity.Identity, tkt *Ticket) (*SaveResult, error) {
	s.logger.InfoContext(ctx, "Attempting to create new ticket",
		slog.Int64("customerID", tkt.CustomerID), slog.String("userID", ident.UserID))

	cust, err := s.customers.FindByID(ctx, tkt.CustomerID)
	if err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			s.logger.WarnContext(ctx, "Customer not found for new ticket", slog.Int64("customerID", tkt.CustomerID))
			return nil, customer.ErrNotFound
		}
		s.logger.ErrorContext(ctx, "Repository error finding customer for new ticket", slog.Any("error", err))
		return nil, fmt.Errorf("cannot verify customer %d for new ticket: %w", tkt.CustomerID, err)
	}
	if !cust.Active {
		s.logger.WarnContext(ctx, "Business rule failed: cannot open ticket for inactive customer",
			slog.Int64("customerID", tkt.CustomerID))
		return nil, apperrors.ErrCustomerInactive
	}

	if err := s.repo.Insert(ctx, tkt); err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to insert new ticket", slog.Any("error", err))
		return nil, fmt.Errorf("failed to insert new ticket: %w", err)
	}

	s.logger.InfoContext(ctx, "Ticket created", slog.Int64("ticketID", tkt.ID))
	s.publishSaved(ctx, tkt, event.ActionCreated)

	return &SaveResult{
		ID:      tkt.ID,
		Message: fmt.Sprintf("Ticket ID #%d created successfully", tkt.ID),
	}, nil
}

func (s *ticketService) updateTicket(ctx context.Context, ident identity.Identity, tkt *Ticket) (*SaveResult, error) {
	s.logger.InfoContext(ctx, "Attempting to update ticket",
		slog.Int64("ticketID", tkt.ID), slog.String("userID", ident.UserID))

	if err := s.repo.Update(ctx, tkt); err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.WarnContext(ctx, "Ticket not found for update", slog.Int64("ticketID", tkt.ID))
			return nil, ErrNotFound
		}
		s.logger.ErrorContext(ctx, "Repository failed to update ticket", slog.Any("error", err))
		return nil, fmt.Errorf("failed to update ticket %d: %w", tkt.ID, err)
	}

	s.logger.InfoContext(ctx, "Ticket updated", slog.Int64("ticketID", tkt.ID))
	s.publishSaved(ctx, tkt, event.ActionUpdated)

	return &SaveResult{
		ID:      tkt.ID,
		Message: fmt.Sprintf("Ticket ID #%d updated successfully", tkt.ID),
	}, nil
}

func (s *ticketService) publishSaved(ctx context.Context, tkt *Ticket, action event.SaveAction) {
	evt := event.TicketSavedEvent{
		TicketID:   tkt.ID,
		CustomerID: tkt.CustomerID,
		Tech:       tkt.Tech,
		Action:     action,
		Timestamp:  time.Now(),
	}
	if err := s.pub.PublishTicketSaved(ctx, evt); err != nil {
		s.logger.ErrorContext(ctx, "Ticket saved, but failed to publish event",
			slog.Int64("ticketID", tkt.ID), slog.Any("error", err))
	}
}

func (s *ticketService) GetTicket(ctx context.Context, ticketID int64) (*Ticket, error) {
	s.logger.DebugContext(ctx, "Calling repository FindByID", slog.Int64("ticketID", ticketID))

	tkt, err := s.repo.FindByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.WarnContext(ctx, "Ticket not found by repository", slog.Int64("ticketID", ticketID))
			return nil, ErrNotFound
		}
		s.logger.ErrorContext(ctx, "Repository error finding ticket", slog.Any("error", err))
		return nil, fmt.Errorf("failed to get ticket %d: %w", ticketID, err)
	}

	return tkt, nil
}
