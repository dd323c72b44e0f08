package customer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"repairshop/internal/domain/identity"
	"repairshop/internal/event"
	"repairshop/internal/pkg/apperrors"
)

// SaveResult is the outcome of a successful save, rendered verbatim to the
// user by the presentation layer.
type SaveResult struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type CustomerService interface {
	// SaveCustomer inserts (ID 0) or updates (ID > 0) a customer. An
	// unauthenticated caller gets apperrors.ErrUnauthenticated and no
	// write happens.
	SaveCustomer(ctx context.Context, ident identity.Identity, cust *Customer) (*SaveResult, error)

	GetCustomer(ctx context.Context, customerID int64) (*Customer, error)
}

var _ CustomerService = (*customerService)(nil)

type customerService struct {
	repo   CustomerRepository
	pub    event.EventPublisher
	logger *slog.Logger
}

func NewCustomerService(repo CustomerRepository, pub event.EventPublisher, logger *slog.Logger) CustomerService {
	if repo == nil {
		panic("customer repository cannot be nil")
	}
	if pub == nil {
		pub = event.NoopEventPublisher{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerService, using default stderr handler")
	}

	return &customerService{
		repo:   repo,
		pub:    pub,
		logger: logger.With(slog.String("component", "customerService")),
	}
}

func (s *customerService) SaveCustomer(ctx context.Context, ident identity.Identity, cust *Customer) (*SaveResult, error) {
	if cust == nil {
		return nil, fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}

	if !ident.Authenticated {
		s.logger.WarnContext(ctx, "Rejected save attempt from unauthenticated caller")
		return nil, apperrors.ErrUnauthenticated
	}

	if cust.IsNew() {
		return s.createCustomer(ctx, ident, cust)
	}
	return s.updateCustomer(ctx, ident, cust)
}

func (s *customerService) createCustomer(ctx context.Context, ident identity.Identity, cust *Customer) (*SaveResult, error) {
	s.logger.InfoContext(ctx, "Attempting to create new customer", slog.String("userID", ident.UserID))

	cust.Active = true
	if err := s.repo.Insert(ctx, cust); err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to insert new customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to insert new customer: %w", err)
	}

	s.logger.InfoContext(ctx, "Customer created", slog.Int64("customerID", cust.ID))
	s.publishSaved(ctx, cust.ID, event.ActionCreated)

	return &SaveResult{
		ID:      cust.ID,
		Message: fmt.Sprintf("Customer ID #%d created successfully", cust.ID),
	}, nil
}

func (s *customerService) updateCustomer(ctx context.Context, ident identity.Identity, cust *Customer) (*SaveResult, error) {
	s.logger.InfoContext(ctx, "Attempting to update customer",
		slog.Int64("customerID", cust.ID), slog.String("userID", ident.UserID))

	if err := s.repo.Update(ctx, cust); err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.WarnContext(ctx, "Customer not found for update", slog.Int64("customerID", cust.ID))
			return nil, ErrNotFound
		}
		s.logger.ErrorContext(ctx, "Repository failed to update customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to update customer %d: %w", cust.ID, err)
	}

	s.logger.InfoContext(ctx, "Customer updated", slog.Int64("customerID", cust.ID))
	s.publishSaved(ctx, cust.ID, event.ActionUpdated)

	return &SaveResult{
		ID:      cust.ID,
		Message: fmt.Sprintf("Customer ID #%d updated successfully", cust.ID),
	}, nil
}

func (s *customerService) publishSaved(ctx context.Context, customerID int64, action event.SaveAction) {
	evt := event.CustomerSavedEvent{
		CustomerID: customerID,
		Action:     action,
		Timestamp:  time.Now(),
	}
	if err := s.pub.PublishCustomerSaved(ctx, evt); err != nil {
		s.logger.ErrorContext(ctx, "Customer saved, but failed to publish event",
			slog.Int64("customerID", customerID), slog.Any("error", err))
	}
}

func (s *customerService) GetCustomer(ctx context.Context, customerID int64) (*Customer, error) {
	s.logger.DebugContext(ctx, "Calling repository FindByID", slog.Int64("customerID", customerID))

	cust, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.WarnContext(ctx, "Customer not found by repository", slog.Int64("customerID", customerID))
			return nil, ErrNotFound
		}
		s.logger.ErrorContext(ctx, "Repository error finding customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to get customer %d: %w", customerID, err)
	}

	return cust, nil
}
