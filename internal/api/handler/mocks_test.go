package handler

import (
	"context"
	"log/slog"
	"os"

	"repairshop/internal/domain/customer"
	"repairshop/internal/domain/forms"
	"repairshop/internal/domain/identity"
	"repairshop/internal/domain/ticket"

	"github.com/stretchr/testify/mock"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, nil))

const testLoginURL = "/login"

type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) SaveCustomer(ctx context.Context, ident identity.Identity, cust *customer.Customer) (*customer.SaveResult, error) {
	args := m.Called(ctx, ident, cust)

	var r0 *customer.SaveResult
	if args.Get(0) != nil {
		r0 = args.Get(0).(*customer.SaveResult)
	}
	return r0, args.Error(1)
}

func (m *MockCustomerService) GetCustomer(ctx context.Context, customerID int64) (*customer.Customer, error) {
	args := m.Called(ctx, customerID)

	var r0 *customer.Customer
	if args.Get(0) != nil {
		r0 = args.Get(0).(*customer.Customer)
	}
	return r0, args.Error(1)
}

type MockTicketService struct {
	mock.Mock
}

func (m *MockTicketService) SaveTicket(ctx context.Context, ident identity.Identity, tkt *ticket.Ticket) (*ticket.SaveResult, error) {
	args := m.Called(ctx, ident, tkt)

	var r0 *ticket.SaveResult
	if args.Get(0) != nil {
		r0 = args.Get(0).(*ticket.SaveResult)
	}
	return r0, args.Error(1)
}

func (m *MockTicketService) GetTicket(ctx context.Context, ticketID int64) (*ticket.Ticket, error) {
	args := m.Called(ctx, ticketID)

	var r0 *ticket.Ticket
	if args.Get(0) != nil {
		r0 = args.Get(0).(*ticket.Ticket)
	}
	return r0, args.Error(1)
}

type MockFormResolver struct {
	mock.Mock
}

func (m *MockFormResolver) ResolveCustomerForm(ctx context.Context, rawCustomerID string, ident identity.Identity) (*forms.Resolution, error) {
	args := m.Called(ctx, rawCustomerID, ident)

	var r0 *forms.Resolution
	if args.Get(0) != nil {
		r0 = args.Get(0).(*forms.Resolution)
	}
	return r0, args.Error(1)
}

func (m *MockFormResolver) ResolveTicketForm(ctx context.Context, rawCustomerID, rawTicketID string, ident identity.Identity) (*forms.Resolution, error) {
	args := m.Called(ctx, rawCustomerID, rawTicketID, ident)

	var r0 *forms.Resolution
	if args.Get(0) != nil {
		r0 = args.Get(0).(*forms.Resolution)
	}
	return r0, args.Error(1)
}

// MockReporter records captured errors so tests can assert on reporting
// behaviour without a Sentry backend.
type MockReporter struct {
	Captured []error
}

func (m *MockReporter) CaptureException(err error) {
	m.Captured = append(m.Captured, err)
}
