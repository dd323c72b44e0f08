package forms

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"repairshop/internal/domain/customer"
	"repairshop/internal/domain/identity"
	"repairshop/internal/domain/ticket"
)

// FormKind tags a Resolution. Every branch of the form-selection decision
// table maps to exactly one kind; the presentation layer switches on it.
type FormKind string

const (
	KindNewCustomerForm    FormKind = "new-customer-form"
	KindEditCustomerForm   FormKind = "edit-customer-form"
	KindNewTicketForm      FormKind = "new-ticket-form"
	KindEditTicketForm     FormKind = "edit-ticket-form"
	KindCustomerNotFound   FormKind = "customer-not-found"
	KindTicketNotFound     FormKind = "ticket-not-found"
	KindCustomerInactive   FormKind = "customer-inactive"
	KindMissingIdentifiers FormKind = "missing-identifiers"
)

// TechOption is a selectable technician in the ticket form's tech picker.
type TechOption struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// Resolution is the outcome of form selection. Informational kinds
// (not-found, inactive, missing-identifiers) are first-class results, not
// errors; only infrastructure failures surface as errors.
type Resolution struct {
	Kind       FormKind           `json:"kind"`
	Customer   *customer.Customer `json:"customer,omitempty"`
	Ticket     *ticket.Ticket     `json:"ticket,omitempty"`
	Techs      []TechOption       `json:"techs,omitempty"`
	IsManager  bool               `json:"isManager"`
	IsEditable bool               `json:"isEditable"`
	CustomerID int64              `json:"customerId,omitempty"`
	TicketID   int64              `json:"ticketId,omitempty"`
}

// TechAccount is one usable entry from the identity provider's user
// directory. Entries without an email address never reach this type.
type TechAccount struct {
	ID    string
	Email string
}

type TechDirectory interface {
	ListTechs(ctx context.Context) ([]TechAccount, error)
}

// FormResolver is the form-selection contract the HTTP layer depends on.
type FormResolver interface {
	ResolveCustomerForm(ctx context.Context, rawCustomerID string, ident identity.Identity) (*Resolution, error)
	ResolveTicketForm(ctx context.Context, rawCustomerID, rawTicketID string, ident identity.Identity) (*Resolution, error)
}

var _ FormResolver = (*Resolver)(nil)

type Resolver struct {
	customers customer.CustomerRepository
	tickets   ticket.TicketRepository
	directory TechDirectory
	logger    *slog.Logger
}

func NewResolver(customers customer.CustomerRepository, tickets ticket.TicketRepository, directory TechDirectory, logger *slog.Logger) *Resolver {
	if customers == nil {
		panic("customer repository cannot be nil")
	}
	if tickets == nil {
		panic("ticket repository cannot be nil")
	}
	if directory == nil {
		panic("tech directory cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}
	return &Resolver{
		customers: customers,
		tickets:   tickets,
		directory: directory,
		logger:    logger.With(slog.String("component", "formResolver")),
	}
}

// parseID turns an untrusted query parameter into an id. Missing or
// non-numeric values count as absent.
func parseID(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// ResolveCustomerForm decides between the new-customer and edit-customer
// form variants.
func (r *Resolver) ResolveCustomerForm(ctx context.Context, rawCustomerID string, ident identity.Identity) (*Resolution, error) {
	customerID, present := parseID(rawCustomerID)
	if !present {
		return &Resolution{Kind: KindNewCustomerForm, IsManager: ident.IsManager()}, nil
	}

	cust, err := r.customers.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			r.logger.InfoContext(ctx, "Customer form requested for unknown customer", slog.Int64("customerID", customerID))
			return &Resolution{Kind: KindCustomerNotFound, CustomerID: customerID}, nil
		}
		return nil, fmt.Errorf("failed to load customer %d for form: %w", customerID, err)
	}

	return &Resolution{
		Kind:      KindEditCustomerForm,
		Customer:  cust,
		IsManager: ident.IsManager(),
	}, nil
}

// ResolveTicketForm decides between the new-ticket and edit-ticket form
// variants. A customerId means new-ticket intent and wins over ticketId.
func (r *Resolver) ResolveTicketForm(ctx context.Context, rawCustomerID, rawTicketID string, ident identity.Identity) (*Resolution, error) {
	customerID, haveCustomer := parseID(rawCustomerID)
	ticketID, haveTicket := parseID(rawTicketID)

	if !haveCustomer && !haveTicket {
		return &Resolution{Kind: KindMissingIdentifiers}, nil
	}

	if haveCustomer {
		return r.resolveNewTicketForm(ctx, customerID, ident)
	}
	return r.resolveEditTicketForm(ctx, ticketID, ident)
}

func (r *Resolver) resolveNewTicketForm(ctx context.Context, customerID int64, ident identity.Identity) (*Resolution, error) {
	cust, err := r.customers.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			return &Resolution{Kind: KindCustomerNotFound, CustomerID: customerID}, nil
		}
		return nil, fmt.Errorf("failed to load customer %d for new ticket form: %w", customerID, err)
	}

	if !cust.Active {
		r.logger.InfoContext(ctx, "New ticket form requested for inactive customer", slog.Int64("customerID", customerID))
		return &Resolution{Kind: KindCustomerInactive, CustomerID: customerID}, nil
	}

	res := &Resolution{
		Kind:      KindNewTicketForm,
		Customer:  cust,
		IsManager: ident.IsManager(),
	}

	// Only managers get the tech picker; a tech cannot reassign.
	if ident.IsManager() {
		accounts, err := r.directory.ListTechs(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch technician roster: %w", err)
		}
		techs := make([]TechOption, 0, len(accounts))
		for _, acc := range accounts {
			techs = append(techs, TechOption{ID: acc.Email, Description: acc.Email})
		}
		res.Techs = techs
	}

	return res, nil
}

func (r *Resolver) resolveEditTicketForm(ctx context.Context, ticketID int64, ident identity.Identity) (*Resolution, error) {
	tkt, err := r.tickets.FindByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, ticket.ErrNotFound) {
			return &Resolution{Kind: KindTicketNotFound, TicketID: ticketID}, nil
		}
		return nil, fmt.Errorf("failed to load ticket %d for form: %w", ticketID, err)
	}

	// The FK invariant guarantees the customer row; a miss here is an
	// infrastructure problem, not a user-facing variant.
	cust, err := r.customers.FindByID(ctx, tkt.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer %d for ticket %d: %w", tkt.CustomerID, ticketID, err)
	}

	if ident.IsManager() {
		accounts, err := r.directory.ListTechs(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch technician roster: %w", err)
		}
		// Unlike the new-ticket path, the edit path lower-cases roster
		// emails so they line up with the stored tech value as option
		// keys.
		techs := make([]TechOption, 0, len(accounts))
		for _, acc := range accounts {
			email := strings.ToLower(acc.Email)
			techs = append(techs, TechOption{ID: email, Description: email})
		}
		return &Resolution{
			Kind:       KindEditTicketForm,
			Customer:   cust,
			Ticket:     tkt,
			Techs:      techs,
			IsManager:  true,
			IsEditable: true,
		}, nil
	}

	return &Resolution{
		Kind:       KindEditTicketForm,
		Customer:   cust,
		Ticket:     tkt,
		IsEditable: tkt.EditableBy(ident.Email),
	}, nil
}
