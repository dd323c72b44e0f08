package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"repairshop/internal/api/handler/dto"
	mw "repairshop/internal/api/middleware"
	"repairshop/internal/domain/customer"
	"repairshop/internal/domain/forms"
	"repairshop/internal/domain/ticket"
	"repairshop/internal/infrastructure/errorreport"
	"repairshop/internal/pkg/apperrors"
)

type TicketHandler struct {
	service  ticket.TicketService
	resolver forms.FormResolver
	reporter errorreport.Reporter
	loginURL string
	logger   *slog.Logger
}

func NewTicketHandler(s ticket.TicketService, resolver forms.FormResolver, reporter errorreport.Reporter, loginURL string, l *slog.Logger) *TicketHandler {
	if s == nil {
		panic("ticket service cannot be nil")
	}
	if resolver == nil {
		panic("form resolver cannot be nil")
	}
	if reporter == nil {
		reporter = errorreport.NoopReporter{}
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &TicketHandler{
		service:  s,
		resolver: resolver,
		reporter: reporter,
		loginURL: loginURL,
		logger:   l.With("component", "TicketHandler"),
	}
}

// GetTicketForm handles GET /tickets/form
// @Summary Resolve the ticket form
// @Description Decides between the new-ticket (customerId given) and edit-ticket (ticketId given) form variants. Managers get the technician roster; techs get an editability flag instead. Not-found, inactive-customer and missing-identifier outcomes are informational results.
// @Tags Tickets
// @Produce json
// @Param customerId query int false "Customer ID for a new ticket"
// @Param ticketId query int false "Ticket ID to edit"
// @Success 200 {object} dto.FormResolutionResponse "Resolved form variant"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tickets/form [get]
func (h *TicketHandler) GetTicketForm(w http.ResponseWriter, r *http.Request) {
	ident := mw.IdentityFromContext(r.Context())
	query := r.URL.Query()

	res, err := h.resolver.ResolveTicketForm(r.Context(), query.Get("customerId"), query.Get("ticketId"), ident)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to resolve ticket form", slog.Any("error", err))
		h.reporter.CaptureException(err)
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Ticket form resolved", slog.String("kind", string(res.Kind)))
	respondJSON(w, http.StatusOK, dto.NewFormResolutionResponse(res))
}

// SaveTicket handles POST /tickets/form
// @Summary Save a ticket
// @Description Inserts a new ticket (id 0) or updates an existing one (id > 0). Inserts require the target customer to exist and be active. Unauthenticated callers are redirected to the login flow.
// @Tags Tickets
// @Accept json
// @Produce json
// @Param request body dto.SaveTicketRequest true "Ticket payload"
// @Success 200 {object} ticket.SaveResult "Save outcome message"
// @Failure 302 "Redirect to login for unauthenticated callers"
// @Failure 400 {object} dto.ValidationErrorResponse "Field validation errors"
// @Failure 404 {object} dto.ErrorResponse "Ticket or customer not found"
// @Failure 409 {object} dto.ErrorResponse "Customer is not active"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tickets/form [post]
func (h *TicketHandler) SaveTicket(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveTicketRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	if fieldErrs := req.Validate(); !fieldErrs.Empty() {
		h.logger.InfoContext(r.Context(), "Ticket payload failed validation", slog.Int("fields", len(fieldErrs)))
		respondJSON(w, http.StatusBadRequest, dto.ValidationErrorResponse{Errors: fieldErrs})
		return
	}

	ident := mw.IdentityFromContext(r.Context())

	result, err := h.service.SaveTicket(r.Context(), ident, req.ToTicket())
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthenticated) {
			http.Redirect(w, r, h.loginURL, http.StatusFound)
			return
		}
		if errors.Is(err, ticket.ErrNotFound) || errors.Is(err, customer.ErrNotFound) ||
			errors.Is(err, apperrors.ErrCustomerInactive) {
			h.logger.WarnContext(r.Context(), "Ticket save rejected", slog.Any("error", err))
			respondError(w, err)
			return
		}
		h.logger.ErrorContext(r.Context(), "Service failed to save ticket", slog.Any("error", err))
		h.reporter.CaptureException(err)
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Ticket saved", slog.Int64("ticketID", result.ID))
	respondJSON(w, http.StatusOK, result)
}
