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
	"repairshop/internal/infrastructure/errorreport"
	"repairshop/internal/pkg/apperrors"
)

type CustomerHandler struct {
	service  customer.CustomerService
	resolver forms.FormResolver
	reporter errorreport.Reporter
	loginURL string
	logger   *slog.Logger
}

func NewCustomerHandler(s customer.CustomerService, resolver forms.FormResolver, reporter errorreport.Reporter, loginURL string, l *slog.Logger) *CustomerHandler {
	if s == nil {
		panic("customer service cannot be nil")
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
	return &CustomerHandler{
		service:  s,
		resolver: resolver,
		reporter: reporter,
		loginURL: loginURL,
		logger:   l.With("component", "CustomerHandler"),
	}
}

// GetCustomerForm handles GET /customers/form
// @Summary Resolve the customer form
// @Description Decides between the new-customer and edit-customer form variants based on the customerId query parameter and the caller's role. Not-found is an informational result, not an error status.
// @Tags Customers
// @Produce json
// @Param customerId query int false "Customer ID to edit; omit for a new customer"
// @Success 200 {object} dto.FormResolutionResponse "Resolved form variant"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers/form [get]
func (h *CustomerHandler) GetCustomerForm(w http.ResponseWriter, r *http.Request) {
	ident := mw.IdentityFromContext(r.Context())

	res, err := h.resolver.ResolveCustomerForm(r.Context(), r.URL.Query().Get("customerId"), ident)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to resolve customer form", slog.Any("error", err))
		h.reporter.CaptureException(err)
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Customer form resolved", slog.String("kind", string(res.Kind)))
	respondJSON(w, http.StatusOK, dto.NewFormResolutionResponse(res))
}

// SaveCustomer handles POST /customers/form
// @Summary Save a customer
// @Description Inserts a new customer (id 0) or updates an existing one (id > 0). Unauthenticated callers are redirected to the login flow; invalid payloads get a field-to-messages error map.
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body dto.SaveCustomerRequest true "Customer payload"
// @Success 200 {object} customer.SaveResult "Save outcome message"
// @Failure 302 "Redirect to login for unauthenticated callers"
// @Failure 400 {object} dto.ValidationErrorResponse "Field validation errors"
// @Failure 404 {object} dto.ErrorResponse "Customer to update not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers/form [post]
func (h *CustomerHandler) SaveCustomer(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveCustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	if fieldErrs := req.Validate(); !fieldErrs.Empty() {
		h.logger.InfoContext(r.Context(), "Customer payload failed validation", slog.Int("fields", len(fieldErrs)))
		respondJSON(w, http.StatusBadRequest, dto.ValidationErrorResponse{Errors: fieldErrs})
		return
	}

	ident := mw.IdentityFromContext(r.Context())

	result, err := h.service.SaveCustomer(r.Context(), ident, req.ToCustomer())
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthenticated) {
			http.Redirect(w, r, h.loginURL, http.StatusFound)
			return
		}
		if errors.Is(err, customer.ErrNotFound) {
			h.logger.WarnContext(r.Context(), "Customer to update not found", slog.Int64("customerID", req.ID))
			respondError(w, err)
			return
		}
		h.logger.ErrorContext(r.Context(), "Service failed to save customer", slog.Any("error", err))
		h.reporter.CaptureException(err)
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Customer saved", slog.Int64("customerID", result.ID))
	respondJSON(w, http.StatusOK, result)
}
