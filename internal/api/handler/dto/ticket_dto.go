package dto

import (
	"strings"

	"repairshop/internal/domain/ticket"
)

type SaveTicketRequest struct {
	ID          int64  `json:"id"`
	CustomerID  int64  `json:"customerId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Tech        string `json:"tech"`
}

func (r *SaveTicketRequest) Validate() FieldErrors {
	errs := FieldErrors{}

	if r.ID < 0 {
		errs.Add("id", "id must be 0 for a new ticket or a positive integer")
	}
	if r.CustomerID <= 0 {
		errs.Add("customerId", "customerId must be a positive integer")
	}

	requireNonBlank(errs, "title", r.Title, 100)
	requireNonBlank(errs, "description", r.Description, 2000)

	if strings.TrimSpace(r.Tech) == "" {
		errs.Add("tech", "tech is required")
	} else if r.Tech != "unassigned" && !emailPattern.MatchString(r.Tech) {
		errs.Add("tech", "tech must be an email address or \"unassigned\"")
	}

	return errs
}

func (r *SaveTicketRequest) ToTicket() *ticket.Ticket {
	return &ticket.Ticket{
		ID:          r.ID,
		CustomerID:  r.CustomerID,
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
		Tech:        r.Tech,
	}
}
