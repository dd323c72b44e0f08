package ticket

import (
	"strings"
	"time"
)

// Ticket is a repair ticket. CustomerID must reference an existing
// customer; Tech is the assigned technician's email (or "unassigned").
type Ticket struct {
	ID          int64     `json:"id"`
	CustomerID  int64     `json:"customerId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	Tech        string    `json:"tech"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (t *Ticket) IsNew() bool {
	return t.ID == 0
}

// EditableBy reports whether the given technician email may edit this
// ticket. The comparison is case-insensitive.
func (t *Ticket) EditableBy(email string) bool {
	return email != "" && strings.EqualFold(email, t.Tech)
}
