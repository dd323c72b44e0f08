package customer

import "time"

// Customer is a repair-shop customer row. ID 0 marks a customer that has
// not been persisted yet. Address2 and Notes are nil when the stored value
// is NULL; they are never the empty string.
type Customer struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address1  string    `json:"address1"`
	Address2  *string   `json:"address2,omitempty"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Zip       string    `json:"zip"`
	Notes     *string   `json:"notes,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Customer) IsNew() bool {
	return c.ID == 0
}
