package dto

import (
	"fmt"
	"regexp"
	"strings"

	"repairshop/internal/domain/customer"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^[0-9()+\-. ]{7,20}$`)
	zipPattern   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
)

type SaveCustomerRequest struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Notes     string `json:"notes"`
}

// Validate runs the declared constraints and returns per-field messages.
// The same rules apply to creation (ID 0) and edit (ID > 0).
func (r *SaveCustomerRequest) Validate() FieldErrors {
	errs := FieldErrors{}

	if r.ID < 0 {
		errs.Add("id", "id must be 0 for a new customer or a positive integer")
	}
	requireNonBlank(errs, "firstName", r.FirstName, 50)
	requireNonBlank(errs, "lastName", r.LastName, 50)

	if strings.TrimSpace(r.Email) == "" {
		errs.Add("email", "email is required")
	} else if !emailPattern.MatchString(r.Email) {
		errs.Add("email", "email must be a valid email address")
	}

	if strings.TrimSpace(r.Phone) == "" {
		errs.Add("phone", "phone is required")
	} else if !phonePattern.MatchString(r.Phone) {
		errs.Add("phone", "phone must be a valid phone number")
	}

	requireNonBlank(errs, "address1", r.Address1, 100)
	requireNonBlank(errs, "city", r.City, 50)

	if len(strings.TrimSpace(r.State)) != 2 {
		errs.Add("state", "state must be a 2-letter code")
	}

	if !zipPattern.MatchString(strings.TrimSpace(r.Zip)) {
		errs.Add("zip", "zip must be a valid ZIP code (12345 or 12345-6789)")
	}

	if len(r.Address2) > 100 {
		errs.Add("address2", "address2 must be at most 100 characters")
	}
	if len(r.Notes) > 2000 {
		errs.Add("notes", "notes must be at most 2000 characters")
	}

	return errs
}

func requireNonBlank(errs FieldErrors, field, value string, maxLen int) {
	if strings.TrimSpace(value) == "" {
		errs.Add(field, field+" is required")
		return
	}
	if len(value) > maxLen {
		errs.Add(field, fmt.Sprintf("%s must be at most %d characters", field, maxLen))
	}
}

// ToCustomer converts a validated request into the domain entity. Blank
// or whitespace-only optional fields become nil here, once, so insert
// and update paths see the same normalized shape.
func (r *SaveCustomerRequest) ToCustomer() *customer.Customer {
	return &customer.Customer{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Address1:  r.Address1,
		Address2:  normalizeOptional(r.Address2),
		City:      r.City,
		State:     r.State,
		Zip:       r.Zip,
		Notes:     normalizeOptional(r.Notes),
	}
}

// normalizeOptional maps blank/whitespace-only text to absent (nil),
// never to the empty string.
func normalizeOptional(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}
