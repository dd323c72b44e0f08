package dto

import (
	"testing"

	"repairshop/internal/domain/forms"

	"github.com/stretchr/testify/assert"
)

func validSaveTicketRequest() SaveTicketRequest {
	return SaveTicketRequest{
		CustomerID:  10,
		Title:       "Broken screen",
		Description: "Cracked on the left corner",
		Tech:        "unassigned",
	}
}

func TestSaveTicketRequestValidate_Valid(t *testing.T) {
	req := validSaveTicketRequest()
	assert.True(t, req.Validate().Empty())

	req.Tech = "alice@shop.test"
	assert.True(t, req.Validate().Empty())
}

func TestSaveTicketRequestValidate_CustomerIDRequired(t *testing.T) {
	req := validSaveTicketRequest()
	req.CustomerID = 0
	assert.Contains(t, req.Validate(), "customerId")
}

func TestSaveTicketRequestValidate_TechMustBeEmailOrUnassigned(t *testing.T) {
	req := validSaveTicketRequest()

	req.Tech = ""
	assert.Contains(t, req.Validate(), "tech")

	req.Tech = "not-an-email"
	assert.Contains(t, req.Validate(), "tech")
}

func TestFormResolutionResponseMessages(t *testing.T) {
	tests := []struct {
		name string
		res  forms.Resolution
		want string
	}{
		{"customer not found", forms.Resolution{Kind: forms.KindCustomerNotFound, CustomerID: 5}, "Customer ID #5 not found"},
		{"customer inactive", forms.Resolution{Kind: forms.KindCustomerInactive, CustomerID: 5}, "Customer ID #5 is not active."},
		{"ticket not found", forms.Resolution{Kind: forms.KindTicketNotFound, TicketID: 77}, "Ticket ID #77 not found"},
		{"missing identifiers", forms.Resolution{Kind: forms.KindMissingIdentifiers}, "Ticket ID or Customer ID required to load ticket form"},
		{"form kinds carry no message", forms.Resolution{Kind: forms.KindNewTicketForm}, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := tc.res
			got := NewFormResolutionResponse(&res)
			assert.Equal(t, tc.want, got.Message)
			assert.Equal(t, tc.res.Kind, got.Kind)
		})
	}
}
