package dto

import (
	"fmt"

	"repairshop/internal/domain/customer"
	"repairshop/internal/domain/forms"
	"repairshop/internal/domain/ticket"
)

// FormResolutionResponse is the JSON rendering of a form resolution. The
// informational kinds carry a message and nothing else; the form kinds
// carry the data the form needs. Both are 200-class responses.
type FormResolutionResponse struct {
	Kind       forms.FormKind     `json:"kind"`
	Message    string             `json:"message,omitempty"`
	Customer   *customer.Customer `json:"customer,omitempty"`
	Ticket     *ticket.Ticket     `json:"ticket,omitempty"`
	Techs      []forms.TechOption `json:"techs,omitempty"`
	IsManager  bool               `json:"isManager"`
	IsEditable bool               `json:"isEditable"`
}

func NewFormResolutionResponse(res *forms.Resolution) FormResolutionResponse {
	if res == nil {
		return FormResolutionResponse{}
	}
	return FormResolutionResponse{
		Kind:       res.Kind,
		Message:    resolutionMessage(res),
		Customer:   res.Customer,
		Ticket:     res.Ticket,
		Techs:      res.Techs,
		IsManager:  res.IsManager,
		IsEditable: res.IsEditable,
	}
}

func resolutionMessage(res *forms.Resolution) string {
	switch res.Kind {
	case forms.KindCustomerNotFound:
		return fmt.Sprintf("Customer ID #%d not found", res.CustomerID)
	case forms.KindCustomerInactive:
		return fmt.Sprintf("Customer ID #%d is not active.", res.CustomerID)
	case forms.KindTicketNotFound:
		return fmt.Sprintf("Ticket ID #%d not found", res.TicketID)
	case forms.KindMissingIdentifiers:
		return "Ticket ID or Customer ID required to load ticket form"
	default:
		return ""
	}
}
