package dto

// FieldErrors maps a form field to the ordered list of human-readable
// validation messages for it. It is returned to the caller as-is; it is
// never raised as an error.
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}

func (fe FieldErrors) Empty() bool {
	return len(fe) == 0
}

type ValidationErrorResponse struct {
	Errors FieldErrors `json:"errors"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type TokenRequest struct {
	UserID  string `json:"userId"`
	Email   string `json:"email"`
	Role    string `json:"role,omitempty"`
	OrgRole string `json:"orgRole,omitempty"`
}
