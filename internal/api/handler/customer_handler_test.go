package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"repairshop/internal/domain/customer"
	"repairshop/internal/domain/forms"
	"repairshop/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupCustomerHandler() (*MockCustomerService, *MockFormResolver, *MockReporter, *CustomerHandler) {
	svc := new(MockCustomerService)
	resolver := new(MockFormResolver)
	reporter := new(MockReporter)
	h := NewCustomerHandler(svc, resolver, reporter, testLoginURL, logger)
	return svc, resolver, reporter, h
}

func validCustomerBody() string {
	return `{
		"id": 0,
		"firstName": "Dana",
		"lastName": "Reyes",
		"email": "dana@example.com",
		"phone": "555-0100",
		"address1": "12 Main St",
		"address2": "",
		"city": "Springfield",
		"state": "OR",
		"zip": "97477",
		"notes": ""
	}`
}

func TestGetCustomerForm_Success(t *testing.T) {
	_, resolver, reporter, h := setupCustomerHandler()

	resolver.On("ResolveCustomerForm", mock.Anything, "5", mock.Anything).
		Return(&forms.Resolution{Kind: forms.KindEditCustomerForm, Customer: &customer.Customer{ID: 5}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/customers/form?customerId=5", nil)
	rec := httptest.NewRecorder()
	h.GetCustomerForm(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "edit-customer-form", body["kind"])
	assert.Empty(t, reporter.Captured)
}

func TestGetCustomerForm_NotFoundIsInformational(t *testing.T) {
	_, resolver, reporter, h := setupCustomerHandler()

	resolver.On("ResolveCustomerForm", mock.Anything, "5", mock.Anything).
		Return(&forms.Resolution{Kind: forms.KindCustomerNotFound, CustomerID: 5}, nil)

	req := httptest.NewRequest(http.MethodGet, "/customers/form?customerId=5", nil)
	rec := httptest.NewRecorder()
	h.GetCustomerForm(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Customer ID #5 not found")
	assert.Empty(t, reporter.Captured)
}

func TestGetCustomerForm_ResolverErrorIsReported(t *testing.T) {
	_, resolver, reporter, h := setupCustomerHandler()

	resolverErr := errors.New("connection reset")
	resolver.On("ResolveCustomerForm", mock.Anything, "", mock.Anything).Return(nil, resolverErr)

	req := httptest.NewRequest(http.MethodGet, "/customers/form", nil)
	rec := httptest.NewRecorder()
	h.GetCustomerForm(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Len(t, reporter.Captured, 1)
	assert.ErrorIs(t, reporter.Captured[0], resolverErr)
}

func TestSaveCustomer_Success(t *testing.T) {
	svc, _, _, h := setupCustomerHandler()

	svc.On("SaveCustomer", mock.Anything, mock.Anything, mock.Anything).
		Return(&customer.SaveResult{ID: 42, Message: "Customer ID #42 created successfully"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/customers/form", strings.NewReader(validCustomerBody()))
	rec := httptest.NewRecorder()
	h.SaveCustomer(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Customer ID #42 created successfully")
	svc.AssertExpectations(t)
}

func TestSaveCustomer_MalformedJSON(t *testing.T) {
	svc, _, _, h := setupCustomerHandler()

	req := httptest.NewRequest(http.MethodPost, "/customers/form", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.SaveCustomer(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "SaveCustomer", mock.Anything, mock.Anything, mock.Anything)
}

func TestSaveCustomer_ValidationErrorsReturnFieldMap(t *testing.T) {
	svc, _, _, h := setupCustomerHandler()

	req := httptest.NewRequest(http.MethodPost, "/customers/form",
		strings.NewReader(`{"id": 0, "firstName": "", "email": "not-an-email"}`))
	rec := httptest.NewRecorder()
	h.SaveCustomer(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Errors, "firstName")
	assert.Contains(t, body.Errors, "email")
	assert.Equal(t, []string{"email must be a valid email address"}, body.Errors["email"])
	svc.AssertNotCalled(t, "SaveCustomer", mock.Anything, mock.Anything, mock.Anything)
}

func TestSaveCustomer_UnauthenticatedRedirectsToLogin(t *testing.T) {
	svc, _, _, h := setupCustomerHandler()

	svc.On("SaveCustomer", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrUnauthenticated)

	req := httptest.NewRequest(http.MethodPost, "/customers/form", strings.NewReader(validCustomerBody()))
	rec := httptest.NewRecorder()
	h.SaveCustomer(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, testLoginURL, rec.Header().Get("Location"))
}

func TestSaveCustomer_UpdateNotFound(t *testing.T) {
	svc, _, reporter, h := setupCustomerHandler()

	svc.On("SaveCustomer", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, customer.ErrNotFound)

	body := strings.Replace(validCustomerBody(), `"id": 0`, `"id": 99`, 1)
	req := httptest.NewRequest(http.MethodPost, "/customers/form", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.SaveCustomer(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, reporter.Captured, "domain outcomes are not reported")
}

func TestSaveCustomer_UnexpectedErrorIsReported(t *testing.T) {
	svc, _, reporter, h := setupCustomerHandler()

	svcErr := errors.New("connection reset")
	svc.On("SaveCustomer", mock.Anything, mock.Anything, mock.Anything).Return(nil, svcErr)

	req := httptest.NewRequest(http.MethodPost, "/customers/form", strings.NewReader(validCustomerBody()))
	rec := httptest.NewRecorder()
	h.SaveCustomer(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "An unexpected error occurred.")
	require.Len(t, reporter.Captured, 1)
	assert.ErrorIs(t, reporter.Captured[0], svcErr)
}
