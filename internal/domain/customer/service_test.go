package customer

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"repairshop/internal/domain/identity"
	"repairshop/internal/event"
	"repairshop/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, nil))

type failingPublisher struct{}

func (failingPublisher) PublishCustomerSaved(context.Context, event.CustomerSavedEvent) error {
	return errors.New("broker unavailable")
}

func (failingPublisher) PublishTicketSaved(context.Context, event.TicketSavedEvent) error {
	return errors.New("broker unavailable")
}

func manager() identity.Identity {
	return identity.Identity{Authenticated: true, UserID: "user_mgr", Email: "boss@shop.test", Role: identity.RoleManager}
}

func newCustomerFixture() *Customer {
	return &Customer{
		FirstName: "Dana",
		LastName:  "Reyes",
		Email:     "dana@example.com",
		Phone:     "555-0100",
		Address1:  "12 Main St",
		City:      "Springfield",
		State:     "OR",
		Zip:       "97477",
	}
}

func TestSaveCustomer_Unauthenticated(t *testing.T) {
	repo := new(MockCustomerRepository)
	svc := NewCustomerService(repo, event.NoopEventPublisher{}, logger)

	result, err := svc.SaveCustomer(context.Background(), identity.Anonymous(), newCustomerFixture())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSaveCustomer_NilCustomer(t *testing.T) {
	repo := new(MockCustomerRepository)
	svc := NewCustomerService(repo, event.NoopEventPublisher{}, logger)

	result, err := svc.SaveCustomer(context.Background(), manager(), nil)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestSaveCustomer_CreateSuccess(t *testing.T) {
	repo := new(MockCustomerRepository)
	svc := NewCustomerService(repo, event.NoopEventPublisher{}, logger)

	cust := newCustomerFixture()
	repo.On("Insert", mock.Anything, cust).Run(func(args mock.Arguments) {
		args.Get(1).(*Customer).ID = 42
	}).Return(nil)

	result, err := svc.SaveCustomer(context.Background(), manager(), cust)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), result.ID)
	assert.Equal(t, "Customer ID #42 created successfully", result.Message)
	assert.True(t, cust.Active, "new customers start active")
	repo.AssertExpectations(t)
}

func TestSaveCustomer_CreateRepositoryError(t *testing.T) {
	repo := new(MockCustomerRepository)
	svc := NewCustomerService(repo, event.NoopEventPublisher{}, logger)

	repoErr := errors.New("connection reset")
	repo.On("Insert", mock.Anything, mock.Anything).Return(repoErr)

	result, err := svc.SaveCustomer(context.Background(), manager(), newCustomerFixture())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, repoErr)
	repo.AssertExpectations(t)
}

func TestSaveCustomer_UpdateSuccess(t *testing.T) {
	repo := new(MockCustomerRepository)
	svc := NewCustomerService(repo, event.NoopEventPublisher{}, logger)

	cust := newCustomerFixture()
	cust.ID = 7
	repo.On("Update", mock.Anything, cust).Return(nil)

	result, err := svc.SaveCustomer(context.Background(), manager(), cust)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), result.ID)
	assert.Equal(t, "Customer ID #7 updated successfully", result.Message)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestSaveCustomer_UpdateNotFound(t *testing.T) {
	repo := new(MockCustomerRepository)
	svc := NewCustomerService(repo, event.NoopEventPublisher{}, logger)

	cust := newCustomerFixture()
	cust.ID = 99
	repo.On("Update", mock.Anything, cust).Return(ErrNotFound)

	result, err := svc.SaveCustomer(context.Background(), manager(), cust)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrNotFound)
	repo.AssertExpectations(t)
}

func TestSaveCustomer_PublishFailureIsNotFatal(t *testing.T) {
	repo := new(MockCustomerRepository)
	svc := NewCustomerService(repo, failingPublisher{}, logger)

	cust := newCustomerFixture()
	repo.On("Insert", mock.Anything, cust).Run(func(args mock.Arguments) {
		args.Get(1).(*Customer).ID = 3
	}).Return(nil)

	result, err := svc.SaveCustomer(context.Background(), manager(), cust)

	assert.NoError(t, err)
	assert.Equal(t, "Customer ID #3 created successfully", result.Message)
	repo.AssertExpectations(t)
}

func TestGetCustomer_Success(t *testing.T) {
	repo := new(MockCustomerRepository)
	svc := NewCustomerService(repo, event.NoopEventPublisher{}, logger)

	expected := newCustomerFixture()
	expected.ID = 5
	repo.On("FindByID", mock.Anything, int64(5)).Return(expected, nil)

	cust, err := svc.GetCustomer(context.Background(), 5)

	assert.NoError(t, err)
	assert.Equal(t, expected, cust)
	repo.AssertExpectations(t)
}

func TestGetCustomer_NotFound(t *testing.T) {
	repo := new(MockCustomerRepository)
	svc := NewCustomerService(repo, event.NoopEventPublisher{}, logger)

	repo.On("FindByID", mock.Anything, int64(404)).Return(nil, ErrNotFound)

	cust, err := svc.GetCustomer(context.Background(), 404)

	assert.Nil(t, cust)
	assert.ErrorIs(t, err, ErrNotFound)
	repo.AssertExpectations(t)
}
