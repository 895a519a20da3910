package commands_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"aquaserve/internal/core/application/usecases/commands"
	"aquaserve/internal/core/domain/model/customer"
	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/core/domain/model/order"
	"aquaserve/internal/core/ports"
	"aquaserve/internal/pkg/errs"
)

type MockKycCustomerRepository struct{ mock.Mock }

func (m *MockKycCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockKycCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockKycCustomerRepository) Get(
	ctx context.Context,
	orgID kernel.OrgID,
	userID kernel.UUID,
) (*customer.Customer, error) {
	args := m.Called(ctx, orgID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

type MockKycOrderRepository struct{ mock.Mock }

func (m *MockKycOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockKycOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockKycOrderRepository) Get(ctx context.Context, orgID kernel.OrgID, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockKycOrderRepository) GetAllByCustomer(
	ctx context.Context,
	orgID kernel.OrgID,
	customerID kernel.UUID,
) ([]*order.Order, error) {
	args := m.Called(ctx, orgID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockKycOrderRepository) SyncKycVerifiedByCustomer(
	ctx context.Context,
	orgID kernel.OrgID,
	customerID kernel.UUID,
	verified bool,
) error {
	args := m.Called(ctx, orgID, customerID, verified)
	return args.Error(0)
}

type MockKycUoW struct{ mock.Mock }

func (m *MockKycUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockKycUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockKycUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockKycUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockKycUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockKycUoWFactory struct{ mock.Mock }

func (m *MockKycUoWFactory) Create() commands.KycUoW {
	args := m.Called()
	return args.Get(0).(commands.KycUoW)
}

type MockFileStore struct{ mock.Mock }

func (m *MockFileStore) Store(ctx context.Context, name string, content []byte) (string, error) {
	args := m.Called(ctx, name, content)
	return args.String(0), args.Error(1)
}

type MockNotificationDispatcher struct{ mock.Mock }

func (m *MockNotificationDispatcher) Dispatch(recipient string, subject string, message string) {
	m.Called(recipient, subject, message)
}

func makeTestCustomer(t *testing.T, orgID kernel.OrgID, customerID kernel.UUID) *customer.Customer {
	t.Helper()

	c, err := customer.NewCustomer(customerID, orgID, "Priya Sharma", "priya@example.com", "")
	require.NoError(t, err)
	return c
}

func TestReviewCustomerKycCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewOrgID()
	customerID := kernel.NewUUID()

	cmd, err := commands.NewReviewCustomerKycCommand(orgID, customerID, kernel.KycApproved, nil)
	require.NoError(t, err)

	testCustomer := makeTestCustomer(t, orgID, customerID)

	customerRepo := new(MockKycCustomerRepository)
	orderRepo := new(MockKycOrderRepository)
	uow := new(MockKycUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, orgID, customerID).Return(testCustomer, nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Update", ctx, mock.AnythingOfType("*customer.Customer")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("SyncKycVerifiedByCustomer", ctx, orgID, customerID, true).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockKycUoWFactory)
	factory.On("Create").Return(uow).Once()

	fileStore := new(MockFileStore)
	notifier := new(MockNotificationDispatcher)
	notifier.On("Dispatch", "priya@example.com", "KYC review", mock.AnythingOfType("string")).Once()

	handler := commands.NewReviewCustomerKycCommandHandler(factory, fileStore, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, kernel.KycApproved, testCustomer.KycStatus())
	fileStore.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything)
	customerRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestReviewCustomerKycCommandHandler_Handle_StoresDocument(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewOrgID()
	customerID := kernel.NewUUID()
	document := []byte("scanned passport")

	cmd, err := commands.NewReviewCustomerKycCommand(orgID, customerID, kernel.KycApproved, document)
	require.NoError(t, err)

	testCustomer := makeTestCustomer(t, orgID, customerID)

	customerRepo := new(MockKycCustomerRepository)
	orderRepo := new(MockKycOrderRepository)
	uow := new(MockKycUoW)
	fileStore := new(MockFileStore)

	mock.InOrder(
		fileStore.On("Store", ctx, fmt.Sprintf("kyc/%s", customerID), document).Return("kyc/ref-1", nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, orgID, customerID).Return(testCustomer, nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Update", ctx, mock.AnythingOfType("*customer.Customer")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("SyncKycVerifiedByCustomer", ctx, orgID, customerID, true).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockKycUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationDispatcher)
	notifier.On("Dispatch", "priya@example.com", "KYC review", mock.AnythingOfType("string")).Once()

	handler := commands.NewReviewCustomerKycCommandHandler(factory, fileStore, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "kyc/ref-1", testCustomer.KycDocumentRef())
	fileStore.AssertExpectations(t)
}

func TestReviewCustomerKycCommandHandler_Handle_RejectionPropagatesFalse(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewOrgID()
	customerID := kernel.NewUUID()

	cmd, err := commands.NewReviewCustomerKycCommand(orgID, customerID, kernel.KycRejected, nil)
	require.NoError(t, err)

	testCustomer := makeTestCustomer(t, orgID, customerID)

	customerRepo := new(MockKycCustomerRepository)
	orderRepo := new(MockKycOrderRepository)
	uow := new(MockKycUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, orgID, customerID).Return(testCustomer, nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Update", ctx, mock.AnythingOfType("*customer.Customer")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("SyncKycVerifiedByCustomer", ctx, orgID, customerID, false).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockKycUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationDispatcher)
	notifier.On("Dispatch", "priya@example.com", "KYC review", mock.AnythingOfType("string")).Once()

	handler := commands.NewReviewCustomerKycCommandHandler(factory, new(MockFileStore), notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, kernel.KycRejected, testCustomer.KycStatus())
	orderRepo.AssertExpectations(t)
}

func TestReviewCustomerKycCommandHandler_Handle_CustomerNotFound(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewOrgID()
	customerID := kernel.NewUUID()

	cmd, err := commands.NewReviewCustomerKycCommand(orgID, customerID, kernel.KycApproved, nil)
	require.NoError(t, err)

	customerRepo := new(MockKycCustomerRepository)
	uow := new(MockKycUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, orgID, customerID).
			Return(nil, errs.NewObjectNotFoundError("customer", customerID.String())).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockKycUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationDispatcher)

	handler := commands.NewReviewCustomerKycCommandHandler(factory, new(MockFileStore), notifier)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	notifier.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestReviewCustomerKycCommandHandler_Handle_SyncError(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewOrgID()
	customerID := kernel.NewUUID()

	cmd, err := commands.NewReviewCustomerKycCommand(orgID, customerID, kernel.KycApproved, nil)
	require.NoError(t, err)

	testCustomer := makeTestCustomer(t, orgID, customerID)

	customerRepo := new(MockKycCustomerRepository)
	orderRepo := new(MockKycOrderRepository)
	uow := new(MockKycUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, orgID, customerID).Return(testCustomer, nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Update", ctx, mock.AnythingOfType("*customer.Customer")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("SyncKycVerifiedByCustomer", ctx, orgID, customerID, true).
			Return(errors.New("database error")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockKycUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationDispatcher)

	handler := commands.NewReviewCustomerKycCommandHandler(factory, new(MockFileStore), notifier)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "database error")
	notifier.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestReviewCustomerKycCommandHandler_Handle_FileStoreError(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewOrgID()
	customerID := kernel.NewUUID()
	document := []byte("scanned passport")

	cmd, err := commands.NewReviewCustomerKycCommand(orgID, customerID, kernel.KycApproved, document)
	require.NoError(t, err)

	fileStore := new(MockFileStore)
	fileStore.On("Store", ctx, mock.AnythingOfType("string"), document).
		Return("", errors.New("disk full")).
		Once()

	factory := new(MockKycUoWFactory)
	notifier := new(MockNotificationDispatcher)

	handler := commands.NewReviewCustomerKycCommandHandler(factory, fileStore, notifier)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "disk full")
	factory.AssertNotCalled(t, "Create")
}
