package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"aquaserve/internal/core/application/usecases/commands"
	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/core/domain/model/servicerequest"
	"aquaserve/internal/core/domain/model/technician"
	"aquaserve/internal/pkg/errs"
)

func TestUpdateServiceRequestStatusCommandHandler_Handle_CloseReleasesTechnician(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewOrgID()
	requestID := kernel.NewUUID()
	technicianID := kernel.NewUUID()

	cmd, err := commands.NewUpdateServiceRequestStatusCommand(orgID, requestID, servicerequest.StatusClosed)
	require.NoError(t, err)

	assigned, err := servicerequest.RestoreRequest(
		requestID, orgID, kernel.NewUUID(), "WP-1000", "noise",
		servicerequest.StatusAssigned, &technicianID, 1,
	)
	require.NoError(t, err)

	busy, err := technician.RestoreTechnician(
		technicianID, orgID, kernel.NewUUID(), "Anil Kumar",
		true, kernel.KycApproved, technician.WorkBusy, kernel.DeviceUnlinked, 1,
	)
	require.NoError(t, err)

	requestRepo := new(MockServiceRequestRepository)
	technicianRepo := new(MockWorkTechnicianRepository)
	uow := new(MockRequestUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ServiceRequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Get", ctx, orgID, requestID).Return(assigned, nil).Once(),
		uow.On("TechnicianRepository").Return(technicianRepo).Once(),
		technicianRepo.On("Get", ctx, orgID, technicianID).Return(busy, nil).Once(),
		uow.On("TechnicianRepository").Return(technicianRepo).Once(),
		technicianRepo.On("Update", ctx, mock.AnythingOfType("*technician.Technician")).Return(nil).Once(),
		uow.On("ServiceRequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Update", ctx, mock.AnythingOfType("*servicerequest.Request")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateServiceRequestStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, servicerequest.StatusClosed, assigned.Status())
	assert.Nil(t, assigned.AssignedTo())
	assert.Equal(t, technician.WorkFree, busy.WorkStatus())
	requestRepo.AssertExpectations(t)
	technicianRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateServiceRequestStatusCommandHandler_Handle_ReopenClearsStaleAssignee(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewOrgID()
	requestID := kernel.NewUUID()
	technicianID := kernel.NewUUID()

	cmd, err := commands.NewUpdateServiceRequestStatusCommand(orgID, requestID, servicerequest.StatusOpen)
	require.NoError(t, err)

	stale, err := servicerequest.RestoreRequest(
		requestID, orgID, kernel.NewUUID(), "WP-1000", "noise",
		servicerequest.StatusClosed, &technicianID, 3,
	)
	require.NoError(t, err)

	busy, err := technician.RestoreTechnician(
		technicianID, orgID, kernel.NewUUID(), "Anil Kumar",
		true, kernel.KycApproved, technician.WorkBusy, kernel.DeviceUnlinked, 2,
	)
	require.NoError(t, err)

	requestRepo := new(MockServiceRequestRepository)
	technicianRepo := new(MockWorkTechnicianRepository)
	uow := new(MockRequestUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ServiceRequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Get", ctx, orgID, requestID).Return(stale, nil).Once(),
		uow.On("TechnicianRepository").Return(technicianRepo).Once(),
		technicianRepo.On("Get", ctx, orgID, technicianID).Return(busy, nil).Once(),
		uow.On("TechnicianRepository").Return(technicianRepo).Once(),
		technicianRepo.On("Update", ctx, mock.AnythingOfType("*technician.Technician")).Return(nil).Once(),
		uow.On("ServiceRequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Update", ctx, mock.AnythingOfType("*servicerequest.Request")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateServiceRequestStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, servicerequest.StatusOpen, stale.Status())
	assert.Nil(t, stale.AssignedTo())
	assert.Equal(t, technician.WorkFree, busy.WorkStatus())
}

func TestUpdateServiceRequestStatusCommandHandler_Handle_NoReleaseNeeded(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewOrgID()
	requestID := kernel.NewUUID()

	cmd, err := commands.NewUpdateServiceRequestStatusCommand(orgID, requestID, servicerequest.StatusClosed)
	require.NoError(t, err)

	open := makeOpenTestRequest(t, orgID, requestID)

	requestRepo := new(MockServiceRequestRepository)
	uow := new(MockRequestUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ServiceRequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Get", ctx, orgID, requestID).Return(open, nil).Once(),
		uow.On("ServiceRequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Update", ctx, mock.AnythingOfType("*servicerequest.Request")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateServiceRequestStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, servicerequest.StatusClosed, open.Status())
	uow.AssertNotCalled(t, "TechnicianRepository")
}

func TestUpdateServiceRequestStatusCommandHandler_Handle_RequestNotFound(t *testing.T) {
	ctx := t.Context()
	orgID := kernel.NewOrgID()
	requestID := kernel.NewUUID()

	cmd, err := commands.NewUpdateServiceRequestStatusCommand(orgID, requestID, servicerequest.StatusClosed)
	require.NoError(t, err)

	requestRepo := new(MockServiceRequestRepository)
	uow := new(MockRequestUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ServiceRequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Get", ctx, orgID, requestID).
			Return(nil, errs.NewObjectNotFoundError("service request", requestID.String())).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateServiceRequestStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateServiceRequestStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdateServiceRequestStatusCommand{} // not constructed properly

	factory := new(MockRequestUoWFactory)
	handler := commands.NewUpdateServiceRequestStatusCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrUpdateServiceRequestStatusCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
