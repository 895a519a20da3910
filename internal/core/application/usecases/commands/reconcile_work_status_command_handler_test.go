package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"aquaserve/internal/core/application/usecases/commands"
	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/core/domain/model/technician"
	"aquaserve/internal/pkg/errs"
)

func makeBusyTestTechnician(t *testing.T) *technician.Technician {
	t.Helper()

	tech, err := technician.RestoreTechnician(
		kernel.NewUUID(), kernel.NewOrgID(), kernel.NewUUID(), "Anil Kumar",
		true, kernel.KycApproved, technician.WorkBusy, kernel.DeviceUnlinked, 1,
	)
	require.NoError(t, err)
	return tech
}

func TestReconcileWorkStatusCommandHandler_Handle_FreesUnassignedTechnicians(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewReconcileWorkStatusCommand()

	orphaned := makeBusyTestTechnician(t)
	legitimate := makeBusyTestTechnician(t)

	technicianRepo := new(MockWorkTechnicianRepository)
	requestRepo := new(MockServiceRequestRepository)
	scanUow := new(MockRequestUoW)
	fixUow := new(MockRequestUoW)

	mock.InOrder(
		scanUow.On("TechnicianRepository").Return(technicianRepo).Once(),
		technicianRepo.On("GetAllBusy", ctx).
			Return([]*technician.Technician{orphaned, legitimate}, nil).
			Once(),
		scanUow.On("ServiceRequestRepository").Return(requestRepo).Once(),
		requestRepo.On("ExistsAssignedTo", ctx, orphaned.ID()).Return(false, nil).Once(),
		fixUow.On("Begin", ctx).Return(nil).Once(),
		fixUow.On("TechnicianRepository").Return(technicianRepo).Once(),
		technicianRepo.On("Update", ctx, mock.AnythingOfType("*technician.Technician")).Return(nil).Once(),
		fixUow.On("Commit", ctx).Return(nil).Once(),
		scanUow.On("ServiceRequestRepository").Return(requestRepo).Once(),
		requestRepo.On("ExistsAssignedTo", ctx, legitimate.ID()).Return(true, nil).Once(),
	)

	factory := new(MockRequestUoWFactory)
	factory.On("Create").Return(scanUow).Once()
	factory.On("Create").Return(fixUow).Once()

	handler := commands.NewReconcileWorkStatusCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, technician.WorkFree, orphaned.WorkStatus())
	assert.Equal(t, technician.WorkBusy, legitimate.WorkStatus())
	technicianRepo.AssertExpectations(t)
	requestRepo.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestReconcileWorkStatusCommandHandler_Handle_NoBusyTechnicians(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewReconcileWorkStatusCommand()

	technicianRepo := new(MockWorkTechnicianRepository)
	scanUow := new(MockRequestUoW)

	mock.InOrder(
		scanUow.On("TechnicianRepository").Return(technicianRepo).Once(),
		technicianRepo.On("GetAllBusy", ctx).Return([]*technician.Technician{}, nil).Once(),
	)

	factory := new(MockRequestUoWFactory)
	factory.On("Create").Return(scanUow).Once()

	handler := commands.NewReconcileWorkStatusCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	scanUow.AssertNotCalled(t, "ServiceRequestRepository")
}

func TestReconcileWorkStatusCommandHandler_Handle_ConflictMidScanContinues(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewReconcileWorkStatusCommand()

	// The first technician gets claimed by a concurrent assignment between
	// the scan and the free write; the second is a genuine orphan.
	contested := makeBusyTestTechnician(t)
	orphaned := makeBusyTestTechnician(t)

	technicianRepo := new(MockWorkTechnicianRepository)
	requestRepo := new(MockServiceRequestRepository)
	scanUow := new(MockRequestUoW)
	contestedUow := new(MockRequestUoW)
	orphanUow := new(MockRequestUoW)

	mock.InOrder(
		scanUow.On("TechnicianRepository").Return(technicianRepo).Once(),
		technicianRepo.On("GetAllBusy", ctx).
			Return([]*technician.Technician{contested, orphaned}, nil).
			Once(),
		scanUow.On("ServiceRequestRepository").Return(requestRepo).Once(),
		requestRepo.On("ExistsAssignedTo", ctx, contested.ID()).Return(false, nil).Once(),
		contestedUow.On("Begin", ctx).Return(nil).Once(),
		contestedUow.On("TechnicianRepository").Return(technicianRepo).Once(),
		technicianRepo.On("Update", ctx, mock.AnythingOfType("*technician.Technician")).
			Return(errs.NewConflictError("technician", contested.ID().String())).
			Once(),
		contestedUow.On("Rollback", ctx).Return(nil).Once(),
		scanUow.On("ServiceRequestRepository").Return(requestRepo).Once(),
		requestRepo.On("ExistsAssignedTo", ctx, orphaned.ID()).Return(false, nil).Once(),
		orphanUow.On("Begin", ctx).Return(nil).Once(),
		orphanUow.On("TechnicianRepository").Return(technicianRepo).Once(),
		technicianRepo.On("Update", ctx, mock.AnythingOfType("*technician.Technician")).Return(nil).Once(),
		orphanUow.On("Commit", ctx).Return(nil).Once(),
	)

	factory := new(MockRequestUoWFactory)
	factory.On("Create").Return(scanUow).Once()
	factory.On("Create").Return(contestedUow).Once()
	factory.On("Create").Return(orphanUow).Once()

	handler := commands.NewReconcileWorkStatusCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, technician.WorkFree, orphaned.WorkStatus())
	factory.AssertExpectations(t)
}

func TestReconcileWorkStatusCommandHandler_Handle_StorageFailureReportsFreed(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewReconcileWorkStatusCommand()

	freed := makeBusyTestTechnician(t)
	unreached := makeBusyTestTechnician(t)

	technicianRepo := new(MockWorkTechnicianRepository)
	requestRepo := new(MockServiceRequestRepository)
	scanUow := new(MockRequestUoW)
	fixUow := new(MockRequestUoW)

	mock.InOrder(
		scanUow.On("TechnicianRepository").Return(technicianRepo).Once(),
		technicianRepo.On("GetAllBusy", ctx).
			Return([]*technician.Technician{freed, unreached}, nil).
			Once(),
		scanUow.On("ServiceRequestRepository").Return(requestRepo).Once(),
		requestRepo.On("ExistsAssignedTo", ctx, freed.ID()).Return(false, nil).Once(),
		fixUow.On("Begin", ctx).Return(nil).Once(),
		fixUow.On("TechnicianRepository").Return(technicianRepo).Once(),
		technicianRepo.On("Update", ctx, mock.AnythingOfType("*technician.Technician")).Return(nil).Once(),
		fixUow.On("Commit", ctx).Return(nil).Once(),
		scanUow.On("ServiceRequestRepository").Return(requestRepo).Once(),
		requestRepo.On("ExistsAssignedTo", ctx, unreached.ID()).
			Return(false, errors.New("connection reset")).
			Once(),
	)

	factory := new(MockRequestUoWFactory)
	factory.On("Create").Return(scanUow).Once()
	factory.On("Create").Return(fixUow).Once()

	handler := commands.NewReconcileWorkStatusCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStorageUnavailable)

	var storageErr *errs.StorageUnavailableError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, []string{freed.ID().String()}, storageErr.CompletedWrites)
}

func TestReconcileWorkStatusCommandHandler_Handle_ScanError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewReconcileWorkStatusCommand()

	technicianRepo := new(MockWorkTechnicianRepository)
	scanUow := new(MockRequestUoW)

	mock.InOrder(
		scanUow.On("TechnicianRepository").Return(technicianRepo).Once(),
		technicianRepo.On("GetAllBusy", ctx).Return(nil, errors.New("database error")).Once(),
	)

	factory := new(MockRequestUoWFactory)
	factory.On("Create").Return(scanUow).Once()

	handler := commands.NewReconcileWorkStatusCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "database error")
}
