package servicerequest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/core/domain/model/servicerequest"
	"aquaserve/internal/pkg/errs"
)

func makeRequest(t *testing.T) *servicerequest.Request {
	t.Helper()

	r, err := servicerequest.NewRequest(kernel.NewUUID(), kernel.NewOrgID(), kernel.NewUUID(), "WP-1000", "low water pressure")
	require.NoError(t, err)
	return r
}

func TestNewRequest(t *testing.T) {
	t.Run("should create an open unassigned request", func(t *testing.T) {
		r := makeRequest(t)

		require.NoError(t, r.Validate())
		assert.Equal(t, servicerequest.StatusOpen, r.Status())
		assert.Nil(t, r.AssignedTo())
	})

	t.Run("should fail without an issue description", func(t *testing.T) {
		r, err := servicerequest.NewRequest(kernel.NewUUID(), kernel.NewOrgID(), kernel.NewUUID(), "WP-1000", "")

		require.Error(t, err)
		assert.Nil(t, r)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should allow an empty device reference", func(t *testing.T) {
		r, err := servicerequest.NewRequest(kernel.NewUUID(), kernel.NewOrgID(), kernel.NewUUID(), "", "leaking tap")

		require.NoError(t, err)
		assert.Empty(t, r.DeviceID())
	})
}

func TestRequest_AssignTechnician(t *testing.T) {
	t.Run("should claim the technician and move to assigned", func(t *testing.T) {
		r := makeRequest(t)
		technicianID := kernel.NewUUID()

		require.NoError(t, r.AssignTechnician(technicianID))

		assert.Equal(t, servicerequest.StatusAssigned, r.Status())
		require.NotNil(t, r.AssignedTo())
		assert.True(t, r.AssignedTo().IsEqual(technicianID))
	})

	t.Run("should reject a second assignment", func(t *testing.T) {
		r := makeRequest(t)
		first := kernel.NewUUID()
		require.NoError(t, r.AssignTechnician(first))

		err := r.AssignTechnician(kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrPreconditionFailed)
		assert.Contains(t, err.Error(), "request already assigned")
		assert.True(t, r.AssignedTo().IsEqual(first))
	})

	t.Run("should reject an invalid technician id", func(t *testing.T) {
		r := makeRequest(t)
		var zero kernel.UUID

		err := r.AssignTechnician(zero)

		require.Error(t, err)
		assert.Nil(t, r.AssignedTo())
	})
}

func TestRequest_ChangeStatus(t *testing.T) {
	t.Run("closing an assigned request releases the technician", func(t *testing.T) {
		r := makeRequest(t)
		technicianID := kernel.NewUUID()
		require.NoError(t, r.AssignTechnician(technicianID))

		released, err := r.ChangeStatus(servicerequest.StatusClosed)

		require.NoError(t, err)
		require.NotNil(t, released)
		assert.True(t, released.IsEqual(technicianID))
		assert.Equal(t, servicerequest.StatusClosed, r.Status())
		assert.Nil(t, r.AssignedTo())
	})

	t.Run("closing an unassigned request releases nobody", func(t *testing.T) {
		r := makeRequest(t)

		released, err := r.ChangeStatus(servicerequest.StatusClosed)

		require.NoError(t, err)
		assert.Nil(t, released)
		assert.Equal(t, servicerequest.StatusClosed, r.Status())
	})

	t.Run("reopening clears a stale assignee", func(t *testing.T) {
		technicianID := kernel.NewUUID()
		r, err := servicerequest.RestoreRequest(
			kernel.NewUUID(), kernel.NewOrgID(), kernel.NewUUID(), "WP-1000", "noise",
			servicerequest.StatusClosed, &technicianID, 2,
		)
		require.NoError(t, err)

		released, err := r.ChangeStatus(servicerequest.StatusOpen)

		require.NoError(t, err)
		require.NotNil(t, released)
		assert.True(t, released.IsEqual(technicianID))
		assert.Equal(t, servicerequest.StatusOpen, r.Status())
		assert.Nil(t, r.AssignedTo())
	})

	t.Run("closed to closed with a stale assignee still releases", func(t *testing.T) {
		technicianID := kernel.NewUUID()
		r, err := servicerequest.RestoreRequest(
			kernel.NewUUID(), kernel.NewOrgID(), kernel.NewUUID(), "WP-1000", "noise",
			servicerequest.StatusClosed, &technicianID, 2,
		)
		require.NoError(t, err)

		released, err := r.ChangeStatus(servicerequest.StatusClosed)

		require.NoError(t, err)
		require.NotNil(t, released)
		assert.Nil(t, r.AssignedTo())
	})

	t.Run("open to assigned without an assignee releases nobody", func(t *testing.T) {
		r := makeRequest(t)

		released, err := r.ChangeStatus(servicerequest.StatusAssigned)

		require.NoError(t, err)
		assert.Nil(t, released)
		assert.Equal(t, servicerequest.StatusAssigned, r.Status())
	})

	t.Run("should reject an unknown status", func(t *testing.T) {
		r := makeRequest(t)

		_, err := r.ChangeStatus(servicerequest.Status("archived"))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, servicerequest.StatusOpen, r.Status())
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse every wire value", func(t *testing.T) {
		for _, s := range []string{"open", "assigned", "closed"} {
			parsed, err := servicerequest.ParseStatus(s)
			require.NoError(t, err)
			assert.Equal(t, s, parsed.String())
		}
	})

	t.Run("should reject unknown values", func(t *testing.T) {
		_, err := servicerequest.ParseStatus("OPEN")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
