package technician_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/core/domain/model/technician"
	"aquaserve/internal/pkg/errs"
)

func makeTechnician(t *testing.T) *technician.Technician {
	t.Helper()

	tech, err := technician.NewTechnician(kernel.NewUUID(), kernel.NewOrgID(), kernel.NewUUID(), "Anil Kumar")
	require.NoError(t, err)
	return tech
}

func TestNewTechnician(t *testing.T) {
	t.Run("should start in the onboarding state", func(t *testing.T) {
		tech := makeTechnician(t)

		require.NoError(t, tech.Validate())
		assert.False(t, tech.IsActive())
		assert.Equal(t, kernel.KycPending, tech.KycStatus())
		assert.Equal(t, technician.WorkFree, tech.WorkStatus())
		assert.Equal(t, kernel.DeviceUnlinked, tech.DeviceLinkStatus())
		assert.False(t, tech.IsAvailable())
	})

	t.Run("should fail without a name", func(t *testing.T) {
		tech, err := technician.NewTechnician(kernel.NewUUID(), kernel.NewOrgID(), kernel.NewUUID(), "")

		require.Error(t, err)
		assert.Nil(t, tech)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with invalid identifiers", func(t *testing.T) {
		var zero kernel.UUID

		_, err := technician.NewTechnician(zero, kernel.NewOrgID(), zero, "Anil Kumar")

		require.Error(t, err)
	})
}

func TestTechnician_ReviewOnboarding(t *testing.T) {
	t.Run("should activate and approve kyc", func(t *testing.T) {
		tech := makeTechnician(t)

		require.NoError(t, tech.ReviewOnboarding(true, kernel.KycApproved))

		assert.True(t, tech.IsActive())
		assert.Equal(t, kernel.KycApproved, tech.KycStatus())
		assert.True(t, tech.IsAvailable())
	})

	t.Run("should deactivate a previously active technician", func(t *testing.T) {
		tech := makeTechnician(t)
		require.NoError(t, tech.ReviewOnboarding(true, kernel.KycApproved))

		require.NoError(t, tech.ReviewOnboarding(false, kernel.KycRejected))

		assert.False(t, tech.IsActive())
		assert.Equal(t, kernel.KycRejected, tech.KycStatus())
		assert.False(t, tech.IsAvailable())
	})

	t.Run("should reject an invalid kyc verdict", func(t *testing.T) {
		tech := makeTechnician(t)

		err := tech.ReviewOnboarding(true, kernel.KycStatus("maybe"))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.False(t, tech.IsActive(), "a rejected verdict must not flip the gate")
	})
}

func TestTechnician_MarkBusy(t *testing.T) {
	t.Run("should claim a free technician", func(t *testing.T) {
		tech := makeTechnician(t)

		require.NoError(t, tech.MarkBusy())

		assert.Equal(t, technician.WorkBusy, tech.WorkStatus())
		assert.False(t, tech.IsAvailable())
	})

	t.Run("should conflict when already busy", func(t *testing.T) {
		tech := makeTechnician(t)
		require.NoError(t, tech.MarkBusy())

		err := tech.MarkBusy()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestTechnician_MarkFree(t *testing.T) {
	t.Run("should release a busy technician", func(t *testing.T) {
		tech := makeTechnician(t)
		require.NoError(t, tech.MarkBusy())

		tech.MarkFree()

		assert.Equal(t, technician.WorkFree, tech.WorkStatus())
	})

	t.Run("should be a no-op on a free technician", func(t *testing.T) {
		tech := makeTechnician(t)

		tech.MarkFree()
		tech.MarkFree()

		assert.Equal(t, technician.WorkFree, tech.WorkStatus())
	})
}

func TestTechnician_IsAvailable(t *testing.T) {
	t.Run("should require both free and approved kyc", func(t *testing.T) {
		tech := makeTechnician(t)
		require.NoError(t, tech.ReviewOnboarding(true, kernel.KycApproved))
		require.NoError(t, tech.MarkBusy())

		assert.False(t, tech.IsAvailable())

		tech.MarkFree()
		assert.True(t, tech.IsAvailable())
	})
}

func TestRestoreTechnician(t *testing.T) {
	t.Run("should restore a busy approved technician", func(t *testing.T) {
		tech, err := technician.RestoreTechnician(
			kernel.NewUUID(), kernel.NewOrgID(), kernel.NewUUID(), "Anil Kumar",
			true, kernel.KycApproved, technician.WorkBusy, kernel.DeviceLinked, 3,
		)

		require.NoError(t, err)
		require.NoError(t, tech.Validate())
		assert.True(t, tech.IsActive())
		assert.Equal(t, technician.WorkBusy, tech.WorkStatus())
		assert.Equal(t, 3, tech.Version())
	})

	t.Run("should reject invalid stored statuses", func(t *testing.T) {
		_, err := technician.RestoreTechnician(
			kernel.NewUUID(), kernel.NewOrgID(), kernel.NewUUID(), "Anil Kumar",
			false, kernel.KycStatus("bogus"), technician.WorkStatus("away"), kernel.DeviceLinkStatus(""), 0,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
