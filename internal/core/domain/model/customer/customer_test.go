package customer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aquaserve/internal/core/domain/model/customer"
	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/pkg/errs"
)

func makeCustomer(t *testing.T) *customer.Customer {
	t.Helper()

	c, err := customer.NewCustomer(kernel.NewUUID(), kernel.NewOrgID(), "Priya Sharma", "priya@example.com", "+91-98000-00000")
	require.NoError(t, err)
	return c
}

func TestNewCustomer(t *testing.T) {
	t.Run("should start with pending kyc and no document", func(t *testing.T) {
		c := makeCustomer(t)

		require.NoError(t, c.Validate())
		assert.Equal(t, kernel.KycPending, c.KycStatus())
		assert.Empty(t, c.KycDocumentRef())
		assert.Equal(t, kernel.DeviceUnlinked, c.DeviceLinkStatus())
	})

	t.Run("should fail without a name", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), kernel.NewOrgID(), "", "", "")

		require.Error(t, err)
		assert.Nil(t, c)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should allow empty contact details", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), kernel.NewOrgID(), "Priya Sharma", "", "")

		require.NoError(t, err)
		assert.Empty(t, c.Email())
		assert.Empty(t, c.Phone())
	})
}

func TestCustomer_ReviewKyc(t *testing.T) {
	t.Run("should record the verdict and the document reference", func(t *testing.T) {
		c := makeCustomer(t)

		require.NoError(t, c.ReviewKyc(kernel.KycApproved, "kyc/doc-1"))

		assert.Equal(t, kernel.KycApproved, c.KycStatus())
		assert.Equal(t, "kyc/doc-1", c.KycDocumentRef())
	})

	t.Run("should keep the existing reference when none is supplied", func(t *testing.T) {
		c := makeCustomer(t)
		require.NoError(t, c.ReviewKyc(kernel.KycApproved, "kyc/doc-1"))

		require.NoError(t, c.ReviewKyc(kernel.KycRejected, ""))

		assert.Equal(t, kernel.KycRejected, c.KycStatus())
		assert.Equal(t, "kyc/doc-1", c.KycDocumentRef())
	})

	t.Run("should be idempotent for the same verdict", func(t *testing.T) {
		c := makeCustomer(t)
		require.NoError(t, c.ReviewKyc(kernel.KycApproved, ""))

		require.NoError(t, c.ReviewKyc(kernel.KycApproved, ""))

		assert.Equal(t, kernel.KycApproved, c.KycStatus())
	})

	t.Run("should reject an invalid verdict", func(t *testing.T) {
		c := makeCustomer(t)

		err := c.ReviewKyc(kernel.KycStatus("verified"), "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, kernel.KycPending, c.KycStatus())
	})
}

func TestRestoreCustomer(t *testing.T) {
	t.Run("should restore a reviewed customer", func(t *testing.T) {
		c, err := customer.RestoreCustomer(
			kernel.NewUUID(), kernel.NewOrgID(), "Priya Sharma", "priya@example.com", "",
			kernel.KycApproved, "kyc/doc-1", kernel.DeviceLinked,
		)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, kernel.KycApproved, c.KycStatus())
		assert.Equal(t, "kyc/doc-1", c.KycDocumentRef())
	})

	t.Run("should reject invalid stored statuses", func(t *testing.T) {
		_, err := customer.RestoreCustomer(
			kernel.NewUUID(), kernel.NewOrgID(), "Priya Sharma", "", "",
			kernel.KycStatus(""), "", kernel.DeviceLinkStatus("gone"),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
