package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/core/domain/model/order"
)

// GetOpenOrdersQueryHandler reads open installation orders straight from the
// database, bypassing the aggregate repositories.
type GetOpenOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenOrdersQueryHandler creates a handler for open-order listings.
func NewGetOpenOrdersQueryHandler(db *gorm.DB) GetOpenOrdersQueryHandler {
	return GetOpenOrdersQueryHandler{db: db}
}

// Handle returns the tenant's orders with status OPEN, sorted by id. The
// technician_assigned flag is derived the same way the aggregate derives it:
// an assignee exists and the technician approval is APPROVED.
func (h GetOpenOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOpenOrdersQuery,
) ([]GetOpenOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOpenOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			device_id,
			payment_received,
			kyc_verified,
			(assigned_to IS NOT NULL AND technician_approval = ?) AS technician_assigned,
			(completed_at IS NOT NULL) AS installation_completed
		FROM orders
		WHERE org_id = ?
		  AND status = ?
		ORDER BY id
	`, string(order.ApprovalApproved), query.OrgID().Bytes(), int(order.Open)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOpenOrdersQueryResponse
		var id, customerID uuid.UUID

		err = rows.Scan(
			&id,
			&customerID,
			&resp.DeviceID,
			&resp.PaymentReceived,
			&resp.KycVerified,
			&resp.TechnicianAssigned,
			&resp.InstallationCompleted,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderCustomerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}

		resp.ID = orderID
		resp.CustomerID = orderCustomerID
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
